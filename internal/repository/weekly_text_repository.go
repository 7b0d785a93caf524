//go:generate mockery --name WeeklyTextRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"gorm.io/gorm"
)

type WeeklyTextRepository interface {
	Create(ctx context.Context, tx *gorm.DB, text *model.WeeklyText) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.WeeklyText, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.WeeklyText, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type gormWeeklyTextRepository struct{}

func NewGormWeeklyTextRepository() WeeklyTextRepository {
	return &gormWeeklyTextRepository{}
}

func (r *gormWeeklyTextRepository) Create(ctx context.Context, tx *gorm.DB, text *model.WeeklyText) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(text)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid reference specified"); translated != result.Error {
			logger.Warn("Constraint violation creating weekly text", "error", result.Error)
			return translated
		}
		logger.Error("Error creating weekly text in DB", "error", result.Error)
		return fmt.Errorf("gormWeeklyTextRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWeeklyTextRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.WeeklyText, error) {
	logger := middleware.GetLogger(ctx)
	var text model.WeeklyText
	result := db.WithContext(ctx).First(&text, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding weekly text in DB", "error", result.Error, "id", id)
		return nil, fmt.Errorf("gormWeeklyTextRepository.FindByID: %w", result.Error)
	}
	return &text, nil
}

func (r *gormWeeklyTextRepository) List(ctx context.Context, db *gorm.DB) ([]*model.WeeklyText, error) {
	logger := middleware.GetLogger(ctx)
	var texts []*model.WeeklyText
	result := db.WithContext(ctx).Order("id").Find(&texts)
	if result.Error != nil {
		logger.Error("Error listing weekly texts in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWeeklyTextRepository.List: %w", result.Error)
	}
	return texts, nil
}

func (r *gormWeeklyTextRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.WeeklyText{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid reference specified"); translated != result.Error {
			logger.Warn("Constraint violation updating weekly text", "error", result.Error, "id", id)
			return translated
		}
		logger.Error("Error updating weekly text in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormWeeklyTextRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWeeklyTextRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.WeeklyText{}, id)
	if result.Error != nil {
		logger.Error("Error deleting weekly text in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormWeeklyTextRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
