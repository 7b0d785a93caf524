//go:generate mockery --name DailyTextRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"gorm.io/gorm"
)

type DailyTextRepository interface {
	Create(ctx context.Context, tx *gorm.DB, text *model.DailyText) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.DailyText, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.DailyText, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type gormDailyTextRepository struct{}

func NewGormDailyTextRepository() DailyTextRepository {
	return &gormDailyTextRepository{}
}

func (r *gormDailyTextRepository) Create(ctx context.Context, tx *gorm.DB, text *model.DailyText) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(text)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation creating daily text",
				"error", result.Error,
				"middah", text.Middah,
			)
			return translated
		}
		logger.Error("Error creating daily text in DB",
			"error", result.Error,
			"middah", text.Middah,
		)
		return fmt.Errorf("gormDailyTextRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDailyTextRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.DailyText, error) {
	logger := middleware.GetLogger(ctx)
	var text model.DailyText
	result := db.WithContext(ctx).First(&text, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding daily text in DB", "error", result.Error, "id", id)
		return nil, fmt.Errorf("gormDailyTextRepository.FindByID: %w", result.Error)
	}
	return &text, nil
}

func (r *gormDailyTextRepository) List(ctx context.Context, db *gorm.DB) ([]*model.DailyText, error) {
	logger := middleware.GetLogger(ctx)
	var texts []*model.DailyText
	result := db.WithContext(ctx).Order("id").Find(&texts)
	if result.Error != nil {
		logger.Error("Error listing daily texts in DB", "error", result.Error)
		return nil, fmt.Errorf("gormDailyTextRepository.List: %w", result.Error)
	}
	return texts, nil
}

func (r *gormDailyTextRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.DailyText{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation updating daily text", "error", result.Error, "id", id)
			return translated
		}
		logger.Error("Error updating daily text in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormDailyTextRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDailyTextRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.DailyText{}, id)
	if result.Error != nil {
		logger.Error("Error deleting daily text in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormDailyTextRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
