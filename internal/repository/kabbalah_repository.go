//go:generate mockery --name KabbalahRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"gorm.io/gorm"
)

type KabbalahRepository interface {
	Create(ctx context.Context, tx *gorm.DB, kabbalah *model.Kabbalah) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Kabbalah, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Kabbalah, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type gormKabbalahRepository struct{}

func NewGormKabbalahRepository() KabbalahRepository {
	return &gormKabbalahRepository{}
}

func (r *gormKabbalahRepository) Create(ctx context.Context, tx *gorm.DB, kabbalah *model.Kabbalah) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(kabbalah)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation creating kabbalah",
				"error", result.Error,
				"middah", kabbalah.Middah,
			)
			return translated
		}
		logger.Error("Error creating kabbalah in DB",
			"error", result.Error,
			"middah", kabbalah.Middah,
		)
		return fmt.Errorf("gormKabbalahRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormKabbalahRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.Kabbalah, error) {
	logger := middleware.GetLogger(ctx)
	var kabbalah model.Kabbalah
	result := db.WithContext(ctx).First(&kabbalah, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding kabbalah in DB", "error", result.Error, "id", id)
		return nil, fmt.Errorf("gormKabbalahRepository.FindByID: %w", result.Error)
	}
	return &kabbalah, nil
}

func (r *gormKabbalahRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Kabbalah, error) {
	logger := middleware.GetLogger(ctx)
	var kabbalot []*model.Kabbalah
	result := db.WithContext(ctx).Order("id").Find(&kabbalot)
	if result.Error != nil {
		logger.Error("Error listing kabbalot in DB", "error", result.Error)
		return nil, fmt.Errorf("gormKabbalahRepository.List: %w", result.Error)
	}
	return kabbalot, nil
}

func (r *gormKabbalahRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Kabbalah{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation updating kabbalah", "error", result.Error, "id", id)
			return translated
		}
		logger.Error("Error updating kabbalah in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormKabbalahRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormKabbalahRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Kabbalah{}, id)
	if result.Error != nil {
		logger.Error("Error deleting kabbalah in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormKabbalahRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
