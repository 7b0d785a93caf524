//go:generate mockery --name MiddahRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"gorm.io/gorm"
)

type MiddahRepository interface {
	Create(ctx context.Context, tx *gorm.DB, middah *model.Middah) error
	FindByName(ctx context.Context, db *gorm.DB, nameTransliterated string) (*model.Middah, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Middah, error)
	Delete(ctx context.Context, tx *gorm.DB, nameTransliterated string) error
}

type gormMiddahRepository struct{}

func NewGormMiddahRepository() MiddahRepository {
	return &gormMiddahRepository{}
}

func (r *gormMiddahRepository) Create(ctx context.Context, tx *gorm.DB, middah *model.Middah) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(middah)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation creating middah",
				"error", result.Error,
				"name_transliterated", middah.NameTransliterated,
			)
			return translated
		}
		logger.Error("Error creating middah in DB",
			"error", result.Error,
			"name_transliterated", middah.NameTransliterated,
		)
		return fmt.Errorf("gormMiddahRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMiddahRepository) FindByName(ctx context.Context, db *gorm.DB, nameTransliterated string) (*model.Middah, error) {
	logger := middleware.GetLogger(ctx)
	var middah model.Middah
	result := db.WithContext(ctx).Where("name_transliterated = ?", nameTransliterated).First(&middah)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding middah in DB",
			"error", result.Error,
			"name_transliterated", nameTransliterated,
		)
		return nil, fmt.Errorf("gormMiddahRepository.FindByName: %w", result.Error)
	}
	return &middah, nil
}

func (r *gormMiddahRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Middah, error) {
	logger := middleware.GetLogger(ctx)
	var middot []*model.Middah
	result := db.WithContext(ctx).Order("name_transliterated").Find(&middot)
	if result.Error != nil {
		logger.Error("Error listing middot in DB", "error", result.Error)
		return nil, fmt.Errorf("gormMiddahRepository.List: %w", result.Error)
	}
	return middot, nil
}

func (r *gormMiddahRepository) Delete(ctx context.Context, tx *gorm.DB, nameTransliterated string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("name_transliterated = ?", nameTransliterated).Delete(&model.Middah{})
	if result.Error != nil {
		// Dependent phrases/texts/kabbalot block the delete; there is no
		// cascade on middot.
		if translated := translateConstraintError(result.Error, "Middah is referenced by dependent rows"); translated != result.Error {
			logger.Warn("Constraint violation deleting middah",
				"error", result.Error,
				"name_transliterated", nameTransliterated,
			)
			return translated
		}
		logger.Error("Error deleting middah in DB",
			"error", result.Error,
			"name_transliterated", nameTransliterated,
		)
		return fmt.Errorf("gormMiddahRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
