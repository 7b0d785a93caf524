//go:generate mockery --name ReminderPhraseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"gorm.io/gorm"
)

type ReminderPhraseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, phrase *model.ReminderPhrase) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.ReminderPhrase, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.ReminderPhrase, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type gormReminderPhraseRepository struct{}

func NewGormReminderPhraseRepository() ReminderPhraseRepository {
	return &gormReminderPhraseRepository{}
}

func (r *gormReminderPhraseRepository) Create(ctx context.Context, tx *gorm.DB, phrase *model.ReminderPhrase) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(phrase)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation creating reminder phrase",
				"error", result.Error,
				"middah", phrase.Middah,
			)
			return translated
		}
		logger.Error("Error creating reminder phrase in DB",
			"error", result.Error,
			"middah", phrase.Middah,
		)
		return fmt.Errorf("gormReminderPhraseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReminderPhraseRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.ReminderPhrase, error) {
	logger := middleware.GetLogger(ctx)
	var phrase model.ReminderPhrase
	result := db.WithContext(ctx).First(&phrase, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding reminder phrase in DB", "error", result.Error, "id", id)
		return nil, fmt.Errorf("gormReminderPhraseRepository.FindByID: %w", result.Error)
	}
	return &phrase, nil
}

func (r *gormReminderPhraseRepository) List(ctx context.Context, db *gorm.DB) ([]*model.ReminderPhrase, error) {
	logger := middleware.GetLogger(ctx)
	var phrases []*model.ReminderPhrase
	result := db.WithContext(ctx).Order("id").Find(&phrases)
	if result.Error != nil {
		logger.Error("Error listing reminder phrases in DB", "error", result.Error)
		return nil, fmt.Errorf("gormReminderPhraseRepository.List: %w", result.Error)
	}
	return phrases, nil
}

func (r *gormReminderPhraseRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.ReminderPhrase{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid middah specified"); translated != result.Error {
			logger.Warn("Constraint violation updating reminder phrase", "error", result.Error, "id", id)
			return translated
		}
		logger.Error("Error updating reminder phrase in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormReminderPhraseRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReminderPhraseRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.ReminderPhrase{}, id)
	if result.Error != nil {
		logger.Error("Error deleting reminder phrase in DB", "error", result.Error, "id", id)
		return fmt.Errorf("gormReminderPhraseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
