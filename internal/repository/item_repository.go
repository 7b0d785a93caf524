//go:generate mockery --name ItemRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.Item) error
	FindByID(ctx context.Context, db *gorm.DB, itemID uuid.UUID) (*model.Item, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Item, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) ([]*model.Item, error)
	Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
}

type gormItemRepository struct{}

func NewGormItemRepository() ItemRepository {
	return &gormItemRepository{}
}

func (r *gormItemRepository) Create(ctx context.Context, tx *gorm.DB, item *model.Item) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(item)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid owner specified"); translated != result.Error {
			logger.Warn("Constraint violation creating item", "error", result.Error, "owner_id", item.OwnerID.String())
			return translated
		}
		logger.Error("Error creating item in DB", "error", result.Error, "owner_id", item.OwnerID.String())
		return fmt.Errorf("gormItemRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormItemRepository) FindByID(ctx context.Context, db *gorm.DB, itemID uuid.UUID) (*model.Item, error) {
	logger := middleware.GetLogger(ctx)
	var item model.Item
	result := db.WithContext(ctx).Where("id = ?", itemID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding item in DB", "error", result.Error, "item_id", itemID.String())
		return nil, fmt.Errorf("gormItemRepository.FindByID: %w", result.Error)
	}
	return &item, nil
}

func (r *gormItemRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Item, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.Item
	result := db.WithContext(ctx).Order("id").Find(&items)
	if result.Error != nil {
		logger.Error("Error listing items in DB", "error", result.Error)
		return nil, fmt.Errorf("gormItemRepository.List: %w", result.Error)
	}
	return items, nil
}

func (r *gormItemRepository) ListByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) ([]*model.Item, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.Item
	result := db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&items)
	if result.Error != nil {
		logger.Error("Error listing items by owner in DB", "error", result.Error, "owner_id", ownerID.String())
		return nil, fmt.Errorf("gormItemRepository.ListByOwner: %w", result.Error)
	}
	return items, nil
}

func (r *gormItemRepository) Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Item{}).Where("id = ?", itemID).Updates(updates)
	if result.Error != nil {
		if translated := translateConstraintError(result.Error, "invalid owner specified"); translated != result.Error {
			logger.Warn("Constraint violation updating item", "error", result.Error, "item_id", itemID.String())
			return translated
		}
		logger.Error("Error updating item in DB", "error", result.Error, "item_id", itemID.String())
		return fmt.Errorf("gormItemRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormItemRepository) Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", itemID).Delete(&model.Item{})
	if result.Error != nil {
		logger.Error("Error deleting item in DB", "error", result.Error, "item_id", itemID.String())
		return fmt.Errorf("gormItemRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
