//go:generate mockery --name ItemService --output ./mocks --outpkg mocks --case=underscore
// internal/service/item_service.go
package service

import (
	"context"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemService interface {
	CreateItem(ctx context.Context, current *model.User, req *model.CreateItemRequest) (*model.Item, error)
	GetItem(ctx context.Context, current *model.User, itemID uuid.UUID) (*model.Item, error)
	ListItems(ctx context.Context, current *model.User) ([]*model.Item, error)
	PatchItem(ctx context.Context, current *model.User, itemID uuid.UUID, req *model.PatchItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, current *model.User, itemID uuid.UUID) error
}

type itemService struct {
	db   *gorm.DB
	repo repository.ItemRepository
}

func NewItemService(db *gorm.DB, repo repository.ItemRepository) ItemService {
	return &itemService{db: db, repo: repo}
}

// canAccess reports whether the current user may read or modify the item.
// Superusers see everything, everyone else only their own items.
func canAccess(current *model.User, item *model.Item) bool {
	return current.IsSuperuser || item.OwnerID == current.ID
}

var errNotOwner = model.NewAppError("FORBIDDEN", "Not enough permissions", model.ErrForbidden)

func (s *itemService) CreateItem(ctx context.Context, current *model.User, req *model.CreateItemRequest) (*model.Item, error) {
	item := &model.Item{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     current.ID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, current *model.User, itemID uuid.UUID) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, s.db, itemID)
	if err != nil {
		return nil, err
	}
	if !canAccess(current, item) {
		return nil, errNotOwner
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, current *model.User) ([]*model.Item, error) {
	if current.IsSuperuser {
		return s.repo.List(ctx, s.db)
	}
	return s.repo.ListByOwner(ctx, s.db, current.ID)
}

func (s *itemService) PatchItem(ctx context.Context, current *model.User, itemID uuid.UUID, req *model.PatchItemRequest) (*model.Item, error) {
	var updated *model.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindByID(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if !canAccess(current, item) {
			return errNotOwner
		}
		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if err := s.repo.Update(ctx, tx, itemID, updates); err != nil {
			return err
		}
		updated, err = s.repo.FindByID(ctx, tx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, current *model.User, itemID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindByID(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if !canAccess(current, item) {
			return errNotOwner
		}
		return s.repo.Delete(ctx, tx, itemID)
	})
}
