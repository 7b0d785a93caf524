//go:generate mockery --name KabbalahService --output ./mocks --outpkg mocks --case=underscore
// internal/service/kabbalah_service.go
package service

import (
	"context"
	"time"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"gorm.io/gorm"
)

type KabbalahService interface {
	CreateKabbalah(ctx context.Context, req *model.CreateKabbalahRequest) (*model.Kabbalah, error)
	GetKabbalah(ctx context.Context, id uint) (*model.Kabbalah, error)
	ListKabbalot(ctx context.Context) ([]*model.Kabbalah, error)
	PatchKabbalah(ctx context.Context, id uint, req *model.PatchKabbalahRequest) (*model.Kabbalah, error)
	DeleteKabbalah(ctx context.Context, id uint) error
}

type kabbalahService struct {
	db   *gorm.DB
	repo repository.KabbalahRepository
}

func NewKabbalahService(db *gorm.DB, repo repository.KabbalahRepository) KabbalahService {
	return &kabbalahService{db: db, repo: repo}
}

func (s *kabbalahService) CreateKabbalah(ctx context.Context, req *model.CreateKabbalahRequest) (*model.Kabbalah, error) {
	now := time.Now().UTC()
	kabbalah := &model.Kabbalah{
		Middah:      req.Middah,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, kabbalah)
	})
	if err != nil {
		return nil, err
	}
	return kabbalah, nil
}

func (s *kabbalahService) GetKabbalah(ctx context.Context, id uint) (*model.Kabbalah, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *kabbalahService) ListKabbalot(ctx context.Context) ([]*model.Kabbalah, error) {
	return s.repo.List(ctx, s.db)
}

func (s *kabbalahService) PatchKabbalah(ctx context.Context, id uint, req *model.PatchKabbalahRequest) (*model.Kabbalah, error) {
	var updated *model.Kabbalah
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Middah != nil {
			updates["middah"] = *req.Middah
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		updates["updated_at"] = time.Now().UTC()
		if err := s.repo.Update(ctx, tx, id, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.FindByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *kabbalahService) DeleteKabbalah(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}
