//go:generate mockery --name MiddahService --output ./mocks --outpkg mocks --case=underscore
// internal/service/middah_service.go
package service

import (
	"context"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"gorm.io/gorm"
)

type MiddahService interface {
	CreateMiddah(ctx context.Context, req *model.CreateMiddahRequest) (*model.Middah, error)
	GetMiddah(ctx context.Context, nameTransliterated string) (*model.Middah, error)
	ListMiddot(ctx context.Context) ([]*model.Middah, error)
	DeleteMiddah(ctx context.Context, nameTransliterated string) error
}

type middahService struct {
	db   *gorm.DB
	repo repository.MiddahRepository
}

func NewMiddahService(db *gorm.DB, repo repository.MiddahRepository) MiddahService {
	return &middahService{db: db, repo: repo}
}

// CreateMiddah inserts the row and lets the unique constraints decide whether
// the names collide; there is no application-level pre-check.
func (s *middahService) CreateMiddah(ctx context.Context, req *model.CreateMiddahRequest) (*model.Middah, error) {
	middah := &model.Middah{
		NameTransliterated: req.NameTransliterated,
		NameHebrew:         req.NameHebrew,
		NameEnglish:        req.NameEnglish,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, middah)
	})
	if err != nil {
		return nil, err
	}
	return middah, nil
}

func (s *middahService) GetMiddah(ctx context.Context, nameTransliterated string) (*model.Middah, error) {
	return s.repo.FindByName(ctx, s.db, nameTransliterated)
}

func (s *middahService) ListMiddot(ctx context.Context) ([]*model.Middah, error) {
	return s.repo.List(ctx, s.db)
}

// DeleteMiddah hard-deletes. Dependent reminder phrases, daily texts and
// kabbalot block the delete via their FK constraints.
func (s *middahService) DeleteMiddah(ctx context.Context, nameTransliterated string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, nameTransliterated)
	})
}
