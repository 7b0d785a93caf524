//go:generate mockery --name DailyTextService --output ./mocks --outpkg mocks --case=underscore
// internal/service/daily_text_service.go
package service

import (
	"context"
	"time"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"gorm.io/gorm"
)

type DailyTextService interface {
	CreateDailyText(ctx context.Context, req *model.CreateDailyTextRequest) (*model.DailyText, error)
	GetDailyText(ctx context.Context, id uint) (*model.DailyText, error)
	ListDailyTexts(ctx context.Context) ([]*model.DailyText, error)
	PatchDailyText(ctx context.Context, id uint, req *model.PatchDailyTextRequest) (*model.DailyText, error)
	DeleteDailyText(ctx context.Context, id uint) error
}

type dailyTextService struct {
	db   *gorm.DB
	repo repository.DailyTextRepository
}

func NewDailyTextService(db *gorm.DB, repo repository.DailyTextRepository) DailyTextService {
	return &dailyTextService{db: db, repo: repo}
}

func (s *dailyTextService) CreateDailyText(ctx context.Context, req *model.CreateDailyTextRequest) (*model.DailyText, error) {
	now := time.Now().UTC()
	text := &model.DailyText{
		Middah:     req.Middah,
		SefariaURL: req.SefariaURL,
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, text)
	})
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (s *dailyTextService) GetDailyText(ctx context.Context, id uint) (*model.DailyText, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *dailyTextService) ListDailyTexts(ctx context.Context) ([]*model.DailyText, error) {
	return s.repo.List(ctx, s.db)
}

// PatchDailyText applies only the provided fields; created_at is never
// touched and updated_at is always refreshed, in the same unit of work.
func (s *dailyTextService) PatchDailyText(ctx context.Context, id uint, req *model.PatchDailyTextRequest) (*model.DailyText, error) {
	var updated *model.DailyText
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Middah != nil {
			updates["middah"] = *req.Middah
		}
		if req.SefariaURL != nil {
			updates["sefaria_url"] = *req.SefariaURL
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
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

func (s *dailyTextService) DeleteDailyText(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}
