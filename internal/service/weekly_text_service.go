//go:generate mockery --name WeeklyTextService --output ./mocks --outpkg mocks --case=underscore
// internal/service/weekly_text_service.go
package service

import (
	"context"
	"time"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"gorm.io/gorm"
)

type WeeklyTextService interface {
	CreateWeeklyText(ctx context.Context, req *model.CreateWeeklyTextRequest) (*model.WeeklyText, error)
	GetWeeklyText(ctx context.Context, id uint) (*model.WeeklyText, error)
	ListWeeklyTexts(ctx context.Context) ([]*model.WeeklyText, error)
	PatchWeeklyText(ctx context.Context, id uint, req *model.PatchWeeklyTextRequest) (*model.WeeklyText, error)
	DeleteWeeklyText(ctx context.Context, id uint) error
}

type weeklyTextService struct {
	db   *gorm.DB
	repo repository.WeeklyTextRepository
}

func NewWeeklyTextService(db *gorm.DB, repo repository.WeeklyTextRepository) WeeklyTextService {
	return &weeklyTextService{db: db, repo: repo}
}

func (s *weeklyTextService) CreateWeeklyText(ctx context.Context, req *model.CreateWeeklyTextRequest) (*model.WeeklyText, error) {
	now := time.Now().UTC()
	text := &model.WeeklyText{
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

func (s *weeklyTextService) GetWeeklyText(ctx context.Context, id uint) (*model.WeeklyText, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *weeklyTextService) ListWeeklyTexts(ctx context.Context) ([]*model.WeeklyText, error) {
	return s.repo.List(ctx, s.db)
}

func (s *weeklyTextService) PatchWeeklyText(ctx context.Context, id uint, req *model.PatchWeeklyTextRequest) (*model.WeeklyText, error) {
	var updated *model.WeeklyText
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		updates := map[string]interface{}{}
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

func (s *weeklyTextService) DeleteWeeklyText(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}
