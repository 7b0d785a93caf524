//go:generate mockery --name ReminderPhraseService --output ./mocks --outpkg mocks --case=underscore
// internal/service/reminder_phrase_service.go
package service

import (
	"context"
	"time"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"gorm.io/gorm"
)

type ReminderPhraseService interface {
	CreateReminderPhrase(ctx context.Context, req *model.CreateReminderPhraseRequest) (*model.ReminderPhrase, error)
	GetReminderPhrase(ctx context.Context, id uint) (*model.ReminderPhrase, error)
	ListReminderPhrases(ctx context.Context) ([]*model.ReminderPhrase, error)
	PatchReminderPhrase(ctx context.Context, id uint, req *model.PatchReminderPhraseRequest) (*model.ReminderPhrase, error)
	DeleteReminderPhrase(ctx context.Context, id uint) error
}

type reminderPhraseService struct {
	db   *gorm.DB
	repo repository.ReminderPhraseRepository
}

func NewReminderPhraseService(db *gorm.DB, repo repository.ReminderPhraseRepository) ReminderPhraseService {
	return &reminderPhraseService{db: db, repo: repo}
}

func (s *reminderPhraseService) CreateReminderPhrase(ctx context.Context, req *model.CreateReminderPhraseRequest) (*model.ReminderPhrase, error) {
	now := time.Now().UTC()
	phrase := &model.ReminderPhrase{
		Middah:    req.Middah,
		Text:      req.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, phrase)
	})
	if err != nil {
		return nil, err
	}
	return phrase, nil
}

func (s *reminderPhraseService) GetReminderPhrase(ctx context.Context, id uint) (*model.ReminderPhrase, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *reminderPhraseService) ListReminderPhrases(ctx context.Context) ([]*model.ReminderPhrase, error) {
	return s.repo.List(ctx, s.db)
}

func (s *reminderPhraseService) PatchReminderPhrase(ctx context.Context, id uint, req *model.PatchReminderPhraseRequest) (*model.ReminderPhrase, error) {
	var updated *model.ReminderPhrase
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Middah != nil {
			updates["middah"] = *req.Middah
		}
		if req.Text != nil {
			updates["text"] = *req.Text
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

func (s *reminderPhraseService) DeleteReminderPhrase(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}
