//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	PatchUser(ctx context.Context, userID uuid.UUID, req *model.PatchUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// ResolveUser loads the user behind a verified token subject.
	ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error)

	// EnsureFirstSuperuser creates the bootstrap superuser if no user with
	// the configured email exists yet.
	EnsureFirstSuperuser(ctx context.Context, email, password string) error
}

type userService struct {
	db   *gorm.DB
	repo repository.UserRepository
}

func NewUserService(db *gorm.DB, repo repository.UserRepository) UserService {
	return &userService{db: db, repo: repo}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashPassword: %w", err)
	}
	return string(hashed), nil
}

func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:             uuid.New(),
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
		FullName:       req.FullName,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, s.db, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx, s.db)
}

func (s *userService) PatchUser(ctx context.Context, userID uuid.UUID, req *model.PatchUserRequest) (*model.User, error) {
	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, userID); err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Password != nil {
			hashed, err := hashPassword(*req.Password)
			if err != nil {
				return err
			}
			updates["hashed_password"] = hashed
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if req.IsSuperuser != nil {
			updates["is_superuser"] = *req.IsSuperuser
		}
		if req.FullName != nil {
			updates["full_name"] = *req.FullName
		}
		if err := s.repo.Update(ctx, tx, userID, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.FindByID(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, userID)
	})
}

func (s *userService) ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, s.db, userID)
}

func (s *userService) EnsureFirstSuperuser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.repo.FindByEmail(ctx, s.db, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    true,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, user)
	})
	if err != nil {
		return err
	}
	slog.Info("Created first superuser", "email", email)
	return nil
}
