//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mussar_keep/internal/config"
	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db   *gorm.DB
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthService(db *gorm.DB, repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{db: db, repo: repo, cfg: cfg}
}

// errBadCredentials deliberately does not reveal whether the email exists.
var errBadCredentials = model.NewAppError("INVALID_CREDENTIALS", "Incorrect email or password", model.ErrInvalidInput)

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.repo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		logger.Debug("Password mismatch on login", "email", req.Email)
		return nil, errBadCredentials
	}
	if !user.IsActive {
		return nil, model.NewAppError("INACTIVE_USER", "Inactive user", model.ErrInvalidInput)
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Error signing access token", "error", err, "user_id", user.ID.String())
		return nil, err
	}
	return &model.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpireMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", fmt.Errorf("authService.issueToken: %w", err)
	}
	return signed, nil
}
