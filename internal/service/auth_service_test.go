// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"mussar_keep/internal/config"
	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"
	"mussar_keep/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireMinutes = 60
	return cfg
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hashed),
		IsActive:       active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func Test_authService_Login_Success(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cfg := testAuthConfig()
	svc := NewAuthService(db, repository.NewGormUserRepository(), cfg)

	user := seedUser(t, db, "rivka@example.com", "correct horse", true)

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: "rivka@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)

	// The token subject must round-trip to the user ID.
	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.SecretKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), sub)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
}

func Test_authService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewAuthService(db, repository.NewGormUserRepository(), testAuthConfig())

	seedUser(t, db, "rivka@example.com", "correct horse", true)

	_, err := svc.Login(ctx, &model.LoginRequest{Email: "rivka@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Incorrect email or password", appErr.Detail)
}

func Test_authService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewAuthService(db, repository.NewGormUserRepository(), testAuthConfig())

	_, err := svc.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Incorrect email or password", appErr.Detail)
	assert.Equal(t, 400, webutil.MapErrorToStatusCode(err))
}

func Test_authService_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewAuthService(db, repository.NewGormUserRepository(), testAuthConfig())

	seedUser(t, db, "dormant@example.com", "correct horse", false)

	_, err := svc.Login(ctx, &model.LoginRequest{Email: "dormant@example.com", Password: "correct horse"})
	require.Error(t, err)

	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Inactive user", appErr.Detail)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}
