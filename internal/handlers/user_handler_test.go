// internal/handlers/user_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mussar_keep/internal/handlers"
	"mussar_keep/internal/model"
	"mussar_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T, user *model.User) (*mocks.UserService, chi.Router) {
	t.Helper()
	mockService := mocks.NewUserService(t)
	handler := handlers.NewUserHandler(mockService, testLogger())
	r := chi.NewRouter()
	r.Use(withUser(user))
	r.Mount("/users", handler.Routes())
	return mockService, r
}

func TestUserHandler_GetMe(t *testing.T) {
	current := regularUser()
	_, router := newUserRouter(t, current)

	req := createRequest(t, "GET", "/users/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, current.ID, resp.ID)
	assert.Equal(t, current.Email, resp.Email)

	// The password hash never leaves the server.
	assert.NotContains(t, rr.Body.String(), "hashed_password")
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("user can fetch self", func(t *testing.T) {
		current := regularUser()
		mockService, router := newUserRouter(t, current)
		mockService.On("GetUser", mock.Anything, current.ID).Return(current, nil).Once()

		req := createRequest(t, "GET", "/users/"+current.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("user cannot fetch someone else", func(t *testing.T) {
		_, router := newUserRouter(t, regularUser())

		req := createRequest(t, "GET", "/users/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "The user doesn't have enough privileges", decodeDetail(t, rr))
	})

	t.Run("superuser can fetch anyone", func(t *testing.T) {
		other := regularUser()
		mockService, router := newUserRouter(t, superuser())
		mockService.On("GetUser", mock.Anything, other.ID).Return(other, nil).Once()

		req := createRequest(t, "GET", "/users/"+other.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed uuid is 400", func(t *testing.T) {
		_, router := newUserRouter(t, superuser())

		req := createRequest(t, "GET", "/users/not-a-uuid", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandler_ListUsers_RequiresSuperuser(t *testing.T) {
	t.Run("regular user is forbidden", func(t *testing.T) {
		_, router := newUserRouter(t, regularUser())

		req := createRequest(t, "GET", "/users", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("superuser lists", func(t *testing.T) {
		mockService, router := newUserRouter(t, superuser())
		mockService.On("ListUsers", mock.Anything).
			Return([]*model.User{regularUser(), regularUser()}, nil).Once()

		req := createRequest(t, "GET", "/users", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUserHandler_PostUser(t *testing.T) {
	validBody := model.CreateUserRequest{
		Email:    "new@example.com",
		Password: "a long password",
	}

	t.Run("superuser creates user", func(t *testing.T) {
		mockService, router := newUserRouter(t, superuser())
		mockService.On("CreateUser", mock.Anything, &validBody).
			Return(&model.User{ID: uuid.New(), Email: validBody.Email, IsActive: true}, nil).Once()

		req := createRequest(t, "POST", "/users", validBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		mockService, router := newUserRouter(t, superuser())
		mockService.On("CreateUser", mock.Anything, &validBody).
			Return(nil, model.NewAppError("DUPLICATE_ENTITY", "User with this email already exists", model.ErrDuplicate)).Once()

		req := createRequest(t, "POST", "/users", validBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User with this email already exists", decodeDetail(t, rr))
	})

	t.Run("short password fails validation", func(t *testing.T) {
		_, router := newUserRouter(t, superuser())

		req := createRequest(t, "POST", "/users", model.CreateUserRequest{Email: "x@example.com", Password: "short"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("superuser deletes another user", func(t *testing.T) {
		target := uuid.New()
		mockService, router := newUserRouter(t, superuser())
		mockService.On("DeleteUser", mock.Anything, target).Return(nil).Once()

		req := createRequest(t, "DELETE", "/users/"+target.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("superuser cannot delete self", func(t *testing.T) {
		current := superuser()
		_, router := newUserRouter(t, current)

		req := createRequest(t, "DELETE", "/users/"+current.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Super users are not allowed to delete themselves", decodeDetail(t, rr))
	})
}
