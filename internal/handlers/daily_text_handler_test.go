// internal/handlers/daily_text_handler_test.go
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDailyTextRouter(t *testing.T, user *model.User) (*mocks.DailyTextService, chi.Router) {
	t.Helper()
	mockService := mocks.NewDailyTextService(t)
	handler := handlers.NewDailyTextHandler(mockService, testLogger())
	r := chi.NewRouter()
	r.Use(withUser(user))
	r.Mount("/daily_texts", handler.Routes())
	return mockService, r
}

func TestDailyTextHandler_GetDailyText_InvalidID(t *testing.T) {
	_, router := newDailyTextRouter(t, regularUser())

	req := createRequest(t, "GET", "/daily_texts/not-a-number", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// A malformed ID is a client error, not a missing resource.
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid id in URL", decodeDetail(t, rr))
}

func TestDailyTextHandler_PatchDailyText(t *testing.T) {
	patchBody := model.PatchDailyTextRequest{Title: strPtr("New title")}
	patched := &model.DailyText{
		ID:     7,
		Middah: "anavah",
		Title:  strPtr("New title"),
	}

	tests := []struct {
		name           string
		user           *model.User
		url            string
		body           interface{}
		setupMock      func(m *mocks.DailyTextService)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "superuser patches title",
			user: superuser(),
			url:  "/daily_texts/7",
			body: patchBody,
			setupMock: func(m *mocks.DailyTextService) {
				m.On("PatchDailyText", mock.Anything, uint(7), &patchBody).Return(patched, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "regular user is forbidden",
			user:           regularUser(),
			url:            "/daily_texts/7",
			body:           patchBody,
			setupMock:      func(m *mocks.DailyTextService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unknown id is 404",
			user: superuser(),
			url:  "/daily_texts/999",
			body: patchBody,
			setupMock: func(m *mocks.DailyTextService) {
				m.On("PatchDailyText", mock.Anything, uint(999), &patchBody).Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "duplicate sefaria_url maps to 400",
			user: superuser(),
			url:  "/daily_texts/7",
			body: patchBody,
			setupMock: func(m *mocks.DailyTextService) {
				m.On("PatchDailyText", mock.Anything, uint(7), &patchBody).
					Return(nil, model.NewAppError("DUPLICATE_ENTITY", "Daily text with this sefaria_url already exists", model.ErrDuplicate)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Daily text with this sefaria_url already exists",
		},
		{
			name:           "unknown body field is rejected",
			user:           superuser(),
			url:            "/daily_texts/7",
			body:           map[string]string{"nonsense": "x"},
			setupMock:      func(m *mocks.DailyTextService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newDailyTextRouter(t, tc.user)
			tc.setupMock(mockService)

			req := createRequest(t, "PATCH", tc.url, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedDetail != "" {
				assert.Equal(t, tc.expectedDetail, decodeDetail(t, rr))
			}
			if tc.expectedStatus == http.StatusOK {
				var resp model.DailyText
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.NotNil(t, resp.Title)
				assert.Equal(t, "New title", *resp.Title)
			}
		})
	}
}

func TestDailyTextHandler_PostDailyText(t *testing.T) {
	validBody := model.CreateDailyTextRequest{
		Middah: "anavah",
		Title:  strPtr("On Humility"),
	}
	created := &model.DailyText{ID: 1, Middah: "anavah", Title: strPtr("On Humility")}

	t.Run("superuser creates", func(t *testing.T) {
		mockService, router := newDailyTextRouter(t, superuser())
		mockService.On("CreateDailyText", mock.Anything, &validBody).Return(created, nil).Once()

		req := createRequest(t, "POST", "/daily_texts", validBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("unknown middah maps to 400", func(t *testing.T) {
		mockService, router := newDailyTextRouter(t, superuser())
		mockService.On("CreateDailyText", mock.Anything, &validBody).
			Return(nil, model.NewAppError("INVALID_REFERENCE", "invalid middah specified", model.ErrInvalidReference)).Once()

		req := createRequest(t, "POST", "/daily_texts", validBody)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid middah specified", decodeDetail(t, rr))
	})

	t.Run("missing middah fails validation", func(t *testing.T) {
		_, router := newDailyTextRouter(t, superuser())

		req := createRequest(t, "POST", "/daily_texts", map[string]string{"title": "no middah"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDailyTextHandler_DeleteDailyText(t *testing.T) {
	mockService, router := newDailyTextRouter(t, superuser())
	mockService.On("DeleteDailyText", mock.Anything, uint(3)).Return(nil).Once()

	req := createRequest(t, "DELETE", "/daily_texts/3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
