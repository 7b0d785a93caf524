// internal/service/daily_text_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_dailyTextService_CreateDailyText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewDailyTextService(db, repository.NewGormDailyTextRepository())

	require.NoError(t, db.Create(&model.Middah{
		NameTransliterated: "anavah", NameHebrew: "ענווה", NameEnglish: "Humility",
	}).Error)

	text, err := svc.CreateDailyText(ctx, &model.CreateDailyTextRequest{
		Middah:     "anavah",
		SefariaURL: strPtr("https://www.sefaria.org/Mesillat_Yesharim.22"),
		Title:      strPtr("On Humility"),
	})
	require.NoError(t, err)
	require.NotZero(t, text.ID)
	assert.Equal(t, "anavah", text.Middah)
	assert.WithinDuration(t, time.Now().UTC(), text.CreatedAt, 5*time.Second)
	assert.Equal(t, text.CreatedAt, text.UpdatedAt)
}

func Test_dailyTextService_PatchDailyText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewDailyTextService(db, repository.NewGormDailyTextRepository())

	require.NoError(t, db.Create(&model.Middah{
		NameTransliterated: "anavah", NameHebrew: "ענווה", NameEnglish: "Humility",
	}).Error)

	created, err := svc.CreateDailyText(ctx, &model.CreateDailyTextRequest{
		Middah:  "anavah",
		Title:   strPtr("Original title"),
		Content: strPtr("Original content"),
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	patched, err := svc.PatchDailyText(ctx, created.ID, &model.PatchDailyTextRequest{
		Title: strPtr("New title"),
	})
	require.NoError(t, err)

	// Only the named field changed.
	assert.Equal(t, "New title", *patched.Title)
	assert.Equal(t, "Original content", *patched.Content)
	assert.Equal(t, "anavah", patched.Middah)

	// updated_at moves, created_at does not.
	assert.True(t, patched.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt.Unix(), patched.CreatedAt.Unix())
}

func Test_dailyTextService_PatchDailyText_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewDailyTextService(db, repository.NewGormDailyTextRepository())

	_, err := svc.PatchDailyText(ctx, 4242, &model.PatchDailyTextRequest{Title: strPtr("x")})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func Test_dailyTextService_DeleteDailyText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewDailyTextService(db, repository.NewGormDailyTextRepository())

	require.NoError(t, db.Create(&model.Middah{
		NameTransliterated: "anavah", NameHebrew: "ענווה", NameEnglish: "Humility",
	}).Error)

	created, err := svc.CreateDailyText(ctx, &model.CreateDailyTextRequest{Middah: "anavah"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDailyText(ctx, created.ID))

	_, err = svc.GetDailyText(ctx, created.ID)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	err = svc.DeleteDailyText(ctx, created.ID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
