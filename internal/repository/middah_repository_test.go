// internal/repository/middah_repository_test.go
package repository

import (
	"context"
	"errors"
	"testing"

	"mussar_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormMiddahRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMiddahRepository()

	middah := &model.Middah{
		NameTransliterated: "anavah",
		NameHebrew:         "ענווה",
		NameEnglish:        "Humility",
	}
	require.NoError(t, repo.Create(ctx, db, middah))

	found, err := repo.FindByName(ctx, db, "anavah")
	require.NoError(t, err)
	assert.Equal(t, "ענווה", found.NameHebrew)
	assert.Equal(t, "Humility", found.NameEnglish)
}

func Test_gormMiddahRepository_FindByName_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMiddahRepository()

	_, err := repo.FindByName(ctx, db, "no-such-middah")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func Test_gormMiddahRepository_List_OrderedByName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMiddahRepository()

	for _, m := range []*model.Middah{
		{NameTransliterated: "zerizut", NameHebrew: "זריזות", NameEnglish: "Zeal"},
		{NameTransliterated: "anavah", NameHebrew: "ענווה", NameEnglish: "Humility"},
		{NameTransliterated: "savlanut", NameHebrew: "סבלנות", NameEnglish: "Patience"},
	} {
		require.NoError(t, repo.Create(ctx, db, m))
	}

	middot, err := repo.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, middot, 3)
	assert.Equal(t, "anavah", middot[0].NameTransliterated)
	assert.Equal(t, "savlanut", middot[1].NameTransliterated)
	assert.Equal(t, "zerizut", middot[2].NameTransliterated)
}

func Test_gormMiddahRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMiddahRepository()

	require.NoError(t, repo.Create(ctx, db, &model.Middah{
		NameTransliterated: "emet", NameHebrew: "אמת", NameEnglish: "Truth",
	}))

	require.NoError(t, repo.Delete(ctx, db, "emet"))

	_, err := repo.FindByName(ctx, db, "emet")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func Test_gormMiddahRepository_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormMiddahRepository()

	err := repo.Delete(ctx, db, "no-such-middah")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
