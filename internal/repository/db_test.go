// internal/repository/db_test.go
package repository

import (
	"fmt"
	"testing"

	"mussar_keep/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database for one test. The DSN is
// namespaced by test name so parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Middah{},
		&model.ReminderPhrase{},
		&model.DailyText{},
		&model.Kabbalah{},
		&model.WeeklyText{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
