// internal/service/main_test.go
package service

import (
	"fmt"
	"testing"

	"mussar_keep/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
