// internal/model/weekly_text.go
package model

import "time"

// WeeklyText is a study text not bound to any middah.
type WeeklyText struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SefariaURL *string   `gorm:"uniqueIndex:uq_weekly_texts_sefaria_url" json:"sefaria_url"`
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (WeeklyText) TableName() string {
	return "weekly_texts"
}

type CreateWeeklyTextRequest struct {
	SefariaURL *string `json:"sefaria_url"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
}

type PatchWeeklyTextRequest struct {
	SefariaURL *string `json:"sefaria_url,omitempty"`
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
}
