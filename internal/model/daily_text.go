// internal/model/daily_text.go
package model

import "time"

// DailyText is a study text for one middah, optionally linked to a Sefaria
// source. sefaria_url, title and content are nullable columns.
type DailyText struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Middah     string    `gorm:"size:80;not null;index" json:"middah"`
	SefariaURL *string   `gorm:"uniqueIndex:uq_daily_texts_sefaria_url" json:"sefaria_url"`
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	MiddahRef *Middah `gorm:"foreignKey:Middah;references:NameTransliterated" json:"-"`
}

func (DailyText) TableName() string {
	return "daily_texts"
}

type CreateDailyTextRequest struct {
	Middah     string  `json:"middah" validate:"required,max=80"`
	SefariaURL *string `json:"sefaria_url"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
}

type PatchDailyTextRequest struct {
	Middah     *string `json:"middah,omitempty" validate:"omitempty,max=80"`
	SefariaURL *string `json:"sefaria_url,omitempty"`
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
}
