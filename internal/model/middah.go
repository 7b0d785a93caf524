// internal/model/middah.go
package model

// Middah is a character trait. It is keyed by its transliterated name and acts
// as the foreign-key anchor for reminder phrases, daily texts and kabbalot.
type Middah struct {
	NameTransliterated string `gorm:"primaryKey;size:80" json:"name_transliterated"`
	NameHebrew         string `gorm:"size:80;not null;uniqueIndex:uq_middot_name_hebrew" json:"name_hebrew"`
	NameEnglish        string `gorm:"size:80;not null;uniqueIndex:uq_middot_name_english" json:"name_english"`
}

func (Middah) TableName() string {
	return "middot"
}

type CreateMiddahRequest struct {
	NameTransliterated string `json:"name_transliterated" validate:"required,max=80"`
	NameHebrew         string `json:"name_hebrew" validate:"required,max=80"`
	NameEnglish        string `json:"name_english" validate:"required,max=80"`
}
