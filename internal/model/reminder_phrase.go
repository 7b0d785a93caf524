// internal/model/reminder_phrase.go
package model

import "time"

// ReminderPhrase is a short prompt attached to a middah. (middah, text) is
// unique so the same phrase cannot be registered twice for one trait.
type ReminderPhrase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Middah    string    `gorm:"size:80;not null;uniqueIndex:uq_reminder_phrases_middah_text" json:"middah"`
	Text      string    `gorm:"not null;uniqueIndex:uq_reminder_phrases_middah_text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MiddahRef *Middah `gorm:"foreignKey:Middah;references:NameTransliterated" json:"-"`
}

func (ReminderPhrase) TableName() string {
	return "reminder_phrases"
}

type CreateReminderPhraseRequest struct {
	Middah string `json:"middah" validate:"required,max=80"`
	Text   string `json:"text" validate:"required"`
}

type PatchReminderPhraseRequest struct {
	Middah *string `json:"middah,omitempty" validate:"omitempty,max=80"`
	Text   *string `json:"text,omitempty" validate:"omitempty,min=1"`
}
