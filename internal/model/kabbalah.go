// internal/model/kabbalah.go
package model

import "time"

// Kabbalah is a commitment statement associated with a middah.
// (middah, description) is unique.
type Kabbalah struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Middah      string    `gorm:"size:80;not null;uniqueIndex:uq_kabbalot_middah_description" json:"middah"`
	Description string    `gorm:"not null;uniqueIndex:uq_kabbalot_middah_description" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	MiddahRef *Middah `gorm:"foreignKey:Middah;references:NameTransliterated" json:"-"`
}

func (Kabbalah) TableName() string {
	return "kabbalot"
}

type CreateKabbalahRequest struct {
	Middah      string `json:"middah" validate:"required,max=80"`
	Description string `json:"description" validate:"required"`
}

type PatchKabbalahRequest struct {
	Middah      *string `json:"middah,omitempty" validate:"omitempty,max=80"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
}
