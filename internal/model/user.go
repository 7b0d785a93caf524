// internal/model/user.go
package model

import "github.com/google/uuid"

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	// No column defaults: with a default tag GORM omits zero values from the
	// INSERT, so an explicit is_active=false would be silently lost. The
	// service sets the defaults before insert.
	IsActive       bool      `gorm:"not null" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null" json:"is_superuser"`
	FullName       *string   `gorm:"size:255" json:"full_name"`

	// Items are removed together with their owner.
	Items []Item `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const CurrentUserKey ContextKey = "currentUser"

type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=128"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}

type PatchUserRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}
