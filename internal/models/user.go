package models

import (
	"time"

	"gorm.io/gorm"
)

// UserAuth is an operator account for the article registry.
type UserAuth struct {
	ID                string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Username          string     `gorm:"unique;not null" json:"username"`
	Password          string     `gorm:"not null" json:"-"`
	Email             string     `gorm:"unique;not null" json:"email"`
	Name              string     `json:"name,omitempty"`
	Role              string     `gorm:"default:'operator'" json:"role"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	PreferredLanguage string     `gorm:"default:'it'" json:"preferred_language"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserAuth) TableName() string { return "user_auths" }
