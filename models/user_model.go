package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent     = "student"
	RoleInterviewer = "interviewer"
	RoleAdmin       = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`
	// Plan is the raw subscription tier label; policy.Resolve turns it into a Tier.
	Plan              string  `gorm:"size:20;not null;default:'free'" json:"plan"`
	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
