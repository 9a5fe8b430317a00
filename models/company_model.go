package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"size:255;not null;unique" json:"name"`
	LogoURL          string    `gorm:"size:255" json:"logo_url"`
	Description      string    `gorm:"type:text" json:"description"`
	Roles            []string  `gorm:"serializer:json" json:"roles"`
	InterviewerCount int       `gorm:"default:0" json:"interviewer_count"`
	Rating           float32   `gorm:"default:0" json:"rating"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
