package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

type TrainerMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
