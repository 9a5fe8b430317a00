package models

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilitySlot struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewerID uuid.UUID `gorm:"type:uuid;not null;index" json:"interviewer_id"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	IsBooked      bool      `gorm:"not null;default:false" json:"is_booked"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
