package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InterviewPending   = "pending"
	InterviewConfirmed = "confirmed"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

type Interview struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	InterviewerID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"interviewer_id"`
	AvailabilitySlotID uuid.UUID  `gorm:"type:uuid;not null" json:"availability_slot_id"`
	CompanyID          *uuid.UUID `gorm:"type:uuid" json:"company_id"`
	Role               string     `gorm:"size:255;not null" json:"role"`
	StartTime          time.Time  `gorm:"not null" json:"start_time"`
	EndTime            time.Time  `gorm:"not null" json:"end_time"`
	Status             string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	MeetingLink        *string    `gorm:"size:255" json:"meeting_link"`
	Notes              string     `gorm:"type:text" json:"notes"`
	Questions          []string   `gorm:"serializer:json" json:"questions"`
	ReminderSent       bool       `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Interview) Duration() time.Duration {
	return i.EndTime.Sub(i.StartTime)
}
