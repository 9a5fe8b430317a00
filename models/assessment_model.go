package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionCoding         = "coding"
	QuestionOpenEnded      = "open-ended"
)

const (
	AttemptNotStarted = "not-started"
	AttemptInProgress = "in-progress"
	AttemptCompleted  = "completed"
)

type AssessmentSection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AssessmentQuestion struct {
	ID            string   `json:"id"`
	SectionID     string   `json:"section_id"`
	Type          string   `json:"type"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	StarterCode   string   `json:"starter_code,omitempty"`
}

type Assessment struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string               `gorm:"size:255;not null" json:"title"`
	Description      string               `gorm:"type:text" json:"description"`
	TimeLimitMinutes int                  `gorm:"not null" json:"time_limit_minutes"`
	Sections         []AssessmentSection  `gorm:"serializer:json" json:"sections"`
	Questions        []AssessmentQuestion `gorm:"serializer:json" json:"questions"`
	CreatedAt        time.Time            `json:"-"`
}

type AssessmentAttempt struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AssessmentID uuid.UUID         `gorm:"type:uuid;not null" json:"assessment_id"`
	StudentID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"student_id"`
	State        string            `gorm:"size:20;not null;default:'not-started'" json:"state"`
	CurrentIndex int               `gorm:"not null;default:0" json:"current_index"`
	Answers      map[string]string `gorm:"serializer:json" json:"answers"`
	StartedAt    *time.Time        `json:"started_at"`
	CompletedAt  *time.Time        `json:"completed_at"`
	Score        *float64          `json:"score"`
}
