package models

import (
	"time"

	"github.com/google/uuid"
)

type TrainingModule struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	TotalLessons int       `gorm:"not null" json:"total_lessons"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	CreatedAt    time.Time `json:"-"`
}

type TrainingProgress struct {
	StudentID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	ModuleID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"module_id"`
	CompletedLessons int       `gorm:"not null;default:0" json:"completed_lessons"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PracticeQuestion struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Question      string     `gorm:"type:text;not null" json:"question"`
	Description   string     `gorm:"type:text" json:"description"`
	Difficulty    string     `gorm:"size:20;not null" json:"difficulty"`
	Category      string     `gorm:"size:100;not null" json:"category"`
	Tags          []string   `gorm:"serializer:json" json:"tags"`
	Company       string     `gorm:"size:255" json:"company"`
	Attempts      int        `gorm:"default:0" json:"attempts"`
	LastAttempted *time.Time `json:"last_attempted"`
	Score         int        `gorm:"default:0" json:"score"`
	Solved        bool       `gorm:"default:false" json:"solved"`
}
