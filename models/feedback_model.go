package models

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackScores struct {
	TechnicalSkills     float64 `json:"technical_skills"`
	CommunicationSkills float64 `json:"communication_skills"`
	ProblemSolving      float64 `json:"problem_solving"`
	CultureFit          float64 `json:"culture_fit"`
	Overall             float64 `json:"overall"`
}

type SentimentMetrics struct {
	Confidence        int `json:"confidence"`
	Clarity           int `json:"clarity"`
	TechnicalAccuracy int `json:"technical_accuracy"`
	InterviewPace     int `json:"interview_pace"`
}

type LearningResource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Link  string `json:"link"`
}

type FeedbackReport struct {
	ID                   uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterviewID          uuid.UUID          `gorm:"type:uuid;not null;unique" json:"interview_id"`
	StudentID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"student_id"`
	InterviewerID        uuid.UUID          `gorm:"type:uuid;not null" json:"interviewer_id"`
	Scores               FeedbackScores     `gorm:"embedded;embeddedPrefix:score_" json:"scores"`
	Strengths            []string           `gorm:"serializer:json" json:"strengths"`
	AreasForImprovement  []string           `gorm:"serializer:json" json:"areas_for_improvement"`
	AdditionalComments   string             `gorm:"type:text" json:"additional_comments"`
	Sentiment            SentimentMetrics   `gorm:"embedded;embeddedPrefix:sentiment_" json:"sentiment_analysis"`
	RecommendedResources []LearningResource `gorm:"serializer:json" json:"recommended_resources"`
	PracticeQuestions    []string           `gorm:"serializer:json" json:"practice_questions"`
	ReportURL            *string            `gorm:"type:text" json:"report_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
