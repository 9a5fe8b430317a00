package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillSummary struct {
	Overall            int   `json:"overall"`
	Technical          int   `json:"technical"`
	Communication      int   `json:"communication"`
	ProblemSolving     int   `json:"problem_solving"`
	SystemDesign       int   `json:"system_design"`
	CodingSpeed        int   `json:"coding_speed"`
	AlgorithmKnowledge int   `json:"algorithm_knowledge"`
	RecentProgress     []int `json:"recent_progress"`
}

type StudentProfile struct {
	UserID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"user_id"`
	Education     string       `gorm:"type:text" json:"education"`
	Skills        []string     `gorm:"serializer:json" json:"skills"`
	Experience    string       `gorm:"type:text" json:"experience"`
	ResumeURL     *string      `gorm:"type:text" json:"resume_url"`
	WeakAreas     []string     `gorm:"serializer:json" json:"weak_areas"`
	StrongAreas   []string     `gorm:"serializer:json" json:"strong_areas"`
	SkillScores   SkillSummary `gorm:"serializer:json" json:"skill_scores"`
	TargetRole    string       `gorm:"size:255" json:"target_role"`
	TargetCompany string       `gorm:"size:255" json:"target_company"`

	User      User      `gorm:"foreignkey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type InterviewerProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	Company         string    `gorm:"size:255;not null" json:"company"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	Specialization  []string  `gorm:"serializer:json" json:"specialization"`
	AvgRating       float32   `gorm:"default:0" json:"avg_rating"`
	ReviewCount     int       `gorm:"default:0" json:"review_count"`
	AvatarURL       string    `gorm:"size:255" json:"avatar_url"`

	User      User      `gorm:"foreignkey:UserID" json:"user"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
