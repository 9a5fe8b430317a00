package store

import (
	"context"
	"errors"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrSlotUnavailable = errors.New("availability slot is no longer available")
	ErrStatusChanged   = errors.New("interview status changed in the meantime")
)

type InterviewerFilter struct {
	Query   string
	Company string
	Role    string
}

type PracticeFilter struct {
	Query      string
	Category   string
	Difficulty string
	Company    string
	Tags       []string
}

// Store is the persistence boundary for the API. MemoryStore and GormStore
// both satisfy it.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPlan(ctx context.Context, id uuid.UUID, plan string) error

	GetStudentProfile(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error)
	SaveStudentProfile(ctx context.Context, p *models.StudentProfile) error
	GetInterviewerProfile(ctx context.Context, userID uuid.UUID) (*models.InterviewerProfile, error)
	SaveInterviewerProfile(ctx context.Context, p *models.InterviewerProfile) error

	ListCompanies(ctx context.Context, query string) ([]models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListInterviewers(ctx context.Context, f InterviewerFilter) ([]models.InterviewerProfile, error)

	ListOpenSlots(ctx context.Context, interviewerID uuid.UUID, after time.Time) ([]models.AvailabilitySlot, error)
	ListSlots(ctx context.Context, interviewerID uuid.UUID) ([]models.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, s *models.AvailabilitySlot) error
	DeleteSlot(ctx context.Context, interviewerID, slotID uuid.UUID) error

	// BookInterview marks the interview's slot booked and stores the
	// interview in one step. It fails with ErrSlotUnavailable when the slot
	// is already booked.
	BookInterview(ctx context.Context, i *models.Interview) error
	GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	ListInterviewsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Interview, error)
	ListInterviewsByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]models.Interview, error)
	// TransitionInterview moves an interview from one status to another. It
	// fails with ErrStatusChanged when the stored status is no longer from.
	// Cancelling releases the slot; leaving cancelled books it again.
	TransitionInterview(ctx context.Context, id uuid.UUID, from, to string) (*models.Interview, error)
	// MarkReminderSent flags the reminder and leaves every other field alone.
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
	CountInterviewsSince(ctx context.Context, studentID uuid.UUID, since time.Time) (int64, error)
	ListInterviewsStartingBetween(ctx context.Context, status string, from, to time.Time) ([]models.Interview, error)

	CreateFeedback(ctx context.Context, f *models.FeedbackReport) error
	GetFeedback(ctx context.Context, id uuid.UUID) (*models.FeedbackReport, error)
	GetFeedbackByInterview(ctx context.Context, interviewID uuid.UUID) (*models.FeedbackReport, error)
	ListFeedbackByStudent(ctx context.Context, studentID uuid.UUID) ([]models.FeedbackReport, error)
	SetFeedbackReportURL(ctx context.Context, id uuid.UUID, url string) error

	ListTrainingModules(ctx context.Context) ([]models.TrainingModule, error)
	ListTrainingProgress(ctx context.Context, studentID uuid.UUID) ([]models.TrainingProgress, error)
	ListPracticeQuestions(ctx context.Context, f PracticeFilter) ([]models.PracticeQuestion, error)

	GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	CreateAttempt(ctx context.Context, a *models.AssessmentAttempt) error
	GetAttempt(ctx context.Context, id uuid.UUID) (*models.AssessmentAttempt, error)
	SaveAttempt(ctx context.Context, a *models.AssessmentAttempt) error

	AppendTrainerMessages(ctx context.Context, msgs ...models.TrainerMessage) error
	ListTrainerMessages(ctx context.Context, studentID uuid.UUID) ([]models.TrainerMessage, error)
}
