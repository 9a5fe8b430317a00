package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
	"github.com/google/uuid"
)

const (
	ActionStart    = "start"
	ActionAnswer   = "answer"
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionSubmit   = "submit"
)

type AssessmentService struct {
	store store.Store
	now   func() time.Time
}

func NewAssessmentService(s store.Store) *AssessmentService {
	return &AssessmentService{store: s, now: time.Now}
}

type QuestionView struct {
	ID          string   `json:"id"`
	SectionID   string   `json:"section_id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	StarterCode string   `json:"starter_code,omitempty"`
	Answer      string   `json:"answer,omitempty"`
}

type AttemptView struct {
	Attempt         models.AssessmentAttempt `json:"attempt"`
	Title           string                   `json:"title"`
	TotalQuestions  int                      `json:"total_questions"`
	Progress        float64                  `json:"progress"`
	TimeRemaining   string                   `json:"time_remaining"`
	CurrentQuestion *QuestionView            `json:"current_question,omitempty"`
}

// PublicQuestions strips answers from an assessment before it is shown to a
// student.
func PublicQuestions(a *models.Assessment) []QuestionView {
	out := make([]QuestionView, len(a.Questions))
	for i, q := range a.Questions {
		out[i] = questionView(q, "")
	}
	return out
}

func questionView(q models.AssessmentQuestion, answer string) QuestionView {
	return QuestionView{
		ID:          q.ID,
		SectionID:   q.SectionID,
		Type:        q.Type,
		Question:    q.Prompt,
		Options:     q.Options,
		StarterCode: q.StarterCode,
		Answer:      answer,
	}
}

// CreateAttempt opens a not-started attempt for the student.
func (s *AssessmentService) CreateAttempt(ctx context.Context, assessmentID, studentID uuid.UUID) (*AttemptView, error) {
	a, err := s.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	attempt := &models.AssessmentAttempt{
		AssessmentID: assessmentID,
		StudentID:    studentID,
		State:        models.AttemptNotStarted,
		Answers:      map[string]string{},
	}
	if err := s.store.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return s.view(a, attempt), nil
}

func (s *AssessmentService) GetAttempt(ctx context.Context, attemptID, studentID uuid.UUID) (*AttemptView, error) {
	attempt, a, err := s.load(ctx, attemptID, studentID)
	if err != nil {
		return nil, err
	}
	return s.view(a, attempt), nil
}

// Apply performs one wizard action and persists the result.
func (s *AssessmentService) Apply(ctx context.Context, attemptID, studentID uuid.UUID, action, answer string) (*AttemptView, error) {
	attempt, a, err := s.load(ctx, attemptID, studentID)
	if err != nil {
		return nil, err
	}

	actionErr := Step(attempt, a, action, answer, s.now())
	if actionErr != nil && actionErr != ErrAssessmentState {
		return nil, actionErr
	}
	if err := s.store.SaveAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return s.view(a, attempt), actionErr
}

func (s *AssessmentService) load(ctx context.Context, attemptID, studentID uuid.UUID) (*models.AssessmentAttempt, *models.Assessment, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, nil, err
	}
	if attempt.StudentID != studentID {
		return nil, nil, store.ErrNotFound
	}
	a, err := s.store.GetAssessment(ctx, attempt.AssessmentID)
	if err != nil {
		return nil, nil, err
	}
	return attempt, a, nil
}

// Step applies an action to an attempt. The attempt only moves forward
// through not-started, in-progress and completed; previous and next move
// between questions inside in-progress. Next on the last question completes
// the attempt. An in-progress attempt past its time limit is completed before
// the action is considered.
func Step(attempt *models.AssessmentAttempt, a *models.Assessment, action, answer string, now time.Time) error {
	if attempt.State == models.AttemptInProgress && expired(attempt, a, now) {
		complete(attempt, a, now)
		return ErrAssessmentState
	}

	switch action {
	case ActionStart:
		if attempt.State != models.AttemptNotStarted {
			return ErrAssessmentState
		}
		attempt.State = models.AttemptInProgress
		attempt.CurrentIndex = 0
		attempt.StartedAt = &now
		return nil
	case ActionAnswer, ActionNext, ActionPrevious, ActionSubmit:
		if attempt.State != models.AttemptInProgress {
			return ErrAssessmentState
		}
	default:
		return fmt.Errorf("unknown assessment action %q", action)
	}

	last := len(a.Questions) - 1
	switch action {
	case ActionAnswer:
		if attempt.CurrentIndex < 0 || attempt.CurrentIndex > last {
			return ErrAssessmentState
		}
		if attempt.Answers == nil {
			attempt.Answers = map[string]string{}
		}
		attempt.Answers[a.Questions[attempt.CurrentIndex].ID] = answer
	case ActionNext:
		if attempt.CurrentIndex < last {
			attempt.CurrentIndex++
		} else {
			complete(attempt, a, now)
		}
	case ActionPrevious:
		if attempt.CurrentIndex > 0 {
			attempt.CurrentIndex--
		}
	case ActionSubmit:
		complete(attempt, a, now)
	}
	return nil
}

func expired(attempt *models.AssessmentAttempt, a *models.Assessment, now time.Time) bool {
	if attempt.StartedAt == nil || a.TimeLimitMinutes <= 0 {
		return false
	}
	return now.After(attempt.StartedAt.Add(time.Duration(a.TimeLimitMinutes) * time.Minute))
}

func complete(attempt *models.AssessmentAttempt, a *models.Assessment, now time.Time) {
	score := ScoreAttempt(attempt, a)
	attempt.State = models.AttemptCompleted
	attempt.CompletedAt = &now
	attempt.Score = &score
}

// ScoreAttempt is the percentage of multiple-choice questions answered
// correctly. Coding and open-ended answers are reviewed by a person.
func ScoreAttempt(attempt *models.AssessmentAttempt, a *models.Assessment) float64 {
	total, correct := 0, 0
	for _, q := range a.Questions {
		if q.Type != models.QuestionMultipleChoice {
			continue
		}
		total++
		if strings.TrimSpace(attempt.Answers[q.ID]) == q.CorrectAnswer {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

func (s *AssessmentService) view(a *models.Assessment, attempt *models.AssessmentAttempt) *AttemptView {
	v := &AttemptView{
		Attempt:        *attempt,
		Title:          a.Title,
		TotalQuestions: len(a.Questions),
	}

	remaining := time.Duration(a.TimeLimitMinutes) * time.Minute
	if attempt.StartedAt != nil {
		end := attempt.StartedAt.Add(remaining)
		if attempt.CompletedAt != nil {
			remaining = end.Sub(*attempt.CompletedAt)
		} else {
			remaining = end.Sub(s.now())
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	secs := int(remaining / time.Second)
	v.TimeRemaining = fmt.Sprintf("%02d:%02d", secs/60, secs%60)

	if attempt.State == models.AttemptInProgress && attempt.CurrentIndex < len(a.Questions) {
		q := a.Questions[attempt.CurrentIndex]
		qv := questionView(q, attempt.Answers[q.ID])
		v.CurrentQuestion = &qv
		v.Progress = math.Round(float64(attempt.CurrentIndex+1)/float64(len(a.Questions))*1000) / 10
	}
	if attempt.State == models.AttemptCompleted {
		v.Progress = 100
	}
	return v
}
