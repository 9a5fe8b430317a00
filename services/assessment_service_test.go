package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
)

func TestAssessmentWizard(t *testing.T) {
	s := seededStore(t)
	svc := NewAssessmentService(s)
	ctx := context.Background()

	v, err := svc.CreateAttempt(ctx, data.AssessmentID, data.AlexID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	id := v.Attempt.ID
	if v.Attempt.State != models.AttemptNotStarted || v.CurrentQuestion != nil || v.TimeRemaining != "45:00" {
		t.Fatalf("Unexpected new attempt view: %+v", v)
	}

	if _, err := svc.Apply(ctx, id, data.AlexID, ActionNext, ""); !errors.Is(err, ErrAssessmentState) {
		t.Errorf("next before start: got %v, want ErrAssessmentState", err)
	}

	v, err = svc.Apply(ctx, id, data.AlexID, ActionStart, "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if v.CurrentQuestion == nil || v.CurrentQuestion.ID != "q1" || v.Progress != 25 {
		t.Fatalf("Unexpected first question: %+v", v)
	}

	steps := []struct{ action, answer string }{
		{ActionAnswer, "O(log n)"},
		{ActionNext, ""},
		{ActionAnswer, "Array"},
		{ActionPrevious, ""},
		{ActionNext, ""},
		{ActionAnswer, "Heap"},
		{ActionNext, ""},
		{ActionAnswer, "function isPalindrome(s) { return s === [...s].reverse().join('') }"},
		{ActionNext, ""},
	}
	for _, st := range steps {
		if v, err = svc.Apply(ctx, id, data.AlexID, st.action, st.answer); err != nil {
			t.Fatalf("%s: %v", st.action, err)
		}
	}
	if v.CurrentQuestion.ID != "q4" || v.CurrentQuestion.Answer != "" {
		t.Fatalf("Expected empty q4, got %+v", v.CurrentQuestion)
	}

	v, err = svc.Apply(ctx, id, data.AlexID, ActionNext, "")
	if err != nil {
		t.Fatalf("final next: %v", err)
	}
	if v.Attempt.State != models.AttemptCompleted || v.Attempt.Score == nil || *v.Attempt.Score != 100 {
		t.Fatalf("Expected completed attempt scoring 100, got %+v", v.Attempt)
	}

	if _, err := svc.Apply(ctx, id, data.AlexID, ActionStart, ""); !errors.Is(err, ErrAssessmentState) {
		t.Errorf("restart: got %v, want ErrAssessmentState", err)
	}
	if _, err := svc.Apply(ctx, id, data.JamieID, ActionStart, ""); err == nil {
		t.Error("Another student must not see the attempt")
	}
}

func TestAssessmentTimeLimit(t *testing.T) {
	a := &models.Assessment{TimeLimitMinutes: 10, Questions: []models.AssessmentQuestion{
		{ID: "q1", Type: models.QuestionMultipleChoice, CorrectAnswer: "A"},
		{ID: "q2", Type: models.QuestionMultipleChoice, CorrectAnswer: "B"},
	}}
	attempt := &models.AssessmentAttempt{State: models.AttemptNotStarted}
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := Step(attempt, a, ActionStart, "", start); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := Step(attempt, a, ActionAnswer, "A", start.Add(time.Minute)); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := Step(attempt, a, ActionNext, "", start.Add(11*time.Minute)); !errors.Is(err, ErrAssessmentState) {
		t.Fatalf("late next: got %v, want ErrAssessmentState", err)
	}
	if attempt.State != models.AttemptCompleted || *attempt.Score != 50 {
		t.Errorf("Expected auto-completed attempt scoring 50, got %+v", attempt)
	}
}

func TestAnswerWithoutQuestions(t *testing.T) {
	a := &models.Assessment{TimeLimitMinutes: 10}
	attempt := &models.AssessmentAttempt{State: models.AttemptNotStarted}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := Step(attempt, a, ActionStart, "", now); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := Step(attempt, a, ActionAnswer, "A", now); !errors.Is(err, ErrAssessmentState) {
		t.Fatalf("answer on empty assessment: got %v, want ErrAssessmentState", err)
	}
	if len(attempt.Answers) != 0 {
		t.Errorf("Expected no answers recorded, got %v", attempt.Answers)
	}
	if err := Step(attempt, a, ActionNext, "", now); err != nil {
		t.Fatalf("next: %v", err)
	}
	if attempt.State != models.AttemptCompleted || *attempt.Score != 0 {
		t.Errorf("Expected completed attempt scoring 0, got %+v", attempt)
	}
}

func TestScoreAttemptIgnoresOpenQuestions(t *testing.T) {
	a := &models.Assessment{Questions: []models.AssessmentQuestion{
		{ID: "c", Type: models.QuestionCoding},
		{ID: "o", Type: models.QuestionOpenEnded},
	}}
	if got := ScoreAttempt(&models.AssessmentAttempt{}, a); got != 0 {
		t.Errorf("ScoreAttempt = %v, want 0", got)
	}
}

func TestPublicQuestionsHideAnswers(t *testing.T) {
	s := seededStore(t)
	a, _ := s.GetAssessment(context.Background(), data.AssessmentID)
	for _, q := range PublicQuestions(a) {
		if q.Answer != "" {
			t.Errorf("question %s leaks an answer", q.ID)
		}
	}
}
