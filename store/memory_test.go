package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
)

func seeded(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewSeededMemoryStore(time.Now())
	if err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return s
}

func TestListCompaniesSearch(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	all, err := s.ListCompanies(ctx, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 companies for empty query, got %d", len(all))
	}

	hits, _ := s.ListCompanies(ctx, "GOO")
	if len(hits) != 1 || hits[0].Name != "Google" {
		t.Errorf("Expected only Google, got %+v", hits)
	}

	none, _ := s.ListCompanies(ctx, "zzz")
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil result, got %#v", none)
	}
}

func TestListInterviewersFilters(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	all, _ := s.ListInterviewers(ctx, InterviewerFilter{})
	if len(all) != 10 {
		t.Fatalf("Expected 10 interviewers, got %d", len(all))
	}

	bySpecialization, _ := s.ListInterviewers(ctx, InterviewerFilter{Query: "system design"})
	if len(bySpecialization) != 3 {
		t.Errorf("Expected 3 system design interviewers, got %d", len(bySpecialization))
	}

	google, _ := s.ListInterviewers(ctx, InterviewerFilter{Company: "Google", Role: "engineer"})
	for _, iv := range google {
		if iv.Company != "Google" {
			t.Errorf("Expected Google interviewer, got %s", iv.Company)
		}
	}
	if len(google) != 3 {
		t.Errorf("Expected 3 Google engineering interviewers, got %d", len(google))
	}

	lower, _ := s.ListInterviewers(ctx, InterviewerFilter{Company: "google"})
	if len(lower) != 0 {
		t.Errorf("Expected company filter to match exactly, got %d for lowercase name", len(lower))
	}
	roleUpper, _ := s.ListInterviewers(ctx, InterviewerFilter{Company: "Google", Role: "ENGINEER"})
	if len(roleUpper) != len(google) {
		t.Errorf("Expected role filter to ignore case, got %d want %d", len(roleUpper), len(google))
	}

	byName, _ := s.ListInterviewers(ctx, InterviewerFilter{Query: "priya"})
	if len(byName) != 1 || byName[0].User.FullName != "Priya Patel" {
		t.Errorf("Expected Priya Patel, got %+v", byName)
	}
}

func TestListPracticeQuestionsFilters(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	cases := []struct {
		name string
		f    PracticeFilter
		want int
	}{
		{"empty", PracticeFilter{}, 6},
		{"query matches category", PracticeFilter{Query: "system design"}, 2},
		{"difficulty", PracticeFilter{Difficulty: "Hard"}, 3},
		{"company and difficulty", PracticeFilter{Company: "Amazon", Difficulty: "Medium"}, 1},
		{"any tag", PracticeFilter{Tags: []string{"Heap", "DFS"}}, 3},
		{"no match", PracticeFilter{Query: "quantum"}, 0},
	}
	for _, tc := range cases {
		got, err := s.ListPracticeQuestions(ctx, tc.f)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if len(got) != tc.want {
			t.Errorf("%s: expected %d questions, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestBookInterviewMarksSlotBooked(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	open, _ := s.ListOpenSlots(ctx, data.RahulID, time.Now())
	if len(open) == 0 {
		t.Fatal("Expected open slots for Rahul")
	}
	slot := open[0]

	first := &models.Interview{StudentID: data.JamieID, AvailabilitySlotID: slot.ID, Role: "Software Engineer", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, first); err != nil {
		t.Fatalf("Unexpected error booking: %v", err)
	}
	if first.InterviewerID != data.RahulID || !first.StartTime.Equal(slot.StartTime) {
		t.Errorf("Expected interview to inherit slot details, got %+v", first)
	}

	second := &models.Interview{StudentID: data.AlexID, AvailabilitySlotID: slot.ID, Role: "Software Engineer"}
	if err := s.BookInterview(ctx, second); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("Expected ErrSlotUnavailable, got %v", err)
	}

	after, _ := s.ListOpenSlots(ctx, data.RahulID, time.Now())
	for _, sl := range after {
		if sl.ID == slot.ID {
			t.Fatal("Expected booked slot to be excluded from open slots")
		}
	}

	if _, err := s.TransitionInterview(ctx, first.ID, first.Status, models.InterviewCancelled); err != nil {
		t.Fatalf("Unexpected error cancelling: %v", err)
	}
	reopened, _ := s.ListOpenSlots(ctx, data.RahulID, time.Now())
	if len(reopened) != len(open) {
		t.Errorf("Expected cancelled slot to reopen: %d open, want %d", len(reopened), len(open))
	}
}

func TestCancelledInterviewSurvivesLateReminder(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	open, _ := s.ListOpenSlots(ctx, data.RahulID, time.Now())
	slot := open[0]
	booked := &models.Interview{StudentID: data.JamieID, AvailabilitySlotID: slot.ID, Role: "Software Engineer", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, booked); err != nil {
		t.Fatalf("Unexpected error booking: %v", err)
	}
	confirmed, err := s.TransitionInterview(ctx, booked.ID, models.InterviewPending, models.InterviewConfirmed)
	if err != nil {
		t.Fatalf("Unexpected error confirming: %v", err)
	}
	stale := *confirmed

	if _, err := s.TransitionInterview(ctx, booked.ID, models.InterviewConfirmed, models.InterviewCancelled); err != nil {
		t.Fatalf("Unexpected error cancelling: %v", err)
	}

	// The reminder job read the interview before the cancel landed.
	if err := s.MarkReminderSent(ctx, stale.ID); err != nil {
		t.Fatalf("Unexpected error marking reminder: %v", err)
	}
	if _, err := s.TransitionInterview(ctx, stale.ID, stale.Status, models.InterviewCompleted); !errors.Is(err, ErrStatusChanged) {
		t.Fatalf("Expected ErrStatusChanged for stale transition, got %v", err)
	}

	got, _ := s.GetInterview(ctx, booked.ID)
	if got.Status != models.InterviewCancelled || !got.ReminderSent {
		t.Errorf("Expected cancelled interview with reminder flag, got %s reminder=%v", got.Status, got.ReminderSent)
	}

	rebook := &models.Interview{StudentID: data.AlexID, AvailabilitySlotID: slot.ID, Role: "Software Engineer", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, rebook); err != nil {
		t.Fatalf("Expected freed slot to be bookable, got %v", err)
	}
	if _, err := s.TransitionInterview(ctx, booked.ID, models.InterviewCancelled, models.InterviewConfirmed); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable reviving a cancelled interview on a rebooked slot, got %v", err)
	}
}

func TestTransitionUnknownInterview(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	if _, err := s.TransitionInterview(ctx, uuid.New(), models.InterviewPending, models.InterviewConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := s.MarkReminderSent(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSlotRefusesBooked(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	owner := uuid.New()

	slot := &models.AvailabilitySlot{InterviewerID: owner, StartTime: time.Now().Add(time.Hour), EndTime: time.Now().Add(2 * time.Hour), IsBooked: true}
	if err := s.CreateSlot(ctx, slot); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.DeleteSlot(ctx, owner, slot.ID); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable, got %v", err)
	}
	if err := s.DeleteSlot(ctx, uuid.New(), slot.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for another interviewer, got %v", err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	err := s.CreateUser(ctx, &models.User{FullName: "Other Alex", Email: "ALEX.JOHNSON@mockprep.dev"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}

	u := &models.User{FullName: "New Student", Email: "new@mockprep.dev", Role: models.RoleStudent, Plan: "basic"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, err := s.GetUserByEmail(ctx, "new@mockprep.dev")
	if err != nil || got.ID != u.ID {
		t.Fatalf("Expected to find new user, got %v %v", got, err)
	}
}

func TestCountInterviewsSinceSkipsCancelled(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	monthStart := time.Now().AddDate(0, 0, -1)

	n, _ := s.CountInterviewsSince(ctx, data.AlexID, monthStart)
	if n != 0 {
		t.Fatalf("Expected seeded interviews to predate the window, got %d", n)
	}

	open, _ := s.ListOpenSlots(ctx, data.RahulID, time.Now())
	a := &models.Interview{StudentID: data.AlexID, AvailabilitySlotID: open[0].ID, Status: models.InterviewPending}
	b := &models.Interview{StudentID: data.AlexID, AvailabilitySlotID: open[1].ID, Status: models.InterviewPending}
	_ = s.BookInterview(ctx, a)
	_ = s.BookInterview(ctx, b)
	_, _ = s.TransitionInterview(ctx, b.ID, models.InterviewPending, models.InterviewCancelled)

	n, _ = s.CountInterviewsSince(ctx, data.AlexID, monthStart)
	if n != 1 {
		t.Errorf("Expected 1 active interview, got %d", n)
	}
}

func TestFeedbackOnePerInterview(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	existing, err := s.GetFeedback(ctx, data.FeedbackAID)
	if err != nil {
		t.Fatalf("Expected seeded feedback: %v", err)
	}
	dup := &models.FeedbackReport{InterviewID: existing.InterviewID, StudentID: data.AlexID}
	if err := s.CreateFeedback(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}

	if err := s.SetFeedbackReportURL(ctx, existing.ID, "https://cdn/report.pdf"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	updated, _ := s.GetFeedback(ctx, existing.ID)
	if updated.ReportURL == nil || *updated.ReportURL != "https://cdn/report.pdf" {
		t.Errorf("Expected report URL to be set, got %v", updated.ReportURL)
	}
}

func TestAttemptsAreCopied(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a := &models.AssessmentAttempt{AssessmentID: data.AssessmentID, StudentID: data.AlexID, Answers: map[string]string{}}
	if err := s.CreateAttempt(ctx, a); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	a.Answers["q1"] = "O(1)"

	stored, _ := s.GetAttempt(ctx, a.ID)
	if _, ok := stored.Answers["q1"]; ok {
		t.Error("Expected stored attempt to be isolated from caller mutation")
	}

	if err := s.CreateAttempt(ctx, &models.AssessmentAttempt{AssessmentID: uuid.New()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown assessment, got %v", err)
	}
}

func TestEmptyListsAreNotNil(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	messages, _ := s.ListTrainerMessages(ctx, uuid.New())
	if messages == nil {
		t.Error("Expected empty trainer history, got nil")
	}
	interviews, _ := s.ListInterviewsByStudent(ctx, uuid.New())
	if interviews == nil {
		t.Error("Expected empty interview list, got nil")
	}
}
