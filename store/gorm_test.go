package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/database"
	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL not set")
	}

	db, err := database.Open(dsn)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	for _, table := range []string{"interviews", "availability_slots", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Skipf("Skipping test: cannot clean database: %v", err)
		}
	}
	return db
}

func TestGormStoreBooking(t *testing.T) {
	db := setupTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	interviewer := &models.User{FullName: "Rahul Sharma", Email: "rahul@test.dev", Password: "x", Role: models.RoleInterviewer}
	if err := s.CreateUser(ctx, interviewer); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := s.CreateUser(ctx, &models.User{FullName: "Dup", Email: "rahul@test.dev", Password: "x"}); !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate email, got %v", err)
	}

	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	slot := &models.AvailabilitySlot{InterviewerID: interviewer.ID, StartTime: start, EndTime: start.Add(time.Hour)}
	if err := s.CreateSlot(ctx, slot); err != nil {
		t.Fatalf("Failed to create slot: %v", err)
	}

	first := &models.Interview{StudentID: uuid.New(), AvailabilitySlotID: slot.ID, Role: "SWE", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, first); err != nil {
		t.Fatalf("Failed to book: %v", err)
	}
	second := &models.Interview{StudentID: uuid.New(), AvailabilitySlotID: slot.ID, Role: "SWE", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, second); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("Expected ErrSlotUnavailable, got %v", err)
	}

	open, err := s.ListOpenSlots(ctx, interviewer.ID, time.Now())
	if err != nil {
		t.Fatalf("Failed to list slots: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("Expected no open slots, got %d", len(open))
	}

	if _, err := s.TransitionInterview(ctx, first.ID, models.InterviewPending, models.InterviewCancelled); err != nil {
		t.Fatalf("Failed to cancel: %v", err)
	}
	open, _ = s.ListOpenSlots(ctx, interviewer.ID, time.Now())
	if len(open) != 1 {
		t.Errorf("Expected slot to reopen after cancel, got %d open", len(open))
	}
}

func TestGormStoreStaleTransition(t *testing.T) {
	db := setupTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	interviewer := &models.User{FullName: "David Chen", Email: "david@test.dev", Password: "x", Role: models.RoleInterviewer}
	if err := s.CreateUser(ctx, interviewer); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	start := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	slot := &models.AvailabilitySlot{InterviewerID: interviewer.ID, StartTime: start, EndTime: start.Add(time.Hour)}
	if err := s.CreateSlot(ctx, slot); err != nil {
		t.Fatalf("Failed to create slot: %v", err)
	}
	booked := &models.Interview{StudentID: uuid.New(), AvailabilitySlotID: slot.ID, Role: "SWE", Status: models.InterviewPending}
	if err := s.BookInterview(ctx, booked); err != nil {
		t.Fatalf("Failed to book: %v", err)
	}
	if _, err := s.TransitionInterview(ctx, booked.ID, models.InterviewPending, models.InterviewConfirmed); err != nil {
		t.Fatalf("Failed to confirm: %v", err)
	}
	if _, err := s.TransitionInterview(ctx, booked.ID, models.InterviewConfirmed, models.InterviewCancelled); err != nil {
		t.Fatalf("Failed to cancel: %v", err)
	}
	if err := s.MarkReminderSent(ctx, booked.ID); err != nil {
		t.Fatalf("Failed to mark reminder: %v", err)
	}
	if _, err := s.TransitionInterview(ctx, booked.ID, models.InterviewConfirmed, models.InterviewCompleted); !errors.Is(err, ErrStatusChanged) {
		t.Fatalf("Expected ErrStatusChanged, got %v", err)
	}

	got, err := s.GetInterview(ctx, booked.ID)
	if err != nil {
		t.Fatalf("Failed to load interview: %v", err)
	}
	if got.Status != models.InterviewCancelled || !got.ReminderSent {
		t.Errorf("Expected cancelled interview with reminder flag, got %s reminder=%v", got.Status, got.ReminderSent)
	}
	open, _ := s.ListOpenSlots(ctx, interviewer.ID, time.Now())
	if len(open) != 1 {
		t.Errorf("Expected slot to stay open, got %d open", len(open))
	}
}

func TestGormStoreEmptyListsAreNotNil(t *testing.T) {
	db := setupTestDB(t)
	s := NewGormStore(db)
	ctx := context.Background()

	slots, err := s.ListSlots(ctx, uuid.New())
	if err != nil || slots == nil {
		t.Errorf("Expected empty slot list, got %v (%v)", slots, err)
	}
	interviews, err := s.ListInterviewsByStudent(ctx, uuid.New())
	if err != nil || interviews == nil {
		t.Errorf("Expected empty interview list, got %v (%v)", interviews, err)
	}
	feedback, err := s.ListFeedbackByStudent(ctx, uuid.New())
	if err != nil || feedback == nil {
		t.Errorf("Expected empty feedback list, got %v (%v)", feedback, err)
	}
	messages, err := s.ListTrainerMessages(ctx, uuid.New())
	if err != nil || messages == nil {
		t.Errorf("Expected empty trainer history, got %v (%v)", messages, err)
	}
}
