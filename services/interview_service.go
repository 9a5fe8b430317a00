package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/notifications"
	"github.com/anjiri1684/mockprep/policy"
	"github.com/anjiri1684/mockprep/store"
	"github.com/anjiri1684/mockprep/utils"
	"github.com/google/uuid"
)

// allowed lists the statuses each status may move to.
var allowed = map[string][]string{
	models.InterviewPending:   {models.InterviewConfirmed, models.InterviewCancelled},
	models.InterviewConfirmed: {models.InterviewCompleted, models.InterviewCancelled},
}

func CanTransition(from, to string) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// MonthStart is the first instant of t's calendar month in UTC. Quotas reset
// there.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type BookingRequest struct {
	InterviewerID uuid.UUID
	SlotID        uuid.UUID
	CompanyID     *uuid.UUID
	Role          string
	Notes         string
}

type Quota struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type InterviewService struct {
	store  store.Store
	mailer notifications.Mailer
	now    func() time.Time

	// mu serialises the quota check with the booking it guards.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewInterviewService(s store.Store, mailer notifications.Mailer, rng *rand.Rand) *InterviewService {
	if mailer == nil {
		mailer = notifications.LogMailer{}
	}
	return &InterviewService{store: s, mailer: mailer, now: time.Now, rng: rng}
}

func (s *InterviewService) Quota(ctx context.Context, studentID uuid.UUID, tier policy.Tier) (Quota, error) {
	limit := policy.Capabilities(tier).MonthlyInterviewQuota
	used, err := s.store.CountInterviewsSince(ctx, studentID, MonthStart(s.now()))
	if err != nil {
		return Quota{}, err
	}
	q := Quota{Used: int(used), Limit: limit, Remaining: limit - int(used)}
	if q.Remaining < 0 {
		q.Remaining = 0
	}
	return q, nil
}

// Book reserves an open slot for the student. The booking is refused once the
// student's plan quota for the month is used up.
func (s *InterviewService) Book(ctx context.Context, studentID uuid.UUID, tier policy.Tier, req BookingRequest) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.Quota(ctx, studentID, tier)
	if err != nil {
		return nil, err
	}
	if q.Remaining == 0 {
		return nil, ErrQuotaExceeded
	}

	open, err := s.store.ListOpenSlots(ctx, req.InterviewerID, s.now())
	if err != nil {
		return nil, err
	}
	found := false
	for _, sl := range open {
		if sl.ID == req.SlotID {
			found = true
			break
		}
	}
	if !found {
		return nil, store.ErrSlotUnavailable
	}

	if req.CompanyID != nil {
		if _, err := s.store.GetCompany(ctx, *req.CompanyID); err != nil {
			return nil, fmt.Errorf("company: %w", err)
		}
	}

	link := utils.MeetingLink(s.rng)
	interview := &models.Interview{
		StudentID:          studentID,
		InterviewerID:      req.InterviewerID,
		AvailabilitySlotID: req.SlotID,
		CompanyID:          req.CompanyID,
		Role:               req.Role,
		Status:             models.InterviewPending,
		MeetingLink:        &link,
		Notes:              req.Notes,
		Questions:          []string{},
	}
	if err := s.store.BookInterview(ctx, interview); err != nil {
		return nil, err
	}

	log.Printf("✅ Interview %s booked by %s with %s", interview.ID, studentID, interview.InterviewerID)
	go s.notifyBooked(context.WithoutCancel(ctx), *interview)
	return interview, nil
}

// Transition moves an interview to a new status on behalf of actor. Students
// may only cancel their own interviews; interviewers drive the rest.
func (s *InterviewService) Transition(ctx context.Context, id, actorID uuid.UUID, actorRole, to string) (*models.Interview, error) {
	interview, err := s.store.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actorRole {
	case models.RoleStudent:
		if interview.StudentID != actorID {
			return nil, store.ErrNotFound
		}
		if to != models.InterviewCancelled {
			return nil, fmt.Errorf("%w: students can only cancel", ErrInvalidTransition)
		}
	case models.RoleInterviewer:
		if interview.InterviewerID != actorID {
			return nil, store.ErrNotFound
		}
	case models.RoleAdmin:
	default:
		return nil, store.ErrNotFound
	}

	if !CanTransition(interview.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, interview.Status, to)
	}
	if to == models.InterviewCompleted && s.now().Before(interview.StartTime) {
		return nil, fmt.Errorf("%w: interview has not started", ErrInvalidTransition)
	}

	interview, err = s.store.TransitionInterview(ctx, id, interview.Status, to)
	if errors.Is(err, store.ErrStatusChanged) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	if err != nil {
		return nil, err
	}

	go s.notifyStatus(context.WithoutCancel(ctx), *interview, actorID)
	return interview, nil
}

func (s *InterviewService) notifyBooked(ctx context.Context, i models.Interview) {
	student, err := s.store.GetUser(ctx, i.StudentID)
	if err != nil {
		log.Printf("⚠️ booking email skipped, student %s: %v", i.StudentID, err)
		return
	}
	interviewer, err := s.store.GetUser(ctx, i.InterviewerID)
	if err != nil {
		log.Printf("⚠️ booking email skipped, interviewer %s: %v", i.InterviewerID, err)
		return
	}

	subject, html := notifications.BookingRequested(student.FullName, i.Role, i.StartTime)
	s.mailer.SendEmail(interviewer.FullName, interviewer.Email, subject, html)
	subject, html = notifications.BookingReceived(interviewer.FullName, i.Role, i.StartTime)
	s.mailer.SendEmail(student.FullName, student.Email, subject, html)
}

// notifyStatus tells the participant who did not make the change.
func (s *InterviewService) notifyStatus(ctx context.Context, i models.Interview, actorID uuid.UUID) {
	recipientID := i.StudentID
	if actorID == i.StudentID {
		recipientID = i.InterviewerID
	}
	u, err := s.store.GetUser(ctx, recipientID)
	if err != nil {
		log.Printf("⚠️ status email skipped for interview %s: %v", i.ID, err)
		return
	}
	subject, html := notifications.StatusChanged(u.FullName, i.Role, i.Status, i.StartTime)
	s.mailer.SendEmail(u.FullName, u.Email, subject, html)
}
