package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anjiri1684/mockprep/data"
	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore keeps everything in process memory. It backs the API when no
// DATABASE_URL is configured and doubles as the store in tests.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[uuid.UUID]models.User
	students     map[uuid.UUID]models.StudentProfile
	interviewers []models.InterviewerProfile
	companies    []models.Company
	slots        map[uuid.UUID]models.AvailabilitySlot
	interviews   map[uuid.UUID]models.Interview
	feedback     map[uuid.UUID]models.FeedbackReport
	modules      []models.TrainingModule
	progress     []models.TrainingProgress
	practice     []models.PracticeQuestion
	assessments  map[uuid.UUID]models.Assessment
	attempts     map[uuid.UUID]models.AssessmentAttempt
	messages     map[uuid.UUID][]models.TrainerMessage

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[uuid.UUID]models.User),
		students:    make(map[uuid.UUID]models.StudentProfile),
		slots:       make(map[uuid.UUID]models.AvailabilitySlot),
		interviews:  make(map[uuid.UUID]models.Interview),
		feedback:    make(map[uuid.UUID]models.FeedbackReport),
		assessments: make(map[uuid.UUID]models.Assessment),
		attempts:    make(map[uuid.UUID]models.AssessmentAttempt),
		messages:    make(map[uuid.UUID][]models.TrainerMessage),
		now:         time.Now,
	}
}

// NewSeededMemoryStore returns a store loaded with the demo dataset. Demo
// accounts log in with data.DemoPassword.
func NewSeededMemoryStore(now time.Time) (*MemoryStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	s := NewMemoryStore()
	s.Load(data.Build(now, string(hash)))
	return s, nil
}

func (s *MemoryStore) Load(ds data.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range ds.Users {
		s.users[u.ID] = u
	}
	for _, p := range ds.StudentProfiles {
		s.students[p.UserID] = p
	}
	s.interviewers = append(s.interviewers, ds.InterviewerProfiles...)
	s.companies = append(s.companies, ds.Companies...)
	for _, sl := range ds.Slots {
		s.slots[sl.ID] = sl
	}
	for _, i := range ds.Interviews {
		s.interviews[i.ID] = i
	}
	for _, f := range ds.Feedback {
		s.feedback[f.ID] = f
	}
	s.modules = append(s.modules, ds.TrainingModules...)
	s.progress = append(s.progress, ds.TrainingProgress...)
	s.practice = append(s.practice, ds.PracticeQuestions...)
	for _, a := range ds.Assessments {
		s.assessments[a.ID] = a
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrConflict
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateUserPlan(_ context.Context, id uuid.UUID, plan string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Plan = plan
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *MemoryStore) GetStudentProfile(_ context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.students[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) SaveStudentProfile(_ context.Context, p *models.StudentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.UserID]; !ok {
		return ErrNotFound
	}
	s.students[p.UserID] = *p
	return nil
}

func (s *MemoryStore) GetInterviewerProfile(_ context.Context, userID uuid.UUID) (*models.InterviewerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.interviewers {
		if p.UserID == userID {
			p.User = s.users[userID]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveInterviewerProfile(_ context.Context, p *models.InterviewerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[p.UserID]
	if !ok {
		return ErrNotFound
	}
	p.User = u
	for i := range s.interviewers {
		if s.interviewers[i].UserID == p.UserID {
			s.interviewers[i] = *p
			return nil
		}
	}
	s.interviewers = append(s.interviewers, *p)
	return nil
}

func (s *MemoryStore) ListCompanies(_ context.Context, query string) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterCompanies(s.companies, query), nil
}

func (s *MemoryStore) GetCompany(_ context.Context, id uuid.UUID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.companies {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListInterviewers(_ context.Context, f InterviewerFilter) ([]models.InterviewerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.InterviewerProfile, len(s.interviewers))
	for i, p := range s.interviewers {
		p.User = s.users[p.UserID]
		all[i] = p
	}
	return FilterInterviewers(all, f), nil
}

func (s *MemoryStore) ListOpenSlots(_ context.Context, interviewerID uuid.UUID, after time.Time) ([]models.AvailabilitySlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.AvailabilitySlot{}
	for _, sl := range s.slots {
		if sl.InterviewerID == interviewerID && !sl.IsBooked && sl.StartTime.After(after) {
			out = append(out, sl)
		}
	}
	sortSlots(out)
	return out, nil
}

func (s *MemoryStore) ListSlots(_ context.Context, interviewerID uuid.UUID) ([]models.AvailabilitySlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.AvailabilitySlot{}
	for _, sl := range s.slots {
		if sl.InterviewerID == interviewerID {
			out = append(out, sl)
		}
	}
	sortSlots(out)
	return out, nil
}

func sortSlots(slots []models.AvailabilitySlot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })
}

func (s *MemoryStore) CreateSlot(_ context.Context, sl *models.AvailabilitySlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	sl.CreatedAt = s.now()
	sl.UpdatedAt = sl.CreatedAt
	s.slots[sl.ID] = *sl
	return nil
}

func (s *MemoryStore) DeleteSlot(_ context.Context, interviewerID, slotID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[slotID]
	if !ok || sl.InterviewerID != interviewerID {
		return ErrNotFound
	}
	if sl.IsBooked {
		return ErrSlotUnavailable
	}
	delete(s.slots, slotID)
	return nil
}

func (s *MemoryStore) BookInterview(_ context.Context, i *models.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[i.AvailabilitySlotID]
	if !ok {
		return ErrNotFound
	}
	if sl.IsBooked {
		return ErrSlotUnavailable
	}
	sl.IsBooked = true
	s.slots[sl.ID] = sl

	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.InterviewerID = sl.InterviewerID
	i.StartTime = sl.StartTime
	i.EndTime = sl.EndTime
	i.CreatedAt = s.now()
	i.UpdatedAt = i.CreatedAt
	s.interviews[i.ID] = *i
	return nil
}

func (s *MemoryStore) GetInterview(_ context.Context, id uuid.UUID) (*models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.interviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &i, nil
}

func (s *MemoryStore) ListInterviewsByStudent(_ context.Context, studentID uuid.UUID) ([]models.Interview, error) {
	return s.filterInterviews(func(i models.Interview) bool { return i.StudentID == studentID }), nil
}

func (s *MemoryStore) ListInterviewsByInterviewer(_ context.Context, interviewerID uuid.UUID) ([]models.Interview, error) {
	return s.filterInterviews(func(i models.Interview) bool { return i.InterviewerID == interviewerID }), nil
}

func (s *MemoryStore) ListInterviewsStartingBetween(_ context.Context, status string, from, to time.Time) ([]models.Interview, error) {
	return s.filterInterviews(func(i models.Interview) bool {
		return i.Status == status && !i.StartTime.Before(from) && !i.StartTime.After(to)
	}), nil
}

func (s *MemoryStore) filterInterviews(keep func(models.Interview) bool) []models.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Interview{}
	for _, i := range s.interviews {
		if keep(i) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].StartTime.Before(out[b].StartTime) })
	return out
}

func (s *MemoryStore) TransitionInterview(_ context.Context, id uuid.UUID, from, to string) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.interviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	if i.Status != from {
		return nil, ErrStatusChanged
	}

	sl, hasSlot := s.slots[i.AvailabilitySlotID]
	switch {
	case to == models.InterviewCancelled && from != models.InterviewCancelled:
		if hasSlot {
			sl.IsBooked = false
			s.slots[sl.ID] = sl
		}
	case from == models.InterviewCancelled && to != models.InterviewCancelled:
		if !hasSlot || sl.IsBooked {
			return nil, ErrSlotUnavailable
		}
		sl.IsBooked = true
		s.slots[sl.ID] = sl
	}

	i.Status = to
	i.UpdatedAt = s.now()
	s.interviews[id] = i
	return &i, nil
}

func (s *MemoryStore) MarkReminderSent(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.interviews[id]
	if !ok {
		return ErrNotFound
	}
	i.ReminderSent = true
	s.interviews[id] = i
	return nil
}

func (s *MemoryStore) CountInterviewsSince(_ context.Context, studentID uuid.UUID, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, i := range s.interviews {
		if i.StudentID == studentID && i.Status != models.InterviewCancelled && !i.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CreateFeedback(_ context.Context, f *models.FeedbackReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.feedback {
		if existing.InterviewID == f.InterviewID {
			return ErrConflict
		}
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = s.now()
	f.UpdatedAt = f.CreatedAt
	s.feedback[f.ID] = *f
	return nil
}

func (s *MemoryStore) GetFeedback(_ context.Context, id uuid.UUID) (*models.FeedbackReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.feedback[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (s *MemoryStore) GetFeedbackByInterview(_ context.Context, interviewID uuid.UUID) (*models.FeedbackReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.feedback {
		if f.InterviewID == interviewID {
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListFeedbackByStudent(_ context.Context, studentID uuid.UUID) ([]models.FeedbackReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.FeedbackReport{}
	for _, f := range s.feedback {
		if f.StudentID == studentID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) SetFeedbackReportURL(_ context.Context, id uuid.UUID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feedback[id]
	if !ok {
		return ErrNotFound
	}
	f.ReportURL = &url
	f.UpdatedAt = s.now()
	s.feedback[id] = f
	return nil
}

func (s *MemoryStore) ListTrainingModules(_ context.Context) ([]models.TrainingModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TrainingModule{}, s.modules...), nil
}

func (s *MemoryStore) ListTrainingProgress(_ context.Context, studentID uuid.UUID) ([]models.TrainingProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.TrainingProgress{}
	for _, p := range s.progress {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListPracticeQuestions(_ context.Context, f PracticeFilter) ([]models.PracticeQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterPracticeQuestions(s.practice, f), nil
}

func (s *MemoryStore) GetAssessment(_ context.Context, id uuid.UUID) (*models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) CreateAttempt(_ context.Context, a *models.AssessmentAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assessments[a.AssessmentID]; !ok {
		return ErrNotFound
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.attempts[a.ID] = cloneAttempt(*a)
	return nil
}

func (s *MemoryStore) GetAttempt(_ context.Context, id uuid.UUID) (*models.AssessmentAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a = cloneAttempt(a)
	return &a, nil
}

func (s *MemoryStore) SaveAttempt(_ context.Context, a *models.AssessmentAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[a.ID]; !ok {
		return ErrNotFound
	}
	s.attempts[a.ID] = cloneAttempt(*a)
	return nil
}

func cloneAttempt(a models.AssessmentAttempt) models.AssessmentAttempt {
	answers := make(map[string]string, len(a.Answers))
	for k, v := range a.Answers {
		answers[k] = v
	}
	a.Answers = answers
	return a
}

func (s *MemoryStore) AppendTrainerMessages(_ context.Context, msgs ...models.TrainerMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range msgs {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = s.now()
		}
		s.messages[m.StudentID] = append(s.messages[m.StudentID], m)
	}
	return nil
}

func (s *MemoryStore) ListTrainerMessages(_ context.Context, studentID uuid.UUID) ([]models.TrainerMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TrainerMessage{}, s.messages[studentID]...), nil
}

var _ Store = (*MemoryStore)(nil)
