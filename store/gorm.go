package store

import (
	"context"
	"errors"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists to postgres through gorm. The *gorm.DB should be opened
// with TranslateError so duplicate keys surface as ErrConflict.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *GormStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) UpdateUserPlan(ctx context.Context, id uuid.UUID, plan string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("plan", plan)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	var p models.StudentProfile
	if err := s.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) SaveStudentProfile(ctx context.Context, p *models.StudentProfile) error {
	return translate(s.db.WithContext(ctx).Omit("User").Save(p).Error)
}

func (s *GormStore) GetInterviewerProfile(ctx context.Context, userID uuid.UUID) (*models.InterviewerProfile, error) {
	var p models.InterviewerProfile
	if err := s.db.WithContext(ctx).Preload("User").First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) SaveInterviewerProfile(ctx context.Context, p *models.InterviewerProfile) error {
	return translate(s.db.WithContext(ctx).Omit("User").Save(p).Error)
}

func (s *GormStore) ListCompanies(ctx context.Context, query string) ([]models.Company, error) {
	companies := []models.Company{}
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return FilterCompanies(companies, query), nil
}

func (s *GormStore) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var c models.Company
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormStore) ListInterviewers(ctx context.Context, f InterviewerFilter) ([]models.InterviewerProfile, error) {
	profiles := []models.InterviewerProfile{}
	q := s.db.WithContext(ctx).Preload("User")
	if f.Company != "" {
		q = q.Where("company = ?", f.Company)
	}
	if err := q.Order("avg_rating desc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return FilterInterviewers(profiles, f), nil
}

func (s *GormStore) ListOpenSlots(ctx context.Context, interviewerID uuid.UUID, after time.Time) ([]models.AvailabilitySlot, error) {
	slots := []models.AvailabilitySlot{}
	err := s.db.WithContext(ctx).
		Where("interviewer_id = ? AND is_booked = ? AND start_time > ?", interviewerID, false, after).
		Order("start_time asc").
		Find(&slots).Error
	return slots, err
}

func (s *GormStore) ListSlots(ctx context.Context, interviewerID uuid.UUID) ([]models.AvailabilitySlot, error) {
	slots := []models.AvailabilitySlot{}
	err := s.db.WithContext(ctx).Where("interviewer_id = ?", interviewerID).Order("start_time asc").Find(&slots).Error
	return slots, err
}

func (s *GormStore) CreateSlot(ctx context.Context, sl *models.AvailabilitySlot) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return translate(s.db.WithContext(ctx).Create(sl).Error)
}

func (s *GormStore) DeleteSlot(ctx context.Context, interviewerID, slotID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.AvailabilitySlot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ? AND interviewer_id = ?", slotID, interviewerID).Error; err != nil {
			return translate(err)
		}
		if slot.IsBooked {
			return ErrSlotUnavailable
		}
		return tx.Delete(&slot).Error
	})
}

func (s *GormStore) BookInterview(ctx context.Context, i *models.Interview) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.AvailabilitySlot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", i.AvailabilitySlotID).Error; err != nil {
			return translate(err)
		}
		if slot.IsBooked {
			return ErrSlotUnavailable
		}
		slot.IsBooked = true
		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		if i.ID == uuid.Nil {
			i.ID = uuid.New()
		}
		i.InterviewerID = slot.InterviewerID
		i.StartTime = slot.StartTime
		i.EndTime = slot.EndTime
		return tx.Create(i).Error
	})
}

func (s *GormStore) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var i models.Interview
	if err := s.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (s *GormStore) ListInterviewsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Interview, error) {
	out := []models.Interview{}
	err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Order("start_time asc").Find(&out).Error
	return out, err
}

func (s *GormStore) ListInterviewsByInterviewer(ctx context.Context, interviewerID uuid.UUID) ([]models.Interview, error) {
	out := []models.Interview{}
	err := s.db.WithContext(ctx).Where("interviewer_id = ?", interviewerID).Order("start_time asc").Find(&out).Error
	return out, err
}

func (s *GormStore) TransitionInterview(ctx context.Context, id uuid.UUID, from, to string) (*models.Interview, error) {
	var i models.Interview
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&i, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if i.Status != from {
			return ErrStatusChanged
		}

		switch {
		case to == models.InterviewCancelled && from != models.InterviewCancelled:
			if err := tx.Model(&models.AvailabilitySlot{}).
				Where("id = ?", i.AvailabilitySlotID).
				Update("is_booked", false).Error; err != nil {
				return err
			}
		case from == models.InterviewCancelled && to != models.InterviewCancelled:
			var slot models.AvailabilitySlot
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", i.AvailabilitySlotID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotUnavailable
			}
			if err != nil {
				return err
			}
			if slot.IsBooked {
				return ErrSlotUnavailable
			}
			if err := tx.Model(&slot).Update("is_booked", true).Error; err != nil {
				return err
			}
		}

		i.Status = to
		return tx.Model(&i).Update("status", to).Error
	})
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *GormStore) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Interview{}).Where("id = ?", id).Update("reminder_sent", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountInterviewsSince(ctx context.Context, studentID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Interview{}).
		Where("student_id = ? AND status <> ? AND created_at >= ?", studentID, models.InterviewCancelled, since).
		Count(&n).Error
	return n, err
}

func (s *GormStore) ListInterviewsStartingBetween(ctx context.Context, status string, from, to time.Time) ([]models.Interview, error) {
	out := []models.Interview{}
	err := s.db.WithContext(ctx).
		Where("status = ? AND start_time BETWEEN ? AND ?", status, from, to).
		Order("start_time asc").
		Find(&out).Error
	return out, err
}

func (s *GormStore) CreateFeedback(ctx context.Context, f *models.FeedbackReport) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return translate(s.db.WithContext(ctx).Create(f).Error)
}

func (s *GormStore) GetFeedback(ctx context.Context, id uuid.UUID) (*models.FeedbackReport, error) {
	var f models.FeedbackReport
	if err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (s *GormStore) GetFeedbackByInterview(ctx context.Context, interviewID uuid.UUID) (*models.FeedbackReport, error) {
	var f models.FeedbackReport
	if err := s.db.WithContext(ctx).First(&f, "interview_id = ?", interviewID).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (s *GormStore) ListFeedbackByStudent(ctx context.Context, studentID uuid.UUID) ([]models.FeedbackReport, error) {
	out := []models.FeedbackReport{}
	err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) SetFeedbackReportURL(ctx context.Context, id uuid.UUID, url string) error {
	res := s.db.WithContext(ctx).Model(&models.FeedbackReport{}).Where("id = ?", id).Update("report_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListTrainingModules(ctx context.Context) ([]models.TrainingModule, error) {
	out := []models.TrainingModule{}
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *GormStore) ListTrainingProgress(ctx context.Context, studentID uuid.UUID) ([]models.TrainingProgress, error) {
	out := []models.TrainingProgress{}
	err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&out).Error
	return out, err
}

func (s *GormStore) ListPracticeQuestions(ctx context.Context, f PracticeFilter) ([]models.PracticeQuestion, error) {
	all := []models.PracticeQuestion{}
	q := s.db.WithContext(ctx)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.Company != "" {
		q = q.Where("company = ?", f.Company)
	}
	if err := q.Find(&all).Error; err != nil {
		return nil, err
	}
	return FilterPracticeQuestions(all, f), nil
}

func (s *GormStore) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	var a models.Assessment
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) CreateAttempt(ctx context.Context, a *models.AssessmentAttempt) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

func (s *GormStore) GetAttempt(ctx context.Context, id uuid.UUID) (*models.AssessmentAttempt, error) {
	var a models.AssessmentAttempt
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) SaveAttempt(ctx context.Context, a *models.AssessmentAttempt) error {
	return translate(s.db.WithContext(ctx).Save(a).Error)
}

func (s *GormStore) AppendTrainerMessages(ctx context.Context, msgs ...models.TrainerMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	for i := range msgs {
		if msgs[i].ID == uuid.Nil {
			msgs[i].ID = uuid.New()
		}
	}
	return s.db.WithContext(ctx).Create(&msgs).Error
}

func (s *GormStore) ListTrainerMessages(ctx context.Context, studentID uuid.UUID) ([]models.TrainerMessage, error) {
	out := []models.TrainerMessage{}
	err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Order("created_at asc").Find(&out).Error
	return out, err
}

var _ Store = (*GormStore)(nil)
