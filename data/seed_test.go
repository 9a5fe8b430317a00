package data

import (
	"testing"
	"time"

	"github.com/anjiri1684/mockprep/models"
)

func TestBuildIsStable(t *testing.T) {
	now := time.Date(2025, 3, 5, 9, 30, 0, 0, time.UTC)
	a := Build(now, "hash")
	b := Build(now, "hash")

	if len(a.Companies) != 5 || len(a.InterviewerProfiles) != 10 || len(a.PracticeQuestions) != 6 {
		t.Fatalf("Unexpected dataset sizes: %d companies, %d interviewers, %d questions",
			len(a.Companies), len(a.InterviewerProfiles), len(a.PracticeQuestions))
	}
	for i := range a.Interviews {
		if a.Interviews[i].ID != b.Interviews[i].ID {
			t.Fatalf("Expected stable interview IDs, got %s and %s", a.Interviews[i].ID, b.Interviews[i].ID)
		}
	}
}

func TestSlotsAreInTheFuture(t *testing.T) {
	now := time.Date(2025, 3, 5, 9, 30, 0, 0, time.UTC)
	ds := Build(now, "hash")

	for _, s := range ds.Slots {
		if s.IsBooked {
			continue
		}
		if !s.StartTime.After(now.Add(12 * time.Hour)) {
			t.Errorf("Expected open slot %s to start at least a day out, got %s", s.ID, s.StartTime)
		}
		if !s.EndTime.After(s.StartTime) {
			t.Errorf("Slot %s ends before it starts", s.ID)
		}
	}
}

func TestSeededInterviewsUseBookedSlots(t *testing.T) {
	ds := Build(time.Now(), "hash")
	slots := make(map[string]models.AvailabilitySlot)
	for _, s := range ds.Slots {
		slots[s.ID.String()] = s
	}
	for _, i := range ds.Interviews {
		s, ok := slots[i.AvailabilitySlotID.String()]
		if !ok || !s.IsBooked {
			t.Errorf("Interview %s should reference a booked slot", i.ID)
		}
	}
}

func TestFeedbackScoresInRange(t *testing.T) {
	for _, f := range Build(time.Now(), "hash").Feedback {
		for _, v := range []float64{f.Scores.TechnicalSkills, f.Scores.CommunicationSkills, f.Scores.ProblemSolving, f.Scores.CultureFit, f.Scores.Overall} {
			if v < 1 || v > 5 {
				t.Errorf("Feedback %s has score %f outside [1,5]", f.ID, v)
			}
		}
	}
}
