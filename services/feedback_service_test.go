package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
)

func TestAverageScoreIncludesOverall(t *testing.T) {
	s := models.FeedbackScores{TechnicalSkills: 4, CommunicationSkills: 3, ProblemSolving: 4, CultureFit: 5, Overall: 4}
	if got := AverageScore(s); got != 4.0 {
		t.Errorf("AverageScore = %v, want 4.0", got)
	}
	s.Overall = 5
	if got := AverageScore(s); got != 4.2 {
		t.Errorf("AverageScore = %v, want 4.2", got)
	}
}

func TestDeriveOverall(t *testing.T) {
	s := models.FeedbackScores{TechnicalSkills: 5, CommunicationSkills: 4, ProblemSolving: 5, CultureFit: 4}
	if got := DeriveOverall(s); got != 4.5 {
		t.Errorf("DeriveOverall = %v, want 4.5", got)
	}
	if got := DefaultScores(); got.Overall != DefaultFormScore {
		t.Errorf("default overall = %v, want %d", got.Overall, DefaultFormScore)
	}
}

func TestValidateScores(t *testing.T) {
	ok := models.FeedbackScores{TechnicalSkills: 1, CommunicationSkills: 5, ProblemSolving: 3, CultureFit: 2}
	if err := ValidateScores(ok); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	for _, bad := range []models.FeedbackScores{
		{TechnicalSkills: 0, CommunicationSkills: 3, ProblemSolving: 3, CultureFit: 3},
		{TechnicalSkills: 3, CommunicationSkills: 6, ProblemSolving: 3, CultureFit: 3},
		{TechnicalSkills: 3, CommunicationSkills: 3, ProblemSolving: 3, CultureFit: -1},
	} {
		if err := ValidateScores(bad); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("ValidateScores(%+v) = %v, want ErrInvalidScore", bad, err)
		}
	}
}

func TestLowRatedAreas(t *testing.T) {
	tests := []struct {
		name  string
		areas RatedAreas
		want  []string
	}{
		{"none low", RatedAreas{Technical: 4, Communication: 3, ProblemSolving: 4, CultureFit: 4, Confidence: 3}, []string{OverallPerformanceArea}},
		{"communication low", RatedAreas{Technical: 4, Communication: 2, ProblemSolving: 4, CultureFit: 4}, []string{"Communication Skills"}},
		{"unknown confidence ignored", RatedAreas{Technical: 1, Communication: 3, ProblemSolving: 2, CultureFit: 3}, []string{"Technical Knowledge", "Problem Solving Approach"}},
		{"confidence low", RatedAreas{Technical: 3, Communication: 3, ProblemSolving: 3, CultureFit: 3, Confidence: 2}, []string{"Confidence Level"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowRatedAreas(tt.areas); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LowRatedAreas = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("- Clear communication\n\n* Strong fundamentals  \n• Good questions")
	want := []string{"Clear communication", "Strong fundamentals", "Good questions"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
	if got := SplitLines("  \n "); len(got) != 0 {
		t.Errorf("Expected no lines, got %v", got)
	}
}

func TestSummarizeTrainerAvailability(t *testing.T) {
	f := models.FeedbackReport{Scores: models.FeedbackScores{TechnicalSkills: 2, CommunicationSkills: 4, ProblemSolving: 4, CultureFit: 4, Overall: 3.5}}

	free := Summarize(f, policy.TierFree)
	if free.Trainer.Availability.Available {
		t.Error("Free tier should not offer trainer sessions")
	}
	if !reflect.DeepEqual(free.Trainer.LowRatedAreas, []string{"Technical Knowledge"}) {
		t.Errorf("Unexpected low areas: %v", free.Trainer.LowRatedAreas)
	}

	pro := Summarize(f, policy.TierProfessional)
	if !pro.Trainer.Availability.Available || len(pro.Trainer.Availability.Options) != 3 {
		t.Errorf("Professional should offer 3 trainer options, got %+v", pro.Trainer.Availability)
	}
	if pro.AverageScore != 3.5 {
		t.Errorf("AverageScore = %v, want 3.5", pro.AverageScore)
	}
}
