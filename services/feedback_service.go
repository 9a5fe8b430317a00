package services

import (
	"math"
	"strings"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
)

const (
	MinScore          = 1
	MaxScore          = 5
	DefaultFormScore  = 3
	lowScoreThreshold = 3
)

// AverageScore is the figure shown on a feedback report: the mean of every
// score on it, overall included.
func AverageScore(s models.FeedbackScores) float64 {
	sum := s.TechnicalSkills + s.CommunicationSkills + s.ProblemSolving + s.CultureFit + s.Overall
	return round1(sum / 5)
}

// DeriveOverall computes the stored overall score from the four component
// scores.
func DeriveOverall(s models.FeedbackScores) float64 {
	return round1((s.TechnicalSkills + s.CommunicationSkills + s.ProblemSolving + s.CultureFit) / 4)
}

func ValidateScores(s models.FeedbackScores) error {
	for _, v := range []float64{s.TechnicalSkills, s.CommunicationSkills, s.ProblemSolving, s.CultureFit} {
		if v < MinScore || v > MaxScore {
			return ErrInvalidScore
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DefaultScores is what a blank feedback form starts with.
func DefaultScores() models.FeedbackScores {
	s := models.FeedbackScores{
		TechnicalSkills:     DefaultFormScore,
		CommunicationSkills: DefaultFormScore,
		ProblemSolving:      DefaultFormScore,
		CultureFit:          DefaultFormScore,
	}
	s.Overall = DeriveOverall(s)
	return s
}

// RatedAreas carries the per-area scores used to decide where a student needs
// a trainer. Confidence only comes from sentiment analysis and is zero when
// unknown.
type RatedAreas struct {
	Technical      float64
	Communication  float64
	ProblemSolving float64
	CultureFit     float64
	Confidence     float64
}

const OverallPerformanceArea = "Overall Interview Performance"

// LowRatedAreas lists the areas scored below 3. When nothing is low the
// student is pointed at their overall performance instead.
func LowRatedAreas(r RatedAreas) []string {
	var areas []string
	check := func(score float64, name string) {
		if score > 0 && score < lowScoreThreshold {
			areas = append(areas, name)
		}
	}
	check(r.Technical, "Technical Knowledge")
	check(r.Communication, "Communication Skills")
	check(r.ProblemSolving, "Problem Solving Approach")
	check(r.CultureFit, "Cultural Fit")
	check(r.Confidence, "Confidence Level")

	if len(areas) == 0 {
		return []string{OverallPerformanceArea}
	}
	return areas
}

func AreasFromScores(s models.FeedbackScores) RatedAreas {
	return RatedAreas{
		Technical:      s.TechnicalSkills,
		Communication:  s.CommunicationSkills,
		ProblemSolving: s.ProblemSolving,
		CultureFit:     s.CultureFit,
	}
}

type TrainerConnection struct {
	LowRatedAreas []string                 `json:"low_rated_areas"`
	Availability  policy.TrainerCapability `json:"availability"`
}

func ConnectTrainer(t policy.Tier, areas []string) TrainerConnection {
	return TrainerConnection{
		LowRatedAreas: areas,
		Availability:  policy.Capabilities(t).Trainer,
	}
}

// SplitLines turns a free-text list, one item per line, into a slice.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

type FeedbackSummary struct {
	Report       models.FeedbackReport `json:"report"`
	AverageScore float64               `json:"average_score"`
	Trainer      TrainerConnection     `json:"trainer"`
}

func Summarize(f models.FeedbackReport, t policy.Tier) FeedbackSummary {
	return FeedbackSummary{
		Report:       f,
		AverageScore: AverageScore(f.Scores),
		Trainer:      ConnectTrainer(t, LowRatedAreas(AreasFromScores(f.Scores))),
	}
}
