package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultTranscript stands in for a recorded interview when none is supplied.
const DefaultTranscript = "The candidate demonstrated good knowledge of React hooks and component lifecycle. " +
	"They struggled a bit with explaining complex state management solutions but showed strong problem-solving skills when discussing optimization techniques. " +
	"Their communication was clear but sometimes too technical for a non-technical audience. " +
	"Overall, they showed potential but need more practice with system design questions."

// TranscriptModel turns an analysis prompt into a JSON document with the keys
// technicalScore, communicationScore, problemSolvingScore, cultureFitScore,
// confidenceScore, strengths, areasForImprovement and overallScore.
type TranscriptModel interface {
	Generate(ctx context.Context, role, transcript string) (string, error)
}

type SentimentResult struct {
	TechnicalScore      float64  `json:"technical_score"`
	CommunicationScore  float64  `json:"communication_score"`
	ProblemSolvingScore float64  `json:"problem_solving_score"`
	CultureFitScore     float64  `json:"culture_fit_score"`
	ConfidenceScore     float64  `json:"confidence_score"`
	OverallScore        float64  `json:"overall_score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	LowRatedAreas       []string `json:"low_rated_areas"`
}

type SentimentAnalyzer struct {
	model TranscriptModel
}

func NewSentimentAnalyzer(latency time.Duration) *SentimentAnalyzer {
	return &SentimentAnalyzer{model: &keywordModel{latency: latency}}
}

func (a *SentimentAnalyzer) WithModel(m TranscriptModel) *SentimentAnalyzer {
	a.model = m
	return a
}

func (a *SentimentAnalyzer) Analyze(ctx context.Context, role, transcript string) (*SentimentResult, error) {
	if strings.TrimSpace(transcript) == "" {
		transcript = DefaultTranscript
	}

	text, err := a.model.Generate(ctx, role, transcript)
	if err != nil {
		log.Printf("Error analyzing sentiment: %v", err)
		return nil, ErrAnalysisFailed
	}

	res, err := ParseSentiment(text)
	if err != nil {
		log.Printf("Error analyzing sentiment: %v", err)
		return nil, ErrAnalysisFailed
	}
	return res, nil
}

var scoreKeys = []string{
	"technicalScore",
	"communicationScore",
	"problemSolvingScore",
	"cultureFitScore",
	"confidenceScore",
	"overallScore",
}

// ParseSentiment reads a model response. Every score must be present and
// within 1..5.
func ParseSentiment(text string) (*SentimentResult, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("analysis response is not valid JSON")
	}

	results := gjson.GetMany(text, scoreKeys...)
	scores := make([]float64, len(results))
	for i, r := range results {
		if r.Type != gjson.Number {
			return nil, fmt.Errorf("analysis response missing numeric %s", scoreKeys[i])
		}
		if r.Float() < MinScore || r.Float() > MaxScore {
			return nil, fmt.Errorf("analysis %s out of range: %v", scoreKeys[i], r.Float())
		}
		scores[i] = r.Float()
	}

	res := &SentimentResult{
		TechnicalScore:      scores[0],
		CommunicationScore:  scores[1],
		ProblemSolvingScore: scores[2],
		CultureFitScore:     scores[3],
		ConfidenceScore:     scores[4],
		OverallScore:        scores[5],
		Strengths:           stringList(gjson.Get(text, "strengths")),
		AreasForImprovement: stringList(gjson.Get(text, "areasForImprovement")),
	}
	res.LowRatedAreas = LowRatedAreas(RatedAreas{
		Technical:      res.TechnicalScore,
		Communication:  res.CommunicationScore,
		ProblemSolving: res.ProblemSolvingScore,
		CultureFit:     res.CultureFitScore,
		Confidence:     res.ConfidenceScore,
	})
	return res, nil
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		if s := strings.TrimSpace(r.String()); s != "" {
			return SplitLines(s)
		}
		return []string{}
	}
	out := make([]string, 0, len(r.Array()))
	for _, item := range r.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// keywordModel scores a transcript from cue words. It stands in for a hosted
// language model and answers in the same JSON shape.
type keywordModel struct {
	latency time.Duration
}

var (
	positiveCues = []string{"good", "strong", "clear", "excellent", "well", "potential", "confident"}
	negativeCues = []string{"struggled", "sometimes", "need", "weak", "unclear", "hesitat", "missed"}

	dimensionCues = map[string][]string{
		"technicalScore":      {"knowledge", "technical", "react", "hooks", "state management", "system design", "code"},
		"communicationScore":  {"communicat", "explain", "clear", "articulat"},
		"problemSolvingScore": {"problem", "optimization", "approach", "edge case"},
		"cultureFitScore":     {"team", "culture", "collaborat", "audience"},
		"confidenceScore":     {"confiden", "potential", "hesitat", "nervous"},
	}
)

func (m *keywordModel) Generate(ctx context.Context, role, transcript string) (string, error) {
	if m.latency > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.latency):
		}
	}

	scores := map[string]float64{}
	for key := range dimensionCues {
		scores[key] = 3
	}

	var strengths, improvements []string
	for _, sentence := range strings.Split(transcript, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)

		for _, clause := range strings.Split(sentence, " but ") {
			c := strings.ToLower(clause)
			switch {
			case countCues(c, negativeCues) > 0:
				improvements = append(improvements, capitalize(clause))
			case countCues(c, positiveCues) > 0:
				strengths = append(strengths, capitalize(clause))
			}
		}

		net := float64(countCues(lower, positiveCues) - countCues(lower, negativeCues))
		for key, cues := range dimensionCues {
			if countCues(lower, cues) > 0 {
				scores[key] += net
			}
		}
	}

	sum := 0.0
	for key := range scores {
		scores[key] = math.Max(MinScore, math.Min(MaxScore, scores[key]))
		sum += scores[key]
	}
	scores["overallScore"] = math.Round(sum / float64(len(dimensionCues)))

	doc := map[string]interface{}{
		"strengths":           nonNil(strengths),
		"areasForImprovement": nonNil(improvements),
	}
	for k, v := range scores {
		doc[k] = v
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func countCues(s string, cues []string) int {
	n := 0
	for _, c := range cues {
		if strings.Contains(s, c) {
			n++
		}
	}
	return n
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Overall, ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
