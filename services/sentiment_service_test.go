package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type cannedModel struct {
	text string
	err  error
}

func (m cannedModel) Generate(context.Context, string, string) (string, error) {
	return m.text, m.err
}

func TestParseSentiment(t *testing.T) {
	text := `{"technicalScore":4,"communicationScore":3,"problemSolvingScore":4,"cultureFitScore":4,"confidenceScore":3,
		"strengths":["Good knowledge of React hooks","Strong problem-solving skills"],
		"areasForImprovement":["Explaining complex state management"],"overallScore":4}`

	res, err := ParseSentiment(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.TechnicalScore != 4 || res.CommunicationScore != 3 || res.OverallScore != 4 {
		t.Errorf("Unexpected scores: %+v", res)
	}
	if len(res.Strengths) != 2 || len(res.AreasForImprovement) != 1 {
		t.Errorf("Unexpected lists: %+v", res)
	}
	if !reflect.DeepEqual(res.LowRatedAreas, []string{OverallPerformanceArea}) {
		t.Errorf("LowRatedAreas = %v", res.LowRatedAreas)
	}
}

func TestParseSentimentRejects(t *testing.T) {
	tests := map[string]string{
		"not json":     `the candidate did well`,
		"missing key":  `{"technicalScore":4,"communicationScore":3,"problemSolvingScore":4,"cultureFitScore":4,"overallScore":4}`,
		"out of range": `{"technicalScore":9,"communicationScore":3,"problemSolvingScore":4,"cultureFitScore":4,"confidenceScore":3,"overallScore":4}`,
		"string score": `{"technicalScore":"4","communicationScore":3,"problemSolvingScore":4,"cultureFitScore":4,"confidenceScore":3,"overallScore":4}`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSentiment(text); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestAnalyzeDefaultTranscript(t *testing.T) {
	a := NewSentimentAnalyzer(0)
	res, err := a.Analyze(context.Background(), "Frontend Developer", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, v := range []float64{res.TechnicalScore, res.CommunicationScore, res.ProblemSolvingScore, res.CultureFitScore, res.ConfidenceScore, res.OverallScore} {
		if v < MinScore || v > MaxScore {
			t.Errorf("score %v out of range in %+v", v, res)
		}
	}
	if len(res.Strengths) == 0 || len(res.AreasForImprovement) == 0 {
		t.Errorf("Expected strengths and improvements, got %+v", res)
	}
}

func TestAnalyzeFailures(t *testing.T) {
	bad := NewSentimentAnalyzer(0).WithModel(cannedModel{text: "```json oops"})
	if _, err := bad.Analyze(context.Background(), "SWE", "x"); !errors.Is(err, ErrAnalysisFailed) {
		t.Errorf("malformed payload: got %v, want ErrAnalysisFailed", err)
	}

	slow := NewSentimentAnalyzer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := slow.Analyze(ctx, "SWE", "x"); !errors.Is(err, ErrAnalysisFailed) {
		t.Errorf("cancelled: got %v, want ErrAnalysisFailed", err)
	}
}
