package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/anjiri1684/mockprep/policy"
)

const (
	MetricConfidence         = "confidence"
	MetricTechnicalKnowledge = "technical_knowledge"
	MetricCommunication      = "communication"
	MetricProblemSolving     = "problem_solving"
)

const (
	maxJitter          = 3.0
	keyMomentThreshold = 0.9
	fillerThreshold    = 0.8
)

type Metric struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Previous float64 `json:"previous_value"`
}

// Delta is the last change rounded to one decimal place.
func (m Metric) Delta() float64 {
	return math.Round((m.Value-m.Previous)*10) / 10
}

type KeyMoment struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Counter struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type ToneReading struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Panel is the live analysis state for a single interview. It is safe for
// concurrent use.
type Panel struct {
	mu      sync.Mutex
	metrics []Metric
	moments []KeyMoment
	fillers []Counter
	tone    []ToneReading
	elapsed time.Duration
	ticks   int
}

func NewPanel() *Panel {
	fillers := make([]Counter, len(fillerWords))
	for i, w := range fillerWords {
		fillers[i] = Counter{Word: w, Count: fillerSeed[i]}
	}
	tone := make([]ToneReading, len(toneNames))
	for i, name := range toneNames {
		tone[i] = ToneReading{Name: name, Value: toneSeed[i]}
	}

	return &Panel{
		metrics: []Metric{
			{Key: MetricConfidence, Name: "Confidence", Value: 75, Previous: 70},
			{Key: MetricTechnicalKnowledge, Name: "Technical Knowledge", Value: 82, Previous: 80},
			{Key: MetricCommunication, Name: "Communication", Value: 68, Previous: 65},
			{Key: MetricProblemSolving, Name: "Problem Solving", Value: 79, Previous: 75},
		},
		moments: []KeyMoment{
			newMoment("02:15", MomentPositive, "Excellent explanation of system design principles"),
			newMoment("05:30", MomentNegative, "Struggled with concurrency concepts"),
			newMoment("08:45", MomentPositive, "Strong problem decomposition approach"),
			newMoment("12:20", MomentNeutral, "Could improve code optimization explanation"),
		},
		fillers: fillers,
		tone:    tone,
	}
}

func newMoment(ts, kind, desc string) KeyMoment {
	return KeyMoment{Timestamp: ts, Type: kind, Label: momentLabels[kind], Description: desc}
}

// Tick applies one simulated update. elapsed is the interview clock used to
// stamp any key moment produced by this tick. Tiers without realtime
// analysis leave the panel untouched.
func (p *Panel) Tick(rng *rand.Rand, caps policy.AnalysisCapability, elapsed time.Duration) {
	if !caps.Realtime {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.ticks++
	p.elapsed = elapsed

	for i := range p.metrics {
		m := &p.metrics[i]
		m.Previous = m.Value
		m.Value = jitter(rng, m.Value)
	}

	if caps.GenerateMoments && rng.Float64() > keyMomentThreshold {
		kind := momentTypes[rng.Intn(len(momentTypes))]
		bank := momentPhrases[kind]
		moment := newMoment(Timestamp(elapsed), kind, bank[rng.Intn(len(bank))])
		p.moments = append([]KeyMoment{moment}, p.moments...)
	}

	if caps.FillerWords && rng.Float64() > fillerThreshold {
		p.fillers[rng.Intn(len(p.fillers))].Count++
	}

	if caps.EmotionalTone {
		for i := range p.tone {
			p.tone[i].Value = jitter(rng, p.tone[i].Value)
		}
	}
}

func (p *Panel) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.elapsed
}

// Rate sets a metric by hand, as the interviewer's slider does.
func (p *Panel) Rate(key string, value float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.metrics {
		if p.metrics[i].Key == key {
			p.metrics[i].Previous = p.metrics[i].Value
			p.metrics[i].Value = clamp(value)
			return nil
		}
	}
	return fmt.Errorf("unknown metric %q", key)
}

type Snapshot struct {
	Tier          policy.Tier    `json:"tier"`
	Locked        bool           `json:"locked"`
	Sections      []string       `json:"sections"`
	Elapsed       string         `json:"elapsed"`
	Metrics       []Metric       `json:"metrics,omitempty"`
	KeyMoments    []KeyMoment    `json:"key_moments,omitempty"`
	HiddenMoments int            `json:"hidden_moments,omitempty"`
	FillerWords   []Counter      `json:"filler_words,omitempty"`
	EmotionalTone []ToneReading  `json:"emotional_tone,omitempty"`
	Insights      []Insight      `json:"insights,omitempty"`
	Note          string         `json:"note,omitempty"`
	Notice        *policy.Notice `json:"notice,omitempty"`
}

// Snapshot copies the panel state, trimmed to what the capability may see.
func (p *Panel) Snapshot(caps policy.Capability) Snapshot {
	a := caps.Analysis
	s := Snapshot{Tier: caps.Tier, Sections: a.Sections, Notice: a.Notice}
	if !a.Realtime {
		s.Locked = true
		return s
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s.Elapsed = Timestamp(p.elapsed)
	s.Metrics = append([]Metric(nil), p.metrics...)

	n := a.VisibleMoments(len(p.moments))
	s.KeyMoments = append([]KeyMoment(nil), p.moments[:n]...)
	s.HiddenMoments = len(p.moments) - n

	if a.FillerWords {
		s.FillerWords = append([]Counter(nil), p.fillers...)
	}
	if a.EmotionalTone {
		s.EmotionalTone = append([]ToneReading(nil), p.tone...)
	}
	if a.ShowsSection(policy.SectionInsights) {
		s.Insights = insights
		s.Note = InsightNote
	}
	return s
}

// Timestamp renders d as MM:SS.
func Timestamp(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func jitter(rng *rand.Rand, v float64) float64 {
	return clamp(v + (rng.Float64()*2*maxJitter - maxJitter))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
