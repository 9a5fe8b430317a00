package analysis

const (
	MomentPositive = "positive"
	MomentNegative = "negative"
	MomentNeutral  = "neutral"
)

var momentTypes = []string{MomentPositive, MomentNegative, MomentNeutral}

var momentPhrases = map[string][]string{
	MomentPositive: {
		"Good articulation of concepts",
		"Demonstrated strong problem-solving approach",
		"Excellent technical explanation",
		"Clear and concise communication",
	},
	MomentNegative: {
		"Hesitation when discussing algorithms",
		"Unclear explanation of time complexity",
		"Missed edge case in solution",
		"Too many filler words used",
	},
	MomentNeutral: {
		"Average response to system design question",
		"Could elaborate more on the solution",
		"Acceptable but not exceptional explanation",
		"Moderate understanding demonstrated",
	},
}

var momentLabels = map[string]string{
	MomentPositive: "Strength",
	MomentNegative: "Improvement Area",
	MomentNeutral:  "Observation",
}

var fillerWords = []string{"um", "like", "actually", "basically"}

// Opening counts, index-aligned with fillerWords.
var fillerSeed = []int{5, 8, 3, 4}

var toneNames = []string{"confident", "nervous", "enthusiastic", "uncertain"}

var toneSeed = []float64{65, 15, 45, 20}

type Insight struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var insights = []Insight{
	{
		Title: "Communication Pattern",
		Body:  "The candidate speaks at a good pace but tends to use filler words frequently. Recommend practicing more concise responses.",
	},
	{
		Title: "Technical Strengths",
		Body:  "Strong understanding of system design principles and data structures. Explanations are clear and technically sound.",
	},
	{
		Title: "Areas for Improvement",
		Body:  "Could improve on concurrency concepts and algorithm complexity analysis. Consider asking more clarifying questions before diving into solutions.",
	},
	{
		Title: "Confidence Trend",
		Body:  "Confidence increases when discussing familiar topics but drops noticeably when challenged on edge cases. Work on maintaining consistent confidence.",
	},
}

// InsightNote is the summary an interviewer can copy into their notes.
const InsightNote = "AI suggests focusing on concurrency concepts and reducing filler words."
