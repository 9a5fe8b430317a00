package data

import "github.com/google/uuid"

var namespace = uuid.MustParse("5f1c2f3e-8f4a-4c55-9d1e-6b0f2a7c9e11")

// ID derives a stable identifier for a seeded record so that demo links and
// tests survive a reseed.
func ID(kind, key string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+"/"+key))
}

const DemoPassword = "mockprep123"

var (
	AlexID       = ID("user", "alex.johnson")
	JamieID      = ID("user", "jamie.smith")
	RahulID      = ID("user", "rahul.sharma")
	DavidID      = ID("user", "david.wilson")
	AssessmentID = ID("assessment", "technical-readiness")
	FeedbackAID  = ID("feedback", "123")
	FeedbackBID  = ID("feedback", "125")
)
