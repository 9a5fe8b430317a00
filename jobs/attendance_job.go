package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/store"
)

const (
	noShowGrace    = 15 * time.Minute
	noShowLookback = 30 * 24 * time.Hour
)

// CancelUnconfirmedInterviews cancels interviews the interviewer never
// confirmed once they are more than 15 minutes past their start. Cancelling
// frees the slot and the student's quota.
func (j *Jobs) CancelUnconfirmedInterviews(ctx context.Context) int {
	log.Println("Running job: CancelUnconfirmedInterviews...")

	cutoff := j.now().Add(-noShowGrace)
	stale, err := j.store.ListInterviewsStartingBetween(ctx, models.InterviewPending, cutoff.Add(-noShowLookback), cutoff)
	if err != nil {
		log.Printf("Error checking for unconfirmed interviews: %v", err)
		return 0
	}

	cancelled := 0
	for _, interview := range stale {
		if !interview.StartTime.Before(cutoff) {
			continue
		}
		_, err := j.store.TransitionInterview(ctx, interview.ID, models.InterviewPending, models.InterviewCancelled)
		if errors.Is(err, store.ErrStatusChanged) {
			log.Printf("Interview %s changed status before the sweep, skipping", interview.ID)
			continue
		}
		if err != nil {
			log.Printf("🔥 Failed to cancel interview %s: %v", interview.ID, err)
			continue
		}
		cancelled++
	}

	if cancelled == 0 {
		log.Println("No unconfirmed interviews found.")
		return 0
	}
	log.Printf("Cancelled %d unconfirmed interview(s).", cancelled)
	return cancelled
}
