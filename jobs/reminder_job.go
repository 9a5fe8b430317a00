package jobs

import (
	"context"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/notifications"
)

// SendInterviewReminders emails both parties of every confirmed interview
// starting in the next 60 to 65 minutes. Each interview is reminded once.
func (j *Jobs) SendInterviewReminders(ctx context.Context) int {
	log.Println("Running job: SendInterviewReminders...")

	now := j.now()
	upcoming, err := j.store.ListInterviewsStartingBetween(ctx, models.InterviewConfirmed, now.Add(60*time.Minute), now.Add(65*time.Minute))
	if err != nil {
		log.Printf("Error checking for upcoming interviews: %v", err)
		return 0
	}

	sent := 0
	for _, interview := range upcoming {
		if interview.ReminderSent {
			continue
		}
		student, err := j.store.GetUser(ctx, interview.StudentID)
		if err != nil {
			log.Printf("⚠️ Reminder for %s skipped: %v", interview.ID, err)
			continue
		}
		interviewer, err := j.store.GetUser(ctx, interview.InterviewerID)
		if err != nil {
			log.Printf("⚠️ Reminder for %s skipped: %v", interview.ID, err)
			continue
		}

		link := ""
		if interview.MeetingLink != nil {
			link = *interview.MeetingLink
		}
		subject, body := notifications.Reminder(student.FullName, interviewer.FullName, interview.Role, link, interview.StartTime)
		go j.mailer.SendEmail(student.FullName, student.Email, subject, body)
		subject, body = notifications.Reminder(interviewer.FullName, student.FullName, interview.Role, link, interview.StartTime)
		go j.mailer.SendEmail(interviewer.FullName, interviewer.Email, subject, body)

		if err := j.store.MarkReminderSent(ctx, interview.ID); err != nil {
			log.Printf("🔥 Failed to mark reminder sent for %s: %v", interview.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("Sent reminders for %d interview(s).", sent)
	}
	return sent
}
