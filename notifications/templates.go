package notifications

import (
	"fmt"
	"time"
)

const timeLayout = "Monday, 02 Jan 2006 at 15:04 MST"

func BookingRequested(studentName, role string, start time.Time) (string, string) {
	subject := "New mock interview request"
	html := fmt.Sprintf("<h1>New Interview Request</h1><p>%s has requested a mock interview for the <strong>%s</strong> role on %s.</p><p>Please confirm it from your interviewer dashboard.</p>",
		studentName, role, start.Format(timeLayout))
	return subject, html
}

func BookingReceived(interviewerName, role string, start time.Time) (string, string) {
	subject := "Your mock interview is booked"
	html := fmt.Sprintf("<h1>Interview Booked</h1><p>Your <strong>%s</strong> mock interview with %s is scheduled for %s. You will be notified once it is confirmed.</p>",
		role, interviewerName, start.Format(timeLayout))
	return subject, html
}

func StatusChanged(name, role, status string, start time.Time) (string, string) {
	subject := fmt.Sprintf("Mock interview %s", status)
	html := fmt.Sprintf("<h1>Interview Update</h1><p>Hi %s, the <strong>%s</strong> mock interview on %s is now <strong>%s</strong>.</p>",
		name, role, start.Format(timeLayout), status)
	return subject, html
}

func Reminder(name, otherName, role, link string, start time.Time) (string, string) {
	subject := "Reminder: your mock interview starts in one hour"
	html := fmt.Sprintf("<h1>Interview Reminder</h1><p>Hi %s,</p><p>Your <strong>%s</strong> mock interview with %s starts at %s.</p><p>Join here: <a href=\"%s\">%s</a></p>",
		name, role, otherName, start.Format(timeLayout), link, link)
	return subject, html
}

func FeedbackReady(studentName, role string) (string, string) {
	subject := "Your interview feedback is ready"
	html := fmt.Sprintf("<h1>Feedback Ready</h1><p>Hi %s, your interviewer has submitted feedback for your <strong>%s</strong> mock interview. Log in to review it.</p>",
		studentName, role)
	return subject, html
}
