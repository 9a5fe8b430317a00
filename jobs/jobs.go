package jobs

import (
	"context"
	"log"
	"time"

	"github.com/anjiri1684/mockprep/notifications"
	"github.com/anjiri1684/mockprep/store"
	"github.com/robfig/cron/v3"
)

type Jobs struct {
	store  store.Store
	mailer notifications.Mailer
	now    func() time.Time
}

func New(s store.Store, mailer notifications.Mailer) *Jobs {
	if mailer == nil {
		mailer = notifications.LogMailer{}
	}
	return &Jobs{store: s, mailer: mailer, now: time.Now}
}

// Schedule registers every job on c under the given cron spec.
func (j *Jobs) Schedule(c *cron.Cron, spec string) error {
	if _, err := c.AddFunc(spec, func() { j.SendInterviewReminders(context.Background()) }); err != nil {
		return err
	}
	if _, err := c.AddFunc(spec, func() { j.CancelUnconfirmedInterviews(context.Background()) }); err != nil {
		return err
	}
	log.Printf("✅ Interview jobs scheduled (%s)", spec)
	return nil
}
