// Package reminder sends the pre-appointment reminders on a fixed interval.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

// DueLister finds appointments starting inside [from, to) that still wait
// for a reminder.
type DueLister interface {
	ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}

// Reminder delivers one reminder and marks it sent.
type Reminder interface {
	Remind(ctx context.Context, ap *models.Appointment) error
}

type Job struct {
	store    DueLister
	reminder Reminder
	logger   *logging.Logger

	interval time.Duration
	lead     time.Duration
	now      func() time.Time
}

func NewJob(store DueLister, reminder Reminder, interval, lead time.Duration, logger *logging.Logger) *Job {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	if lead <= 0 {
		lead = 24 * time.Hour
	}
	return &Job{
		store:    store,
		reminder: reminder,
		logger:   logger,
		interval: interval,
		lead:     lead,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ProcessDue sends reminders for appointments starting within the lead
// window and returns how many were delivered.
func (j *Job) ProcessDue(ctx context.Context) (int, error) {
	now := j.now()
	aps, err := j.store.ListDueReminders(ctx, now, now.Add(j.lead))
	if err != nil {
		return 0, fmt.Errorf("reminder: list due: %w", err)
	}
	if len(aps) == 0 {
		return 0, nil
	}

	j.logger.Info("reminder: processing due appointments", "count", len(aps))

	sent := 0
	for i := range aps {
		ap := &aps[i]
		if err := j.reminder.Remind(ctx, ap); err != nil {
			j.logger.Error("reminder: delivery failed", "appointment_id", ap.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

// Run ticks until ctx is done.
func (j *Job) Run(ctx context.Context) {
	j.logger.Info("reminder job started", "interval", j.interval.String(), "lead", j.lead.String())

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if _, err := j.ProcessDue(ctx); err != nil {
			j.logger.Error("reminder job tick failed", "error", err)
		}

		select {
		case <-ctx.Done():
			j.logger.Info("reminder job stopped")
			return
		case <-ticker.C:
		}
	}
}
