package notify

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/observability/metrics"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

// AppointmentStore is what the service reads and marks.
type AppointmentStore interface {
	GetActiveAppointment(ctx context.Context, id string) (*models.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}

// Service tells end customers about their appointments through the
// channels their salon enabled.
type Service struct {
	email   EmailSender
	sms     SMSSender
	store   AppointmentStore
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewService accepts nil senders; a nil channel is skipped.
func NewService(email EmailSender, sms SMSSender, store AppointmentStore, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:   email,
		sms:     sms,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// NotifyAppointmentChange expects ap with Client, User and Professional.User
// loaded. Delivery errors are joined and returned.
func (s *Service) NotifyAppointmentChange(ctx context.Context, ap *models.Appointment, action domain.Action) error {
	_, err := s.deliver(ctx, ap, changeMessage(ap, action))
	return err
}

// SendReminder sends the reminder now and marks it sent so the job skips it.
func (s *Service) SendReminder(ctx context.Context, caller identity.Caller, appointmentID string) error {
	ap, err := s.load(ctx, caller, appointmentID)
	if err != nil {
		return err
	}
	return s.remind(ctx, ap)
}

// Remind delivers a reminder for a loaded appointment and flags it. An
// appointment already flagged is skipped. Once any channel delivered, the
// reminder counts as sent and failures on the other channels are only logged.
func (s *Service) Remind(ctx context.Context, ap *models.Appointment) error {
	if ap.ReminderSent {
		return nil
	}
	return s.remind(ctx, ap)
}

func (s *Service) remind(ctx context.Context, ap *models.Appointment) error {
	delivered, err := s.deliver(ctx, ap, reminderMessage(ap))
	if err != nil && !delivered {
		return err
	}
	if err != nil {
		s.logger.Warn("notify: reminder partially delivered", "appointment_id", ap.ID, "error", err)
	}
	if err := s.store.MarkReminderSent(ctx, ap.ID); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	ap.ReminderSent = true
	return nil
}

func (s *Service) ResendConfirmation(ctx context.Context, caller identity.Caller, appointmentID string) error {
	ap, err := s.load(ctx, caller, appointmentID)
	if err != nil {
		return err
	}
	_, err = s.deliver(ctx, ap, changeMessage(ap, domain.ActionCreated))
	return err
}

func (s *Service) load(ctx context.Context, caller identity.Caller, id string) (*models.Appointment, error) {
	ap, err := s.store.GetActiveAppointment(ctx, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}
	if err := caller.Authorize(ap.ClientID); err != nil {
		return nil, err
	}
	return ap, nil
}

// deliver reports whether at least one channel accepted the message.
func (s *Service) deliver(ctx context.Context, ap *models.Appointment, msg message) (bool, error) {
	if ap.User == nil {
		s.logger.Debug("notify: appointment has no customer, skipping", "appointment_id", ap.ID)
		return false, nil
	}
	customer := ap.User

	var (
		errs      []error
		delivered bool
	)

	if ap.Client.NotifySMS && customer.Phone != "" && s.sms != nil {
		if err := s.sms.SendSMS(ctx, customer.Phone, msg.sms); err != nil {
			s.logger.Error("notify: sms failed", "appointment_id", ap.ID, "error", err)
			s.metrics.ObserveNotification("sms", "failed")
			errs = append(errs, err)
		} else {
			delivered = true
			s.metrics.ObserveNotification("sms", "sent")
		}
	}

	if ap.Client.NotifyEmail && customer.Email != "" && s.email != nil {
		err := s.email.Send(ctx, EmailMessage{
			To:      customer.Email,
			ToName:  customer.Name,
			Subject: msg.subject,
			Body:    msg.body,
		})
		if err != nil {
			s.logger.Error("notify: email failed", "appointment_id", ap.ID, "error", err)
			s.metrics.ObserveNotification("email", "failed")
			errs = append(errs, err)
		} else {
			delivered = true
			s.metrics.ObserveNotification("email", "sent")
		}
	}

	return delivered, errors.Join(errs...)
}

var _ domain.Notifier = (*Service)(nil)
