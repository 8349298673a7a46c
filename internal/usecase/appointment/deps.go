package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/observability/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

var tracer = otel.Tracer("salon.internal.usecase.appointment")

// Deps are the collaborators shared by the appointment use cases. Only Repo
// is required.
type Deps struct {
	Repo     domain.Repository
	Locker   domain.Locker
	Notifier domain.Notifier
	Audit    *audit.Dispatcher
	Metrics  *metrics.BookingMetrics
	Logger   *logging.Logger
	Now      func() time.Time

	CodeConflictRetries     int
	StrictStatusTransitions bool
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	if d.Now == nil {
		d.Now = timezone.Now
	}
	if d.CodeConflictRetries < 0 {
		d.CodeConflictRetries = 0
	}
	return d
}

// notify is best effort: failures are logged and never reach the caller.
func (d Deps) notify(ctx context.Context, ap *models.Appointment, action domain.Action) {
	if d.Notifier == nil {
		return
	}
	if err := d.Notifier.NotifyAppointmentChange(ctx, ap, action); err != nil {
		d.Logger.Warn("appointment notification failed",
			"appointment_id", ap.ID,
			"action", string(action),
			"error", err,
		)
	}
}

// lockDay serialises writes for one professional and day. Without a locker
// it does nothing.
func (d Deps) lockDay(ctx context.Context, professionalID string, day time.Time) (func(), error) {
	if d.Locker == nil {
		return func() {}, nil
	}
	release, ok, err := d.Locker.Acquire(ctx, domain.BookingLockKey(professionalID, day))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrConflict("slot_being_booked")
	}
	return release, nil
}

// bookable checks start against the resolver for the professional's day.
func (d Deps) bookable(
	ctx context.Context,
	prof *models.Professional,
	start time.Time,
	slots int,
	editingID string,
) error {
	from, to := timezone.DayBounds(start)
	existing, err := d.Repo.ListBookingsForDay(ctx, prof.ID, from, to)
	if err != nil {
		return err
	}

	q := domain.AvailabilityQuery{
		Professional: prof,
		Date:         start,
		SlotCount:    slots,
		Bookings:     domain.BookingsFrom(existing),
		Now:          d.Now(),
		EditingID:    editingID,
	}
	if !domain.IsSlotAvailable(q, domain.FromMinutes(domain.MinutesSinceMidnight(start))) {
		return httperr.ErrValidation("slot_unavailable")
	}
	return nil
}

func (d Deps) record(caller string, ap *models.Appointment, action string, meta any) {
	d.Audit.Dispatch(audit.Event{
		ClientID: ap.ClientID,
		UserID:   caller,
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: meta,
	})
}

func notFound(err error, code string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return httperr.ErrValidation("invalid_id")
	}
	return nil
}
