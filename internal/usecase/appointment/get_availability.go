package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	Caller identity.Caller

	ProfessionalID string
	Date           time.Time
	ServiceID      string
	Slots          int

	// AppointmentID switches to editing mode for that appointment.
	AppointmentID string
}

type GetAvailability struct {
	deps Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{deps: deps.withDefaults()}
}

func (uc *GetAvailability) Execute(ctx context.Context, in AvailabilityInput) ([]domain.TimeOfDay, error) {
	ctx, span := tracer.Start(ctx, "appointment.availability")
	defer span.End()

	d := uc.deps
	started := time.Now()

	if err := validID(in.ProfessionalID); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, httperr.ErrValidation("invalid_date")
	}

	prof, err := d.Repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, notFound(err, "professional_not_found")
	}
	if err := in.Caller.Authorize(prof.ClientID); err != nil {
		return nil, err
	}

	slots := in.Slots
	if slots <= 0 && in.ServiceID != "" {
		a, ok := prof.Assignment(in.ServiceID)
		if !ok {
			return nil, httperr.ErrValidation("service_not_offered")
		}
		slots = a.SlotCount
	}

	editingID := ""
	if in.AppointmentID != "" {
		if err := validID(in.AppointmentID); err != nil {
			return nil, err
		}
		ap, err := d.Repo.GetActiveAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, notFound(err, "appointment_not_found")
		}
		if ap.ClientID != prof.ClientID {
			return nil, httperr.ErrForbidden("cross_tenant_access")
		}
		editingID = ap.ID
	}

	from, to := timezone.DayBounds(in.Date)
	existing, err := d.Repo.ListBookingsForDay(ctx, prof.ID, from, to)
	if err != nil {
		return nil, err
	}

	result := domain.ComputeAvailableSlots(domain.AvailabilityQuery{
		Professional: prof,
		Date:         from,
		SlotCount:    slots,
		Bookings:     domain.BookingsFrom(existing),
		Now:          d.Now(),
		EditingID:    editingID,
	})

	d.Metrics.ObserveAvailability(time.Since(started).Seconds())
	return result, nil
}
