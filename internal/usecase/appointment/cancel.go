package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
)

type CancelAppointment struct {
	deps Deps
}

func NewCancelAppointment(deps Deps) *CancelAppointment {
	return &CancelAppointment{deps: deps.withDefaults()}
}

// Execute soft-deletes the appointment. Canceling twice is NotFound.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	caller identity.Caller,
	appointmentID string,
) (view *AppointmentView, err error) {

	ctx, span := tracer.Start(ctx, "appointment.cancel")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		uc.deps.Metrics.ObserveAppointment("cancel", err)
	}()

	d := uc.deps

	if err := validID(appointmentID); err != nil {
		return nil, err
	}

	ap, err := d.Repo.GetActiveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	if err := caller.Authorize(ap.ClientID); err != nil {
		return nil, err
	}

	if err := d.Repo.DeactivateAppointment(ctx, ap.ID); err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	domain.Cancel(ap)

	d.record(caller.UserID, ap, "appointment_canceled", nil)
	d.notify(ctx, ap, domain.ActionDeleted)

	d.Logger.Info("appointment canceled", "appointment_id", ap.ID, "client_id", ap.ClientID)

	return d.presentOne(ctx, ap)
}
