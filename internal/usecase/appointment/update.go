package appointment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UpdateAppointmentInput carries only the fields to change; nil means keep.
type UpdateAppointmentInput struct {
	Caller identity.Caller
	ID     string

	ProfessionalID *string
	UserID         *string
	StartDate      *time.Time
	Slots          *int
	Services       *[]ServiceInput
	Status         *string
	Place          *models.Place
	Notes          *string
}

type UpdateAppointment struct {
	deps Deps
}

func NewUpdateAppointment(deps Deps) *UpdateAppointment {
	return &UpdateAppointment{deps: deps.withDefaults()}
}

func (uc *UpdateAppointment) Execute(ctx context.Context, in UpdateAppointmentInput) (view *AppointmentView, err error) {
	ctx, span := tracer.Start(ctx, "appointment.update")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		uc.deps.Metrics.ObserveAppointment("update", err)
	}()

	d := uc.deps

	if err := validID(in.ID); err != nil {
		return nil, err
	}

	ap, err := d.Repo.GetActiveAppointment(ctx, in.ID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	if err := in.Caller.Authorize(ap.ClientID); err != nil {
		return nil, err
	}

	reschedule := false

	// --------------------------------------------------
	// Professional
	// --------------------------------------------------
	prof := ap.Professional
	if in.ProfessionalID != nil {
		reschedule = true
		prof = nil
		ap.ProfessionalID = nil
		if *in.ProfessionalID != "" {
			if err := validID(*in.ProfessionalID); err != nil {
				return nil, err
			}
			if prof, err = d.Repo.GetProfessional(ctx, *in.ProfessionalID); err != nil {
				return nil, notFound(err, "professional_not_found")
			}
			if prof.ClientID != ap.ClientID {
				return nil, httperr.ErrForbidden("cross_tenant_access")
			}
			ap.ProfessionalID = &prof.ID
		}
	}

	// --------------------------------------------------
	// Customer
	// --------------------------------------------------
	if in.UserID != nil {
		ap.UserID = nil
		if *in.UserID != "" {
			if err := validID(*in.UserID); err != nil {
				return nil, err
			}
			user, err := d.Repo.GetUser(ctx, *in.UserID)
			if err != nil {
				return nil, notFound(err, "user_not_found")
			}
			if user.ClientID != nil && *user.ClientID != ap.ClientID {
				return nil, httperr.ErrForbidden("cross_tenant_access")
			}
			ap.UserID = &user.ID
		}
	}

	// --------------------------------------------------
	// Services and duration
	// --------------------------------------------------
	slots := ap.Slots
	if in.Services != nil || in.ProfessionalID != nil {
		requested := currentServices(ap)
		if in.Services != nil {
			requested = *in.Services
		}
		ids, err := serviceIDs(requested)
		if err != nil {
			return nil, err
		}
		catalogue, err := d.Repo.ListServices(ctx, ap.ClientID, ids)
		if err != nil {
			return nil, err
		}
		services, derived, err := resolveServices(requested, catalogue, prof)
		if err != nil {
			return nil, err
		}
		ap.Services = services
		slots = derived
		reschedule = true
	}
	if in.Slots != nil {
		slots = *in.Slots
		reschedule = true
	}

	start := ap.StartDate
	if in.StartDate != nil {
		start = *in.StartDate
		reschedule = true
		if !domain.IsAlignedInstant(start) {
			return nil, httperr.ErrValidation("unaligned_start")
		}
	}

	if reschedule {
		slots = domain.ClampSlotCount(slots)
		if prof != nil {
			release, err := d.lockDay(ctx, prof.ID, start)
			if err != nil {
				return nil, err
			}
			defer release()

			if err := d.bookable(ctx, prof, start, slots, ap.ID); err != nil {
				return nil, err
			}
		}
		domain.ApplySchedule(ap, start, slots)
	}

	// --------------------------------------------------
	// Status and plain fields
	// --------------------------------------------------
	if in.Status != nil {
		next, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateTransition(domain.Status(ap.Status), next, d.StrictStatusTransitions); err != nil {
			return nil, err
		}
		domain.RecordStatus(ap, next, in.Caller.UserID, d.Now())
	}
	if in.Place != nil {
		ap.Place = datatypes.NewJSONType(*in.Place)
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := d.Repo.UpdateActiveAppointment(ctx, ap); err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	stored, err := d.Repo.GetActiveAppointment(ctx, ap.ID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	d.record(in.Caller.UserID, stored, "appointment_updated", map[string]any{
		"status":      stored.Status,
		"rescheduled": reschedule,
	})
	d.notify(ctx, stored, domain.ActionUpdated)

	return d.presentOne(ctx, stored)
}

// currentServices keeps the stored prices when only the professional changes.
func currentServices(ap *models.Appointment) []ServiceInput {
	out := make([]ServiceInput, 0, len(ap.Services))
	for _, s := range ap.Services {
		price := s.Price
		out = append(out, ServiceInput{ServiceID: s.ServiceID, Price: &price})
	}
	return out
}
