package appointment

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateAppointmentInput struct {
	Caller identity.Caller

	ClientID       string
	ProfessionalID string
	UserID         string

	StartDate time.Time
	Slots     int
	Services  []ServiceInput
	Status    string
	Place     models.Place
	Notes     string
}

type CreateAppointment struct {
	deps Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{deps: deps.withDefaults()}
}

func (uc *CreateAppointment) Execute(ctx context.Context, in CreateAppointmentInput) (view *AppointmentView, err error) {
	ctx, span := tracer.Start(ctx, "appointment.create")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		uc.deps.Metrics.ObserveAppointment("create", err)
	}()

	d := uc.deps

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	clientID, err := in.Caller.Tenant(in.ClientID)
	if err != nil {
		return nil, err
	}
	if in.StartDate.IsZero() {
		return nil, httperr.ErrValidation("missing_start_date")
	}
	if !domain.IsAlignedInstant(in.StartDate) {
		return nil, httperr.ErrValidation("unaligned_start")
	}
	ids, err := serviceIDs(in.Services)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, httperr.ErrValidation("missing_services")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// References
	// --------------------------------------------------
	if _, err := d.Repo.GetClient(ctx, clientID); err != nil {
		return nil, notFound(err, "client_not_found")
	}

	var prof *models.Professional
	if in.ProfessionalID != "" {
		if err := validID(in.ProfessionalID); err != nil {
			return nil, err
		}
		if prof, err = d.Repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
			return nil, notFound(err, "professional_not_found")
		}
		if prof.ClientID != clientID {
			return nil, httperr.ErrForbidden("cross_tenant_access")
		}
	}

	if in.UserID != "" {
		if err := validID(in.UserID); err != nil {
			return nil, err
		}
		user, err := d.Repo.GetUser(ctx, in.UserID)
		if err != nil {
			return nil, notFound(err, "user_not_found")
		}
		if user.ClientID != nil && *user.ClientID != clientID {
			return nil, httperr.ErrForbidden("cross_tenant_access")
		}
	}

	catalogue, err := d.Repo.ListServices(ctx, clientID, ids)
	if err != nil {
		return nil, err
	}
	services, derivedSlots, err := resolveServices(in.Services, catalogue, prof)
	if err != nil {
		return nil, err
	}

	slots := in.Slots
	if slots <= 0 {
		slots = derivedSlots
	}
	slots = domain.ClampSlotCount(slots)

	// --------------------------------------------------
	// Availability, under the professional/day lock
	// --------------------------------------------------
	if prof != nil {
		release, err := d.lockDay(ctx, prof.ID, in.StartDate)
		if err != nil {
			return nil, err
		}
		defer release()

		if err := d.bookable(ctx, prof, in.StartDate, slots, ""); err != nil {
			return nil, err
		}
	}

	ap := &models.Appointment{
		ClientID: clientID,
		Services: services,
		Notes:    in.Notes,
		Active:   true,
	}
	ap.Place = datatypes.NewJSONType(in.Place)
	if prof != nil {
		ap.ProfessionalID = &prof.ID
	}
	if in.UserID != "" {
		userID := in.UserID
		ap.UserID = &userID
	}
	domain.ApplySchedule(ap, in.StartDate, slots)
	domain.RecordStatus(ap, status, in.Caller.UserID, d.Now())

	if err := uc.insertWithCode(ctx, ap); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("salon.appointment_id", ap.ID),
		attribute.String("salon.code", ap.Code),
	)

	// --------------------------------------------------
	// Re-read with joins
	// --------------------------------------------------
	stored, err := d.Repo.GetActiveAppointment(ctx, ap.ID)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}

	d.record(in.Caller.UserID, stored, "appointment_created", map[string]any{"code": stored.Code})
	d.notify(ctx, stored, domain.ActionCreated)

	d.Logger.Info("appointment created",
		"appointment_id", stored.ID,
		"client_id", stored.ClientID,
		"code", stored.Code,
	)

	return d.presentOne(ctx, stored)
}

// insertWithCode allocates the next code and inserts. A collision on the
// code is retried with the following code up to CodeConflictRetries times,
// then reported as a conflict.
func (uc *CreateAppointment) insertWithCode(ctx context.Context, ap *models.Appointment) error {
	d := uc.deps

	last, err := d.Repo.LastAppointmentCode(ctx)
	if err != nil {
		return err
	}
	code := domain.NextCode(last)

	for attempt := 0; ; attempt++ {
		ap.ID = ""
		ap.Code = code

		err := d.Repo.CreateAppointment(ctx, ap)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return err
		}

		d.Metrics.ObserveCodeConflict()
		d.Logger.Warn("booking code conflict", "code", code, "attempt", attempt)

		if attempt >= d.CodeConflictRetries {
			return httperr.ErrConflict("duplicate_code")
		}
		code = domain.NextCode(code)
	}
}
