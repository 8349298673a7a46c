package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
)

type ListAppointmentsInput struct {
	Caller identity.Caller

	ClientID       string
	ProfessionalID string
	UserID         string
	Status         string
	From           *time.Time
	To             *time.Time
}

type ListAppointments struct {
	deps Deps
}

func NewListAppointments(deps Deps) *ListAppointments {
	return &ListAppointments{deps: deps.withDefaults()}
}

// Execute lists the tenant's active appointments, ascending by start.
func (uc *ListAppointments) Execute(ctx context.Context, in ListAppointmentsInput) ([]AppointmentView, error) {
	ctx, span := tracer.Start(ctx, "appointment.list")
	defer span.End()

	clientID, err := in.Caller.Tenant(in.ClientID)
	if err != nil {
		return nil, err
	}
	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	aps, err := uc.deps.Repo.ListActiveAppointments(ctx, domain.ListFilter{
		ClientID:       clientID,
		ProfessionalID: in.ProfessionalID,
		UserID:         in.UserID,
		Status:         in.Status,
		From:           in.From,
		To:             in.To,
	})
	if err != nil {
		return nil, err
	}

	return uc.deps.present(ctx, aps)
}
