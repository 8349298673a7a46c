package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
)

type GetAppointment struct {
	deps Deps
}

func NewGetAppointment(deps Deps) *GetAppointment {
	return &GetAppointment{deps: deps.withDefaults()}
}

func (uc *GetAppointment) Execute(ctx context.Context, caller identity.Caller, id string) (*AppointmentView, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	ap, err := uc.deps.Repo.GetActiveAppointment(ctx, id)
	if err != nil {
		return nil, notFound(err, "appointment_not_found")
	}
	if err := caller.Authorize(ap.ClientID); err != nil {
		return nil, err
	}

	return uc.deps.presentOne(ctx, ap)
}
