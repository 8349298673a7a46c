package professional

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	apdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/professional"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListProfessionals struct {
	repo domain.Repository
}

func NewListProfessionals(repo domain.Repository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

func (uc *ListProfessionals) Execute(ctx context.Context, caller identity.Caller, clientID string) ([]models.Professional, error) {
	tenant, err := caller.Tenant(clientID)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, tenant)
}

type RemoveProfessional struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveProfessional(repo domain.Repository, audit *audit.Dispatcher) *RemoveProfessional {
	return &RemoveProfessional{repo: repo, audit: audit}
}

// Execute drops the professional from the tenant's list. Existing
// appointments keep their reference.
func (uc *RemoveProfessional) Execute(ctx context.Context, caller identity.Caller, clientID, id string) error {
	tenant, err := caller.Tenant(clientID)
	if err != nil {
		return err
	}

	if err := uc.repo.Deactivate(ctx, tenant, id); err != nil {
		if errors.Is(err, apdomain.ErrRecordNotFound) {
			return httperr.ErrNotFound("professional_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ClientID: tenant,
		UserID:   caller.UserID,
		Action:   "professional_removed",
		Entity:   "professional",
		EntityID: id,
	})
	return nil
}
