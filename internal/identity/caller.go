// Package identity carries the authenticated caller from the HTTP layer
// into use cases.
package identity

import (
	"slices"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Caller struct {
	UserID   string
	ClientID string
	Roles    []string
}

func (c Caller) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

func (c Caller) IsAdmin() bool {
	return c.HasRole(models.RoleAdmin)
}

// Authorize allows access to a tenant's resource. Admins cross tenants.
func (c Caller) Authorize(clientID string) error {
	if c.IsAdmin() || (c.ClientID != "" && c.ClientID == clientID) {
		return nil
	}
	return httperr.ErrForbidden("cross_tenant_access")
}

// Tenant picks the tenant a request acts on: the caller's own, or for an
// admin the one requested explicitly.
func (c Caller) Tenant(requested string) (string, error) {
	if requested == "" || requested == c.ClientID {
		if c.ClientID == "" {
			return "", httperr.ErrValidation("client_required")
		}
		return c.ClientID, nil
	}
	if !c.IsAdmin() {
		return "", httperr.ErrForbidden("cross_tenant_access")
	}
	return requested, nil
}
