package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Notifier delivers change notices. Errors are reported to the caller, who
// logs them; a failed notice never fails the booking operation.
type Notifier interface {
	NotifyAppointmentChange(ctx context.Context, ap *models.Appointment, action Action) error
}
