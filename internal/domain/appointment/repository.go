package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ListFilter narrows List to a tenant plus optional criteria. Empty fields
// are ignored.
type ListFilter struct {
	ClientID       string
	ProfessionalID string
	UserID         string
	Status         string
	From           *time.Time
	To             *time.Time
}

type Repository interface {
	// -------- Lookups --------
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListServices(ctx context.Context, clientID string, ids []string) ([]models.Service, error)

	// -------- Code --------
	LastAppointmentCode(ctx context.Context) (string, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetActiveAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListActiveAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	UpdateActiveAppointment(ctx context.Context, ap *models.Appointment) error
	DeactivateAppointment(ctx context.Context, id string) error

	// -------- Availability --------
	ListBookingsForDay(ctx context.Context, professionalID string, start, end time.Time) ([]models.Appointment, error)

	// -------- Reminders --------
	ListDueReminders(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}
