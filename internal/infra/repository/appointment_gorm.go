package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND active = ?", id, true).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	clientID string,
	ids []string,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND id IN ?", clientID, ids).
		Find(&services).Error; err != nil {
		return nil, translate(err)
	}
	return services, nil
}

// --------------------------------------------------
// Code
// --------------------------------------------------

// LastAppointmentCode returns the code of the most recently created
// appointment, active or not, or "" when there is none.
func (r *AppointmentGormRepository) LastAppointmentCode(ctx context.Context) (string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Order("created_at DESC, code DESC").
		Limit(1).
		Pluck("code", &codes).Error; err != nil {
		return "", translate(err)
	}
	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error)
}

func (r *AppointmentGormRepository) GetActiveAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.withDisplay(ctx).
		Where("appointments.id = ? AND appointments.active = ?", id, true).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListActiveAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.withDisplay(ctx).Where("appointments.active = ?", true)

	if f.ClientID != "" {
		q = q.Where("appointments.client_id = ?", f.ClientID)
	}
	if f.ProfessionalID != "" {
		q = q.Where("appointments.professional_id = ?", f.ProfessionalID)
	}
	if f.UserID != "" {
		q = q.Where("appointments.user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("appointments.status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("appointments.start_date >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("appointments.start_date < ?", f.To.UTC())
	}

	var aps []models.Appointment
	if err := q.Order("appointments.start_date ASC").Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

// UpdateActiveAppointment writes the mutable fields. It never touches
// active, code or tenant.
func (r *AppointmentGormRepository) UpdateActiveAppointment(ctx context.Context, ap *models.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(ap).
		Where("active = ?", true).
		Omit(clause.Associations).
		Select(
			"professional_id", "user_id",
			"start_date", "end_date", "slot_start", "slot_end", "slots",
			"services", "status", "statuses", "place", "notes",
			"updated_at",
		).
		Updates(ap)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeactivateAppointment(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookingsForDay(
	ctx context.Context,
	professionalID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "slot_start", "slot_end", "slots", "start_date", "active").
		Where(
			"professional_id = ? AND active = ? AND start_date >= ? AND start_date < ?",
			professionalID, true, start.UTC(), end.UTC(),
		).
		Order("start_date ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *AppointmentGormRepository) ListDueReminders(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.withDisplay(ctx).
		Where("appointments.active = ? AND appointments.reminder_sent = ?", true, false).
		Where("appointments.status IN ?", []string{
			string(domain.StatusScheduled),
			string(domain.StatusConfirmed),
		}).
		Where("appointments.start_date >= ? AND appointments.start_date < ?", from.UTC(), to.UTC()).
		Order("appointments.start_date ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) MarkReminderSent(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error)
}

// withDisplay preloads what the denormalized view needs.
func (r *AppointmentGormRepository) withDisplay(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("User").
		Preload("Professional.User")
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
