package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/professional"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) ListServices(ctx context.Context, clientID string, ids []string) ([]models.Service, error) {
	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND id IN ? AND active = ?", clientID, ids, true).
		Find(&services).Error; err != nil {
		return nil, translate(err)
	}
	return services, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ProfessionalGormRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *ProfessionalGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *ProfessionalGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *ProfessionalGormRepository) AddUserRole(ctx context.Context, u *models.User, role string) error {
	if u.HasRole(role) {
		return nil
	}
	u.Roles = append(u.Roles, role)
	return translate(r.db.WithContext(ctx).
		Model(u).
		Update("roles", u.Roles).Error)
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

// FindByUser returns the tenant's professional for a user, removed ones
// included, so an upsert can bring it back.
func (r *ProfessionalGormRepository) FindByUser(ctx context.Context, clientID, userID string) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("client_id = ? AND user_id = ?", clientID, userID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) Get(ctx context.Context, clientID, id string) (*models.Professional, error) {
	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("client_id = ? AND id = ? AND active = ?", clientID, id, true).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) Create(ctx context.Context, p *models.Professional) error {
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(p).Error)
}

// ReplaceTerms overwrites services and schedule wholesale and reactivates.
func (r *ProfessionalGormRepository) ReplaceTerms(ctx context.Context, p *models.Professional) error {
	p.Active = true
	return translate(r.db.WithContext(ctx).
		Model(p).
		Omit(clause.Associations).
		Select("services", "schedule", "active", "updated_at").
		Updates(p).Error)
}

func (r *ProfessionalGormRepository) List(ctx context.Context, clientID string) ([]models.Professional, error) {
	var ps []models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("client_id = ? AND active = ?", clientID, true).
		Order("created_at ASC").
		Find(&ps).Error; err != nil {
		return nil, translate(err)
	}
	return ps, nil
}

func (r *ProfessionalGormRepository) Deactivate(ctx context.Context, clientID, id string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("client_id = ? AND id = ? AND active = ?", clientID, id, true).
		Update("active", false)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

var _ professional.Repository = (*ProfessionalGormRepository)(nil)
