package professional

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	ListServices(ctx context.Context, clientID string, ids []string) ([]models.Service, error)

	GetUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	AddUserRole(ctx context.Context, u *models.User, role string) error

	FindByUser(ctx context.Context, clientID, userID string) (*models.Professional, error)
	Get(ctx context.Context, clientID, id string) (*models.Professional, error)
	Create(ctx context.Context, p *models.Professional) error
	ReplaceTerms(ctx context.Context, p *models.Professional) error
	List(ctx context.Context, clientID string) ([]models.Professional, error)
	Deactivate(ctx context.Context, clientID, id string) error
}
