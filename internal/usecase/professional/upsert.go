package professional

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	apdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/professional"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

type NewUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpsertInput struct {
	Caller   identity.Caller
	ClientID string

	UserID string
	User   *NewUserInput

	Services []models.ServiceAssignment
	Schedule []models.ScheduleEntry
}

type UpsertProfessional struct {
	repo         domain.Repository
	audit        *audit.Dispatcher
	logger       *logging.Logger
	verifyDomain bool
}

func NewUpsertProfessional(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *logging.Logger,
	verifyDomain bool,
) *UpsertProfessional {
	if logger == nil {
		logger = logging.Default()
	}
	return &UpsertProfessional{
		repo:         repo,
		audit:        audit,
		logger:       logger,
		verifyDomain: verifyDomain,
	}
}

// Execute links or creates the user and stores the professional. An existing
// professional of the tenant gets its services and schedule replaced whole.
func (uc *UpsertProfessional) Execute(ctx context.Context, in UpsertInput) (*models.Professional, error) {
	clientID, err := in.Caller.Tenant(in.ClientID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSchedule(in.Schedule); err != nil {
		return nil, err
	}
	if err := domain.ValidateAssignments(in.Services); err != nil {
		return nil, err
	}
	if err := uc.assertCatalogue(ctx, clientID, in.Services); err != nil {
		return nil, err
	}

	user, err := uc.resolveUser(ctx, clientID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddUserRole(ctx, user, models.RoleProfessional); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Replace or create
	// --------------------------------------------------
	p, err := uc.repo.FindByUser(ctx, clientID, user.ID)
	switch {
	case err == nil:
		p.Services = in.Services
		p.Schedule = in.Schedule
		if err := uc.repo.ReplaceTerms(ctx, p); err != nil {
			return nil, err
		}
	case errors.Is(err, apdomain.ErrRecordNotFound):
		p = &models.Professional{
			ClientID: clientID,
			UserID:   user.ID,
			Services: in.Services,
			Schedule: in.Schedule,
			Active:   true,
		}
		if err := uc.repo.Create(ctx, p); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	p.User = *user

	uc.audit.Dispatch(audit.Event{
		ClientID: clientID,
		UserID:   in.Caller.UserID,
		Action:   "professional_upserted",
		Entity:   "professional",
		EntityID: p.ID,
	})
	uc.logger.Info("professional upserted", "professional_id", p.ID, "client_id", clientID)

	return p, nil
}

func (uc *UpsertProfessional) assertCatalogue(ctx context.Context, clientID string, as []models.ServiceAssignment) error {
	ids := make([]string, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ServiceID)
	}
	services, err := uc.repo.ListServices(ctx, clientID, ids)
	if err != nil {
		return err
	}
	if len(services) != len(ids) {
		return httperr.ErrNotFound("service_not_found")
	}
	return nil
}

func (uc *UpsertProfessional) resolveUser(ctx context.Context, clientID string, in UpsertInput) (*models.User, error) {
	if in.UserID != "" {
		u, err := uc.repo.GetUser(ctx, in.UserID)
		if errors.Is(err, apdomain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		if err != nil {
			return nil, err
		}
		if u.ClientID != nil && *u.ClientID != clientID {
			return nil, httperr.ErrForbidden("cross_tenant_access")
		}
		return u, nil
	}

	if in.User == nil {
		return nil, httperr.ErrValidation("missing_user")
	}

	email, ok := validators.NormalizeEmail(in.User.Email)
	if !ok || (uc.verifyDomain && !validators.IsEmailDomainValid(email)) {
		return nil, httperr.ErrValidation("invalid_email")
	}

	// an existing account with that email is linked instead of duplicated
	existing, err := uc.repo.FindUserByEmail(ctx, email)
	if err == nil {
		if existing.ClientID != nil && *existing.ClientID != clientID {
			return nil, httperr.ErrForbidden("cross_tenant_access")
		}
		return existing, nil
	}
	if !errors.Is(err, apdomain.ErrRecordNotFound) {
		return nil, err
	}

	if strings.TrimSpace(in.User.Name) == "" || len(in.User.Password) < 6 {
		return nil, httperr.ErrValidation("invalid_user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ClientID:     &clientID,
		Name:         strings.TrimSpace(in.User.Name),
		Email:        email,
		Phone:        in.User.Phone,
		PasswordHash: string(hash),
		Roles:        []string{models.RoleProfessional},
		Active:       true,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, apdomain.ErrDuplicateKey) {
			return nil, httperr.ErrConflict("duplicate_email")
		}
		return nil, err
	}
	return u, nil
}
