package professional

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

func TestUpsertCreatesUserAndProfessional(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := repository.NewProfessionalGormRepository(db)
	uc := NewUpsertProfessional(repo, nil, logging.Discard(), false)
	owner := identity.Caller{UserID: f.Owner.ID, ClientID: f.Client.ID}
	ctx := context.Background()

	p, err := uc.Execute(ctx, UpsertInput{
		Caller: owner,
		User:   &NewUserInput{Name: "Marta", Email: "Marta@Example.com", Password: "secret1"},
		Services: []models.ServiceAssignment{
			{ServiceID: f.Haircut.ID, Price: 15, SlotCount: 3},
		},
		Schedule: []models.ScheduleEntry{
			{Weekday: models.Saturday, Start: "09:00", End: "13:00"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "marta@example.com", p.User.Email)
	assert.True(t, p.User.HasRole(models.RoleProfessional))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.User.PasswordHash), []byte("secret1")))

	list, err := NewListProfessionals(repo).Execute(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUpsertReplacesTermsWholesale(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := repository.NewProfessionalGormRepository(db)
	uc := NewUpsertProfessional(repo, nil, logging.Discard(), false)
	owner := identity.Caller{UserID: f.Owner.ID, ClientID: f.Client.ID}
	ctx := context.Background()

	p, err := uc.Execute(ctx, UpsertInput{
		Caller:   owner,
		UserID:   f.Professional.UserID,
		Services: []models.ServiceAssignment{{ServiceID: f.Color.ID, Price: 60, SlotCount: 4}},
		Schedule: []models.ScheduleEntry{{Weekday: models.Sunday, Start: "10:00", End: "12:00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, f.Professional.ID, p.ID)

	stored, err := repo.Get(ctx, f.Client.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Services, 1)
	assert.Equal(t, f.Color.ID, stored.Services[0].ServiceID)
	require.Len(t, stored.Schedule, 1)
	assert.Equal(t, models.Sunday, stored.Schedule[0].Weekday)
}

func TestUpsertValidation(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := repository.NewProfessionalGormRepository(db)
	uc := NewUpsertProfessional(repo, nil, logging.Discard(), false)
	owner := identity.Caller{UserID: f.Owner.ID, ClientID: f.Client.ID}
	ctx := context.Background()

	tests := []struct {
		name string
		in   UpsertInput
		code string
	}{
		{"no user", UpsertInput{Caller: owner}, "missing_user"},
		{"bad email", UpsertInput{Caller: owner, User: &NewUserInput{Name: "X", Email: "x", Password: "secret1"}}, "invalid_email"},
		{"short password", UpsertInput{Caller: owner, User: &NewUserInput{Name: "X", Email: "x@example.com", Password: "1"}}, "invalid_user"},
		{"unknown user", UpsertInput{Caller: owner, UserID: "00000000-0000-0000-0000-000000000009"}, "user_not_found"},
		{"bad schedule", UpsertInput{Caller: owner, UserID: f.Customer.ID, Schedule: []models.ScheduleEntry{{Weekday: models.Monday, Start: "09:05", End: "10:00"}}}, "unaligned_schedule_time"},
		{"bad slots", UpsertInput{Caller: owner, UserID: f.Customer.ID, Services: []models.ServiceAssignment{{ServiceID: f.Haircut.ID, SlotCount: 0}}}, "invalid_slot_count"},
		{"foreign service", UpsertInput{Caller: owner, UserID: f.Customer.ID, Services: []models.ServiceAssignment{{ServiceID: "elsewhere", SlotCount: 1}}}, "service_not_found"},
		{"other tenant", UpsertInput{Caller: owner, ClientID: "other", UserID: f.Customer.ID}, "cross_tenant_access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestRemoveProfessional(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := repository.NewProfessionalGormRepository(db)
	owner := identity.Caller{UserID: f.Owner.ID, ClientID: f.Client.ID}
	ctx := context.Background()

	uc := NewRemoveProfessional(repo, nil)
	require.NoError(t, uc.Execute(ctx, owner, "", f.Professional.ID))

	err := uc.Execute(ctx, owner, "", f.Professional.ID)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))

	list, err := NewListProfessionals(repo).Execute(ctx, owner, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}
