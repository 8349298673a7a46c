package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

type fakeEmail struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
}

func (f *fakeEmail) Send(_ context.Context, msg EmailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSMS) SendSMS(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to+"|"+body)
	return f.err
}

type fakeStore struct {
	aps    map[string]*models.Appointment
	marked []string
}

func (f *fakeStore) GetActiveAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.aps[id]
	if !ok || !ap.Active {
		return nil, domain.ErrRecordNotFound
	}
	return ap, nil
}

func (f *fakeStore) MarkReminderSent(_ context.Context, id string) error {
	f.marked = append(f.marked, id)
	return nil
}

func sampleAppointment() *models.Appointment {
	return &models.Appointment{
		ID:       "ap-1",
		Code:     "000123",
		ClientID: "c1",
		Client:   models.Client{ID: "c1", Name: "Salon Uno", NotifySMS: true, NotifyEmail: true},
		User:     &models.User{Name: "Ana", Email: "ana@example.com", Phone: "+581111111"},
		Professional: &models.Professional{
			User: models.User{Name: "Luis"},
		},
		StartDate: time.Date(2030, 3, 4, 9, 0, 0, 0, time.UTC),
		Status:    "scheduled",
		Active:    true,
	}
}

func TestNotifyAppointmentChangeUsesEnabledChannels(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	svc := NewService(email, sms, &fakeStore{}, nil, logging.Discard())

	ap := sampleAppointment()
	require.NoError(t, svc.NotifyAppointmentChange(context.Background(), ap, domain.ActionCreated))

	require.Len(t, email.sent, 1)
	assert.Equal(t, "ana@example.com", email.sent[0].To)
	assert.Contains(t, email.sent[0].Subject, "000123")
	assert.Contains(t, email.sent[0].Body, "Luis")
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "+581111111|")

	ap.Client.NotifySMS = false
	require.NoError(t, svc.NotifyAppointmentChange(context.Background(), ap, domain.ActionDeleted))
	assert.Len(t, sms.sent, 1)
	require.Len(t, email.sent, 2)
	assert.Contains(t, email.sent[1].Subject, "canceled")
}

func TestNotifyAppointmentChangeJoinsErrors(t *testing.T) {
	email := &fakeEmail{err: errors.New("smtp down")}
	sms := &fakeSMS{err: errors.New("twilio down")}
	svc := NewService(email, sms, &fakeStore{}, nil, logging.Discard())

	err := svc.NotifyAppointmentChange(context.Background(), sampleAppointment(), domain.ActionUpdated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.Contains(t, err.Error(), "twilio down")
}

func TestNotifyWithoutCustomer(t *testing.T) {
	email := &fakeEmail{}
	svc := NewService(email, nil, &fakeStore{}, nil, logging.Discard())

	ap := sampleAppointment()
	ap.User = nil
	assert.NoError(t, svc.NotifyAppointmentChange(context.Background(), ap, domain.ActionCreated))
	assert.Empty(t, email.sent)
}

func TestSendReminder(t *testing.T) {
	ap := sampleAppointment()
	store := &fakeStore{aps: map[string]*models.Appointment{ap.ID: ap}}
	email := &fakeEmail{}
	svc := NewService(email, nil, store, nil, logging.Discard())
	ctx := context.Background()

	owner := identity.Caller{ClientID: "c1"}
	require.NoError(t, svc.SendReminder(ctx, owner, ap.ID))
	assert.Equal(t, []string{ap.ID}, store.marked)
	assert.True(t, ap.ReminderSent)
	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].Subject, "reminder")

	err := svc.SendReminder(ctx, identity.Caller{ClientID: "c2"}, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "cross_tenant_access"))

	err = svc.SendReminder(ctx, owner, "missing")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	ap.Active = false
	err = svc.ResendConfirmation(ctx, owner, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestResendConfirmationAsAdmin(t *testing.T) {
	ap := sampleAppointment()
	store := &fakeStore{aps: map[string]*models.Appointment{ap.ID: ap}}
	sms := &fakeSMS{}
	svc := NewService(nil, sms, store, nil, logging.Discard())

	admin := identity.Caller{Roles: []string{models.RoleAdmin}}
	require.NoError(t, svc.ResendConfirmation(context.Background(), admin, ap.ID))
	assert.Len(t, sms.sent, 1)
	assert.Empty(t, store.marked)
}

func TestRemindMarksSentWhenOneChannelDelivers(t *testing.T) {
	ap := sampleAppointment()
	store := &fakeStore{aps: map[string]*models.Appointment{ap.ID: ap}}
	email := &fakeEmail{err: errors.New("smtp down")}
	sms := &fakeSMS{}
	svc := NewService(email, sms, store, nil, logging.Discard())
	ctx := context.Background()

	require.NoError(t, svc.Remind(ctx, ap))
	require.NoError(t, svc.Remind(ctx, ap))

	assert.Len(t, sms.sent, 1)
	assert.Len(t, email.sent, 1)
	assert.Equal(t, []string{ap.ID}, store.marked)
	assert.True(t, ap.ReminderSent)
}

func TestRemindRetriesWhenEveryChannelFails(t *testing.T) {
	ap := sampleAppointment()
	store := &fakeStore{aps: map[string]*models.Appointment{ap.ID: ap}}
	email := &fakeEmail{err: errors.New("smtp down")}
	sms := &fakeSMS{err: errors.New("twilio down")}
	svc := NewService(email, sms, store, nil, logging.Discard())

	err := svc.Remind(context.Background(), ap)
	require.Error(t, err)
	assert.Empty(t, store.marked)
	assert.False(t, ap.ReminderSent)
}
