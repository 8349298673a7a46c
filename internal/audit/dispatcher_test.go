package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, logging.Discard())

	d.Dispatch(Event{Action: "appointment_created"})
	d.Dispatch(Event{Action: "appointment_canceled"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
	assert.Equal(t, "appointment_canceled", sink.events[1].Action)
}

func TestDispatcherSwallowsSinkErrors(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(sink, logging.Discard())

	d.Dispatch(Event{Action: "x"})
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 1)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, logging.Discard())

	d.Dispatch(Event{Action: "appointment_created"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "appointment_canceled"})
	})
	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestLoggerWritesRow(t *testing.T) {
	db := testutil.NewDB(t)
	l := New(db)

	err := l.Log(context.Background(), Event{
		ClientID: "c1",
		UserID:   "u1",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: "a1",
		Metadata: map[string]string{"code": "000001"},
	})
	require.NoError(t, err)

	var row models.AuditLog
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "c1", row.ClientID)
	require.NotNil(t, row.EntityID)
	assert.Equal(t, "a1", *row.EntityID)
	assert.JSONEq(t, `{"code":"000001"}`, row.Metadata)
}
