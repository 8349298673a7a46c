package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveAppointment("create", nil)
	m.ObserveAppointment("create", nil)
	m.ObserveAppointment("create", errors.New("boom"))
	m.ObserveNotification("sms", "sent")
	m.ObserveCodeConflict()
	m.ObserveAvailability(0.002)

	assert.Equal(t, 2.0, counterValue(t, reg, "salon_booking_appointments_total", map[string]string{"action": "create", "result": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "salon_booking_appointments_total", map[string]string{"action": "create", "result": "error"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "salon_booking_code_conflicts_total", nil))
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveAppointment("create", nil)
	m.ObserveNotification("email", "failed")
	m.ObserveCodeConflict()
	m.ObserveAvailability(0.1)
}
