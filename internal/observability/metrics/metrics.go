package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	appointmentsTotal  *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	codeConflictsTotal prometheus.Counter
	availabilityTime   prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		appointmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "appointments_total",
			Help:      "Appointment lifecycle operations",
		}, []string{"action", "result"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "notifications_total",
			Help:      "Notification deliveries by channel",
		}, []string{"channel", "status"}),
		codeConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "code_conflicts_total",
			Help:      "Booking code collisions on insert",
		}),
		availabilityTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "availability_seconds",
			Help:      "Latency of availability resolution",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.appointmentsTotal, m.notificationsTotal, m.codeConflictsTotal, m.availabilityTime)
	return m
}

func (m *BookingMetrics) ObserveAppointment(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.appointmentsTotal.WithLabelValues(action, result).Inc()
}

func (m *BookingMetrics) ObserveNotification(channel, status string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(channel, status).Inc()
}

func (m *BookingMetrics) ObserveCodeConflict() {
	if m == nil {
		return
	}
	m.codeConflictsTotal.Inc()
}

func (m *BookingMetrics) ObserveAvailability(seconds float64) {
	if m == nil {
		return
	}
	m.availabilityTime.Observe(seconds)
}
