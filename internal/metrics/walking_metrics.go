// Package metrics defines the Prometheus metrics of the walking service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WalkingMetrics counts writes and times the active-booking query.
type WalkingMetrics struct {
	ownersCreated     prometheus.Counter
	dogsCreated       prometheus.Counter
	bookingsCreated   prometheus.Counter
	bookingsCancelled prometheus.Counter
	activeBookings    prometheus.Gauge
	activeQuery       prometheus.Histogram
}

// NewWalkingMetrics registers the metrics on registerer, falling back to the
// default registerer when nil.
func NewWalkingMetrics(registerer prometheus.Registerer) *WalkingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &WalkingMetrics{
		ownersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "walking_owners_created_total",
			Help: "Total number of owners created",
		}),
		dogsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "walking_dogs_created_total",
			Help: "Total number of dogs registered",
		}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "walking_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		bookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "walking_bookings_cancelled_total",
			Help: "Total number of bookings moved to cancelled",
		}),
		activeBookings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "walking_active_bookings",
			Help: "Number of active bookings returned by the last query",
		}),
		activeQuery: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "walking_active_bookings_query_duration_seconds",
			Help:    "Duration of the active-booking join in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}),
	}

	registerer.MustRegister(
		m.ownersCreated,
		m.dogsCreated,
		m.bookingsCreated,
		m.bookingsCancelled,
		m.activeBookings,
		m.activeQuery,
	)
	return m
}

// OwnerCreated records a new owner.
func (m *WalkingMetrics) OwnerCreated() { m.ownersCreated.Inc() }

// DogCreated records a new dog.
func (m *WalkingMetrics) DogCreated() { m.dogsCreated.Inc() }

// BookingCreated records a new booking.
func (m *WalkingMetrics) BookingCreated() { m.bookingsCreated.Inc() }

// BookingCancelled records a booking transitioning to cancelled.
func (m *WalkingMetrics) BookingCancelled() { m.bookingsCancelled.Inc() }

// ActiveBookingsQueried records the size and duration of an active-booking query.
func (m *WalkingMetrics) ActiveBookingsQueried(count int, took time.Duration) {
	m.activeBookings.Set(float64(count))
	m.activeQuery.Observe(took.Seconds())
}
