package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "availability_resolutions_total",
			Help:      "Count of availability resolutions by outcome.",
		},
		[]string{"outcome"},
	)

	availabilitySlots = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "bookmarket",
			Name:      "availability_slots_emitted",
			Help:      "Distribution of slot counts per availability resolution.",
			Buckets:   []float64{0, 1, 5, 10, 20, 40, 80},
		},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "booking_decision_total",
			Help:      "Count of owner decisions over pending bookings.",
		},
		[]string{"decision"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled by customers.",
		},
	)
)

// Register registers all collectors with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			availabilityResolutions,
			availabilitySlots,
			bookingCreated,
			bookingDecision,
			bookingCancelled,
		)
	})
}

func AvailabilityResolved(outcome string, slots int) {
	availabilityResolutions.WithLabelValues(outcome).Inc()
	availabilitySlots.Observe(float64(slots))
}

func BookingCreated() {
	bookingCreated.Inc()
}

func BookingDecided(decision string) {
	bookingDecision.WithLabelValues(decision).Inc()
}

func BookingCancelled() {
	bookingCancelled.Inc()
}
