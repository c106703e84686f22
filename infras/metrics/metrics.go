package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"cowork/config"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	subsystemBooking = "booking"

	labelBillingTarget = "billing_target"
	labelKind          = "kind"
)

// Metrics records booking engine outcomes. Credit amounts are observed as float64
// only for reporting; ledger arithmetic never goes through here.
type Metrics interface {
	BookingCreated(billingTarget string, credits float64)
	BookingCancelled(billingTarget string, refunded float64)
	BookingRejected(kind string)
	Handler() http.Handler
}

type prometheusMetrics struct {
	registry *prometheus.Registry

	created   *prometheus.CounterVec
	cancelled *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	charged   *prometheus.CounterVec
	refunded  *prometheus.CounterVec
}

func New(cfg *config.Config) Metrics {
	namespace := cfg.Metrics.Namespace

	m := &prometheusMetrics{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemBooking,
			Name:      "created_total",
			Help:      "Bookings confirmed, by billing target.",
		}, []string{labelBillingTarget}),
		cancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemBooking,
			Name:      "cancelled_total",
			Help:      "Bookings cancelled, by billing target.",
		}, []string{labelBillingTarget}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemBooking,
			Name:      "rejected_total",
			Help:      "Booking create or cancel attempts rejected, by error kind.",
		}, []string{labelKind}),
		charged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemBooking,
			Name:      "credits_charged_total",
			Help:      "Credits charged at booking creation.",
		}, []string{labelBillingTarget}),
		refunded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemBooking,
			Name:      "credits_refunded_total",
			Help:      "Credits refunded on cancellation.",
		}, []string{labelBillingTarget}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.created,
		m.cancelled,
		m.rejected,
		m.charged,
		m.refunded,
	)

	return m
}

func (m *prometheusMetrics) BookingCreated(billingTarget string, credits float64) {
	m.created.WithLabelValues(billingTarget).Inc()
	m.charged.WithLabelValues(billingTarget).Add(credits)
}

func (m *prometheusMetrics) BookingCancelled(billingTarget string, refunded float64) {
	m.cancelled.WithLabelValues(billingTarget).Inc()
	m.refunded.WithLabelValues(billingTarget).Add(refunded)
}

func (m *prometheusMetrics) BookingRejected(kind string) {
	m.rejected.WithLabelValues(kind).Inc()
}

func (m *prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
