package metrics_test

import (
	"cowork/config"
	"cowork/infras/metrics"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Handler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "cowork"

	m := metrics.New(cfg)
	m.BookingCreated("personal", 2)
	m.BookingCreated("personal", 3)
	m.BookingCancelled("personal", 2)
	m.BookingRejected("room_unavailable")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `cowork_booking_created_total{billing_target="personal"} 2`)
	assert.Contains(t, string(body), `cowork_booking_credits_charged_total{billing_target="personal"} 5`)
	assert.Contains(t, string(body), `cowork_booking_credits_refunded_total{billing_target="personal"} 2`)
	assert.Contains(t, string(body), `cowork_booking_rejected_total{kind="room_unavailable"} 1`)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "cowork"

	assert.NotPanics(t, func() {
		metrics.New(cfg)
		metrics.New(cfg)
	})
}
