package http

import (
	"cowork/config"
	"cowork/infras/metrics"
	"cowork/infras/otel/mocks"
	"cowork/internal/handlers/booking"
	"cowork/internal/handlers/credit"
	"cowork/internal/handlers/room"
	"cowork/transport/http/router"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type passthrough struct{}

func (passthrough) Tracing(next http.Handler) http.Handler { return next }
func (passthrough) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}
func (passthrough) Auth(next http.Handler) http.Handler   { return next }
func (passthrough) APIKey(next http.Handler) http.Handler { return next }
func (passthrough) RBAC(next http.Handler) http.Handler   { return next }

func newServer() *HTTP {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "cowork_http_test"

	r := router.New(router.DomainHandlers{
		Room:    room.Handler{},
		Booking: booking.Handler{},
		Credit:  credit.Handler{},
	}, metrics.New(cfg))

	return New(cfg, r, passthrough{}, passthrough{}, mocks.NewOtel(), nil)
}

func TestHTTP_HealthFollowsState(t *testing.T) {
	server := newServer()

	tests := []struct {
		name     string
		state    ServerState
		wantCode int
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.setup()
			server.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHTTP_MetricsExposed(t *testing.T) {
	server := newServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server := newServer()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type recordingCloser struct {
	name  string
	order *[]string
	err   error
}

func (c recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)

	return c.err
}

func TestHTTP_ShutdownReleasesClosersInOrder(t *testing.T) {
	var order []string

	server := newServer()
	server.closers = Closers{
		recordingCloser{name: "events", order: &order},
		recordingCloser{name: "cache", order: &order, err: errors.New("already closed")},
		recordingCloser{name: "database", order: &order},
	}

	server.shutdown(0)

	assert.Equal(t, []string{"events", "cache", "database"}, order)
}
