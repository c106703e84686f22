package config_test

import (
	"cowork/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Booking.MinDurationMinutes)
	assert.Equal(t, 600, cfg.Booking.MaxDurationMinutes)
	assert.Equal(t, 15, cfg.Booking.CancelGraceMinutes)
	assert.Equal(t, "booking.events", cfg.Booking.EventTopic)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.Equal(t, "disable", cfg.DB.Postgres.Read.SSLMode)
	assert.InDelta(t, 1.0, cfg.External.Otel.SampleRatio, 0)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BOOKING_CANCEL_GRACE_MINUTES", "45")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "primary.internal")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Booking.CancelGraceMinutes)
	assert.Equal(t, "primary.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("BOOKING_CANCEL_GRACE_MINUTES", "soon")

	_, err := config.Load("does-not-exist.env")
	assert.Error(t, err)
}
