package postgres

//nolint:revive
import (
	"cowork/config"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute

	paramSSLMode  = "sslmode"
	paramTimezone = "timezone"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Close releases both pools. The pools may be the same *sqlx.DB in tests.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// Endpoint is one side of the read/write split.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	Timezone string
}

// DSN renders the endpoint as a postgres URL. Extra parameters are appended,
// e.g. the migration table name used by golang-migrate.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}

	if e.SSLMode != "" {
		query.Set(paramSSLMode, e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set(paramTimezone, e.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect(ReadEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: connect(WriteEndpoint(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

func endpointOf(name, prefix string, node config.PostgresNode) Endpoint {
	return Endpoint{
		Name:     name,
		Host:     node.Host,
		Port:     node.Port,
		Username: node.Username,
		Password: node.Password,
		Database: prefix + node.Name,
		SSLMode:  node.SSLMode,
		Timezone: node.Timezone,
	}
}

func WriteEndpoint(config *config.Config) Endpoint {
	return endpointOf("write", config.DB.Postgres.Prefix, config.DB.Postgres.Write)
}

func ReadEndpoint(config *config.Config) Endpoint {
	return endpointOf("read", config.DB.Postgres.Prefix, config.DB.Postgres.Read)
}

// connect retries up to maxRetry times and aborts the process when the database never answers.
func connect(endpoint Endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().
		Str("name", endpoint.Name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Database).
		Logger()

	var err error

	for retry := range max(maxRetry, 1) {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(driverName, endpoint.DSN(nil))
		if err == nil {
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			logger.Info().Msg("Connected to database")

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Fatal().Err(fmt.Errorf("giving up after %d attempts: %w", max(maxRetry, 1), err)).Msg("Failed connecting to database")

	return nil
}
