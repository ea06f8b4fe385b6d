package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "verbose"}.LogLevel())
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := BookingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = BookingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "courtbooker", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=courtbooker sslmode=disable", p.DSN())
}
