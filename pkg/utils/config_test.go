package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BACKEND_URL", "http://backend.local/api/")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, time.UTC, config.App.Location)
	assert.Equal(t, []string{"*"}, config.App.CORSOrigins)
	assert.Equal(t, "http://backend.local/api", config.Backend.URL)
	assert.Equal(t, 10*time.Second, config.Backend.Timeout)
	assert.Equal(t, 10, config.Booking.SeatsPerRow)
	assert.Equal(t, 20*time.Minute, config.Booking.SelectionTTL)
	assert.Equal(t, 30*time.Second, config.Redis.CacheTTL)
	assert.Empty(t, config.Redis.Addr)
	assert.Equal(t, "booking.submitted", config.RabbitMQ.Queue)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_TIMEZONE", "Europe/Paris")
	t.Setenv("SEATS_PER_ROW", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", config.App.Location.String())
	assert.Equal(t, 12, config.Booking.SeatsPerRow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, config.App.CORSOrigins)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "APP_TIMEZONE")
	})

	t.Run("zero seats per row", func(t *testing.T) {
		t.Setenv("SEATS_PER_ROW", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "SEATS_PER_ROW")
	})
}
