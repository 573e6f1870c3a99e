package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "./data/trips.db", cfg.DBPath)
	assert.Equal(t, 100, cfg.BufferSize)
	assert.True(t, cfg.Headless)
	assert.Equal(t, time.Second, cfg.CycleDelay)
	assert.Equal(t, 3, cfg.MaxCycleFailures)
	assert.Empty(t, cfg.StatusPort, "diagnostic API is opt-in")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("BUFFER_SIZE", "7")
	t.Setenv("HEADLESS", "false")
	t.Setenv("CYCLE_DELAY", "1500ms")

	cfg := Load()

	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 7, cfg.BufferSize)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 1500*time.Millisecond, cfg.CycleDelay)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("BUFFER_SIZE", "lots")
	t.Setenv("GEOCODE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 100, cfg.BufferSize)
	assert.Equal(t, 10*time.Second, cfg.GeocodeTimeout)
}
