package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tq.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 40, cfg.Chart.Width)
	assert.Equal(t, 0.02, cfg.Chart.MinBarFraction)
	assert.Equal(t, 2, cfg.Recurrence.HorizonYears)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)

	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/tmp/tq-test"
	cfg.Database.Filename = "tasks.db"

	assert.Equal(t, filepath.Join("/tmp/tq-test", "tasks.db"), cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TQ_DB_DIR", "/var/lib/tq")
	t.Setenv("TQ_DB_FILENAME", "custom.db")
	t.Setenv("TQ_DB_QUERY_TIMEOUT", "30s")
	t.Setenv("TQ_CHART_WIDTH", "60")
	t.Setenv("TQ_CHART_MIN_BAR_FRACTION", "0.05")
	t.Setenv("TQ_RECURRENCE_HORIZON_YEARS", "3")
	t.Setenv("TQ_APP_TIMEOUT", "2m")
	t.Setenv("TQ_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/var/lib/tq", cfg.Database.Dir)
	assert.Equal(t, "custom.db", cfg.Database.Filename)
	assert.Equal(t, 30*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 60, cfg.Chart.Width)
	assert.Equal(t, 0.05, cfg.Chart.MinBarFraction)
	assert.Equal(t, 3, cfg.Recurrence.HorizonYears)
	assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TQ_DB_QUERY_TIMEOUT", "soon")
	t.Setenv("TQ_CHART_WIDTH", "wide")
	t.Setenv("TQ_APP_VERBOSE", "yes please")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	// Unparseable values fall back to the defaults
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 40, cfg.Chart.Width)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "should reject an empty database dir", mutate: func(c *Config) { c.Database.Dir = "" }},
		{name: "should reject an empty database filename", mutate: func(c *Config) { c.Database.Filename = "" }},
		{name: "should reject a non-positive query timeout", mutate: func(c *Config) { c.Database.QueryTimeout = 0 }},
		{name: "should reject a non-positive write timeout", mutate: func(c *Config) { c.Database.WriteTimeout = -time.Second }},
		{name: "should reject a chart width below 10", mutate: func(c *Config) { c.Chart.Width = 9 }},
		{name: "should reject a negative bar fraction", mutate: func(c *Config) { c.Chart.MinBarFraction = -0.1 }},
		{name: "should reject a bar fraction above one", mutate: func(c *Config) { c.Chart.MinBarFraction = 1.5 }},
		{name: "should reject a zero recurrence horizon", mutate: func(c *Config) { c.Recurrence.HorizonYears = 0 }},
		{name: "should reject a non-positive app timeout", mutate: func(c *Config) { c.Application.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("TQ_CHART_WIDTH", "60")

	width := 80
	verbose := true
	overrides := &ConfigOverrides{
		ChartWidth: &width,
		Verbose:    &verbose,
	}

	cfg, err := NewLoader().LoadWithOverrides(overrides)

	require.NoError(t, err)
	// Flags win over environment variables
	assert.Equal(t, 80, cfg.Chart.Width)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_LoadWithOverrides_Revalidates(t *testing.T) {
	width := 5
	overrides := &ConfigOverrides{ChartWidth: &width}

	_, err := NewLoader().LoadWithOverrides(overrides)

	assert.Error(t, err)
}

func TestLoader_LoadWithOverrides_NilOverrides(t *testing.T) {
	cfg, err := NewLoader().LoadWithOverrides(nil)

	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
