package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskquest application
type Config struct {
	Database    DatabaseConfig
	Chart       ChartConfig
	Recurrence  RecurrenceConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `env:"TQ_DB_DIR"`
	Filename     string        `env:"TQ_DB_FILENAME"`
	QueryTimeout time.Duration `env:"TQ_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"TQ_DB_WRITE_TIMEOUT"`
}

// ChartConfig holds weekly chart rendering configuration
type ChartConfig struct {
	Width          int     `env:"TQ_CHART_WIDTH"`
	MinBarFraction float64 `env:"TQ_CHART_MIN_BAR_FRACTION"`
}

// RecurrenceConfig holds recurrence validation configuration
type RecurrenceConfig struct {
	HorizonYears int `env:"TQ_RECURRENCE_HORIZON_YEARS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TQ_APP_TIMEOUT"`
	Verbose bool          `env:"TQ_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tq")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "tq.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Chart: ChartConfig{
			Width:          40,
			MinBarFraction: 0.02,
		},
		Recurrence: RecurrenceConfig{
			HorizonYears: 2,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TQ_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TQ_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TQ_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TQ_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Chart configuration
	if width := os.Getenv("TQ_CHART_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Chart.Width = w
		}
	}
	if fraction := os.Getenv("TQ_CHART_MIN_BAR_FRACTION"); fraction != "" {
		if f, err := strconv.ParseFloat(fraction, 64); err == nil {
			c.Chart.MinBarFraction = f
		}
	}

	// Recurrence configuration
	if years := os.Getenv("TQ_RECURRENCE_HORIZON_YEARS"); years != "" {
		if y, err := strconv.Atoi(years); err == nil {
			c.Recurrence.HorizonYears = y
		}
	}

	// Application configuration
	if timeout := os.Getenv("TQ_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TQ_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Chart.Width < 10 {
		return fmt.Errorf("chart width must be at least 10")
	}
	if c.Chart.MinBarFraction < 0 || c.Chart.MinBarFraction > 1 {
		return fmt.Errorf("chart minimum bar fraction must be within [0, 1]")
	}
	if c.Recurrence.HorizonYears < 1 {
		return fmt.Errorf("recurrence horizon must be at least one year")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}
