package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskquest/internal/api"
	"taskquest/internal/config"
	"taskquest/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// GetDatabasePath returns the path to the SQLite database file
func GetDatabasePath() (string, error) {
	// Check for TQ_DB environment variable
	if dbPath := os.Getenv("TQ_DB"); dbPath != "" {
		return dbPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .tq directory if it doesn't exist
	tqDir := filepath.Join(homeDir, ".tq")
	if err := os.MkdirAll(tqDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create .tq directory: %w", err)
	}

	return filepath.Join(tqDir, "tq.db"), nil
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return NewAppWithConfig(apiInstance, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with explicit configuration
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// NewAppWithDefaultRepository creates a new CLI application instance with the
// default SQLite repository. This is the production wiring.
func NewAppWithDefaultRepository() (*App, error) {
	dbPath, err := GetDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return NewAppWithConfig(api.New(repo), cfg), nil
}
