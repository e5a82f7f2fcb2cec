package main

import (
	"fmt"
	"os"

	"taskquest/internal/cli"
	"taskquest/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// Local database file in the working directory
		repo, err := sqlite.New("tq.db")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development database: %w", err)
		}
		return repo, nil
	case Testing:
		// In-memory database
		repo, err := sqlite.New(":memory:")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize testing database: %w", err)
		}
		return repo, nil
	default:
		dbPath, err := cli.GetDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		repo, err := sqlite.New(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize production database: %w", err)
		}
		return repo, nil
	}
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TQ_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}
