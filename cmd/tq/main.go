package main

import (
	"fmt"
	"os"

	"taskquest/internal/cli"
	"taskquest/internal/config"
)

func main() {
	// Load configuration (defaults + environment)
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository based on environment
	factory := NewRepositoryFactory(getEnvironment())
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	root := cli.NewRootCommand(repo, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
