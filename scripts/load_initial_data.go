package main

import (
	"flag"
	"log"

	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database"
	"resource-planner-backend/internal/database/seed"
)

// Loads a yaml seed file into the record store. Because the default store is
// memory-resident this is only useful against a file-backed DSN, e.g.
//
//	DATABASE_DSN=file:planner.db go run scripts/load_initial_data.go -file data/initial_data.yaml
func main() {
	path := flag.String("file", "data/initial_data.yaml", "path to the seed yaml file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseDSN, nil)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}

	if err := seed.FromFile(db, *path); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Printf("Seed data from %s loaded", *path)
}
