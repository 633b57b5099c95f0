package database

import (
	"fmt"
	"strings"

	"resource-planner-backend/internal/database/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel    logger.LogLevel
	AutoMigrate bool
}

// Initialize opens the in-process sqlite record store and creates the schema
// from the GORM models. With the default in-memory DSN the store lives exactly
// as long as the process: no data survives a restart.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}

	// Open DB
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// An in-memory sqlite database exists per connection unless shared-cache
	// is used; a single pooled connection keeps every session on one store.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	// AutoMigrate all models
	if opts.AutoMigrate {
		all := []interface{}{
			&models.TeamMember{},
			&models.PlanningComponent{},
			&models.BudgetRule{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
