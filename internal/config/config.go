package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Record store configuration. The dataset is memory-resident by design:
	// the default DSN opens an in-process sqlite database that vanishes on
	// restart. Export is the only way data leaves the process.
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// ClassificationMode chooses between manually maintained priority /
	// knowledge-transfer fields ("manual") and the variant that recomputes
	// both from tenure on every evaluation pass, overwriting any manual
	// edits ("auto").
	ClassificationMode string `mapstructure:"CLASSIFICATION_MODE"`

	// Planning defaults
	CriticalWindowDays          int  `mapstructure:"CRITICAL_WINDOW_DAYS"`
	DefaultTransferWindowMonths int  `mapstructure:"DEFAULT_TRANSFER_WINDOW_MONTHS"`
	SeedDemoData                bool `mapstructure:"SEED_DEMO_DATA"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Shared-cache DSN so every pooled connection sees the same in-memory database
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Planning defaults
	viper.SetDefault("CLASSIFICATION_MODE", "manual")
	viper.SetDefault("CRITICAL_WINDOW_DAYS", 180)
	viper.SetDefault("DEFAULT_TRANSFER_WINDOW_MONTHS", 6)
	viper.SetDefault("SEED_DEMO_DATA", false)
}

func validate(config *Config) error {
	if config.DatabaseDSN == "" {
		return fmt.Errorf("database DSN is required")
	}

	if config.ClassificationMode != "manual" && config.ClassificationMode != "auto" {
		return fmt.Errorf("CLASSIFICATION_MODE must be 'manual' or 'auto', got %q", config.ClassificationMode)
	}

	if config.CriticalWindowDays <= 0 {
		return fmt.Errorf("CRITICAL_WINDOW_DAYS must be positive")
	}

	if config.DefaultTransferWindowMonths <= 0 {
		return fmt.Errorf("DEFAULT_TRANSFER_WINDOW_MONTHS must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
