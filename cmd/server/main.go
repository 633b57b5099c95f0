package main

import (
	"log"
	"os"

	"resource-planner-backend/internal/api/routes"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database"
	"resource-planner-backend/internal/database/seed"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "resource-planner-backend/docs" // This is needed for swag
)

//	@title			Resource Planner Backend API
//	@version		1.0
//	@description	Backend API for the team resource-planning board: member and component records, staffing and knowledge-transfer evaluation, team size forecasts and budget rollups.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize record store
	db, err := database.Initialize(cfg.DatabaseDSN, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize record store:", err)
	}

	// Seed the default cost rules so the rollup works out of the box
	budgetRuleService := service.NewBudgetRuleService(repository.NewBudgetRuleRepository(db), validator.New())
	if err := budgetRuleService.EnsureDefaults(); err != nil {
		logrus.Fatal("Failed to seed budget rules:", err)
	}

	// Optionally load the demo dataset (the store is memory-resident, so a
	// fresh process starts empty otherwise)
	if cfg.SeedDemoData {
		if err := seed.Demo(db); err != nil {
			logrus.Fatal("Failed to seed demo data:", err)
		}
		logrus.Info("Demo dataset loaded")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
