package routes

import (
	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/api/middleware"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	memberRepo := repository.NewTeamMemberRepository(db)
	componentRepo := repository.NewPlanningComponentRepository(db)
	budgetRepo := repository.NewBudgetRuleRepository(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, validator)
	componentService := service.NewComponentService(componentRepo, memberRepo, validator, cfg.DefaultTransferWindowMonths)
	budgetRuleService := service.NewBudgetRuleService(budgetRepo, validator)
	budgetService := service.NewBudgetService(memberRepo, budgetRepo)
	staffingService := service.NewStaffingService(memberRepo, componentRepo, models.ClassificationMode(cfg.ClassificationMode), log)
	forecastService := service.NewForecastService(memberRepo)
	dashboardService := service.NewDashboardService(memberRepo, cfg.CriticalWindowDays)
	exportService := service.NewExportService(memberRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	componentHandler := handlers.NewComponentHandler(componentService)
	budgetHandler := handlers.NewBudgetHandler(budgetRuleService, budgetService)
	staffingHandler := handlers.NewStaffingHandler(staffingService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Team member routes
		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.DELETE("", memberHandler.DeleteAllMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Planning component routes
		components := v1.Group("/components")
		{
			components.POST("", componentHandler.CreateComponent)
			components.GET("", componentHandler.ListComponents)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.GET("/:id/members", componentHandler.GetComponentMembers)
		}

		// Budget rule routes
		budgetRules := v1.Group("/budget-rules")
		{
			budgetRules.GET("", budgetHandler.ListBudgetRules)
			budgetRules.PUT("/:employee_type", budgetHandler.UpsertBudgetRule)
		}

		// Evaluation routes
		v1.GET("/staffing/report", staffingHandler.GetStaffingReport)
		v1.GET("/forecast", forecastHandler.GetForecast)
		v1.GET("/budget/rollup", budgetHandler.GetBudgetRollup)
		v1.GET("/budget/forecast", budgetHandler.GetCostForecast)

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/metrics", dashboardHandler.GetMetrics)
			dashboard.GET("/critical", dashboardHandler.GetCriticalExits)
			dashboard.GET("/birthdays", dashboardHandler.GetBirthdays)
		}

		// Export routes
		v1.GET("/export/members", exportHandler.ExportMembers)
	}

	return router
}
