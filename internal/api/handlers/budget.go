package handlers

import (
	"net/http"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for cost rules and cost projections
type BudgetHandler struct {
	budgetRuleService *service.BudgetRuleService
	budgetService     *service.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRuleService *service.BudgetRuleService, budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetRuleService: budgetRuleService,
		budgetService:     budgetService,
	}
}

// ListBudgetRules retrieves all cost rules
// @Summary List budget rules
// @Description Get the per-employee-type unit costs used by the rollup and the cost forecast
// @Tags budget
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved budget rules"
// @Router /budget-rules [get]
func (h *BudgetHandler) ListBudgetRules(c *gin.Context) {
	rules, err := h.budgetRuleService.ListRules()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rules": rules,
		"total": len(rules),
	})
}

// UpsertBudgetRule creates or replaces the cost rule for one employee type
// @Summary Set the budget rule for an employee type
// @Description Create or replace the monthly cost and yearly budget for one employee type
// @Tags budget
// @Accept json
// @Produce json
// @Param employee_type path string true "Employee type (Internal, LeadCost, External)"
// @Param rule body service.BudgetRuleRequest true "Unit costs"
// @Success 200 {object} service.BudgetRuleResponse "Successfully stored budget rule"
// @Failure 400 {object} map[string]interface{} "Invalid employee type or costs"
// @Router /budget-rules/{employee_type} [put]
func (h *BudgetHandler) UpsertBudgetRule(c *gin.Context) {
	var req service.BudgetRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.budgetRuleService.UpsertRule(c.Param("employee_type"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// GetBudgetRollup totals the cost of the current team
// @Summary Budget rollup
// @Description Multiply per-type unit costs by current headcount across the whole member list. Employee types without a rule contribute zero.
// @Tags budget
// @Accept json
// @Produce json
// @Success 200 {object} service.BudgetRollup "Successfully computed rollup"
// @Router /budget/rollup [get]
func (h *BudgetHandler) GetBudgetRollup(c *gin.Context) {
	rollup, err := h.budgetService.Rollup()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rollup)
}

// GetCostForecast projects cost per period over a date range
// @Summary Cost forecast
// @Description Project per-period headcount and cost by employee type over a date range
// @Tags budget
// @Accept json
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param granularity query string false "Bucket size: monthly, quarterly or yearly" default(monthly)
// @Success 200 {object} service.CostForecast "Successfully computed cost forecast"
// @Failure 400 {object} map[string]interface{} "Invalid range or granularity"
// @Router /budget/forecast [get]
func (h *BudgetHandler) GetCostForecast(c *gin.Context) {
	start, end, granularity, err := parseForecastParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	forecast, err := h.budgetService.Forecast(start, end, granularity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
