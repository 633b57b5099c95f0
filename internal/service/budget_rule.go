package service

import (
	"fmt"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Default per-type unit costs applied when the rule table is empty
var defaultBudgetRules = []models.BudgetRule{
	{EmployeeType: models.EmployeeTypeInternal, MonthlyCost: 1500, YearlyBudget: 18000},
	{EmployeeType: models.EmployeeTypeLeadCost, MonthlyCost: 5000, YearlyBudget: 60000},
	{EmployeeType: models.EmployeeTypeExternal, MonthlyCost: 7000, YearlyBudget: 84000},
}

// BudgetRuleService manages the per-employee-type cost rules
type BudgetRuleService struct {
	repo      repository.BudgetRuleRepositoryInterface
	validator *validator.Validate
}

// NewBudgetRuleService creates a new budget rule service
func NewBudgetRuleService(repo repository.BudgetRuleRepositoryInterface, validator *validator.Validate) *BudgetRuleService {
	return &BudgetRuleService{
		repo:      repo,
		validator: validator,
	}
}

// BudgetRuleRequest carries the unit costs for one employee type
type BudgetRuleRequest struct {
	MonthlyCost  *int `json:"monthly_cost" validate:"required,min=0"`
	YearlyBudget *int `json:"yearly_budget" validate:"required,min=0"`
}

// BudgetRuleResponse is one cost rule as returned to clients
type BudgetRuleResponse struct {
	EmployeeType string `json:"employee_type"`
	MonthlyCost  int    `json:"monthly_cost"`
	YearlyBudget int    `json:"yearly_budget"`
}

// EnsureDefaults seeds the standard cost rules for any employee type that has
// none yet. Existing rules are left untouched.
func (s *BudgetRuleService) EnsureDefaults() error {
	for _, def := range defaultBudgetRules {
		if _, err := s.repo.GetByEmployeeType(def.EmployeeType); err == nil {
			continue
		}
		rule := def
		if err := s.repo.Upsert(&rule); err != nil {
			return fmt.Errorf("failed to seed budget rule for %s: %w", def.EmployeeType, err)
		}
	}
	return nil
}

// ListRules retrieves all cost rules
func (s *BudgetRuleService) ListRules() ([]BudgetRuleResponse, error) {
	rules, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list budget rules: %w", err)
	}

	responses := make([]BudgetRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, BudgetRuleResponse{
			EmployeeType: string(rule.EmployeeType),
			MonthlyCost:  rule.MonthlyCost,
			YearlyBudget: rule.YearlyBudget,
		})
	}
	return responses, nil
}

// UpsertRule creates or replaces the cost rule for one employee type
func (s *BudgetRuleService) UpsertRule(employeeType string, req *BudgetRuleRequest) (*BudgetRuleResponse, error) {
	if !models.EmployeeType(employeeType).IsValid() {
		return nil, apperrors.NewValidationError("employee_type", fmt.Sprintf("unknown employee type %q", employeeType))
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule := &models.BudgetRule{
		EmployeeType: models.EmployeeType(employeeType),
		MonthlyCost:  *req.MonthlyCost,
		YearlyBudget: *req.YearlyBudget,
	}
	if err := s.repo.Upsert(rule); err != nil {
		return nil, fmt.Errorf("failed to upsert budget rule: %w", err)
	}

	return &BudgetRuleResponse{
		EmployeeType: string(rule.EmployeeType),
		MonthlyCost:  rule.MonthlyCost,
		YearlyBudget: rule.YearlyBudget,
	}, nil
}
