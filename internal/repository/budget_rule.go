package repository

import (
	"errors"

	"resource-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// BudgetRuleRepository handles database operations for budget rules
type BudgetRuleRepository struct {
	db *gorm.DB
}

// NewBudgetRuleRepository creates a new budget rule repository
func NewBudgetRuleRepository(db *gorm.DB) *BudgetRuleRepository {
	return &BudgetRuleRepository{db: db}
}

// GetByEmployeeType retrieves the budget rule for one employee type
func (r *BudgetRuleRepository) GetByEmployeeType(employeeType models.EmployeeType) (*models.BudgetRule, error) {
	var rule models.BudgetRule
	err := r.db.First(&rule, "employee_type = ?", employeeType).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// List retrieves all budget rules ordered by employee type
func (r *BudgetRuleRepository) List() ([]models.BudgetRule, error) {
	var rules []models.BudgetRule
	err := r.db.Order("employee_type").Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// Upsert creates the rule for an employee type or replaces its costs
func (r *BudgetRuleRepository) Upsert(rule *models.BudgetRule) error {
	var existing models.BudgetRule
	err := r.db.First(&existing, "employee_type = ?", rule.EmployeeType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(rule).Error
	}
	if err != nil {
		return err
	}
	existing.MonthlyCost = rule.MonthlyCost
	existing.YearlyBudget = rule.YearlyBudget
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*rule = existing
	return nil
}
