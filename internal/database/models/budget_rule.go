package models

// BudgetRule holds the per-head unit costs for one employee type
type BudgetRule struct {
	BaseModel
	EmployeeType EmployeeType `json:"employee_type" gorm:"type:varchar(20);not null;uniqueIndex" validate:"required"`
	MonthlyCost  int          `json:"monthly_cost" gorm:"not null" validate:"min=0"`
	YearlyBudget int          `json:"yearly_budget" gorm:"not null" validate:"min=0"`
}

// TableName returns the table name for BudgetRule
func (BudgetRule) TableName() string {
	return "budget_rules"
}
