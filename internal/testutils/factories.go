package testutils

import (
	"time"

	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                    "Jane Doe",
		Role:                    "Developer",
		Components:              "Backend",
		StartDate:               "2021-01-01",
		KnowledgeTransferStatus: models.TransferNotStarted,
		Priority:                models.PriorityMedium,
		Team:                    "CS1",
		EmployeeType:            models.EmployeeTypeInternal,
	}
}

// WithName sets a custom name for the member
func (f *TeamMemberFactory) WithName(name string) *models.TeamMember {
	member := f.Create()
	member.Name = name
	return member
}

// WithDates sets start and planned exit dates
func (f *TeamMemberFactory) WithDates(startDate string, plannedExit string) *models.TeamMember {
	member := f.Create()
	member.StartDate = startDate
	if plannedExit != "" {
		member.PlannedExit = &plannedExit
	}
	return member
}

// WithEmployeeType sets the employee type
func (f *TeamMemberFactory) WithEmployeeType(employeeType models.EmployeeType) *models.TeamMember {
	member := f.Create()
	member.EmployeeType = employeeType
	return member
}

// PlanningComponentFactory provides methods to create test PlanningComponent data
type PlanningComponentFactory struct{}

// NewPlanningComponentFactory creates a new PlanningComponentFactory
func NewPlanningComponentFactory() *PlanningComponentFactory {
	return &PlanningComponentFactory{}
}

// Create creates a test PlanningComponent with default values
func (f *PlanningComponentFactory) Create() *models.PlanningComponent {
	return &models.PlanningComponent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                 "Backend",
		Responsible:          []string{"Jane Doe"},
		RequiredHeadcount:    1,
		TransferWindowMonths: 6,
	}
}

// WithName sets a custom name for the component
func (f *PlanningComponentFactory) WithName(name string) *models.PlanningComponent {
	component := f.Create()
	component.Name = name
	return component
}

// WithResponsible sets the responsible persons
func (f *PlanningComponentFactory) WithResponsible(names ...string) *models.PlanningComponent {
	component := f.Create()
	component.Responsible = names
	return component
}

// WithRequiredHeadcount sets the required headcount
func (f *PlanningComponentFactory) WithRequiredHeadcount(n int) *models.PlanningComponent {
	component := f.Create()
	component.RequiredHeadcount = n
	return component
}

// BudgetRuleFactory provides methods to create test BudgetRule data
type BudgetRuleFactory struct{}

// NewBudgetRuleFactory creates a new BudgetRuleFactory
func NewBudgetRuleFactory() *BudgetRuleFactory {
	return &BudgetRuleFactory{}
}

// Create creates a test BudgetRule with default values
func (f *BudgetRuleFactory) Create() *models.BudgetRule {
	return &models.BudgetRule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeType: models.EmployeeTypeInternal,
		MonthlyCost:  1500,
		YearlyBudget: 18000,
	}
}

// WithType sets the employee type and costs
func (f *BudgetRuleFactory) WithType(employeeType models.EmployeeType, monthly, yearly int) *models.BudgetRule {
	rule := f.Create()
	rule.EmployeeType = employeeType
	rule.MonthlyCost = monthly
	rule.YearlyBudget = yearly
	return rule
}
