package repository

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamMemberRepositoryInterface defines the storage contract for team members
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByName(name string) (*models.TeamMember, error)
	List() ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// PlanningComponentRepositoryInterface defines the storage contract for planning components
type PlanningComponentRepositoryInterface interface {
	Create(component *models.PlanningComponent) error
	GetByID(id uuid.UUID) (*models.PlanningComponent, error)
	GetByName(name string) (*models.PlanningComponent, error)
	List() ([]models.PlanningComponent, error)
	Update(component *models.PlanningComponent) error
	Delete(id uuid.UUID) error
}

// BudgetRuleRepositoryInterface defines the storage contract for budget rules
type BudgetRuleRepositoryInterface interface {
	GetByEmployeeType(employeeType models.EmployeeType) (*models.BudgetRule, error)
	List() ([]models.BudgetRule, error)
	Upsert(rule *models.BudgetRule) error
}
