package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanningComponentRepository handles database operations for planning components
type PlanningComponentRepository struct {
	db *gorm.DB
}

// NewPlanningComponentRepository creates a new planning component repository
func NewPlanningComponentRepository(db *gorm.DB) *PlanningComponentRepository {
	return &PlanningComponentRepository{db: db}
}

// Create creates a new planning component
func (r *PlanningComponentRepository) Create(component *models.PlanningComponent) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a planning component by ID
func (r *PlanningComponentRepository) GetByID(id uuid.UUID) (*models.PlanningComponent, error) {
	var component models.PlanningComponent
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByName retrieves a planning component by its unique name
func (r *PlanningComponentRepository) GetByName(name string) (*models.PlanningComponent, error) {
	var component models.PlanningComponent
	err := r.db.First(&component, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// List retrieves all planning components ordered by name
func (r *PlanningComponentRepository) List() ([]models.PlanningComponent, error) {
	var components []models.PlanningComponent
	err := r.db.Order("name").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update replaces a planning component record
func (r *PlanningComponentRepository) Update(component *models.PlanningComponent) error {
	return r.db.Save(component).Error
}

// Delete deletes a planning component
func (r *PlanningComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PlanningComponent{}, "id = ?", id).Error
}
