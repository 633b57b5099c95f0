package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByName retrieves a team member by name. Names are a soft key: they are
// unique in practice but not enforced, so the first match wins.
func (r *TeamMemberRepository) GetByName(name string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves all team members ordered by name
func (r *TeamMemberRepository) List() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Order("name").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update replaces a team member record
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a team member
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}

// DeleteAll removes every team member record
func (r *TeamMemberRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.TeamMember{}).Error
}
