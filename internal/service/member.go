package service

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemberService handles business logic for team members
type MemberService struct {
	repo      repository.TeamMemberRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		validator: validator,
	}
}

// MemberRequest carries the data for creating a member or replacing one
// whole. Edits are full-record replacements, never partial field updates, so
// create and update share this shape.
type MemberRequest struct {
	Name                    string  `json:"name" validate:"required,max=200"`
	Role                    string  `json:"role" validate:"required,max=100"`
	Components              string  `json:"components" validate:"max=500"`
	StartDate               string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	PlannedExit             *string `json:"planned_exit" validate:"omitempty,datetime=2006-01-02"`
	KnowledgeTransferStatus *string `json:"knowledge_transfer_status" validate:"omitempty,oneof='Not Started' 'In Progress' 'Completed'"` // Optional: defaults to "Not Started"
	Priority                *string `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`                                 // Optional: defaults to "Medium"
	DateOfBirth             *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Team                    *string `json:"team" validate:"omitempty,max=50"`                                 // Optional: defaults to "Unassigned"
	EmployeeType            *string `json:"employee_type" validate:"omitempty,oneof=Internal LeadCost External"` // Optional: defaults to "Internal"
}

// MemberResponse is the member record plus its derived attributes
type MemberResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Role                    string    `json:"role"`
	Components              string    `json:"components"`
	StartDate               string    `json:"start_date"`
	PlannedExit             *string   `json:"planned_exit,omitempty"`
	KnowledgeTransferStatus string    `json:"knowledge_transfer_status"`
	Priority                string    `json:"priority"`
	DateOfBirth             *string   `json:"date_of_birth,omitempty"`
	Team                    string    `json:"team"`
	EmployeeType            string    `json:"employee_type"`
	Age                     *int      `json:"age,omitempty"`
	TenureDays              *int      `json:"tenure_days,omitempty"`
	DaysUntilExit           *int      `json:"days_until_exit,omitempty"`
	CreatedAt               string    `json:"created_at"`
	UpdatedAt               string    `json:"updated_at"`
}

// MemberFilter narrows the member list the way the board's table filters do
type MemberFilter struct {
	Status           string
	Priority         string
	Role             string
	Team             string
	MaxDaysUntilExit *int
}

// CreateMember creates a new team member
func (s *MemberService) CreateMember(req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member := s.toModel(req)
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.convertToResponse(member, time.Now()), nil
}

// GetMemberByID retrieves a member by ID with derived fields
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	return s.convertToResponse(member, time.Now()), nil
}

// ListMembers retrieves all members matching the filter
func (s *MemberService) ListMembers(filter *MemberFilter) ([]MemberResponse, error) {
	members, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	today := time.Now()
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		resp := s.convertToResponse(&members[i], today)
		if filter != nil && !matchesFilter(resp, filter) {
			continue
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// UpdateMember replaces a member record whole
func (s *MemberService) UpdateMember(id uuid.UUID, req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	member := s.toModel(req)
	member.BaseModel = existing.BaseModel
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.convertToResponse(member, time.Now()), nil
}

// DeleteMember deletes a member by ID
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrMemberNotFound
	}
	return s.repo.Delete(id)
}

// DeleteAllMembers clears the whole member list
func (s *MemberService) DeleteAllMembers() error {
	return s.repo.DeleteAll()
}

func (s *MemberService) toModel(req *MemberRequest) *models.TeamMember {
	status := models.TransferNotStarted
	if req.KnowledgeTransferStatus != nil {
		status = models.KnowledgeTransferStatus(*req.KnowledgeTransferStatus)
	}

	priority := models.PriorityMedium
	if req.Priority != nil {
		priority = models.Priority(*req.Priority)
	}

	team := "Unassigned"
	if req.Team != nil && *req.Team != "" {
		team = *req.Team
	}

	employeeType := models.EmployeeTypeInternal
	if req.EmployeeType != nil {
		employeeType = models.EmployeeType(*req.EmployeeType)
	}

	return &models.TeamMember{
		Name:                    req.Name,
		Role:                    req.Role,
		Components:              req.Components,
		StartDate:               req.StartDate,
		PlannedExit:             req.PlannedExit,
		KnowledgeTransferStatus: status,
		Priority:                priority,
		DateOfBirth:             req.DateOfBirth,
		Team:                    team,
		EmployeeType:            employeeType,
	}
}

func (s *MemberService) convertToResponse(member *models.TeamMember, today time.Time) *MemberResponse {
	return memberToResponse(member, today)
}

func memberToResponse(member *models.TeamMember, today time.Time) *MemberResponse {
	derived := ComputeDerived(member, today)
	return &MemberResponse{
		ID:                      member.ID,
		Name:                    member.Name,
		Role:                    member.Role,
		Components:              member.Components,
		StartDate:               member.StartDate,
		PlannedExit:             member.PlannedExit,
		KnowledgeTransferStatus: string(member.KnowledgeTransferStatus),
		Priority:                string(member.Priority),
		DateOfBirth:             member.DateOfBirth,
		Team:                    member.Team,
		EmployeeType:            string(member.EmployeeType),
		Age:                     derived.Age,
		TenureDays:              derived.TenureDays,
		DaysUntilExit:           derived.DaysUntilExit,
		CreatedAt:               member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               member.UpdatedAt.Format(time.RFC3339),
	}
}

func matchesFilter(resp *MemberResponse, filter *MemberFilter) bool {
	if filter.Status != "" && resp.KnowledgeTransferStatus != filter.Status {
		return false
	}
	if filter.Priority != "" && resp.Priority != filter.Priority {
		return false
	}
	if filter.Role != "" && resp.Role != filter.Role {
		return false
	}
	if filter.Team != "" && resp.Team != filter.Team {
		return false
	}
	if filter.MaxDaysUntilExit != nil {
		// members without a planned exit never match a days cap
		if resp.DaysUntilExit == nil || *resp.DaysUntilExit > *filter.MaxDaysUntilExit {
			return false
		}
	}
	return true
}
