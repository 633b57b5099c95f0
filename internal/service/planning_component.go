package service

import (
	"fmt"
	"strings"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Membership signals a component's member list can be read from
const (
	SignalDeclared    = "declared"
	SignalResponsible = "responsible"
)

// ComponentService handles business logic for planning components
type ComponentService struct {
	repo                  repository.PlanningComponentRepositoryInterface
	memberRepo            repository.TeamMemberRepositoryInterface
	validator             *validator.Validate
	defaultTransferWindow int
}

// NewComponentService creates a new component service
func NewComponentService(repo repository.PlanningComponentRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate, defaultTransferWindow int) *ComponentService {
	return &ComponentService{
		repo:                  repo,
		memberRepo:            memberRepo,
		validator:             validator,
		defaultTransferWindow: defaultTransferWindow,
	}
}

// ComponentRequest carries the data for creating or replacing a component
type ComponentRequest struct {
	Name                 string   `json:"name" validate:"required,max=100"`
	Responsible          []string `json:"responsible" validate:"required,min=1,dive,required"`
	RequiredHeadcount    *int     `json:"required_headcount" validate:"omitempty,min=1,max=10"`     // Optional: defaults to 1
	TransferWindowMonths *int     `json:"transfer_window_months" validate:"omitempty,min=1,max=24"` // Optional: defaults to the configured window
	Product              string   `json:"product" validate:"max=100"`
}

// ComponentResponse is the component record as returned to clients
type ComponentResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Responsible          []string  `json:"responsible"`
	RequiredHeadcount    int       `json:"required_headcount"`
	TransferWindowMonths int       `json:"transfer_window_months"`
	Product              string    `json:"product,omitempty"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

// ComponentMembersResponse lists the members of one component as seen through
// a single membership signal. The declared and responsible signals may
// disagree; callers pick which one to read.
type ComponentMembersResponse struct {
	Component          string           `json:"component"`
	Signal             string           `json:"signal"`
	Members            []MemberResponse `json:"members"`
	MissingResponsible []string         `json:"missing_responsible,omitempty"`
}

// CreateComponent creates a new planning component
func (s *ComponentService) CreateComponent(req *ComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrComponentExists
	}

	component := s.toModel(req)
	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return convertComponentToResponse(component), nil
}

// GetComponentByID retrieves a component by ID
func (s *ComponentService) GetComponentByID(id uuid.UUID) (*ComponentResponse, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrComponentNotFound
	}
	return convertComponentToResponse(component), nil
}

// ListComponents retrieves all planning components
func (s *ComponentService) ListComponents() ([]ComponentResponse, error) {
	components, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	responses := make([]ComponentResponse, 0, len(components))
	for i := range components {
		responses = append(responses, *convertComponentToResponse(&components[i]))
	}
	return responses, nil
}

// UpdateComponent replaces a component record whole
func (s *ComponentService) UpdateComponent(id uuid.UUID, req *ComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrComponentNotFound
	}

	if req.Name != existing.Name {
		if _, err := s.repo.GetByName(req.Name); err == nil {
			return nil, apperrors.ErrComponentExists
		}
	}

	component := s.toModel(req)
	component.BaseModel = existing.BaseModel
	if err := s.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return convertComponentToResponse(component), nil
}

// DeleteComponent deletes a component by ID
func (s *ComponentService) DeleteComponent(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrComponentNotFound
	}
	return s.repo.Delete(id)
}

// GetMembers resolves a component's member list through one membership
// signal. "declared" matches members whose free-text components field names
// this component; "responsible" resolves the component's responsible names to
// member records, reporting names that resolve to nobody.
func (s *ComponentService) GetMembers(id uuid.UUID, signal string) (*ComponentMembersResponse, error) {
	if signal != SignalDeclared && signal != SignalResponsible {
		return nil, apperrors.ErrUnknownMembershipSignal
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrComponentNotFound
	}

	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	today := time.Now()
	resp := &ComponentMembersResponse{
		Component: component.Name,
		Signal:    signal,
		Members:   []MemberResponse{},
	}

	if signal == SignalDeclared {
		key := strings.ToLower(strings.TrimSpace(component.Name))
		for i := range members {
			for _, declared := range DeclaredComponents(&members[i]) {
				if declared == key {
					resp.Members = append(resp.Members, *memberToResponse(&members[i], today))
					break
				}
			}
		}
		return resp, nil
	}

	byName := make(map[string]*models.TeamMember, len(members))
	for i := range members {
		byName[strings.TrimSpace(members[i].Name)] = &members[i]
	}
	for _, name := range component.Responsible {
		member, found := byName[strings.TrimSpace(name)]
		if !found {
			resp.MissingResponsible = append(resp.MissingResponsible, name)
			continue
		}
		resp.Members = append(resp.Members, *memberToResponse(member, today))
	}
	return resp, nil
}

func (s *ComponentService) toModel(req *ComponentRequest) *models.PlanningComponent {
	headcount := 1
	if req.RequiredHeadcount != nil {
		headcount = *req.RequiredHeadcount
	}

	window := s.defaultTransferWindow
	if req.TransferWindowMonths != nil {
		window = *req.TransferWindowMonths
	}

	return &models.PlanningComponent{
		Name:                 req.Name,
		Responsible:          req.Responsible,
		RequiredHeadcount:    headcount,
		TransferWindowMonths: window,
		Product:              req.Product,
	}
}

func convertComponentToResponse(component *models.PlanningComponent) *ComponentResponse {
	return &ComponentResponse{
		ID:                   component.ID,
		Name:                 component.Name,
		Responsible:          append([]string{}, component.Responsible...),
		RequiredHeadcount:    component.RequiredHeadcount,
		TransferWindowMonths: component.TransferWindowMonths,
		Product:              component.Product,
		CreatedAt:            component.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            component.UpdatedAt.Format(time.RFC3339),
	}
}
