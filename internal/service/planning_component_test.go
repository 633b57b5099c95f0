package service_test

import (
	"testing"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ComponentServiceTestSuite defines the test suite for ComponentService
type ComponentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockComponentRepo *mocks.MockPlanningComponentRepositoryInterface
	mockMemberRepo    *mocks.MockTeamMemberRepositoryInterface
	componentService  *service.ComponentService
}

// SetupTest sets up the test suite
func (suite *ComponentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponentRepo = mocks.NewMockPlanningComponentRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.componentService = service.NewComponentService(suite.mockComponentRepo, suite.mockMemberRepo, validator.New(), 6)
}

// TearDownTest cleans up after each test
func (suite *ComponentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateComponent tests creating a component with defaults applied
func (suite *ComponentServiceTestSuite) TestCreateComponent() {
	req := &service.ComponentRequest{
		Name:        "Backend",
		Responsible: []string{"Alice Schmidt"},
	}

	suite.mockComponentRepo.EXPECT().GetByName("Backend").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockComponentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.PlanningComponent) error {
			suite.Equal(1, c.RequiredHeadcount)
			suite.Equal(6, c.TransferWindowMonths)
			return nil
		}).
		Times(1)

	response, err := suite.componentService.CreateComponent(req)

	suite.NoError(err)
	suite.Equal("Backend", response.Name)
	suite.Equal([]string{"Alice Schmidt"}, response.Responsible)
}

// TestCreateComponentDuplicateName tests the unique name guard
func (suite *ComponentServiceTestSuite) TestCreateComponentDuplicateName() {
	req := &service.ComponentRequest{
		Name:        "Backend",
		Responsible: []string{"Alice Schmidt"},
	}

	suite.mockComponentRepo.EXPECT().
		GetByName("Backend").
		Return(&models.PlanningComponent{Name: "Backend"}, nil).
		Times(1)

	_, err := suite.componentService.CreateComponent(req)

	suite.ErrorIs(err, apperrors.ErrComponentExists)
}

// TestCreateComponentRequiresResponsible tests the responsible list validation
func (suite *ComponentServiceTestSuite) TestCreateComponentRequiresResponsible() {
	_, err := suite.componentService.CreateComponent(&service.ComponentRequest{Name: "Backend"})
	suite.Error(err)

	_, err = suite.componentService.CreateComponent(&service.ComponentRequest{Name: "Backend", Responsible: []string{}})
	suite.Error(err)
}

// TestGetMembersDeclaredSignal tests member resolution through the declared signal
func (suite *ComponentServiceTestSuite) TestGetMembersDeclaredSignal() {
	id := uuid.New()
	component := &models.PlanningComponent{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Backend",
		Responsible: []string{"Charlie Mueller"},
	}
	members := []models.TeamMember{
		{Name: "Alice Schmidt", Components: "backend, cloud", StartDate: "2020-01-01"},
		{Name: "Bob Weber", Components: "Frontend", StartDate: "2020-01-01"},
	}

	suite.mockComponentRepo.EXPECT().GetByID(id).Return(component, nil).Times(1)
	suite.mockMemberRepo.EXPECT().List().Return(members, nil).Times(1)

	response, err := suite.componentService.GetMembers(id, service.SignalDeclared)

	suite.NoError(err)
	suite.Equal(service.SignalDeclared, response.Signal)
	suite.Len(response.Members, 1)
	suite.Equal("Alice Schmidt", response.Members[0].Name)
	suite.Empty(response.MissingResponsible)
}

// TestGetMembersResponsibleSignal tests member resolution through the responsible signal
func (suite *ComponentServiceTestSuite) TestGetMembersResponsibleSignal() {
	id := uuid.New()
	component := &models.PlanningComponent{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Backend",
		Responsible: []string{"Alice Schmidt", "Nobody Known"},
	}
	members := []models.TeamMember{
		{Name: "Alice Schmidt", Components: "Frontend", StartDate: "2020-01-01"},
	}

	suite.mockComponentRepo.EXPECT().GetByID(id).Return(component, nil).Times(1)
	suite.mockMemberRepo.EXPECT().List().Return(members, nil).Times(1)

	response, err := suite.componentService.GetMembers(id, service.SignalResponsible)

	suite.NoError(err)
	// The two signals disagree here and that is fine: Alice is listed even
	// though her declared components do not mention Backend
	suite.Len(response.Members, 1)
	suite.Equal([]string{"Nobody Known"}, response.MissingResponsible)
}

// TestGetMembersUnknownSignal tests the signal guard
func (suite *ComponentServiceTestSuite) TestGetMembersUnknownSignal() {
	_, err := suite.componentService.GetMembers(uuid.New(), "both")
	suite.ErrorIs(err, apperrors.ErrUnknownMembershipSignal)
}

// TestComponentServiceTestSuite runs the test suite
func TestComponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentServiceTestSuite))
}
