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

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	memberService  *service.MemberService
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.memberService = service.NewMemberService(suite.mockMemberRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests creating a member with defaults applied
func (suite *MemberServiceTestSuite) TestCreateMember() {
	req := &service.MemberRequest{
		Name:      "Alice Schmidt",
		Role:      "Developer",
		StartDate: "2020-01-01",
	}

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.TeamMember) error {
			suite.Equal(models.TransferNotStarted, m.KnowledgeTransferStatus)
			suite.Equal(models.PriorityMedium, m.Priority)
			suite.Equal("Unassigned", m.Team)
			suite.Equal(models.EmployeeTypeInternal, m.EmployeeType)
			return nil
		}).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	suite.NoError(err)
	suite.NotNil(response)
	suite.Equal("Alice Schmidt", response.Name)
	suite.NotNil(response.TenureDays)
	suite.Nil(response.DaysUntilExit)
}

// TestCreateMemberValidation tests field validation on create
func (suite *MemberServiceTestSuite) TestCreateMemberValidation() {
	tests := []struct {
		name string
		req  *service.MemberRequest
	}{
		{"missing name", &service.MemberRequest{Role: "Developer", StartDate: "2020-01-01"}},
		{"missing start date", &service.MemberRequest{Name: "Alice", Role: "Developer"}},
		{"malformed start date", &service.MemberRequest{Name: "Alice", Role: "Developer", StartDate: "01.02.2020"}},
		{"unknown priority", &service.MemberRequest{Name: "Alice", Role: "Developer", StartDate: "2020-01-01", Priority: strPtr("Urgent")}},
		{"unknown employee type", &service.MemberRequest{Name: "Alice", Role: "Developer", StartDate: "2020-01-01", EmployeeType: strPtr("Freelance")}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.memberService.CreateMember(tt.req)
			suite.Error(err)
		})
	}
}

// TestGetMemberByIDNotFound tests the not-found mapping
func (suite *MemberServiceTestSuite) TestGetMemberByIDNotFound() {
	id := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.memberService.GetMemberByID(id)

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

// TestUpdateMemberReplacesWholeRecord tests full-record replacement semantics
func (suite *MemberServiceTestSuite) TestUpdateMemberReplacesWholeRecord() {
	id := uuid.New()
	exit := "2025-01-01"
	existing := &models.TeamMember{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Alice Schmidt",
		Role:        "Developer",
		StartDate:   "2020-01-01",
		PlannedExit: &exit,
		Team:        "CS1",
	}

	suite.mockMemberRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(m *models.TeamMember) error {
			suite.Equal(id, m.ID)
			// The omitted planned exit is cleared, not carried over
			suite.Nil(m.PlannedExit)
			suite.Equal("Unassigned", m.Team)
			return nil
		}).
		Times(1)

	req := &service.MemberRequest{
		Name:      "Alice Schmidt",
		Role:      "Architect",
		StartDate: "2020-01-01",
	}
	response, err := suite.memberService.UpdateMember(id, req)

	suite.NoError(err)
	suite.Equal("Architect", response.Role)
}

// TestListMembersFiltering tests the list filters
func (suite *MemberServiceTestSuite) TestListMembersFiltering() {
	exitSoon := "2099-01-01"
	members := []models.TeamMember{
		{Name: "Alice", Role: "Developer", Team: "CS1", StartDate: "2020-01-01", Priority: models.PriorityHigh, KnowledgeTransferStatus: models.TransferNotStarted},
		{Name: "Bob", Role: "Tester", Team: "CS2", StartDate: "2020-01-01", PlannedExit: &exitSoon, Priority: models.PriorityLow, KnowledgeTransferStatus: models.TransferCompleted},
	}

	suite.mockMemberRepo.EXPECT().List().Return(members, nil).AnyTimes()

	byPriority, err := suite.memberService.ListMembers(&service.MemberFilter{Priority: "High"})
	suite.NoError(err)
	suite.Len(byPriority, 1)
	suite.Equal("Alice", byPriority[0].Name)

	byTeam, err := suite.memberService.ListMembers(&service.MemberFilter{Team: "CS2"})
	suite.NoError(err)
	suite.Len(byTeam, 1)
	suite.Equal("Bob", byTeam[0].Name)

	// A days cap only ever matches members with a planned exit
	cap := 1000000
	byExit, err := suite.memberService.ListMembers(&service.MemberFilter{MaxDaysUntilExit: &cap})
	suite.NoError(err)
	suite.Len(byExit, 1)
	suite.Equal("Bob", byExit[0].Name)

	all, err := suite.memberService.ListMembers(nil)
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
