package repository_test

import (
	"testing"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite defines the test suite for TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	base    *testutils.BaseTestSuite
	repo    *repository.TeamMemberRepository
	factory *testutils.TeamMemberFactory
}

// SetupSuite opens the test store once for the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewTeamMemberRepository(suite.base.DB)
	suite.factory = testutils.NewTeamMemberFactory()
}

// TearDownSuite closes the test store
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

// SetupTest cleans the store before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

// TestCreateAndGetByID tests the basic roundtrip
func (suite *TeamMemberRepositoryTestSuite) TestCreateAndGetByID() {
	member := suite.factory.WithDates("2021-01-01", "2025-06-30")

	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(member.Name, found.Name)
	suite.Equal("2021-01-01", found.StartDate)
	suite.NotNil(found.PlannedExit)
	suite.Equal("2025-06-30", *found.PlannedExit)
}

// TestGetByIDNotFound tests the missing-record error
func (suite *TeamMemberRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests lookup by the soft name key
func (suite *TeamMemberRepositoryTestSuite) TestGetByName() {
	member := suite.factory.WithName("Charlie Mueller")
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByName("Charlie Mueller")
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)
}

// TestListOrdersByName tests list ordering
func (suite *TeamMemberRepositoryTestSuite) TestListOrdersByName() {
	suite.NoError(suite.repo.Create(suite.factory.WithName("Zoe")))
	suite.NoError(suite.repo.Create(suite.factory.WithName("Anna")))

	members, err := suite.repo.List()
	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal("Anna", members[0].Name)
	suite.Equal("Zoe", members[1].Name)
}

// TestUpdate tests record replacement
func (suite *TeamMemberRepositoryTestSuite) TestUpdate() {
	member := suite.factory.Create()
	suite.NoError(suite.repo.Create(member))

	member.Role = "Architect"
	member.PlannedExit = nil
	suite.NoError(suite.repo.Update(member))

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("Architect", found.Role)
	suite.Nil(found.PlannedExit)
}

// TestDelete tests single-record deletion
func (suite *TeamMemberRepositoryTestSuite) TestDelete() {
	member := suite.factory.Create()
	suite.NoError(suite.repo.Create(member))

	suite.NoError(suite.repo.Delete(member.ID))

	_, err := suite.repo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteAll tests clearing the whole list
func (suite *TeamMemberRepositoryTestSuite) TestDeleteAll() {
	suite.NoError(suite.repo.Create(suite.factory.WithName("One")))
	suite.NoError(suite.repo.Create(suite.factory.WithName("Two")))

	suite.NoError(suite.repo.DeleteAll())

	members, err := suite.repo.List()
	suite.NoError(err)
	suite.Empty(members)
}

// TestDefaultsApplied tests the schema-level defaults
func (suite *TeamMemberRepositoryTestSuite) TestDefaultsApplied() {
	member := &models.TeamMember{
		Name:      "Minimal",
		Role:      "Developer",
		StartDate: "2022-01-01",
	}
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.TransferNotStarted, found.KnowledgeTransferStatus)
	suite.Equal(models.PriorityMedium, found.Priority)
	suite.Equal("Unassigned", found.Team)
	suite.Equal(models.EmployeeTypeInternal, found.EmployeeType)
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
