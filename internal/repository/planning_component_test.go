package repository_test

import (
	"testing"

	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlanningComponentRepositoryTestSuite defines the test suite for PlanningComponentRepository
type PlanningComponentRepositoryTestSuite struct {
	suite.Suite
	base    *testutils.BaseTestSuite
	repo    *repository.PlanningComponentRepository
	factory *testutils.PlanningComponentFactory
}

// SetupSuite opens the test store once for the suite
func (suite *PlanningComponentRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = repository.NewPlanningComponentRepository(suite.base.DB)
	suite.factory = testutils.NewPlanningComponentFactory()
}

// TearDownSuite closes the test store
func (suite *PlanningComponentRepositoryTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

// SetupTest cleans the store before each test
func (suite *PlanningComponentRepositoryTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

// TestCreateAndGetByName tests the roundtrip including the serialized responsible list
func (suite *PlanningComponentRepositoryTestSuite) TestCreateAndGetByName() {
	component := suite.factory.WithResponsible("Alice Schmidt", "Bob Weber")
	suite.NoError(suite.repo.Create(component))

	found, err := suite.repo.GetByName("Backend")
	suite.NoError(err)
	suite.Equal([]string{"Alice Schmidt", "Bob Weber"}, found.Responsible)
	suite.Equal(1, found.RequiredHeadcount)
	suite.Equal(6, found.TransferWindowMonths)
}

// TestUniqueName tests the unique index on the component name
func (suite *PlanningComponentRepositoryTestSuite) TestUniqueName() {
	suite.NoError(suite.repo.Create(suite.factory.WithName("Backend")))
	suite.Error(suite.repo.Create(suite.factory.WithName("Backend")))
}

// TestUpdateReplacesResponsibleList tests replacing the serialized list
func (suite *PlanningComponentRepositoryTestSuite) TestUpdateReplacesResponsibleList() {
	component := suite.factory.WithResponsible("Alice Schmidt")
	suite.NoError(suite.repo.Create(component))

	component.Responsible = []string{"Charlie Mueller"}
	suite.NoError(suite.repo.Update(component))

	found, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal([]string{"Charlie Mueller"}, found.Responsible)
}

// TestDelete tests component deletion
func (suite *PlanningComponentRepositoryTestSuite) TestDelete() {
	component := suite.factory.Create()
	suite.NoError(suite.repo.Create(component))

	suite.NoError(suite.repo.Delete(component.ID))

	_, err := suite.repo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPlanningComponentRepositoryTestSuite runs the test suite
func TestPlanningComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningComponentRepositoryTestSuite))
}
