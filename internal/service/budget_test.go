package service_test

import (
	"testing"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestRollupBudget(t *testing.T) {
	members := []models.TeamMember{
		{Name: "A", EmployeeType: models.EmployeeTypeInternal},
		{Name: "B", EmployeeType: models.EmployeeTypeInternal},
		{Name: "C", EmployeeType: models.EmployeeTypeExternal},
		{Name: "D", EmployeeType: models.EmployeeTypeLeadCost},
	}
	rules := []models.BudgetRule{
		{EmployeeType: models.EmployeeTypeInternal, MonthlyCost: 1500, YearlyBudget: 18000},
		{EmployeeType: models.EmployeeTypeExternal, MonthlyCost: 7000, YearlyBudget: 84000},
	}

	rollup := service.RollupBudget(members, rules)

	assert.Equal(t, 4, rollup.TotalMembers)
	// The LeadCost member has no rule and contributes zero
	assert.Equal(t, 2*1500+7000, rollup.TotalMonthlyCost)
	assert.Equal(t, 2*18000+84000, rollup.TotalYearlyBudget)
	require.Len(t, rollup.ByType, 2)
}

func TestRollupBudgetCountsInactiveMembers(t *testing.T) {
	// The rollup is a headcount times unit cost product over ALL records,
	// not just currently active ones
	exited := "2020-01-01"
	members := []models.TeamMember{
		{Name: "Gone", EmployeeType: models.EmployeeTypeInternal, StartDate: "2019-01-01", PlannedExit: &exited},
	}
	rules := []models.BudgetRule{
		{EmployeeType: models.EmployeeTypeInternal, MonthlyCost: 1500, YearlyBudget: 18000},
	}

	rollup := service.RollupBudget(members, rules)
	assert.Equal(t, 1500, rollup.TotalMonthlyCost)
}

func TestProjectCosts(t *testing.T) {
	members := []models.TeamMember{
		{Name: "Stays", StartDate: "2020-01-01", EmployeeType: models.EmployeeTypeInternal},
		{Name: "Leaves", StartDate: "2020-01-01", PlannedExit: strPtr("2024-07-01"), EmployeeType: models.EmployeeTypeExternal},
	}
	rules := []models.BudgetRule{
		{EmployeeType: models.EmployeeTypeInternal, MonthlyCost: 1500, YearlyBudget: 18000},
		{EmployeeType: models.EmployeeTypeExternal, MonthlyCost: 7000, YearlyBudget: 84000},
	}

	t.Run("monthly period cost", func(t *testing.T) {
		forecast, err := service.ProjectCosts(members, rules, date(t, "2024-06-01"), date(t, "2024-07-31"), models.GranularityMonthly)
		require.NoError(t, err)
		require.Len(t, forecast.Buckets, 2)

		// June: both active
		assert.Equal(t, 2, forecast.Buckets[0].TotalMembers)
		assert.Equal(t, 1500+7000, forecast.Buckets[0].MonthlyCost)
		assert.Equal(t, 1500+7000, forecast.Buckets[0].PeriodCost)

		// July: the external member is out
		assert.Equal(t, 1, forecast.Buckets[1].TotalMembers)
		assert.Equal(t, 1500, forecast.Buckets[1].PeriodCost)
	})

	t.Run("quarterly period cost is three months", func(t *testing.T) {
		forecast, err := service.ProjectCosts(members, rules, date(t, "2024-07-01"), date(t, "2024-09-30"), models.GranularityQuarterly)
		require.NoError(t, err)
		require.Len(t, forecast.Buckets, 1)
		assert.Equal(t, 1500*3, forecast.Buckets[0].PeriodCost)
	})

	t.Run("yearly period cost uses the yearly budget", func(t *testing.T) {
		forecast, err := service.ProjectCosts(members, rules, date(t, "2025-01-01"), date(t, "2025-12-31"), models.GranularityYearly)
		require.NoError(t, err)
		require.Len(t, forecast.Buckets, 1)
		assert.Equal(t, 18000, forecast.Buckets[0].PeriodCost)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := service.ProjectCosts(members, rules, date(t, "2024-09-01"), date(t, "2024-06-01"), models.GranularityMonthly)
		assert.ErrorIs(t, err, apperrors.ErrInvalidForecastRange)
	})
}

// BudgetRuleServiceTestSuite defines the test suite for BudgetRuleService
type BudgetRuleServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockBudgetRepo    *mocks.MockBudgetRuleRepositoryInterface
	budgetRuleService *service.BudgetRuleService
}

// SetupTest sets up the test suite
func (suite *BudgetRuleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBudgetRepo = mocks.NewMockBudgetRuleRepositoryInterface(suite.ctrl)
	suite.budgetRuleService = service.NewBudgetRuleService(suite.mockBudgetRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *BudgetRuleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestUpsertRule tests storing a rule for a known employee type
func (suite *BudgetRuleServiceTestSuite) TestUpsertRule() {
	monthly, yearly := 2000, 24000
	req := &service.BudgetRuleRequest{MonthlyCost: &monthly, YearlyBudget: &yearly}

	suite.mockBudgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)

	rule, err := suite.budgetRuleService.UpsertRule("Internal", req)

	suite.NoError(err)
	suite.Equal("Internal", rule.EmployeeType)
	suite.Equal(2000, rule.MonthlyCost)
}

// TestUpsertRuleRejectsUnknownType tests the employee type guard
func (suite *BudgetRuleServiceTestSuite) TestUpsertRuleRejectsUnknownType() {
	monthly, yearly := 2000, 24000
	req := &service.BudgetRuleRequest{MonthlyCost: &monthly, YearlyBudget: &yearly}

	_, err := suite.budgetRuleService.UpsertRule("Freelance", req)

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestEnsureDefaultsSeedsMissingRules tests default seeding
func (suite *BudgetRuleServiceTestSuite) TestEnsureDefaultsSeedsMissingRules() {
	// Internal already exists, the other two get seeded
	suite.mockBudgetRepo.EXPECT().
		GetByEmployeeType(models.EmployeeTypeInternal).
		Return(&models.BudgetRule{EmployeeType: models.EmployeeTypeInternal}, nil).
		Times(1)
	suite.mockBudgetRepo.EXPECT().
		GetByEmployeeType(models.EmployeeTypeLeadCost).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockBudgetRepo.EXPECT().
		GetByEmployeeType(models.EmployeeTypeExternal).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockBudgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	err := suite.budgetRuleService.EnsureDefaults()

	suite.NoError(err)
}

// TestBudgetRuleServiceTestSuite runs the test suite
func TestBudgetRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetRuleServiceTestSuite))
}
