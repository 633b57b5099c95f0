package service

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"
)

// TypeCost is the rollup line for one employee type
type TypeCost struct {
	EmployeeType      models.EmployeeType `json:"employee_type"`
	Headcount         int                 `json:"headcount"`
	MonthlyCost       int                 `json:"monthly_cost"`
	YearlyBudget      int                 `json:"yearly_budget"`
	TotalMonthlyCost  int                 `json:"total_monthly_cost"`
	TotalYearlyBudget int                 `json:"total_yearly_budget"`
}

// BudgetRollup totals the cost of the current team
type BudgetRollup struct {
	TotalMembers      int        `json:"total_members"`
	TotalMonthlyCost  int        `json:"total_monthly_cost"`
	TotalYearlyBudget int        `json:"total_yearly_budget"`
	ByType            []TypeCost `json:"by_type"`
}

// RollupBudget multiplies per-type unit costs by current headcount. Employee
// types without a budget rule contribute zero, matching the board's behavior.
func RollupBudget(members []models.TeamMember, rules []models.BudgetRule) BudgetRollup {
	counts := make(map[models.EmployeeType]int)
	for i := range members {
		counts[members[i].EmployeeType]++
	}

	rollup := BudgetRollup{TotalMembers: len(members), ByType: make([]TypeCost, 0, len(rules))}
	for _, rule := range rules {
		line := TypeCost{
			EmployeeType:      rule.EmployeeType,
			Headcount:         counts[rule.EmployeeType],
			MonthlyCost:       rule.MonthlyCost,
			YearlyBudget:      rule.YearlyBudget,
			TotalMonthlyCost:  rule.MonthlyCost * counts[rule.EmployeeType],
			TotalYearlyBudget: rule.YearlyBudget * counts[rule.EmployeeType],
		}
		rollup.TotalMonthlyCost += line.TotalMonthlyCost
		rollup.TotalYearlyBudget += line.TotalYearlyBudget
		rollup.ByType = append(rollup.ByType, line)
	}
	return rollup
}

// CostBucket is the projected headcount and cost for one period
type CostBucket struct {
	PeriodStart   string                      `json:"period_start"`
	TotalMembers  int                         `json:"total_members"`
	ByType        map[models.EmployeeType]int `json:"by_type"`
	MonthlyCost   int                         `json:"monthly_cost"`
	PeriodCost    int                         `json:"period_cost"`
	YearlyBudget  int                         `json:"yearly_budget"`
}

// CostForecast projects cost per period over a date range
type CostForecast struct {
	Granularity models.Granularity `json:"granularity"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Buckets     []CostBucket       `json:"buckets"`
}

// ProjectCosts applies the budget rules to the per-period active headcount by
// employee type. PeriodCost scales the monthly cost to the bucket size: one
// month, a three-month quarter, or the yearly budget.
func ProjectCosts(members []models.TeamMember, rules []models.BudgetRule, start, end time.Time, g models.Granularity) (*CostForecast, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidForecastRange
	}

	forecast := &CostForecast{
		Granularity: g,
		Start:       start.Format(DateLayout),
		End:         end.Format(DateLayout),
	}

	for p := periodStart(start, g); !p.After(end); p = nextPeriod(p, g) {
		bucket := CostBucket{
			PeriodStart: p.Format(DateLayout),
			ByType:      make(map[models.EmployeeType]int),
		}
		for i := range members {
			if IsActiveAt(&members[i], p) {
				bucket.TotalMembers++
				bucket.ByType[members[i].EmployeeType]++
			}
		}
		for _, rule := range rules {
			count := bucket.ByType[rule.EmployeeType]
			bucket.MonthlyCost += rule.MonthlyCost * count
			bucket.YearlyBudget += rule.YearlyBudget * count
		}
		switch g {
		case models.GranularityQuarterly:
			bucket.PeriodCost = bucket.MonthlyCost * 3
		case models.GranularityYearly:
			bucket.PeriodCost = bucket.YearlyBudget
		default:
			bucket.PeriodCost = bucket.MonthlyCost
		}
		forecast.Buckets = append(forecast.Buckets, bucket)
	}

	return forecast, nil
}

// BudgetService computes cost rollups and cost forecasts
type BudgetService struct {
	memberRepo repository.TeamMemberRepositoryInterface
	budgetRepo repository.BudgetRuleRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(memberRepo repository.TeamMemberRepositoryInterface, budgetRepo repository.BudgetRuleRepositoryInterface) *BudgetService {
	return &BudgetService{
		memberRepo: memberRepo,
		budgetRepo: budgetRepo,
	}
}

// Rollup totals current costs across the whole member set
func (s *BudgetService) Rollup() (*BudgetRollup, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	rules, err := s.budgetRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load budget rules: %w", err)
	}
	rollup := RollupBudget(members, rules)
	return &rollup, nil
}

// Forecast projects costs per period over the requested range
func (s *BudgetService) Forecast(start, end time.Time, g models.Granularity) (*CostForecast, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	rules, err := s.budgetRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load budget rules: %w", err)
	}
	return ProjectCosts(members, rules, start, end, g)
}
