package service

import (
	"fmt"
	"sort"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/repository"
)

// Urgency bands for planned departures, in days until exit
const (
	urgencyExtremeDays = 90
	urgencyUrgentDays  = 180
	urgencyMonitorDays = 365
)

// DashboardService aggregates the headline numbers for the overview page
type DashboardService struct {
	memberRepo         repository.TeamMemberRepositoryInterface
	criticalWindowDays int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(memberRepo repository.TeamMemberRepositoryInterface, criticalWindowDays int) *DashboardService {
	return &DashboardService{
		memberRepo:         memberRepo,
		criticalWindowDays: criticalWindowDays,
	}
}

// DashboardMetrics are the headline counters on the overview page. Averages
// skip members whose underlying date is missing or unparsable.
type DashboardMetrics struct {
	TotalMembers         int     `json:"total_members"`
	CriticalCases        int     `json:"critical_cases"`
	CompletedTransfers   int     `json:"completed_transfers"`
	AverageTenureYears   float64 `json:"average_tenure_years"`
	AverageDaysUntilExit float64 `json:"average_days_until_exit"`
}

// CriticalExit is one member departing inside the critical window
type CriticalExit struct {
	Name                    string              `json:"name"`
	Role                    string              `json:"role"`
	Team                    string              `json:"team"`
	Components              string              `json:"components"`
	DaysUntilExit           int                 `json:"days_until_exit"`
	Priority                string              `json:"priority"`
	KnowledgeTransferStatus string              `json:"knowledge_transfer_status"`
	Urgency                 models.UrgencyLevel `json:"urgency"`
}

// Birthday is one member with a birthday in the requested month
type Birthday struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	DateOfBirth string `json:"date_of_birth"`
	Age         int    `json:"age"`
}

// Metrics computes the headline counters for the dashboard
func (s *DashboardService) Metrics(today time.Time) (*DashboardMetrics, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	metrics := &DashboardMetrics{TotalMembers: len(members)}
	tenureSum, tenureCount := 0, 0
	exitSum, exitCount := 0, 0

	for i := range members {
		if members[i].KnowledgeTransferStatus == models.TransferCompleted {
			metrics.CompletedTransfers++
		}
		derived := ComputeDerived(&members[i], today)
		if derived.TenureDays != nil {
			tenureSum += *derived.TenureDays
			tenureCount++
		}
		if derived.DaysUntilExit != nil {
			exitSum += *derived.DaysUntilExit
			exitCount++
			if *derived.DaysUntilExit < s.criticalWindowDays {
				metrics.CriticalCases++
			}
		}
	}

	if tenureCount > 0 {
		metrics.AverageTenureYears = float64(tenureSum) / float64(tenureCount) / 365.0
	}
	if exitCount > 0 {
		metrics.AverageDaysUntilExit = float64(exitSum) / float64(exitCount)
	}
	return metrics, nil
}

// CriticalExits lists the members departing inside the critical window,
// soonest first. Members without a planned exit never appear here.
func (s *DashboardService) CriticalExits(today time.Time) ([]CriticalExit, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	exits := []CriticalExit{}
	for i := range members {
		derived := ComputeDerived(&members[i], today)
		if derived.DaysUntilExit == nil || *derived.DaysUntilExit >= s.criticalWindowDays {
			continue
		}
		exits = append(exits, CriticalExit{
			Name:                    members[i].Name,
			Role:                    members[i].Role,
			Team:                    members[i].Team,
			Components:              members[i].Components,
			DaysUntilExit:           *derived.DaysUntilExit,
			Priority:                string(members[i].Priority),
			KnowledgeTransferStatus: string(members[i].KnowledgeTransferStatus),
			Urgency:                 urgencyFor(*derived.DaysUntilExit),
		})
	}

	sort.SliceStable(exits, func(a, b int) bool {
		return exits[a].DaysUntilExit < exits[b].DaysUntilExit
	})
	return exits, nil
}

// Birthdays lists the members whose birthday falls in the month of the given
// date, ordered by day of month
func (s *DashboardService) Birthdays(today time.Time) ([]Birthday, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	birthdays := []Birthday{}
	days := make(map[string]int)
	for i := range members {
		if members[i].DateOfBirth == nil {
			continue
		}
		dob, err := ParseDate(*members[i].DateOfBirth)
		if err != nil || dob.Month() != today.Month() {
			continue
		}
		birthdays = append(birthdays, Birthday{
			Name:        members[i].Name,
			Role:        members[i].Role,
			DateOfBirth: *members[i].DateOfBirth,
			Age:         AgeYears(dob, today),
		})
		days[members[i].Name] = dob.Day()
	}

	sort.SliceStable(birthdays, func(a, b int) bool {
		return days[birthdays[a].Name] < days[birthdays[b].Name]
	})
	return birthdays, nil
}

func urgencyFor(daysUntilExit int) models.UrgencyLevel {
	switch {
	case daysUntilExit < urgencyExtremeDays:
		return models.UrgencyExtreme
	case daysUntilExit < urgencyUrgentDays:
		return models.UrgencyUrgent
	default:
		return models.UrgencyMonitor
	}
}
