package service_test

import (
	"testing"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := service.ParseDate(s)
	require.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }

func TestAgeYears(t *testing.T) {
	dob := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		today string
		want  int
	}{
		{"day before birthday", "2024-06-14", 23},
		{"on birthday", "2024-06-15", 24},
		{"day after birthday", "2024-06-16", 24},
		{"earlier month", "2024-03-01", 23},
		{"later month", "2024-12-01", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.AgeYears(dob, date(t, tt.today)))
		})
	}
}

func TestComputeDerived(t *testing.T) {
	today := date(t, "2024-06-01")

	t.Run("all fields present", func(t *testing.T) {
		member := &models.TeamMember{
			Name:        "Jane Doe",
			StartDate:   "2024-01-01",
			PlannedExit: strPtr("2024-12-31"),
			DateOfBirth: strPtr("1990-05-10"),
		}
		derived := service.ComputeDerived(member, today)
		require.NotNil(t, derived.Age)
		require.NotNil(t, derived.TenureDays)
		require.NotNil(t, derived.DaysUntilExit)
		assert.Equal(t, 34, *derived.Age)
		assert.Equal(t, 152, *derived.TenureDays)
		assert.Equal(t, 213, *derived.DaysUntilExit)
	})

	t.Run("missing exit means no days until exit", func(t *testing.T) {
		member := &models.TeamMember{StartDate: "2024-01-01"}
		derived := service.ComputeDerived(member, today)
		assert.Nil(t, derived.DaysUntilExit)
		assert.Nil(t, derived.Age)
	})

	t.Run("bad date of birth only loses the age", func(t *testing.T) {
		member := &models.TeamMember{
			StartDate:   "2024-01-01",
			PlannedExit: strPtr("2024-12-31"),
			DateOfBirth: strPtr("not-a-date"),
		}
		derived := service.ComputeDerived(member, today)
		assert.Nil(t, derived.Age)
		assert.NotNil(t, derived.TenureDays)
		assert.NotNil(t, derived.DaysUntilExit)
	})

	t.Run("future start yields negative tenure", func(t *testing.T) {
		member := &models.TeamMember{StartDate: "2024-07-01"}
		derived := service.ComputeDerived(member, today)
		require.NotNil(t, derived.TenureDays)
		assert.Equal(t, -30, *derived.TenureDays)
	})

	t.Run("past exit yields negative days until exit", func(t *testing.T) {
		member := &models.TeamMember{
			StartDate:   "2020-01-01",
			PlannedExit: strPtr("2024-05-01"),
		}
		derived := service.ComputeDerived(member, today)
		require.NotNil(t, derived.DaysUntilExit)
		assert.Equal(t, -31, *derived.DaysUntilExit)
	})
}

func TestClassifyTenure(t *testing.T) {
	tests := []struct {
		name         string
		tenureDays   int
		wantPriority models.Priority
		wantStatus   models.KnowledgeTransferStatus
	}{
		{"newcomer", 100, models.PriorityHigh, models.TransferNotStarted},
		{"just under newcomer boundary", 179, models.PriorityHigh, models.TransferNotStarted},
		{"on newcomer boundary", 180, models.PriorityMedium, models.TransferInProgress},
		{"established", 400, models.PriorityMedium, models.TransferInProgress},
		{"on veteran boundary", 730, models.PriorityLow, models.TransferCompleted},
		{"veteran", 1000, models.PriorityLow, models.TransferCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, status := service.ClassifyTenure(tt.tenureDays)
			assert.Equal(t, tt.wantPriority, priority)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestIsActiveAt(t *testing.T) {
	member := &models.TeamMember{
		StartDate:   "2024-01-01",
		PlannedExit: strPtr("2024-07-01"),
	}

	assert.False(t, service.IsActiveAt(member, date(t, "2023-12-31")), "not started yet")
	assert.True(t, service.IsActiveAt(member, date(t, "2024-01-01")), "active from start date")
	assert.True(t, service.IsActiveAt(member, date(t, "2024-06-30")), "active day before exit")
	assert.False(t, service.IsActiveAt(member, date(t, "2024-07-01")), "exit day is exclusive")

	noExit := &models.TeamMember{StartDate: "2024-01-01"}
	assert.True(t, service.IsActiveAt(noExit, date(t, "2030-01-01")), "no exit means active indefinitely")

	badStart := &models.TeamMember{StartDate: "garbage"}
	assert.False(t, service.IsActiveAt(badStart, date(t, "2024-06-01")))
}

func TestDeclaredComponents(t *testing.T) {
	member := &models.TeamMember{Components: " Backend , Cloud,, frontend "}
	assert.Equal(t, []string{"backend", "cloud", "frontend"}, service.DeclaredComponents(member))

	empty := &models.TeamMember{Components: ""}
	assert.Empty(t, service.DeclaredComponents(empty))
}

func TestIsAssignedTo(t *testing.T) {
	component := &models.PlanningComponent{
		Name:        "Backend",
		Responsible: []string{"Jane Doe"},
	}

	declared := &models.TeamMember{Name: "Max Muster", Components: "backend, cloud"}
	assert.True(t, service.IsAssignedTo(declared, component), "declared signal matches case-insensitively")

	responsible := &models.TeamMember{Name: "Jane Doe", Components: "Frontend"}
	assert.True(t, service.IsAssignedTo(responsible, component), "responsible signal matches by name")

	neither := &models.TeamMember{Name: "Erik Wagner", Components: "Frontend"}
	assert.False(t, service.IsAssignedTo(neither, component))
}
