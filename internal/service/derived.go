package service

import (
	"strings"
	"time"

	"resource-planner-backend/internal/database/models"
)

// DateLayout is the wire and storage format for all planning dates
const DateLayout = "2006-01-02"

// Tenure thresholds, in days, for the auto-derived classification
const (
	tenureNewcomerDays = 180
	tenureVeteranDays  = 730
)

// ParseDate parses a YYYY-MM-DD planning date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// daysBetween counts whole calendar days from one date to another, ignoring
// the time of day on either side. Negative when `to` precedes `from`.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// Derived holds the attributes computed from a member's raw dates. A nil
// field means the underlying date is absent or unparsable: a nil
// DaysUntilExit reads as "never departing" everywhere it is consulted and is
// never coerced to zero.
type Derived struct {
	Age           *int `json:"age,omitempty"`
	TenureDays    *int `json:"tenure_days,omitempty"`
	DaysUntilExit *int `json:"days_until_exit,omitempty"`
}

// AgeYears computes full years between a date of birth and today, counting a
// year only once the birthday has passed.
func AgeYears(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// ComputeDerived calculates age, tenure and days-until-exit for one member.
// Each field fails independently: a bad date of birth only loses the age.
func ComputeDerived(m *models.TeamMember, today time.Time) Derived {
	var d Derived

	if m.DateOfBirth != nil {
		if dob, err := ParseDate(*m.DateOfBirth); err == nil {
			age := AgeYears(dob, today)
			d.Age = &age
		}
	}

	if start, err := ParseDate(m.StartDate); err == nil {
		tenure := daysBetween(start, today)
		d.TenureDays = &tenure
	}

	if m.PlannedExit != nil {
		if exit, err := ParseDate(*m.PlannedExit); err == nil {
			days := daysBetween(today, exit)
			d.DaysUntilExit = &days
		}
	}

	return d
}

// ClassifyTenure derives priority and knowledge-transfer status from tenure:
// newcomers still hold everything in their head, veterans are assumed handed
// over.
func ClassifyTenure(tenureDays int) (models.Priority, models.KnowledgeTransferStatus) {
	switch {
	case tenureDays < tenureNewcomerDays:
		return models.PriorityHigh, models.TransferNotStarted
	case tenureDays < tenureVeteranDays:
		return models.PriorityMedium, models.TransferInProgress
	default:
		return models.PriorityLow, models.TransferCompleted
	}
}

// memberDates parses the dates that decide whether a member is active.
// ok is false when the start date or a present planned exit fails to parse;
// such records are excluded from active-count computations without aborting
// the pass for anyone else.
func memberDates(m *models.TeamMember) (start time.Time, exit *time.Time, ok bool) {
	start, err := ParseDate(m.StartDate)
	if err != nil {
		return time.Time{}, nil, false
	}
	if m.PlannedExit != nil {
		e, err := ParseDate(*m.PlannedExit)
		if err != nil {
			return time.Time{}, nil, false
		}
		exit = &e
	}
	return start, exit, true
}

// IsActiveAt reports whether the member has started and not yet departed at
// the given date. The exit boundary is exclusive: a member exiting on p is no
// longer active on p.
func IsActiveAt(m *models.TeamMember, p time.Time) bool {
	start, exit, ok := memberDates(m)
	if !ok {
		return false
	}
	if start.After(p) {
		return false
	}
	return exit == nil || exit.After(p)
}

// DeclaredComponents splits the member's free-text components field into
// normalized (trimmed, lowercased) names. This is one of two independent
// membership signals; the other is the component's responsible list.
func DeclaredComponents(m *models.TeamMember) []string {
	var out []string
	for _, c := range strings.Split(m.Components, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// IsAssignedTo reports whether the member belongs to the component by either
// signal: the component name appears in the member's declared list, or the
// member's name appears in the component's responsible list. The two signals
// may disagree; they are ORed here and never reconciled.
func IsAssignedTo(m *models.TeamMember, component *models.PlanningComponent) bool {
	key := strings.ToLower(strings.TrimSpace(component.Name))
	for _, declared := range DeclaredComponents(m) {
		if declared == key {
			return true
		}
	}
	name := strings.TrimSpace(m.Name)
	for _, responsible := range component.Responsible {
		if strings.TrimSpace(responsible) == name {
			return true
		}
	}
	return false
}
