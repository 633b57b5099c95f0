package models

// KnowledgeTransferStatus represents how far the handover of a member's
// knowledge has progressed. The values match the labels used on the dashboard.
type KnowledgeTransferStatus string

const (
	TransferNotStarted KnowledgeTransferStatus = "Not Started"
	TransferInProgress KnowledgeTransferStatus = "In Progress"
	TransferCompleted  KnowledgeTransferStatus = "Completed"
)

// Priority represents the staffing-replacement priority of a member
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// EmployeeType classifies members for cost accounting
type EmployeeType string

const (
	EmployeeTypeInternal EmployeeType = "Internal"
	EmployeeTypeLeadCost EmployeeType = "LeadCost"
	EmployeeTypeExternal EmployeeType = "External"
)

// IsValid reports whether the value is a known employee type
func (e EmployeeType) IsValid() bool {
	switch e {
	case EmployeeTypeInternal, EmployeeTypeLeadCost, EmployeeTypeExternal:
		return true
	}
	return false
}

// StaffingStatus classifies a component's coverage relative to its required headcount
type StaffingStatus string

const (
	StaffingUnstaffed          StaffingStatus = "UNSTAFFED"
	StaffingUnderstaffedSingle StaffingStatus = "UNDERSTAFFED_SINGLE"
	StaffingUnderstaffed       StaffingStatus = "UNDERSTAFFED"
	StaffingOK                 StaffingStatus = "OK"
)

// SeverityRank orders staffing statuses for display, worst first.
// Every non-OK status ranks before OK.
func (s StaffingStatus) SeverityRank() int {
	switch s {
	case StaffingUnstaffed:
		return 0
	case StaffingUnderstaffedSingle:
		return 1
	case StaffingUnderstaffed:
		return 2
	default:
		return 3
	}
}

// Granularity selects the bucket size of a forecast
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// ClassificationMode selects whether priority and knowledge-transfer status are
// maintained by hand or recomputed from tenure on every evaluation pass
type ClassificationMode string

const (
	ClassificationManual ClassificationMode = "manual"
	ClassificationAuto   ClassificationMode = "auto"
)

// UrgencyLevel labels a planned departure by how soon it happens
type UrgencyLevel string

const (
	UrgencyExtreme UrgencyLevel = "ExtremelyUrgent"
	UrgencyUrgent  UrgencyLevel = "Urgent"
	UrgencyMonitor UrgencyLevel = "Monitor"
)
