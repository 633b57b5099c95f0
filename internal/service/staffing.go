package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/repository"
)

// daysPerTransferMonth converts a component's transfer window from months to
// days for the risk comparison
const daysPerTransferMonth = 30

// ComponentStaffing describes one component's coverage
type ComponentStaffing struct {
	Component         string                `json:"component"`
	Product           string                `json:"product,omitempty"`
	Status            models.StaffingStatus `json:"status"`
	ActiveCount       int                   `json:"active_count"`
	RequiredHeadcount int                   `json:"required_headcount"`
	Responsible       []string              `json:"responsible"`
}

// TransferRisk flags a responsible person who departs before their
// component's knowledge-transfer window can complete
type TransferRisk struct {
	Component            string `json:"component"`
	Person               string `json:"person"`
	DaysUntilExit        int    `json:"days_until_exit"`
	RequiredTransferDays int    `json:"required_transfer_days"`
}

// StaffingReport is the full evaluator output: per-component staffing sorted
// worst-first, plus the flat transfer-risk list across all components
type StaffingReport struct {
	GeneratedFor  string              `json:"generated_for"` // evaluation date
	Components    []ComponentStaffing `json:"components"`
	TransferRisks []TransferRisk      `json:"transfer_risks"`
}

// EvaluateStaffing computes staffing status and transfer risk for every
// component against the full member set. It reads the records and mutates
// nothing; running it twice on the same data yields identical output.
//
// Staffing counts only currently active members, but transfer risk is
// evaluated for every responsible name regardless of activity: someone who
// already left the active headcount still holds undocumented knowledge. A
// responsible name with no member record contributes nothing and is logged as
// a missing reference.
func EvaluateStaffing(members []models.TeamMember, components []models.PlanningComponent, today time.Time, log *logger.Logger) StaffingReport {
	report := StaffingReport{
		GeneratedFor:  today.Format(DateLayout),
		Components:    make([]ComponentStaffing, 0, len(components)),
		TransferRisks: []TransferRisk{},
	}

	byName := make(map[string]*models.TeamMember, len(members))
	for i := range members {
		byName[strings.TrimSpace(members[i].Name)] = &members[i]
	}

	for i := range components {
		component := &components[i]

		activeCount := 0
		for j := range members {
			if IsAssignedTo(&members[j], component) && IsActiveAt(&members[j], today) {
				activeCount++
			}
		}

		status := models.StaffingOK
		switch {
		case activeCount == 0:
			status = models.StaffingUnstaffed
		case activeCount == 1 && activeCount < component.RequiredHeadcount:
			status = models.StaffingUnderstaffedSingle
		case activeCount < component.RequiredHeadcount:
			status = models.StaffingUnderstaffed
		}

		report.Components = append(report.Components, ComponentStaffing{
			Component:         component.Name,
			Product:           component.Product,
			Status:            status,
			ActiveCount:       activeCount,
			RequiredHeadcount: component.RequiredHeadcount,
			Responsible:       append([]string{}, component.Responsible...),
		})

		requiredDays := component.TransferWindowMonths * daysPerTransferMonth
		for _, name := range component.Responsible {
			member, found := byName[strings.TrimSpace(name)]
			if !found {
				if log != nil {
					log.WithFields(map[string]interface{}{
						"component":   component.Name,
						"responsible": name,
					}).Warn("responsible person has no member record")
				}
				continue
			}
			derived := ComputeDerived(member, today)
			if derived.DaysUntilExit == nil {
				// no planned departure, nothing to hand over in a hurry
				continue
			}
			if *derived.DaysUntilExit < requiredDays {
				report.TransferRisks = append(report.TransferRisks, TransferRisk{
					Component:            component.Name,
					Person:               member.Name,
					DaysUntilExit:        *derived.DaysUntilExit,
					RequiredTransferDays: requiredDays,
				})
			}
		}
	}

	sort.SliceStable(report.Components, func(a, b int) bool {
		ra, rb := report.Components[a].Status.SeverityRank(), report.Components[b].Status.SeverityRank()
		if ra != rb {
			return ra < rb
		}
		return report.Components[a].Component < report.Components[b].Component
	})

	return report
}

// StaffingService evaluates staffing and knowledge-transfer risk over the
// current record set
type StaffingService struct {
	memberRepo    repository.TeamMemberRepositoryInterface
	componentRepo repository.PlanningComponentRepositoryInterface
	mode          models.ClassificationMode
	log           *logger.Logger
}

// NewStaffingService creates a new staffing service
func NewStaffingService(memberRepo repository.TeamMemberRepositoryInterface, componentRepo repository.PlanningComponentRepositoryInterface, mode models.ClassificationMode, log *logger.Logger) *StaffingService {
	return &StaffingService{
		memberRepo:    memberRepo,
		componentRepo: componentRepo,
		mode:          mode,
		log:           log,
	}
}

// Report runs one full evaluation pass over the record set. In auto
// classification mode the pass first overwrites every member's priority and
// knowledge-transfer status from tenure; manual edits to those fields do not
// survive the next pass in that mode.
func (s *StaffingService) Report(today time.Time) (*StaffingReport, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	if s.mode == models.ClassificationAuto {
		if err := s.reclassify(members, today); err != nil {
			return nil, err
		}
	}

	components, err := s.componentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	report := EvaluateStaffing(members, components, today, s.log)
	return &report, nil
}

// reclassify applies the tenure-derived classification to every member and
// persists the changed ones. Members whose start date does not parse keep
// their stored classification.
func (s *StaffingService) reclassify(members []models.TeamMember, today time.Time) error {
	for i := range members {
		derived := ComputeDerived(&members[i], today)
		if derived.TenureDays == nil {
			if s.log != nil {
				s.log.WithField("member", members[i].Name).Warn("unparsable start date, skipping reclassification")
			}
			continue
		}
		priority, status := ClassifyTenure(*derived.TenureDays)
		if members[i].Priority == priority && members[i].KnowledgeTransferStatus == status {
			continue
		}
		members[i].Priority = priority
		members[i].KnowledgeTransferStatus = status
		if err := s.memberRepo.Update(&members[i]); err != nil {
			return fmt.Errorf("failed to reclassify member %s: %w", members[i].Name, err)
		}
	}
	return nil
}
