package service

import (
	"bytes"
	"fmt"
	"time"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Team Members"

// ExportService renders the member list as a spreadsheet
type ExportService struct {
	memberRepo repository.TeamMemberRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(memberRepo repository.TeamMemberRepositoryInterface) *ExportService {
	return &ExportService{memberRepo: memberRepo}
}

// MembersWorkbook builds an xlsx workbook with one row per member, raw fields
// followed by the derived ones. An empty member list is an error, not an
// empty file.
func (s *ExportService) MembersWorkbook(today time.Time) (*bytes.Buffer, string, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load members: %w", err)
	}
	if len(members) == 0 {
		return nil, "", apperrors.ErrNoDataToExport
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheetName)

	headers := []interface{}{
		"Name", "Role", "Team", "Employee Type", "Components",
		"Start Date", "Planned Exit", "Date of Birth",
		"Knowledge Transfer Status", "Priority",
		"Age", "Tenure Days", "Days Until Exit",
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return nil, "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range members {
		m := &members[i]
		derived := ComputeDerived(m, today)
		row := []interface{}{
			m.Name, m.Role, m.Team, string(m.EmployeeType), m.Components,
			m.StartDate, stringOrEmpty(m.PlannedExit), stringOrEmpty(m.DateOfBirth),
			string(m.KnowledgeTransferStatus), string(m.Priority),
			intOrEmpty(derived.Age), intOrEmpty(derived.TenureDays), intOrEmpty(derived.DaysUntilExit),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write member row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("team_members_%s.xlsx", today.Format(DateLayout))
	return buf, filename, nil
}

func stringOrEmpty(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
