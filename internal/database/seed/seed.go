// Package seed loads member, component and budget records into the store,
// either from a yaml file or from the built-in demo dataset.
package seed

import (
	"fmt"
	"os"

	"resource-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Data is the on-disk shape of a seed file
type Data struct {
	Members     []MemberData     `yaml:"members"`
	Components  []ComponentData  `yaml:"components"`
	BudgetRules []BudgetRuleData `yaml:"budget_rules"`
}

// MemberData directly matches the team_members schema
type MemberData struct {
	Name                    string  `yaml:"name"`
	Role                    string  `yaml:"role"`
	Components              string  `yaml:"components"`
	StartDate               string  `yaml:"start_date"`
	PlannedExit             *string `yaml:"planned_exit,omitempty"`
	KnowledgeTransferStatus string  `yaml:"knowledge_transfer_status"`
	Priority                string  `yaml:"priority"`
	DateOfBirth             *string `yaml:"date_of_birth,omitempty"`
	Team                    string  `yaml:"team"`
	EmployeeType            string  `yaml:"employee_type"`
}

// ComponentData directly matches the planning_components schema
type ComponentData struct {
	Name                 string   `yaml:"name"`
	Responsible          []string `yaml:"responsible"`
	RequiredHeadcount    int      `yaml:"required_headcount"`
	TransferWindowMonths int      `yaml:"transfer_window_months"`
	Product              string   `yaml:"product,omitempty"`
}

// BudgetRuleData directly matches the budget_rules schema
type BudgetRuleData struct {
	EmployeeType string `yaml:"employee_type"`
	MonthlyCost  int    `yaml:"monthly_cost"`
	YearlyBudget int    `yaml:"yearly_budget"`
}

// FromFile loads a yaml seed file into the store
func FromFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	return Load(db, &data)
}

// Load writes the seed records into the store
func Load(db *gorm.DB, data *Data) error {
	for _, m := range data.Members {
		member := models.TeamMember{
			Name:                    m.Name,
			Role:                    m.Role,
			Components:              m.Components,
			StartDate:               m.StartDate,
			PlannedExit:             m.PlannedExit,
			KnowledgeTransferStatus: models.KnowledgeTransferStatus(m.KnowledgeTransferStatus),
			Priority:                models.Priority(m.Priority),
			DateOfBirth:             m.DateOfBirth,
			Team:                    m.Team,
			EmployeeType:            models.EmployeeType(m.EmployeeType),
		}
		if member.Team == "" {
			member.Team = "Unassigned"
		}
		if member.EmployeeType == "" {
			member.EmployeeType = models.EmployeeTypeInternal
		}
		if err := db.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to seed member %s: %w", m.Name, err)
		}
	}

	for _, c := range data.Components {
		component := models.PlanningComponent{
			Name:                 c.Name,
			Responsible:          c.Responsible,
			RequiredHeadcount:    c.RequiredHeadcount,
			TransferWindowMonths: c.TransferWindowMonths,
			Product:              c.Product,
		}
		if component.RequiredHeadcount == 0 {
			component.RequiredHeadcount = 1
		}
		if component.TransferWindowMonths == 0 {
			component.TransferWindowMonths = 6
		}
		if err := db.Create(&component).Error; err != nil {
			return fmt.Errorf("failed to seed component %s: %w", c.Name, err)
		}
	}

	for _, r := range data.BudgetRules {
		rule := models.BudgetRule{
			EmployeeType: models.EmployeeType(r.EmployeeType),
			MonthlyCost:  r.MonthlyCost,
			YearlyBudget: r.YearlyBudget,
		}
		if err := db.Where("employee_type = ?", rule.EmployeeType).
			Assign(models.BudgetRule{MonthlyCost: rule.MonthlyCost, YearlyBudget: rule.YearlyBudget}).
			FirstOrCreate(&rule).Error; err != nil {
			return fmt.Errorf("failed to seed budget rule %s: %w", r.EmployeeType, err)
		}
	}

	return nil
}

// Demo loads the built-in demo dataset
func Demo(db *gorm.DB) error {
	return Load(db, demoData())
}

func strPtr(s string) *string { return &s }

func demoData() *Data {
	return &Data{
		Members: []MemberData{
			{Name: "Alice Schmidt", Role: "Developer", Components: "DOKU", StartDate: "2020-01-01", PlannedExit: strPtr("2026-12-31"), KnowledgeTransferStatus: "Not Started", Priority: "High", DateOfBirth: strPtr("1994-05-15"), Team: "CS1", EmployeeType: "Internal"},
			{Name: "Bob Weber", Role: "Tester", Components: "Generell", StartDate: "2021-03-15", PlannedExit: strPtr("2029-06-30"), KnowledgeTransferStatus: "In Progress", Priority: "Critical", DateOfBirth: strPtr("1976-08-20"), Team: "CS2", EmployeeType: "Internal"},
			{Name: "Charlie Mueller", Role: "System Architect", Components: "iBS", StartDate: "2019-06-01", PlannedExit: strPtr("2025-12-30"), KnowledgeTransferStatus: "Completed", Priority: "Medium", DateOfBirth: strPtr("1974-03-10"), Team: "CS3", EmployeeType: "LeadCost"},
			{Name: "Diana Fischer", Role: "Requirements Engineer", Components: "TMS", StartDate: "2022-01-10", PlannedExit: strPtr("2031-09-15"), KnowledgeTransferStatus: "Not Started", Priority: "High", DateOfBirth: strPtr("1969-11-25"), Team: "CS4", EmployeeType: "Internal"},
			{Name: "Erik Wagner", Role: "Scrum Master", Components: "Kundenprojekte", StartDate: "2021-08-20", PlannedExit: strPtr("2035-11-30"), KnowledgeTransferStatus: "In Progress", Priority: "Medium", DateOfBirth: strPtr("1997-02-14"), Team: "CS5", EmployeeType: "Internal"},
			{Name: "Markus Becker", Role: "DevOps Engineer", Components: "Backend, Cloud", StartDate: "2023-02-11", PlannedExit: strPtr("2028-12-15"), KnowledgeTransferStatus: "Not Started", Priority: "Medium", DateOfBirth: strPtr("1997-07-30"), Team: "CS1", EmployeeType: "External"},
			{Name: "Sophie Krause", Role: "Business Analyst", Components: "Finanzen, Generell", StartDate: "2018-08-30", PlannedExit: strPtr("2027-03-12"), KnowledgeTransferStatus: "Completed", Priority: "High", DateOfBirth: strPtr("1985-04-05"), Team: "CS2", EmployeeType: "Internal"},
			{Name: "Julia Wagner", Role: "UI/UX Designer", Components: "Frontend, TMS", StartDate: "2021-05-18", PlannedExit: strPtr("2026-08-29"), KnowledgeTransferStatus: "In Progress", Priority: "Critical", DateOfBirth: strPtr("1990-09-12"), Team: "CS3", EmployeeType: "External"},
			{Name: "Lars Richter", Role: "Test Automation", Components: "Testing, iBS", StartDate: "2019-11-04", PlannedExit: strPtr("2025-11-04"), KnowledgeTransferStatus: "Not Started", Priority: "Medium", DateOfBirth: strPtr("1981-12-18"), Team: "CS4", EmployeeType: "Internal"},
			{Name: "Heike Zimmermann", Role: "Product Owner", Components: "Kommunikation, Kundenprojekte", StartDate: "2017-03-14", PlannedExit: strPtr("2026-09-01"), KnowledgeTransferStatus: "Completed", Priority: "High", DateOfBirth: strPtr("1973-06-22"), Team: "CS5", EmployeeType: "LeadCost"},
		},
		Components: []ComponentData{
			{Name: "DOKU", Responsible: []string{"Alice Schmidt"}, RequiredHeadcount: 1, TransferWindowMonths: 6},
			{Name: "iBS", Responsible: []string{"Charlie Mueller", "Lars Richter"}, RequiredHeadcount: 2, TransferWindowMonths: 9, Product: "Insurance Suite"},
			{Name: "TMS", Responsible: []string{"Diana Fischer", "Julia Wagner"}, RequiredHeadcount: 2, TransferWindowMonths: 6, Product: "Transport"},
			{Name: "Backend", Responsible: []string{"Markus Becker"}, RequiredHeadcount: 2, TransferWindowMonths: 6},
			{Name: "Frontend", Responsible: []string{"Julia Wagner"}, RequiredHeadcount: 1, TransferWindowMonths: 3},
			{Name: "Kundenprojekte", Responsible: []string{"Erik Wagner", "Heike Zimmermann"}, RequiredHeadcount: 2, TransferWindowMonths: 12},
		},
	}
}
