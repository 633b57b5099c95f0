package models

// PlanningComponent is a named unit of responsibility (a product module) with
// an explicit list of responsible members and a staffing requirement.
//
// Responsible holds member names, not foreign keys: the original board lets a
// responsible person be deleted from the member list without touching the
// component, and the evaluator treats such dangling names as a warning, not an
// error. The list is ordered as entered.
type PlanningComponent struct {
	BaseModel
	Name                 string   `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Responsible          []string `json:"responsible" gorm:"serializer:json" validate:"required,min=1"`
	RequiredHeadcount    int      `json:"required_headcount" gorm:"not null;default:1" validate:"min=1"`
	TransferWindowMonths int      `json:"transfer_window_months" gorm:"not null;default:6" validate:"min=1"`
	Product              string   `json:"product,omitempty" gorm:"size:100"`
}

// TableName returns the table name for PlanningComponent
func (PlanningComponent) TableName() string {
	return "planning_components"
}
