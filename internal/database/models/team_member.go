package models

// TeamMember represents one person on the planning board.
//
// Date fields are stored as YYYY-MM-DD strings and parsed where they are
// consumed: an unparsable date on an existing record must exclude that record
// from the affected computation instead of failing the whole pass, so the
// store has to be able to hold one. PlannedExit and DateOfBirth are nullable;
// an absent PlannedExit means "no planned departure".
type TeamMember struct {
	BaseModel
	Name                    string                  `json:"name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Role                    string                  `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	Components              string                  `json:"components" gorm:"size:500"` // free-text, comma-separated component names
	StartDate               string                  `json:"start_date" gorm:"not null;size:10" validate:"required"`
	PlannedExit             *string                 `json:"planned_exit,omitempty" gorm:"size:10"`
	KnowledgeTransferStatus KnowledgeTransferStatus `json:"knowledge_transfer_status" gorm:"type:varchar(20);not null;default:'Not Started'"`
	Priority                Priority                `json:"priority" gorm:"type:varchar(10);not null;default:'Medium'"`
	DateOfBirth             *string                 `json:"date_of_birth,omitempty" gorm:"size:10"`
	Team                    string                  `json:"team" gorm:"size:50;not null;default:'Unassigned'"`
	EmployeeType            EmployeeType            `json:"employee_type" gorm:"type:varchar(20);not null;default:'Internal'"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
