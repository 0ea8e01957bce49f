package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock "HH:MM" value with no date component. Time-sheet
// windows are inert data: nothing in this service evaluates them against the
// current time.
type TimeOfDay string

// Validate checks the "HH:MM" format.
func (t TimeOfDay) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("invalid time of day %q: want HH:MM", string(t))
	}
	return nil
}

// TourniquetTimeSheet is an intended access window for a single employee
// against a specific tourniquet lock.
type TourniquetTimeSheet struct {
	BaseModel
	EmployeeID   uint      `gorm:"index;not null" json:"employee_id"`
	TourniquetID uint      `gorm:"index;not null" json:"tourniquet_id"`
	StartTime    TimeOfDay `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      TimeOfDay `gorm:"type:varchar(5);not null" json:"end_time"`

	// Relations
	Employee   *Employee       `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	Tourniquet *TourniquetLock `gorm:"foreignKey:TourniquetID;constraint:OnDelete:CASCADE" json:"tourniquet,omitempty"`
}

// EmployeeGroupTimeSheet is an intended access window for a whole employee
// group against a specific tourniquet lock.
type EmployeeGroupTimeSheet struct {
	BaseModel
	EmployeeGroupID uint      `gorm:"index;not null" json:"employee_group_id"`
	TourniquetID    uint      `gorm:"index;not null" json:"tourniquet_id"`
	StartTime       TimeOfDay `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         TimeOfDay `gorm:"type:varchar(5);not null" json:"end_time"`

	// Relations
	EmployeeGroup *EmployeeGroup  `gorm:"foreignKey:EmployeeGroupID;constraint:OnDelete:CASCADE" json:"employee_group,omitempty"`
	Tourniquet    *TourniquetLock `gorm:"foreignKey:TourniquetID;constraint:OnDelete:CASCADE" json:"tourniquet,omitempty"`
}
