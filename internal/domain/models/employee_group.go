package models

// EmployeeGroup represents a named set of employees that share access rules.
type EmployeeGroup struct {
	BaseModel
	Title string `gorm:"type:varchar(256);not null" json:"title"`

	// Relations
	Employees []Employee `gorm:"many2many:employee_group_members;" json:"employees,omitempty"`
}
