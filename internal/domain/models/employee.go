package models

// Employee represents a person tracked by the access-control system.
// Photo stores the uploaded image path, not the image bytes.
type Employee struct {
	BaseModel
	FullName string `gorm:"type:varchar(512);not null" json:"full_name"`
	Photo    string `gorm:"type:varchar(255)" json:"photo"`

	// Relations
	Groups []EmployeeGroup `gorm:"many2many:employee_group_members;" json:"groups,omitempty"`
}
