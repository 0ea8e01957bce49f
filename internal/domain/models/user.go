package models

// UserRole is the optional role attached to an account.
type UserRole int

const (
	UserRoleGuard UserRole = 1
)

// Label returns the human-readable label for the role.
func (r UserRole) Label() string {
	if r == UserRoleGuard {
		return "guard"
	}
	return "unknown"
}

// User represents an authenticatable account of the admin interface.
// A user may be assigned cameras; the detail view is built from that set.
type User struct {
	BaseModel
	Username string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Password string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Name     string    `gorm:"type:varchar(255)" json:"name"`
	Role     *UserRole `gorm:"type:int" json:"role,omitempty"`
	IsAdmin  bool      `gorm:"not null;default:false" json:"is_admin"`

	// Relations
	Cameras []Camera `gorm:"many2many:user_cameras;" json:"cameras,omitempty"`
}
