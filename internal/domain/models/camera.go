package models

// CameraType is a tagged enum: the integer value is what the store keeps,
// the canonical label is resolved through Label rather than reflection.
type CameraType int

const (
	CameraTypeTracking    CameraType = 1
	CameraTypeRecognizing CameraType = 2
	CameraTypeControlling CameraType = 3
)

// Label returns the human-readable label for the camera type.
func (t CameraType) Label() string {
	switch t {
	case CameraTypeTracking:
		return "tracking"
	case CameraTypeRecognizing:
		return "recognizing"
	case CameraTypeControlling:
		return "controlling"
	default:
		return "unknown"
	}
}

// Valid reports whether the value is one of the declared camera types.
func (t CameraType) Valid() bool {
	return t >= CameraTypeTracking && t <= CameraTypeControlling
}

// Camera represents a surveillance camera installed at a location.
// The IP address is stored for inventory purposes only and is never dialed.
type Camera struct {
	BaseModel
	Type       CameraType `gorm:"type:int;not null;default:1" json:"type"`
	IPAddress  string     `gorm:"type:varchar(32)" json:"ip_address"`
	LocationID uint       `gorm:"index;not null" json:"location_id"`

	// Relations
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Users    []User    `gorm:"many2many:user_cameras;" json:"users,omitempty"`
}
