package models

// Location represents a physical site that cameras and tourniquet locks are
// installed at. Coordinates are stored as a free-form "lat,lon" string.
type Location struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Coordinates string `gorm:"type:varchar(64)" json:"coordinates"`

	// Relations
	Cameras         []Camera         `gorm:"foreignKey:LocationID" json:"cameras,omitempty"`
	TourniquetLocks []TourniquetLock `gorm:"foreignKey:LocationID" json:"tourniquet_locks,omitempty"`
}
