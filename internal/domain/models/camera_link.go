package models

// CameraToTourniquetLock is the join record declaring which cameras have
// visual coverage of a given tourniquet lock.
type CameraToTourniquetLock struct {
	BaseModel
	TourniquetID uint `gorm:"index;not null" json:"tourniquet_id"`

	// Relations
	Tourniquet *TourniquetLock `gorm:"foreignKey:TourniquetID;constraint:OnDelete:CASCADE" json:"tourniquet,omitempty"`
	Cameras    []Camera        `gorm:"many2many:camera_link_cameras;" json:"cameras,omitempty"`
}

func (CameraToTourniquetLock) TableName() string {
	return "camera_to_tourniquet_locks"
}
