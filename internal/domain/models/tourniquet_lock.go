package models

// LockType distinguishes the two device kinds behind a TourniquetLock record.
type LockType int

const (
	LockTypeTourniquet LockType = 1
	LockTypeLock       LockType = 2
)

// Label returns the human-readable label for the lock type.
func (t LockType) Label() string {
	switch t {
	case LockTypeTourniquet:
		return "turnstile"
	case LockTypeLock:
		return "lock"
	default:
		return "unknown"
	}
}

// Valid reports whether the value is one of the declared lock types.
func (t LockType) Valid() bool {
	return t == LockTypeTourniquet || t == LockTypeLock
}

// LockState is the physical state of the device. New records default to closed.
type LockState int

const (
	LockStateOpened LockState = 1
	LockStateClosed LockState = 2
)

// Label returns the human-readable label for the state.
func (s LockState) Label() string {
	switch s {
	case LockStateOpened:
		return "opened"
	case LockStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Toggled returns the opposite state. Any value other than opened (including
// a corrupt one) toggles to opened's counterpart path: closed maps to opened,
// everything else normalizes to closed.
func (s LockState) Toggled() LockState {
	if s == LockStateClosed {
		return LockStateOpened
	}
	return LockStateClosed
}

// TourniquetLock represents a turnstile or lock device at a location.
// The IP address is inventory data only; no device protocol is implemented.
type TourniquetLock struct {
	BaseModel
	LockType   LockType  `gorm:"type:int;index;not null;default:1" json:"lock_type"`
	State      LockState `gorm:"type:int;not null;default:2" json:"state"`
	IPAddress  string    `gorm:"type:varchar(32)" json:"ip_address"`
	LocationID uint      `gorm:"index;not null" json:"location_id"`

	// Relations
	Location *Location                `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Links    []CameraToTourniquetLock `gorm:"foreignKey:TourniquetID" json:"links,omitempty"`
}
