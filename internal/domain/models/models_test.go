package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraTypeLabels(t *testing.T) {
	assert.Equal(t, "tracking", CameraTypeTracking.Label())
	assert.Equal(t, "recognizing", CameraTypeRecognizing.Label())
	assert.Equal(t, "controlling", CameraTypeControlling.Label())
	assert.Equal(t, "unknown", CameraType(0).Label())
	assert.Equal(t, "unknown", CameraType(99).Label())
}

func TestCameraTypeValid(t *testing.T) {
	assert.True(t, CameraTypeTracking.Valid())
	assert.True(t, CameraTypeRecognizing.Valid())
	assert.True(t, CameraTypeControlling.Valid())
	assert.False(t, CameraType(0).Valid())
	assert.False(t, CameraType(4).Valid())
}

func TestLockTypeLabels(t *testing.T) {
	assert.Equal(t, "turnstile", LockTypeTourniquet.Label())
	assert.Equal(t, "lock", LockTypeLock.Label())
	assert.Equal(t, "unknown", LockType(0).Label())
}

func TestLockStateToggled(t *testing.T) {
	assert.Equal(t, LockStateOpened, LockStateClosed.Toggled())
	assert.Equal(t, LockStateClosed, LockStateOpened.Toggled())

	// a corrupt state normalizes to closed on the first toggle
	assert.Equal(t, LockStateClosed, LockState(0).Toggled())
	assert.Equal(t, LockStateClosed, LockState(7).Toggled())
}

func TestLockStateToggleIsInvolution(t *testing.T) {
	for _, s := range []LockState{LockStateOpened, LockStateClosed} {
		assert.Equal(t, s, s.Toggled().Toggled())
	}
}

func TestTimeOfDayValidate(t *testing.T) {
	valid := []TimeOfDay{"00:00", "08:30", "23:59"}
	for _, v := range valid {
		assert.NoError(t, v.Validate(), "expected %q to be valid", v)
	}

	invalid := []TimeOfDay{"", "24:00", "8:60", "noon", "08-30", "08:30:00"}
	for _, v := range invalid {
		assert.Error(t, v.Validate(), "expected %q to be invalid", v)
	}
}

func TestUserRoleLabel(t *testing.T) {
	assert.Equal(t, "guard", UserRoleGuard.Label())
	assert.Equal(t, "unknown", UserRole(0).Label())
}
