package services

import (
	"sync"
	"testing"

	"uztk-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLockDefaultsToClosed(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Main entrance")

	lock := &models.TourniquetLock{
		LockType:   models.LockTypeTourniquet,
		LocationID: location.ID,
	}
	require.NoError(t, svc.CreateLock(lock))

	stored, err := svc.GetLockByID(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateClosed, stored.State)
	assert.NotEmpty(t, stored.UUID)
}

func TestCreateLockRejectsInvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Main entrance")

	lock := &models.TourniquetLock{
		LockType:   models.LockType(9),
		LocationID: location.ID,
	}
	assert.Error(t, svc.CreateLock(lock))
}

func TestCreateLockRejectsUnknownLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)

	lock := &models.TourniquetLock{
		LockType:   models.LockTypeLock,
		LocationID: 42,
	}
	assert.Error(t, svc.CreateLock(lock))
}

func TestToggleLockFlipsAndPersists(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Warehouse")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	toggled, err := svc.ToggleLock(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateOpened, toggled.State)

	stored, err := svc.GetLockByID(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateOpened, stored.State)
}

func TestToggleLockTwiceRestoresState(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Warehouse")
	lock := seedLock(t, db, location.ID, models.LockStateOpened)

	_, err := svc.ToggleLock(lock.ID)
	require.NoError(t, err)
	again, err := svc.ToggleLock(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateOpened, again.State)
}

func TestToggleLockNormalizesCorruptState(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Warehouse")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	// corrupt the stored state behind the service's back
	require.NoError(t, db.Model(&models.TourniquetLock{}).Where("id = ?", lock.ID).Update("state", 7).Error)

	toggled, err := svc.ToggleLock(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateClosed, toggled.State)
}

func TestToggleUnknownLockLeavesStoreUnmodified(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Warehouse")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	_, err := svc.ToggleLock(lock.ID + 100)
	assert.Error(t, err)

	stored, err := svc.GetLockByID(lock.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LockStateClosed, stored.State)
}

func TestDeleteLockCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)
	location := seedLocation(t, db, "Warehouse")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	camera := seedCamera(t, db, location.ID, models.CameraTypeControlling)
	link := seedLink(t, db, lock.ID, camera)

	employee := &models.Employee{FullName: "Test Employee"}
	require.NoError(t, db.Create(employee).Error)
	sheet := &models.TourniquetTimeSheet{
		EmployeeID:   employee.ID,
		TourniquetID: lock.ID,
		StartTime:    "08:00",
		EndTime:      "18:00",
	}
	require.NoError(t, db.Create(sheet).Error)

	require.NoError(t, svc.DeleteLock(lock.ID))

	var lockCount, linkCount, sheetCount, joinCount int64
	db.Model(&models.TourniquetLock{}).Where("id = ?", lock.ID).Count(&lockCount)
	db.Model(&models.CameraToTourniquetLock{}).Where("id = ?", link.ID).Count(&linkCount)
	db.Model(&models.TourniquetTimeSheet{}).Where("tourniquet_id = ?", lock.ID).Count(&sheetCount)
	db.Raw("SELECT COUNT(*) FROM camera_link_cameras WHERE camera_to_tourniquet_lock_id = ?", link.ID).Scan(&joinCount)

	assert.Zero(t, lockCount)
	assert.Zero(t, linkCount)
	assert.Zero(t, sheetCount)
	assert.Zero(t, joinCount)

	// the camera itself survives
	var cameraCount int64
	db.Model(&models.Camera{}).Where("id = ?", camera.ID).Count(&cameraCount)
	assert.EqualValues(t, 1, cameraCount)
}

func TestConcurrentTogglesLeaveValidState(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourniquetService(db, testConfig(), nil)

	// serialize writes at the pool; the service itself takes no row lock,
	// so interleaved toggles may lose updates but never corrupt the state
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.ToggleLock(lock.ID)
		}()
	}
	wg.Wait()

	var stored models.TourniquetLock
	require.NoError(t, db.First(&stored, lock.ID).Error)
	assert.Contains(t, []models.LockState{models.LockStateOpened, models.LockStateClosed}, stored.State)
}
