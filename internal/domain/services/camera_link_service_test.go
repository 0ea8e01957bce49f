package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLinkValidatesReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewCameraLinkService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camera := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	// unknown lock
	err := svc.CreateLink(&models.CameraToTourniquetLock{TourniquetID: 9999}, []uint{camera.ID})
	assert.Error(t, err)

	// unknown camera in the set
	err = svc.CreateLink(&models.CameraToTourniquetLock{TourniquetID: lock.ID}, []uint{camera.ID, 9999})
	assert.Error(t, err)

	// valid
	link := &models.CameraToTourniquetLock{TourniquetID: lock.ID}
	require.NoError(t, svc.CreateLink(link, []uint{camera.ID}))

	stored, err := svc.GetLinkByID(link.ID)
	require.NoError(t, err)
	require.Len(t, stored.Cameras, 1)
	assert.Equal(t, camera.ID, stored.Cameras[0].ID)
}

func TestSetLinkCamerasReplacesSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewCameraLinkService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camA := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	camB := seedCamera(t, db, location.ID, models.CameraTypeRecognizing)
	camC := seedCamera(t, db, location.ID, models.CameraTypeControlling)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	link := seedLink(t, db, lock.ID, camA, camB)

	require.NoError(t, svc.SetLinkCameras(link.ID, []uint{camC.ID}))

	stored, err := svc.GetLinkByID(link.ID)
	require.NoError(t, err)
	require.Len(t, stored.Cameras, 1)
	assert.Equal(t, camC.ID, stored.Cameras[0].ID)
}

func TestGetLinksByCamera(t *testing.T) {
	db := newTestDB(t)
	svc := NewCameraLinkService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camA := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	camB := seedCamera(t, db, location.ID, models.CameraTypeRecognizing)
	lockA := seedLock(t, db, location.ID, models.LockStateClosed)
	lockB := seedLock(t, db, location.ID, models.LockStateOpened)

	seedLink(t, db, lockA.ID, camA)
	seedLink(t, db, lockB.ID, camA, camB)

	links, err := svc.GetLinksByCamera(camA.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	links, err = svc.GetLinksByCamera(camB.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, lockB.ID, links[0].TourniquetID)
}

func TestDeleteLinkKeepsCamerasAndLock(t *testing.T) {
	db := newTestDB(t)
	svc := NewCameraLinkService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camera := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	link := seedLink(t, db, lock.ID, camera)

	require.NoError(t, svc.DeleteLink(link.ID))

	_, err := svc.GetLinkByID(link.ID)
	assert.Error(t, err)

	var joinCount int64
	db.Raw("SELECT COUNT(*) FROM camera_link_cameras WHERE camera_to_tourniquet_lock_id = ?", link.ID).Scan(&joinCount)
	assert.Zero(t, joinCount)

	var lockCount, cameraCount int64
	db.Model(&models.TourniquetLock{}).Where("id = ?", lock.ID).Count(&lockCount)
	db.Model(&models.Camera{}).Where("id = ?", camera.ID).Count(&cameraCount)
	assert.EqualValues(t, 1, lockCount)
	assert.EqualValues(t, 1, cameraCount)
}
