package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	location := &models.Location{Title: "Entrance", Coordinates: "41.31,69.24"}
	require.NoError(t, svc.CreateLocation(location))
	assert.NotZero(t, location.ID)
	assert.NotEmpty(t, location.UUID)

	stored, err := svc.GetLocationByID(location.ID)
	require.NoError(t, err)
	assert.Equal(t, "Entrance", stored.Title)

	updated, err := svc.UpdateLocation(location.ID, map[string]interface{}{"title": "Back entrance"})
	require.NoError(t, err)
	assert.Equal(t, "Back entrance", updated.Title)

	// UUID survives updates unchanged
	assert.Equal(t, location.UUID, updated.UUID)

	require.NoError(t, svc.DeleteLocation(location.ID))
	_, err = svc.GetLocationByID(location.ID)
	assert.Error(t, err)
}

func TestGetLocationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	_, err := svc.GetLocationByID(404)
	assert.Error(t, err)
}

func TestLocationPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	for i := 0; i < 7; i++ {
		require.NoError(t, svc.CreateLocation(&models.Location{Title: "Gate"}))
	}

	first, total, err := svc.GetAllLocations(1, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, first, 5)

	second, _, err := svc.GetAllLocations(2, 5)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestDeleteLocationCascadesToDevices(t *testing.T) {
	db := newTestDB(t)
	svc := NewLocationService(db, testConfig())

	location := seedLocation(t, db, "Perimeter")
	camera := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	link := seedLink(t, db, lock.ID, camera)

	other := seedLocation(t, db, "Office")
	survivor := seedCamera(t, db, other.ID, models.CameraTypeRecognizing)

	require.NoError(t, svc.DeleteLocation(location.ID))

	var cameraCount, lockCount, linkCount int64
	db.Model(&models.Camera{}).Where("location_id = ?", location.ID).Count(&cameraCount)
	db.Model(&models.TourniquetLock{}).Where("location_id = ?", location.ID).Count(&lockCount)
	db.Model(&models.CameraToTourniquetLock{}).Where("id = ?", link.ID).Count(&linkCount)
	assert.Zero(t, cameraCount)
	assert.Zero(t, lockCount)
	assert.Zero(t, linkCount)

	// devices at other locations are untouched
	var survivorCount int64
	db.Model(&models.Camera{}).Where("id = ?", survivor.ID).Count(&survivorCount)
	assert.EqualValues(t, 1, survivorCount)
}
