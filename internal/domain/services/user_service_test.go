package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(username string) *models.User {
	role := models.UserRoleGuard
	return &models.User{
		Username: username,
		Password: "secret123",
		Name:     "Guard",
		Role:     &role,
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))

	stored, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.Password))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	require.NoError(t, svc.CreateUser(newGuard("guard01")))
	assert.Error(t, svc.CreateUser(newGuard("guard01")))
}

func TestUpdateUserNameOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))

	require.NoError(t, svc.UpdateUserName(user.ID, "New Name"))

	stored, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "guard01", stored.Username)
}

func TestUserDetailEmptyWithoutCameras(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))

	detail, err := svc.GetUserDetail(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Cameras)
	assert.NotNil(t, detail.Locks)
	assert.Empty(t, detail.Cameras)
	assert.Empty(t, detail.Locks)
	assert.Equal(t, "guard", detail.Role)
}

func TestUserDetailFlattensCamerasAndLocks(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camera := seedCamera(t, db, location.ID, models.CameraTypeControlling)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	seedLink(t, db, lock.ID, camera)

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))
	require.NoError(t, svc.AssignCameras(user.ID, []uint{camera.ID}))

	detail, err := svc.GetUserDetail(user.ID)
	require.NoError(t, err)

	require.Len(t, detail.Cameras, 1)
	assert.Equal(t, camera.ID, detail.Cameras[0].ID)
	assert.Equal(t, "controlling", detail.Cameras[0].TypeLabel)
	assert.Equal(t, "Entrance", detail.Cameras[0].Location)

	require.Len(t, detail.Locks, 1)
	assert.Equal(t, lock.ID, detail.Locks[0].ID)
	assert.Equal(t, "turnstile", detail.Locks[0].TypeLabel)
	assert.Equal(t, "closed", detail.Locks[0].StateLabel)
	assert.Equal(t, "Entrance", detail.Locks[0].Location)
}

func TestUserDetailKeepsDuplicateLocks(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camA := seedCamera(t, db, location.ID, models.CameraTypeTracking)
	camB := seedCamera(t, db, location.ID, models.CameraTypeRecognizing)
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	// one link covering the lock through both cameras
	seedLink(t, db, lock.ID, camA, camB)

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))
	require.NoError(t, svc.AssignCameras(user.ID, []uint{camA.ID, camB.ID}))

	detail, err := svc.GetUserDetail(user.ID)
	require.NoError(t, err)

	// the lock is reachable through both assigned cameras, so it shows twice
	assert.Len(t, detail.Cameras, 2)
	assert.Len(t, detail.Locks, 2)
	assert.Equal(t, detail.Locks[0].ID, detail.Locks[1].ID)
}

func TestDeleteUserRemovesCameraAssignments(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	camera := seedCamera(t, db, location.ID, models.CameraTypeTracking)

	user := newGuard("guard01")
	require.NoError(t, svc.CreateUser(user))
	require.NoError(t, svc.AssignCameras(user.ID, []uint{camera.ID}))

	require.NoError(t, svc.DeleteUser(user.ID))

	var joinCount int64
	db.Raw("SELECT COUNT(*) FROM user_cameras WHERE user_id = ?", user.ID).Scan(&joinCount)
	assert.Zero(t, joinCount)

	// the camera itself survives
	var cameraCount int64
	db.Model(&models.Camera{}).Where("id = ?", camera.ID).Count(&cameraCount)
	assert.EqualValues(t, 1, cameraCount)
}
