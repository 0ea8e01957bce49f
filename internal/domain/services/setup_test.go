package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Location{},
		&models.Employee{},
		&models.EmployeeGroup{},
		&models.Camera{},
		&models.TourniquetLock{},
		&models.CameraToTourniquetLock{},
		&models.TourniquetTimeSheet{},
		&models.EmployeeGroupTimeSheet{},
		&models.User{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
	}
}

func seedLocation(t *testing.T, db *gorm.DB, title string) *models.Location {
	t.Helper()
	location := &models.Location{Title: title}
	require.NoError(t, db.Create(location).Error)
	return location
}

func seedCamera(t *testing.T, db *gorm.DB, locationID uint, camType models.CameraType) *models.Camera {
	t.Helper()
	camera := &models.Camera{Type: camType, LocationID: locationID}
	require.NoError(t, db.Create(camera).Error)
	return camera
}

func seedLock(t *testing.T, db *gorm.DB, locationID uint, state models.LockState) *models.TourniquetLock {
	t.Helper()
	lock := &models.TourniquetLock{
		LockType:   models.LockTypeTourniquet,
		State:      state,
		LocationID: locationID,
	}
	require.NoError(t, db.Create(lock).Error)
	return lock
}

func seedLink(t *testing.T, db *gorm.DB, lockID uint, cameras ...*models.Camera) *models.CameraToTourniquetLock {
	t.Helper()
	link := &models.CameraToTourniquetLock{TourniquetID: lockID}
	require.NoError(t, db.Create(link).Error)
	if len(cameras) > 0 {
		require.NoError(t, db.Model(link).Association("Cameras").Append(&cameras))
	}
	return link
}
