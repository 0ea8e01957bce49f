package services

import (
	"errors"
	"time"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"
	"uztk-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceTourniquetService defines the tourniquet lock service interface
type InterfaceTourniquetService interface {
	GetAllLocks(page, pageSize int) ([]models.TourniquetLock, int64, error)
	GetLocksByLocation(locationID uint) ([]models.TourniquetLock, error)
	GetLockByID(id uint) (*models.TourniquetLock, error)
	CreateLock(lock *models.TourniquetLock) error
	UpdateLock(id uint, updates map[string]interface{}) (*models.TourniquetLock, error)
	DeleteLock(id uint) error
	ToggleLock(id uint) (*models.TourniquetLock, error)
}

// TourniquetService provides tourniquet lock related operations
type TourniquetService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService // nil when Redis is disabled
}

// NewTourniquetService creates a new tourniquet lock service
func NewTourniquetService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceTourniquetService {
	return &TourniquetService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// 1 GetAllLocks returns locks with pagination
func (s *TourniquetService) GetAllLocks(page, pageSize int) ([]models.TourniquetLock, int64, error) {
	var locks []models.TourniquetLock
	var total int64

	if err := s.DB.Model(&models.TourniquetLock{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Location").Limit(pageSize).Offset(offset).Find(&locks).Error; err != nil {
		return nil, 0, err
	}

	return locks, total, nil
}

// 2 GetLocksByLocation returns the locks installed at a location
func (s *TourniquetService) GetLocksByLocation(locationID uint) ([]models.TourniquetLock, error) {
	var locks []models.TourniquetLock
	if err := s.DB.Where("location_id = ?", locationID).Preload("Location").Find(&locks).Error; err != nil {
		return nil, err
	}
	return locks, nil
}

// 3 GetLockByID returns one lock by id
func (s *TourniquetService) GetLockByID(id uint) (*models.TourniquetLock, error) {
	var lock models.TourniquetLock
	if err := s.DB.Preload("Location").First(&lock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("tourniquet lock not found")
		}
		return nil, err
	}
	return &lock, nil
}

// 4 CreateLock creates a new lock after checking the referenced location.
// State defaults to closed when the caller leaves it unset.
func (s *TourniquetService) CreateLock(lock *models.TourniquetLock) error {
	if !lock.LockType.Valid() {
		return errors.New("invalid lock type")
	}
	if lock.State == 0 {
		lock.State = models.LockStateClosed
	}

	var count int64
	if err := s.DB.Model(&models.Location{}).Where("id = ?", lock.LocationID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("location not found")
	}

	return s.DB.Create(lock).Error
}

// 5 UpdateLock applies an update map to a lock
func (s *TourniquetService) UpdateLock(id uint, updates map[string]interface{}) (*models.TourniquetLock, error) {
	lock, err := s.GetLockByID(id)
	if err != nil {
		return nil, err
	}

	if t, ok := updates["lock_type"].(models.LockType); ok && !t.Valid() {
		return nil, errors.New("invalid lock type")
	}

	if err := s.DB.Model(lock).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetLockByID(id)
}

// 6 DeleteLock deletes a lock and cascades to its links and time sheets
func (s *TourniquetService) DeleteLock(id uint) error {
	if _, err := s.GetLockByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteTourniquetCascade(tx, id)
	})
}

// 7 ToggleLock flips the lock state and persists it. Read-then-write with no
// row lock: concurrent toggles race with last-write-wins semantics.
func (s *TourniquetService) ToggleLock(id uint) (*models.TourniquetLock, error) {
	lock, err := s.GetLockByID(id)
	if err != nil {
		return nil, err
	}

	lock.State = lock.State.Toggled()
	if err := s.DB.Model(lock).Update("state", lock.State).Error; err != nil {
		return nil, err
	}

	// Refresh the state snapshot cache, best effort.
	if s.Redis != nil {
		if err := s.Redis.CacheLockState(lock, 10*time.Minute); err != nil {
			logger.Warning("failed to cache lock state for lock %d: %v", lock.ID, err)
		}
	}

	return lock, nil
}
