package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceCameraService defines the camera service interface
type InterfaceCameraService interface {
	GetAllCameras(page, pageSize int) ([]models.Camera, int64, error)
	GetCamerasByLocation(locationID uint) ([]models.Camera, error)
	GetCameraByID(id uint) (*models.Camera, error)
	CreateCamera(camera *models.Camera) error
	UpdateCamera(id uint, updates map[string]interface{}) (*models.Camera, error)
	DeleteCamera(id uint) error
}

// CameraService provides camera related operations
type CameraService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCameraService creates a new camera service
func NewCameraService(db *gorm.DB, cfg *config.Config) InterfaceCameraService {
	return &CameraService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllCameras returns cameras with pagination
func (s *CameraService) GetAllCameras(page, pageSize int) ([]models.Camera, int64, error) {
	var cameras []models.Camera
	var total int64

	if err := s.DB.Model(&models.Camera{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Location").Limit(pageSize).Offset(offset).Find(&cameras).Error; err != nil {
		return nil, 0, err
	}

	return cameras, total, nil
}

// 2 GetCamerasByLocation returns the cameras installed at a location
func (s *CameraService) GetCamerasByLocation(locationID uint) ([]models.Camera, error) {
	var cameras []models.Camera
	if err := s.DB.Where("location_id = ?", locationID).Preload("Location").Find(&cameras).Error; err != nil {
		return nil, err
	}
	return cameras, nil
}

// 3 GetCameraByID returns one camera by id
func (s *CameraService) GetCameraByID(id uint) (*models.Camera, error) {
	var camera models.Camera
	if err := s.DB.Preload("Location").First(&camera, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("camera not found")
		}
		return nil, err
	}
	return &camera, nil
}

// 4 CreateCamera creates a new camera after checking the referenced location
func (s *CameraService) CreateCamera(camera *models.Camera) error {
	if !camera.Type.Valid() {
		return errors.New("invalid camera type")
	}

	var count int64
	if err := s.DB.Model(&models.Location{}).Where("id = ?", camera.LocationID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("location not found")
	}

	return s.DB.Create(camera).Error
}

// 5 UpdateCamera applies an update map to a camera
func (s *CameraService) UpdateCamera(id uint, updates map[string]interface{}) (*models.Camera, error) {
	camera, err := s.GetCameraByID(id)
	if err != nil {
		return nil, err
	}

	if t, ok := updates["type"].(models.CameraType); ok && !t.Valid() {
		return nil, errors.New("invalid camera type")
	}

	if err := s.DB.Model(camera).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetCameraByID(id)
}

// 6 DeleteCamera deletes a camera and its join-table rows
func (s *CameraService) DeleteCamera(id uint) error {
	if _, err := s.GetCameraByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCameraCascade(tx, id)
	})
}
