package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceCameraLinkService defines the camera-to-lock link service interface
type InterfaceCameraLinkService interface {
	GetAllLinks(page, pageSize int) ([]models.CameraToTourniquetLock, int64, error)
	GetLinkByID(id uint) (*models.CameraToTourniquetLock, error)
	GetLinksByCamera(cameraID uint) ([]models.CameraToTourniquetLock, error)
	CreateLink(link *models.CameraToTourniquetLock, cameraIDs []uint) error
	SetLinkCameras(linkID uint, cameraIDs []uint) error
	DeleteLink(id uint) error
}

// CameraLinkService manages the join records declaring camera coverage of locks
type CameraLinkService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCameraLinkService creates a new camera link service
func NewCameraLinkService(db *gorm.DB, cfg *config.Config) InterfaceCameraLinkService {
	return &CameraLinkService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllLinks returns links with pagination
func (s *CameraLinkService) GetAllLinks(page, pageSize int) ([]models.CameraToTourniquetLock, int64, error) {
	var links []models.CameraToTourniquetLock
	var total int64

	if err := s.DB.Model(&models.CameraToTourniquetLock{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Tourniquet").Preload("Cameras").Limit(pageSize).Offset(offset).Find(&links).Error; err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// 2 GetLinkByID returns one link by id
func (s *CameraLinkService) GetLinkByID(id uint) (*models.CameraToTourniquetLock, error) {
	var link models.CameraToTourniquetLock
	if err := s.DB.Preload("Tourniquet.Location").Preload("Cameras").First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("camera-to-lock link not found")
		}
		return nil, err
	}
	return &link, nil
}

// 3 GetLinksByCamera returns every link whose camera set includes the camera
func (s *CameraLinkService) GetLinksByCamera(cameraID uint) ([]models.CameraToTourniquetLock, error) {
	var links []models.CameraToTourniquetLock
	if err := s.DB.Preload("Tourniquet.Location").
		Joins("JOIN camera_link_cameras clc ON clc.camera_to_tourniquet_lock_id = camera_to_tourniquet_locks.id").
		Where("clc.camera_id = ?", cameraID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// 4 CreateLink creates a link and attaches the given camera set
func (s *CameraLinkService) CreateLink(link *models.CameraToTourniquetLock, cameraIDs []uint) error {
	var count int64
	if err := s.DB.Model(&models.TourniquetLock{}).Where("id = ?", link.TourniquetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("tourniquet lock not found")
	}

	var cameras []models.Camera
	if len(cameraIDs) > 0 {
		if err := s.DB.Find(&cameras, cameraIDs).Error; err != nil {
			return err
		}
		if len(cameras) != len(cameraIDs) {
			return errors.New("camera not found")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		if len(cameras) > 0 {
			if err := tx.Model(link).Association("Cameras").Append(&cameras); err != nil {
				return err
			}
		}
		return nil
	})
}

// 5 SetLinkCameras replaces the camera set of a link
func (s *CameraLinkService) SetLinkCameras(linkID uint, cameraIDs []uint) error {
	link, err := s.GetLinkByID(linkID)
	if err != nil {
		return err
	}

	var cameras []models.Camera
	if len(cameraIDs) > 0 {
		if err := s.DB.Find(&cameras, cameraIDs).Error; err != nil {
			return err
		}
		if len(cameras) != len(cameraIDs) {
			return errors.New("camera not found")
		}
	}

	return s.DB.Model(link).Association("Cameras").Replace(&cameras)
}

// 6 DeleteLink deletes a link and its camera-set rows
func (s *CameraLinkService) DeleteLink(id uint) error {
	if _, err := s.GetLinkByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteLinkCascade(tx, id)
	})
}
