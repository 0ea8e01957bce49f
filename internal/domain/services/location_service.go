package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceLocationService defines the location service interface
type InterfaceLocationService interface {
	GetAllLocations(page, pageSize int) ([]models.Location, int64, error)
	GetLocationByID(id uint) (*models.Location, error)
	CreateLocation(location *models.Location) error
	UpdateLocation(id uint, updates map[string]interface{}) (*models.Location, error)
	DeleteLocation(id uint) error
}

// LocationService provides location related operations
type LocationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLocationService creates a new location service
func NewLocationService(db *gorm.DB, cfg *config.Config) InterfaceLocationService {
	return &LocationService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllLocations returns locations with pagination
func (s *LocationService) GetAllLocations(page, pageSize int) ([]models.Location, int64, error) {
	var locations []models.Location
	var total int64

	if err := s.DB.Model(&models.Location{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&locations).Error; err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

// 2 GetLocationByID returns one location by id
func (s *LocationService) GetLocationByID(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.DB.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("location not found")
		}
		return nil, err
	}
	return &location, nil
}

// 3 CreateLocation creates a new location
func (s *LocationService) CreateLocation(location *models.Location) error {
	return s.DB.Create(location).Error
}

// 4 UpdateLocation applies an update map to a location
func (s *LocationService) UpdateLocation(id uint, updates map[string]interface{}) (*models.Location, error) {
	location, err := s.GetLocationByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(location).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetLocationByID(id)
}

// 5 DeleteLocation deletes a location and cascades to the cameras and locks
// installed there
func (s *LocationService) DeleteLocation(id uint) error {
	if _, err := s.GetLocationByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteLocationCascade(tx, id)
	})
}
