package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"
	"uztk-http-service/utils"

	"gorm.io/gorm"
)

// CameraView is the flattened camera row shown on a user's detail page
type CameraView struct {
	ID        uint   `json:"id"`
	UUID      string `json:"uuid"`
	Type      int    `json:"type"`
	TypeLabel string `json:"type_label"`
	IPAddress string `json:"ip_address"`
	Location  string `json:"location"`
}

// LockView is the flattened lock row shown on a user's detail page
type LockView struct {
	ID         uint   `json:"id"`
	UUID       string `json:"uuid"`
	LockType   int    `json:"lock_type"`
	TypeLabel  string `json:"type_label"`
	State      int    `json:"state"`
	StateLabel string `json:"state_label"`
	IPAddress  string `json:"ip_address"`
	Location   string `json:"location"`
}

// UserDetail is the projection served to an authenticated guard user.
// Locks is assembled by walking each assigned camera's links, so a lock
// reachable through several cameras appears once per camera.
type UserDetail struct {
	ID       uint         `json:"id"`
	UUID     string       `json:"uuid"`
	Username string       `json:"username"`
	Name     string       `json:"name"`
	Role     string       `json:"role"`
	IsAdmin  bool         `json:"is_admin"`
	Cameras  []CameraView `json:"cameras"`
	Locks    []LockView   `json:"locks"`
}

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) error
	UpdateUserName(id uint, name string) error
	AssignCameras(userID uint, cameraIDs []uint) error
	GetUserDetail(id uint) (*UserDetail, error)
	GetUserDetailByUsername(username string) (*UserDetail, error)
	DeleteUser(id uint) error
}

type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUsers returns users with pagination
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Cameras").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// 2 GetUserByID returns one user by id
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Cameras.Location").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// 3 GetUserByUsername returns one user by username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Cameras.Location").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// 4 CreateUser hashes the password and creates the user
func (s *UserService) CreateUser(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("username already exists")
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.DB.Create(user).Error
}

// 5 UpdateUser applies field updates; a password value is re-hashed
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id <> ?", username, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("username already exists")
		}
	}

	if password, ok := updates["password"].(string); ok {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}

	return s.DB.Model(user).Updates(updates).Error
}

// 6 UpdateUserName changes only the display name
func (s *UserService) UpdateUserName(id uint, name string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("name", name).Error
}

// 7 AssignCameras replaces the camera set assigned to a user
func (s *UserService) AssignCameras(userID uint, cameraIDs []uint) error {
	user, err := s.GetUserByID(userID)
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

	return s.DB.Model(user).Association("Cameras").Replace(&cameras)
}

// 8 GetUserDetail builds the flattened camera and lock views for a user
func (s *UserService) GetUserDetail(id uint) (*UserDetail, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(user)
}

// 9 GetUserDetailByUsername builds the same projection keyed by username
func (s *UserService) GetUserDetailByUsername(username string) (*UserDetail, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(user)
}

func (s *UserService) buildDetail(user *models.User) (*UserDetail, error) {
	detail := &UserDetail{
		ID:       user.ID,
		UUID:     user.UUID,
		Username: user.Username,
		Name:     user.Name,
		IsAdmin:  user.IsAdmin,
		Cameras:  []CameraView{},
		Locks:    []LockView{},
	}
	if user.Role != nil {
		detail.Role = user.Role.Label()
	}

	for _, cam := range user.Cameras {
		view := CameraView{
			ID:        cam.ID,
			UUID:      cam.UUID,
			Type:      int(cam.Type),
			TypeLabel: cam.Type.Label(),
			IPAddress: cam.IPAddress,
		}
		if cam.Location != nil {
			view.Location = cam.Location.Title
		}
		detail.Cameras = append(detail.Cameras, view)

		var links []models.CameraToTourniquetLock
		if err := s.DB.Preload("Tourniquet.Location").
			Joins("JOIN camera_link_cameras clc ON clc.camera_to_tourniquet_lock_id = camera_to_tourniquet_locks.id").
			Where("clc.camera_id = ?", cam.ID).
			Find(&links).Error; err != nil {
			return nil, err
		}

		for _, link := range links {
			if link.Tourniquet == nil {
				continue
			}
			lock := link.Tourniquet
			lockView := LockView{
				ID:         lock.ID,
				UUID:       lock.UUID,
				LockType:   int(lock.LockType),
				TypeLabel:  lock.LockType.Label(),
				State:      int(lock.State),
				StateLabel: lock.State.Label(),
				IPAddress:  lock.IPAddress,
			}
			if lock.Location != nil {
				lockView.Location = lock.Location.Title
			}
			detail.Locks = append(detail.Locks, lockView)
		}
	}

	return detail, nil
}

// 10 DeleteUser removes the user and its camera assignments
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_cameras WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
