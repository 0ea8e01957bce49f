package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceEmployeeGroupService defines the employee group service interface
type InterfaceEmployeeGroupService interface {
	GetAllGroups(page, pageSize int) ([]models.EmployeeGroup, int64, error)
	GetGroupByID(id uint) (*models.EmployeeGroup, error)
	CreateGroup(group *models.EmployeeGroup) error
	UpdateGroup(id uint, updates map[string]interface{}) (*models.EmployeeGroup, error)
	DeleteGroup(id uint) error
	GetGroupMembers(groupID uint) ([]models.Employee, error)
	AddGroupMember(groupID, employeeID uint) error
	RemoveGroupMember(groupID, employeeID uint) error
}

// EmployeeGroupService provides employee group related operations
type EmployeeGroupService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeGroupService creates a new employee group service
func NewEmployeeGroupService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeGroupService {
	return &EmployeeGroupService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllGroups returns groups with pagination
func (s *EmployeeGroupService) GetAllGroups(page, pageSize int) ([]models.EmployeeGroup, int64, error) {
	var groups []models.EmployeeGroup
	var total int64

	if err := s.DB.Model(&models.EmployeeGroup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&groups).Error; err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// 2 GetGroupByID returns one group by id
func (s *EmployeeGroupService) GetGroupByID(id uint) (*models.EmployeeGroup, error) {
	var group models.EmployeeGroup
	if err := s.DB.Preload("Employees").First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("employee group not found")
		}
		return nil, err
	}
	return &group, nil
}

// 3 CreateGroup creates a new employee group
func (s *EmployeeGroupService) CreateGroup(group *models.EmployeeGroup) error {
	return s.DB.Create(group).Error
}

// 4 UpdateGroup applies an update map to a group
func (s *EmployeeGroupService) UpdateGroup(id uint, updates map[string]interface{}) (*models.EmployeeGroup, error) {
	group, err := s.GetGroupByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(group).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetGroupByID(id)
}

// 5 DeleteGroup deletes a group and cascades to its time sheets and
// membership rows
func (s *EmployeeGroupService) DeleteGroup(id uint) error {
	if _, err := s.GetGroupByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteEmployeeGroupCascade(tx, id)
	})
}

// 6 GetGroupMembers returns the employees in a group
func (s *EmployeeGroupService) GetGroupMembers(groupID uint) ([]models.Employee, error) {
	group, err := s.GetGroupByID(groupID)
	if err != nil {
		return nil, err
	}

	var employees []models.Employee
	if err := s.DB.Model(group).Association("Employees").Find(&employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// 7 AddGroupMember adds an employee to a group
func (s *EmployeeGroupService) AddGroupMember(groupID, employeeID uint) error {
	group, err := s.GetGroupByID(groupID)
	if err != nil {
		return err
	}

	var employee models.Employee
	if err := s.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("employee not found")
		}
		return err
	}

	var count int64
	if err := s.DB.Table("employee_group_members").
		Where("employee_group_id = ? AND employee_id = ?", groupID, employeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("employee already in group")
	}

	return s.DB.Model(group).Association("Employees").Append(&employee)
}

// 8 RemoveGroupMember removes an employee from a group
func (s *EmployeeGroupService) RemoveGroupMember(groupID, employeeID uint) error {
	group, err := s.GetGroupByID(groupID)
	if err != nil {
		return err
	}

	var employee models.Employee
	if err := s.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("employee not found")
		}
		return err
	}

	var count int64
	if err := s.DB.Table("employee_group_members").
		Where("employee_group_id = ? AND employee_id = ?", groupID, employeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("employee not in group")
	}

	return s.DB.Model(group).Association("Employees").Delete(&employee)
}
