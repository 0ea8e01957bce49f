package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceEmployeeService defines the employee service interface
type InterfaceEmployeeService interface {
	GetAllEmployees(page, pageSize int) ([]models.Employee, int64, error)
	GetEmployeeByID(id uint) (*models.Employee, error)
	CreateEmployee(employee *models.Employee) error
	UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error)
	DeleteEmployee(id uint) error
	GetEmployeeGroups(employeeID uint) ([]models.EmployeeGroup, error)
}

// EmployeeService provides employee related operations
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeService {
	return &EmployeeService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllEmployees returns employees with pagination
func (s *EmployeeService) GetAllEmployees(page, pageSize int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := s.DB.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// 2 GetEmployeeByID returns one employee by id
func (s *EmployeeService) GetEmployeeByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Preload("Groups").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("employee not found")
		}
		return nil, err
	}
	return &employee, nil
}

// 3 CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(employee *models.Employee) error {
	return s.DB.Create(employee).Error
}

// 4 UpdateEmployee applies an update map to an employee
func (s *EmployeeService) UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(employee).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEmployeeByID(id)
}

// 5 DeleteEmployee deletes an employee and cascades to their time sheets and
// group memberships
func (s *EmployeeService) DeleteEmployee(id uint) error {
	if _, err := s.GetEmployeeByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteEmployeeCascade(tx, id)
	})
}

// 6 GetEmployeeGroups returns the groups an employee belongs to
func (s *EmployeeService) GetEmployeeGroups(employeeID uint) ([]models.EmployeeGroup, error) {
	employee, err := s.GetEmployeeByID(employeeID)
	if err != nil {
		return nil, err
	}

	var groups []models.EmployeeGroup
	if err := s.DB.Model(employee).Association("Groups").Find(&groups); err != nil {
		return nil, err
	}

	return groups, nil
}
