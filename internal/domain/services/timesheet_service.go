package services

import (
	"errors"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceTimeSheetService defines the time sheet service interface.
// It covers both the per-employee and the per-group schedules.
type InterfaceTimeSheetService interface {
	GetAllEmployeeTimeSheets(page, pageSize int) ([]models.TourniquetTimeSheet, int64, error)
	GetEmployeeTimeSheetByID(id uint) (*models.TourniquetTimeSheet, error)
	GetEmployeeTimeSheets(employeeID uint) ([]models.TourniquetTimeSheet, error)
	CreateEmployeeTimeSheet(sheet *models.TourniquetTimeSheet) error
	UpdateEmployeeTimeSheet(id uint, updates map[string]interface{}) error
	DeleteEmployeeTimeSheet(id uint) error

	GetAllGroupTimeSheets(page, pageSize int) ([]models.EmployeeGroupTimeSheet, int64, error)
	GetGroupTimeSheetByID(id uint) (*models.EmployeeGroupTimeSheet, error)
	GetGroupTimeSheets(groupID uint) ([]models.EmployeeGroupTimeSheet, error)
	CreateGroupTimeSheet(sheet *models.EmployeeGroupTimeSheet) error
	UpdateGroupTimeSheet(id uint, updates map[string]interface{}) error
	DeleteGroupTimeSheet(id uint) error
}

type TimeSheetService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTimeSheetService creates a new time sheet service
func NewTimeSheetService(db *gorm.DB, cfg *config.Config) InterfaceTimeSheetService {
	return &TimeSheetService{
		DB:     db,
		Config: cfg,
	}
}

func validateTimeWindow(start, end models.TimeOfDay) error {
	if err := start.Validate(); err != nil {
		return err
	}
	return end.Validate()
}

// 1 GetAllEmployeeTimeSheets returns employee time sheets with pagination
func (s *TimeSheetService) GetAllEmployeeTimeSheets(page, pageSize int) ([]models.TourniquetTimeSheet, int64, error) {
	var sheets []models.TourniquetTimeSheet
	var total int64

	if err := s.DB.Model(&models.TourniquetTimeSheet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Employee").Preload("Tourniquet").Limit(pageSize).Offset(offset).Find(&sheets).Error; err != nil {
		return nil, 0, err
	}

	return sheets, total, nil
}

// 2 GetEmployeeTimeSheetByID returns one employee time sheet by id
func (s *TimeSheetService) GetEmployeeTimeSheetByID(id uint) (*models.TourniquetTimeSheet, error) {
	var sheet models.TourniquetTimeSheet
	if err := s.DB.Preload("Employee").Preload("Tourniquet").First(&sheet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("time sheet not found")
		}
		return nil, err
	}
	return &sheet, nil
}

// 3 GetEmployeeTimeSheets returns all sheets of one employee
func (s *TimeSheetService) GetEmployeeTimeSheets(employeeID uint) ([]models.TourniquetTimeSheet, error) {
	var sheets []models.TourniquetTimeSheet
	if err := s.DB.Preload("Tourniquet").Where("employee_id = ?", employeeID).Find(&sheets).Error; err != nil {
		return nil, err
	}
	return sheets, nil
}

// 4 CreateEmployeeTimeSheet validates the window and referenced rows, then creates
func (s *TimeSheetService) CreateEmployeeTimeSheet(sheet *models.TourniquetTimeSheet) error {
	if err := validateTimeWindow(sheet.StartTime, sheet.EndTime); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("id = ?", sheet.EmployeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("employee not found")
	}
	if err := s.DB.Model(&models.TourniquetLock{}).Where("id = ?", sheet.TourniquetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("tourniquet lock not found")
	}

	return s.DB.Create(sheet).Error
}

// 5 UpdateEmployeeTimeSheet applies field updates to one sheet
func (s *TimeSheetService) UpdateEmployeeTimeSheet(id uint, updates map[string]interface{}) error {
	sheet, err := s.GetEmployeeTimeSheetByID(id)
	if err != nil {
		return err
	}

	for _, field := range []string{"start_time", "end_time"} {
		if v, ok := updates[field].(string); ok {
			if err := models.TimeOfDay(v).Validate(); err != nil {
				return err
			}
		}
	}

	return s.DB.Model(sheet).Updates(updates).Error
}

// 6 DeleteEmployeeTimeSheet deletes one sheet
func (s *TimeSheetService) DeleteEmployeeTimeSheet(id uint) error {
	sheet, err := s.GetEmployeeTimeSheetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(sheet).Error
}

// 7 GetAllGroupTimeSheets returns group time sheets with pagination
func (s *TimeSheetService) GetAllGroupTimeSheets(page, pageSize int) ([]models.EmployeeGroupTimeSheet, int64, error) {
	var sheets []models.EmployeeGroupTimeSheet
	var total int64

	if err := s.DB.Model(&models.EmployeeGroupTimeSheet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("EmployeeGroup").Preload("Tourniquet").Limit(pageSize).Offset(offset).Find(&sheets).Error; err != nil {
		return nil, 0, err
	}

	return sheets, total, nil
}

// 8 GetGroupTimeSheetByID returns one group time sheet by id
func (s *TimeSheetService) GetGroupTimeSheetByID(id uint) (*models.EmployeeGroupTimeSheet, error) {
	var sheet models.EmployeeGroupTimeSheet
	if err := s.DB.Preload("EmployeeGroup").Preload("Tourniquet").First(&sheet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("time sheet not found")
		}
		return nil, err
	}
	return &sheet, nil
}

// 9 GetGroupTimeSheets returns all sheets of one group
func (s *TimeSheetService) GetGroupTimeSheets(groupID uint) ([]models.EmployeeGroupTimeSheet, error) {
	var sheets []models.EmployeeGroupTimeSheet
	if err := s.DB.Preload("Tourniquet").Where("employee_group_id = ?", groupID).Find(&sheets).Error; err != nil {
		return nil, err
	}
	return sheets, nil
}

// 10 CreateGroupTimeSheet validates the window and referenced rows, then creates
func (s *TimeSheetService) CreateGroupTimeSheet(sheet *models.EmployeeGroupTimeSheet) error {
	if err := validateTimeWindow(sheet.StartTime, sheet.EndTime); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.EmployeeGroup{}).Where("id = ?", sheet.EmployeeGroupID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("employee group not found")
	}
	if err := s.DB.Model(&models.TourniquetLock{}).Where("id = ?", sheet.TourniquetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("tourniquet lock not found")
	}

	return s.DB.Create(sheet).Error
}

// 11 UpdateGroupTimeSheet applies field updates to one sheet
func (s *TimeSheetService) UpdateGroupTimeSheet(id uint, updates map[string]interface{}) error {
	sheet, err := s.GetGroupTimeSheetByID(id)
	if err != nil {
		return err
	}

	for _, field := range []string{"start_time", "end_time"} {
		if v, ok := updates[field].(string); ok {
			if err := models.TimeOfDay(v).Validate(); err != nil {
				return err
			}
		}
	}

	return s.DB.Model(sheet).Updates(updates).Error
}

// 12 DeleteGroupTimeSheet deletes one sheet
func (s *TimeSheetService) DeleteGroupTimeSheet(id uint) error {
	sheet, err := s.GetGroupTimeSheetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(sheet).Error
}
