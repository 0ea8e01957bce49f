package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeTimeSheet(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewTimeSheetService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	alice := seedEmployee(t, employeeSvc, "Alice Smith")

	sheet := &models.TourniquetTimeSheet{
		EmployeeID:   alice.ID,
		TourniquetID: lock.ID,
		StartTime:    "08:00",
		EndTime:      "17:30",
	}
	require.NoError(t, svc.CreateEmployeeTimeSheet(sheet))

	sheets, err := svc.GetEmployeeTimeSheets(alice.ID)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, models.TimeOfDay("08:00"), sheets[0].StartTime)
}

func TestCreateEmployeeTimeSheetRejectsBadWindow(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewTimeSheetService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	alice := seedEmployee(t, employeeSvc, "Alice Smith")

	for _, window := range [][2]models.TimeOfDay{
		{"25:00", "17:00"},
		{"08:00", "9am"},
		{"", "17:00"},
	} {
		sheet := &models.TourniquetTimeSheet{
			EmployeeID:   alice.ID,
			TourniquetID: lock.ID,
			StartTime:    window[0],
			EndTime:      window[1],
		}
		assert.Error(t, svc.CreateEmployeeTimeSheet(sheet), "window %v", window)
	}
}

func TestCreateEmployeeTimeSheetValidatesReferences(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewTimeSheetService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	alice := seedEmployee(t, employeeSvc, "Alice Smith")

	assert.Error(t, svc.CreateEmployeeTimeSheet(&models.TourniquetTimeSheet{
		EmployeeID: 9999, TourniquetID: lock.ID, StartTime: "08:00", EndTime: "17:00",
	}))
	assert.Error(t, svc.CreateEmployeeTimeSheet(&models.TourniquetTimeSheet{
		EmployeeID: alice.ID, TourniquetID: 9999, StartTime: "08:00", EndTime: "17:00",
	}))
}

func TestUpdateEmployeeTimeSheetValidatesTimes(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewTimeSheetService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	alice := seedEmployee(t, employeeSvc, "Alice Smith")

	sheet := &models.TourniquetTimeSheet{
		EmployeeID:   alice.ID,
		TourniquetID: lock.ID,
		StartTime:    "08:00",
		EndTime:      "17:00",
	}
	require.NoError(t, svc.CreateEmployeeTimeSheet(sheet))

	assert.Error(t, svc.UpdateEmployeeTimeSheet(sheet.ID, map[string]interface{}{"start_time": "8 o'clock"}))

	require.NoError(t, svc.UpdateEmployeeTimeSheet(sheet.ID, map[string]interface{}{"start_time": "09:15"}))
	stored, err := svc.GetEmployeeTimeSheetByID(sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TimeOfDay("09:15"), stored.StartTime)
}

func TestGroupTimeSheetLifecycle(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewTimeSheetService(db, cfg)
	groupSvc := NewEmployeeGroupService(db, cfg)

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)
	group := &models.EmployeeGroup{Title: "Day Shift"}
	require.NoError(t, groupSvc.CreateGroup(group))

	sheet := &models.EmployeeGroupTimeSheet{
		EmployeeGroupID: group.ID,
		TourniquetID:    lock.ID,
		StartTime:       "06:00",
		EndTime:         "14:00",
	}
	require.NoError(t, svc.CreateGroupTimeSheet(sheet))

	sheets, err := svc.GetGroupTimeSheets(group.ID)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	require.NoError(t, svc.DeleteGroupTimeSheet(sheet.ID))
	_, err = svc.GetGroupTimeSheetByID(sheet.ID)
	assert.Error(t, err)
}

func TestGroupTimeSheetRejectsUnknownGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimeSheetService(db, testConfig())

	location := seedLocation(t, db, "Entrance")
	lock := seedLock(t, db, location.ID, models.LockStateClosed)

	assert.Error(t, svc.CreateGroupTimeSheet(&models.EmployeeGroupTimeSheet{
		EmployeeGroupID: 9999, TourniquetID: lock.ID, StartTime: "06:00", EndTime: "14:00",
	}))
}
