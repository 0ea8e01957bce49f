package services

import (
	"testing"

	"uztk-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployee(t *testing.T, svc InterfaceEmployeeService, name string) *models.Employee {
	t.Helper()
	employee := &models.Employee{FullName: name}
	require.NoError(t, svc.CreateEmployee(employee))
	return employee
}

func TestGroupMembership(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	groupSvc := NewEmployeeGroupService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	group := &models.EmployeeGroup{Title: "Day Shift"}
	require.NoError(t, groupSvc.CreateGroup(group))

	alice := seedEmployee(t, employeeSvc, "Alice Smith")
	bob := seedEmployee(t, employeeSvc, "Bob Jones")

	require.NoError(t, groupSvc.AddGroupMember(group.ID, alice.ID))
	require.NoError(t, groupSvc.AddGroupMember(group.ID, bob.ID))

	members, err := groupSvc.GetGroupMembers(group.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	require.NoError(t, groupSvc.RemoveGroupMember(group.ID, alice.ID))

	members, err = groupSvc.GetGroupMembers(group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, bob.ID, members[0].ID)

	// membership is visible from the employee side too
	groups, err := employeeSvc.GetEmployeeGroups(bob.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Day Shift", groups[0].Title)
}

func TestAddGroupMemberUnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	groupSvc := NewEmployeeGroupService(db, testConfig())

	group := &models.EmployeeGroup{Title: "Day Shift"}
	require.NoError(t, groupSvc.CreateGroup(group))

	assert.Error(t, groupSvc.AddGroupMember(group.ID, 9999))
	assert.Error(t, groupSvc.AddGroupMember(9999, 1))
}

func TestDeleteGroupKeepsEmployees(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	groupSvc := NewEmployeeGroupService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	group := &models.EmployeeGroup{Title: "Day Shift"}
	require.NoError(t, groupSvc.CreateGroup(group))
	alice := seedEmployee(t, employeeSvc, "Alice Smith")
	require.NoError(t, groupSvc.AddGroupMember(group.ID, alice.ID))

	require.NoError(t, groupSvc.DeleteGroup(group.ID))

	_, err := groupSvc.GetGroupByID(group.ID)
	assert.Error(t, err)

	// employee survives, membership rows do not
	_, err = employeeSvc.GetEmployeeByID(alice.ID)
	assert.NoError(t, err)

	var joinCount int64
	db.Raw("SELECT COUNT(*) FROM employee_group_members WHERE employee_group_id = ?", group.ID).Scan(&joinCount)
	assert.Zero(t, joinCount)
}

func TestDeleteEmployeeRemovesMemberships(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	groupSvc := NewEmployeeGroupService(db, cfg)
	employeeSvc := NewEmployeeService(db, cfg)

	group := &models.EmployeeGroup{Title: "Day Shift"}
	require.NoError(t, groupSvc.CreateGroup(group))
	alice := seedEmployee(t, employeeSvc, "Alice Smith")
	require.NoError(t, groupSvc.AddGroupMember(group.ID, alice.ID))

	require.NoError(t, employeeSvc.DeleteEmployee(alice.ID))

	members, err := groupSvc.GetGroupMembers(group.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}
