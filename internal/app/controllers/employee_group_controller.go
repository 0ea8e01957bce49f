package controllers

import (
	"strconv"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/domain/services"
	"uztk-http-service/internal/domain/services/container"
	"uztk-http-service/internal/error/code"
	"uztk-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceEmployeeGroupController defines the employee group controller interface
type InterfaceEmployeeGroupController interface {
	GetGroups()
	GetGroup()
	CreateGroup()
	UpdateGroup()
	DeleteGroup()
	GetGroupMembers()
	AddGroupMember()
	RemoveGroupMember()
}

// EmployeeGroupController handles employee group requests
type EmployeeGroupController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmployeeGroupController creates a new employee group controller
func NewEmployeeGroupController(ctx *gin.Context, container *container.ServiceContainer) *EmployeeGroupController {
	return &EmployeeGroupController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmployeeGroupRequest is the group create/update body
type EmployeeGroupRequest struct {
	Title string `json:"title" binding:"required" example:"Night shift"`
}

// GroupMemberRequest names the employee to add or remove
type GroupMemberRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required" example:"1"`
}

// HandleEmployeeGroupFunc returns a Gin handler dispatching group requests
func HandleEmployeeGroupFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmployeeGroupController(ctx, container)

		switch method {
		case "getGroups":
			controller.GetGroups()
		case "getGroup":
			controller.GetGroup()
		case "createGroup":
			controller.CreateGroup()
		case "updateGroup":
			controller.UpdateGroup()
		case "deleteGroup":
			controller.DeleteGroup()
		case "getGroupMembers":
			controller.GetGroupMembers()
		case "addGroupMember":
			controller.AddGroupMember()
		case "removeGroupMember":
			controller.RemoveGroupMember()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetGroups lists employee groups with pagination
// @Summary List employee groups
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups [get]
func (c *EmployeeGroupController) GetGroups() {
	page, pageSize := paginationParams(c.Ctx)

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	groups, total, err := groupService.GetAllGroups(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list employee groups: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(groups, total, page, pageSize))
}

// 2. GetGroup returns one group by ID
// @Summary Get employee group
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/employee-groups/{id} [get]
func (c *EmployeeGroupController) GetGroup() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	group, err := groupService.GetGroupByID(uint(groupID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, group)
}

// 3. CreateGroup creates a new employee group
// @Summary Create employee group
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body EmployeeGroupRequest true "Group fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups [post]
func (c *EmployeeGroupController) CreateGroup() {
	var req EmployeeGroupRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	group := &models.EmployeeGroup{
		Title: req.Title,
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	if err := groupService.CreateGroup(group); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create employee group: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, group)
}

// 4. UpdateGroup updates group fields
// @Summary Update employee group
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param group body EmployeeGroupRequest true "Group fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/employee-groups/{id} [put]
func (c *EmployeeGroupController) UpdateGroup() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	var req EmployeeGroupRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	group, err := groupService.UpdateGroup(uint(groupID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update employee group: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, group)
}

// 5. DeleteGroup deletes a group, its memberships and its schedules
// @Summary Delete employee group
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups/{id} [delete]
func (c *EmployeeGroupController) DeleteGroup() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	if err := groupService.DeleteGroup(uint(groupID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete employee group: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetGroupMembers lists the employees in a group
// @Summary List group members
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups/{id}/members [get]
func (c *EmployeeGroupController) GetGroupMembers() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	members, err := groupService.GetGroupMembers(uint(groupID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list group members: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, members)
}

// 7. AddGroupMember adds an employee to a group
// @Summary Add group member
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param member body GroupMemberRequest true "Employee to add"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups/{id}/members [post]
func (c *EmployeeGroupController) AddGroupMember() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	var req GroupMemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	if err := groupService.AddGroupMember(uint(groupID), req.EmployeeID); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to add group member: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 8. RemoveGroupMember removes an employee from a group
// @Summary Remove group member
// @Tags EmployeeGroup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param employee_id path int true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employee-groups/{id}/members/{employee_id} [delete]
func (c *EmployeeGroupController) RemoveGroupMember() {
	groupID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group ID")
		return
	}

	employeeID, err := strconv.Atoi(c.Ctx.Param("employee_id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	groupService := c.Container.GetService("employee_group").(services.InterfaceEmployeeGroupService)
	if err := groupService.RemoveGroupMember(uint(groupID), uint(employeeID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to remove group member: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
