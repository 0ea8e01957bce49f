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

// InterfaceTimeSheetController defines the time sheet controller interface
type InterfaceTimeSheetController interface {
	GetEmployeeTimeSheets()
	GetEmployeeTimeSheet()
	CreateEmployeeTimeSheet()
	UpdateEmployeeTimeSheet()
	DeleteEmployeeTimeSheet()
	GetGroupTimeSheets()
	GetGroupTimeSheet()
	CreateGroupTimeSheet()
	UpdateGroupTimeSheet()
	DeleteGroupTimeSheet()
}

// TimeSheetController handles access schedule requests
type TimeSheetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTimeSheetController creates a new time sheet controller
func NewTimeSheetController(ctx *gin.Context, container *container.ServiceContainer) *TimeSheetController {
	return &TimeSheetController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmployeeTimeSheetRequest is the per-employee schedule body
type EmployeeTimeSheetRequest struct {
	EmployeeID   uint   `json:"employee_id" binding:"required" example:"1"`
	TourniquetID uint   `json:"tourniquet_id" binding:"required" example:"1"`
	StartTime    string `json:"start_time" binding:"required" example:"08:00"`
	EndTime      string `json:"end_time" binding:"required" example:"18:00"`
}

// GroupTimeSheetRequest is the per-group schedule body
type GroupTimeSheetRequest struct {
	EmployeeGroupID uint   `json:"employee_group_id" binding:"required" example:"1"`
	TourniquetID    uint   `json:"tourniquet_id" binding:"required" example:"1"`
	StartTime       string `json:"start_time" binding:"required" example:"08:00"`
	EndTime         string `json:"end_time" binding:"required" example:"18:00"`
}

// TimeSheetUpdateRequest updates only the window of a schedule
type TimeSheetUpdateRequest struct {
	StartTime string `json:"start_time" example:"09:00"`
	EndTime   string `json:"end_time" example:"17:00"`
}

// HandleTimeSheetFunc returns a Gin handler dispatching schedule requests
func HandleTimeSheetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTimeSheetController(ctx, container)

		switch method {
		case "getEmployeeTimeSheets":
			controller.GetEmployeeTimeSheets()
		case "getEmployeeTimeSheet":
			controller.GetEmployeeTimeSheet()
		case "createEmployeeTimeSheet":
			controller.CreateEmployeeTimeSheet()
		case "updateEmployeeTimeSheet":
			controller.UpdateEmployeeTimeSheet()
		case "deleteEmployeeTimeSheet":
			controller.DeleteEmployeeTimeSheet()
		case "getGroupTimeSheets":
			controller.GetGroupTimeSheets()
		case "getGroupTimeSheet":
			controller.GetGroupTimeSheet()
		case "createGroupTimeSheet":
			controller.CreateGroupTimeSheet()
		case "updateGroupTimeSheet":
			controller.UpdateGroupTimeSheet()
		case "deleteGroupTimeSheet":
			controller.DeleteGroupTimeSheet()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetEmployeeTimeSheets lists per-employee schedules
// @Summary List employee time sheets
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Param employee_id query int false "Filter by employee"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/tourniquet-time-sheets [get]
func (c *TimeSheetController) GetEmployeeTimeSheets() {
	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)

	if employeeParam := c.Ctx.Query("employee_id"); employeeParam != "" {
		employeeID, err := strconv.Atoi(employeeParam)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid employee ID")
			return
		}
		sheets, err := timeSheetService.GetEmployeeTimeSheets(uint(employeeID))
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list time sheets: "+err.Error(), nil)
			return
		}
		response.Success(c.Ctx, sheets)
		return
	}

	page, pageSize := paginationParams(c.Ctx)
	sheets, total, err := timeSheetService.GetAllEmployeeTimeSheets(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list time sheets: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(sheets, total, page, pageSize))
}

// 2. GetEmployeeTimeSheet returns one per-employee schedule
// @Summary Get employee time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/tourniquet-time-sheets/{id} [get]
func (c *TimeSheetController) GetEmployeeTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	sheet, err := timeSheetService.GetEmployeeTimeSheetByID(uint(sheetID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, sheet)
}

// 3. CreateEmployeeTimeSheet creates a per-employee schedule
// @Summary Create employee time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sheet body EmployeeTimeSheetRequest true "Schedule fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/tourniquet-time-sheets [post]
func (c *TimeSheetController) CreateEmployeeTimeSheet() {
	var req EmployeeTimeSheetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	sheet := &models.TourniquetTimeSheet{
		EmployeeID:   req.EmployeeID,
		TourniquetID: req.TourniquetID,
		StartTime:    models.TimeOfDay(req.StartTime),
		EndTime:      models.TimeOfDay(req.EndTime),
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.CreateEmployeeTimeSheet(sheet); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTimeOfDayInvalid, "Failed to create time sheet: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, sheet)
}

// 4. UpdateEmployeeTimeSheet updates the window of a schedule
// @Summary Update employee time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Param sheet body TimeSheetUpdateRequest true "Window fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/tourniquet-time-sheets/{id} [put]
func (c *TimeSheetController) UpdateEmployeeTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	var req TimeSheetUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.StartTime != "" {
		updates["start_time"] = req.StartTime
	}
	if req.EndTime != "" {
		updates["end_time"] = req.EndTime
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.UpdateEmployeeTimeSheet(uint(sheetID), updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTimeOfDayInvalid, "Failed to update time sheet: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 5. DeleteEmployeeTimeSheet deletes a per-employee schedule
// @Summary Delete employee time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/tourniquet-time-sheets/{id} [delete]
func (c *TimeSheetController) DeleteEmployeeTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.DeleteEmployeeTimeSheet(uint(sheetID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete time sheet: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetGroupTimeSheets lists per-group schedules
// @Summary List group time sheets
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Param group_id query int false "Filter by employee group"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/group-time-sheets [get]
func (c *TimeSheetController) GetGroupTimeSheets() {
	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)

	if groupParam := c.Ctx.Query("group_id"); groupParam != "" {
		groupID, err := strconv.Atoi(groupParam)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid group ID")
			return
		}
		sheets, err := timeSheetService.GetGroupTimeSheets(uint(groupID))
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list time sheets: "+err.Error(), nil)
			return
		}
		response.Success(c.Ctx, sheets)
		return
	}

	page, pageSize := paginationParams(c.Ctx)
	sheets, total, err := timeSheetService.GetAllGroupTimeSheets(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list time sheets: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(sheets, total, page, pageSize))
}

// 7. GetGroupTimeSheet returns one per-group schedule
// @Summary Get group time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/group-time-sheets/{id} [get]
func (c *TimeSheetController) GetGroupTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	sheet, err := timeSheetService.GetGroupTimeSheetByID(uint(sheetID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, sheet)
}

// 8. CreateGroupTimeSheet creates a per-group schedule
// @Summary Create group time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sheet body GroupTimeSheetRequest true "Schedule fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/group-time-sheets [post]
func (c *TimeSheetController) CreateGroupTimeSheet() {
	var req GroupTimeSheetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	sheet := &models.EmployeeGroupTimeSheet{
		EmployeeGroupID: req.EmployeeGroupID,
		TourniquetID:    req.TourniquetID,
		StartTime:       models.TimeOfDay(req.StartTime),
		EndTime:         models.TimeOfDay(req.EndTime),
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.CreateGroupTimeSheet(sheet); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTimeOfDayInvalid, "Failed to create time sheet: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, sheet)
}

// 9. UpdateGroupTimeSheet updates the window of a schedule
// @Summary Update group time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Param sheet body TimeSheetUpdateRequest true "Window fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/group-time-sheets/{id} [put]
func (c *TimeSheetController) UpdateGroupTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	var req TimeSheetUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.StartTime != "" {
		updates["start_time"] = req.StartTime
	}
	if req.EndTime != "" {
		updates["end_time"] = req.EndTime
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.UpdateGroupTimeSheet(uint(sheetID), updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTimeOfDayInvalid, "Failed to update time sheet: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 10. DeleteGroupTimeSheet deletes a per-group schedule
// @Summary Delete group time sheet
// @Tags TimeSheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time sheet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/group-time-sheets/{id} [delete]
func (c *TimeSheetController) DeleteGroupTimeSheet() {
	sheetID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid time sheet ID")
		return
	}

	timeSheetService := c.Container.GetService("timesheet").(services.InterfaceTimeSheetService)
	if err := timeSheetService.DeleteGroupTimeSheet(uint(sheetID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete time sheet: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
