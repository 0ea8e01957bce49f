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

// InterfaceEmployeeController defines the employee controller interface
type InterfaceEmployeeController interface {
	GetEmployees()
	GetEmployee()
	CreateEmployee()
	UpdateEmployee()
	DeleteEmployee()
	GetEmployeeGroups()
}

// EmployeeController handles employee requests
type EmployeeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(ctx *gin.Context, container *container.ServiceContainer) *EmployeeController {
	return &EmployeeController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmployeeRequest is the employee create/update body
type EmployeeRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Alisher Usmanov"`
	Photo    string `json:"photo" example:"photos/alisher.jpg"`
}

// HandleEmployeeFunc returns a Gin handler dispatching employee requests
func HandleEmployeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmployeeController(ctx, container)

		switch method {
		case "getEmployees":
			controller.GetEmployees()
		case "getEmployee":
			controller.GetEmployee()
		case "createEmployee":
			controller.CreateEmployee()
		case "updateEmployee":
			controller.UpdateEmployee()
		case "deleteEmployee":
			controller.DeleteEmployee()
		case "getEmployeeGroups":
			controller.GetEmployeeGroups()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetEmployees lists employees with pagination
// @Summary List employees
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/employees [get]
func (c *EmployeeController) GetEmployees() {
	page, pageSize := paginationParams(c.Ctx)

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employees, total, err := employeeService.GetAllEmployees(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list employees: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(employees, total, page, pageSize))
}

// 2. GetEmployee returns one employee by ID
// @Summary Get employee
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/employees/{id} [get]
func (c *EmployeeController) GetEmployee() {
	employeeID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.GetEmployeeByID(uint(employeeID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, employee)
}

// 3. CreateEmployee creates a new employee
// @Summary Create employee
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body EmployeeRequest true "Employee fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employees [post]
func (c *EmployeeController) CreateEmployee() {
	var req EmployeeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	employee := &models.Employee{
		FullName: req.FullName,
		Photo:    req.Photo,
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if err := employeeService.CreateEmployee(employee); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create employee: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, employee)
}

// 4. UpdateEmployee updates employee fields
// @Summary Update employee
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param employee body EmployeeRequest true "Employee fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/employees/{id} [put]
func (c *EmployeeController) UpdateEmployee() {
	employeeID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	var req EmployeeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Photo != "" {
		updates["photo"] = req.Photo
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.UpdateEmployee(uint(employeeID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update employee: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, employee)
}

// 5. DeleteEmployee deletes an employee and its schedules
// @Summary Delete employee
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee() {
	employeeID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if err := employeeService.DeleteEmployee(uint(employeeID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete employee: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetEmployeeGroups lists the groups an employee belongs to
// @Summary List employee groups
// @Tags Employee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/employees/{id}/groups [get]
func (c *EmployeeController) GetEmployeeGroups() {
	employeeID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	groups, err := employeeService.GetEmployeeGroups(uint(employeeID))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list employee groups: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, groups)
}
