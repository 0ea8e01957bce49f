package controllers

import (
	"net/http"
	"strconv"

	"uztk-http-service/internal/domain/models"
	"uztk-http-service/internal/domain/services"
	"uztk-http-service/internal/domain/services/container"
	"uztk-http-service/internal/error/code"
	"uztk-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	GetUserDetail()
	CreateUser()
	UpdateUser()
	AssignCameras()
	DeleteUser()
	GetMe()
	UpdateMe()
	RedirectMe()
}

// UserController handles user requests, both the admin CRUD surface
// and the views the guard user sees about themselves
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest is the user create body
type UserRequest struct {
	Username string `json:"username" binding:"required" example:"guard01"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Name     string `json:"name" example:"Bekzod"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// UserUpdateRequest is the user update body
type UserUpdateRequest struct {
	Username string `json:"username" example:"guard01"`
	Password string `json:"password" example:"secret123"`
	Name     string `json:"name" example:"Bekzod"`
}

// UserCamerasRequest replaces the camera set assigned to a user
type UserCamerasRequest struct {
	CameraIDs []uint `json:"camera_ids" example:"1,2"`
}

// UserNameRequest updates only the display name
type UserNameRequest struct {
	Name string `json:"name" binding:"required" example:"Bekzod"`
}

// HandleUserFunc returns a Gin handler dispatching user requests
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "getUserDetail":
			controller.GetUserDetail()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "assignCameras":
			controller.AssignCameras()
		case "deleteUser":
			controller.DeleteUser()
		case "getMe":
			controller.GetMe()
		case "updateMe":
			controller.UpdateMe()
		case "redirectMe":
			controller.RedirectMe()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// currentUserID reads the authenticated user's ID set by the middleware
func (c *UserController) currentUserID() (uint, bool) {
	raw, exists := c.Ctx.Get("userID")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

// 1. GetUsers lists users with pagination
// @Summary List users
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [get]
func (c *UserController) GetUsers() {
	page, pageSize := paginationParams(c.Ctx)

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list users: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(users, total, page, pageSize))
}

// 2. GetUser returns one user by ID
// @Summary Get user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [get]
func (c *UserController) GetUser() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(userID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, user)
}

// 3. GetUserDetail returns the flattened camera and lock views for a user
// @Summary Get user detail
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id}/detail [get]
func (c *UserController) GetUserDetail() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	detail, err := userService.GetUserDetail(uint(userID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, detail)
}

// 4. CreateUser creates a new user
// @Summary Create user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UserRequest true "User fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	role := models.UserRoleGuard
	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     &role,
		IsAdmin:  req.IsAdmin,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(user); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, "Failed to create user: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, user)
}

// 5. UpdateUser updates user fields
// @Summary Update user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body UserUpdateRequest true "User fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{id} [put]
func (c *UserController) UpdateUser() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid user ID")
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.UpdateUser(uint(userID), updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. AssignCameras replaces the camera set assigned to a user
// @Summary Assign cameras to user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param cameras body UserCamerasRequest true "Camera set"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users/{id}/cameras [put]
func (c *UserController) AssignCameras() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid user ID")
		return
	}

	var req UserCamerasRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.AssignCameras(uint(userID), req.CameraIDs); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to assign cameras: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 7. DeleteUser deletes a user and its camera assignments
// @Summary Delete user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *UserController) DeleteUser() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(userID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete user: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 8. GetMe returns the authenticated user's detail view
// @Summary Get own detail
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/me [get]
func (c *UserController) GetMe() {
	userID, ok := c.currentUserID()
	if !ok {
		response.Unauthorized(c.Ctx, "Missing user identity")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	detail, err := userService.GetUserDetail(userID)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, detail)
}

// 9. UpdateMe changes the authenticated user's display name
// @Summary Update own name
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name body UserNameRequest true "New display name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [put]
func (c *UserController) UpdateMe() {
	userID, ok := c.currentUserID()
	if !ok {
		response.Unauthorized(c.Ctx, "Missing user identity")
		return
	}

	var req UserNameRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.UpdateUserName(userID, req.Name); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update name: "+err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "information successfully updated", gin.H{
		"detail_url": "/api/users/me",
	})
}

// 10. RedirectMe sends the authenticated user to their detail view
// @Summary Redirect to own detail
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 302 {string} string "Redirect to /api/users/me"
// @Failure 401 {object} ErrorResponse
// @Router /users/redirect [get]
func (c *UserController) RedirectMe() {
	if _, ok := c.currentUserID(); !ok {
		response.Unauthorized(c.Ctx, "Missing user identity")
		return
	}

	c.Ctx.Redirect(http.StatusFound, "/api/users/me")
}
