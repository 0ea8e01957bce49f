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

// InterfaceTourniquetController defines the turnstile/lock controller interface
type InterfaceTourniquetController interface {
	GetLocks()
	GetLock()
	CreateLock()
	UpdateLock()
	DeleteLock()
	ToggleLock()
}

// TourniquetController handles turnstile and lock requests
type TourniquetController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTourniquetController creates a new tourniquet controller
func NewTourniquetController(ctx *gin.Context, container *container.ServiceContainer) *TourniquetController {
	return &TourniquetController{
		Ctx:       ctx,
		Container: container,
	}
}

// TourniquetLockRequest is the lock create/update body.
// LockType: 1 turnstile, 2 lock. State: 1 opened, 2 closed.
type TourniquetLockRequest struct {
	LockType   int    `json:"lock_type" example:"1"`
	State      int    `json:"state" example:"2"`
	IPAddress  string `json:"ip_address" example:"192.168.1.20"`
	LocationID uint   `json:"location_id" binding:"required" example:"1"`
}

// HandleTourniquetFunc returns a Gin handler dispatching lock requests
func HandleTourniquetFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTourniquetController(ctx, container)

		switch method {
		case "getLocks":
			controller.GetLocks()
		case "getLock":
			controller.GetLock()
		case "createLock":
			controller.CreateLock()
		case "updateLock":
			controller.UpdateLock()
		case "deleteLock":
			controller.DeleteLock()
		case "toggleLock":
			controller.ToggleLock()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetLocks lists locks with pagination, optionally filtered by location
// @Summary List locks
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Param location_id query int false "Filter by location"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/locks [get]
func (c *TourniquetController) GetLocks() {
	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)

	if locationParam := c.Ctx.Query("location_id"); locationParam != "" {
		locationID, err := strconv.Atoi(locationParam)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid location ID")
			return
		}
		locks, err := tourniquetService.GetLocksByLocation(uint(locationID))
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list locks: "+err.Error(), nil)
			return
		}
		response.Success(c.Ctx, locks)
		return
	}

	page, pageSize := paginationParams(c.Ctx)
	locks, total, err := tourniquetService.GetAllLocks(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list locks: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(locks, total, page, pageSize))
}

// 2. GetLock returns one lock by ID
// @Summary Get lock
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lock ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/locks/{id} [get]
func (c *TourniquetController) GetLock() {
	lockID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid lock ID")
		return
	}

	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)
	lock, err := tourniquetService.GetLockByID(uint(lockID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, lock)
}

// 3. CreateLock creates a new lock, closed unless a state was given
// @Summary Create lock
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lock body TourniquetLockRequest true "Lock fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/locks [post]
func (c *TourniquetController) CreateLock() {
	var req TourniquetLockRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	lock := &models.TourniquetLock{
		LockType:   models.LockType(req.LockType),
		State:      models.LockState(req.State),
		IPAddress:  req.IPAddress,
		LocationID: req.LocationID,
	}
	if req.LockType == 0 {
		lock.LockType = models.LockTypeTourniquet
	}

	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)
	if err := tourniquetService.CreateLock(lock); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrLockTypeInvalid, "Failed to create lock: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, lock)
}

// 4. UpdateLock updates lock fields
// @Summary Update lock
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lock ID"
// @Param lock body TourniquetLockRequest true "Lock fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/locks/{id} [put]
func (c *TourniquetController) UpdateLock() {
	lockID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid lock ID")
		return
	}

	var req TourniquetLockRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.LockType != 0 {
		if !models.LockType(req.LockType).Valid() {
			response.FailWithMessage(c.Ctx, code.ErrLockTypeInvalid, "Invalid lock type", nil)
			return
		}
		updates["lock_type"] = req.LockType
	}
	if req.State != 0 {
		updates["state"] = req.State
	}
	if req.IPAddress != "" {
		updates["ip_address"] = req.IPAddress
	}
	if req.LocationID != 0 {
		updates["location_id"] = req.LocationID
	}

	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)
	lock, err := tourniquetService.UpdateLock(uint(lockID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update lock: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, lock)
}

// 5. DeleteLock deletes a lock, its links and its schedules
// @Summary Delete lock
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lock ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/locks/{id} [delete]
func (c *TourniquetController) DeleteLock() {
	lockID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid lock ID")
		return
	}

	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)
	if err := tourniquetService.DeleteLock(uint(lockID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete lock: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. ToggleLock flips a lock between opened and closed.
// With a redirect target (query parameter or Referer header) it answers
// with a 302 back to the caller, otherwise it returns the updated lock.
// @Summary Toggle lock state
// @Tags Tourniquet
// @Accept json
// @Produce json
// @Param id path int true "Lock ID"
// @Param redirect query string false "URL to redirect back to"
// @Success 200 {object} map[string]interface{}
// @Success 302 {string} string "Redirect back to caller"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /locks/{id}/toggle [get]
func (c *TourniquetController) ToggleLock() {
	lockID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid lock ID")
		return
	}

	tourniquetService := c.Container.GetService("tourniquet").(services.InterfaceTourniquetService)
	lock, err := tourniquetService.ToggleLock(uint(lockID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	target := c.Ctx.Query("redirect")
	if target == "" {
		target = c.Ctx.GetHeader("Referer")
	}
	if target != "" {
		c.Ctx.Redirect(http.StatusFound, target)
		return
	}

	response.Success(c.Ctx, lock)
}
