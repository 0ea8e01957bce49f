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

// InterfaceCameraController defines the camera controller interface
type InterfaceCameraController interface {
	GetCameras()
	GetCamera()
	CreateCamera()
	UpdateCamera()
	DeleteCamera()
}

// CameraController handles camera requests
type CameraController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCameraController creates a new camera controller
func NewCameraController(ctx *gin.Context, container *container.ServiceContainer) *CameraController {
	return &CameraController{
		Ctx:       ctx,
		Container: container,
	}
}

// CameraRequest is the camera create/update body.
// Type: 1 tracking, 2 recognizing, 3 controlling.
type CameraRequest struct {
	Type       int    `json:"type" example:"2"`
	IPAddress  string `json:"ip_address" example:"192.168.1.15"`
	LocationID uint   `json:"location_id" binding:"required" example:"1"`
}

// HandleCameraFunc returns a Gin handler dispatching camera requests
func HandleCameraFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCameraController(ctx, container)

		switch method {
		case "getCameras":
			controller.GetCameras()
		case "getCamera":
			controller.GetCamera()
		case "createCamera":
			controller.CreateCamera()
		case "updateCamera":
			controller.UpdateCamera()
		case "deleteCamera":
			controller.DeleteCamera()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetCameras lists cameras with pagination, optionally filtered by location
// @Summary List cameras
// @Tags Camera
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Param location_id query int false "Filter by location"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/cameras [get]
func (c *CameraController) GetCameras() {
	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)

	if locationParam := c.Ctx.Query("location_id"); locationParam != "" {
		locationID, err := strconv.Atoi(locationParam)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid location ID")
			return
		}
		cameras, err := cameraService.GetCamerasByLocation(uint(locationID))
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list cameras: "+err.Error(), nil)
			return
		}
		response.Success(c.Ctx, cameras)
		return
	}

	page, pageSize := paginationParams(c.Ctx)
	cameras, total, err := cameraService.GetAllCameras(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list cameras: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(cameras, total, page, pageSize))
}

// 2. GetCamera returns one camera by ID
// @Summary Get camera
// @Tags Camera
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Camera ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/cameras/{id} [get]
func (c *CameraController) GetCamera() {
	cameraID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid camera ID")
		return
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	camera, err := cameraService.GetCameraByID(uint(cameraID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, camera)
}

// 3. CreateCamera creates a new camera
// @Summary Create camera
// @Tags Camera
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param camera body CameraRequest true "Camera fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/cameras [post]
func (c *CameraController) CreateCamera() {
	var req CameraRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	camera := &models.Camera{
		Type:       models.CameraType(req.Type),
		IPAddress:  req.IPAddress,
		LocationID: req.LocationID,
	}
	if req.Type == 0 {
		camera.Type = models.CameraTypeTracking
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	if err := cameraService.CreateCamera(camera); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrCameraTypeInvalid, "Failed to create camera: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, camera)
}

// 4. UpdateCamera updates camera fields
// @Summary Update camera
// @Tags Camera
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Camera ID"
// @Param camera body CameraRequest true "Camera fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/cameras/{id} [put]
func (c *CameraController) UpdateCamera() {
	cameraID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid camera ID")
		return
	}

	var req CameraRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Type != 0 {
		if !models.CameraType(req.Type).Valid() {
			response.FailWithMessage(c.Ctx, code.ErrCameraTypeInvalid, "Invalid camera type", nil)
			return
		}
		updates["type"] = req.Type
	}
	if req.IPAddress != "" {
		updates["ip_address"] = req.IPAddress
	}
	if req.LocationID != 0 {
		updates["location_id"] = req.LocationID
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	camera, err := cameraService.UpdateCamera(uint(cameraID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update camera: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, camera)
}

// 5. DeleteCamera deletes a camera and detaches it from links and users
// @Summary Delete camera
// @Tags Camera
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Camera ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/cameras/{id} [delete]
func (c *CameraController) DeleteCamera() {
	cameraID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid camera ID")
		return
	}

	cameraService := c.Container.GetService("camera").(services.InterfaceCameraService)
	if err := cameraService.DeleteCamera(uint(cameraID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete camera: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
