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

// InterfaceCameraLinkController defines the camera link controller interface
type InterfaceCameraLinkController interface {
	GetLinks()
	GetLink()
	CreateLink()
	SetLinkCameras()
	DeleteLink()
}

// CameraLinkController handles camera-to-lock link requests
type CameraLinkController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCameraLinkController creates a new camera link controller
func NewCameraLinkController(ctx *gin.Context, container *container.ServiceContainer) *CameraLinkController {
	return &CameraLinkController{
		Ctx:       ctx,
		Container: container,
	}
}

// CameraLinkRequest is the link create body
type CameraLinkRequest struct {
	TourniquetID uint   `json:"tourniquet_id" binding:"required" example:"1"`
	CameraIDs    []uint `json:"camera_ids" example:"1,2"`
}

// CameraSetRequest replaces the camera set of a link
type CameraSetRequest struct {
	CameraIDs []uint `json:"camera_ids" example:"1,2"`
}

// HandleCameraLinkFunc returns a Gin handler dispatching link requests
func HandleCameraLinkFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCameraLinkController(ctx, container)

		switch method {
		case "getLinks":
			controller.GetLinks()
		case "getLink":
			controller.GetLink()
		case "createLink":
			controller.CreateLink()
		case "setLinkCameras":
			controller.SetLinkCameras()
		case "deleteLink":
			controller.DeleteLink()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetLinks lists camera-to-lock links with pagination
// @Summary List camera links
// @Tags CameraLink
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/camera-links [get]
func (c *CameraLinkController) GetLinks() {
	page, pageSize := paginationParams(c.Ctx)

	linkService := c.Container.GetService("camera_link").(services.InterfaceCameraLinkService)
	links, total, err := linkService.GetAllLinks(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list camera links: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(links, total, page, pageSize))
}

// 2. GetLink returns one link by ID
// @Summary Get camera link
// @Tags CameraLink
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/camera-links/{id} [get]
func (c *CameraLinkController) GetLink() {
	linkID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid link ID")
		return
	}

	linkService := c.Container.GetService("camera_link").(services.InterfaceCameraLinkService)
	link, err := linkService.GetLinkByID(uint(linkID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, link)
}

// 3. CreateLink links a camera set to a lock
// @Summary Create camera link
// @Tags CameraLink
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body CameraLinkRequest true "Link fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/camera-links [post]
func (c *CameraLinkController) CreateLink() {
	var req CameraLinkRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	link := &models.CameraToTourniquetLock{
		TourniquetID: req.TourniquetID,
	}

	linkService := c.Container.GetService("camera_link").(services.InterfaceCameraLinkService)
	if err := linkService.CreateLink(link, req.CameraIDs); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create camera link: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, link)
}

// 4. SetLinkCameras replaces the camera set of a link
// @Summary Replace link cameras
// @Tags CameraLink
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param cameras body CameraSetRequest true "Camera set"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/camera-links/{id}/cameras [put]
func (c *CameraLinkController) SetLinkCameras() {
	linkID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid link ID")
		return
	}

	var req CameraSetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	linkService := c.Container.GetService("camera_link").(services.InterfaceCameraLinkService)
	if err := linkService.SetLinkCameras(uint(linkID), req.CameraIDs); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to set link cameras: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 5. DeleteLink deletes a link and its camera-set rows
// @Summary Delete camera link
// @Tags CameraLink
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/camera-links/{id} [delete]
func (c *CameraLinkController) DeleteLink() {
	linkID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid link ID")
		return
	}

	linkService := c.Container.GetService("camera_link").(services.InterfaceCameraLinkService)
	if err := linkService.DeleteLink(uint(linkID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete camera link: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
