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

// InterfaceLocationController defines the location controller interface
type InterfaceLocationController interface {
	GetLocations()
	GetLocation()
	CreateLocation()
	UpdateLocation()
	DeleteLocation()
}

// LocationController handles location requests
type LocationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLocationController creates a new location controller
func NewLocationController(ctx *gin.Context, container *container.ServiceContainer) *LocationController {
	return &LocationController{
		Ctx:       ctx,
		Container: container,
	}
}

// LocationRequest is the location create/update body
type LocationRequest struct {
	Title       string `json:"title" binding:"required" example:"Main entrance"`
	Coordinates string `json:"coordinates" example:"41.311081,69.240562"`
}

// HandleLocationFunc returns a Gin handler dispatching location requests
func HandleLocationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLocationController(ctx, container)

		switch method {
		case "getLocations":
			controller.GetLocations()
		case "getLocation":
			controller.GetLocation()
		case "createLocation":
			controller.CreateLocation()
		case "updateLocation":
			controller.UpdateLocation()
		case "deleteLocation":
			controller.DeleteLocation()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetLocations lists locations with pagination
// @Summary List locations
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param page_size query int false "Page size, default 10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/locations [get]
func (c *LocationController) GetLocations() {
	page, pageSize := paginationParams(c.Ctx)

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	locations, total, err := locationService.GetAllLocations(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to list locations: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginated(locations, total, page, pageSize))
}

// 2. GetLocation returns one location by ID
// @Summary Get location
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/locations/{id} [get]
func (c *LocationController) GetLocation() {
	locationID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid location ID")
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	location, err := locationService.GetLocationByID(uint(locationID))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, location)
}

// 3. CreateLocation creates a new location
// @Summary Create location
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationRequest true "Location fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/locations [post]
func (c *LocationController) CreateLocation() {
	var req LocationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	location := &models.Location{
		Title:       req.Title,
		Coordinates: req.Coordinates,
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	if err := locationService.CreateLocation(location); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create location: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, location)
}

// 4. UpdateLocation updates location fields
// @Summary Update location
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param location body LocationRequest true "Location fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/locations/{id} [put]
func (c *LocationController) UpdateLocation() {
	locationID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid location ID")
		return
	}

	var req LocationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid request parameters: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Coordinates != "" {
		updates["coordinates"] = req.Coordinates
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	location, err := locationService.UpdateLocation(uint(locationID), updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update location: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, location)
}

// 5. DeleteLocation deletes a location and everything mounted at it
// @Summary Delete location
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/locations/{id} [delete]
func (c *LocationController) DeleteLocation() {
	locationID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "Invalid location ID")
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	if err := locationService.DeleteLocation(uint(locationID)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete location: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
