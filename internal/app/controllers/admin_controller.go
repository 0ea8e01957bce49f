package controllers

import (
	"uztk-http-service/internal/domain/admin"
	"uztk-http-service/internal/domain/services/container"
	"uztk-http-service/internal/error/code"
	"uztk-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController defines the admin surface controller interface
type InterfaceAdminController interface {
	GetRegistry()
	GetEntityDisplay()
}

// AdminController serves the display registry behind the admin surface
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAdminFunc returns a Gin handler dispatching admin registry requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getRegistry":
			controller.GetRegistry()
		case "getEntityDisplay":
			controller.GetEntityDisplay()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// 1. GetRegistry lists every managed entity and its list-view columns
// @Summary Get admin display registry
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/registry [get]
func (c *AdminController) GetRegistry() {
	registry := c.Container.GetService("admin_registry").(*admin.Registry)
	response.Success(c.Ctx, registry.List())
}

// 2. GetEntityDisplay returns the display declaration of one entity
// @Summary Get entity display declaration
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param entity path string true "Entity name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /admin/registry/{entity} [get]
func (c *AdminController) GetEntityDisplay() {
	registry := c.Container.GetService("admin_registry").(*admin.Registry)

	display, ok := registry.Get(c.Ctx.Param("entity"))
	if !ok {
		response.NotFound(c.Ctx, "unknown entity")
		return
	}

	response.Success(c.Ctx, display)
}
