package controllers

import (
	"github.com/gin-gonic/gin"

	"uztk-http-service/internal/domain/services/container"
	"uztk-http-service/internal/error/code"
	"uztk-http-service/internal/error/response"
)

// HealthCheckController answers liveness probes
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler dispatching health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Ping is the liveness endpoint
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports whether the database connection still answers
func (h *HealthCheckController) Status() {
	sqlDB, err := h.Container.GetDB().DB()
	if err != nil {
		response.FailWithMessage(h.Ctx, code.ErrDatabase, "Database handle unavailable: "+err.Error(), nil)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response.FailWithMessage(h.Ctx, code.ErrDatabase, "Database ping failed: "+err.Error(), nil)
		return
	}

	response.Success(h.Ctx, gin.H{
		"status":   "healthy",
		"database": "up",
	})
}
