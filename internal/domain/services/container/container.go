package container

import (
	"context"
	"log"
	"sync"
	"time"

	"uztk-http-service/internal/domain/admin"
	"uztk-http-service/internal/domain/services"
	"uztk-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// business services
	locationService      services.InterfaceLocationService
	employeeService      services.InterfaceEmployeeService
	employeeGroupService services.InterfaceEmployeeGroupService
	cameraService        services.InterfaceCameraService
	tourniquetService    services.InterfaceTourniquetService
	cameraLinkService    services.InterfaceCameraLinkService
	timeSheetService     services.InterfaceTimeSheetService
	userService          services.InterfaceUserService

	// admin display registry
	adminRegistry *admin.Registry

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// probe the Redis connection when one was provided
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis ping failed: %v, running without Redis cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)

	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	c.locationService = services.NewLocationService(c.db, c.config)
	c.employeeService = services.NewEmployeeService(c.db, c.config)
	c.employeeGroupService = services.NewEmployeeGroupService(c.db, c.config)
	c.cameraService = services.NewCameraService(c.db, c.config)
	c.tourniquetService = services.NewTourniquetService(c.db, c.config, c.redisService)
	c.cameraLinkService = services.NewCameraLinkService(c.db, c.config)
	c.timeSheetService = services.NewTimeSheetService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)

	c.adminRegistry = admin.NewRegistry()
}

// GetDB returns the shared database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "location":
		return c.locationService
	case "employee":
		return c.employeeService
	case "employee_group":
		return c.employeeGroupService
	case "camera":
		return c.cameraService
	case "tourniquet":
		return c.tourniquetService
	case "camera_link":
		return c.cameraLinkService
	case "timesheet":
		return c.timeSheetService
	case "user":
		return c.userService
	case "admin_registry":
		return c.adminRegistry
	default:
		return nil
	}
}
