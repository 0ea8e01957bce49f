package routes

import (
	"time"

	_ "uztk-http-service/docs"
	"uztk-http-service/internal/app/controllers"
	"uztk-http-service/internal/app/middleware"
	"uztk-http-service/internal/domain/services/container"
	"uztk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg, db)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerUserRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers routes served without authentication
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// allow 10 requests per second per IP, bursts up to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))

	// lock toggle stays open so wall-mounted panels can drive it directly
	api.GET("/locks/:id/toggle", middleware.PathRateLimiter(5, 10), controllers.HandleTourniquetFunc(container, "toggleLock"))
}

// registerUserRoutes registers the views an authenticated guard user sees
func registerUserRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	users := api.Group("/users")
	users.Use(middleware.AuthenticateUser())
	users.Use(middleware.IPRateLimiter(30, 50))

	users.GET("/me", controllers.HandleUserFunc(container, "getMe"))
	users.PUT("/me", controllers.HandleUserFunc(container, "updateMe"))
	users.GET("/redirect", controllers.HandleUserFunc(container, "redirectMe"))
}

// registerAdminRoutes registers the administration surface
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/admin")
	auth.Use(middleware.AuthenticateAdmin())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// display registry
	auth.GET("/registry", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleAdminFunc(container, "getRegistry"))
	auth.GET("/registry/:entity", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleAdminFunc(container, "getEntityDisplay"))

	// locations
	locationGroup := auth.Group("/locations")
	locationGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleLocationFunc(container, "getLocations"))
	locationGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleLocationFunc(container, "getLocation"))
	locationGroup.POST("", controllers.HandleLocationFunc(container, "createLocation"))
	locationGroup.PUT("/:id", controllers.HandleLocationFunc(container, "updateLocation"))
	locationGroup.DELETE("/:id", controllers.HandleLocationFunc(container, "deleteLocation"))

	// employees
	employeeGroup := auth.Group("/employees")
	employeeGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleEmployeeFunc(container, "getEmployees"))
	employeeGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleEmployeeFunc(container, "getEmployee"))
	employeeGroup.POST("", controllers.HandleEmployeeFunc(container, "createEmployee"))
	employeeGroup.PUT("/:id", controllers.HandleEmployeeFunc(container, "updateEmployee"))
	employeeGroup.DELETE("/:id", controllers.HandleEmployeeFunc(container, "deleteEmployee"))
	employeeGroup.GET("/:id/groups", controllers.HandleEmployeeFunc(container, "getEmployeeGroups"))

	// employee groups
	groupGroup := auth.Group("/employee-groups")
	groupGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleEmployeeGroupFunc(container, "getGroups"))
	groupGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleEmployeeGroupFunc(container, "getGroup"))
	groupGroup.POST("", controllers.HandleEmployeeGroupFunc(container, "createGroup"))
	groupGroup.PUT("/:id", controllers.HandleEmployeeGroupFunc(container, "updateGroup"))
	groupGroup.DELETE("/:id", controllers.HandleEmployeeGroupFunc(container, "deleteGroup"))
	groupGroup.GET("/:id/members", controllers.HandleEmployeeGroupFunc(container, "getGroupMembers"))
	groupGroup.POST("/:id/members", controllers.HandleEmployeeGroupFunc(container, "addGroupMember"))
	groupGroup.DELETE("/:id/members/:employee_id", controllers.HandleEmployeeGroupFunc(container, "removeGroupMember"))

	// cameras
	cameraGroup := auth.Group("/cameras")
	cameraGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleCameraFunc(container, "getCameras"))
	cameraGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleCameraFunc(container, "getCamera"))
	cameraGroup.POST("", controllers.HandleCameraFunc(container, "createCamera"))
	cameraGroup.PUT("/:id", controllers.HandleCameraFunc(container, "updateCamera"))
	cameraGroup.DELETE("/:id", controllers.HandleCameraFunc(container, "deleteCamera"))

	// turnstiles and locks
	lockGroup := auth.Group("/locks")
	lockGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleTourniquetFunc(container, "getLocks"))
	lockGroup.GET("/:id", controllers.HandleTourniquetFunc(container, "getLock"))
	lockGroup.POST("", controllers.HandleTourniquetFunc(container, "createLock"))
	lockGroup.PUT("/:id", controllers.HandleTourniquetFunc(container, "updateLock"))
	lockGroup.DELETE("/:id", controllers.HandleTourniquetFunc(container, "deleteLock"))

	// camera-to-lock links
	linkGroup := auth.Group("/camera-links")
	linkGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleCameraLinkFunc(container, "getLinks"))
	linkGroup.GET("/:id", controllers.HandleCameraLinkFunc(container, "getLink"))
	linkGroup.POST("", controllers.HandleCameraLinkFunc(container, "createLink"))
	linkGroup.PUT("/:id/cameras", controllers.HandleCameraLinkFunc(container, "setLinkCameras"))
	linkGroup.DELETE("/:id", controllers.HandleCameraLinkFunc(container, "deleteLink"))

	// per-employee schedules
	sheetGroup := auth.Group("/tourniquet-time-sheets")
	sheetGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleTimeSheetFunc(container, "getEmployeeTimeSheets"))
	sheetGroup.GET("/:id", controllers.HandleTimeSheetFunc(container, "getEmployeeTimeSheet"))
	sheetGroup.POST("", controllers.HandleTimeSheetFunc(container, "createEmployeeTimeSheet"))
	sheetGroup.PUT("/:id", controllers.HandleTimeSheetFunc(container, "updateEmployeeTimeSheet"))
	sheetGroup.DELETE("/:id", controllers.HandleTimeSheetFunc(container, "deleteEmployeeTimeSheet"))

	// per-group schedules
	groupSheetGroup := auth.Group("/group-time-sheets")
	groupSheetGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleTimeSheetFunc(container, "getGroupTimeSheets"))
	groupSheetGroup.GET("/:id", controllers.HandleTimeSheetFunc(container, "getGroupTimeSheet"))
	groupSheetGroup.POST("", controllers.HandleTimeSheetFunc(container, "createGroupTimeSheet"))
	groupSheetGroup.PUT("/:id", controllers.HandleTimeSheetFunc(container, "updateGroupTimeSheet"))
	groupSheetGroup.DELETE("/:id", controllers.HandleTimeSheetFunc(container, "deleteGroupTimeSheet"))

	// users
	userGroup := auth.Group("/users")
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.GET("/:id/detail", controllers.HandleUserFunc(container, "getUserDetail"))
	userGroup.POST("", controllers.HandleUserFunc(container, "createUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	userGroup.PUT("/:id/cameras", controllers.HandleUserFunc(container, "assignCameras"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
}
