package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/controllers"
	"sitegate-http-service/internal/app/middleware"
	"sitegate-http-service/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// Wire auth middleware
	middleware.InitAuthMiddleware(cfg)
	// Swagger docs route
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
	registerOperatorRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers unauthenticated routes
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	api.GET("/health", controllers.HandleHealthFunc(container))

	// Auth routes, rate limited to slow down credential guessing
	authLimit := middleware.RateLimitByIP(1, 5)
	api.POST("/auth/login", authLimit, controllers.HandleJWTFunc(container, "login"))
	api.POST("/auth/register", authLimit, controllers.HandleJWTFunc(container, "register"))
}

// registerOperatorRoutes registers routes for admin and sos roles
func registerOperatorRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	op := api.Group("/")
	op.Use(middleware.AuthenticateOperator())

	// Presence ledger
	op.POST("/presence/check-in", controllers.HandlePresenceFunc(container, "checkIn"))
	op.POST("/presence/check-out", controllers.HandlePresenceFunc(container, "checkOut"))
	op.POST("/presence/manual", controllers.HandlePresenceFunc(container, "manualEntry"))
	op.GET("/presence/active", controllers.HandlePresenceFunc(container, "getActive"))
	op.GET("/presence", controllers.HandlePresenceFunc(container, "query"))
	op.GET("/presence/:id", controllers.HandlePresenceFunc(container, "getEntry"))

	// Monthly visit statistics, cached briefly since the aggregates only
	// move on supplier check-ins
	visitCache := middleware.CacheResponse(time.Minute)
	op.GET("/suppliers/:id/visits/count", visitCache, controllers.HandleVisitFunc(container, "getCount"))
	op.GET("/suppliers/:id/visits", visitCache, controllers.HandleVisitFunc(container, "getHistory"))

	// People
	op.GET("/workers", controllers.HandleWorkerFunc(container, "getWorkers"))
	op.GET("/workers/:id", controllers.HandleWorkerFunc(container, "getWorker"))
	op.POST("/workers", controllers.HandleWorkerFunc(container, "createWorker"))
	op.PUT("/workers/:id", controllers.HandleWorkerFunc(container, "updateWorker"))

	op.GET("/suppliers", controllers.HandleSupplierFunc(container, "getSuppliers"))
	op.GET("/suppliers/:id", controllers.HandleSupplierFunc(container, "getSupplier"))
	op.POST("/suppliers", controllers.HandleSupplierFunc(container, "createSupplier"))
	op.PUT("/suppliers/:id", controllers.HandleSupplierFunc(container, "updateSupplier"))

	op.GET("/personnel", controllers.HandlePersonnelFunc(container, "getPersonnel"))
	op.GET("/personnel/:id", controllers.HandlePersonnelFunc(container, "getPersonnelByID"))
	op.POST("/personnel", controllers.HandlePersonnelFunc(container, "createPersonnel"))
	op.PUT("/personnel/:id", controllers.HandlePersonnelFunc(container, "updatePersonnel"))

	// Vehicles
	op.GET("/vehicles", controllers.HandleVehicleFunc(container, "getVehicles"))
	op.GET("/vehicles/:id", controllers.HandleVehicleFunc(container, "getVehicle"))
	op.POST("/vehicles", controllers.HandleVehicleFunc(container, "createVehicle"))
	op.PUT("/vehicles/:id", controllers.HandleVehicleFunc(container, "updateVehicle"))
	op.GET("/vehicles/:id/presences", controllers.HandleVehicleFunc(container, "getVehiclePresences"))

	// Schedules
	op.GET("/schedules", controllers.HandleScheduleFunc(container, "getSchedules"))
	op.GET("/schedules/:id", controllers.HandleScheduleFunc(container, "getSchedule"))
	op.POST("/schedules", controllers.HandleScheduleFunc(container, "createSchedule"))
	op.PUT("/schedules/:id", controllers.HandleScheduleFunc(container, "updateSchedule"))
	op.DELETE("/schedules/:id", controllers.HandleScheduleFunc(container, "deleteSchedule"))

	// Incidents: any operator can report and read
	op.POST("/incidents", controllers.HandleIncidentFunc(container, "report"))
	op.GET("/incidents", controllers.HandleIncidentFunc(container, "getIncidents"))
	op.GET("/incidents/:id", controllers.HandleIncidentFunc(container, "getIncident"))
}

// registerAdminRoutes registers admin-only routes
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	// Account management and approval workflow
	admin.GET("/accounts", controllers.HandleAccountFunc(container, "getAccounts"))
	admin.GET("/accounts/:id", controllers.HandleAccountFunc(container, "getAccount"))
	admin.POST("/accounts/:id/approve", controllers.HandleAccountFunc(container, "approve"))
	admin.PUT("/accounts/:id/active", controllers.HandleAccountFunc(container, "setActive"))

	// Incident workflow transitions
	admin.PUT("/incidents/:id/status", controllers.HandleIncidentFunc(container, "updateStatus"))

	// Destructive entity operations
	admin.DELETE("/workers/:id", controllers.HandleWorkerFunc(container, "deleteWorker"))
	admin.DELETE("/suppliers/:id", controllers.HandleSupplierFunc(container, "deleteSupplier"))
	admin.DELETE("/personnel/:id", controllers.HandlePersonnelFunc(container, "deletePersonnel"))
	admin.DELETE("/vehicles/:id", controllers.HandleVehicleFunc(container, "deleteVehicle"))
}
