package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"sitegate-http-service/config"
	"sitegate-http-service/services"
)

// ServiceContainer wires all service dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	eventLogger  services.EventLogger

	// Core services
	ownerService    services.InterfaceOwnerService
	visitService    services.InterfaceVisitCounterService
	presenceService services.InterfacePresenceService
	authService     services.InterfaceAuthService

	// Entity services
	workerService    services.InterfaceWorkerService
	supplierService  services.InterfaceSupplierService
	personnelService services.InterfacePersonnelService
	vehicleService   services.InterfaceVehicleService
	scheduleService  services.InterfaceScheduleService
	incidentService  services.InterfaceIncidentService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	// Probe the Redis connection; the cache is optional so a failed probe
	// just means we run without it.
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("Redis probe failed: %v, running without session cache", err)
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

// initializeServices wires all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.eventLogger = services.NewEventLogger()
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = &services.RedisService{Client: c.redis, Ctx: context.Background()}

	c.ownerService = services.NewOwnerService(c.db, c.config)
	c.visitService = services.NewVisitCounterService(c.db, c.config)
	c.presenceService = services.NewPresenceService(c.db, c.config, c.ownerService, c.visitService, c.eventLogger)
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService, c.redisService, c.eventLogger)

	c.workerService = services.NewWorkerService(c.db, c.config)
	c.supplierService = services.NewSupplierService(c.db, c.config)
	c.personnelService = services.NewPersonnelService(c.db, c.config)
	c.vehicleService = services.NewVehicleService(c.db, c.config, c.ownerService)
	c.scheduleService = services.NewScheduleService(c.db, c.config, c.ownerService)
	c.incidentService = services.NewIncidentService(c.db, c.config)
}

// GetService returns the service registered under name
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
	case "events":
		return c.eventLogger
	case "owner":
		return c.ownerService
	case "visit":
		return c.visitService
	case "presence":
		return c.presenceService
	case "auth":
		return c.authService
	case "worker":
		return c.workerService
	case "supplier":
		return c.supplierService
	case "personnel":
		return c.personnelService
	case "vehicle":
		return c.vehicleService
	case "schedule":
		return c.scheduleService
	case "incident":
		return c.incidentService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
