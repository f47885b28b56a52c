package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/services"
)

// ServiceContainer wires all services together for dependency injection
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Infrastructure services
	jwtService      services.InterfaceJWTService
	redisService    *services.RedisService
	whatsAppService services.InterfaceWhatsAppService
	uploadService   services.InterfaceUploadService

	// Business services
	guestService      services.InterfaceGuestService
	visitService      services.InterfaceVisitService
	hostService       services.InterfaceHostService
	departmentService services.InterfaceDepartmentService
	roleService       services.InterfaceRoleService
	purposeService    services.InterfacePurposeService
	userService       services.InterfaceUserService

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

	// Probe the Redis connection; caching degrades to direct queries without it
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, caching will be disabled", err)
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

	// Infrastructure services
	c.jwtService = services.NewJWTService(c.config)
	c.uploadService = services.NewUploadService(c.config)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	// WhatsApp notification service; a failed connect only disables
	// notifications, it never blocks startup
	c.whatsAppService = services.NewWhatsAppService(c.config)
	if err := c.whatsAppService.Connect(); err != nil {
		log.Printf("WhatsApp connect failed: %v", err)
	}

	// Business services
	c.guestService = services.NewGuestService(c.db, c.config)
	c.visitService = services.NewVisitService(c.db, c.config, c.redisService)
	c.hostService = services.NewHostService(c.db, c.config)
	c.departmentService = services.NewDepartmentService(c.db, c.config)
	c.roleService = services.NewRoleService(c.db, c.config)
	c.purposeService = services.NewPurposeService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
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
	case "whatsapp":
		return c.whatsAppService
	case "upload":
		return c.uploadService
	case "guest":
		return c.guestService
	case "visit":
		return c.visitService
	case "host":
		return c.hostService
	case "department":
		return c.departmentService
	case "role":
		return c.roleService
	case "purpose":
		return c.purposeService
	case "user":
		return c.userService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Close releases long-lived resources held by the container
func (c *ServiceContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.whatsAppService != nil {
		c.whatsAppService.Disconnect()
	}
	if c.redis != nil {
		c.redis.Close()
	}
}
