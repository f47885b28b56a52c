package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/controllers"
	_ "visitor-http-service/docs"
	"visitor-http-service/middleware"
	"visitor-http-service/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(serviceContainer *container.ServiceContainer, db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	middleware.InitAuthMiddleware(cfg, db)

	// Uploaded ID photos are served as static files
	r.Static("/uploads", cfg.UploadDir)

	// Swagger documentation
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
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the routes the kiosk reaches without a
// token: check-in, check-out, guest lookup, the active purpose list and
// the ID photo upload
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)

	// Login is rate limited to slow down credential guessing
	api.POST("/auth/login", middleware.IPRateLimiter(1, 5), controllers.HandleJWTFunc(container, "login"))

	// Kiosk routes
	api.POST("/guests", controllers.HandleGuestFunc(container, "registerGuest"))
	api.GET("/guests/search", controllers.HandleGuestFunc(container, "searchGuests"))
	api.PUT("/guests/:id/checkout", controllers.HandleGuestFunc(container, "checkOutGuest"))
	api.PUT("/visits/:id/checkout", controllers.HandleVisitFunc(container, "checkOutVisit"))
	api.GET("/purposes/active", controllers.HandlePurposeFunc(container, "getActivePurposes"))
	api.POST("/upload/id-photo", controllers.HandleUploadFunc(container, "uploadIDPhoto"))
}

// registerAuthenticatedRoutes registers the dashboard routes behind JWT
// authentication; user administration additionally requires the admin role
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// Current account
	auth.GET("/auth/me", controllers.HandleJWTFunc(container, "me"))

	// Guest administration
	auth.Group("/guests").GET("", controllers.HandleGuestFunc(container, "getGuests"))
	auth.Group("/guests").GET("/:id", controllers.HandleGuestFunc(container, "getGuest"))
	auth.Group("/guests").PUT("/:id", controllers.HandleGuestFunc(container, "updateGuest"))
	auth.Group("/guests").DELETE("/:id", controllers.HandleGuestFunc(container, "deleteGuest"))

	// Visit administration and reporting; the aggregates sit behind a short
	// response cache so dashboard refreshes don't hammer the database
	auth.Group("/visits").GET("", controllers.HandleVisitFunc(container, "getVisits"))
	auth.Group("/visits").POST("", controllers.HandleVisitFunc(container, "createVisit"))
	auth.Group("/visits").GET("/stats", middleware.CacheByParams(30*time.Second), controllers.HandleVisitFunc(container, "getVisitStats"))
	auth.Group("/visits").GET("/report", middleware.CacheByParams(time.Minute, "startDate", "endDate"), controllers.HandleVisitFunc(container, "getVisitReport"))
	auth.Group("/visits").GET("/:id", controllers.HandleVisitFunc(container, "getVisit"))
	auth.Group("/visits").PUT("/:id", controllers.HandleVisitFunc(container, "updateVisit"))
	auth.Group("/visits").DELETE("/:id", controllers.HandleVisitFunc(container, "deleteVisit"))

	// Host administration
	auth.Group("/hosts").GET("", controllers.HandleHostFunc(container, "getHosts"))
	auth.Group("/hosts").GET("/:id", controllers.HandleHostFunc(container, "getHost"))
	auth.Group("/hosts").POST("", controllers.HandleHostFunc(container, "createHost"))
	auth.Group("/hosts").PUT("/:id", controllers.HandleHostFunc(container, "updateHost"))
	auth.Group("/hosts").DELETE("/:id", controllers.HandleHostFunc(container, "deleteHost"))

	// Department administration
	auth.Group("/departments").GET("", controllers.HandleDepartmentFunc(container, "getDepartments"))
	auth.Group("/departments").GET("/:id", controllers.HandleDepartmentFunc(container, "getDepartment"))
	auth.Group("/departments").POST("", controllers.HandleDepartmentFunc(container, "createDepartment"))
	auth.Group("/departments").PUT("/:id", controllers.HandleDepartmentFunc(container, "updateDepartment"))
	auth.Group("/departments").DELETE("/:id", controllers.HandleDepartmentFunc(container, "deleteDepartment"))

	// Role administration
	auth.Group("/roles").GET("", controllers.HandleRoleFunc(container, "getRoles"))
	auth.Group("/roles").GET("/:id", controllers.HandleRoleFunc(container, "getRole"))
	auth.Group("/roles").POST("", controllers.HandleRoleFunc(container, "createRole"))
	auth.Group("/roles").PUT("/:id", controllers.HandleRoleFunc(container, "updateRole"))
	auth.Group("/roles").DELETE("/:id", controllers.HandleRoleFunc(container, "deleteRole"))

	// Purpose administration
	auth.Group("/purposes").GET("", controllers.HandlePurposeFunc(container, "getPurposes"))
	auth.Group("/purposes").GET("/:id", controllers.HandlePurposeFunc(container, "getPurpose"))
	auth.Group("/purposes").POST("", controllers.HandlePurposeFunc(container, "createPurpose"))
	auth.Group("/purposes").PUT("/:id", controllers.HandlePurposeFunc(container, "updatePurpose"))
	auth.Group("/purposes").DELETE("/:id", controllers.HandlePurposeFunc(container, "deletePurpose"))

	// Account administration is admin only
	admin := auth.Group("/users")
	admin.Use(middleware.AuthenticateAdmin())
	admin.GET("", controllers.HandleUserFunc(container, "getUsers"))
	admin.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	admin.POST("", controllers.HandleUserFunc(container, "createUser"))
	admin.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	admin.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))
}
