package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UES-FIA-2024/placement-service/internal/auth"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
	"github.com/UES-FIA-2024/placement-service/internal/services"
	"github.com/UES-FIA-2024/placement-service/internal/utils"
)

type HandlerManager struct {
	authHandler        *AuthHandler
	coordinatorHandler *CoordinatorHandler
	companyHandler     *CompanyHandler
	studentHandler     *StudentHandler
	projectHandler     *ProjectHandler
	userHandler        *UserHandler
	lookupHandler      *LookupHandler
	authMiddleware     *JWTAuthMiddleware

	repoManager repositories.RepositoryManager
}

func NewHandlerManager(
	serviceManager *services.ServiceManager,
	tokens *auth.TokenService,
	repoManager repositories.RepositoryManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:        NewAuthHandler(serviceManager.Auth, logger),
		coordinatorHandler: NewCoordinatorHandler(serviceManager.Coordinator, logger),
		companyHandler:     NewCompanyHandler(serviceManager.Company, logger),
		studentHandler:     NewStudentHandler(serviceManager.Student, logger),
		projectHandler:     NewProjectHandler(serviceManager.Project, logger),
		userHandler:        NewUserHandler(serviceManager.User, logger),
		lookupHandler:      NewLookupHandler(serviceManager.Lookup, logger),
		authMiddleware:     NewJWTAuthMiddleware(tokens),
		repoManager:        repoManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	// Unknown routes answer the same way as denied operations.
	router.NoRoute(func(c *gin.Context) {
		respondDenied(c)
	})

	api := router.Group("/api")
	{
		// Public surface: login, company self-registration and the
		// reference tables the registration form needs.
		api.POST("/login", hm.authHandler.Login)
		api.POST("/empresas", hm.authMiddleware.OptionalAuth(), hm.companyHandler.Create)
		api.GET("/carreras", hm.lookupHandler.Careers)
		api.GET("/sectores", hm.lookupHandler.Sectors)

		authenticated := api.Group("")
		authenticated.Use(hm.authMiddleware.AuthMiddleware())
		{
			authenticated.GET("/me", hm.authHandler.Me)

			coordinators := authenticated.Group("/coordinadores")
			{
				coordinators.GET("", hm.coordinatorHandler.List)
				coordinators.GET("/:id", hm.coordinatorHandler.Get)
				coordinators.POST("", hm.coordinatorHandler.Create)
				coordinators.PUT("/:id", hm.coordinatorHandler.Update)
				coordinators.DELETE("/:id", hm.coordinatorHandler.Delete)
			}

			companies := authenticated.Group("/empresas")
			{
				companies.GET("", hm.companyHandler.List)
				companies.GET("/:id", hm.companyHandler.Get)
				companies.GET("/proyecto/:id", hm.companyHandler.GetByProject)
				companies.PUT("/:id", hm.companyHandler.Update)
				companies.DELETE("/:id", hm.companyHandler.Delete)
			}

			students := authenticated.Group("/estudiantes")
			{
				students.GET("", hm.studentHandler.List)
				students.GET("/:id", hm.studentHandler.Get)
				students.POST("", hm.studentHandler.Create)
				students.PUT("/:id", hm.studentHandler.Update)
				students.DELETE("/:id", hm.studentHandler.Delete)
			}

			projects := authenticated.Group("/proyectos")
			{
				projects.GET("", hm.projectHandler.List)
				projects.GET("/:id", hm.projectHandler.Get)
				projects.POST("", hm.projectHandler.Create)
				projects.PUT("/:id", hm.projectHandler.Update)
				projects.DELETE("/:id", hm.projectHandler.Delete)
			}

			authenticated.GET("/usuarios", hm.userHandler.List)
		}
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.repoManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
