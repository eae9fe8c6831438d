package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/library_management_app/cmd/docs"
	portssvc "github.com/SscSPs/library_management_app/internal/core/ports/services"
	"github.com/SscSPs/library_management_app/internal/middleware"
	"github.com/SscSPs/library_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewIPLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to create login rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1")

	// Public authentication routes
	registerAuthRoutes(v1, middleware.RateLimit(loginLimiter), services.User, services.Token)

	// Everything else requires a bearer token
	setupAPIV1Routes(v1, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes applies AuthMiddleware and delegates to specific entity route registrations
func setupAPIV1Routes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	protected := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMemberRoutes(protected, service.User)
	registerAuthorRoutes(protected, service.Author)
	registerBookRoutes(protected, service.Book)
	registerBookCopyRoutes(protected, service.BookCopy)
	registerTransactionRoutes(protected, service.Borrowing, service.LibraryConfig)
	registerReportingRoutes(protected, service.Reporting)
	registerLibraryConfigRoutes(protected, service.LibraryConfig)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
