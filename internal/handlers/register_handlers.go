package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kantocollect/salesops/cmd/docs"
	portssvc "github.com/kantocollect/salesops/internal/core/ports/services"
	"github.com/kantocollect/salesops/internal/middleware"
	"github.com/kantocollect/salesops/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterCOGSRuleRoutes(v1, service.COGSRule)
	RegisterSaleRoutes(v1, service.Sale, service.Catalog)
	RegisterCatalogRoutes(v1, service.Catalog, service.Sale)
	RegisterShowRoutes(v1, service.Show)
	RegisterAnalyticsRoutes(v1, service.Analytics)
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
