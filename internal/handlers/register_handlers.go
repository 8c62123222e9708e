package handlers

import (
	"html/template"
	"net/http"

	"github.com/SscSPs/cash_breakdown/cmd/docs"
	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/middleware"
	"github.com/SscSPs/cash_breakdown/internal/platform/config"
	"github.com/SscSPs/cash_breakdown/internal/presentation"
	"github.com/SscSPs/cash_breakdown/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	presenter := presentation.NewPresenter(cfg.MaxUnitsPerRow)

	// CORS runs on the engine so preflight requests see it before routing.
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(web.TemplatesFS, "templates/*.html")))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Shared by every route that runs a conversion.
	rateLimit := middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimit))

	registerHomeRoutes(r, services.Conversion, presenter, rateLimit)

	setupAPIV1Routes(r, services, presenter, rateLimit)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the rate-limited /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	presenter *presentation.Presenter,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", rateLimit)

	RegisterConversionRoutes(v1, services.Conversion, presenter)
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
