package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/handler"
	"github.com/painel-adm/revendas-api/internal/middleware"
	"github.com/painel-adm/revendas-api/internal/models"
	"github.com/painel-adm/revendas-api/internal/service"
	"github.com/painel-adm/revendas-api/pkg/config"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/logger"
	corsmiddleware "github.com/painel-adm/revendas-api/pkg/middleware/cors"
	reqidmiddleware "github.com/painel-adm/revendas-api/pkg/middleware/requestid"
	securemiddleware "github.com/painel-adm/revendas-api/pkg/middleware/secure"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// Deps aggregates everything the router needs.
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Auth      *service.AuthService
	Revendas  *service.RevendaService
	Admins    *service.AdminService
	Logs      *service.LogService
	Dashboard *service.DashboardService
	Metrics   *service.MetricsService
	Counter   middleware.CounterStore
}

// New assembles the gin engine with the full middleware chain and routes.
// Middleware order matters: recovery and identification first, then
// observability, then protections, then routing.
func New(deps Deps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if len(cfg.Server.TrustedProxies) > 0 {
		_ = r.SetTrustedProxies(cfg.Server.TrustedProxies)
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logr.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.Error(c, appErrors.ErrInternal)
		c.Abort()
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(securemiddleware.New(securemiddleware.Options{HSTS: cfg.Env == config.EnvProduction}))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(deps.Counter, middleware.RateLimitConfig{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
		}, deps.Metrics, logr))
	}
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Rota não encontrada"))
	})

	metricsHandler := handler.NewMetricsHandler(deps.Metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(deps.Auth))

	protected.GET("/auth/validate", authHandler.Validate)
	protected.POST("/auth/logout", authHandler.Logout)

	revendaHandler := handler.NewRevendaHandler(deps.Revendas)
	revendas := protected.Group("/revendas")
	revendas.GET("", revendaHandler.List)
	revendas.GET("/:id", revendaHandler.Get)
	revendas.POST("", revendaHandler.Create)
	revendas.PUT("/:id", revendaHandler.Update)
	revendas.DELETE("/:id", revendaHandler.Delete)

	adminHandler := handler.NewAdminHandler(deps.Admins)
	admins := protected.Group("/admins")
	admins.GET("", adminHandler.List)
	admins.GET("/:id", middleware.RequireNivel(string(models.NivelSuper), middleware.SelfMarker), adminHandler.Get)
	admins.POST("", middleware.RequireNivel(string(models.NivelSuper)), adminHandler.Create)
	admins.PUT("/:id", middleware.RequireNivel(string(models.NivelSuper)), adminHandler.Update)
	admins.DELETE("/:id", middleware.RequireNivel(string(models.NivelSuper)), adminHandler.Delete)

	logHandler := handler.NewLogHandler(deps.Logs)
	logs := protected.Group("/logs")
	logs.GET("", logHandler.List)
	logs.GET("/export", logHandler.Export)
	logs.GET("/:id", logHandler.Get)

	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	protected.GET("/dashboard", dashboardHandler.Resumo)

	// The panel front end probes health under the API prefix as well.
	api.GET("/health", metricsHandler.Health)

	return r
}
