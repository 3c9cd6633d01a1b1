package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// exportPath is served uncompressed; the workbook is already a zip archive.
const exportPath = "/api/potholes/export"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	Paging         Paging

	IdempotencyStore middleware.IdempotencyStore
	IdempotencyTTL   time.Duration
	// AuditSink receives request and audit log entries. Nil disables persistence.
	AuditSink middleware.LogSink

	AuthService    service.AuthService
	UserService    service.UserService
	JobService     service.JobService
	PotholeService service.PotholeService
	JobTypeService service.JobTypeService
	LoggingService service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
		Paging:         DefaultPaging(),
	}
}

// NewRouter creates and configures the Gin router for the roadworks service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	if cfg.Paging.DefaultLimit <= 0 {
		cfg.Paging = DefaultPaging()
	}

	router := gin.New()
	router.ContextWithFallback = true

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.AuthService == nil {
		return router
	}

	authRoutes := NewAuthRoutes(cfg.AuthService, cfg.AuditSink)
	authRoutes.RegisterPublicRoutes(api)

	protected := protectedGroup(api, &cfg)
	groups := []ProtectedRouteGroup{authRoutes}
	if cfg.UserService != nil {
		groups = append(groups, NewUserRoutes(cfg.UserService, cfg.AuditSink, cfg.Paging))
	}
	if cfg.JobService != nil {
		groups = append(groups, NewJobRoutes(cfg.JobService, cfg.AuditSink, cfg.Paging))
	}
	if cfg.PotholeService != nil {
		groups = append(groups, NewPotholeRoutes(cfg.PotholeService, cfg.AuditSink, cfg.Paging))
	}
	if cfg.JobTypeService != nil {
		groups = append(groups, NewJobTypeRoutes(cfg.JobTypeService, cfg.AuditSink, cfg.Paging))
	}
	if cfg.LoggingService != nil {
		groups = append(groups, NewLogRoutes(cfg.LoggingService, cfg.Paging))
	}
	for _, g := range groups {
		g.RegisterProtectedRoutes(protected)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", RefreshTokenHeader, middleware.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition", ExportRowsHeader, "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(exportPath),
		middleware.RequestLogger(cfg.AuditSink),
		middleware.ErrorHandler(),
		middleware.Timeout(cfg.RequestTimeout),
	)

	if cfg.RateLimit > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{cfg.SwaggerUser: cfg.SwaggerPass}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// protectedGroup returns the API group behind JWT auth, per-user rate limiting and idempotency.
func protectedGroup(api *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.AuthService))

	if cfg.RateLimit > 0 {
		protected.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).UserRateLimit())
	}
	if cfg.IdempotencyStore != nil {
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Store: cfg.IdempotencyStore,
			TTL:   cfg.IdempotencyTTL,
		}))
	}

	return protected
}
