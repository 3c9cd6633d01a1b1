// Package app provides router configuration.
package app

import (
	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/http"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
// db, idempotency and sink may be nil.
func InitializeRouter(
	cfg config.Config,
	db *DatabaseComponents,
	services *ServiceComponents,
	idempotency *IdempotencyComponents,
	sink middleware.LogSink,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	if db != nil {
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", db.DB)
		}
		for name, cb := range db.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Paging: http.Paging{
			DefaultLimit: cfg.Domain.DefaultPageSize,
			MaxLimit:     cfg.Domain.MaxPageSize,
		},
		IdempotencyTTL: cfg.Redis.KeyTTL,
		AuditSink:      sink,
	}

	if idempotency != nil {
		routerCfg.IdempotencyStore = idempotency.Store
		if idempotency.Redis != nil {
			healthHandler.RegisterChecker("redis", idempotency)
		}
	}

	if services != nil {
		routerCfg.AuthService = services.Auth
		routerCfg.UserService = services.Users
		routerCfg.JobService = services.Jobs
		routerCfg.PotholeService = services.Potholes
		routerCfg.JobTypeService = services.JobTypes
		routerCfg.LoggingService = services.Logging
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
