//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

func TestInitializeRouter(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
			CORSOrigins:    []string{"http://localhost:3000"},
		},
		Redis:  config.RedisConfig{KeyTTL: time.Hour},
		Domain: config.DomainConfig{DefaultPageSize: 25, MaxPageSize: 200},
	}

	t.Run("without database", func(t *testing.T) {
		components := InitializeRouter(cfg, nil, InitializeServices(cfg, nil), nil, nil)

		assert.NotNil(t, components.HealthHandler)
		assert.Equal(t, 100, components.Config.RateLimit)
		assert.Equal(t, 10*time.Second, components.Config.RequestTimeout)
		assert.Equal(t, 25, components.Config.Paging.DefaultLimit)
		assert.Equal(t, 200, components.Config.Paging.MaxLimit)
		assert.Equal(t, time.Hour, components.Config.IdempotencyTTL)
		assert.Nil(t, components.Config.AuthService)
		assert.Nil(t, components.Config.IdempotencyStore)
	})

	t.Run("with services and idempotency", func(t *testing.T) {
		idem := InitializeIdempotency(config.RedisConfig{})
		defer func() { _ = idem.Close(context.Background()) }()

		services := &ServiceComponents{
			Auth:     new(mocks.MockAuthService),
			Users:    new(mocks.MockUserService),
			Jobs:     new(mocks.MockJobService),
			Potholes: new(mocks.MockPotholeService),
			JobTypes: new(mocks.MockJobTypeService),
			Logging:  new(mocks.MockLoggingService),
		}
		db := &DatabaseComponents{CircuitBreakers: map[string]*circuitbreaker.CircuitBreaker{
			"mongodb_jobs": circuitbreaker.New(circuitbreaker.DefaultConfig("mongodb_jobs")),
		}}

		components := InitializeRouter(cfg, db, services, idem, nil)

		assert.Equal(t, idem.Store, components.Config.IdempotencyStore)
		assert.Implements(t, (*service.AuthService)(nil), components.Config.AuthService)
		assert.NotNil(t, components.Config.JobService)
		assert.NotNil(t, components.Config.LoggingService)
	})
}
