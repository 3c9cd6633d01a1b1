// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/http"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
)

// App is the wired service together with the resources released on shutdown.
type App struct {
	Router  *gin.Engine
	closers []func(context.Context) error
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Logging)

	if err := InitializeValidation(cfg.Domain.Companies); err != nil {
		return nil, err
	}

	db, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	a := &App{}
	a.onClose(db.Close)

	services := InitializeServices(cfg, db)
	if err := seedAdmin(services.Users, cfg.Auth, cfg.Domain); err != nil {
		log.Warn().Err(err).Msg("Failed to seed bootstrap admin")
	}

	var sink middleware.LogSink
	if services.Logging != nil {
		asyncLogger := middleware.NewAsyncLogger(services.Logging, middleware.DefaultAsyncLoggerConfig())
		sink = asyncLogger
		a.onClose(func(context.Context) error {
			asyncLogger.Stop()
			return nil
		})
	}

	idempotency := InitializeIdempotency(cfg.Redis)
	a.onClose(idempotency.Close)

	components := InitializeRouter(cfg, db, services, idempotency, sink)
	a.Router = http.NewRouter(components.HealthHandler, components.Config)
	return a, nil
}

// InitializeValidation registers the custom binding validators with gin.
func InitializeValidation(companies []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := dto.RegisterValidators(v, companies); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}
	return nil
}

func (a *App) onClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of acquisition.
// Pending audit entries are flushed before the database connection closes.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
