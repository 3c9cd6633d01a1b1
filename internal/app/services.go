// Package app provides service initialization.
package app

import (
	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Calculator *measure.Calculator
	Formulas   *formula.Registry
	Auth       service.AuthService
	Users      service.UserService
	Jobs       service.JobService
	Potholes   service.PotholeService
	JobTypes   service.JobTypeService
	Logging    service.LoggingService
}

// InitializeServices builds the business services. Without a database only the
// pure domain components are available.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{
		Calculator: measure.NewCalculator(measure.WithUnitMass(cfg.Domain.MaterialUnitMass)),
		Formulas:   formula.Default(),
	}
	if db == nil {
		return components
	}

	tokens := service.NewTokenService(db.TokenRepo, service.NewTokenConfigFromAuthConfig(cfg.Auth))

	components.Auth = service.NewAuthServiceWithTokenService(db.UserRepo, tokens, cfg.Auth.BcryptCost)
	components.Users = service.NewUserService(db.UserRepo, tokens, cfg.Auth.BcryptCost)
	components.Jobs = service.NewJobService(db.JobRepo, db.UserRepo, db.PotholeRepo)
	components.Potholes = service.NewPotholeService(db.PotholeRepo, db.JobRepo, components.Calculator)
	components.JobTypes = service.NewJobTypeService(db.JobTypeRepo, components.Formulas, service.DefaultCatalogTTL)
	components.Logging = service.NewLoggingService(db.LogsRepo)
	return components
}
