// Package app provides database initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// Circuit breaker names, also used as readiness check keys.
const (
	breakerUsers    = "mongodb_users"
	breakerJobs     = "mongodb_jobs"
	breakerPotholes = "mongodb_potholes"
	breakerLogs     = "mongodb_logs"
)

// DatabaseComponents holds the MongoDB connection and the repositories built on it.
type DatabaseComponents struct {
	DB              *repository.MongoDB
	UserRepo        repository.UserRepositoryInterface
	JobRepo         repository.JobRepositoryInterface
	PotholeRepo     repository.PotholeRepositoryInterface
	JobTypeRepo     repository.JobTypeRepositoryInterface
	TokenRepo       repository.TokenRepositoryInterface
	LogsRepo        repository.LogsRepositoryInterface
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the repositories.
// It returns nil, nil when the database is disabled.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	if !cfg.Enabled {
		log.Warn().Msg("MongoDB disabled - only infrastructure routes will be served")
		return nil, nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}

	return newDatabaseComponents(db, cfg), nil
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	breakers := map[string]*circuitbreaker.CircuitBreaker{
		breakerUsers:    newCircuitBreaker(breakerUsers, cfg),
		breakerJobs:     newCircuitBreaker(breakerJobs, cfg),
		breakerPotholes: newCircuitBreaker(breakerPotholes, cfg),
		breakerLogs:     newCircuitBreaker(breakerLogs, cfg),
	}

	return &DatabaseComponents{
		DB: db,
		UserRepo: repository.NewUserRepositoryWithCircuitBreaker(
			repository.NewUserRepository(db.Database), breakers[breakerUsers]),
		JobRepo: repository.NewJobRepositoryWithCircuitBreaker(
			repository.NewJobRepository(db.Database), breakers[breakerJobs]),
		PotholeRepo: repository.NewPotholeRepositoryWithCircuitBreaker(
			repository.NewPotholeRepository(db.Database), breakers[breakerPotholes]),
		LogsRepo: repository.NewLogsRepositoryWithCircuitBreaker(
			repository.NewLogsRepository(db.Database), breakers[breakerLogs]),
		JobTypeRepo:     repository.NewJobTypeRepository(db.Database),
		TokenRepo:       repository.NewTokenRepository(db.Database),
		CircuitBreakers: breakers,
	}
}

// newCircuitBreaker builds a breaker that ignores client errors and publishes its state.
func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	cbCfg := circuitbreaker.DefaultConfig(name)
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	cbCfg.IsFailure = func(err error) bool { return !repository.IsNonFailure(err) }
	cbCfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
			Msg("Circuit breaker state changed")
		metrics.SetCircuitBreakerState(name, int(to))
	}
	return circuitbreaker.New(cbCfg)
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
