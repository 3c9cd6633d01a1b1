//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/testutil"
)

func testDatabaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            testutil.MongoURI(),
		DatabaseName:                   testutil.DatabaseName(t),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	db, err := InitializeDatabase(testDatabaseConfig(t))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer func() { _ = db.Close(context.Background()) }()

	assert.NotNil(t, db.UserRepo)
	assert.NotNil(t, db.JobRepo)
	assert.NotNil(t, db.PotholeRepo)
	assert.NotNil(t, db.JobTypeRepo)
	assert.NotNil(t, db.TokenRepo)
	assert.NotNil(t, db.LogsRepo)
	assert.Len(t, db.CircuitBreakers, 4)
	assert.NoError(t, db.DB.HealthCheck(context.Background()))
}

func TestInitializeDatabase_Integration_BadURI(t *testing.T) {
	cfg := testDatabaseConfig(t)
	cfg.URI = "mongodb://invalid-host:27017/?serverSelectionTimeoutMS=200"

	db, err := InitializeDatabase(cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
}
