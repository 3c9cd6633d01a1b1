//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
)

func TestInitializeServices(t *testing.T) {
	t.Run("without database", func(t *testing.T) {
		components := InitializeServices(config.Config{Domain: config.DomainConfig{MaterialUnitMass: 20}}, nil)

		require.NotNil(t, components)
		assert.Equal(t, 20.0, components.Calculator.UnitMass())
		assert.NotEmpty(t, components.Formulas.Keys())
		assert.Nil(t, components.Auth)
		assert.Nil(t, components.Jobs)
	})

	t.Run("unset unit mass uses default", func(t *testing.T) {
		components := InitializeServices(config.Config{}, nil)

		assert.Equal(t, measure.DefaultUnitMassKg, components.Calculator.UnitMass())
	})

	t.Run("with repositories", func(t *testing.T) {
		db := &DatabaseComponents{
			UserRepo:    new(mocks.MockUserRepositoryInterface),
			JobRepo:     new(mocks.MockJobRepositoryInterface),
			PotholeRepo: new(mocks.MockPotholeRepositoryInterface),
			JobTypeRepo: new(mocks.MockJobTypeRepositoryInterface),
			TokenRepo:   new(mocks.MockTokenRepositoryInterface),
			LogsRepo:    new(mocks.MockLogsRepositoryInterface),
		}

		components := InitializeServices(config.Config{Auth: config.AuthConfig{JWTSecretKey: "k", JWTRefreshSecret: "r"}}, db)

		assert.NotNil(t, components.Auth)
		assert.NotNil(t, components.Users)
		assert.NotNil(t, components.Jobs)
		assert.NotNil(t, components.Potholes)
		assert.NotNil(t, components.JobTypes)
		assert.NotNil(t, components.Logging)
	})
}
