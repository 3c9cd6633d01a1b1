//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
)

func TestSeedAdmin(t *testing.T) {
	domain := config.DomainConfig{Companies: []string{"Bombela", "Unamusa"}}
	creds := config.AuthConfig{AdminEmail: "admin@example.com", AdminPassword: "changeme1"}

	tests := []struct {
		name      string
		auth      config.AuthConfig
		setupMock func(*mocks.MockUserService)
		wantErr   bool
	}{
		{
			name: "creates admin in first company",
			auth: creds,
			setupMock: func(m *mocks.MockUserService) {
				m.On("EnsureAdmin", mock.Anything, "admin@example.com", "changeme1", "Bombela").Return(true, nil).Once()
			},
		},
		{
			name: "existing admin is kept",
			auth: creds,
			setupMock: func(m *mocks.MockUserService) {
				m.On("EnsureAdmin", mock.Anything, "admin@example.com", "changeme1", "Bombela").Return(false, nil).Once()
			},
		},
		{
			name: "store failure",
			auth: creds,
			setupMock: func(m *mocks.MockUserService) {
				m.On("EnsureAdmin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(false, errors.New("no reachable servers")).Once()
			},
			wantErr: true,
		},
		{
			name:      "no credentials configured",
			auth:      config.AuthConfig{AdminEmail: "admin@example.com"},
			setupMock: func(*mocks.MockUserService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserService)
			tt.setupMock(users)

			err := seedAdmin(users, tt.auth, domain)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestSeedAdmin_NoUserService(t *testing.T) {
	assert.NoError(t, seedAdmin(nil, config.AuthConfig{AdminEmail: "a@example.com", AdminPassword: "x"}, config.DomainConfig{}))
}
