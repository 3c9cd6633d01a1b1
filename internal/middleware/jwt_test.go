package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/mocks"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

func TestJWTAuth(t *testing.T) {
	claims := testClaims(model.RoleLaborer)

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "valid-token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "lower case scheme",
			authHeader: "bearer valid-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "valid-token").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing authorization header",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid bearer prefix",
			authHeader:     "Token valid-token",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token",
			authHeader:     "Bearer   ",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "deactivated user",
			authHeader: "Bearer valid-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "valid-token").Return(nil, service.ErrUserInactive)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "invalid-token").Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(mocks.MockAuthService)
			tt.setupMocks(authService)

			router := gin.New()
			router.Use(RequestID(), JWTAuth(authService))
			router.GET("/test", func(c *gin.Context) {
				got, ok := GetClaims(c)
				require.True(t, ok)
				assert.Equal(t, claims.UserID, got.UserID)
				assert.Equal(t, claims.Email, c.GetString(UserEmailKey))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusUnauthorized {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
				assert.NotEmpty(t, resp.RequestID)
			}
			authService.AssertExpectations(t)
		})
	}
}
