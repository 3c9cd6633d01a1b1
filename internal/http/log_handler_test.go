package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

func TestLogHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		setupMocks     func(*testServer)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "admin reads audit trail",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.logs.On("ListLogs", mock.Anything, query.Params{"action_type": model.ActionLogin}, repository.ListOptions{Limit: 50}).
					Return([]*model.LogEntry{{Message: "User logged in", ActionType: model.ActionLogin}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "database unavailable",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.logs.On("ListLogs", mock.Anything, mock.Anything, mock.Anything).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrCodeUnavailable,
		},
		{
			name:  "unexpected failure",
			token: adminToken,
			setupMocks: func(s *testServer) {
				s.logs.On("ListLogs", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
		{
			name:           "laborer forbidden",
			token:          laborerToken,
			setupMocks:     func(*testServer) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   dto.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setupMocks(s)

			w := s.do(http.MethodGet, "/api/logs?action_type="+model.ActionLogin, tt.token, nil)

			assertStatus(t, tt.expectedStatus, w)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
		})
	}
}
