package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedDetail string
	}{
		{"forbidden", service.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden, ""},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrCodeUnauthorized, ""},
		{"revoked token", service.ErrTokenBlacklisted, http.StatusUnauthorized, dto.ErrCodeUnauthorized, ""},
		{"wrapped not found", fmt.Errorf("get job: %w", service.ErrJobNotFound), http.StatusNotFound, dto.ErrCodeNotFound, ""},
		{"pothole not found", service.ErrPotholeNotFound, http.StatusNotFound, dto.ErrCodeNotFound, ""},
		{"duplicate user", service.ErrUserExists, http.StatusConflict, dto.ErrCodeConflict, ""},
		{"assignee absent", service.ErrAssigneeNotFound, http.StatusUnprocessableEntity, dto.ErrCodeUnprocessable, ""},
		{"circuit open", fmt.Errorf("find: %w", circuitbreaker.ErrCircuitOpen), http.StatusServiceUnavailable, dto.ErrCodeUnavailable, ""},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, dto.ErrCodeTimeout, ""},
		{
			"non-positive width",
			fmt.Errorf("record: %w", &measure.DomainInvalidError{Field: "width", Value: -2}),
			http.StatusBadRequest, dto.ErrCodeInvalidRequest, "width",
		},
		{
			"bad filter",
			&query.ValidationError{Param: "isActive", Value: "yes", Kind: query.KindBool},
			http.StatusBadRequest, dto.ErrCodeInvalidRequest, "isActive",
		},
		{
			"missing formula input",
			&formula.MissingInputError{Formula: "PAINT", Input: "area"},
			http.StatusUnprocessableEntity, dto.ErrCodeUnprocessable, "inputs",
		},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrCodeInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(NewResponseBuilder(c), tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
			if tt.expectedDetail != "" {
				assert.Contains(t, resp.Details, tt.expectedDetail)
			}
			// Only server-side failures are handed to the error handler.
			assert.Equal(t, tt.expectedStatus >= http.StatusInternalServerError, len(c.Errors) > 0)
		})
	}
}

func TestRespondBindError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respondBindError(NewResponseBuilder(c), &dto.ValidationError{Field: "body", Message: "at least one field must be provided"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "at least one field must be provided", resp.Details["body"])
	assert.Empty(t, c.Errors)
}
