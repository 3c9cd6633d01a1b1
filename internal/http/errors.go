package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Zafar-Sheik/roadworks-service/internal/circuitbreaker"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/measure"
	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

type errorMapping struct {
	target error
	status int
	key    string
}

var serviceErrors = []errorMapping{
	{service.ErrForbidden, http.StatusForbidden, i18n.ErrKeyForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
	{service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
	{service.ErrTokenBlacklisted, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
	{service.ErrUserNotFound, http.StatusNotFound, i18n.ErrKeyUserNotFound},
	{service.ErrJobNotFound, http.StatusNotFound, i18n.ErrKeyJobNotFound},
	{service.ErrPotholeNotFound, http.StatusNotFound, i18n.ErrKeyPotholeNotFound},
	{service.ErrJobTypeNotFound, http.StatusNotFound, i18n.ErrKeyJobTypeNotFound},
	{service.ErrUserExists, http.StatusConflict, i18n.ErrKeyUserExists},
	{service.ErrJobTypeExists, http.StatusConflict, i18n.ErrKeyJobTypeExists},
	{service.ErrAssigneeNotFound, http.StatusUnprocessableEntity, i18n.ErrKeyAssigneeAbsent},
	{service.ErrUnknownFormula, http.StatusUnprocessableEntity, i18n.ErrKeyUnknownFormula},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
}

// respondError maps a service error to its HTTP status and localized message.
// Anything unrecognized is a 500.
func respondError(b *ResponseBuilder, err error) {
	var domainErr *measure.DomainInvalidError
	if errors.As(err, &domainErr) {
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidMeasurement, err,
			map[string]string{domainErr.Field: "must be a positive number"})
		return
	}

	var filterErr *query.ValidationError
	if errors.As(err, &filterErr) {
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidFilter, err,
			map[string]string{filterErr.Param: "must be a valid " + filterErr.Kind.String()})
		return
	}

	var inputErr *formula.MissingInputError
	if errors.As(err, &inputErr) {
		b.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyMissingInput, err,
			map[string]string{"inputs": inputErr.Input + " is required"})
		return
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			b.Error(m.status, m.key, err)
			return
		}
	}

	b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(b *ResponseBuilder, err error) {
	b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err, dto.ValidationDetails(err))
}
