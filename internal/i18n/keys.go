// Package i18n provides internationalization support for the roadworks service.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates an unknown email or wrong password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnavailable        = "error.service_unavailable"
	// ErrKeyIdempotencyInFlight indicates a request with the same idempotency key is still running.
	ErrKeyIdempotencyInFlight = "error.idempotency_in_flight"

	ErrKeyInvalidID      = "error.invalid_id"
	ErrKeyInvalidFilter  = "error.invalid_filter"
	ErrKeyUserExists     = "error.user_exists"
	ErrKeyUserNotFound   = "error.user_not_found"
	ErrKeyJobNotFound    = "error.job_not_found"
	ErrKeyAssigneeAbsent = "error.assignee_not_found"
	// ErrKeyInvalidMeasurement indicates a non-positive pothole dimension or bag count.
	ErrKeyInvalidMeasurement = "error.invalid_measurement"
	ErrKeyPotholeNotFound    = "error.pothole_not_found"
	ErrKeyJobTypeNotFound    = "error.job_type_not_found"
	ErrKeyJobTypeExists      = "error.job_type_exists"
	ErrKeyUnknownFormula     = "error.unknown_formula"
	ErrKeyMissingInput       = "error.missing_input"
)
