// Package service contains the business logic of the roadworks service.
package service

import (
	"errors"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/formula"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when an email is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenBlacklisted is returned when token is blacklisted.
	ErrTokenBlacklisted = errors.New("token is blacklisted")
	// ErrUserInactive is returned when a valid token belongs to a deactivated or removed user.
	ErrUserInactive = errors.New("user is deactivated")

	// ErrForbidden is returned when the caller's role or assignment does not allow the operation.
	ErrForbidden = errors.New("operation not permitted for this user")

	ErrUserNotFound     = errors.New("user not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrPotholeNotFound  = errors.New("pothole not found")
	ErrJobTypeNotFound  = errors.New("job type not found")
	ErrJobTypeExists    = errors.New("job type already exists")
	ErrAssigneeNotFound = errors.New("assigned user does not exist")

	// ErrUnknownFormula is returned when a job type names a formula that is not registered.
	ErrUnknownFormula = formula.ErrUnknown
	// ErrMissingInput is returned when a job sheet lacks an input its formula needs.
	ErrMissingInput = formula.ErrMissingInput
)
