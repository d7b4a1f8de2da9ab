// Package common defines shared constants and sentinel errors used across
// eduauth components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already registered")

	// Service-level errors.
	//
	// ErrorUnauthorized carries the one generic credential-failure message:
	// a missing account, a malformed stored hash, and a wrong secret are all
	// reported identically so the caller cannot enumerate accounts.
	ErrorValidation   = errors.New("validation error")
	ErrorUnauthorized = errors.New("invalid credentials")
	ErrorInternal     = errors.New("internal error")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
)
