// Package common defines the sentinel errors and protocol constants shared by
// the server, the credential client and the admin CLI. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("admin privileges required")

	// Validation errors. Each one is reported before any write happens.
	ErrorValidation        = errors.New("validation error")
	ErrorInvalidID         = errors.New("malformed id")
	ErrorInvalidEmail      = errors.New("invalid email format")
	ErrorInvalidRole       = errors.New("invalid role")
	ErrorSelfDelete        = errors.New("cannot delete yourself")
	ErrorInvalidMembership = errors.New("user or group not found")
	ErrorInvalidCredential = errors.New("invalid credentials")
)
