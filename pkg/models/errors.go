// Package models pkg/models/errors.go
package models

import "errors"

// Cross-component error kinds. Each failure surfaced to a caller maps to
// exactly one of these so the consuming layer can render a distinct
// condition. Wrap with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrInvalidCredentials deliberately does not reveal whether the
	// identity or the secret was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrNotFound          = errors.New("not found")
	ErrNotReady          = errors.New("not ready")
	ErrUpstream          = errors.New("upstream unavailable")
	ErrInternal          = errors.New("internal failure")
)
