package usecase

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Services wrap
// them with context, so callers must match with errors.Is.

// ErrInvalidInput marks a request the caller can fix, a 400.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks a missing wrestler, show, belt or reign, a 404.
var ErrNotFound = errors.New("resource not found")

// ErrConflict marks a write that lost to a concurrent one, a 409.
var ErrConflict = errors.New("conflicting concurrent write")

// ErrDependencyUnavailable marks an upstream outage, a 503.
var ErrDependencyUnavailable = errors.New("dependency unavailable")
