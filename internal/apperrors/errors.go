// Package apperrors defines the error taxonomy used at every store and
// gateway call site. Handlers map each sentinel to one HTTP outcome.
package apperrors

import (
	"errors"
)

var (
	// ErrValidation means the client input was malformed (e.g. password mismatch).
	// Shown inline to the user, HTTP 200 with a message.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means a uniqueness constraint was violated. The write is
	// rolled back and the message shown inline.
	ErrConflict = errors.New("already exists")

	// ErrAuth means bad credentials. The message never says which field was
	// wrong, so usernames cannot be enumerated.
	ErrAuth = errors.New("invalid username or password")

	// ErrNotFound means the requested resource or route does not exist.
	ErrNotFound = errors.New("not found")

	// ErrGateway means the external weather provider failed or timed out.
	// Pages degrade rather than crash.
	ErrGateway = errors.New("weather provider unavailable")

	// ErrStoreUnavailable means the database failed mid-request. Every write
	// path guarantees rollback before surfacing this.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsAuth reports whether err is a credential failure.
func IsAuth(err error) bool { return errors.Is(err, ErrAuth) }

// IsNotFound reports whether err is a missing resource.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsGateway reports whether err is an external provider failure.
func IsGateway(err error) bool { return errors.Is(err, ErrGateway) }
