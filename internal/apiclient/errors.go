package apiclient

import "fmt"

// AuthExpiredMessage is shown whenever the backend rejects a call with
// an unauthorized status. The wording is fixed; callers display it as-is.
const AuthExpiredMessage = "Please log in again to continue."

// AuthExpiredError reports an invalid or expired session. It is never
// retried automatically; the user has to log in again.
type AuthExpiredError struct{}

func (e *AuthExpiredError) Error() string {
	return AuthExpiredMessage
}

// ValidationError reports bad input detected client-side, before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError reports a network or server failure on an otherwise
// valid request. Retryable, but never retried automatically.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing resource, e.g. deleting a passage id
// that no longer exists. Non-fatal.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError reports a duplicate, e.g. adding an already-known
// keyword. Non-fatal.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
