package services

import "errors"

// Sentinel errors surfaced by the service layer; handlers map them to
// HTTP status codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// ValidationError reports malformed input with field-level detail
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
