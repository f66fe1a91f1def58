// Package apperr defines the recoverable error taxonomy surfaced to callers.
// Every expected failure carries a Kind; anything without one is treated as
// KindInternal and only its generic message leaves the service.
package apperr

import "errors"

// Kind is the machine-readable failure class.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindDuplicateSlug        Kind = "duplicate_slug"
	KindDuplicateReport      Kind = "duplicate_report"
	KindInvalidTransition    Kind = "invalid_transition"
	KindAlreadyClaimed       Kind = "already_claimed"
	KindNotAssignedModerator Kind = "not_assigned_moderator"
	KindForbidden            Kind = "forbidden"
	KindValidation           Kind = "validation_error"
	KindInternal             Kind = "internal_server_error"
)

// Error is a typed, recoverable failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// New builds a typed error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal wraps an unexpected failure. The cause must be logged by the
// caller; only the generic message travels further up.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "an unexpected error occurred"}
}

// KindOf extracts the kind of err, defaulting to KindInternal for untyped
// errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
