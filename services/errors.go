package services

import "errors"

// Kind classifies a service failure for status-code mapping. The
// message carried alongside is always safe to show to the user;
// internal failures carry a generic message and wrap the cause.
type Kind int

const (
	KindValidation Kind = iota
	KindNotAuthorized
	KindNotFound
	KindInternal
)

// Error is the uniform failure shape every service method returns, so
// callers map on Kind instead of inspecting concrete error types.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, nil for validation/authorization
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind; unknown errors count as internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validationErr(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notAuthorizedErr(msg string) error {
	return &Error{Kind: KindNotAuthorized, Message: msg}
}

func notFoundErr(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func internalErr(msg string, cause error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}
