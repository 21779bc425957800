package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error so callers can branch without string
// matching on codes.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindDependency Kind = "dependency"
	KindAuth       Kind = "auth"
)

// Error is the structured error returned by every engine operation. Code is a
// stable machine-readable identifier, Message is user-readable.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or invalid input.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// NotFound reports that a referenced identifier does not resolve.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Dependency reports a failure of the persistence or identity boundary.
func Dependency(code, message string, err error) *Error {
	return &Error{Kind: KindDependency, Code: code, Message: message, Err: err}
}

// Auth reports a credential or token problem.
func Auth(code, message string) *Error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

// KindOf extracts the kind from err, or KindDependency for unclassified
// errors crossing the engine boundary.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindDependency
}

// CodeOf extracts the stable code from err, or "unknown".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "unknown"
}

// MessageOf extracts the user-readable message from err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "알 수 없는 오류가 발생했습니다."
}
