package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation      Kind = "VALIDATION_REJECTION"
	KindStorage         Kind = "STORAGE_ERROR"
	KindInternal        Kind = "INTERNAL_FAILURE"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindNotFound        Kind = "NOT_FOUND"
)

// Op tells a storage failure on a read apart from one on a write.
type Op string

const (
	OpWrite Op = ""
	OpRead  Op = "read"
)

// Error is the call-scoped failure carried from the pipeline up to the
// response builder. Reason is safe to show to callers; Err is not.
type Error struct {
	Kind   Kind
	Reason string
	Op     Op
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Public returns the message that may be embedded in a response body.
func (e *Error) Public() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindValidation, KindNotFound, KindInvalidArgument:
		return e.Reason
	case KindStorage:
		if e.Op == OpRead {
			return "message could not be read: " + e.Reason
		}
		return "message could not be stored: " + e.Reason
	default:
		return "internal failure"
	}
}

func Validation(reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason}
}

func Storage(reason string, err error) *Error {
	return &Error{Kind: KindStorage, Reason: reason, Err: err}
}

func StorageRead(reason string, err error) *Error {
	return &Error{Kind: KindStorage, Reason: reason, Op: OpRead, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Reason: "internal failure", Err: err}
}

func InvalidArgument(reason string) *Error {
	return &Error{Kind: KindInvalidArgument, Reason: reason}
}

func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err, treating foreign errors as internal failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
