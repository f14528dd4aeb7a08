package service

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
	ErrAlreadyExists      = errors.New("already_exists")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidRequest     = errors.New("invalid_request")

	// ErrUnavailable means a backing store could not be reached.
	ErrUnavailable = errors.New("temporarily_unavailable")
)

// ForbiddenOperationError is a policy denial with a reason that is safe to
// show to the caller. It matches ErrForbidden.
type ForbiddenOperationError struct {
	Reason string
}

func (e *ForbiddenOperationError) Error() string { return e.Reason }

func (e *ForbiddenOperationError) Is(target error) bool { return target == ErrForbidden }

// TooManyRequestsError reports a rate-limit denial.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("Too many requests. Please try again after %d seconds.", e.RetryAfterSeconds())
}

// RetryAfterSeconds rounds up so clients never retry too early.
func (e *TooManyRequestsError) RetryAfterSeconds() int {
	return max(int(math.Ceil(e.RetryAfter.Seconds())), 1)
}

// detailError pairs a sentinel with a message that is safe to show callers.
type detailError struct {
	kind error
	msg  string
}

func (e *detailError) Error() string { return e.msg }
func (e *detailError) Unwrap() error { return e.kind }

func withDetail(kind error, format string, args ...any) error {
	return &detailError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Detail returns the caller-facing message attached to err, if any.
func Detail(err error) string {
	var de *detailError
	if errors.As(err, &de) {
		return de.msg
	}
	var fe *ForbiddenOperationError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}
