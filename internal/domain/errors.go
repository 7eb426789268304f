package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures
type ErrorKind string

const (
	// KindConnection covers transport-level failures reaching Ezidebit.
	KindConnection ErrorKind = "CONNECTION"
	// KindGateway covers calls that completed but were rejected by Ezidebit.
	KindGateway ErrorKind = "GATEWAY"
	// KindValidation covers caller input rejected before any remote call.
	KindValidation ErrorKind = "VALIDATION"
)

// ConnectionErrorMessage is the user-facing message for every transport
// failure. The underlying cause is logged, never surfaced.
const ConnectionErrorMessage = "Could not connect to payment service"

// Error is the single error type returned by gateway operations
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

func NewConnectionError(cause error) *Error {
	return &Error{
		Kind:    KindConnection,
		Message: ConnectionErrorMessage,
		Err:     cause,
	}
}

// NewGatewayError carries the remote ErrorMessage through unmodified.
func NewGatewayError(remoteMessage string) *Error {
	return &Error{
		Kind:    KindGateway,
		Message: remoteMessage,
	}
}

func NewValidationError(format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsKind checks if an error is a gateway Error with a specific kind
func IsKind(err error, kind ErrorKind) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind == kind
	}
	return false
}
