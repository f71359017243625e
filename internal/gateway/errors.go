package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel failure classes. Every error returned by Client unwraps to
// exactly one of them.
var (
	ErrNetwork      = errors.New("network error")
	ErrUnauthorized = errors.New("authorization error")
	ErrValidation   = errors.New("validation error")
	ErrServer       = errors.New("server error")
)

// Error is a classified gateway failure.
type Error struct {
	Op      string // operation name, e.g. "save_phone"
	Kind    error  // one of the sentinels above
	Status  int    // HTTP status; 0 when no response arrived
	Message string // human-readable reason
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (%d): %s", e.Op, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap exposes both the failure class and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Reason returns the text to show the user.
func Reason(err error) string {
	var gerr *Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return err.Error()
}

// classifyStatus maps a non-2xx HTTP status onto a failure class.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrServer
	}
}

// outcome is the metrics label for err.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "server"
	}
}
