package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a product is not in the cart.
type NotFoundError struct {
	ID string // the product ID that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s is not in the cart", e.ID)
}

// ValidationError indicates bad command input.
type ValidationError struct {
	Field   string // the flag or argument that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// BackendError indicates the configured storage backend is unusable.
type BackendError struct {
	Backend string
	Err     error
	Hint    string // suggestion for how to proceed
}

func (e *BackendError) Error() string {
	msg := fmt.Sprintf("%s backend unavailable: %v", e.Backend, e.Err)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message.
// It prefixes every line after the first with two spaces so hints line up.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	lines := strings.Split(err.Error(), "\n")
	return "error: " + strings.Join(lines, "\n  ")
}
