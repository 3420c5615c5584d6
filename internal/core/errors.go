package core

// errors.go defines the failure kinds a load can report.
//
// Only structural problems surface as errors:
//
//	FILE001 - Access: the path is missing or unreadable
//	FILE002 - Malformed: the file cannot be split into rows and fields
//	LOAD001 - Invalid limit: a negative row limit was requested
//	LOAD002 - Cancelled: the caller's context ended mid-load
//
// Individual cells that fail coercion are never errors; they become missing.

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAccess indicates the source file does not exist or cannot be read.
	ErrAccess = errors.New("file not accessible")

	// ErrMalformed indicates the file is not parseable as delimited text.
	ErrMalformed = errors.New("malformed delimited file")

	// ErrInvalidLimit indicates a negative row limit.
	ErrInvalidLimit = errors.New("invalid row limit")
)

// LoadError describes a failed load.
// It matches both its Kind and the underlying cause with errors.Is/As.
type LoadError struct {
	Op   string // "open", "read", "parse"
	Path string
	Line int   // 1-indexed file line, 0 if not applicable
	Kind error // One of the Err* sentinels
	Err  error // Underlying cause, may be nil
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Op, e.Path)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s:%d", msg, e.Line)
	}
	msg = fmt.Sprintf("%s: %v", msg, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UserMessage provides a short explanation with a code for reference.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code
}

// MapError converts a load error into a UserMessage.
// Returns the zero value for nil.
func MapError(err error) UserMessage {
	switch {
	case err == nil:
		return UserMessage{}
	case errors.Is(err, ErrAccess):
		return UserMessage{
			Message: "The data file could not be opened",
			Action:  "Check the path or pass --path to point at the file",
			Code:    "FILE001",
		}
	case errors.Is(err, ErrMalformed):
		return UserMessage{
			Message: "The file is not valid semicolon-delimited text",
			Action:  "Check quoting and that no row has more fields than the header",
			Code:    "FILE002",
		}
	case errors.Is(err, ErrInvalidLimit):
		return UserMessage{
			Message: "The row limit must not be negative",
			Action:  "Pass a row count of zero or more",
			Code:    "LOAD001",
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return UserMessage{
			Message: "The load was cancelled",
			Action:  "Try again, or allow more time",
			Code:    "LOAD002",
		}
	default:
		return UserMessage{
			Message: "An unexpected error occurred",
			Action:  "Check the logs for details",
			Code:    "ERR000",
		}
	}
}

// String formats the message for display.
func (m UserMessage) String() string {
	if m.Code == "" {
		return ""
	}
	return fmt.Sprintf("[%s] %s. %s", m.Code, m.Message, m.Action)
}
