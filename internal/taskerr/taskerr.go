// Package taskerr defines the soft failures produced while parsing and executing
// commands. None of them escape the dispatcher; each is rendered as feedback.
package taskerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// InvalidArgument is structurally malformed input.
	InvalidArgument Kind = iota
	// CannotParseDateTime means the time parser rejected a flag value.
	CannotParseDateTime
	// StartWithoutEnd is a start time given without an end time.
	StartWithoutEnd
	// EndBeforeStart is an end time earlier than the start time.
	EndBeforeStart
	// NotFound means a search yielded no candidates.
	NotFound
	// InvalidUserResponse is an unrecognized reply to a pending prompt.
	InvalidUserResponse
	// UndoUnavailable means the undo floor was reached.
	UndoUnavailable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case CannotParseDateTime:
		return "CannotParseDateTime"
	case StartWithoutEnd:
		return "StartWithoutEnd"
	case EndBeforeStart:
		return "EndBeforeStart"
	case NotFound:
		return "NotFound"
	case InvalidUserResponse:
		return "InvalidUserResponse"
	case UndoUnavailable:
		return "UndoUnavailable"
	default:
		return "Unknown"
	}
}

// Error is a classified failure. Detail carries the offending input or a
// human-readable reason.
type Error struct {
	Kind   Kind
	Detail string
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrInvalidArgument     = &Error{Kind: InvalidArgument}
	ErrCannotParseDateTime = &Error{Kind: CannotParseDateTime}
	ErrStartWithoutEnd     = &Error{Kind: StartWithoutEnd}
	ErrEndBeforeStart      = &Error{Kind: EndBeforeStart}
	ErrNotFound            = &Error{Kind: NotFound}
	ErrInvalidUserResponse = &Error{Kind: InvalidUserResponse}
	ErrUndoUnavailable     = &Error{Kind: UndoUnavailable}
)

// Error implements the error interface with the user-facing message.
func (e *Error) Error() string {
	switch e.Kind {
	case InvalidArgument:
		if e.Detail == "" {
			return "invalid argument"
		}
		return e.Detail
	case CannotParseDateTime:
		return fmt.Sprintf("cannot understand the date/time %q", e.Detail)
	case StartWithoutEnd:
		return "a task with a start time must also have an end time"
	case EndBeforeStart:
		return "the end time cannot be earlier than the start time"
	case NotFound:
		return fmt.Sprintf("nothing found matching %q", e.Detail)
	case InvalidUserResponse:
		return fmt.Sprintf("%q is not a valid choice", e.Detail)
	case UndoUnavailable:
		return "nothing to undo"
	default:
		return e.Detail
	}
}

// Is matches any *Error of the same kind, so sentinels compare by kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// Invalid returns an InvalidArgument error with a reason.
func Invalid(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// BadDateTime returns a CannotParseDateTime error echoing raw verbatim.
func BadDateTime(raw string) error {
	return &Error{Kind: CannotParseDateTime, Detail: raw}
}

// NoMatch returns a NotFound error for the searched keywords.
func NoMatch(keywords string) error {
	return &Error{Kind: NotFound, Detail: keywords}
}

// BadResponse returns an InvalidUserResponse error for the raw reply.
func BadResponse(raw string) error {
	return &Error{Kind: InvalidUserResponse, Detail: raw}
}

// KindOf returns the kind of err and whether err is a classified failure.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Message renders err as user-facing feedback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return "Error: " + e.Error()
	}
	return "Error: " + err.Error()
}
