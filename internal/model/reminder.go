package model

import (
	"fmt"
	"strings"
	"time"

	"taskshell/internal/taskerr"
)

// Reminder is a note due at a point in time. It lives inside its task's
// reminder list and has no identity of its own.
type Reminder struct {
	Note string
	At   time.Time
}

// NewReminder builds a reminder, rejecting a blank note.
func NewReminder(note string, at time.Time) (Reminder, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return Reminder{}, taskerr.Invalid("reminder note cannot be empty")
	}
	return Reminder{Note: note, At: at}, nil
}

// Equal compares notes case-insensitively and times exactly.
func (r Reminder) Equal(other Reminder) bool {
	return strings.EqualFold(r.Note, other.Note) && r.At.Equal(other.At)
}

// String renders the reminder for listings.
func (r Reminder) String() string {
	return fmt.Sprintf("%s @ %s", r.Note, FormatTime(r.At))
}
