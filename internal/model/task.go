// Package model defines the task and reminder values held by a schedule.
// Values are never mutated after construction: every setter returns a copy.
package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"taskshell/internal/taskerr"
)

// Task is a todo, deadline or event. A schedule identifies a task by its
// pointer, so two tasks with equal fields are still distinct entries.
type Task struct {
	Name      string
	Start     *time.Time
	End       *time.Time
	Done      bool
	Tags      []string
	Reminders []Reminder
}

// NewTask builds a validated task. Tags are de-duplicated preserving order.
func NewTask(name string, start, end *time.Time, tags []string) (*Task, error) {
	t := &Task{
		Name:  strings.TrimSpace(name),
		Start: copyTime(start),
		End:   copyTime(end),
		Tags:  DistinctTags(tags),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the name and the start/end consistency rules.
func (t *Task) Validate() error {
	if t.Name == "" {
		return taskerr.Invalid("task name cannot be empty")
	}
	return ValidateTimes(t.Start, t.End)
}

// ValidateTimes rejects a start without an end and an end before the start.
func ValidateTimes(start, end *time.Time) error {
	if start != nil && end == nil {
		return taskerr.ErrStartWithoutEnd
	}
	if start != nil && end.Before(*start) {
		return taskerr.ErrEndBeforeStart
	}
	return nil
}

// IsTodo reports a task with neither start nor end.
func (t *Task) IsTodo() bool { return t.Start == nil && t.End == nil }

// IsDeadline reports a task with only an end time.
func (t *Task) IsDeadline() bool { return t.Start == nil && t.End != nil }

// IsEvent reports a task with both start and end.
func (t *Task) IsEvent() bool { return t.Start != nil && t.End != nil }

// Kind returns "todo", "deadline" or "event".
func (t *Task) Kind() string {
	switch {
	case t.IsEvent():
		return "event"
	case t.IsDeadline():
		return "deadline"
	default:
		return "todo"
	}
}

// HasTag reports whether the task carries tag (case-sensitive).
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// clone returns a copy that shares nothing mutable with t.
func (t *Task) clone() *Task {
	c := *t
	c.Start = copyTime(t.Start)
	c.End = copyTime(t.End)
	c.Tags = slices.Clone(t.Tags)
	c.Reminders = slices.Clone(t.Reminders)
	return &c
}

// WithName returns a copy with a new name.
func (t *Task) WithName(name string) *Task {
	c := t.clone()
	c.Name = strings.TrimSpace(name)
	return c
}

// WithStart returns a copy with a new start time; nil clears it.
func (t *Task) WithStart(start *time.Time) *Task {
	c := t.clone()
	c.Start = copyTime(start)
	return c
}

// WithEnd returns a copy with a new end time; nil clears it.
func (t *Task) WithEnd(end *time.Time) *Task {
	c := t.clone()
	c.End = copyTime(end)
	return c
}

// WithDone returns a copy with the done flag set to done.
func (t *Task) WithDone(done bool) *Task {
	c := t.clone()
	c.Done = done
	return c
}

// WithTags returns a copy with the tag set replaced.
func (t *Task) WithTags(tags []string) *Task {
	c := t.clone()
	c.Tags = DistinctTags(tags)
	return c
}

// WithReminders returns a copy with the reminder list replaced.
func (t *Task) WithReminders(reminders []Reminder) *Task {
	c := t.clone()
	c.Reminders = slices.Clone(reminders)
	return c
}

// AddReminder returns a copy with r appended.
func (t *Task) AddReminder(r Reminder) *Task {
	c := t.clone()
	c.Reminders = append(c.Reminders, r)
	return c
}

// RemoveReminder returns a copy without the reminder at index i.
func (t *Task) RemoveReminder(i int) *Task {
	c := t.clone()
	if i >= 0 && i < len(c.Reminders) {
		c.Reminders = slices.Delete(c.Reminders, i, i+1)
	}
	return c
}

// ReplaceReminder returns a copy with the reminder at index i replaced by r.
func (t *Task) ReplaceReminder(i int, r Reminder) *Task {
	c := t.clone()
	if i >= 0 && i < len(c.Reminders) {
		c.Reminders[i] = r
	}
	return c
}

// String renders the task on one line for listings.
func (t *Task) String() string {
	var b strings.Builder
	if t.Done {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(t.Name)
	switch {
	case t.IsEvent():
		fmt.Fprintf(&b, " (%s - %s)", FormatTime(*t.Start), FormatTime(*t.End))
	case t.IsDeadline():
		fmt.Fprintf(&b, " (by %s)", FormatTime(*t.End))
	}
	for _, tag := range t.Tags {
		b.WriteString(" #" + tag)
	}
	return b.String()
}

// DistinctTags removes duplicates preserving first-seen order.
func DistinctTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

// DisplayLayout is the layout used to render times back to the user.
const DisplayLayout = "2006-01-02 3.04PM"

// FormatTime renders a time with DisplayLayout.
func FormatTime(t time.Time) string {
	return t.Format(DisplayLayout)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
