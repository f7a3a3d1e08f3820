package schedule

import (
	"errors"
	"fmt"

	"taskshell/internal/logger"
	"taskshell/internal/model"
)

// DefaultMaxStates bounds the undo history when no limit is configured.
const DefaultMaxStates = 100

// ErrTaskNotFound is returned when a task pointer is not in the current state.
var ErrTaskNotFound = errors.New("task is not in the schedule")

// Schedule owns a bounded stack of states. The current state is the top.
type Schedule struct {
	states    []*State
	maxStates int
}

// New creates an empty schedule with one initial empty state.
func New(maxStates int) *Schedule {
	return FromTasks(maxStates, nil)
}

// FromTasks creates a schedule whose initial state holds tasks.
// Undo never goes below this state.
func FromTasks(maxStates int, tasks []*model.Task) *Schedule {
	if maxStates < 1 {
		maxStates = DefaultMaxStates
	}
	return &Schedule{
		states:    []*State{NewState(tasks)},
		maxStates: maxStates,
	}
}

// Current returns the top state.
func (s *Schedule) Current() *State {
	return s.states[len(s.states)-1]
}

// Tasks returns the tasks of the current state.
func (s *Schedule) Tasks() []*model.Task {
	return s.Current().Tasks()
}

// Depth returns the number of stored states.
func (s *Schedule) Depth() int {
	return len(s.states)
}

// MaxStates returns the history bound.
func (s *Schedule) MaxStates() int {
	return s.maxStates
}

// push makes next the current state, evicting the oldest states past the bound.
func (s *Schedule) push(next *State) {
	s.states = append(s.states, next)
	if overflow := len(s.states) - s.maxStates; overflow > 0 {
		s.states = append(s.states[:0:0], s.states[overflow:]...)
	}
	logger.Debug("Schedule state pushed", "depth", len(s.states), "tasks", next.Len())
}

// AddTask appends t in a new state.
func (s *Schedule) AddTask(t *model.Task) {
	s.push(s.Current().with(t))
}

// UpdateTask replaces old, located by identity, with updated in a new state.
func (s *Schedule) UpdateTask(old, updated *model.Task) error {
	i := s.Current().IndexOf(old)
	if i < 0 {
		return fmt.Errorf("update %q: %w", old.Name, ErrTaskNotFound)
	}
	s.push(s.Current().replaced(i, updated))
	return nil
}

// DeleteTask removes t, located by identity, in a new state.
func (s *Schedule) DeleteTask(t *model.Task) error {
	return s.DeleteTasks([]*model.Task{t})
}

// DeleteTasks removes every listed task in a single new state. Nothing is
// pushed if any of them is missing.
func (s *Schedule) DeleteTasks(tasks []*model.Task) error {
	current := s.Current()
	drop := make(map[*model.Task]bool, len(tasks))
	for _, t := range tasks {
		if !current.Contains(t) {
			return fmt.Errorf("delete %q: %w", t.Name, ErrTaskNotFound)
		}
		drop[t] = true
	}
	s.push(current.without(drop))
	return nil
}

// Search returns the tasks whose name shares at least one whitespace token
// with keywords, compared case-insensitively. Substrings do not match.
func (s *Schedule) Search(keywords ...string) []*model.Task {
	want := make([]string, 0, len(keywords))
	for _, k := range keywords {
		want = append(want, tokens(k)...)
	}
	var hits []*model.Task
	if len(want) == 0 {
		return hits
	}
	for _, t := range s.Current().tasks {
		if matchesAny(t.Name, want) {
			hits = append(hits, t)
		}
	}
	return hits
}

// ReminderHit is a reminder found by SearchReminders together with its owner.
type ReminderHit struct {
	Task  *model.Task
	Index int
}

// Reminder returns the reminder the hit points at.
func (h ReminderHit) Reminder() model.Reminder {
	return h.Task.Reminders[h.Index]
}

// SearchReminders finds reminders whose note matches keywords with the same
// token semantics as Search.
func (s *Schedule) SearchReminders(keywords ...string) []ReminderHit {
	want := make([]string, 0, len(keywords))
	for _, k := range keywords {
		want = append(want, tokens(k)...)
	}
	var hits []ReminderHit
	if len(want) == 0 {
		return hits
	}
	for _, t := range s.Current().tasks {
		for i, r := range t.Reminders {
			if matchesAny(r.Note, want) {
				hits = append(hits, ReminderHit{Task: t, Index: i})
			}
		}
	}
	return hits
}

// PopState discards the current state. It returns false, changing nothing,
// when only the initial state is left.
func (s *Schedule) PopState() bool {
	if len(s.states) <= 1 {
		return false
	}
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
	logger.Debug("Schedule state popped", "depth", len(s.states))
	return true
}
