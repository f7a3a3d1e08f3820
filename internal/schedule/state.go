// Package schedule keeps the versioned task collection. Every mutation pushes
// a new immutable State; undo pops it. Tasks are located by pointer identity.
package schedule

import (
	"slices"
	"strings"

	"taskshell/internal/model"
)

// State is one immutable snapshot of the task list.
type State struct {
	tasks []*model.Task
}

// NewState creates a snapshot holding a copy of tasks.
func NewState(tasks []*model.Task) *State {
	return &State{tasks: slices.Clone(tasks)}
}

// Tasks returns a copy of the snapshot's task list.
func (s *State) Tasks() []*model.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks in the snapshot.
func (s *State) Len() int {
	return len(s.tasks)
}

// IndexOf returns the position of exactly this task pointer, or -1.
func (s *State) IndexOf(t *model.Task) int {
	for i, candidate := range s.tasks {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Contains reports whether this task pointer is in the snapshot.
func (s *State) Contains(t *model.Task) bool {
	return s.IndexOf(t) >= 0
}

func (s *State) with(t *model.Task) *State {
	tasks := make([]*model.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, s.tasks...)
	return &State{tasks: append(tasks, t)}
}

func (s *State) replaced(i int, t *model.Task) *State {
	tasks := slices.Clone(s.tasks)
	tasks[i] = t
	return &State{tasks: tasks}
}

func (s *State) without(drop map[*model.Task]bool) *State {
	tasks := make([]*model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !drop[t] {
			tasks = append(tasks, t)
		}
	}
	return &State{tasks: tasks}
}

// tokens splits text on whitespace and lower-cases every token.
func tokens(text string) []string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// matchesAny reports whether any token of text equals any keyword token.
func matchesAny(text string, keywords []string) bool {
	for _, tok := range tokens(text) {
		if slices.Contains(keywords, tok) {
			return true
		}
	}
	return false
}
