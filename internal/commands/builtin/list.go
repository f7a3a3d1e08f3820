package builtin

import (
	"fmt"
	"strings"

	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

var listFilters = map[string]func(*model.Task) bool{
	"todo":     (*model.Task).IsTodo,
	"deadline": (*model.Task).IsDeadline,
	"event":    (*model.Task).IsEvent,
	"done":     func(t *model.Task) bool { return t.Done },
	"pending":  func(t *model.Task) bool { return !t.Done },
}

// ListCommand implements the list command.
type ListCommand struct{}

// Name returns the command name "list" for registration and lookup.
func (c *ListCommand) Name() string {
	return "list"
}

// Aliases returns the alternative trigger words.
func (c *ListCommand) Aliases() []string {
	return []string{"ls"}
}

// Description returns a brief description of what the list command does.
func (c *ListCommand) Description() string {
	return "List tasks"
}

// Usage returns the command format.
func (c *ListCommand) Usage() string {
	return "list [todo|deadline|event|done|pending] [#/TAG]"
}

// HelpInfo returns structured help information for the list command.
func (c *ListCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "list", Description: "List every task"},
			{Command: "list pending", Description: "List tasks that are not done"},
			{Command: "list event #/school", Description: "List school events"},
		},
	}
}

// RespondTo reports whether input starts with list or one of its aliases.
func (c *ListCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute lists the tasks that pass the filters.
func (c *ListCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}

	args := strings.Fields(commands.Arguments(input))
	var keep []func(*model.Task) bool
	for _, arg := range args {
		if tag, ok := strings.CutPrefix(arg, "#/"); ok {
			keep = append(keep, func(t *model.Task) bool { return t.HasTag(tag) })
			continue
		}
		filter, ok := listFilters[strings.ToLower(arg)]
		if !ok {
			return commands.Failure(taskerr.Invalid("unknown filter %q: use todo, deadline, event, done, pending or #/TAG", arg))
		}
		keep = append(keep, filter)
	}

	var shown []*model.Task
	for _, t := range sched.Tasks() {
		if passes(t, keep) {
			shown = append(shown, t)
		}
	}
	if len(shown) == 0 {
		return commands.Feedback("No tasks to show.")
	}
	return commands.Text(listing(fmt.Sprintf("%s:", plural(len(shown), "task")), shown))
}

func passes(t *model.Task, filters []func(*model.Task) bool) bool {
	for _, f := range filters {
		if !f(t) {
			return false
		}
	}
	return true
}
