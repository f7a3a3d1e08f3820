package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/pkg/tasktypes"
)

// DoneCommand implements the done and undone commands, which set or clear a
// task's done flag.
type DoneCommand struct {
	done bool
}

// NewDoneCommand returns the done command.
func NewDoneCommand() *DoneCommand {
	return &DoneCommand{done: true}
}

// NewUndoneCommand returns the undone command.
func NewUndoneCommand() *DoneCommand {
	return &DoneCommand{done: false}
}

// Name returns "done" or "undone".
func (c *DoneCommand) Name() string {
	if c.done {
		return "done"
	}
	return "undone"
}

// Aliases returns no alternative trigger words.
func (c *DoneCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the command does.
func (c *DoneCommand) Description() string {
	if c.done {
		return "Mark a task as done"
	}
	return "Mark a task as not done"
}

// Usage returns the command format.
func (c *DoneCommand) Usage() string {
	return c.Name() + " KEYWORDS"
}

// HelpInfo returns structured help information for the command.
func (c *DoneCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: c.Name() + " essay", Description: c.Description() + " by name"},
		},
	}
}

// RespondTo reports whether input starts with the trigger word.
func (c *DoneCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute updates the done flag of the matching task.
func (c *DoneCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	return pickTask(sched, commands.Arguments(input), func(t *model.Task) *tasktypes.Result {
		if t.Done == c.done {
			return commands.Feedback("Nothing to change: %s", t)
		}
		verb := "Marked as done"
		if !c.done {
			verb = "Marked as not done"
		}
		return replaceTask(sched, t, t.WithDone(c.done), verb)
	})
}
