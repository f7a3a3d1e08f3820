package builtin

import (
	"fmt"

	"taskshell/internal/commands"
	"taskshell/pkg/tasktypes"
)

// ClearCommand implements the clear command, which deletes every task after
// a confirmation.
type ClearCommand struct{}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Aliases returns no alternative trigger words.
func (c *ClearCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Delete all tasks"
}

// Usage returns the command format.
func (c *ClearCommand) Usage() string {
	return "clear"
}

// HelpInfo returns structured help information for the clear command.
func (c *ClearCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes:       []string{"Asks for confirmation; undo restores the tasks"},
	}
}

// RespondTo reports whether input starts with clear.
func (c *ClearCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute asks for confirmation before deleting everything.
func (c *ClearCommand) Execute(_ string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	tasks := sched.Tasks()
	if len(tasks) == 0 {
		return commands.Feedback("There are no tasks to clear.")
	}

	question := fmt.Sprintf("Delete all %s?", plural(len(tasks), "task"))
	return commands.Ask(commands.NewConfirmation(question, func() *tasktypes.Result {
		if err := sched.DeleteTasks(tasks); err != nil {
			return commands.Failure(err)
		}
		return commands.Feedback("Deleted %s.", plural(len(tasks), "task"))
	}))
}
