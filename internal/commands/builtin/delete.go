package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/pkg/tasktypes"
)

// DeleteCommand implements the delete command. When several tasks match the
// keywords the user is asked which one to delete.
type DeleteCommand struct{}

// Name returns the command name "delete" for registration and lookup.
func (c *DeleteCommand) Name() string {
	return "delete"
}

// Aliases returns the alternative trigger words.
func (c *DeleteCommand) Aliases() []string {
	return []string{"del", "rm"}
}

// Description returns a brief description of what the delete command does.
func (c *DeleteCommand) Description() string {
	return "Delete a task"
}

// Usage returns the command format.
func (c *DeleteCommand) Usage() string {
	return "delete KEYWORDS"
}

// HelpInfo returns structured help information for the delete command.
func (c *DeleteCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "delete tutorial", Description: "Delete the task with the word \"tutorial\" in its name"},
		},
		Notes: []string{
			"Keywords match whole words of the task name, ignoring case",
			"Use undo to bring a deleted task back",
		},
	}
}

// RespondTo reports whether input starts with delete or one of its aliases.
func (c *DeleteCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute deletes the matching task.
func (c *DeleteCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	return pickTask(sched, commands.Arguments(input), func(t *model.Task) *tasktypes.Result {
		if err := sched.DeleteTask(t); err != nil {
			return commands.Failure(err)
		}
		return commands.Feedback("Deleted: %s", t)
	})
}
