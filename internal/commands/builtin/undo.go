package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// UndoCommand implements the undo command, which restores the previous schedule state.
type UndoCommand struct{}

// Name returns the command name "undo" for registration and lookup.
func (c *UndoCommand) Name() string {
	return "undo"
}

// Aliases returns the alternative trigger words.
func (c *UndoCommand) Aliases() []string {
	return []string{"u"}
}

// Description returns a brief description of what the undo command does.
func (c *UndoCommand) Description() string {
	return "Undo the last change"
}

// Usage returns the command format.
func (c *UndoCommand) Usage() string {
	return "undo"
}

// HelpInfo returns structured help information for the undo command.
func (c *UndoCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes: []string{
			"Only the most recent changes are kept; the oldest are forgotten first",
			"Loading a schedule starts a new history",
		},
	}
}

// RespondTo reports whether input starts with undo or one of its aliases.
func (c *UndoCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute pops the current schedule state.
func (c *UndoCommand) Execute(_ string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	if !sched.PopState() {
		return commands.Failure(taskerr.ErrUndoUnavailable)
	}
	return commands.Feedback("Undone. %s in the schedule.", plural(len(sched.Tasks()), "task"))
}
