package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/schedule"
	"taskshell/pkg/tasktypes"
)

// DeleteReminderCommand implements the deleter command, which removes a
// reminder found by the words of its note.
type DeleteReminderCommand struct{}

// Name returns the command name "deleter" for registration and lookup.
func (c *DeleteReminderCommand) Name() string {
	return "deleter"
}

// Aliases returns the alternative trigger words.
func (c *DeleteReminderCommand) Aliases() []string {
	return []string{"delr"}
}

// Description returns a brief description of what the deleter command does.
func (c *DeleteReminderCommand) Description() string {
	return "Delete a reminder"
}

// Usage returns the command format.
func (c *DeleteReminderCommand) Usage() string {
	return "deleter KEYWORDS"
}

// HelpInfo returns structured help information for the deleter command.
func (c *DeleteReminderCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "deleter slides", Description: "Delete the reminder whose note mentions slides"},
		},
		Notes: []string{"Keywords are matched against reminder notes, not task names"},
	}
}

// RespondTo reports whether input starts with deleter or one of its aliases.
func (c *DeleteReminderCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute removes the matching reminder from its task.
func (c *DeleteReminderCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	return pickReminder(sched, commands.Arguments(input), func(hit schedule.ReminderHit) *tasktypes.Result {
		removed := hit.Reminder()
		if err := sched.UpdateTask(hit.Task, hit.Task.RemoveReminder(hit.Index)); err != nil {
			return commands.Failure(err)
		}
		return commands.Feedback("Deleted reminder %s from %s", removed, hit.Task.Name)
	})
}
