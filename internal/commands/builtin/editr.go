package builtin

import (
	"taskshell/internal/argparse"
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/schedule"
	"taskshell/pkg/tasktypes"
)

// EditReminderCommand implements the editr command.
type EditReminderCommand struct{}

// Name returns the command name "editr" for registration and lookup.
func (c *EditReminderCommand) Name() string {
	return "editr"
}

// Aliases returns no alternative trigger words.
func (c *EditReminderCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the editr command does.
func (c *EditReminderCommand) Description() string {
	return "Edit a reminder"
}

// Usage returns the command format.
func (c *EditReminderCommand) Usage() string {
	return "editr KEYWORDS [n/NOTE] [t/TIME]"
}

// HelpInfo returns structured help information for the editr command.
func (c *EditReminderCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Flags: []tasktypes.HelpFlag{
			{Name: argparse.FlagName, Description: "New note"},
			{Name: argparse.FlagTime, Description: "New time"},
		},
		Examples: []tasktypes.HelpExample{
			{Command: "editr slides t/2016-01-01 4.00PM", Description: "Move a reminder"},
		},
	}
}

// RespondTo reports whether input starts with editr.
func (c *EditReminderCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute finds the reminder and applies the edits to it.
func (c *EditReminderCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	tp, err := timeParser()
	if err != nil {
		return commands.Failure(err)
	}

	args := parser.Parse(commands.Arguments(input))
	if err := argparse.CheckFlags(args, argparse.ReminderFlags); err != nil {
		return commands.Failure(err)
	}
	return pickReminder(sched, args.Keywords, func(hit schedule.ReminderHit) *tasktypes.Result {
		return result.Fold(argparse.ParseEditReminder(hit.Reminder(), args, tp),
			func(updated model.Reminder) *tasktypes.Result {
				if err := sched.UpdateTask(hit.Task, hit.Task.ReplaceReminder(hit.Index, updated)); err != nil {
					return commands.Failure(err)
				}
				return commands.Feedback("Edited reminder on %s: %s", hit.Task.Name, updated)
			},
			commands.Failure,
		)
	})
}
