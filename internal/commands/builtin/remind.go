package builtin

import (
	"taskshell/internal/argparse"
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/pkg/tasktypes"
)

// RemindCommand implements the remind command, which attaches a reminder to a task.
type RemindCommand struct{}

// Name returns the command name "remind" for registration and lookup.
func (c *RemindCommand) Name() string {
	return "remind"
}

// Aliases returns the alternative trigger words.
func (c *RemindCommand) Aliases() []string {
	return []string{"r"}
}

// Description returns a brief description of what the remind command does.
func (c *RemindCommand) Description() string {
	return "Add a reminder to a task"
}

// Usage returns the command format.
func (c *RemindCommand) Usage() string {
	return "remind KEYWORDS n/NOTE t/TIME"
}

// HelpInfo returns structured help information for the remind command.
func (c *RemindCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Flags: []tasktypes.HelpFlag{
			{Name: argparse.FlagName, Description: "What to be reminded of", Required: true},
			{Name: argparse.FlagTime, Description: "When to be reminded", Required: true},
		},
		Examples: []tasktypes.HelpExample{
			{Command: "remind tutorial n/print slides t/2016-01-01 3.00PM", Description: "Remind about a task"},
		},
	}
}

// RespondTo reports whether input starts with remind or one of its aliases.
func (c *RemindCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute parses the reminder and attaches it to the matching task.
func (c *RemindCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	tp, err := timeParser()
	if err != nil {
		return commands.Failure(err)
	}

	args := parser.Parse(commands.Arguments(input))
	reminder, err, ok := argparse.ParseReminder(args, tp).Get()
	if !ok {
		return commands.Failure(err)
	}

	return pickTask(sched, args.Keywords, func(t *model.Task) *tasktypes.Result {
		for _, existing := range t.Reminders {
			if existing.Equal(reminder) {
				return commands.Feedback("%s already has the reminder %s", t.Name, reminder)
			}
		}
		if err := sched.UpdateTask(t, t.AddReminder(reminder)); err != nil {
			return commands.Failure(err)
		}
		return commands.Feedback("Added reminder %s to %s", reminder, t.Name)
	})
}
