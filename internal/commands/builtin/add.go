package builtin

import (
	"taskshell/internal/argparse"
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/pkg/tasktypes"
)

// AddCommand implements the add command for creating todos, deadlines and events.
type AddCommand struct{}

// Name returns the command name "add" for registration and lookup.
func (c *AddCommand) Name() string {
	return "add"
}

// Aliases returns the alternative trigger words.
func (c *AddCommand) Aliases() []string {
	return []string{"a"}
}

// Description returns a brief description of what the add command does.
func (c *AddCommand) Description() string {
	return "Add a task"
}

// Usage returns the command format.
func (c *AddCommand) Usage() string {
	return "add NAME [st/START] [et/END] [#/TAG]..."
}

// HelpInfo returns structured help information for the add command.
func (c *AddCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Flags: []tasktypes.HelpFlag{
			{Name: argparse.FlagStart, Description: "Start time; requires an end time"},
			{Name: argparse.FlagEnd, Description: "End time, or the deadline when no start is given"},
			{Name: argparse.FlagTag, Description: "Tag the task", Repeatable: true},
		},
		Examples: []tasktypes.HelpExample{
			{Command: "add buy milk", Description: "Add a todo"},
			{Command: "add essay et/2016-01-05 11.59PM #/school", Description: "Add a tagged deadline"},
			{Command: "add CS2103T Tutorial st/2016-01-01 5.00PM et/2016-01-01 7.00PM", Description: "Add an event"},
		},
		Notes: []string{
			"A task with only an end time is a deadline, with both times an event",
			"If a flag is repeated the last value is used, except for tags",
		},
	}
}

// RespondTo reports whether input starts with add or one of its aliases.
func (c *AddCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute parses the task and adds it to the schedule.
func (c *AddCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	tp, err := timeParser()
	if err != nil {
		return commands.Failure(err)
	}

	parsed := argparse.ParseAdd(parser.Parse(commands.Arguments(input)), tp)
	return result.Fold(parsed,
		func(t *model.Task) *tasktypes.Result {
			sched.AddTask(t)
			return commands.Feedback("Added: %s", t)
		},
		commands.Failure,
	)
}
