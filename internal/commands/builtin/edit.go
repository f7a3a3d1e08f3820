package builtin

import (
	"taskshell/internal/argparse"
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// EditCommand implements the edit command. Fields that are not mentioned keep
// their value and "-" clears a field.
type EditCommand struct{}

// Name returns the command name "edit" for registration and lookup.
func (c *EditCommand) Name() string {
	return "edit"
}

// Aliases returns the alternative trigger words.
func (c *EditCommand) Aliases() []string {
	return []string{"e"}
}

// Description returns a brief description of what the edit command does.
func (c *EditCommand) Description() string {
	return "Edit a task"
}

// Usage returns the command format.
func (c *EditCommand) Usage() string {
	return "edit KEYWORDS [n/NAME] [st/START|-] [et/END|-] [#/TAG|-]..."
}

// HelpInfo returns structured help information for the edit command.
func (c *EditCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Flags: []tasktypes.HelpFlag{
			{Name: argparse.FlagName, Description: "New name"},
			{Name: argparse.FlagStart, Description: "New start time, - to clear"},
			{Name: argparse.FlagEnd, Description: "New end time, - to clear"},
			{Name: argparse.FlagTag, Description: "Replace the tags, - to remove them all", Repeatable: true},
		},
		Examples: []tasktypes.HelpExample{
			{Command: "edit tutorial n/CS2103T Lab", Description: "Rename a task, keeping its times"},
			{Command: "edit tutorial st/- et/-", Description: "Turn an event into a todo"},
		},
		Notes: []string{"The edited task must still satisfy the start and end time rules"},
	}
}

// RespondTo reports whether input starts with edit or one of its aliases.
func (c *EditCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute finds the task and applies the edits to it.
func (c *EditCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	tp, err := timeParser()
	if err != nil {
		return commands.Failure(err)
	}

	args := parser.Parse(commands.Arguments(input))
	if err := argparse.CheckFlags(args, argparse.EditFlags); err != nil {
		return commands.Failure(err)
	}
	if !argparse.HasEdits(args) {
		return commands.Failure(taskerr.Invalid("nothing to change: give at least one of n/, st/, et/ or #/"))
	}

	return pickTask(sched, args.Keywords, func(original *model.Task) *tasktypes.Result {
		return result.Fold(argparse.ParseEdit(original, args, tp),
			func(updated *model.Task) *tasktypes.Result {
				return replaceTask(sched, original, updated, "Edited")
			},
			commands.Failure,
		)
	})
}
