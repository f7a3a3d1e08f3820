package builtin

import (
	"fmt"
	"strings"

	"taskshell/internal/argparse"
	"taskshell/internal/commands"
	"taskshell/internal/freetime"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/pkg/tasktypes"
)

// FreeCommand implements the free command, which lists the gaps between
// events inside a time window.
type FreeCommand struct{}

// Name returns the command name "free" for registration and lookup.
func (c *FreeCommand) Name() string {
	return "free"
}

// Aliases returns the alternative trigger words.
func (c *FreeCommand) Aliases() []string {
	return []string{"freetime"}
}

// Description returns a brief description of what the free command does.
func (c *FreeCommand) Description() string {
	return "Show free time between events"
}

// Usage returns the command format.
func (c *FreeCommand) Usage() string {
	return "free [st/FROM] [et/TO]"
}

// HelpInfo returns structured help information for the free command.
func (c *FreeCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Flags: []tasktypes.HelpFlag{
			{Name: argparse.FlagStart, Description: "Window start, defaults to 00:00"},
			{Name: argparse.FlagEnd, Description: "Window end, defaults to 23:59"},
		},
		Examples: []tasktypes.HelpExample{
			{Command: "free", Description: "Free time today"},
			{Command: "free st/2016-01-01 3.00PM et/2016-01-01 11.59PM", Description: "Free time in a window"},
		},
		Notes: []string{"Only events occupy time; todos and deadlines are ignored"},
	}
}

// RespondTo reports whether input starts with free or one of its aliases.
func (c *FreeCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute computes the free intervals of the window.
func (c *FreeCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	clock, err := timeService()
	if err != nil {
		return commands.Failure(err)
	}

	args := parser.Parse(commands.Arguments(input))
	window := argparse.ParseWindow(args, clock.Parser(), clock.Now())
	return result.Fold(window,
		func(w freetime.Interval) *tasktypes.Result {
			slots := freetime.Compute(w, sched.Tasks())
			if len(slots) == 0 {
				return commands.Feedback("No free time between %s.", w)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Free time between %s:", w)
			for i, slot := range slots {
				fmt.Fprintf(&b, "\n%d. %s", i+1, slot)
			}
			return commands.Text(b.String())
		},
		commands.Failure,
	)
}
