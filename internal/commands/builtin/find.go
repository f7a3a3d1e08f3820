package builtin

import (
	"fmt"
	"strings"

	"taskshell/internal/commands"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// FindCommand implements the find command for listing tasks by keyword.
type FindCommand struct{}

// Name returns the command name "find" for registration and lookup.
func (c *FindCommand) Name() string {
	return "find"
}

// Aliases returns the alternative trigger words.
func (c *FindCommand) Aliases() []string {
	return []string{"search"}
}

// Description returns a brief description of what the find command does.
func (c *FindCommand) Description() string {
	return "Find tasks by keyword"
}

// Usage returns the command format.
func (c *FindCommand) Usage() string {
	return "find KEYWORDS"
}

// HelpInfo returns structured help information for the find command.
func (c *FindCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "find tutorial lab", Description: "List tasks named with either word"},
		},
		Notes: []string{"Only whole words match: \"tut\" does not find \"tutorial\""},
	}
}

// RespondTo reports whether input starts with find or one of its aliases.
func (c *FindCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute lists the tasks matching the keywords.
func (c *FindCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	keywords := commands.Arguments(input)
	if strings.TrimSpace(keywords) == "" {
		return commands.Failure(taskerr.Invalid("tell me what to find: the keywords cannot be empty"))
	}

	hits := sched.Search(keywords)
	if len(hits) == 0 {
		return commands.Failure(taskerr.NoMatch(keywords))
	}
	return commands.Text(listing(fmt.Sprintf("Found %s:", plural(len(hits), "task")), hits))
}
