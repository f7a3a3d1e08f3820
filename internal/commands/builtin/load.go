package builtin

import (
	"taskshell/internal/commands"
	"taskshell/pkg/tasktypes"
)

// LoadCommand implements the load command. The loaded tasks replace the
// schedule and its undo history.
type LoadCommand struct{}

// Name returns the command name "load" for registration and lookup.
func (c *LoadCommand) Name() string {
	return "load"
}

// Aliases returns no alternative trigger words.
func (c *LoadCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the load command does.
func (c *LoadCommand) Description() string {
	return "Load a schedule file"
}

// Usage returns the command format.
func (c *LoadCommand) Usage() string {
	return "load [PATH]"
}

// HelpInfo returns structured help information for the load command.
func (c *LoadCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "load", Description: "Reload the current schedule file"},
			{Command: "load backup.yaml", Description: "Switch to another schedule file"},
		},
		Notes: []string{"Unsaved changes are lost and undo starts over"},
	}
}

// RespondTo reports whether input starts with load.
func (c *LoadCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute reads the schedule file and replaces the schedule with it.
func (c *LoadCommand) Execute(input string) *tasktypes.Result {
	svc, err := scheduleService()
	if err != nil {
		return commands.Failure(err)
	}
	store, err := storageService()
	if err != nil {
		return commands.Failure(err)
	}

	path := commands.Arguments(input)
	if path == "" || store.SamePath(path) {
		path = store.Path()
		if !store.Exists() {
			return commands.Feedback("Error: no schedule file at %s", path)
		}
		tasks, err := store.Load()
		if err != nil {
			return commands.Feedback("Error: could not load %s: %v", path, err)
		}
		svc.Replace(tasks)
		return commands.Feedback("Loaded %s from %s.", plural(len(tasks), "task"), path)
	}

	tasks, err := store.LoadFrom(path)
	if err != nil {
		return commands.Feedback("Error: could not load %s: %v", path, err)
	}
	svc.Replace(tasks)
	return commands.Feedback("Loaded %s from %s.", plural(len(tasks), "task"), path)
}
