package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/logger"
	"taskshell/internal/services"
	"taskshell/pkg/tasktypes"
)

// ExitCommand implements the exit command for terminating the taskshell session.
// When autosave is configured the schedule is saved first; a failed save keeps
// the session open.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Aliases returns the alternative trigger words.
func (c *ExitCommand) Aliases() []string {
	return []string{"quit", "q"}
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exit the shell"
}

// Usage returns the command format.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// HelpInfo returns structured help information for the exit command.
func (c *ExitCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Notes: []string{
			"Saves the schedule first when exit.autosave is enabled",
			"Use Ctrl+D as an alternative exit method",
		},
	}
}

// RespondTo reports whether input starts with exit or one of its aliases.
func (c *ExitCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute asks the shell to stop.
func (c *ExitCommand) Execute(_ string) *tasktypes.Result {
	if cfg, err := services.GetConfigurationService(); err == nil && cfg.Autosave() {
		sched, err := currentSchedule()
		if err != nil {
			return commands.Failure(err)
		}
		store, err := storageService()
		if err != nil {
			return commands.Failure(err)
		}
		if err := store.Save(sched.Tasks()); err != nil {
			logger.Error("Autosave failed", "path", store.Path(), "error", err)
			return commands.Feedback("Error: could not save to %s: %v. Use save PATH, or turn off exit.autosave to exit without saving.", store.Path(), err)
		}
		return &tasktypes.Result{Message: "Saved to " + store.Path() + ". Goodbye!", Exit: true}
	}
	return &tasktypes.Result{Message: "Goodbye!", Exit: true}
}
