package builtin

import (
	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/services"
	"taskshell/pkg/tasktypes"
)

// SaveCommand implements the save command. Saving over an existing file
// other than the current schedule file asks for confirmation first.
type SaveCommand struct{}

// Name returns the command name "save" for registration and lookup.
func (c *SaveCommand) Name() string {
	return "save"
}

// Aliases returns no alternative trigger words.
func (c *SaveCommand) Aliases() []string {
	return nil
}

// Description returns a brief description of what the save command does.
func (c *SaveCommand) Description() string {
	return "Save the schedule"
}

// Usage returns the command format.
func (c *SaveCommand) Usage() string {
	return "save [PATH]"
}

// HelpInfo returns structured help information for the save command.
func (c *SaveCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "save", Description: "Save to the current schedule file"},
			{Command: "save backup.yaml", Description: "Save to another file and keep using it"},
		},
	}
}

// RespondTo reports whether input starts with save.
func (c *SaveCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute writes the current tasks through the storage service.
func (c *SaveCommand) Execute(input string) *tasktypes.Result {
	sched, err := currentSchedule()
	if err != nil {
		return commands.Failure(err)
	}
	store, err := storageService()
	if err != nil {
		return commands.Failure(err)
	}

	tasks := sched.Tasks()
	path := commands.Arguments(input)
	if path == "" || store.SamePath(path) {
		return saveTo(store, store.Path(), tasks)
	}
	if !store.ExistsAt(path) {
		return saveTo(store, path, tasks)
	}
	return commands.Ask(commands.NewConfirmation(path+" already exists. Overwrite it?", func() *tasktypes.Result {
		return saveTo(store, path, tasks)
	}))
}

func saveTo(store *services.StorageService, path string, tasks []*model.Task) *tasktypes.Result {
	var err error
	if store.SamePath(path) {
		err = store.Save(tasks)
	} else {
		err = store.SaveAs(path, tasks)
	}
	if err != nil {
		return commands.Feedback("Error: could not save to %s: %v", path, err)
	}
	return commands.Feedback("Saved %s to %s.", plural(len(tasks), "task"), path)
}
