// Package builtin provides the built-in taskshell commands that are available by default.
package builtin

import (
	"fmt"

	"taskshell/internal/commands"
	"taskshell/pkg/tasktypes"
)

// Catalog returns a fresh instance of every builtin command in dispatch order.
// The help command describes registry.
func Catalog(registry *commands.Registry) []tasktypes.Command {
	return []tasktypes.Command{
		&AddCommand{},
		&DeleteCommand{},
		&EditCommand{},
		NewDoneCommand(),
		NewUndoneCommand(),
		&FindCommand{},
		&ListCommand{},
		&RemindCommand{},
		&DeleteReminderCommand{},
		&EditReminderCommand{},
		&FreeCommand{},
		&UndoCommand{},
		&ClearCommand{},
		&SaveCommand{},
		&LoadCommand{},
		NewHelpCommand(registry),
		&ExitCommand{},
	}
}

// RegisterAll registers the catalog with registry.
func RegisterAll(registry *commands.Registry) error {
	for _, cmd := range Catalog(registry) {
		if err := registry.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := RegisterAll(commands.GlobalRegistry); err != nil {
		panic(fmt.Sprintf("failed to register builtin commands: %v", err))
	}
}
