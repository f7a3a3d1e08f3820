package builtin

import (
	"fmt"
	"strings"

	"taskshell/internal/commands"
	"taskshell/pkg/tasktypes"
)

// HelpCommand implements the help command for displaying available commands and usage information.
type HelpCommand struct {
	registry *commands.Registry
}

// NewHelpCommand creates a help command describing the commands of registry.
func NewHelpCommand(registry *commands.Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Aliases returns the alternative trigger words.
func (c *HelpCommand) Aliases() []string {
	return []string{"h", "?"}
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show command help"
}

// Usage returns the command format.
func (c *HelpCommand) Usage() string {
	return "help [COMMAND]"
}

// HelpInfo returns structured help information for the help command.
func (c *HelpCommand) HelpInfo() tasktypes.HelpInfo {
	return tasktypes.HelpInfo{
		Command:     c.Name(),
		Aliases:     c.Aliases(),
		Description: c.Description(),
		Usage:       c.Usage(),
		Examples: []tasktypes.HelpExample{
			{Command: "help", Description: "List all commands"},
			{Command: "help edit", Description: "Show detailed help for edit"},
		},
	}
}

// RespondTo reports whether input starts with help or one of its aliases.
func (c *HelpCommand) RespondTo(input string) bool {
	return commands.MatchesTrigger(input, c.Name(), c.Aliases())
}

// Execute lists every command, or describes the one named in input.
func (c *HelpCommand) Execute(input string) *tasktypes.Result {
	registry := c.registry
	if registry == nil {
		registry = commands.GlobalRegistry
	}

	name := commands.TriggerOf(commands.Arguments(input))
	if name == "" {
		return commands.Text(c.overview(registry))
	}
	cmd, ok := registry.Get(name)
	if !ok {
		return commands.Feedback("Error: command %q not found. Use help to see all available commands", name)
	}
	return commands.Text(detail(cmd.HelpInfo()))
}

func (c *HelpCommand) overview(registry *commands.Registry) string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, cmd := range registry.GetAll() {
		fmt.Fprintf(&b, "\n  %-50s %s", cmd.Usage(), cmd.Description())
	}
	b.WriteString("\n\nUse help COMMAND for details on one command.")
	return b.String()
}

func detail(info tasktypes.HelpInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Command: %s\n", info.Command)
	if len(info.Aliases) > 0 {
		fmt.Fprintf(&b, "Aliases: %s\n", strings.Join(info.Aliases, ", "))
	}
	fmt.Fprintf(&b, "Description: %s\n", info.Description)
	fmt.Fprintf(&b, "Usage: %s", info.Usage)

	if len(info.Flags) > 0 {
		b.WriteString("\n\nFlags:")
		for _, f := range info.Flags {
			var marks []string
			if f.Required {
				marks = append(marks, "required")
			}
			if f.Repeatable {
				marks = append(marks, "repeatable")
			}
			suffix := ""
			if len(marks) > 0 {
				suffix = " (" + strings.Join(marks, ", ") + ")"
			}
			fmt.Fprintf(&b, "\n  %-4s %s%s", f.Name+"/", f.Description, suffix)
		}
	}
	if len(info.Examples) > 0 {
		b.WriteString("\n\nExamples:")
		for _, ex := range info.Examples {
			fmt.Fprintf(&b, "\n  %s\n      %s", ex.Command, ex.Description)
		}
	}
	if len(info.Notes) > 0 {
		b.WriteString("\n\nNotes:")
		for _, note := range info.Notes {
			fmt.Fprintf(&b, "\n  - %s", note)
		}
	}
	return b.String()
}
