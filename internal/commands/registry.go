// Package commands provides command registration, dispatch and the
// interactive prompt protocol for taskshell.
package commands

import (
	"fmt"
	"strings"
	"sync"

	"taskshell/pkg/tasktypes"
)

// Registry manages command registration and lookup for taskshell commands.
// Commands keep their registration order, which is also the dispatch order.
type Registry struct {
	mu       sync.RWMutex
	commands []tasktypes.Command
	triggers map[string]tasktypes.Command
}

// NewRegistry creates a new command registry with no commands.
func NewRegistry() *Registry {
	return &Registry{
		triggers: make(map[string]tasktypes.Command),
	}
}

// Register appends a command to the registry. Returns an error if the command
// name is empty or if its name or an alias is already taken.
func (r *Registry) Register(cmd tasktypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(cmd.Name()) == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	words := append([]string{cmd.Name()}, cmd.Aliases()...)
	for _, word := range words {
		if other, exists := r.triggers[strings.ToLower(word)]; exists {
			return fmt.Errorf("trigger %q of command %s already registered by %s", word, cmd.Name(), other.Name())
		}
	}

	for _, word := range words {
		r.triggers[strings.ToLower(word)] = cmd
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Get retrieves a command by trigger word or alias, ignoring case.
func (r *Registry) Get(word string) (tasktypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.triggers[strings.ToLower(strings.TrimSpace(word))]
	return cmd, exists
}

// GetAll returns the registered commands in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) GetAll() []tasktypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]tasktypes.Command, len(r.commands))
	copy(commands, r.commands)
	return commands
}

// Triggers returns every trigger word followed by its aliases, in
// registration order.
func (r *Registry) Triggers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var words []string
	for _, cmd := range r.commands {
		words = append(words, cmd.Name())
		words = append(words, cmd.Aliases()...)
	}
	return words
}

// IsValidCommand checks if word is a registered trigger or alias.
func (r *Registry) IsValidCommand(word string) bool {
	_, exists := r.Get(word)
	return exists
}

// GlobalRegistry is the global command registry instance used throughout taskshell.
// Commands register themselves with this instance during initialization.
var GlobalRegistry = NewRegistry()
