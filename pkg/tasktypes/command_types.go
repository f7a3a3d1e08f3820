package tasktypes

// CommandResult is what the presentation layer sees of a command execution.
type CommandResult interface {
	Feedback() string
}

// Result is the outcome of one Execute or Resume call.
type Result struct {
	// Message is the feedback shown to the user.
	Message string
	// Pending is set when the command is waiting for a reply.
	Pending Prompt
	// Exit asks the shell to terminate after printing Message.
	Exit bool
}

// Feedback returns the message to display.
func (r *Result) Feedback() string {
	if r == nil {
		return ""
	}
	return r.Message
}

// HelpInfo represents structured help information for a command.
type HelpInfo struct {
	Command     string        `json:"command"`            // Trigger word
	Aliases     []string      `json:"aliases,omitempty"`  // Alternative trigger words
	Description string        `json:"description"`        // Brief description of what the command does
	Usage       string        `json:"usage"`              // Command format
	Flags       []HelpFlag    `json:"flags,omitempty"`    // Flags understood by the command
	Examples    []HelpExample `json:"examples,omitempty"` // Usage examples
	Notes       []string      `json:"notes,omitempty"`    // Additional notes or warnings
}

// HelpFlag describes one name/value flag.
type HelpFlag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Repeatable  bool   `json:"repeatable,omitempty"`
}

// HelpExample represents a usage example with explanation.
type HelpExample struct {
	Command     string `json:"command"`     // Example command
	Description string `json:"description"` // What this example demonstrates
}
