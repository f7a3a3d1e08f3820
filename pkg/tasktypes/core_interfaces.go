package tasktypes

import "time"

// Service defines the interface for taskshell services that provide specific functionality.
// Services are registered at startup and initialized once before the first command runs.
type Service interface {
	Name() string
	Initialize() error
}

// Command defines the interface that all taskshell commands must implement.
// Commands are matched by trigger word or alias and must never panic on bad input:
// every failure is returned as feedback.
type Command interface {
	// Name returns the trigger word.
	Name() string
	// Aliases returns alternative trigger words.
	Aliases() []string
	Description() string
	// Usage returns the command format.
	Usage() string
	HelpInfo() HelpInfo
	// RespondTo reports whether input invokes this command.
	RespondTo(input string) bool
	// Execute runs the command for a full input line.
	Execute(input string) *Result
}

// Prompt is a question a command left open. While a prompt is pending every
// input line is routed to Resume instead of normal dispatch.
type Prompt interface {
	// Text returns the question together with any numbered listing.
	Text() string
	// Resume handles one reply. The boolean is true while the prompt stays open.
	Resume(input string) (*Result, bool)
}

// TimeParser is the time-parsing collaborator used by argument parsers.
type TimeParser interface {
	CanParse(s string) bool
	Parse(s string) (time.Time, error)
}
