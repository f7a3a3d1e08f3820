// Package output renders command feedback for the taskshell console.
// Styling is injected through a StyleProvider so the package stays free of service dependencies.
package output

// StyleProvider is implemented by anything that can style text by semantic meaning,
// such as the lipgloss Theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to provide styles.
	// The printer falls back to plain text otherwise.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text string) string
}

// Mode defines the output modes a printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a provider is available and the terminal supports color
	ModeAuto Mode = iota

	// ModeStyled forces styled output
	ModeStyled

	// ModePlain forces plain text output
	ModePlain

	// ModeJSON outputs one JSON object per message for machine consumption
	ModeJSON
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain is text without any semantic meaning, such as task listings.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is informational text such as the banner.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess is feedback for a change applied to the schedule.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning is text that needs attention.
	SemanticWarning SemanticType = "warning"
	// SemanticError is a failure reported by a command.
	SemanticError SemanticType = "error"
	// SemanticPrompt is a question the shell is waiting on.
	SemanticPrompt SemanticType = "prompt"
)
