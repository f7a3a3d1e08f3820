package output

import (
	"github.com/charmbracelet/lipgloss"
)

// lipglossStyle adapts lipgloss.Style, whose Render is variadic, to TextStyle.
type lipglossStyle struct {
	style lipgloss.Style
}

func (s lipglossStyle) Render(text string) string {
	return s.style.Render(text)
}

// Theme is the default colored StyleProvider.
type Theme struct {
	styles map[SemanticType]lipgloss.Style
}

// NewTheme creates the default color theme.
func NewTheme() *Theme {
	return &Theme{
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   lipgloss.NewStyle(),
			SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue
			SemanticSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange
			SemanticError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			SemanticPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")), // Purple
		},
	}
}

// GetStyle returns the style for semantic, or an unstyled one.
func (t *Theme) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return lipglossStyle{style: style}
	}
	return lipglossStyle{style: lipgloss.NewStyle()}
}

// IsAvailable reports whether the theme is ready.
func (t *Theme) IsAvailable() bool {
	return t != nil && t.styles != nil
}
