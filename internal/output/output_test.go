package output

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskshell/pkg/tasktypes"
)

type stubPrompt struct{}

func (stubPrompt) Text() string { return "Which one?" }

func (stubPrompt) Resume(string) (*tasktypes.Result, bool) { return nil, false }

func TestPrinterSemanticOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Info("information")
	printer.Success("completed")
	printer.Warning("careful")
	printer.Error("failed")
	printer.Println("plain")

	assert.Equal(t, []string{
		"ℹ information",
		"✓ completed",
		"⚠ careful",
		"✗ failed",
		"plain",
	}, buffer.Lines())
}

func TestPrinterFeedback(t *testing.T) {
	tests := []struct {
		name     string
		result   *tasktypes.Result
		plain    string
		semantic SemanticType
	}{
		{
			name:     "listing",
			result:   &tasktypes.Result{Message: "1. buy milk"},
			plain:    "1. buy milk\n",
			semantic: SemanticPlain,
		},
		{
			name:     "failure",
			result:   &tasktypes.Result{Message: "Error: nothing to undo"},
			plain:    "Error: nothing to undo\n",
			semantic: SemanticError,
		},
		{
			name:     "prompt",
			result:   &tasktypes.Result{Message: "Which one?", Pending: stubPrompt{}},
			plain:    "Which one?\n",
			semantic: SemanticPrompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.semantic, Classify(tt.result))

			plain := NewCaptureBuffer()
			NewPrinter(WithWriter(plain), TestMode()).Feedback(tt.result)
			assert.Equal(t, tt.plain, plain.String(), "plain feedback is printed verbatim")

			styled := NewCaptureBuffer()
			NewPrinter(WithWriter(styled), WithStyles(NewMockStyleProvider())).Feedback(tt.result)
			assert.Equal(t, "["+string(tt.semantic)+"]"+tt.result.Message+"[/"+string(tt.semantic)+"]\n", styled.String())
		})
	}
}

func TestPrinterFeedbackSkipsEmpty(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Feedback(nil)
	printer.Feedback(&tasktypes.Result{})

	assert.Empty(t, buffer.String())
}

func TestPrinterWithUnavailableStyleProvider(t *testing.T) {
	buffer := NewCaptureBuffer()
	provider := NewMockStyleProvider()
	provider.SetAvailable(false)

	printer := NewPrinter(WithWriter(buffer), WithStyles(provider))
	printer.Info("test message")

	assert.Equal(t, "ℹ test message\n", buffer.String())
	assert.False(t, printer.IsStylable())
}

func TestPrinterPlainModeIgnoresStyles(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()), PlainText())

	printer.Success("saved")

	assert.Equal(t, "✓ saved\n", buffer.String())
}

func TestPrinterJSONMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), JSON())

	printer.Feedback(&tasktypes.Result{Message: "Error: bad"})

	lines := buffer.Lines()
	require.Len(t, lines, 1)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "error", decoded["type"])
	assert.Equal(t, "Error: bad", decoded["message"])
}

func TestPrinterSilentAndPrefix(t *testing.T) {
	silent := NewCaptureBuffer()
	NewPrinter(WithWriter(silent), Silent()).Println("hidden")
	assert.Empty(t, silent.String())

	prefixed := NewCaptureBuffer()
	NewPrinter(WithWriter(prefixed), TestMode(), WithPrefix("[batch] ")).Println("line")
	assert.Equal(t, "[batch] line\n", prefixed.String())
}

func TestThemeStyles(t *testing.T) {
	theme := NewTheme()
	require.True(t, theme.IsAvailable())

	for _, semantic := range []SemanticType{SemanticPlain, SemanticError, SemanticPrompt, "unknown"} {
		rendered := theme.GetStyle(string(semantic)).Render("text")
		assert.Equal(t, "text", ansi.Strip(rendered), "styles only add escape codes")
	}
}

func TestForStyle(t *testing.T) {
	plain := NewPrinter(ForStyle("plain")...)
	assert.False(t, plain.IsStylable())

	color := NewPrinter(ForStyle("color")...)
	assert.True(t, color.IsStylable())
}

func TestGlobalPrinter(t *testing.T) {
	original := GetGlobalPrinter()
	defer SetGlobalPrinter(original)

	buffer := NewCaptureBuffer()
	ConfigureGlobal(WithWriter(buffer), TestMode())

	Println("world")
	Info("info message")

	assert.Equal(t, []string{"world", "ℹ info message"}, buffer.Lines())
}

func TestCaptureBuffer(t *testing.T) {
	buffer := NewCaptureBuffer()
	assert.Empty(t, buffer.Lines())

	_, err := buffer.Write([]byte("line1\nline2\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"line1", "line2"}, buffer.Lines())
	assert.True(t, buffer.Contains("line2"))

	buffer.Reset()
	assert.Empty(t, buffer.String())
}
