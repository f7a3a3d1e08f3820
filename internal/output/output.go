package output

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Global printer instance for convenience functions
var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter sets the global printer instance.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal configures the global printer with the given options.
func ConfigureGlobal(options ...Option) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = NewPrinter(options...)
}

// ForStyle returns the options for a configured output style: "plain" never
// colors, "color" always does, and "auto" colors only a color terminal.
func ForStyle(style string) []Option {
	switch style {
	case "plain":
		return []Option{PlainText()}
	case "color":
		return []Option{WithMode(ModeStyled), WithStyles(NewTheme())}
	default:
		if SupportsColor() {
			return []Option{WithStyles(NewTheme())}
		}
		return []Option{PlainText()}
	}
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Info outputs informational text using the global printer.
func Info(text string) {
	GetGlobalPrinter().Info(text)
}

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

// SupportsColor reports whether stdout can show colors. NO_COLOR and a
// non-terminal stdout both disable color.
func SupportsColor() bool {
	if termenv.EnvNoColor() || !IsTerminal() {
		return false
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}
