// Package shell provides the interactive shell and batch runner for taskshell.
// It wires the services together, feeds input lines to the command dispatcher and
// prints each command's feedback.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"taskshell/internal/commands"
	"taskshell/internal/config"
	"taskshell/internal/logger"
	"taskshell/internal/output"
	"taskshell/internal/services"
	"taskshell/internal/timeparse"
)

const (
	readyPrompt    = "taskshell> "
	awaitingPrompt = "taskshell?> "
)

// TestClock is the fixed "now" used in test mode so relative dates and the
// default free-time window are deterministic.
var TestClock = time.Date(2016, 1, 1, 9, 0, 0, 0, time.UTC)

// InitializeServices sets up all required services for a taskshell session.
// In test mode the clock is fixed and times are read in UTC.
func InitializeServices(cfg *config.Config, testMode bool) error {
	path := cfg.Data.Path
	if path == "" {
		path = config.DefaultDataPath(filepath.Join(os.TempDir(), "taskshell"), cfg.Data.Backend)
		logger.Warn("No data path configured, using a temporary schedule file", "path", path)
	}

	var timeOptions []timeparse.Option
	if testMode {
		timeOptions = append(timeOptions,
			timeparse.WithClock(func() time.Time { return TestClock }),
			timeparse.WithLocation(time.UTC),
		)
	}

	registry := services.GetGlobalRegistry()

	// ConfigurationService first - other services may depend on it
	if err := registry.RegisterService(services.NewConfigurationService(cfg)); err != nil {
		return err
	}
	if err := registry.RegisterService(services.NewTimeService(timeOptions...)); err != nil {
		return err
	}
	if err := registry.RegisterService(services.NewStorageService(cfg.Data.Backend, path)); err != nil {
		return err
	}
	if err := registry.RegisterService(services.NewScheduleService(cfg.History.MaxStates)); err != nil {
		return err
	}

	if err := registry.InitializeAll(); err != nil {
		return err
	}

	logger.Debug("Services initialized")
	return nil
}

// LoadStatus describes how the session's schedule was loaded.
type LoadStatus struct {
	Message string
	// Loaded is set when tasks were read from the schedule file.
	Loaded bool
	// Temporary is set when no data path was configured.
	Temporary bool
	// Err is set when the file exists but could not be read.
	Err error
}

// LoadSchedule loads the schedule file, if there is one, and describes what
// happened. A file that cannot be read leaves the schedule empty.
func LoadSchedule() LoadStatus {
	store, err := services.GetStorageService()
	if err != nil {
		return LoadStatus{Message: fmt.Sprintf("Could not start storage: %v.", err), Err: err}
	}
	sched, err := services.GetScheduleService()
	if err != nil {
		return LoadStatus{Message: fmt.Sprintf("Could not start the schedule: %v.", err), Err: err}
	}

	var status LoadStatus
	if cfgService, err := services.GetConfigurationService(); err == nil && cfgService.Config().Data.Path == "" {
		status.Temporary = true
	}

	if !store.Exists() {
		status.Message = fmt.Sprintf("Starting with an empty schedule (%s).", store.Path())
		return status
	}
	tasks, err := store.Load()
	if err != nil {
		logger.Error("Failed to load schedule", "path", store.Path(), "error", err)
		status.Message = fmt.Sprintf("Could not load %s: %v. Starting with an empty schedule.", store.Path(), err)
		status.Err = err
		return status
	}
	sched.Replace(tasks)
	status.Message = fmt.Sprintf("Loaded %d task(s) from %s.", len(tasks), store.Path())
	status.Loaded = true
	return status
}

// CloseServices releases every registered service that holds a resource.
func CloseServices() {
	for name, svc := range services.GetGlobalRegistry().GetAllServices() {
		closer, ok := svc.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			logger.Warn("Failed to close service", "service", name, "error", err)
		}
	}
}

// Shell reads input lines and prints command feedback.
type Shell struct {
	registry   *commands.Registry
	dispatcher *commands.Dispatcher
	printer    *output.Printer
}

// New creates a shell dispatching to the commands of registry.
func New(registry *commands.Registry, maxDistance int, printer *output.Printer) *Shell {
	if printer == nil {
		printer = output.GetGlobalPrinter()
	}
	return &Shell{
		registry:   registry,
		dispatcher: commands.NewDispatcher(registry, maxDistance),
		printer:    printer,
	}
}

// Dispatcher returns the dispatcher used by the shell.
func (s *Shell) Dispatcher() *commands.Dispatcher {
	return s.dispatcher
}

// Prompt returns the input prompt, which changes while a question is open.
func (s *Shell) Prompt() string {
	if s.dispatcher.AwaitingResponse() {
		return awaitingPrompt
	}
	return readyPrompt
}

// Announce prints how the schedule was loaded. A failed load and a temporary
// schedule file are warnings.
func (s *Shell) Announce(status LoadStatus) {
	if status.Temporary {
		s.printer.Warning("No data path configured: the schedule is kept in a temporary file.")
	}
	switch {
	case status.Err != nil:
		s.printer.Warning(status.Message)
	case status.Loaded:
		s.printer.Success(status.Message)
	default:
		s.printer.Info(status.Message)
	}
}

// ProcessInput executes one line, prints its feedback and reports whether the
// session should end.
func (s *Shell) ProcessInput(line string) bool {
	result := s.dispatcher.Execute(line)
	s.printer.Feedback(result)
	return result.Exit
}

// RunBatch executes one command per line of r until EOF or an exit command.
// Blank lines and lines starting with '#' are skipped.
func (s *Shell) RunBatch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		logger.Debug("Batch line", "line", lineNo, "input", line)
		if s.ProcessInput(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}
	return nil
}

// Run starts the interactive loop. Ctrl+D behaves like the exit command;
// Ctrl+C clears the current line, or cancels an open question.
func (s *Shell) Run(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.Prompt(),
		HistoryFile:     historyFile,
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("start line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s.printer.SetWriter(rl.Stdout())

	for {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if s.dispatcher.AwaitingResponse() {
				s.ProcessInput(commands.CancelWord)
			}
			continue
		case errors.Is(err, io.EOF):
			if s.exitNow() {
				return nil
			}
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if s.ProcessInput(line) {
			return nil
		}
	}
}

// exitNow runs the exit command directly, bypassing any open question.
func (s *Shell) exitNow() bool {
	exit, ok := s.registry.Get("exit")
	if !ok {
		return true
	}
	result := exit.Execute("exit")
	s.printer.Feedback(result)
	return result.Exit
}

// completer offers trigger words at the start of the line.
func (s *Shell) completer() readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, word := range s.registry.Triggers() {
		if len(word) > 1 {
			items = append(items, readline.PcItem(word))
		}
	}
	return readline.NewPrefixCompleter(items...)
}
