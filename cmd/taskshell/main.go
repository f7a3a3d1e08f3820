// Package main provides the taskshell CLI application entry point.
// taskshell is a command interpreter for a personal task and reminder tracker.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"taskshell/internal/commands"
	_ "taskshell/internal/commands/builtin" // Import for side effects (init functions)
	"taskshell/internal/config"
	"taskshell/internal/logger"
	"taskshell/internal/output"
	"taskshell/internal/shell"
	"taskshell/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	dataPath   string
	backend    string
	jsonOutput bool
	testMode   bool

	detailedVersion bool

	// stdout receives command feedback; tests replace it.
	stdout io.Writer = os.Stdout
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskshell",
	Short: "taskshell - a command interpreter for tasks and reminders",
	Long: `taskshell keeps a personal schedule of todos, deadlines and events.
Type commands such as "add CS2103T Tutorial st/2016-01-01 5.00PM et/2016-01-01 7.00PM #/school".`,
	SilenceUsage: true,
	RunE:         runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	RunE:  runShell,
}

// batchCmd represents the batch command for non-interactive execution
var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Execute commands from a file, one per line",
	Long: `Execute commands from a file without entering interactive mode.
Use - to read from standard input. Blank lines and lines starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailedVersion {
			_, _ = fmt.Fprintln(stdout, version.GetDetailedVersion())
			return
		}
		_, _ = fmt.Fprintln(stdout, version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.StringVar(&configFile, "config", "", "Config file [default: $HOME/.taskshell/config.yaml]")
	flags.StringVar(&dataPath, "data", "", "Schedule file to load and save")
	flags.StringVar(&backend, "backend", "", "Storage backend (yaml|sqlite)")
	flags.BoolVar(&jsonOutput, "json", false, "Print feedback as JSON lines")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	// Bind flags to viper
	bindings := map[string]string{
		"log-level":           "log-level",
		"log-file":            "log-file",
		"test-mode":           "test-mode",
		config.KeyDataPath:    "data",
		config.KeyDataBackend: "backend",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&detailedVersion, "detailed", false, "Show build details")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initLogger)
}

func initLogger() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newSession loads the configuration, starts the services and loads the
// schedule file. The returned status describes the loaded schedule.
func newSession() (*shell.Shell, shell.LoadStatus, error) {
	cfg, err := config.Load(viper.GetViper(), config.Options{ConfigFile: configFile, TestMode: testMode})
	if err != nil {
		return nil, shell.LoadStatus{}, err
	}

	if err := shell.InitializeServices(cfg, testMode); err != nil {
		return nil, shell.LoadStatus{}, fmt.Errorf("failed to initialize services: %w", err)
	}
	logger.Info("Services initialized successfully")

	options := output.ForStyle(cfg.Output.Style)
	if testMode {
		options = []output.Option{output.TestMode()}
	}
	if jsonOutput {
		options = append(options, output.JSON())
	}
	options = append(options, output.WithWriter(stdout))
	printer := output.NewPrinter(options...)
	output.SetGlobalPrinter(printer)

	sh := shell.New(commands.GlobalRegistry, cfg.Suggest.MaxDistance, printer)
	return sh, shell.LoadSchedule(), nil
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting taskshell", "version", version.GetVersion())

	sh, status, err := newSession()
	if err != nil {
		return err
	}
	defer shell.CloseServices()

	output.Info(fmt.Sprintf("taskshell v%s", version.GetVersion()))
	sh.Announce(status)
	output.Println(`Type "help" for commands or "exit" to quit.`)

	return sh.Run(historyFile())
}

func runBatch(_ *cobra.Command, args []string) error {
	source := args[0]
	logger.Info("Starting taskshell batch mode", "version", version.GetVersion(), "source", source)

	var in io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer func() { _ = file.Close() }()
		in = file
	}

	sh, status, err := newSession()
	if err != nil {
		return err
	}
	defer shell.CloseServices()
	if status.Err != nil {
		logger.Warn(status.Message)
	} else {
		logger.Info(status.Message)
	}

	if err := sh.RunBatch(in); err != nil {
		return err
	}
	logger.Info("Batch executed successfully", "source", source)
	return nil
}

// historyFile keeps readline history next to the user's config; test mode
// keeps no history.
func historyFile() string {
	if testMode {
		return ""
	}
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("Cannot create taskshell directory, history disabled", "dir", dir, "error", err)
		return ""
	}
	return filepath.Join(dir, "history")
}
