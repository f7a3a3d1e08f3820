package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskshell/internal/commands"
	"taskshell/internal/commands/builtin"
	"taskshell/internal/config"
	"taskshell/internal/output"
	"taskshell/internal/services"
	"taskshell/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Data:    config.DataConfig{Backend: storage.BackendYAML, Path: filepath.Join(t.TempDir(), "schedule.yaml")},
		History: config.HistoryConfig{MaxStates: 100},
		Suggest: config.SuggestConfig{MaxDistance: 2},
		Exit:    config.ExitConfig{Autosave: true},
		Output:  config.OutputConfig{Style: config.StylePlain},
	}
}

// setupShell initializes services into a fresh registry and returns a shell
// printing into the returned buffer.
func setupShell(t *testing.T, cfg *config.Config) (*Shell, *output.CaptureBuffer) {
	t.Helper()

	original := services.GetGlobalRegistry()
	services.SetGlobalRegistry(services.NewRegistry())
	t.Cleanup(func() {
		CloseServices()
		services.SetGlobalRegistry(original)
	})

	require.NoError(t, InitializeServices(cfg, true))

	registry := commands.NewRegistry()
	require.NoError(t, builtin.RegisterAll(registry))

	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.TestMode())
	return New(registry, cfg.Suggest.MaxDistance, printer), buffer
}

func TestInitializeServices_RegistersEverything(t *testing.T) {
	setupShell(t, testConfig(t))

	_, err := services.GetConfigurationService()
	assert.NoError(t, err)
	_, err = services.GetTimeService()
	assert.NoError(t, err)
	_, err = services.GetStorageService()
	assert.NoError(t, err)
	sched, err := services.GetScheduleService()
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Schedule().Depth())
}

func TestInitializeServices_DuplicateRegistration(t *testing.T) {
	cfg := testConfig(t)
	setupShell(t, cfg)

	err := InitializeServices(cfg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestInitializeServices_InvalidConfiguration(t *testing.T) {
	original := services.GetGlobalRegistry()
	services.SetGlobalRegistry(services.NewRegistry())
	defer services.SetGlobalRegistry(original)

	cfg := testConfig(t)
	cfg.Data.Backend = "csv"

	err := InitializeServices(cfg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.KeyDataBackend)
}

func TestLoadSchedule_NoFile(t *testing.T) {
	setupShell(t, testConfig(t))

	status := LoadSchedule()
	assert.True(t, strings.HasPrefix(status.Message, "Starting with an empty schedule"), status.Message)
	assert.False(t, status.Loaded)
	assert.False(t, status.Temporary)
	assert.NoError(t, status.Err)
}

func TestLoadSchedule_CorruptFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Data.Path, []byte("tasks: [oops"), 0o600))
	setupShell(t, cfg)

	status := LoadSchedule()
	assert.True(t, strings.HasPrefix(status.Message, "Could not load"), status.Message)
	assert.Error(t, status.Err)

	sched, err := services.GetScheduleService()
	require.NoError(t, err)
	assert.Empty(t, sched.Schedule().Tasks())
}

func TestAnnounce(t *testing.T) {
	tests := []struct {
		name     string
		status   LoadStatus
		expected []string
	}{
		{
			name:     "fresh schedule",
			status:   LoadStatus{Message: "Starting with an empty schedule (s.yaml)."},
			expected: []string{"ℹ Starting with an empty schedule (s.yaml)."},
		},
		{
			name:     "loaded",
			status:   LoadStatus{Message: "Loaded 2 task(s) from s.yaml.", Loaded: true},
			expected: []string{"✓ Loaded 2 task(s) from s.yaml."},
		},
		{
			name:     "unreadable file",
			status:   LoadStatus{Message: "Could not load s.yaml: bad. Starting with an empty schedule.", Err: errors.New("bad")},
			expected: []string{"⚠ Could not load s.yaml: bad. Starting with an empty schedule."},
		},
		{
			name:   "temporary file",
			status: LoadStatus{Message: "Starting with an empty schedule (/tmp/s.yaml).", Temporary: true},
			expected: []string{
				"⚠ No data path configured: the schedule is kept in a temporary file.",
				"ℹ Starting with an empty schedule (/tmp/s.yaml).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := setupShell(t, testConfig(t))
			sh.Announce(tt.status)
			assert.Equal(t, tt.expected, out.Lines())
		})
	}
}

func TestLoadSchedule_TemporaryWithoutDataPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Path = ""
	setupShell(t, cfg)

	status := LoadSchedule()
	assert.True(t, status.Temporary)
}

type closingService struct {
	closed int
}

func (c *closingService) Name() string      { return "closing" }
func (c *closingService) Initialize() error { return nil }
func (c *closingService) Close() error {
	c.closed++
	return nil
}

func TestCloseServices(t *testing.T) {
	setupShell(t, testConfig(t))
	svc := &closingService{}
	require.NoError(t, services.GetGlobalRegistry().RegisterService(svc))

	CloseServices()
	assert.Equal(t, 1, svc.closed)
}

func TestProcessInput_PrintsFeedback(t *testing.T) {
	sh, out := setupShell(t, testConfig(t))

	exit := sh.ProcessInput("add CS2103T Tutorial st/2016-01-01 5.00PM et/2016-01-01 7.00PM #/school")

	assert.False(t, exit)
	assert.Equal(t, "Added: [ ] CS2103T Tutorial (2016-01-01 5.00PM - 2016-01-01 7.00PM) #school\n", out.String())
}

func TestProcessInput_PromptFollowsDispatcherState(t *testing.T) {
	sh, out := setupShell(t, testConfig(t))

	sh.ProcessInput("add hello world")
	sh.ProcessInput("add hello there")
	assert.Equal(t, readyPrompt, sh.Prompt())

	out.Reset()
	sh.ProcessInput("delete hello")
	assert.Equal(t, awaitingPrompt, sh.Prompt())
	assert.Contains(t, out.String(), "Which one? (1-2")

	sh.ProcessInput("delete")
	assert.Equal(t, awaitingPrompt, sh.Prompt(), "a non-numeric reply keeps the question open")

	out.Reset()
	sh.ProcessInput("2")
	assert.Equal(t, readyPrompt, sh.Prompt())
	assert.Equal(t, "Deleted: [ ] hello there\n", out.String())
}

func TestRunBatch(t *testing.T) {
	cfg := testConfig(t)
	sh, out := setupShell(t, cfg)

	script := strings.Join([]string{
		"# weekly plan",
		"",
		"add CS2103T Tutorial st/2016-01-01 5.00PM et/2016-01-01 7.00PM #/school",
		"add dinner st/2016-01-01 9.00PM et/2016-01-01 11.00PM",
		"free st/2016-01-01 3.00PM et/2016-01-01 11.59PM",
		"exit",
		"add never runs",
	}, "\n")

	require.NoError(t, sh.RunBatch(strings.NewReader(script)))

	text := out.String()
	assert.Contains(t, text, "2016-01-01 3.00PM - 2016-01-01 5.00PM")
	assert.Contains(t, text, "2016-01-01 7.00PM - 2016-01-01 9.00PM")
	assert.Contains(t, text, "2016-01-01 11.00PM - 2016-01-01 11.59PM")
	assert.Contains(t, text, "Goodbye!")
	assert.NotContains(t, text, "never runs")

	_, err := os.Stat(cfg.Data.Path)
	assert.NoError(t, err, "exit saves the schedule when autosave is on")
}

func TestRunBatch_SavedScheduleIsLoadedNextSession(t *testing.T) {
	cfg := testConfig(t)

	first, _ := setupShell(t, cfg)
	require.NoError(t, first.RunBatch(strings.NewReader("add essay et/2016-01-05 11.59PM #/school\nexit\n")))

	setupShell(t, cfg)
	status := LoadSchedule()
	assert.Equal(t, "Loaded 1 task(s) from "+cfg.Data.Path+".", status.Message)
	assert.True(t, status.Loaded)

	sched, err := services.GetScheduleService()
	require.NoError(t, err)
	require.Len(t, sched.Schedule().Tasks(), 1)
	assert.Equal(t, "essay", sched.Schedule().Tasks()[0].Name)
	assert.False(t, sched.Schedule().PopState(), "the loaded state is the undo floor")
}

func TestRunBatch_SuggestionFlow(t *testing.T) {
	sh, out := setupShell(t, testConfig(t))

	require.NoError(t, sh.RunBatch(strings.NewReader("ad buy milk\nyes\nlist\n")))

	lines := out.Lines()
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], `Did you mean "add"?`)
	assert.Equal(t, "Added: [ ] buy milk", lines[1])
	assert.Contains(t, out.String(), "1. [ ] buy milk")
}

func TestExitNowBypassesOpenQuestion(t *testing.T) {
	cfg := testConfig(t)
	cfg.Exit.Autosave = false
	sh, out := setupShell(t, cfg)

	sh.ProcessInput("add hello world")
	sh.ProcessInput("add hello there")
	sh.ProcessInput("delete hello")
	require.True(t, sh.Dispatcher().AwaitingResponse())

	out.Reset()
	assert.True(t, sh.exitNow())
	assert.Equal(t, "Goodbye!\n", out.String())
}
