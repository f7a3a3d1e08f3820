package builtin

import (
	"fmt"
	"strings"

	"taskshell/internal/commands"
	"taskshell/internal/model"
	"taskshell/internal/schedule"
	"taskshell/internal/services"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

func scheduleService() (*services.ScheduleService, error) {
	svc, err := services.GetScheduleService()
	if err != nil {
		return nil, fmt.Errorf("schedule service not available: %w", err)
	}
	return svc, nil
}

func currentSchedule() (*schedule.Schedule, error) {
	svc, err := scheduleService()
	if err != nil {
		return nil, err
	}
	return svc.Schedule(), nil
}

func timeService() (*services.TimeService, error) {
	svc, err := services.GetTimeService()
	if err != nil {
		return nil, fmt.Errorf("time service not available: %w", err)
	}
	return svc, nil
}

func timeParser() (tasktypes.TimeParser, error) {
	svc, err := timeService()
	if err != nil {
		return nil, err
	}
	return svc.Parser(), nil
}

func storageService() (*services.StorageService, error) {
	svc, err := services.GetStorageService()
	if err != nil {
		return nil, fmt.Errorf("storage service not available: %w", err)
	}
	return svc, nil
}

// pickTask finds the tasks matching keywords and runs act on the one the user
// means, asking when more than one matches.
func pickTask(sched *schedule.Schedule, keywords string, act func(*model.Task) *tasktypes.Result) *tasktypes.Result {
	if strings.TrimSpace(keywords) == "" {
		return commands.Failure(taskerr.Invalid("tell me which task: the keywords cannot be empty"))
	}
	hits := sched.Search(keywords)
	switch len(hits) {
	case 0:
		return commands.Failure(taskerr.NoMatch(keywords))
	case 1:
		return act(hits[0])
	}
	header := fmt.Sprintf("%d tasks match %q:", len(hits), keywords)
	return commands.Ask(commands.NewSelection(header, hits, (*model.Task).String, act))
}

// pickReminder is pickTask for reminders, matched by note.
func pickReminder(sched *schedule.Schedule, keywords string, act func(schedule.ReminderHit) *tasktypes.Result) *tasktypes.Result {
	if strings.TrimSpace(keywords) == "" {
		return commands.Failure(taskerr.Invalid("tell me which reminder: the keywords cannot be empty"))
	}
	hits := sched.SearchReminders(keywords)
	switch len(hits) {
	case 0:
		return commands.Failure(taskerr.NoMatch(keywords))
	case 1:
		return act(hits[0])
	}
	header := fmt.Sprintf("%d reminders match %q:", len(hits), keywords)
	return commands.Ask(commands.NewSelection(header, hits, renderHit, act))
}

func renderHit(hit schedule.ReminderHit) string {
	return fmt.Sprintf("%s (on %s)", hit.Reminder(), hit.Task.Name)
}

// replaceTask swaps old for updated and reports the change with verb.
func replaceTask(sched *schedule.Schedule, old, updated *model.Task, verb string) *tasktypes.Result {
	if err := sched.UpdateTask(old, updated); err != nil {
		return commands.Failure(err)
	}
	return commands.Feedback("%s: %s", verb, updated)
}

// listing renders tasks as a numbered list under header.
func listing(header string, tasks []*model.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
		for _, r := range t.Reminders {
			fmt.Fprintf(&b, "\n     reminder: %s", r)
		}
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
