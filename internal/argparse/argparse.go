// Package argparse builds tasks, reminders and time windows from parsed command
// arguments. Each parser is a chain of result steps: the first failing step
// stops the chain and later steps never run.
package argparse

import (
	"slices"
	"strings"
	"time"

	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// Flag names shared by the task commands.
const (
	FlagName  = "n"
	FlagStart = "st"
	FlagEnd   = "et"
	FlagTag   = "#"
	FlagTime  = "t"
)

// ClearValue is the flag value that explicitly empties a field in edit commands.
const ClearValue = "-"

// Flags each parser accepts besides the keywords.
var (
	AddFlags      = []string{FlagStart, FlagEnd, FlagTag}
	ReminderFlags = []string{FlagName, FlagTime}
	WindowFlags   = []string{FlagStart, FlagEnd}
)

// CheckFlags fails with an invalid argument naming the first flag in args that
// is not one of allowed.
func CheckFlags(args *parser.Args, allowed []string) error {
	for _, name := range args.FlagNames() {
		if slices.Contains(allowed, name) {
			continue
		}
		expected := make([]string, len(allowed))
		for i, flag := range allowed {
			expected[i] = flag + "/"
		}
		return taskerr.Invalid("unknown flag %q (expected %s)", name+"/", strings.Join(expected, ", "))
	}
	return nil
}

// knownFlags is CheckFlags as the first step of a task chain.
func knownFlags(args *parser.Args, allowed []string) func(draft) step {
	return func(d draft) step {
		if err := CheckFlags(args, allowed); err != nil {
			return fail(err)
		}
		return ok(d)
	}
}

// draft accumulates task fields while a parser chain runs.
type draft struct {
	name  string
	start *time.Time
	end   *time.Time
	done  bool
	tags  []string
	rems  []model.Reminder
}

type step = result.Result[draft, error]

func ok(d draft) step { return result.Success[draft, error](d) }

func fail(err error) step { return result.Failure[draft, error](err) }

// parseTime asks the collaborator whether raw is understood before parsing it,
// and reports a rejection with the raw text verbatim.
func parseTime(tp tasktypes.TimeParser, raw string) result.Result[time.Time, error] {
	if !tp.CanParse(raw) {
		return result.Failure[time.Time, error](taskerr.BadDateTime(raw))
	}
	t, err := tp.Parse(raw)
	if err != nil {
		return result.Failure[time.Time, error](taskerr.BadDateTime(raw))
	}
	return result.Success[time.Time, error](t)
}

// tagsFrom validates tag values: a blank tag or the clear value is an invalid
// argument. Edit handles a lone clear value before calling it.
func tagsFrom(values []string) ([]string, error) {
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, taskerr.Invalid("tags cannot be blank")
		}
		if strings.TrimSpace(v) == ClearValue {
			return nil, taskerr.Invalid("%q is not a tag: use #/%s on its own in edit to remove all tags", ClearValue, ClearValue)
		}
		tags = append(tags, strings.TrimSpace(v))
	}
	return model.DistinctTags(tags), nil
}

// consistent checks the start/end rules on the finished draft.
func consistent(d draft) step {
	if err := model.ValidateTimes(d.start, d.end); err != nil {
		return fail(err)
	}
	return ok(d)
}

func build(d draft) result.Result[*model.Task, error] {
	t, err := model.NewTask(d.name, d.start, d.end, d.tags)
	if err != nil {
		return result.Failure[*model.Task, error](err)
	}
	t = t.WithDone(d.done).WithReminders(d.rems)
	return result.Success[*model.Task, error](t)
}
