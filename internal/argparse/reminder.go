package argparse

import (
	"time"

	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

type reminderDraft struct {
	note string
	at   time.Time
}

type reminderStep = result.Result[reminderDraft, error]

// ParseReminder builds a reminder from "n/NOTE t/TIME". Both flags are required.
func ParseReminder(args *parser.Args, tp tasktypes.TimeParser) result.Result[model.Reminder, error] {
	r := result.Success[reminderDraft, error](reminderDraft{}).
		Then(checkReminderFlags(args)).
		Then(func(d reminderDraft) reminderStep {
			note, present := args.Last(FlagName)
			if !present || note == "" {
				return result.Failure[reminderDraft, error](taskerr.Invalid("a reminder needs a note: n/NOTE"))
			}
			d.note = note
			return result.Success[reminderDraft, error](d)
		}).
		Then(func(d reminderDraft) reminderStep {
			raw, present := args.Last(FlagTime)
			if !present {
				return result.Failure[reminderDraft, error](taskerr.Invalid("a reminder needs a time: t/TIME"))
			}
			return reminderTime(d, tp, raw)
		})
	return result.Bind(r, buildReminder)
}

// ParseEditReminder builds the replacement for original from "[n/NOTE] [t/TIME]".
// Fields not mentioned keep the original value; neither field can be cleared.
func ParseEditReminder(original model.Reminder, args *parser.Args, tp tasktypes.TimeParser) result.Result[model.Reminder, error] {
	r := result.Success[reminderDraft, error](reminderDraft{note: original.Note, at: original.At}).
		Then(checkReminderFlags(args)).
		Then(func(d reminderDraft) reminderStep {
			if !args.Has(FlagName) && !args.Has(FlagTime) {
				return result.Failure[reminderDraft, error](taskerr.Invalid("nothing to change: use n/ or t/"))
			}
			return result.Success[reminderDraft, error](d)
		}).
		Then(func(d reminderDraft) reminderStep {
			note, present := args.Last(FlagName)
			if !present {
				return result.Success[reminderDraft, error](d)
			}
			if note == "" || note == ClearValue {
				return result.Failure[reminderDraft, error](taskerr.Invalid("a reminder note cannot be cleared"))
			}
			d.note = note
			return result.Success[reminderDraft, error](d)
		}).
		Then(func(d reminderDraft) reminderStep {
			raw, present := args.Last(FlagTime)
			if !present {
				return result.Success[reminderDraft, error](d)
			}
			if raw == ClearValue {
				return result.Failure[reminderDraft, error](taskerr.Invalid("a reminder time cannot be cleared"))
			}
			return reminderTime(d, tp, raw)
		})
	return result.Bind(r, buildReminder)
}

func checkReminderFlags(args *parser.Args) func(reminderDraft) reminderStep {
	return func(d reminderDraft) reminderStep {
		if err := CheckFlags(args, ReminderFlags); err != nil {
			return result.Failure[reminderDraft, error](err)
		}
		return result.Success[reminderDraft, error](d)
	}
}

func reminderTime(d reminderDraft, tp tasktypes.TimeParser, raw string) reminderStep {
	return result.Bind(parseTime(tp, raw), func(t time.Time) reminderStep {
		d.at = t
		return result.Success[reminderDraft, error](d)
	})
}

func buildReminder(d reminderDraft) result.Result[model.Reminder, error] {
	r, err := model.NewReminder(d.note, d.at)
	if err != nil {
		return result.Failure[model.Reminder, error](err)
	}
	return result.Success[model.Reminder, error](r)
}
