package argparse

import (
	"time"

	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// EditFlags lists the flags ParseEdit understands.
var EditFlags = []string{FlagName, FlagStart, FlagEnd, FlagTag}

// HasEdits reports whether args mention at least one editable field.
func HasEdits(args *parser.Args) bool {
	for _, flag := range EditFlags {
		if args.Has(flag) {
			return true
		}
	}
	return false
}

// ParseEdit builds the replacement for original from "[n/NAME] [st/START|-]
// [et/END|-] [#/TAG|-]...". A field that is not mentioned keeps the original
// value; the clear value "-" empties it. The done flag and reminders carry over.
func ParseEdit(original *model.Task, args *parser.Args, tp tasktypes.TimeParser) result.Result[*model.Task, error] {
	start := ok(draft{
		name:  original.Name,
		start: original.Start,
		end:   original.End,
		done:  original.Done,
		tags:  original.Tags,
		rems:  original.Reminders,
	})

	r := start.
		Then(knownFlags(args, EditFlags)).
		Then(func(d draft) step {
			if !HasEdits(args) {
				return fail(taskerr.Invalid("nothing to change: use n/, st/, et/ or #/"))
			}
			return ok(d)
		}).
		Then(func(d draft) step {
			name, present := args.Last(FlagName)
			if !present {
				return ok(d)
			}
			if name == "" || name == ClearValue {
				return fail(taskerr.Invalid("a task name cannot be cleared"))
			}
			d.name = name
			return ok(d)
		}).
		Then(editableTime(args, FlagStart, tp, func(d *draft, v *time.Time) { d.start = v })).
		Then(editableTime(args, FlagEnd, tp, func(d *draft, v *time.Time) { d.end = v })).
		Then(func(d draft) step {
			values := args.Values(FlagTag)
			switch {
			case len(values) == 0:
				return ok(d)
			case len(values) == 1 && values[0] == ClearValue:
				d.tags = nil
				return ok(d)
			}
			tags, err := tagsFrom(values)
			if err != nil {
				return fail(err)
			}
			d.tags = tags
			return ok(d)
		}).
		Then(consistent)
	return result.Bind(r, build)
}

// editableTime keeps the draft value when flag is absent and clears it on "-".
func editableTime(args *parser.Args, flag string, tp tasktypes.TimeParser, set func(*draft, *time.Time)) func(draft) step {
	return func(d draft) step {
		raw, present := args.Last(flag)
		switch {
		case !present:
			return ok(d)
		case raw == ClearValue:
			set(&d, nil)
			return ok(d)
		}
		return result.Bind(parseTime(tp, raw), func(t time.Time) step {
			set(&d, &t)
			return ok(d)
		})
	}
}
