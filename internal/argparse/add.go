package argparse

import (
	"time"

	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// ParseAdd builds a new task from "NAME [st/START] [et/END] [#/TAG]...".
func ParseAdd(args *parser.Args, tp tasktypes.TimeParser) result.Result[*model.Task, error] {
	r := ok(draft{}).
		Then(knownFlags(args, AddFlags)).
		Then(func(d draft) step {
			if args.Keywords == "" {
				return fail(taskerr.Invalid("a task name is required"))
			}
			d.name = args.Keywords
			return ok(d)
		}).
		Then(optionalTime(args, FlagStart, tp, func(d *draft, v *time.Time) { d.start = v })).
		Then(optionalTime(args, FlagEnd, tp, func(d *draft, v *time.Time) { d.end = v })).
		Then(func(d draft) step {
			tags, err := tagsFrom(args.Values(FlagTag))
			if err != nil {
				return fail(err)
			}
			d.tags = tags
			return ok(d)
		}).
		Then(consistent)
	return result.Bind(r, build)
}

// optionalTime parses flag when present and leaves the field nil otherwise.
func optionalTime(args *parser.Args, flag string, tp tasktypes.TimeParser, set func(*draft, *time.Time)) func(draft) step {
	return func(d draft) step {
		raw, present := args.Last(flag)
		if !present {
			return ok(d)
		}
		return result.Bind(parseTime(tp, raw), func(t time.Time) step {
			set(&d, &t)
			return ok(d)
		})
	}
}
