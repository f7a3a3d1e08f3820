package argparse

import (
	"time"

	"taskshell/internal/freetime"
	"taskshell/internal/parser"
	"taskshell/internal/result"
	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// ParseWindow builds the free-time query window from "[st/FROM] [et/TO]".
// With no flags the window is the current day, 00:00 to 23:59. A lone st/ runs
// to 23:59 of its day; a lone et/ starts at 00:00 of its day.
func ParseWindow(args *parser.Args, tp tasktypes.TimeParser, now time.Time) result.Result[freetime.Interval, error] {
	type bounds struct {
		from, to *time.Time
	}
	type bstep = result.Result[bounds, error]

	bound := func(flag string, set func(*bounds, time.Time)) func(bounds) bstep {
		return func(b bounds) bstep {
			raw, present := args.Last(flag)
			if !present {
				return result.Success[bounds, error](b)
			}
			return result.Bind(parseTime(tp, raw), func(t time.Time) bstep {
				set(&b, t)
				return result.Success[bounds, error](b)
			})
		}
	}

	r := result.Success[bounds, error](bounds{}).
		Then(func(b bounds) bstep {
			if err := CheckFlags(args, WindowFlags); err != nil {
				return result.Failure[bounds, error](err)
			}
			return result.Success[bounds, error](b)
		}).
		Then(bound(FlagStart, func(b *bounds, t time.Time) { b.from = &t })).
		Then(bound(FlagEnd, func(b *bounds, t time.Time) { b.to = &t }))

	return result.Bind(r, func(b bounds) result.Result[freetime.Interval, error] {
		var from, to time.Time
		switch {
		case b.from == nil && b.to == nil:
			from, to = startOfDay(now), endOfDay(now)
		case b.to == nil:
			from, to = *b.from, endOfDay(*b.from)
		case b.from == nil:
			from, to = startOfDay(*b.to), *b.to
		default:
			from, to = *b.from, *b.to
		}
		if to.Before(from) {
			return result.Failure[freetime.Interval, error](taskerr.ErrEndBeforeStart)
		}
		if !from.Before(to) {
			return result.Failure[freetime.Interval, error](taskerr.Invalid("the time window is empty"))
		}
		return result.Success[freetime.Interval, error](freetime.Interval{From: from, To: to})
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}
