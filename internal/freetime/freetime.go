// Package freetime computes the free slots of a time window given the events
// that occupy it. All intervals are closed: [From, To].
package freetime

import (
	"fmt"
	"sort"
	"time"

	"taskshell/internal/model"
)

// Interval is a closed time range.
type Interval struct {
	From time.Time
	To   time.Time
}

// IsTrivial reports a zero-length interval.
func (iv Interval) IsTrivial() bool {
	return iv.From.Equal(iv.To)
}

// Intersects reports whether iv and other share at least one instant.
func (iv Interval) Intersects(other Interval) bool {
	endsBefore := iv.To.Before(other.From)
	startsAfter := iv.From.After(other.To)
	return !endsBefore && !startsAfter
}

// Duration returns To - From.
func (iv Interval) Duration() time.Duration {
	return iv.To.Sub(iv.From)
}

// String renders the interval with the display layout.
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", model.FormatTime(iv.From), model.FormatTime(iv.To))
}

// Busy collects the intervals of every event in tasks that intersects window,
// clipped to the window bounds.
func Busy(window Interval, tasks []*model.Task) []Interval {
	var busy []Interval
	for _, t := range tasks {
		if !t.IsEvent() {
			continue
		}
		iv := Interval{From: *t.Start, To: *t.End}
		if !iv.Intersects(window) {
			continue
		}
		busy = append(busy, Clip(iv, window))
	}
	return busy
}

// Clip restricts iv to bounds.
func Clip(iv, bounds Interval) Interval {
	from, to := iv.From, iv.To
	if bounds.From.After(from) {
		from = bounds.From
	}
	if bounds.To.Before(to) {
		to = bounds.To
	}
	return Interval{From: from, To: to}
}

// Merge sorts intervals by start and folds overlapping or touching ones
// together. The result is sorted and non-overlapping.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From.Before(sorted[j].From)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.From.After(last.To) {
			if iv.To.After(last.To) {
				last.To = iv.To
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Subtract returns window minus busy, where busy is sorted, merged and inside
// window. Zero-length gaps are dropped.
func Subtract(window Interval, busy []Interval) []Interval {
	var free []Interval
	cursor := window.From
	for _, iv := range busy {
		gap := Interval{From: cursor, To: iv.From}
		if gap.From.Before(gap.To) {
			free = append(free, gap)
		}
		if iv.To.After(cursor) {
			cursor = iv.To
		}
	}
	if tail := (Interval{From: cursor, To: window.To}); tail.From.Before(tail.To) {
		free = append(free, tail)
	}
	return free
}

// Compute returns the free slots of window given tasks.
func Compute(window Interval, tasks []*model.Task) []Interval {
	return Subtract(window, Merge(Busy(window, tasks)))
}
