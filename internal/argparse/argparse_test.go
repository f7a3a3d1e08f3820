package argparse

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskshell/internal/model"
	"taskshell/internal/parser"
	"taskshell/internal/taskerr"
)

// spyParser understands "H:MM" on 2016-01-01 and counts calls.
type spyParser struct {
	canParseCalls int
	parseCalls    int
}

func (s *spyParser) CanParse(raw string) bool {
	s.canParseCalls++
	_, err := s.parse(raw)
	return err == nil
}

func (s *spyParser) Parse(raw string) (time.Time, error) {
	s.parseCalls++
	return s.parse(raw)
}

func (s *spyParser) parse(raw string) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(raw, "%d:%d", &h, &m); err != nil {
		return time.Time{}, err
	}
	return clock(h, m), nil
}

func clock(h, m int) time.Time {
	return time.Date(2016, 1, 1, h, m, 0, 0, time.UTC)
}

func TestParseAdd(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr error
		check     func(t *testing.T, task *model.Task)
	}{
		{
			name:  "todo with tags",
			input: "read book #/fun #/fun #/Fun",
			check: func(t *testing.T, task *model.Task) {
				assert.Equal(t, "read book", task.Name)
				assert.True(t, task.IsTodo())
				assert.Equal(t, []string{"fun", "Fun"}, task.Tags)
			},
		},
		{
			name:  "deadline",
			input: "essay et/23:59",
			check: func(t *testing.T, task *model.Task) {
				assert.True(t, task.IsDeadline())
				assert.Equal(t, clock(23, 59), *task.End)
			},
		},
		{
			name:  "event",
			input: "CS2103T Tutorial st/17:00 et/19:00 #/school",
			check: func(t *testing.T, task *model.Task) {
				assert.True(t, task.IsEvent())
				assert.Equal(t, clock(17, 0), *task.Start)
				assert.Equal(t, clock(19, 0), *task.End)
			},
		},
		{name: "missing name", input: "st/17:00 et/19:00", expectErr: taskerr.ErrInvalidArgument},
		{name: "bad start", input: "x st/soon et/19:00", expectErr: taskerr.ErrCannotParseDateTime},
		{name: "bad end", input: "x et/later", expectErr: taskerr.ErrCannotParseDateTime},
		{name: "blank tag", input: "x #/ #/ok", expectErr: taskerr.ErrInvalidArgument},
		{name: "start without end", input: "x st/17:00", expectErr: taskerr.ErrStartWithoutEnd},
		{name: "end before start", input: "x st/19:00 et/17:00", expectErr: taskerr.ErrEndBeforeStart},
		{name: "unknown flag", input: "read A/B testing paper", expectErr: taskerr.ErrInvalidArgument},
		{name: "flag of another command", input: "x n/other", expectErr: taskerr.ErrInvalidArgument},
		{name: "clear value as tag", input: "x #/-", expectErr: taskerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseAdd(parser.Parse(tt.input), &spyParser{})
			if tt.expectErr != nil {
				require.True(t, r.IsFailure())
				assert.True(t, errors.Is(r.Failure(), tt.expectErr), "got %v", r.Failure())
				return
			}
			require.True(t, r.IsSuccess(), "unexpected failure: %v", r)
			tt.check(t, r.Success())
		})
	}
}

func TestParseAdd_BadStartStopsLaterSteps(t *testing.T) {
	spy := &spyParser{}
	r := ParseAdd(parser.Parse("x st/soon et/19:00"), spy)

	require.True(t, r.IsFailure())
	assert.Equal(t, `cannot understand the date/time "soon"`, r.Failure().Error())
	assert.Equal(t, 1, spy.canParseCalls, "the end time must not be examined")
	assert.Zero(t, spy.parseCalls)
}

func TestParseAdd_MissingNameStopsBeforeTimes(t *testing.T) {
	spy := &spyParser{}
	r := ParseAdd(parser.Parse("st/17:00 et/19:00"), spy)

	require.True(t, r.IsFailure())
	assert.Zero(t, spy.canParseCalls)
}

func TestParseAdd_UnknownFlagNamedBeforeTimes(t *testing.T) {
	spy := &spyParser{}
	r := ParseAdd(parser.Parse("read A/B testing paper st/17:00 et/19:00"), spy)

	require.True(t, r.IsFailure())
	assert.Equal(t, `unknown flag "A/" (expected st/, et/, #/)`, r.Failure().Error())
	assert.Zero(t, spy.canParseCalls)
}

func TestCheckFlags(t *testing.T) {
	assert.NoError(t, CheckFlags(parser.Parse("x st/1 et/2 #/a"), AddFlags))
	assert.NoError(t, CheckFlags(parser.Parse("no flags at all"), nil))

	err := CheckFlags(parser.Parse("x st/1 zz/2"), WindowFlags)
	require.Error(t, err)
	assert.True(t, errors.Is(err, taskerr.ErrInvalidArgument))
	assert.Equal(t, `unknown flag "zz/" (expected st/, et/)`, err.Error())
}

func eventTask(t *testing.T) *model.Task {
	t.Helper()
	start, end := clock(17, 0), clock(19, 0)
	task, err := model.NewTask("tutorial", &start, &end, []string{"school"})
	require.NoError(t, err)
	return task.WithDone(true).AddReminder(model.Reminder{Note: "prepare", At: clock(16, 0)})
}

func TestParseEdit_NameOnlyKeepsTimes(t *testing.T) {
	original := eventTask(t)

	r := ParseEdit(original, parser.Parse("tut n/Tutorial 3"), &spyParser{})
	require.True(t, r.IsSuccess())

	edited := r.Success()
	assert.Equal(t, "Tutorial 3", edited.Name)
	assert.Equal(t, *original.Start, *edited.Start)
	assert.Equal(t, *original.End, *edited.End)
	assert.Equal(t, original.Tags, edited.Tags)
	assert.True(t, edited.Done)
	assert.Equal(t, original.Reminders, edited.Reminders)
	assert.Equal(t, "tutorial", original.Name, "original must be untouched")
}

func TestParseEdit_ClearValues(t *testing.T) {
	original := eventTask(t)

	r := ParseEdit(original, parser.Parse("st/-"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.Nil(t, r.Success().Start)
	assert.True(t, r.Success().IsDeadline())

	r = ParseEdit(original, parser.Parse("et/-"), &spyParser{})
	require.True(t, r.IsFailure())
	assert.True(t, errors.Is(r.Failure(), taskerr.ErrStartWithoutEnd))

	r = ParseEdit(original, parser.Parse("st/- et/-"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.True(t, r.Success().IsTodo())

	r = ParseEdit(original, parser.Parse("#/-"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.Empty(t, r.Success().Tags)
}

func TestParseEdit_Failures(t *testing.T) {
	original := eventTask(t)

	tests := []struct {
		name      string
		input     string
		expectErr error
	}{
		{"no flags", "tutorial", taskerr.ErrInvalidArgument},
		{"clear name", "n/-", taskerr.ErrInvalidArgument},
		{"bad time", "st/whenever", taskerr.ErrCannotParseDateTime},
		{"end before original start", "et/16:00", taskerr.ErrEndBeforeStart},
		{"blank tag", "#/a #/", taskerr.ErrInvalidArgument},
		{"unknown flag", "t/16:00", taskerr.ErrInvalidArgument},
		{"clear value among tags", "#/a #/-", taskerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseEdit(original, parser.Parse(tt.input), &spyParser{})
			require.True(t, r.IsFailure())
			assert.True(t, errors.Is(r.Failure(), tt.expectErr), "got %v", r.Failure())
		})
	}
}

func TestParseReminder(t *testing.T) {
	r := ParseReminder(parser.Parse("tutorial n/bring laptop t/16:30"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.Equal(t, model.Reminder{Note: "bring laptop", At: clock(16, 30)}, r.Success())

	for _, input := range []string{"tutorial t/16:30", "tutorial n/x", "tutorial n/ t/16:30", "tutorial n/x t/16:30 #/a"} {
		r := ParseReminder(parser.Parse(input), &spyParser{})
		require.True(t, r.IsFailure(), input)
		assert.True(t, errors.Is(r.Failure(), taskerr.ErrInvalidArgument), input)
	}

	r = ParseReminder(parser.Parse("n/x t/never"), &spyParser{})
	assert.True(t, errors.Is(r.Failure(), taskerr.ErrCannotParseDateTime))
}

func TestParseEditReminder(t *testing.T) {
	original := model.Reminder{Note: "prepare", At: clock(16, 0)}

	r := ParseEditReminder(original, parser.Parse("prep t/15:00"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.Equal(t, model.Reminder{Note: "prepare", At: clock(15, 0)}, r.Success())

	r = ParseEditReminder(original, parser.Parse("prep n/print slides"), &spyParser{})
	require.True(t, r.IsSuccess())
	assert.Equal(t, model.Reminder{Note: "print slides", At: clock(16, 0)}, r.Success())

	for _, input := range []string{"prep", "n/-", "t/-", "st/15:00"} {
		r := ParseEditReminder(original, parser.Parse(input), &spyParser{})
		assert.True(t, errors.Is(r.Failure(), taskerr.ErrInvalidArgument), input)
	}
}

func TestParseWindow(t *testing.T) {
	now := clock(10, 30)
	tp := &spyParser{}

	r := ParseWindow(parser.Parse(""), tp, now)
	require.True(t, r.IsSuccess())
	assert.Equal(t, clock(0, 0), r.Success().From)
	assert.Equal(t, clock(23, 59), r.Success().To)

	r = ParseWindow(parser.Parse("st/15:00 et/23:59"), tp, now)
	require.True(t, r.IsSuccess())
	assert.Equal(t, clock(15, 0), r.Success().From)
	assert.Equal(t, clock(23, 59), r.Success().To)

	r = ParseWindow(parser.Parse("st/15:00"), tp, now)
	require.True(t, r.IsSuccess())
	assert.Equal(t, clock(23, 59), r.Success().To)

	r = ParseWindow(parser.Parse("et/12:00"), tp, now)
	require.True(t, r.IsSuccess())
	assert.Equal(t, clock(0, 0), r.Success().From)

	r = ParseWindow(parser.Parse("st/15:00 et/14:00"), tp, now)
	assert.True(t, errors.Is(r.Failure(), taskerr.ErrEndBeforeStart))

	r = ParseWindow(parser.Parse("st/15:00 et/15:00"), tp, now)
	assert.True(t, errors.Is(r.Failure(), taskerr.ErrInvalidArgument))

	r = ParseWindow(parser.Parse("t/15:00"), tp, now)
	assert.True(t, errors.Is(r.Failure(), taskerr.ErrInvalidArgument))
}
