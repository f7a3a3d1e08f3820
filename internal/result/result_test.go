package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Cases(t *testing.T) {
	ok := Success[int, error](42)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 42, ok.Success())

	boom := errors.New("boom")
	bad := Failure[int, error](boom)
	assert.False(t, bad.IsSuccess())
	assert.True(t, bad.IsFailure())
	assert.Equal(t, boom, bad.Failure())
}

func TestResult_AccessorsPanicOnWrongCase(t *testing.T) {
	assert.PanicsWithValue(t, ErrEmptyCase, func() {
		Success[int, error](1).Failure()
	})
	assert.PanicsWithValue(t, ErrEmptyCase, func() {
		Failure[int, error](errors.New("x")).Success()
	})

	var zero Result[int, error]
	assert.False(t, zero.IsSuccess())
	assert.False(t, zero.IsFailure())
	assert.Panics(t, func() { zero.Success() })
}

func TestResult_ZeroValueCannotBeChained(t *testing.T) {
	var zero Result[int, error]
	calls := 0
	step := func(n int) Result[int, error] {
		calls++
		return Success[int, error](n)
	}

	assert.PanicsWithValue(t, ErrEmptyCase, func() { zero.Then(step) })
	assert.PanicsWithValue(t, ErrEmptyCase, func() { Bind(zero, step) })
	assert.PanicsWithValue(t, ErrEmptyCase, func() { Map(zero, func(n int) int { return n }) })
	assert.PanicsWithValue(t, ErrEmptyCase, func() {
		Fold(zero, func(int) bool { return true }, func(error) bool { return false })
	})
	assert.Zero(t, calls)
}

func TestBind_ShortCircuitsAfterFailure(t *testing.T) {
	calls := 0
	spy := func(n int) Result[int, error] {
		calls++
		return Success[int, error](n + 1)
	}
	fail := func(int) Result[int, error] {
		calls++
		return Failure[int, error](errors.New("step failed"))
	}

	r := Bind(Bind(Bind(Bind(Success[int, error](0), spy), fail), spy), spy)

	require.True(t, r.IsFailure())
	assert.EqualError(t, r.Failure(), "step failed")
	assert.Equal(t, 2, calls, "functions bound after the failure must not run")
}

func TestBind_ChangesSuccessType(t *testing.T) {
	r := Bind(Success[int, error](7), func(n int) Result[string, error] {
		return Success[string, error](strconv.Itoa(n * 2))
	})
	require.True(t, r.IsSuccess())
	assert.Equal(t, "14", r.Success())
}

func TestThen_ShortCircuits(t *testing.T) {
	calls := 0
	r := Failure[string, error](errors.New("early")).Then(func(s string) Result[string, error] {
		calls++
		return Success[string, error](s)
	})
	assert.True(t, r.IsFailure())
	assert.Zero(t, calls)
}

func TestMapAndFold(t *testing.T) {
	doubled := Map(Success[int, string](21), func(n int) int { return n * 2 })
	assert.Equal(t, 42, doubled.Success())

	text := Fold(Failure[int, string]("nope"),
		func(n int) string { return strconv.Itoa(n) },
		func(s string) string { return "failed: " + s })
	assert.Equal(t, "failed: nope", text)
}
