// Package result provides a two-case container used to compose fallible parse steps.
// A Result holds exactly one of a success value or a failure value and supports
// chained transformation that short-circuits on the first failure.
package result

import "errors"

// ErrEmptyCase is the panic value raised when an accessor is used on the wrong case.
var ErrEmptyCase = errors.New("result: accessed empty case")

// Result holds either a success value of type L or a failure value of type R.
// The zero value is not a valid Result; build one with Success or Failure.
// Chaining or folding a zero value panics with ErrEmptyCase.
type Result[L, R any] struct {
	success L
	failure R
	ok      bool
	set     bool
}

// Success builds a Result holding a success value.
func Success[L, R any](value L) Result[L, R] {
	return Result[L, R]{success: value, ok: true, set: true}
}

// Failure builds a Result holding a failure value.
func Failure[L, R any](value R) Result[L, R] {
	return Result[L, R]{failure: value, set: true}
}

// IsSuccess reports whether the Result holds a success value.
func (r Result[L, R]) IsSuccess() bool {
	return r.set && r.ok
}

// IsFailure reports whether the Result holds a failure value.
func (r Result[L, R]) IsFailure() bool {
	return r.set && !r.ok
}

// Success returns the success value. It panics with ErrEmptyCase if r is a failure.
func (r Result[L, R]) Success() L {
	if !r.IsSuccess() {
		panic(ErrEmptyCase)
	}
	return r.success
}

// Failure returns the failure value. It panics with ErrEmptyCase if r is a success.
func (r Result[L, R]) Failure() R {
	if !r.IsFailure() {
		panic(ErrEmptyCase)
	}
	return r.failure
}

// Get returns both sides and whether the success side is populated.
func (r Result[L, R]) Get() (L, R, bool) {
	return r.success, r.failure, r.IsSuccess()
}

// Then chains a step that keeps the success type. f is not invoked on a failure.
func (r Result[L, R]) Then(f func(L) Result[L, R]) Result[L, R] {
	r.mustBeSet()
	if !r.IsSuccess() {
		return r
	}
	return f(r.success)
}

// Bind applies f to the success value of r and returns its result.
// If r is a failure, f is not invoked and the failure is carried over unchanged.
func Bind[L, L2, R any](r Result[L, R], f func(L) Result[L2, R]) Result[L2, R] {
	r.mustBeSet()
	if !r.IsSuccess() {
		return Failure[L2, R](r.failure)
	}
	return f(r.success)
}

// Map transforms the success value of r with f.
func Map[L, L2, R any](r Result[L, R], f func(L) L2) Result[L2, R] {
	return Bind(r, func(l L) Result[L2, R] {
		return Success[L2, R](f(l))
	})
}

// Fold collapses r into a single value using onSuccess or onFailure.
func Fold[L, R, T any](r Result[L, R], onSuccess func(L) T, onFailure func(R) T) T {
	r.mustBeSet()
	if r.IsSuccess() {
		return onSuccess(r.success)
	}
	return onFailure(r.failure)
}

func (r Result[L, R]) mustBeSet() {
	if !r.set {
		panic(ErrEmptyCase)
	}
}
