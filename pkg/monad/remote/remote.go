package remote

import (
	"errors"
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/option"
	"github.com/ib-77/monads/pkg/monad/result"
)

// ErrNotReady is reported by ToResult for a fetch that has not finished.
var ErrNotReady = errors.New("remote: data not ready")

type state uint8

const (
	stateNotAsked state = iota
	stateLoading
	stateSuccess
	stateFailure
)

// RemoteData models the lifecycle of a fetched value: has the fetch been
// started, and did it finish. Exactly one state is active. The zero value
// is NotAsked.
type RemoteData[T any] struct {
	value T
	err   error
	state state
}

func NotAsked[T any]() RemoteData[T] {
	return RemoteData[T]{state: stateNotAsked}
}

func Loading[T any]() RemoteData[T] {
	return RemoteData[T]{state: stateLoading}
}

func Success[T any](value T) RemoteData[T] {
	return RemoteData[T]{value: value, state: stateSuccess}
}

// Failure panics when err is nil: a failed fetch without an error is a
// construction misuse, not a representable state.
func Failure[T any](err error) RemoteData[T] {
	if monad.IsNil(err) {
		panic("remote: Failure called with nil error")
	}
	return RemoteData[T]{err: err, state: stateFailure}
}

func (r RemoteData[T]) IsNotAsked() bool {
	return r.state == stateNotAsked
}

func (r RemoteData[T]) IsLoading() bool {
	return r.state == stateLoading
}

func (r RemoteData[T]) IsSuccess() bool {
	return r.state == stateSuccess
}

func (r RemoteData[T]) IsFailure() bool {
	return r.state == stateFailure
}

func (r RemoteData[T]) Get() (T, bool) {
	return r.value, r.state == stateSuccess
}

// MustGet returns the value or panics when the state is not Success.
func (r RemoteData[T]) MustGet() T {
	if r.state != stateSuccess {
		panic(fmt.Sprintf("remote: MustGet on %s", r))
	}
	return r.value
}

// Err returns the error for a Failure and nil for every other state.
func (r RemoteData[T]) Err() error {
	return r.err
}

func (r RemoteData[T]) OrElse(fallback T) T {
	if r.state == stateSuccess {
		return r.value
	}
	return fallback
}

// Match eliminates the state machine through exactly one of the four
// handlers.
func (r RemoteData[T]) Match(
	onNotAsked func(),
	onLoading func(),
	onSuccess func(value T),
	onFailure func(err error),
) {
	switch r.state {
	case stateNotAsked:
		onNotAsked()
	case stateLoading:
		onLoading()
	case stateSuccess:
		onSuccess(r.value)
	case stateFailure:
		onFailure(r.err)
	}
}

func (r RemoteData[T]) String() string {
	switch r.state {
	case stateLoading:
		return "Loading"
	case stateSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case stateFailure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "NotAsked"
	}
}

// Map transforms the value of a Success, passing every other state through.
func Map[In, Out any](r RemoteData[In], onSuccess func(value In) Out) RemoteData[Out] {
	switch r.state {
	case stateSuccess:
		return Success(onSuccess(r.value))
	case stateFailure:
		return Failure[Out](r.err)
	case stateLoading:
		return Loading[Out]()
	default:
		return NotAsked[Out]()
	}
}

// MapErr transforms the error of a Failure, passing every other state through.
func MapErr[T any](r RemoteData[T], onFailure func(err error) error) RemoteData[T] {
	if r.state == stateFailure {
		return Failure[T](onFailure(r.err))
	}
	return r
}

// Bind chains a fetch-dependent step, running it only on Success.
func Bind[In, Out any](r RemoteData[In], onSuccess func(value In) RemoteData[Out]) RemoteData[Out] {
	switch r.state {
	case stateSuccess:
		return onSuccess(r.value)
	case stateFailure:
		return Failure[Out](r.err)
	case stateLoading:
		return Loading[Out]()
	default:
		return NotAsked[Out]()
	}
}

// FromResult lifts a finished fetch: Ok becomes Success, Err becomes Failure.
func FromResult[T any](r result.Result[T]) RemoteData[T] {
	if r.IsOk() {
		return Success(r.MustGet())
	}
	return Failure[T](r.Error())
}

// ToResult reduces to a Result, reporting ErrNotReady for a fetch that has
// not finished.
func ToResult[T any](r RemoteData[T]) result.Result[T] {
	switch r.state {
	case stateSuccess:
		return result.Ok(r.value)
	case stateFailure:
		return result.Err[T](r.err)
	default:
		return result.Err[T](fmt.Errorf("%s: %w", r, ErrNotReady))
	}
}

// FromOption lifts an optional value: Some becomes Success, None stays
// NotAsked.
func FromOption[T any](o option.Option[T]) RemoteData[T] {
	if v, ok := o.Get(); ok {
		return Success(v)
	}
	return NotAsked[T]()
}
