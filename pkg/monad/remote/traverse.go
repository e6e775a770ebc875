package remote

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

// Sequence folds remote data into one using the priority merge: the outcome
// is Success only when every element is Success; otherwise it takes the
// highest-priority non-Success state seen, with Failure > Loading >
// NotAsked. The first Failure's error wins. The walk never short-circuits
// on state, so the recorded state is the same wherever the Failure sits,
// but value collection stops once the outcome can no longer be Success.
// An empty input yields Success of an empty slice.
func Sequence[T any](rs []RemoteData[T]) RemoteData[[]T] {
	values := make([]T, 0, len(rs))
	worst := stateSuccess
	var firstErr error

	for _, r := range rs {
		switch r.state {
		case stateSuccess:
			if worst == stateSuccess {
				values = append(values, r.value)
			}
		case stateFailure:
			if worst != stateFailure {
				worst = stateFailure
				firstErr = r.err
			}
		case stateLoading:
			if worst != stateFailure {
				worst = stateLoading
			}
		case stateNotAsked:
			if worst == stateSuccess {
				worst = stateNotAsked
			}
		}
	}

	switch worst {
	case stateFailure:
		return Failure[[]T](firstErr)
	case stateLoading:
		return Loading[[]T]()
	case stateNotAsked:
		return NotAsked[[]T]()
	default:
		return Success(values)
	}
}

// Traverse maps each element through f and sequences the outcome. f runs
// for every element; per-element states merge by priority exactly as in
// Sequence.
func Traverse[In, Out any](in []In, f func(in In) RemoteData[Out]) RemoteData[[]Out] {
	rs := make([]RemoteData[Out], 0, len(in))
	for _, v := range in {
		rs = append(rs, f(v))
	}
	return Sequence(rs)
}

// FirstSuccess returns the first Success in a left-to-right walk, or the
// first element when no Success exists. An empty input has nothing to
// report, not even a failure, and is an error.
func FirstSuccess[T any](rs []RemoteData[T]) (RemoteData[T], error) {
	if len(rs) == 0 {
		return RemoteData[T]{}, fmt.Errorf("remote: FirstSuccess: %w", monad.ErrEmptySequence)
	}
	for _, r := range rs {
		if r.IsSuccess() {
			return r, nil
		}
	}
	return rs[0], nil
}

// Partition splits remote data into the Success values and Failure errors,
// in encounter order, plus counts for the two payload-free states.
func Partition[T any](rs []RemoteData[T]) (values []T, errs []error, loading, notAsked int) {
	values = make([]T, 0, len(rs))
	errs = make([]error, 0)
	for _, r := range rs {
		switch r.state {
		case stateSuccess:
			values = append(values, r.value)
		case stateFailure:
			errs = append(errs, r.err)
		case stateLoading:
			loading++
		case stateNotAsked:
			notAsked++
		}
	}
	return values, errs, loading, notAsked
}
