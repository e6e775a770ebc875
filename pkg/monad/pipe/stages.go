package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/monads/pkg/monad/result"
)

// Stage lifts over the synchronous result combinators. Each lift passes a
// failed input straight through, so a pipeline stays on the error track
// once any stage fails.

func Map[In, Out any](f func(ctx context.Context, value In) Out) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) result.Result[Out] {
		return result.Map(in, func(value In) Out {
			return f(ctx, value)
		})
	}
}

func Bind[In, Out any](f func(ctx context.Context, value In) result.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) result.Result[Out] {
		return result.Bind(in, func(value In) result.Result[Out] {
			return f(ctx, value)
		})
	}
}

// Try lifts a conventional fallible function.
func Try[In, Out any](f func(ctx context.Context, value In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in result.Result[In]) result.Result[Out] {
		return result.Bind(in, func(value In) result.Result[Out] {
			return result.Of(f(ctx, value))
		})
	}
}

// Validate fails elements the predicate rejects, with the given message.
func Validate[T any](valid func(ctx context.Context, value T) bool, errMsg string) Stage[T, T] {
	return func(ctx context.Context, in result.Result[T]) result.Result[T] {
		return result.Bind(in, func(value T) result.Result[T] {
			if !valid(ctx, value) {
				return result.Err[T](errors.New(errMsg))
			}
			return result.Ok(value)
		})
	}
}

// Tap runs a side effect on successful elements and passes everything
// through unchanged.
func Tap[T any](f func(ctx context.Context, value T)) Stage[T, T] {
	return func(ctx context.Context, in result.Result[T]) result.Result[T] {
		return result.Tap(in, func(value T) {
			f(ctx, value)
		})
	}
}

// TapErr runs a side effect on failed elements and passes everything
// through unchanged.
func TapErr[T any](f func(ctx context.Context, err error)) Stage[T, T] {
	return func(ctx context.Context, in result.Result[T]) result.Result[T] {
		return result.TapErr(in, func(err error) {
			f(ctx, err)
		})
	}
}
