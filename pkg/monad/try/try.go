package try

import (
	"context"
	"fmt"

	"github.com/ib-77/monads/pkg/monad/result"
)

// Do runs a fallible computation, capturing both its returned error and any
// panic into an Err result.
func Do[T any](f func() (T, error)) (r result.Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = result.Err[T](asError(p))
		}
	}()
	return result.Of(f())
}

// Catch runs a computation with no error return, capturing panics only.
func Catch[T any](f func() T) result.Result[T] {
	return Do(func() (T, error) {
		return f(), nil
	})
}

// DoCtx is Do with cooperative cancellation checked at entry: a done
// context fails without invoking f.
func DoCtx[T any](ctx context.Context, f func(ctx context.Context) (T, error)) result.Result[T] {
	if err := ctx.Err(); err != nil {
		return result.Err[T](err)
	}
	return Do(func() (T, error) {
		return f(ctx)
	})
}

func asError(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("try: recovered: %w", err)
	}
	return fmt.Errorf("try: recovered: %v", p)
}
