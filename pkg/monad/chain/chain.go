package chain

import (
	"context"
	"errors"

	"github.com/ib-77/monads/pkg/monad/result"
)

// Chain wraps a result with its context to enable fluent synchronous
// composition. Steps short-circuit once the result is an Err, and a done
// context fails the chain before the next step runs.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

func Start[T any](ctx context.Context, r result.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, result.Ok(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

func (c Chain[T]) step() (Chain[T], bool) {
	if c.res.IsErr() {
		return c, false
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, res: result.Err[T](err)}, false
	}
	return c, true
}

// Then composes a function that already returns a result.
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) result.Result[T]) Chain[T] {
	c, ok := c.step()
	if !ok {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.MustGet())}
}

// ThenTry composes a conventional fallible function.
func (c Chain[T]) ThenTry(onOk func(ctx context.Context, v T) (T, error)) Chain[T] {
	return c.Then(func(ctx context.Context, v T) result.Result[T] {
		return result.Of(onOk(ctx, v))
	})
}

// Map transforms the value in place.
func (c Chain[T]) Map(onOk func(ctx context.Context, v T) T) Chain[T] {
	return c.Then(func(ctx context.Context, v T) result.Result[T] {
		return result.Ok(onOk(ctx, v))
	})
}

// Ensure fails the chain with errMsg when the predicate rejects the value.
func (c Chain[T]) Ensure(valid func(ctx context.Context, v T) bool, errMsg string) Chain[T] {
	return c.Then(func(ctx context.Context, v T) result.Result[T] {
		if !valid(ctx, v) {
			return result.Err[T](errors.New(errMsg))
		}
		return result.Ok(v)
	})
}

// Tap triggers a side effect on success only.
func (c Chain[T]) Tap(onOk func(ctx context.Context, v T)) Chain[T] {
	if c.res.IsOk() {
		onOk(c.ctx, c.res.MustGet())
	}
	return c
}

// Finally reduces the chain to a concrete value via handlers.
func Finally[T, Out any](c Chain[T],
	onOk func(ctx context.Context, v T) Out,
	onErr func(ctx context.Context, err error) Out) Out {

	return result.Fold(c.res,
		func(v T) Out { return onOk(c.ctx, v) },
		func(err error) Out { return onErr(c.ctx, err) })
}
