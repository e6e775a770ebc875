package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/monads/pkg/monad/result"
)

// Stage processes one result, typically lifted from a synchronous
// combinator via Map/Bind/Filter/Tap/Try below.
type Stage[In, Out any] func(ctx context.Context, in result.Result[In]) result.Result[Out]

// Emit lifts plain values into a channel of Ok results. The channel closes
// after the last value or as soon as ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan result.Result[T] {
	rs := make([]result.Result[T], 0, len(values))
	for _, v := range values {
		rs = append(rs, result.Ok(v))
	}
	return EmitResults(ctx, rs...)
}

// EmitResults feeds prebuilt results into a channel.
func EmitResults[T any](ctx context.Context, rs ...result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T])

	go func() {
		defer close(out)

		for _, r := range rs {
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Through drives a stage over the input channel with the given number of
// worker lines and merges their output. Cancellation is checked between
// receive, process and send; results in flight when ctx dies are dropped
// with the channel close.
func Through[In, Out any](ctx context.Context, in <-chan result.Result[In],
	stage Stage[In, Out], lines int) <-chan result.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan result.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go work(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Through for stages that keep the element type.
func Run[T any](ctx context.Context, in <-chan result.Result[T],
	stage Stage[T, T], lines int) <-chan result.Result[T] {
	return Through(ctx, in, stage, lines)
}

func work[In, Out any](ctx context.Context, in <-chan result.Result[In],
	out chan<- result.Result[Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			processed := stage(ctx, r)

			select {
			case <-ctx.Done():
				return
			case out <- processed:
			}
		}
	}
}

// Drain consumes the channel into a slice, stopping early when ctx dies.
func Drain[T any](ctx context.Context, in <-chan result.Result[T]) []result.Result[T] {
	rs := make([]result.Result[T], 0)
	for {
		select {
		case r, ok := <-in:
			if !ok {
				return rs
			}
			rs = append(rs, r)
		case <-ctx.Done():
			return rs
		}
	}
}

// Collect folds the channel fail-fast into one result: the first Err wins
// and the remaining input is drained without further processing. A closed
// empty channel yields Ok of an empty slice; a dead ctx yields its error.
func Collect[T any](ctx context.Context, in <-chan result.Result[T]) result.Result[[]T] {
	values := make([]T, 0)
	for {
		select {
		case r, ok := <-in:
			if !ok {
				return result.Ok(values)
			}
			if r.IsErr() {
				go func() {
					for range in {
					}
				}()
				return result.Err[[]T](r.Error())
			}
			values = append(values, r.MustGet())
		case <-ctx.Done():
			return result.Err[[]T](ctx.Err())
		}
	}
}

// Finally reduces each result to a plain value through the two handlers.
func Finally[In, Out any](ctx context.Context, in <-chan result.Result[In],
	onOk func(ctx context.Context, value In) Out,
	onErr func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				v := result.Fold(r,
					func(value In) Out { return onOk(ctx, value) },
					func(err error) Out { return onErr(ctx, err) })

				select {
				case <-ctx.Done():
					return
				case out <- v:
				}
			}
		}
	}()

	return out
}
