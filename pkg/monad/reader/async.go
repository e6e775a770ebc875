package reader

import "context"

// AsyncReader computes a value from an environment through a blocking,
// fallible step. Cancellation is cooperative: checked at entry of a
// composed reader and again between the two steps of a Bind, never
// mid-step.
type AsyncReader[E, A any] func(ctx context.Context, env E) (A, error)

// FromReader lifts a pure reader.
func FromReader[E, A any](r Reader[E, A]) AsyncReader[E, A] {
	return func(ctx context.Context, env E) (A, error) {
		if err := ctx.Err(); err != nil {
			var zero A
			return zero, err
		}
		return r(env), nil
	}
}

// PureAsync ignores the environment.
func PureAsync[E, A any](value A) AsyncReader[E, A] {
	return func(ctx context.Context, env E) (A, error) {
		if err := ctx.Err(); err != nil {
			var zero A
			return zero, err
		}
		return value, nil
	}
}

func (r AsyncReader[E, A]) Run(ctx context.Context, env E) (A, error) {
	return r(ctx, env)
}

func MapAsync[E, A, B any](r AsyncReader[E, A], f func(value A) B) AsyncReader[E, B] {
	return func(ctx context.Context, env E) (B, error) {
		var zero B
		a, err := r(ctx, env)
		if err != nil {
			return zero, err
		}
		return f(a), nil
	}
}

// BindAsync chains an environment-dependent step, rechecking cancellation
// between the two steps.
func BindAsync[E, A, B any](r AsyncReader[E, A], f func(value A) AsyncReader[E, B]) AsyncReader[E, B] {
	return func(ctx context.Context, env E) (B, error) {
		var zero B
		a, err := r(ctx, env)
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return f(a)(ctx, env)
	}
}

// LocalAsync runs the reader under a modified environment.
func LocalAsync[E, A any](r AsyncReader[E, A], modify func(env E) E) AsyncReader[E, A] {
	return func(ctx context.Context, env E) (A, error) {
		return r(ctx, modify(env))
	}
}
