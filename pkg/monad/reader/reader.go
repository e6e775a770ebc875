package reader

// Reader computes a value from a read-only environment.
type Reader[E, A any] func(env E) A

// Ask returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return func(env E) E {
		return env
	}
}

// Pure ignores the environment.
func Pure[E, A any](value A) Reader[E, A] {
	return func(E) A {
		return value
	}
}

func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

func Map[E, A, B any](r Reader[E, A], f func(value A) B) Reader[E, B] {
	return func(env E) B {
		return f(r(env))
	}
}

// Bind chains an environment-dependent step.
func Bind[E, A, B any](r Reader[E, A], f func(value A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(r(env))(env)
	}
}

// Local runs the reader under a modified environment.
func Local[E, A any](r Reader[E, A], modify func(env E) E) Reader[E, A] {
	return func(env E) A {
		return r(modify(env))
	}
}
