package result

// Combinators are free functions because Go methods cannot introduce the
// output type parameter.

func Map[In, Out any](r Result[In], onOk func(value In) Out) Result[Out] {
	if r.IsOk() {
		return Ok(onOk(r.MustGet()))
	}
	return Err[Out](r.Error())
}

func MapErr[T any](r Result[T], onErr func(err error) error) Result[T] {
	if r.IsOk() {
		return r
	}
	return Err[T](onErr(r.Error()))
}

// Bind chains a result-returning step, short-circuiting on Err.
func Bind[In, Out any](r Result[In], onOk func(value In) Result[Out]) Result[Out] {
	if r.IsOk() {
		return onOk(r.MustGet())
	}
	return Err[Out](r.Error())
}

// Filter keeps an Ok result only while keep holds; otherwise it becomes
// Err with the given error.
func Filter[T any](r Result[T], keep func(value T) bool, err error) Result[T] {
	if r.IsOk() && !keep(r.MustGet()) {
		return Err[T](err)
	}
	return r
}

// Tap runs a side effect on the value of an Ok result and returns the
// input unchanged.
func Tap[T any](r Result[T], onOk func(value T)) Result[T] {
	if r.IsOk() {
		onOk(r.MustGet())
	}
	return r
}

func TapErr[T any](r Result[T], onErr func(err error)) Result[T] {
	if r.IsErr() {
		onErr(r.Error())
	}
	return r
}

// Fold eliminates the result to a single value.
func Fold[T, Out any](r Result[T], onOk func(value T) Out, onErr func(err error) Out) Out {
	if r.IsOk() {
		return onOk(r.MustGet())
	}
	return onErr(r.Error())
}
