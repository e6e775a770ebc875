package writer

// Writer pairs a value with an ordered log accumulated alongside the
// computation. Logs concatenate left to right through Bind.
type Writer[W, A any] struct {
	value A
	log   []W
}

// Pair holds a value together with the log observed by Listen.
type Pair[A, W any] struct {
	Value A
	Log   []W
}

// Pure wraps a value with an empty log.
func Pure[W, A any](value A) Writer[W, A] {
	return Writer[W, A]{value: value}
}

// Of wraps a value with initial log entries.
func Of[W, A any](value A, entries ...W) Writer[W, A] {
	own := make([]W, len(entries))
	copy(own, entries)
	return Writer[W, A]{value: value, log: own}
}

// Tell records entries with no value.
func Tell[W any](entries ...W) Writer[W, struct{}] {
	return Of[W](struct{}{}, entries...)
}

// Run returns the value and the accumulated log in insertion order.
func (w Writer[W, A]) Run() (A, []W) {
	return w.value, w.Log()
}

func (w Writer[W, A]) Value() A {
	return w.value
}

func (w Writer[W, A]) Log() []W {
	log := make([]W, len(w.log))
	copy(log, w.log)
	return log
}

func Map[W, A, B any](w Writer[W, A], f func(value A) B) Writer[W, B] {
	return Writer[W, B]{value: f(w.value), log: w.log}
}

// Bind chains a writer-returning step; the step's log is appended after the
// input's log.
func Bind[W, A, B any](w Writer[W, A], f func(value A) Writer[W, B]) Writer[W, B] {
	next := f(w.value)
	log := make([]W, 0, len(w.log)+len(next.log))
	log = append(log, w.log...)
	log = append(log, next.log...)
	return Writer[W, B]{value: next.value, log: log}
}

// Listen exposes the accumulated log alongside the value while keeping it
// in the log as well.
func Listen[W, A any](w Writer[W, A]) Writer[W, Pair[A, W]] {
	return Writer[W, Pair[A, W]]{
		value: Pair[A, W]{Value: w.value, Log: w.Log()},
		log:   w.log,
	}
}

// Censor rewrites the accumulated log.
func Censor[W, A any](w Writer[W, A], f func(log []W) []W) Writer[W, A] {
	return Writer[W, A]{value: w.value, log: f(w.Log())}
}
