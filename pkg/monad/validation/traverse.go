package validation

// Sequence folds validations into one, walking the whole input with no
// short-circuit: every Invalid element contributes all of its errors, in
// element order, to one flattened collection. When any error was recorded
// the outcome is Invalid with the full collection and every Valid value is
// discarded; otherwise it is Valid with all values in input order. An empty
// input yields Valid of an empty slice.
func Sequence[T, E any](vs []Validation[T, E]) Validation[[]T, E] {
	values := make([]T, 0, len(vs))
	errs := make([]E, 0)
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.errs...)
		}
	}
	if len(errs) > 0 {
		return Validation[[]T, E]{errs: errs}
	}
	return Valid[[]T, E](values)
}

// Traverse maps each element through f and sequences the outcome. Unlike the
// fail-fast traversals, f runs for every element.
func Traverse[In, Out, E any](in []In, f func(in In) Validation[Out, E]) Validation[[]Out, E] {
	vs := make([]Validation[Out, E], 0, len(in))
	for _, v := range in {
		vs = append(vs, f(v))
	}
	return Sequence(vs)
}

// Partition walks the whole input and returns the Valid values and the
// flattened errors as two collections, both in encounter order.
func Partition[T, E any](vs []Validation[T, E]) ([]T, []E) {
	values := make([]T, 0, len(vs))
	errs := make([]E, 0)
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.errs...)
		}
	}
	return values, errs
}
