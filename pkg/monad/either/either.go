package either

import "fmt"

// Either holds exactly one of a left or a right value. By convention the
// right side carries the "expected" outcome; combinators are right-biased.
// The zero value is Left of L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// MustLeft returns the left value or panics when the either is Right.
func (e Either[L, R]) MustLeft() L {
	if e.isRight {
		panic(fmt.Sprintf("either: MustLeft on %s", e))
	}
	return e.left
}

// MustRight returns the right value or panics when the either is Left.
func (e Either[L, R]) MustRight() R {
	if !e.isRight {
		panic(fmt.Sprintf("either: MustRight on %s", e))
	}
	return e.right
}

func (e Either[L, R]) Match(onLeft func(value L), onRight func(value R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map transforms the right value, passing a Left through untouched.
func Map[L, R, R2 any](e Either[L, R], onRight func(value R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L, R2](onRight(e.right))
	}
	return Left[L, R2](e.left)
}

// MapLeft transforms the left value, passing a Right through untouched.
func MapLeft[L, R, L2 any](e Either[L, R], onLeft func(value L) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2, R](e.right)
	}
	return Left[L2, R](onLeft(e.left))
}

// Bind chains a right-producing step, short-circuiting on Left.
func Bind[L, R, R2 any](e Either[L, R], onRight func(value R) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return onRight(e.right)
	}
	return Left[L, R2](e.left)
}

// Fold eliminates the either to a single value.
func Fold[L, R, Out any](e Either[L, R], onLeft func(value L) Out, onRight func(value R) Out) Out {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Sequence folds eithers into a single either holding every right value in
// input order, fail-fast on the first Left. An empty input yields Right of
// an empty slice.
func Sequence[L, R any](es []Either[L, R]) Either[L, []R] {
	values := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		values = append(values, e.right)
	}
	return Right[L](values)
}

// Partition splits eithers into lefts and rights, keeping input order
// within each side.
func Partition[L, R any](es []Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0)
	rights := make([]R, 0, len(es))
	for _, e := range es {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			lefts = append(lefts, e.left)
		}
	}
	return lefts, rights
}
