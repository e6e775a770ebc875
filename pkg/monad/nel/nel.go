package nel

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

// NonEmptyList holds at least one element, guaranteed by construction.
// The zero value is not meaningful; construct through New or FromSlice.
type NonEmptyList[T any] struct {
	head T
	tail []T
}

func New[T any](head T, rest ...T) NonEmptyList[T] {
	tail := make([]T, len(rest))
	copy(tail, rest)
	return NonEmptyList[T]{head: head, tail: tail}
}

// FromSlice builds a list from a slice, failing on empty input.
func FromSlice[T any](values []T) (NonEmptyList[T], error) {
	if len(values) == 0 {
		return NonEmptyList[T]{}, fmt.Errorf("nel: FromSlice: %w", monad.ErrEmptySequence)
	}
	return New(values[0], values[1:]...), nil
}

func (l NonEmptyList[T]) Head() T {
	return l.head
}

// Tail returns the elements after the head, possibly empty.
func (l NonEmptyList[T]) Tail() []T {
	tail := make([]T, len(l.tail))
	copy(tail, l.tail)
	return tail
}

func (l NonEmptyList[T]) Last() T {
	if len(l.tail) == 0 {
		return l.head
	}
	return l.tail[len(l.tail)-1]
}

func (l NonEmptyList[T]) Len() int {
	return 1 + len(l.tail)
}

// Slice returns all elements, head first.
func (l NonEmptyList[T]) Slice() []T {
	all := make([]T, 0, l.Len())
	all = append(all, l.head)
	all = append(all, l.tail...)
	return all
}

// Append returns a new list with values added at the end.
func (l NonEmptyList[T]) Append(values ...T) NonEmptyList[T] {
	tail := make([]T, 0, len(l.tail)+len(values))
	tail = append(tail, l.tail...)
	tail = append(tail, values...)
	return NonEmptyList[T]{head: l.head, tail: tail}
}

// Concat returns a new list holding l's elements followed by other's.
func (l NonEmptyList[T]) Concat(other NonEmptyList[T]) NonEmptyList[T] {
	return l.Append(other.Slice()...)
}

func Map[In, Out any](l NonEmptyList[In], f func(value In) Out) NonEmptyList[Out] {
	tail := make([]Out, len(l.tail))
	for i, v := range l.tail {
		tail[i] = f(v)
	}
	return NonEmptyList[Out]{head: f(l.head), tail: tail}
}

// Reduce folds all elements left to right, seeded with the head. Non-empty
// input means no separate zero value is needed.
func Reduce[T any](l NonEmptyList[T], merge func(acc, value T) T) T {
	acc := l.head
	for _, v := range l.tail {
		acc = merge(acc, v)
	}
	return acc
}
