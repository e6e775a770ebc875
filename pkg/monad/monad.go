package monad

import (
	"context"
	"errors"
	"reflect"
)

// ErrEmptySequence is reported by first-element queries (result.FirstOk,
// remote.FirstSuccess, nel.FromSlice) when the input holds no elements at all.
var ErrEmptySequence = errors.New("monad: empty sequence")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens err into its joined parts. A nil err yields an empty slice,
// an err without Unwrap() []error yields a single-element slice.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
