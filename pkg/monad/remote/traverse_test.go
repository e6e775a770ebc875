package remote

import (
	"errors"
	"testing"

	"github.com/ib-77/monads/pkg/monad"
)

func TestSequence_AllSuccess(t *testing.T) {
	t.Parallel()
	r := Sequence([]RemoteData[int]{Success(1), Success(2), Success(3)})
	if !r.IsSuccess() {
		t.Fatalf("expected Success, got: %s", r)
	}
	values := r.MustGet()
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Fatalf("expected [1 2 3], got: %v", values)
	}
}

func TestSequence_LoadingBeatsNotAsked(t *testing.T) {
	t.Parallel()
	r := Sequence([]RemoteData[int]{Success(1), NotAsked[int](), Loading[int](), Success(3)})
	if !r.IsLoading() {
		t.Fatalf("expected Loading, got: %s", r)
	}

	// Order of the non-Success states must not matter.
	r = Sequence([]RemoteData[int]{Loading[int](), NotAsked[int]()})
	if !r.IsLoading() {
		t.Fatalf("expected Loading, got: %s", r)
	}
}

func TestSequence_FailureDominates(t *testing.T) {
	t.Parallel()
	e1 := errors.New("x")
	e2 := errors.New("y")
	r := Sequence([]RemoteData[int]{
		Success(1), NotAsked[int](), Failure[int](e1), Loading[int](), Failure[int](e2),
	})
	if !r.IsFailure() || !errors.Is(r.Err(), e1) {
		t.Fatalf("expected Failure(x) with first error, got: %s", r)
	}

	// A Failure recorded early is never displaced by later Loading/NotAsked.
	r = Sequence([]RemoteData[int]{Failure[int](e1), Loading[int](), NotAsked[int]()})
	if !r.IsFailure() || !errors.Is(r.Err(), e1) {
		t.Fatalf("expected Failure(x), got: %s", r)
	}
}

func TestSequence_AllNotAsked(t *testing.T) {
	t.Parallel()
	r := Sequence([]RemoteData[int]{NotAsked[int](), NotAsked[int]()})
	if !r.IsNotAsked() {
		t.Fatalf("expected NotAsked, got: %s", r)
	}
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()
	r := Sequence([]RemoteData[int]{})
	if !r.IsSuccess() || len(r.MustGet()) != 0 {
		t.Fatalf("expected Success of empty slice, got: %s", r)
	}
}

func TestTraverse_RunsForEveryElement(t *testing.T) {
	t.Parallel()
	calls := 0
	r := Traverse([]int{1, 2, 3}, func(v int) RemoteData[int] {
		calls++
		if v == 2 {
			return Loading[int]()
		}
		return Success(v)
	})
	if calls != 3 {
		t.Fatalf("traverse must walk every element, got %d calls", calls)
	}
	if !r.IsLoading() {
		t.Fatalf("expected Loading, got: %s", r)
	}
}

func TestFirstSuccess(t *testing.T) {
	t.Parallel()
	r, err := FirstSuccess([]RemoteData[int]{Loading[int](), Success(5), Success(6)})
	if err != nil || r.MustGet() != 5 {
		t.Fatalf("expected Success(5), got: %s, err=%v", r, err)
	}

	r, err = FirstSuccess([]RemoteData[int]{Loading[int](), Failure[int](errors.New("x"))})
	if err != nil || !r.IsLoading() {
		t.Fatalf("expected first element Loading, got: %s, err=%v", r, err)
	}

	_, err = FirstSuccess([]RemoteData[int]{})
	if !errors.Is(err, monad.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got: %v", err)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()
	e := errors.New("x")
	values, errs, loading, notAsked := Partition([]RemoteData[int]{
		Success(1), Loading[int](), Failure[int](e), NotAsked[int](), Success(2), Loading[int](),
	})
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("expected values [1 2], got: %v", values)
	}
	if len(errs) != 1 || !errors.Is(errs[0], e) {
		t.Fatalf("expected errors [x], got: %v", errs)
	}
	if loading != 2 || notAsked != 1 {
		t.Fatalf("expected 2 loading and 1 notAsked, got: %d, %d", loading, notAsked)
	}
}
