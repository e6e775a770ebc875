package option

import (
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/result"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()
	s := Some(4)
	if !s.IsPresent() || s.IsAbsent() || s.MustGet() != 4 {
		t.Fatalf("expected Some(4), got: %s", s)
	}

	n := None[int]()
	if n.IsPresent() || !n.IsAbsent() {
		t.Fatalf("expected None, got: %s", n)
	}
	if v, ok := n.Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got: (%v, %v)", v, ok)
	}
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var o Option[string]
	if o.IsPresent() {
		t.Fatalf("zero value must be None, got: %s", o)
	}
}

func TestMustGetOnNonePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("expected panic for MustGet on None")
		}
		if msg, ok := p.(string); !ok || !strings.Contains(msg, "None") {
			t.Fatalf("expected panic message with variant, got: %v", p)
		}
	}()
	None[int]().MustGet()
}

func TestOfAndFromPtr(t *testing.T) {
	t.Parallel()
	if o := Of(1, true); !o.IsPresent() {
		t.Fatalf("expected Some, got: %s", o)
	}
	if o := Of(1, false); o.IsPresent() {
		t.Fatalf("expected None, got: %s", o)
	}

	v := 8
	if o := FromPtr(&v); o.MustGet() != 8 {
		t.Fatalf("expected Some(8), got: %s", o)
	}
	if o := FromPtr[int](nil); o.IsPresent() {
		t.Fatalf("expected None for nil pointer, got: %s", o)
	}
}

func TestToPtr(t *testing.T) {
	t.Parallel()
	p := Some(3).ToPtr()
	if p == nil || *p != 3 {
		t.Fatalf("expected pointer to 3, got: %v", p)
	}
	if None[int]().ToPtr() != nil {
		t.Fatalf("expected nil pointer for None")
	}
}

func TestMapBindFilter(t *testing.T) {
	t.Parallel()
	if o := Map(Some(2), func(v int) int { return v * 3 }); o.MustGet() != 6 {
		t.Fatalf("expected Some(6), got: %s", o)
	}
	if o := Map(None[int](), func(v int) int { return v }); o.IsPresent() {
		t.Fatalf("expected None, got: %s", o)
	}

	if o := Bind(Some(2), func(v int) Option[string] { return Some("x") }); o.MustGet() != "x" {
		t.Fatalf("expected Some(x), got: %s", o)
	}

	if o := Filter(Some(2), func(v int) bool { return v > 5 }); o.IsPresent() {
		t.Fatalf("expected filtered None, got: %s", o)
	}
	if o := Filter(Some(9), func(v int) bool { return v > 5 }); !o.IsPresent() {
		t.Fatalf("expected Some(9), got: %s", o)
	}
}

func TestResultConversions(t *testing.T) {
	t.Parallel()
	missing := errors.New("missing")

	r := ToResult(Some(1), missing)
	if !r.IsOk() || r.MustGet() != 1 {
		t.Fatalf("expected Ok(1), got: %s", r)
	}
	r = ToResult(None[int](), missing)
	if !errors.Is(r.Error(), missing) {
		t.Fatalf("expected missing error, got: %s", r)
	}

	if o := OfResult(result.Ok(2)); o.MustGet() != 2 {
		t.Fatalf("expected Some(2), got: %s", o)
	}
	if o := OfResult(result.Err[int](missing)); o.IsPresent() {
		t.Fatalf("expected None, got: %s", o)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()
	o := Sequence([]Option[int]{Some(1), Some(2)})
	values := o.MustGet()
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("expected [1 2], got: %v", values)
	}

	if o := Sequence([]Option[int]{Some(1), None[int](), Some(3)}); o.IsPresent() {
		t.Fatalf("expected None, got: %s", o)
	}

	if o := Sequence([]Option[int]{}); !o.IsPresent() || len(o.MustGet()) != 0 {
		t.Fatalf("expected Some of empty slice, got: %s", o)
	}
}

func TestTraverse_StopsAtFirstNone(t *testing.T) {
	t.Parallel()
	calls := 0
	o := Traverse([]int{1, 2, 3}, func(v int) Option[int] {
		calls++
		if v == 2 {
			return None[int]()
		}
		return Some(v)
	})
	if o.IsPresent() {
		t.Fatalf("expected None, got: %s", o)
	}
	if calls != 2 {
		t.Fatalf("selector must stop after first None, got %d calls", calls)
	}
}

func TestPartitionAndCollect(t *testing.T) {
	t.Parallel()
	os := []Option[int]{Some(1), None[int](), Some(3), None[int]()}
	values, absent := Partition(os)
	if len(values) != 2 || values[0] != 1 || values[1] != 3 {
		t.Fatalf("expected [1 3], got: %v", values)
	}
	if absent != 2 {
		t.Fatalf("expected 2 absent, got: %d", absent)
	}
	if got := CollectSome(os); len(got) != 2 {
		t.Fatalf("expected 2 values, got: %v", got)
	}
}

func TestFirstSome(t *testing.T) {
	t.Parallel()
	o, err := FirstSome([]Option[int]{None[int](), Some(7)})
	if err != nil || o.MustGet() != 7 {
		t.Fatalf("expected Some(7), got: %s, err=%v", o, err)
	}

	o, err = FirstSome([]Option[int]{None[int](), None[int]()})
	if err != nil || o.IsPresent() {
		t.Fatalf("expected first None, got: %s, err=%v", o, err)
	}

	_, err = FirstSome([]Option[int]{})
	if !errors.Is(err, monad.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got: %v", err)
	}
}
