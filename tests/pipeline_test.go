package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/pkg/monad/chain"
	"github.com/ib-77/monads/pkg/monad/pipe"
	"github.com/ib-77/monads/pkg/monad/remote"
	"github.com/ib-77/monads/pkg/monad/result"
	"github.com/ib-77/monads/pkg/monad/validation"
)

// TestParsePipeline runs raw strings through a concurrent parse pipeline and
// checks that every element lands on exactly one track.
func TestParsePipeline(t *testing.T) {
	ctx := context.Background()

	inputs := []string{"1", "2", "bad", "", "5"}

	out := pipe.Finally(ctx,
		pipe.Through(ctx,
			pipe.Run(ctx,
				pipe.Emit(ctx, inputs...),
				pipe.Validate(func(_ context.Context, s string) bool {
					return s != ""
				}, "empty input"),
				2),
			pipe.Try(func(_ context.Context, s string) (int, error) {
				return strconv.Atoi(s)
			}),
			2),
		func(_ context.Context, v int) string { return fmt.Sprintf("val:%d", v) },
		func(_ context.Context, err error) string { return "invalid" },
	)

	results := make([]string, 0, len(inputs))
	for v := range out {
		results = append(results, v)
	}

	require.Len(t, results, len(inputs))

	invalid := lo.Count(results, "invalid")
	assert.Equal(t, 2, invalid, "expected the empty and non-numeric inputs to fail")
	for _, want := range []string{"val:1", "val:2", "val:5"} {
		assert.Contains(t, results, want)
	}
}

// TestValidationFeedsResultAndRemote walks a record batch through error
// accumulation, reduction to a single result, and the fetch-state merge.
func TestValidationFeedsResultAndRemote(t *testing.T) {
	type record struct {
		Name string
		Age  int
	}

	check := func(r record) validation.Validation[record, string] {
		return validation.Combine2(
			lo.Ternary(r.Name != "",
				validation.Valid[record, string](r),
				validation.Invalid[record]("name missing")),
			lo.Ternary(r.Age >= 0,
				validation.Valid[record, string](r),
				validation.Invalid[record](fmt.Sprintf("age %d negative", r.Age))),
			func(a, _ record) record { return a },
		)
	}

	good := []record{{Name: "a", Age: 1}, {Name: "b", Age: 2}}
	bad := []record{{Name: "", Age: -1}, {Name: "c", Age: 3}}

	require.True(t, validation.Traverse(good, check).IsValid())

	v := validation.Traverse(bad, check)
	require.True(t, v.IsInvalid())
	assert.Equal(t, []string{"name missing", "age -1 negative"}, v.Errors())

	r := validation.ToResult(v, func(errs []string) error {
		return errors.New(strings.Join(errs, "; "))
	})
	require.True(t, r.IsErr())

	rd := remote.FromResult(r)
	require.True(t, rd.IsFailure())

	merged := remote.Sequence([]remote.RemoteData[[]record]{
		remote.Success(good),
		remote.Loading[[]record](),
		rd,
	})
	assert.True(t, merged.IsFailure(), "failure must dominate loading")
	assert.ErrorContains(t, merged.Err(), "name missing")
}

// TestChainMatchesPipeCollect checks that the fluent chain and the channel
// pipeline agree on a shared computation.
func TestChainMatchesPipeCollect(t *testing.T) {
	ctx := context.Background()

	double := func(_ context.Context, v int) (int, error) {
		if v < 0 {
			return 0, errors.New("negative")
		}
		return v * 2, nil
	}

	chained := chain.FromValue(ctx, 21).
		ThenTry(double).
		Ensure(func(_ context.Context, v int) bool { return v > 0 }, "not positive").
		Result()
	require.True(t, chained.IsOk())
	assert.Equal(t, 42, chained.MustGet())

	collected := pipe.Collect(ctx,
		pipe.Through(ctx, pipe.Emit(ctx, 21), pipe.Try(double), 1))
	require.True(t, collected.IsOk())
	assert.Equal(t, []int{42}, collected.MustGet())

	failed := pipe.Collect(ctx,
		pipe.Through(ctx, pipe.Emit(ctx, -1, 21), pipe.Try(double), 1))
	require.True(t, failed.IsErr())
	assert.EqualError(t, failed.Error(), "negative")

	sequenced := result.Sequence([]result.Result[int]{
		result.Of(double(ctx, 21)),
		result.Of(double(ctx, -1)),
	})
	assert.Equal(t, failed.Error().Error(), sequenced.Error().Error())
}
