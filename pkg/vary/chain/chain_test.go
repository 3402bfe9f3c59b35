package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/vary/pkg/vary"
	"github.com/ib-77/vary/pkg/vary/outcome"
)

func TestFromValue_ThenTry_Map_Finally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := FromValue(ctx, "21")
	parsed := ThenTry(c, func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	doubled := Map(parsed, func(ctx context.Context, n int) int {
		return n * 2
	})

	got := Finally(doubled,
		func(ctx context.Context, n int) string { return "ok:" + strconv.Itoa(n) },
		func(ctx context.Context, err error) string { return "err:" + err.Error() },
	)
	if got != "ok:42" {
		t.Fatalf("expected \"ok:42\", got %q", got)
	}
}

func TestThenTry_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := FromValue(ctx, "not a number")
	parsed := ThenTry(c, func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	mapped := Map(parsed, func(ctx context.Context, n int) int {
		t.Fatalf("a transformation must not run after a failure")
		return n
	})

	if mapped.Outcome().IsOk() {
		t.Fatalf("expected the chain to stay failed")
	}
}

func TestValidate_AccumulatesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tooSmall := errors.New("too small")
	odd := errors.New("odd")

	c := FromValue(ctx, 3).Validate(
		func(ctx context.Context, n int) error {
			if n < 10 {
				return tooSmall
			}
			return nil
		},
		func(ctx context.Context, n int) error {
			if n%2 != 0 {
				return odd
			}
			return nil
		},
	)

	_, err := c.Outcome().Get()
	if err == nil {
		t.Fatalf("expected the joined validation failure")
	}
	errs := vary.GetErrors(err)
	if len(errs) != 2 || !errors.Is(err, tooSmall) || !errors.Is(err, odd) {
		t.Fatalf("every validator error must stay recoverable, got %v", errs)
	}

	ok := FromValue(ctx, 12).Validate(
		func(ctx context.Context, n int) error { return nil },
	)
	if got := ok.Outcome().Unwrap(); got != 12 {
		t.Fatalf("a passing validation leaves the chain untouched, got %d", got)
	}
}

func TestValidate_SkipsFailedChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cause := errors.New("boom")

	c := Start(ctx, outcome.Failure[int](cause)).Validate(
		func(ctx context.Context, n int) error {
			t.Fatalf("validators must not run on a failed chain")
			return nil
		},
	)
	if _, err := c.Outcome().Get(); err != cause {
		t.Fatalf("expected the original failure, got %v", err)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cause := errors.New("boom")

	c := Start(ctx, outcome.Failure[int](cause)).Recover(
		func(ctx context.Context, err error) outcome.Outcome[int] {
			if err != cause {
				t.Errorf("the handler must see the failure payload")
			}
			return outcome.Success(7)
		},
	)
	if got := c.Outcome().Unwrap(); got != 7 {
		t.Fatalf("expected the recovered value, got %d", got)
	}

	untouched := FromValue(ctx, 1).Recover(
		func(ctx context.Context, err error) outcome.Outcome[int] {
			t.Fatalf("the handler must stay lazy on success")
			return outcome.Failure[int](err)
		},
	)
	if got := untouched.Outcome().Unwrap(); got != 1 {
		t.Fatalf("expected the original value, got %d", got)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seen := 0

	c := FromValue(ctx, 5).Ensure(func(ctx context.Context, n int) { seen = n })
	if got := c.Outcome().Unwrap(); got != 5 || seen != 5 {
		t.Fatalf("Ensure must observe and pass through, got %d (seen %d)", got, seen)
	}
}

func TestThen_ContextFlowsToSteps(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "threaded")

	c := Then(FromValue(ctx, 1), func(ctx context.Context, n int) outcome.Outcome[string] {
		s, _ := ctx.Value(key{}).(string)
		return outcome.Success(s)
	})
	if got := c.Outcome().Unwrap(); got != "threaded" {
		t.Fatalf("every step must receive the chain context, got %q", got)
	}
}
