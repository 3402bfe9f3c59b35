package match

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/vary/pkg/vary"
	"github.com/ib-77/vary/pkg/vary/opt"
	"github.com/ib-77/vary/pkg/vary/outcome"
)

func mustMatch(t *testing.T, subject, spec any) any {
	t.Helper()
	out, err := Match(subject, spec)
	if err != nil {
		t.Fatalf("unexpected match failure: %v", err)
	}
	return out
}

func TestChained_FirstMatchWins(t *testing.T) {
	t.Parallel()

	spec := Cases{
		When(5, "five"),
		When(Pred(func(x int) bool { return x < 10 }), "lt10"),
		Otherwise("other"),
	}

	if got := mustMatch(t, 5, spec); got != "five" {
		t.Fatalf("literal precedence: expected \"five\", got %v", got)
	}
	if got := mustMatch(t, 7, spec); got != "lt10" {
		t.Fatalf("expected \"lt10\", got %v", got)
	}
	if got := mustMatch(t, 11, spec); got != "other" {
		t.Fatalf("expected the default, got %v", got)
	}
}

func TestChained_FunctionResultReceivesSubject(t *testing.T) {
	t.Parallel()

	spec := Cases{
		When(Pred(func(x int) bool { return x%2 == 0 }), func(v any) any {
			return fmt.Sprintf("even:%d", v)
		}),
		Otherwise(func(v any) any { return fmt.Sprintf("odd:%d", v) }),
	}

	if got := mustMatch(t, 4, spec); got != "even:4" {
		t.Fatalf("expected computed result, got %v", got)
	}
	if got := mustMatch(t, 3, spec); got != "odd:3" {
		t.Fatalf("the bare default receives the subject, got %v", got)
	}
}

func TestChained_TypedPredicatePattern(t *testing.T) {
	t.Parallel()

	spec := Cases{
		When(func(s string) bool { return len(s) > 3 }, "long"),
		When(func(s string) bool { return true }, "short"),
	}

	if got := mustMatch(t, "abcdef", spec); got != "long" {
		t.Fatalf("expected the typed predicate to hold, got %v", got)
	}
	// A subject of the wrong dynamic type never matches a typed predicate.
	if _, err := Match(42, spec); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected exhaustion, got %v", err)
	}
}

func TestWildcard(t *testing.T) {
	t.Parallel()

	spec := Cases{When(Any, "anything")}
	for _, subject := range []any{1, "x", nil, opt.Present(3), []int{1}} {
		if got := mustMatch(t, subject, spec); got != "anything" {
			t.Fatalf("wildcard must match %v", subject)
		}
	}
}

func TestArrayPattern_PartialPositional(t *testing.T) {
	t.Parallel()

	pattern := []any{1, Any, 3}

	if !Matches(pattern, []int{1, 2, 3}) {
		t.Fatalf("declared positions must match with wildcards filling gaps")
	}
	if !Matches(pattern, []int{1, 99, 3, 4, 5}) {
		t.Fatalf("extra trailing subject elements are ignored")
	}
	if Matches(pattern, []int{1, 2}) {
		t.Fatalf("a subject shorter than the declared positions fails")
	}
	if Matches(pattern, []int{1, 2, 4}) {
		t.Fatalf("a mismatched position fails")
	}
	if Matches(pattern, "not a slice") {
		t.Fatalf("a non-sequence subject fails")
	}
}

func TestRecordPattern_DeclaredKeysOnly(t *testing.T) {
	t.Parallel()

	pattern := map[string]any{"name": "ada", "age": Pred(func(n int) bool { return n > 18 })}

	if !Matches(pattern, map[string]any{"name": "ada", "age": 36, "role": "admin"}) {
		t.Fatalf("undeclared subject keys are ignored")
	}
	if Matches(pattern, map[string]any{"name": "ada"}) {
		t.Fatalf("a missing declared key fails")
	}
	if Matches(pattern, map[string]any{"name": "bob", "age": 36}) {
		t.Fatalf("a mismatched declared key fails")
	}
}

func TestRecordPattern_AgainstStruct(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string
		Age  int
	}

	pattern := map[string]any{"Name": "ada"}
	if !Matches(pattern, user{Name: "ada", Age: 36}) {
		t.Fatalf("record patterns match struct fields by name")
	}
	if !Matches(pattern, &user{Name: "ada"}) {
		t.Fatalf("pointer subjects are dereferenced")
	}
	if Matches(pattern, user{Name: "bob"}) {
		t.Fatalf("a mismatched field fails")
	}
}

func TestNestedRecordPattern(t *testing.T) {
	t.Parallel()

	pattern := map[string]any{
		"meta": map[string]any{"version": 2},
		"tags": []any{"a", Any},
	}
	subject := map[string]any{
		"meta": map[string]any{"version": 2, "build": "x"},
		"tags": []string{"a", "b", "c"},
		"id":   9,
	}
	if !Matches(pattern, subject) {
		t.Fatalf("nested record and sequence patterns must recurse")
	}
}

func TestContainerPattern_VariantAndPayload(t *testing.T) {
	t.Parallel()

	spec := Cases{
		When(opt.Present(5), "five"),
		When(opt.Present[any](Any), "present"),
		When(opt.Absent[any](), "absent"),
	}

	if got := mustMatch(t, opt.Present(5), spec); got != "five" {
		t.Fatalf("payload patterns recurse, got %v", got)
	}
	if got := mustMatch(t, opt.Present(6), spec); got != "present" {
		t.Fatalf("wildcard payload matches any Present, got %v", got)
	}
	if got := mustMatch(t, opt.Absent[int](), spec); got != "absent" {
		t.Fatalf("Absent matches only Absent, got %v", got)
	}
	if _, err := Match(5, spec); !errors.Is(err, ErrExhausted) {
		t.Fatalf("a bare value is not a container, got %v", err)
	}
}

func TestContainerPattern_FailurePayloadAlignment(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	spec := Cases{
		When(outcome.Failure[any](cause), "that error"),
		When(outcome.Failure[any](AnyErr), "some failure"),
		When(outcome.Success[any](Any), "success"),
	}

	if got := mustMatch(t, outcome.Failure[int](cause), spec); got != "that error" {
		t.Fatalf("failure payload must align, got %v", got)
	}
	if got := mustMatch(t, outcome.Failure[int](errors.New("other")), spec); got != "some failure" {
		t.Fatalf("expected the predicate branch, got %v", got)
	}
	if got := mustMatch(t, outcome.Success(1), spec); got != "success" {
		t.Fatalf("expected the success branch, got %v", got)
	}
}

func TestPredicate_SeesContainerNotPayload(t *testing.T) {
	t.Parallel()

	spec := Cases{
		When(Pred(func(o opt.Option[int]) bool { return o.IsPresent() }), "container seen"),
	}
	if got := mustMatch(t, opt.Present(1), spec); got != "container seen" {
		t.Fatalf("a top-level predicate receives the container itself, got %v", got)
	}
}

func TestFnPattern_IdentityWithoutInvocation(t *testing.T) {
	t.Parallel()

	invoked := false
	g := func(x int) int { invoked = true; return x }
	h := func(x int) int { invoked = true; return x }

	if !Matches(Fn(g), Fn(g)) {
		t.Fatalf("a wrapped function matches its own identity")
	}
	if !Matches(Fn(g), g) {
		t.Fatalf("a raw function subject matches by identity")
	}
	if Matches(Fn(h), g) {
		t.Fatalf("behaviorally identical functions are distinct identities")
	}
	if invoked {
		t.Fatalf("matching must never invoke either function")
	}
}

func TestMapped_TagDispatch(t *testing.T) {
	t.Parallel()

	spec := Branches{
		vary.TagSuccess: func(v any) any { return fmt.Sprintf("ok:%v", v) },
		vary.TagFailure: func(v any) any { return fmt.Sprintf("err:%v", v) },
	}

	if got := mustMatch(t, outcome.Success(3), spec); got != "ok:3" {
		t.Fatalf("tag branches receive the unwrapped payload, got %v", got)
	}
	if got := mustMatch(t, outcome.Failure[int](errors.New("boom")), spec); got != "err:boom" {
		t.Fatalf("expected the failure branch, got %v", got)
	}
}

func TestMapped_UnionTolerance(t *testing.T) {
	t.Parallel()

	// One specification spanning both container families.
	spec := Branches{
		vary.TagPresent: "present",
		vary.TagAbsent:  "absent",
		vary.TagSuccess: "success",
		vary.TagFailure: "failure",
	}

	if got := mustMatch(t, opt.Present(1), spec); got != "present" {
		t.Fatalf("expected the optional family branch, got %v", got)
	}
	if got := mustMatch(t, outcome.Failure[int](nil), spec); got != "failure" {
		t.Fatalf("expected the outcome family branch, got %v", got)
	}
}

func TestMapped_ClosestDefaultScoping(t *testing.T) {
	t.Parallel()

	subject := outcome.Success(opt.Present(outcome.Failure[int](errors.New("x"))))

	inner := Branches{
		vary.TagSuccess: func(v any) any { return "deep ok" },
		vary.TagDefault: "inner",
	}
	spec := Branches{
		vary.TagSuccess: Branches{vary.TagPresent: inner},
		vary.TagDefault: "outer",
	}

	if got := mustMatch(t, subject, spec); got != "inner" {
		t.Fatalf("the nearest enclosing default wins, got %v", got)
	}

	// Without the inner default, absence propagates outward.
	spec = Branches{
		vary.TagSuccess: Branches{
			vary.TagPresent: Branches{vary.TagSuccess: "deep ok"},
		},
		vary.TagDefault: "outer",
	}
	if got := mustMatch(t, subject, spec); got != "outer" {
		t.Fatalf("absence must propagate to the next enclosing default, got %v", got)
	}
}

func TestMapped_NestedChainedSpec(t *testing.T) {
	t.Parallel()

	spec := Branches{
		vary.TagPresent: Cases{
			When(Pred(func(n int) bool { return n > 10 }), "big"),
			Otherwise("small"),
		},
		vary.TagAbsent: "nothing",
	}

	if got := mustMatch(t, opt.Present(99), spec); got != "big" {
		t.Fatalf("nested chained specs dispatch on the payload, got %v", got)
	}
	if got := mustMatch(t, opt.Present(2), spec); got != "small" {
		t.Fatalf("expected the nested default, got %v", got)
	}
	if got := mustMatch(t, opt.Absent[int](), spec); got != "nothing" {
		t.Fatalf("expected the absent branch, got %v", got)
	}
}

func TestMapped_NonContainerSubjectFallsToDefault(t *testing.T) {
	t.Parallel()

	spec := Branches{
		vary.TagPresent: "present",
		vary.TagDefault: "unknown subject",
	}

	if got := mustMatch(t, "not a container", spec); got != "unknown subject" {
		t.Fatalf("a tagless subject reaches only the default, got %v", got)
	}
	if got := mustMatch(t, 42, spec); got != "unknown subject" {
		t.Fatalf("a tagless subject reaches only the default, got %v", got)
	}

	// Without a default, a tagless subject exhausts the specification.
	if _, err := Match(42, Branches{vary.TagPresent: "present"}); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestChained_DefaultMustBeTrailing(t *testing.T) {
	t.Parallel()

	spec := Cases{Otherwise("shadow"), When(1, "one")}
	if _, err := Match(1, spec); err == nil || errors.Is(err, ErrExhausted) {
		t.Fatalf("a non-trailing default must not silently shadow later cases, got %v", err)
	}
}

func TestNilPattern_NestedOnly(t *testing.T) {
	t.Parallel()

	if !Matches([]any{1, nil}, []any{1, nil}) {
		t.Fatalf("a nested nil pattern matches a nil element")
	}
	if Matches([]any{1, nil}, []any{1, 2}) {
		t.Fatalf("a nested nil pattern rejects a non-nil element")
	}
	if !Matches(map[string]any{"err": nil}, map[string]any{"err": nil, "ok": true}) {
		t.Fatalf("a nested nil pattern matches a nil record value")
	}
}

func TestExhaustion(t *testing.T) {
	t.Parallel()

	if _, err := Match(42, Cases{When(1, "one")}); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if _, err := Match(opt.Present(1), Branches{vary.TagAbsent: "absent"}); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted for a missing tag, got %v", err)
	}

	// Exhaustion is detected before any branch result is computed, deferred
	// results included.
	computed := false
	_, err := Match(42, Cases{
		When(1, func(any) any { computed = true; return nil }),
	})
	if !errors.Is(err, ErrExhausted) || computed {
		t.Fatalf("exhaustion must not compute branch results")
	}
}

func TestMustMatch_PanicsOnExhaustion(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrExhausted) {
			t.Fatalf("expected ErrExhausted panic, got %v", err)
		}
	}()
	MustMatch(42, Cases{When(1, "one")})
}

func TestInvalidSpecification(t *testing.T) {
	t.Parallel()

	if _, err := Match(1, 42); err == nil || errors.Is(err, ErrExhausted) {
		t.Fatalf("an invalid specification is its own failure, got %v", err)
	}
}
