package opt

import "testing"

func TestAll_AllPresent(t *testing.T) {
	t.Parallel()

	got := All(Present(1), Present(2), Present(3))
	values := got.Unwrap()
	if len(values) != 3 || values[0] != 1 || values[2] != 3 {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestAll_ShortCircuitsOnAbsent(t *testing.T) {
	t.Parallel()

	if !All(Present(1), Absent[int](), Present(3)).IsAbsent() {
		t.Fatalf("expected the first Absent to win")
	}
	if got := All[int](); len(got.Unwrap()) != 0 {
		t.Fatalf("All of nothing is an empty collection")
	}
}

func TestAny(t *testing.T) {
	t.Parallel()

	if got := Any(Absent[int](), Present(5), Present(6)); got.Unwrap() != 5 {
		t.Fatalf("expected the first Present")
	}
	if !Any(Absent[int](), Absent[int]()).IsAbsent() {
		t.Fatalf("expected Absent when nothing is present")
	}
}
