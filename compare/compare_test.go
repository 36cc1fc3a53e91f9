package compare

import "testing"

func TestEqual(t *testing.T) {
	if !Equal(42, 42) {
		t.Error("42 and 42 must be equal")
	}
	if Equal("A", "B") {
		t.Error("A and B must not be equal")
	}
}

func TestDynamic(t *testing.T) {
	type point struct{ x, y int }

	if !Dynamic(point{1, 2}, point{1, 2}) {
		t.Error("identical struct values must be equal")
	}
	if Dynamic(point{1, 2}, point{2, 1}) {
		t.Error("different struct values must not be equal")
	}
	if !Dynamic[any](nil, nil) {
		t.Error("nil interfaces must be equal")
	}
	if Dynamic[any](1, "1") {
		t.Error("values of different dynamic types must not be equal")
	}
}

func TestDynamicPanicsOnNonComparable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("comparing slices must panic")
		}
	}()
	Dynamic([]int{1}, []int{1})
}
