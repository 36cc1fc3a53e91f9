package stack

import (
	"errors"
	"slices"
	"testing"
	"testing/quick"

	"github.com/segmentio/linked/compare"
	"github.com/segmentio/linked/container"
)

func TestStack(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *Stack[int])
	}{
		{
			scenario: "an empty stack has a length of zero",
			function: testStackEmpty,
		},

		{
			scenario: "values are popped in the reverse order they were pushed",
			function: testStackLIFO,
		},

		{
			scenario: "reading from an empty stack fails",
			function: testStackReadEmpty,
		},

		{
			scenario: "positional access counts from the top of the stack",
			function: testStackElementAt,
		},

		{
			scenario: "searching values of the stack",
			function: testStackContains,
		},

		{
			scenario: "clearing the stack removes all values",
			function: testStackClear,
		},

		{
			scenario: "the stack renders from top to bottom",
			function: testStackString,
		},

		{
			scenario: "copies of the stack preserve the order and are independent",
			function: testStackCopy,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			test.function(t, New(container.EqualFunc(compare.Equal[int])))
		})
	}
}

func testStackEmpty(t *testing.T, s *Stack[int]) {
	if !s.IsEmpty() || s.Len() != 0 || s.Index() != -1 {
		t.Errorf("wrong state of empty stack: len=%d index=%d", s.Len(), s.Index())
	}
}

func testStackLIFO(t *testing.T, s *Stack[int]) {
	pushRange(s, 0, 5)
	assertStack(t, s, 4, 3, 2, 1, 0)

	for want := 4; want >= 0; want-- {
		if v, err := s.Peek(); err != nil || v != want {
			t.Errorf("wrong value peeked: got=%d (%v) want=%d", v, err, want)
		}
		if v, err := s.Pop(); err != nil || v != want {
			t.Errorf("wrong value popped: got=%d (%v) want=%d", v, err, want)
		}
	}

	assertStack(t, s)
}

func testStackReadEmpty(t *testing.T, s *Stack[int]) {
	if _, err := s.Pop(); !errors.Is(err, container.ErrInvalidOperation) {
		t.Errorf("wrong error popping: %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, container.ErrInvalidOperation) {
		t.Errorf("wrong error peeking: %v", err)
	}
	if v, ok := s.TryPop(); ok || v != 0 {
		t.Errorf("popping an empty stack must fail: got=%d", v)
	}
	if v, ok := s.TryPeek(); ok || v != 0 {
		t.Errorf("peeking an empty stack must fail: got=%d", v)
	}
}

func testStackElementAt(t *testing.T, s *Stack[int]) {
	pushRange(s, 0, 5)

	for i := 0; i < s.Len(); i++ {
		if v, err := s.ElementAt(i); err != nil || v != 4-i {
			t.Errorf("wrong value at index %d: got=%d (%v)", i, v, err)
		}
	}

	for _, i := range []int{-1, s.Len()} {
		if _, err := s.ElementAt(i); !errors.Is(err, container.ErrOutOfRange) {
			t.Errorf("wrong error reading index %d: %v", i, err)
		}
	}
}

func testStackContains(t *testing.T, s *Stack[int]) {
	if s.Contains(0) {
		t.Error("an empty stack must not contain any value")
	}

	pushRange(s, 0, 3)

	for v := 0; v < 3; v++ {
		if !s.Contains(v) {
			t.Errorf("value %d not found", v)
		}
	}
	if s.Contains(3) {
		t.Error("value 3 found")
	}
}

func testStackClear(t *testing.T, s *Stack[int]) {
	pushRange(s, 0, 3)
	s.Clear()
	assertStack(t, s)

	s.Push(42)
	assertStack(t, s, 42)
}

func testStackString(t *testing.T, s *Stack[int]) {
	if str := s.String(); str != "[]" {
		t.Errorf("wrong rendering: got=%q want=%q", str, "[]")
	}
	pushRange(s, 1, 4)
	if str := s.String(); str != "[3, 2, 1]" {
		t.Errorf("wrong rendering: got=%q want=%q", str, "[3, 2, 1]")
	}
}

func testStackCopy(t *testing.T, s *Stack[int]) {
	if c := s.Copy(); !c.IsEmpty() {
		t.Error("the copy of an empty stack must be empty")
	}

	pushRange(s, 0, 3)
	c := s.Copy()
	assertStack(t, c, 2, 1, 0)

	c.Pop()
	c.Push(42)
	assertStack(t, s, 2, 1, 0)
	assertStack(t, c, 42, 1, 0)

	s.Clear()
	assertStack(t, c, 42, 1, 0)
}

func TestStackZeroValue(t *testing.T) {
	var s Stack[string]

	if _, ok := s.TryPop(); ok {
		t.Error("the zero-value stack must be empty")
	}

	s.Push("A")
	s.Push("B")

	if !s.Contains("A") {
		t.Error("the zero-value stack must compare values with ==")
	}
	if str := s.String(); str != "[B, A]" {
		t.Errorf("wrong rendering: got=%q want=%q", str, "[B, A]")
	}
}

func TestStackMatchesSlice(t *testing.T) {
	// Non-negative values are pushed, negative values pop.
	f := func(ops []int8) bool {
		s := New[int8]()
		r := []int8{}

		for _, op := range ops {
			if op >= 0 {
				s.Push(op)
				r = append(r, op)
				continue
			}
			v, ok := s.TryPop()
			if ok != (len(r) != 0) {
				return false
			}
			if ok {
				if v != r[len(r)-1] {
					return false
				}
				r = r[:len(r)-1]
			}
		}

		slices.Reverse(r)
		return s.Len() == len(r) && slices.Equal(s.ToSlice(), r)
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func pushRange(s *Stack[int], from, to int) {
	for v := from; v < to; v++ {
		s.Push(v)
	}
}

func assertStack(t *testing.T, s *Stack[int], v ...int) {
	t.Helper()

	if n := s.Len(); n != len(v) {
		t.Errorf("stack length mismatch, expected %d but found %d", len(v), n)
	}
	if s.IsEmpty() != (len(v) == 0) {
		t.Errorf("stack emptiness mismatch, expected %t", len(v) == 0)
	}
	if str := s.ToSlice(); !slices.Equal(str, v) {
		t.Errorf("stack values mismatch, expected %v but found %v", v, str)
	}
}
