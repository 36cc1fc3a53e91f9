// Package stack contains the implementation of a type-safe LIFO stack backed
// by a singly-linked list.
package stack

import (
	"fmt"
	"iter"

	"github.com/segmentio/linked/compare"
	"github.com/segmentio/linked/container"
)

type frame[T any] struct {
	next  *frame[T]
	value T
}

// Stack values are last-in first-out containers of values of type T.
//
// The zero-value is a valid, empty stack, comparing values with
// compare.Dynamic.
type Stack[T any] struct {
	equal func(T, T) bool
	top   *frame[T]
	len   int
}

// New constructs a new, empty stack configured with the list of options passed
// as arguments.
func New[T any](options ...container.Option[T]) *Stack[T] {
	config := container.DefaultConfig[T]()
	config.Apply(options...)
	return &Stack[T]{equal: config.Equal}
}

// IsEmpty returns true if the stack contains no values.
func (s *Stack[T]) IsEmpty() bool { return s.len == 0 }

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int { return s.len }

// Index returns the highest addressable index of the stack, which is -1 when
// the stack is empty.
func (s *Stack[T]) Index() int { return s.len - 1 }

// Clear removes all values from the stack.
//
// Complexity: O(1)
func (s *Stack[T]) Clear() {
	s.top = nil
	s.len = 0
}

// Push inserts v at the top of the stack.
//
// Complexity: O(1)
func (s *Stack[T]) Push(v T) {
	s.top = &frame[T]{next: s.top, value: v}
	s.len++
}

// Pop removes the value at the top of the stack and returns it. The method
// returns an error wrapping container.ErrInvalidOperation if the stack is
// empty.
//
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, error) {
	v, ok := s.pop()
	if !ok {
		return v, errEmpty
	}
	return v, nil
}

// TryPop is like Pop but returns false instead of an error when the stack is
// empty.
//
// Complexity: O(1)
func (s *Stack[T]) TryPop() (T, bool) { return s.pop() }

// Peek returns the value at the top of the stack. The method returns an error
// wrapping container.ErrInvalidOperation if the stack is empty.
//
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, error) {
	v, ok := s.peek()
	if !ok {
		return v, errEmpty
	}
	return v, nil
}

// TryPeek is like Peek but returns false instead of an error when the stack is
// empty.
//
// Complexity: O(1)
func (s *Stack[T]) TryPeek() (T, bool) { return s.peek() }

// ElementAt returns the value at index i, the value at index zero being the
// top of the stack. The method returns an error wrapping
// container.ErrOutOfRange if i is not in [0, Index()].
//
// Complexity: O(n)
func (s *Stack[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= s.len {
		var zero T
		return zero, container.OutOfRange(i, 0, s.len-1)
	}
	f := s.top
	for k := 0; k < i; k++ {
		f = f.next
	}
	return f.value, nil
}

// Contains returns true if a value of the stack is equal to v.
//
// Complexity: O(n)
func (s *Stack[T]) Contains(v T) bool {
	equal := s.equal
	if equal == nil {
		equal = compare.Dynamic[T]
	}
	for f := s.top; f != nil; f = f.next {
		if equal(f.value, v) {
			return true
		}
	}
	return false
}

// ToSlice returns the values of the stack, from top to bottom, in a newly
// allocated slice of length Len().
//
// Complexity: O(n)
func (s *Stack[T]) ToSlice() []T {
	values := make([]T, 0, s.len)
	for v := range s.Values() {
		values = append(values, v)
	}
	return values
}

// Copy returns a new stack holding the same values as s, in the same order.
// Popping values from the copy yields them in the same sequence as popping
// them from s.
//
// Complexity: O(n)
func (s *Stack[T]) Copy() *Stack[T] {
	c := &Stack[T]{equal: s.equal, len: s.len}
	link := &c.top
	for f := s.top; f != nil; f = f.next {
		*link = &frame[T]{value: f.value}
		link = &(*link).next
	}
	return c
}

// String returns a representation of the stack values, from top to bottom,
// formatted as "[v0, v1, ..., vn]", or "[]" when the stack is empty.
func (s *Stack[T]) String() string {
	return container.Format(s.Values())
}

// Values returns an iterator over the values of the stack, from top to
// bottom.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for f := s.top; f != nil; f = f.next {
			if !yield(f.value) {
				break
			}
		}
	}
}

var errEmpty = fmt.Errorf("%w: the stack is empty", container.ErrInvalidOperation)

func (s *Stack[T]) peek() (v T, ok bool) {
	if s.top != nil {
		v, ok = s.top.value, true
	}
	return v, ok
}

func (s *Stack[T]) pop() (v T, ok bool) {
	if f := s.top; f != nil {
		s.top = f.next
		s.len--
		v, ok = f.value, true
	}
	return v, ok
}
