// Package queue contains the implementation of a type-safe FIFO queue backed
// by a singly-linked list.
package queue

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

// Queue values are first-in first-out containers of values of type T.
//
// The frames of the queue form a ring closed by two sentinels: the read
// sentinel links to the oldest value, and the write sentinel links to the
// newest value, which itself links back to the write sentinel. When the queue
// is empty the two sentinels link to each other.
//
// The zero-value is a valid, empty queue, comparing values with
// compare.Dynamic. Queues must not be copied after first use.
type Queue[T any] struct {
	equal func(T, T) bool
	read  frame[T]
	write frame[T]
	len   int
}

// New constructs a new, empty queue configured with the list of options passed
// as arguments.
func New[T any](options ...container.Option[T]) *Queue[T] {
	config := container.DefaultConfig[T]()
	config.Apply(options...)
	q := new(Queue[T])
	q.equal = config.Equal
	q.init()
	return q
}

func (q *Queue[T]) init() {
	q.read.next = &q.write
	q.write.next = &q.read
	q.len = 0
}

func (q *Queue[T]) lazyInit() {
	if q.read.next == nil {
		q.init()
	}
}

// IsEmpty returns true if the queue contains no values.
func (q *Queue[T]) IsEmpty() bool { return q.len == 0 }

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int { return q.len }

// Index returns the highest addressable index of the queue, which is -1 when
// the queue is empty.
func (q *Queue[T]) Index() int { return q.len - 1 }

// Clear removes all values from the queue.
//
// Complexity: O(1)
func (q *Queue[T]) Clear() { q.init() }

// Enqueue inserts v at the back of the queue.
//
// Complexity: O(1)
func (q *Queue[T]) Enqueue(v T) {
	q.lazyInit()
	f := &frame[T]{next: &q.write, value: v}
	// The write sentinel links to the read sentinel when the queue is empty,
	// so the first value gets linked from the read side.
	q.write.next.next = f
	q.write.next = f
	q.len++
}

// Dequeue removes the value at the front of the queue and returns it. The
// method returns an error wrapping container.ErrInvalidOperation if the queue
// is empty.
//
// Complexity: O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	v, ok := q.dequeue()
	if !ok {
		return v, errEmpty
	}
	return v, nil
}

// TryDequeue is like Dequeue but returns false instead of an error when the
// queue is empty.
//
// Complexity: O(1)
func (q *Queue[T]) TryDequeue() (T, bool) { return q.dequeue() }

// Peek returns the value at the front of the queue. The method returns an
// error wrapping container.ErrInvalidOperation if the queue is empty.
//
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, error) {
	v, ok := q.peek()
	if !ok {
		return v, errEmpty
	}
	return v, nil
}

// TryPeek is like Peek but returns false instead of an error when the queue is
// empty.
//
// Complexity: O(1)
func (q *Queue[T]) TryPeek() (T, bool) { return q.peek() }

// ElementAt returns the value at index i, the value at index zero being the
// oldest of the queue. The method returns an error wrapping
// container.ErrOutOfRange if i is not in [0, Index()].
//
// Complexity: O(n)
func (q *Queue[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= q.len {
		var zero T
		return zero, container.OutOfRange(i, 0, q.len-1)
	}
	f := q.read.next
	for k := 0; k < i; k++ {
		f = f.next
	}
	return f.value, nil
}

// Contains returns true if a value of the queue is equal to v.
//
// Complexity: O(n)
func (q *Queue[T]) Contains(v T) bool {
	equal := q.equal
	if equal == nil {
		equal = compare.Dynamic[T]
	}
	for x := range q.Values() {
		if equal(x, v) {
			return true
		}
	}
	return false
}

// ToSlice returns the values of the queue, from oldest to newest, in a newly
// allocated slice of length Len().
//
// Complexity: O(n)
func (q *Queue[T]) ToSlice() []T {
	values := make([]T, 0, q.len)
	for v := range q.Values() {
		values = append(values, v)
	}
	return values
}

// Copy returns a new queue holding the same values as q, in the same order.
//
// Complexity: O(n)
func (q *Queue[T]) Copy() *Queue[T] {
	c := &Queue[T]{equal: q.equal}
	c.init()
	for v := range q.Values() {
		c.Enqueue(v)
	}
	return c
}

// String returns a representation of the queue values, from oldest to newest,
// formatted as "[v0, v1, ..., vn]", or "[]" when the queue is empty.
func (q *Queue[T]) String() string {
	return container.Format(q.Values())
}

// Values returns an iterator over the values of the queue, from oldest to
// newest.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		q.lazyInit()
		for f := q.read.next; f != &q.write; f = f.next {
			if !yield(f.value) {
				break
			}
		}
	}
}

var errEmpty = fmt.Errorf("%w: the queue is empty", container.ErrInvalidOperation)

func (q *Queue[T]) peek() (v T, ok bool) {
	if q.len != 0 {
		v, ok = q.read.next.value, true
	}
	return v, ok
}

func (q *Queue[T]) dequeue() (v T, ok bool) {
	if q.len != 0 {
		f := q.read.next
		q.read.next = f.next
		q.len--
		if q.len == 0 {
			q.write.next = &q.read
		}
		v, ok = f.value, true
	}
	return v, ok
}
