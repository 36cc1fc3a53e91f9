// Package list contains the implementation of a type-safe doubly-linked list,
// with cursors to walk and edit the list without seeking positions again
// from its ends.
//
// The list is built around a pair of sentinel nodes which never carry values
// and never leave the list. The chain of nodes always loops from the head
// sentinel to the tail sentinel, so inserting or removing a node never has to
// check for missing neighbors.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list, then the program can start inserting values:
//
//	l := list.List[string]{}
//	l.Append("B")
//	l.Append("C")
//	l.Prepend("A")
//
//	for i, v := range l.All() {
//		...
//	}
//
// The sentinels are stored in the List value, which therefore must not be
// copied after first use. Use Copy to duplicate a list.
package list

import (
	"fmt"
	"iter"

	"github.com/segmentio/linked/compare"
	"github.com/segmentio/linked/container"
)

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

// List values are containers of values of type T which support insertion and
// removal at the front and back of the list in O(1), and positional access in
// O(n).
//
// Positional operations seek the node at the requested index from whichever
// end of the list is closer, so they never walk more than half of the list.
//
// The zero-value is a valid, empty list, comparing values with
// compare.Dynamic.
type List[T any] struct {
	equal func(T, T) bool
	head  node[T]
	tail  node[T]
	len   int
	// Incremented on every structural modification, cursors compare it with
	// the value they captured to detect that they went out of sync.
	gen uint64
}

// New constructs a new, empty list configured with the list of options passed
// as arguments.
func New[T any](options ...container.Option[T]) *List[T] {
	config := container.DefaultConfig[T]()
	config.Apply(options...)
	l := new(List[T])
	l.equal = config.Equal
	l.init()
	return l
}

func (l *List[T]) init() {
	l.head.next = &l.tail
	l.tail.prev = &l.head
	l.len = 0
}

func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.init()
	}
}

// IsEmpty returns true if the list contains no values.
//
// Complexity: O(1)
func (l *List[T]) IsEmpty() bool { return l.len == 0 }

// Len returns the number of values in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.len }

// Index returns the highest addressable index of the list, which is -1 when
// the list is empty.
//
// Complexity: O(1)
func (l *List[T]) Index() int { return l.len - 1 }

// Clear removes all values from the list. Cursors obtained from the list
// before the call become invalid.
//
// Complexity: O(1)
func (l *List[T]) Clear() {
	l.init()
	l.gen++
}

// Append inserts v at the back of the list.
//
// Complexity: O(1)
func (l *List[T]) Append(v T) {
	l.lazyInit()
	l.insertAfter(l.tail.prev, v)
}

// Prepend inserts v at the front of the list.
//
// Complexity: O(1)
func (l *List[T]) Prepend(v T) {
	l.lazyInit()
	l.insertAfter(&l.head, v)
}

// First returns the value at the front of the list. The method returns an
// error wrapping container.ErrInvalidOperation if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) First() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errEmpty
	}
	return l.head.next.value, nil
}

// Last returns the value at the back of the list. The method returns an error
// wrapping container.ErrInvalidOperation if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) Last() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errEmpty
	}
	return l.tail.prev.value, nil
}

// ElementAt returns the value at index i. The method returns an error wrapping
// container.ErrOutOfRange if i is not in [0, Index()].
//
// Complexity: O(n)
func (l *List[T]) ElementAt(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Modify replaces the value at index i by v. The method returns an error
// wrapping container.ErrOutOfRange if i is not in [0, Index()].
//
// Complexity: O(n)
func (l *List[T]) Modify(i int, v T) error {
	n, err := l.nodeAt(i)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// InsertAt inserts v so it takes index i, values previously at index i or
// above move one position toward the back of the list.
//
// The index may be equal to Len(), in which case v is appended to the list.
// The method returns an error wrapping container.ErrOutOfRange if i is not in
// [0, Len()].
//
// Complexity: O(n)
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.len {
		return container.OutOfRange(i, 0, l.len)
	}
	l.lazyInit()
	if i == l.len {
		l.insertAfter(l.tail.prev, v)
	} else {
		l.insertAfter(l.seek(i).prev, v)
	}
	return nil
}

// DeleteFirst removes the value at the front of the list and returns it. The
// method returns an error wrapping container.ErrInvalidOperation if the list
// is empty.
//
// Complexity: O(1)
func (l *List[T]) DeleteFirst() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errEmpty
	}
	n := l.head.next
	l.remove(n)
	return n.value, nil
}

// DeleteLast removes the value at the back of the list and returns it. The
// method returns an error wrapping container.ErrInvalidOperation if the list
// is empty.
//
// Complexity: O(1)
func (l *List[T]) DeleteLast() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, errEmpty
	}
	n := l.tail.prev
	l.remove(n)
	return n.value, nil
}

// DeleteAt removes the value at index i and returns it. The method returns an
// error wrapping container.ErrOutOfRange if i is not in [0, Index()].
//
// Complexity: O(n)
func (l *List[T]) DeleteAt(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	l.remove(n)
	return n.value, nil
}

// DeleteAll removes all values equal to v from the list, and returns true if
// at least one value was removed.
//
// Complexity: O(n)
func (l *List[T]) DeleteAll(v T) (deleted bool) {
	equal := l.equalFunc()

	for n := l.front(); n != &l.tail; {
		next := n.next
		if equal(n.value, v) {
			l.remove(n)
			deleted = true
		}
		n = next
	}

	return deleted
}

// DeleteFirstOccurrence removes the value equal to v which is the closest to
// the front of the list, and returns true if such a value existed.
//
// Complexity: O(n)
func (l *List[T]) DeleteFirstOccurrence(v T) bool {
	if n := l.find(v, true); n != nil {
		l.remove(n)
		return true
	}
	return false
}

// DeleteLastOccurrence removes the value equal to v which is the closest to
// the back of the list, and returns true if such a value existed.
//
// Complexity: O(n)
func (l *List[T]) DeleteLastOccurrence(v T) bool {
	if n := l.find(v, false); n != nil {
		l.remove(n)
		return true
	}
	return false
}

// Contains returns true if a value of the list is equal to v.
//
// Complexity: O(n)
func (l *List[T]) Contains(v T) bool {
	return l.find(v, true) != nil
}

// ContainsFrom is like Contains but searches from the back of the list when
// fromFirst is false. Searching from the end which is expected to be closer to
// v returns faster.
//
// Complexity: O(n)
func (l *List[T]) ContainsFrom(v T, fromFirst bool) bool {
	return l.find(v, fromFirst) != nil
}

// ToSlice returns the values of the list, from front to back, in a newly
// allocated slice of length Len().
//
// Complexity: O(n)
func (l *List[T]) ToSlice() []T {
	values := make([]T, 0, l.len)
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}

// Copy returns a new list holding the same values as l, in the same order, and
// using the same equality function. The lists share no nodes, modifying one
// of them never affects the other.
//
// Complexity: O(n)
func (l *List[T]) Copy() *List[T] {
	c := &List[T]{equal: l.equal}
	c.init()
	for v := range l.Values() {
		c.insertAfter(c.tail.prev, v)
	}
	return c
}

// String returns a representation of the list values formatted as
// "[v0, v1, ..., vn]", or "[]" when the list is empty.
func (l *List[T]) String() string {
	return container.Format(l.Values())
}

// All returns an iterator over the indexes and values of the list, from front
// to back.
//
// The list must not be structurally modified during the iteration, except by
// deleting the value being presented.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.front(); n != &l.tail; n = n.next {
			if !yield(i, n.value) {
				break
			}
			i++
		}
	}
}

// Values returns an iterator over the values of the list, from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.front(); n != &l.tail; n = n.next {
			if !yield(n.value) {
				break
			}
		}
	}
}

// Backward returns an iterator over the indexes and values of the list, from
// back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.len - 1
		for n := l.back(); n != &l.head; n = n.prev {
			if !yield(i, n.value) {
				break
			}
			i--
		}
	}
}

// Cursor returns a new cursor positioned on the first value of the list. The
// method returns an error wrapping container.ErrInvalidOperation if the list
// is empty.
//
// Complexity: O(1)
func (l *List[T]) Cursor() (*Cursor[T], error) {
	if l.len == 0 {
		return nil, fmt.Errorf("%w: cannot position a cursor on an empty list", container.ErrInvalidOperation)
	}
	return newCursor(l, 0, l.head.next), nil
}

// CursorAt returns a new cursor positioned on the value at index i. The method
// returns an error wrapping container.ErrOutOfRange if i is not in
// [0, Index()].
//
// Complexity: O(n)
func (l *List[T]) CursorAt(i int) (*Cursor[T], error) {
	n, err := l.nodeAt(i)
	if err != nil {
		return nil, err
	}
	return newCursor(l, i, n), nil
}

var errEmpty = fmt.Errorf("%w: the list is empty", container.ErrInvalidOperation)

func (l *List[T]) front() *node[T] {
	l.lazyInit()
	return l.head.next
}

func (l *List[T]) back() *node[T] {
	l.lazyInit()
	return l.tail.prev
}

func (l *List[T]) equalFunc() func(T, T) bool {
	if l.equal == nil {
		return compare.Dynamic[T]
	}
	return l.equal
}

func (l *List[T]) find(v T, fromFirst bool) *node[T] {
	equal := l.equalFunc()

	if fromFirst {
		for n := l.front(); n != &l.tail; n = n.next {
			if equal(n.value, v) {
				return n
			}
		}
	} else {
		for n := l.back(); n != &l.head; n = n.prev {
			if equal(n.value, v) {
				return n
			}
		}
	}

	return nil
}

func (l *List[T]) nodeAt(i int) (*node[T], error) {
	if i < 0 || i >= l.len {
		return nil, container.OutOfRange(i, 0, l.len-1)
	}
	return l.seek(i), nil
}

// seek returns the node at index i, which must be in [0, len).
func (l *List[T]) seek(i int) *node[T] {
	if i < l.len/2 {
		n := l.head.next
		for k := 0; k < i; k++ {
			n = n.next
		}
		return n
	}
	n := l.tail.prev
	for k := l.len - 1; k > i; k-- {
		n = n.prev
	}
	return n
}

func (l *List[T]) insertAfter(at *node[T], v T) *node[T] {
	n := &node[T]{prev: at, next: at.next, value: v}
	at.next.prev = n
	at.next = n
	l.len++
	l.gen++
	return n
}

// remove unlinks n from the list. The links of n are left intact since a stale
// cursor may still reference it.
func (l *List[T]) remove(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.len--
	l.gen++
}
