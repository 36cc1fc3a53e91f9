package list

import (
	"fmt"

	"github.com/segmentio/linked/container"
)

// Cursor is a movable position in a List, akin to the read-write head of a
// tape. Cursors walk the list one link at a time and edit it around their
// position, avoiding to seek the position again from the ends of the list
// after each operation.
//
// A cursor can remember one extra position, called its saved state, and come
// back to it in constant time with LoadState or SwitchState.
//
// Cursors remain valid as long as the list is only modified structurally
// through them. Inserting or removing values through the list, or through
// another cursor, invalidates the cursor: Safe returns false and operations
// that would read the list report container.ErrInvalidCursor. The saved state
// is tracked the same way, and cannot be loaded after such a modification. A
// cursor can be resynchronized with Fix once the program has repositioned it,
// at the risk of reading values at a stale position. Modifying values in place
// does not invalidate cursors.
//
// After a cursor deletes the last remaining value of its list, it is detached:
// its current index is -1 and it rests in front of the first position. A
// detached cursor can still insert with InsertAsNext and move forward once the
// list has values again.
type Cursor[T any] struct {
	list   *List[T]
	curr   *node[T]
	index  int
	length int
	gen    uint64

	saved       *node[T]
	savedIndex  int
	savedLength int
	savedGen    uint64
}

func newCursor[T any](l *List[T], i int, n *node[T]) *Cursor[T] {
	c := &Cursor[T]{
		list:       l,
		curr:       n,
		index:      i,
		savedIndex: -1,
	}
	c.sync()
	return c
}

func (c *Cursor[T]) sync() {
	c.length = c.list.len
	c.gen = c.list.gen
}

func (c *Cursor[T]) check() error {
	if !c.Safe() {
		return fmt.Errorf("%w: cursor at index %d", container.ErrInvalidCursor, c.index)
	}
	return nil
}

func (c *Cursor[T]) checkAttached() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.index < 0 {
		return fmt.Errorf("%w: the cursor is detached from its list", container.ErrInvalidOperation)
	}
	return nil
}

// HasState returns true if the cursor holds a saved state. It does not tell
// whether the saved position is still part of the list.
func (c *Cursor[T]) HasState() bool { return c.saved != nil && c.savedIndex != -1 }

// SaveState saves the current position of the cursor, replacing the previous
// saved state. A detached cursor has no position to save, calling SaveState
// on it discards the saved state.
func (c *Cursor[T]) SaveState() {
	if c.index < 0 {
		c.InvalidateState()
		return
	}
	c.saved, c.savedIndex = c.curr, c.index
	c.savedLength, c.savedGen = c.length, c.gen
}

// LoadState moves the cursor back to its saved position and resynchronizes it
// with the length of the list. The saved state is retained.
//
// The method returns an error wrapping container.ErrInvalidOperation if the
// cursor has no saved state, or container.ErrInvalidCursor if the list was
// structurally modified by another path than the cursor since the state was
// saved.
func (c *Cursor[T]) LoadState() error {
	if !c.HasState() {
		return errNoState
	}
	if c.savedGen != c.list.gen {
		return fmt.Errorf("%w: saved state at index %d", container.ErrInvalidCursor, c.savedIndex)
	}
	c.curr, c.index = c.saved, c.savedIndex
	c.sync()
	return nil
}

// SwitchState exchanges the current position of the cursor with its saved
// position.
//
// The method returns an error wrapping container.ErrInvalidOperation if the
// cursor has no saved state.
func (c *Cursor[T]) SwitchState() error {
	if !c.HasState() {
		return errNoState
	}
	c.curr, c.saved = c.saved, c.curr
	c.index, c.savedIndex = c.savedIndex, c.index
	c.length, c.savedLength = c.savedLength, c.length
	c.gen, c.savedGen = c.savedGen, c.gen
	return nil
}

// StateIndex returns the index of the saved position, or -1 if the cursor has
// no saved state.
func (c *Cursor[T]) StateIndex() int { return c.savedIndex }

// InvalidateState discards the saved state of the cursor.
func (c *Cursor[T]) InvalidateState() {
	c.saved, c.savedIndex = nil, -1
	c.savedLength, c.savedGen = 0, 0
}

// Safe returns true if the list was not structurally modified since the cursor
// was last synchronized with it, other than by the cursor itself.
func (c *Cursor[T]) Safe() bool {
	return c.length == c.list.len && c.gen == c.list.gen
}

// Fix sets the current index of the cursor to i and resynchronizes it with the
// list, making it safe again. The position of the cursor in the chain of nodes
// is not changed; Fix is meant to be used after the program knows that the
// cursor's position now has index i. The node under the cursor must still be
// part of the list, Fix cannot verify it.
//
// The method returns an error wrapping container.ErrOutOfRange if i is not in
// [0, Index()] of the list.
func (c *Cursor[T]) Fix(i int) error {
	if i < 0 || i >= c.list.len {
		return container.OutOfRange(i, 0, c.list.len-1)
	}
	c.index = i
	c.sync()
	return nil
}

// Index returns the highest addressable index of the list as known by the
// cursor.
func (c *Cursor[T]) Index() int { return c.length - 1 }

// CurrentIndex returns the index of the cursor's position.
func (c *Cursor[T]) CurrentIndex() int { return c.index }

// HasNext returns true if there is a value after the cursor's position.
func (c *Cursor[T]) HasNext() bool { return c.index+1 < c.length }

// HasPrev returns true if there is a value before the cursor's position.
func (c *Cursor[T]) HasPrev() bool { return c.index > 0 }

// Current returns the value at the cursor's position.
func (c *Cursor[T]) Current() (T, error) {
	if err := c.checkAttached(); err != nil {
		var zero T
		return zero, err
	}
	return c.curr.value, nil
}

// Next returns the value after the cursor's position, without moving the
// cursor. The method returns an error wrapping container.ErrOutOfRange if the
// cursor is on the last value.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if err := c.check(); err != nil {
		return zero, err
	}
	if !c.HasNext() {
		return zero, container.OutOfRange(c.index+1, 0, c.Index())
	}
	return c.curr.next.value, nil
}

// Prev returns the value before the cursor's position, without moving the
// cursor. The method returns an error wrapping container.ErrOutOfRange if the
// cursor is on the first value.
func (c *Cursor[T]) Prev() (T, error) {
	var zero T
	if err := c.check(); err != nil {
		return zero, err
	}
	if !c.HasPrev() {
		return zero, container.OutOfRange(c.index-1, 0, c.Index())
	}
	return c.curr.prev.value, nil
}

// MoveToNext moves the cursor one position toward the back of the list. The
// method returns false and does not move the cursor if it was on the last
// value, or if the cursor is not safe.
//
// Complexity: O(1)
func (c *Cursor[T]) MoveToNext() bool {
	if !c.Safe() || !c.HasNext() {
		return false
	}
	c.curr = c.curr.next
	c.index++
	return true
}

// MoveToPrev moves the cursor one position toward the front of the list. The
// method returns false and does not move the cursor if it was on the first
// value, or if the cursor is not safe.
//
// Complexity: O(1)
func (c *Cursor[T]) MoveToPrev() bool {
	if !c.Safe() || !c.HasPrev() {
		return false
	}
	c.curr = c.curr.prev
	c.index--
	return true
}

// Move moves the cursor by delta positions, toward the back of the list when
// delta is positive and toward the front when it is negative. The method
// returns false and does not move the cursor if the destination is out of the
// list, or if the cursor is not safe.
//
// Complexity: O(|delta|)
func (c *Cursor[T]) Move(delta int) bool {
	if !c.Safe() {
		return false
	}
	if i := c.index + delta; i < 0 || i > c.Index() {
		return false
	}
	for ; delta > 0; delta-- {
		c.curr = c.curr.next
		c.index++
	}
	for ; delta < 0; delta++ {
		c.curr = c.curr.prev
		c.index--
	}
	return true
}

// MoveToIndex moves the cursor to index i, walking from its current position.
// The method returns false and does not move the cursor if i is not in
// [0, Index()], or if the cursor is not safe.
//
// Complexity: O(|i - CurrentIndex()|)
func (c *Cursor[T]) MoveToIndex(i int) bool {
	return c.Move(i - c.index)
}

// Delete removes the value at the cursor's position from the list.
//
// The cursor moves to the value that followed the deleted one, which now has
// the same index, and the method returns true. When the deleted value was the
// last of the list there is no such value: the cursor moves back to the new
// last value, its index decreases by one, and the method returns false.
//
// If the saved state of the cursor was on the deleted value it is discarded.
//
// Complexity: O(1)
func (c *Cursor[T]) Delete() (unchanged bool, err error) {
	if err := c.checkAttached(); err != nil {
		return false, err
	}

	n, i := c.curr, c.index
	keep := c.stateInSync()

	if i == c.Index() {
		c.curr = n.prev
		c.index--
	} else {
		c.curr = n.next
		unchanged = true
	}

	c.list.remove(n)
	c.sync()

	switch {
	case c.saved == n:
		c.InvalidateState()
	case c.saved != nil && c.savedIndex > i:
		c.savedIndex--
	}
	c.syncState(keep)

	return unchanged, nil
}

// InsertAsNext inserts v right after the cursor's position. The index of the
// cursor does not change.
//
// Complexity: O(1)
func (c *Cursor[T]) InsertAsNext(v T) error {
	if err := c.check(); err != nil {
		return err
	}
	keep := c.stateInSync()
	c.list.insertAfter(c.curr, v)
	c.sync()

	if c.saved != nil && c.savedIndex > c.index {
		c.savedIndex++
	}
	c.syncState(keep)
	return nil
}

// InsertAsPrev inserts v right before the cursor's position. The cursor stays
// on the same value, its index increases by one.
//
// Complexity: O(1)
func (c *Cursor[T]) InsertAsPrev(v T) error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	keep := c.stateInSync()
	c.list.insertAfter(c.curr.prev, v)
	c.sync()

	if c.saved != nil && c.savedIndex >= c.index {
		c.savedIndex++
	}
	c.index++
	c.syncState(keep)
	return nil
}

// Modify replaces the value at the cursor's position by v.
//
// Complexity: O(1)
func (c *Cursor[T]) Modify(v T) error {
	if err := c.checkAttached(); err != nil {
		return err
	}
	c.curr.value = v
	return nil
}

func (c *Cursor[T]) stateInSync() bool {
	return c.HasState() && c.savedLength == c.list.len && c.savedGen == c.list.gen
}

// syncState carries the saved state over a modification made by the cursor,
// a saved state which was already stale stays stale.
func (c *Cursor[T]) syncState(inSync bool) {
	if inSync && c.HasState() {
		c.savedLength, c.savedGen = c.length, c.gen
	}
}

var errNoState = fmt.Errorf("%w: the cursor has no saved state", container.ErrInvalidOperation)
