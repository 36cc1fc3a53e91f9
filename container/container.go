// Package container contains the pieces shared by the linked containers of
// the sub-packages: the error kinds they report, their configuration, and the
// rendering of their content as strings.
//
// The containers are designed to have a single owner, they carry no internal
// synchronization and are unsafe to use concurrently from multiple
// goroutines. Programs that share a container must serialize access to it,
// for example by guarding each instance with a mutex.
package container

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/segmentio/linked/compare"
)

var (
	// ErrOutOfRange is returned when an index argument does not address a
	// position of the container.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidOperation is returned when an operation is attempted on a
	// container or cursor which is not in a state that allows it, for example
	// reading from an empty container or loading a cursor state that was never
	// saved.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidCursor is returned when a cursor is used after its list was
	// structurally modified by another path than the cursor itself.
	ErrInvalidCursor = errors.New("cursor invalidated by a structural modification of the list")
)

// OutOfRange constructs an error wrapping ErrOutOfRange which reports the
// index i and the inclusive range [lo, hi] that it should have been part of.
func OutOfRange(i, lo, hi int) error {
	if hi < lo {
		return fmt.Errorf("%w: index %d of empty range", ErrOutOfRange, i)
	}
	return fmt.Errorf("%w: index %d not in [%d, %d]", ErrOutOfRange, i, lo, hi)
}

// Config carries the configuration of a container.
type Config[T any] struct {
	// Equal reports whether two values are equal. It is used by operations
	// which look up values, like Contains or DeleteAll.
	Equal func(T, T) bool
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig[T any]() *Config[T] {
	return &Config[T]{
		Equal: compare.Dynamic[T],
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config[T]) Apply(options ...Option[T]) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// containers.
type Option[T any] interface {
	Configure(*Config[T])
}

type option[T any] func(*Config[T])

func (opt option[T]) Configure(config *Config[T]) { opt(config) }

// EqualFunc is a configuration option setting the function used to compare
// values of the container.
//
// Default: compare.Dynamic
func EqualFunc[T any](equal func(T, T) bool) Option[T] {
	return option[T](func(config *Config[T]) { config.Equal = equal })
}

// Format renders the sequence of values as "[]" when it is empty, or as
// "[v0, v1, ..., vn]" otherwise. Values are printed with the default format
// of the fmt package.
func Format[T any](seq iter.Seq[T]) string {
	b := new(strings.Builder)
	b.WriteByte('[')
	sep := ""
	for v := range seq {
		b.WriteString(sep)
		fmt.Fprint(b, v)
		sep = ", "
	}
	b.WriteByte(']')
	return b.String()
}
