// Package compare contains equality functions used by the linked containers
// to match values.
package compare

// Equal is an equality function for comparable types.
func Equal[T comparable](a, b T) bool { return a == b }

// Dynamic is an equality function for values of any type. The values are
// compared with the == operator on their interface representation, which
// panics if the dynamic type of the values is not comparable (slices, maps,
// functions, or structs containing them).
//
// Dynamic is the default equality of the containers, it gives the same
// results as Equal when T is a comparable type.
func Dynamic[T any](a, b T) bool { return any(a) == any(b) }
