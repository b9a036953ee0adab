// Package stringifier provides the string round-trip collaborator
// AccessManager itself never calls: something that converts a user,
// group, component, or access-level value to a string that uniquely
// identifies it, and back again. Only pkg/persist, the JSON serializer
// collaborator, uses this contract.
package stringifier

import "errors"

// ErrInvalidFormat is returned by FromString when the input string is not
// a valid encoding of any value of T.
var ErrInvalidFormat = errors.New("invalid format")

// Stringifier converts values of type T to and from strings that
// uniquely identify them. Implementations must satisfy
// FromString(ToString(x)) == x for every valid x.
type Stringifier[T any] interface {
	// ToString converts a value into a string which uniquely identifies
	// it across the domain of T.
	ToString(value T) string

	// FromString converts a string produced by ToString back into the
	// value it identifies. Returns ErrInvalidFormat if the string is not
	// a valid encoding.
	FromString(s string) (T, error)
}
