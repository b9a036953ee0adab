package stringifier

import "fmt"

// EnumValue is the constraint satisfied by Go's usual int-backed enum
// pattern: a defined integer type with a String() method, typically
// produced by `go run golang.org/x/tools/cmd/stringer`.
type EnumValue interface {
	~int
	fmt.Stringer
}

// EnumUniqueStringifier is a Stringifier for int-backed enum types.
// ToString delegates to the value's own String() method; FromString
// performs the inverse lookup against a reverse map built at construction
// time.
//
// Go enums carry no runtime member registry, so the caller supplies the
// full value set once at construction instead.
type EnumUniqueStringifier[T EnumValue] struct {
	byName map[string]T
}

// NewEnumUniqueStringifier builds the reverse lookup table from every
// value of the enum. Values must have distinct String() results — if two
// share a name, the later one in all wins the lookup.
func NewEnumUniqueStringifier[T EnumValue](all []T) *EnumUniqueStringifier[T] {
	byName := make(map[string]T, len(all))
	for _, v := range all {
		byName[v.String()] = v
	}
	return &EnumUniqueStringifier[T]{byName: byName}
}

// ToString returns value.String().
func (s *EnumUniqueStringifier[T]) ToString(value T) string {
	return value.String()
}

// FromString looks up str against the reverse table built at
// construction. Returns ErrInvalidFormat if str names no known value.
func (s *EnumUniqueStringifier[T]) FromString(str string) (T, error) {
	v, ok := s.byName[str]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q could not be converted to an enum value", ErrInvalidFormat, str)
	}
	return v, nil
}
