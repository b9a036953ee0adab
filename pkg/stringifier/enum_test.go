package stringifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type accessLevel int

const (
	accessLevelView accessLevel = iota
	accessLevelEdit
	accessLevelAdmin
)

func (a accessLevel) String() string {
	switch a {
	case accessLevelView:
		return "View"
	case accessLevelEdit:
		return "Edit"
	case accessLevelAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

func TestEnumUniqueStringifier_RoundTrip(t *testing.T) {
	s := NewEnumUniqueStringifier([]accessLevel{accessLevelView, accessLevelEdit, accessLevelAdmin})

	encoded := s.ToString(accessLevelEdit)
	require.Equal(t, "Edit", encoded)

	decoded, err := s.FromString(encoded)
	require.NoError(t, err)
	require.Equal(t, accessLevelEdit, decoded)
}

func TestEnumUniqueStringifier_FromString_Unknown(t *testing.T) {
	s := NewEnumUniqueStringifier([]accessLevel{accessLevelView})

	_, err := s.FromString("NotAValue")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidFormat)
}
