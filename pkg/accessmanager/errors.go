package accessmanager

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failure reported by an *OpError, letting callers
// branch on errors.Is(err, accessmanager.ErrNotFound) etc. without parsing
// the human-readable message.
type ErrorKind int

const (
	// KindNotFound indicates a referenced user, group, entity type, entity,
	// mapping, or edge does not exist.
	KindNotFound ErrorKind = iota
	// KindAlreadyExists indicates the vertex, edge, or mapping being added
	// is already present.
	KindAlreadyExists
	// KindInvalidName indicates an empty or all-whitespace entity-type or
	// entity name.
	KindInvalidName
	// KindInvalidArgument indicates a structural argument violation, such
	// as from_group == to_group.
	KindInvalidArgument
	// KindCircularReference indicates a group-to-group edge would close a
	// cycle in GroupGroupEdges.
	KindCircularReference
)

// Sentinel errors for use with errors.Is. OpError.Unwrap returns one of
// these, so callers never need to match on Message.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrCircularReference = errors.New("circular reference")
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindInvalidName:
		return ErrInvalidName
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindCircularReference:
		return ErrCircularReference
	default:
		return errors.New("unknown access manager error")
	}
}

// OpError is the error type returned by every AccessManager mutator and
// query that can fail. Message holds the exact canonical template mandated
// by the access-manager error templates (e.g. "User 'x' in argument
// 'user' does not exist."); Kind and Param let callers inspect the failure
// programmatically.
type OpError struct {
	Kind    ErrorKind
	Param   string
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, accessmanager.ErrNotFound) and friends work
// without string comparison.
func (e *OpError) Unwrap() error {
	return sentinelFor(e.Kind)
}

func errUserNotFound(u any, param string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   param,
		Message: fmt.Sprintf("User '%v' in argument '%s' does not exist.", u, param),
	}
}

func errUserAlreadyExists(u any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "user",
		Message: fmt.Sprintf("User '%v' in argument 'user' already exists.", u),
	}
}

func errGroupNotFound(g any, param string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   param,
		Message: fmt.Sprintf("Group '%v' in argument '%s' does not exist.", g, param),
	}
}

func errGroupAlreadyExists(g any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "group",
		Message: fmt.Sprintf("Group '%v' in argument 'group' already exists.", g),
	}
}

func errUserGroupMappingExists(u, g any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "group",
		Message: fmt.Sprintf("A mapping between user '%v' and group '%v' already exists.", u, g),
	}
}

func errUserGroupMappingNotFound(u, g any) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "group",
		Message: fmt.Sprintf("A mapping between user '%v' and group '%v' does not exist.", u, g),
	}
}

func errGroupGroupMappingExists(a, b any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "to_group",
		Message: fmt.Sprintf("A mapping between group '%v' and group '%v' already exists.", a, b),
	}
}

func errGroupGroupMappingNotFound(a, b any) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "to_group",
		Message: fmt.Sprintf("A mapping between groups '%v' and '%v' does not exist.", a, b),
	}
}

func errSameGroup() error {
	return &OpError{
		Kind:    KindInvalidArgument,
		Param:   "to_group",
		Message: "Arguments 'from_group' and 'to_group' cannot contain the same group.",
	}
}

func errCircularReference(a, b any) error {
	return &OpError{
		Kind:    KindCircularReference,
		Param:   "to_group",
		Message: fmt.Sprintf("A mapping between groups '%v' and '%v' cannot be created as it would cause a circular reference.", a, b),
	}
}

func errUserComponentMappingExists(u, c, a any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "applicationComponent",
		Message: fmt.Sprintf("A mapping between user '%v' application component '%v' and access level '%v' already exists.", u, c, a),
	}
}

func errUserComponentMappingNotFound(u, c, a any) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "applicationComponent",
		Message: fmt.Sprintf("A mapping between user '%v' application component '%v' and access level '%v' doesn't exist.", u, c, a),
	}
}

func errGroupComponentMappingExists(g, c, a any) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "applicationComponent",
		Message: fmt.Sprintf("A mapping between group '%v' application component '%v' and access level '%v' already exists.", g, c, a),
	}
}

func errGroupComponentMappingNotFound(g, c, a any) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "applicationComponent",
		Message: fmt.Sprintf("A mapping between group '%v' application component '%v' and access level '%v' doesn't exist.", g, c, a),
	}
}

func errEntityTypeNotFound(t, param string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   param,
		Message: fmt.Sprintf("Entity type '%s' in argument '%s' does not exist.", t, param),
	}
}

func errEntityTypeAlreadyExists(t string) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "entityType",
		Message: fmt.Sprintf("Entity type '%s' in argument 'entityType' already exists.", t),
	}
}

func errEntityTypeInvalidName(t string) error {
	return &OpError{
		Kind:    KindInvalidName,
		Param:   "entityType",
		Message: fmt.Sprintf("Entity type '%s' in argument 'entityType' must contain a valid character.", t),
	}
}

func errEntityNotFound(e, param string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   param,
		Message: fmt.Sprintf("Entity '%s' in argument '%s' does not exist.", e, param),
	}
}

func errEntityAlreadyExists(e string) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "entity",
		Message: fmt.Sprintf("Entity '%s' in argument 'entity' already exists.", e),
	}
}

func errEntityInvalidName(e string) error {
	return &OpError{
		Kind:    KindInvalidName,
		Param:   "entity",
		Message: fmt.Sprintf("Entity '%s' in argument 'entity' must contain a valid character.", e),
	}
}

func errUserEntityMappingExists(u any, e, t string) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "entity",
		Message: fmt.Sprintf("A mapping between user '%v' and entity '%s' with type '%s' already exists.", u, e, t),
	}
}

func errUserEntityMappingNotFound(u any, e, t string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "entity",
		Message: fmt.Sprintf("A mapping between user '%v' and entity '%s' with type '%s' doesn't exist.", u, e, t),
	}
}

func errGroupEntityMappingExists(g any, e, t string) error {
	return &OpError{
		Kind:    KindAlreadyExists,
		Param:   "entity",
		Message: fmt.Sprintf("A mapping between group '%v' and entity '%s' with type '%s' already exists.", g, e, t),
	}
}

func errGroupEntityMappingNotFound(g any, e, t string) error {
	return &OpError{
		Kind:    KindNotFound,
		Param:   "entity",
		Message: fmt.Sprintf("A mapping between group '%v' and entity '%s' with type '%s' doesn't exist.", g, e, t),
	}
}
