// Package accessmanager implements an in-memory authorization graph: users
// and groups joined by a user->group->group chain, with two families of
// mappings from that graph onto application components (paired with access
// levels) and onto typed entities representing resource instances.
//
// The hard part is maintaining cross-referential integrity between the four
// mapping tables and two vertex sets, refusing group-to-group edges that
// would close a cycle, and answering authorization queries by bounded
// depth-first traversal of the user->group->group chain with early
// termination and duplicate suppression (see traverseFromUser in traverse.go).
//
// # Basic usage
//
//	am := accessmanager.New[string, string, string, string]()
//	am.AddUser("alice")
//	am.AddGroup("engineers")
//	am.AddUserToGroupMapping("alice", "engineers")
//	am.AddGroupToApplicationComponentAndAccessLevelMapping("engineers", "orders", "view")
//	ok, _ := am.HasAccessToApplicationComponent("alice", "orders", "view") // true
//
// # Concurrency
//
// AccessManager is not safe for concurrent use. Callers sharing one
// instance across goroutines must serialize access externally, or wrap it
// in Concurrent (see concurrent.go).
package accessmanager

import "github.com/google/uuid"

// ComponentAccess is an unordered pair of an application component and an
// access level. Two ComponentAccess values compare equal exactly when both
// fields compare equal, which is all set membership in UserComponentMap /
// GroupComponentMap requires.
type ComponentAccess[C comparable, A comparable] struct {
	Component C
	Access    A
}

// entityMap is the row-keyed shape shared by UserEntityMap and
// GroupEntityMap: principal -> entity type -> set of entity names.
type entityMap[P comparable] map[P]map[string]map[string]struct{}

// AccessManager manages the access of users and groups of users to
// application components and to typed entities within an application. U is
// the type of user identities, G the type of group identities, C the type
// of application components, and A the type of access levels. All four
// must be comparable so they can serve directly as map keys.
//
// All nine stores are created empty at construction and live for the
// lifetime of the instance; mutation is entirely caller-driven.
type AccessManager[U comparable, G comparable, C comparable, A comparable] struct {
	// instanceID stamps this instance for logging/correlation and as a
	// provenance field in persisted documents (see pkg/persist). It plays
	// no role in authorization semantics.
	instanceID uuid.UUID

	users  map[U]struct{}
	groups map[G]struct{}

	userGroupEdges  map[U]map[G]struct{}
	groupGroupEdges map[G]map[G]struct{}

	userComponentMap  map[U]map[ComponentAccess[C, A]]struct{}
	groupComponentMap map[G]map[ComponentAccess[C, A]]struct{}

	entityTypes map[string]map[string]struct{}

	userEntityMap  entityMap[U]
	groupEntityMap entityMap[G]
}

// New creates an empty AccessManager.
func New[U comparable, G comparable, C comparable, A comparable]() *AccessManager[U, G, C, A] {
	return &AccessManager[U, G, C, A]{
		instanceID: uuid.New(),

		users:  make(map[U]struct{}),
		groups: make(map[G]struct{}),

		userGroupEdges:  make(map[U]map[G]struct{}),
		groupGroupEdges: make(map[G]map[G]struct{}),

		userComponentMap:  make(map[U]map[ComponentAccess[C, A]]struct{}),
		groupComponentMap: make(map[G]map[ComponentAccess[C, A]]struct{}),

		entityTypes: make(map[string]map[string]struct{}),

		userEntityMap:  make(entityMap[U]),
		groupEntityMap: make(entityMap[G]),
	}
}

// InstanceID returns the opaque identifier stamped on this instance at
// construction. It has no bearing on authorization decisions.
func (am *AccessManager[U, G, C, A]) InstanceID() uuid.UUID {
	return am.instanceID
}
