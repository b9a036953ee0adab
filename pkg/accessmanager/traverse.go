package accessmanager

// visitor is invoked once per group encountered during a traversal. It
// returns whether the traversal should keep visiting further neighbors,
// and an error that — if non-nil — aborts the traversal immediately and
// is propagated to the caller of the traversal. Only the cycle-check visitor
// (see visitors.go) ever returns a non-nil error; the other three always
// return a nil error and use the bool to signal early termination.
type visitor[G comparable] interface {
	visit(g G) (keepGoing bool, err error)
}

// traverseFromUser walks the user->group->group graph starting at user,
// invoking v.visit on every group reached. Each group is visited at most
// once per call (a single visited-set is shared across the whole
// traversal, not per branch). Returns NotFound if user does not exist.
//
// The walk is depth-first rather than a topological-sort/level-order
// traversal, since early termination and duplicate-suppression are
// naturally expressed in terms of DFS recursion order: a visitor can stop
// the whole walk the moment it finds what it's looking for, mid-branch.
func (am *AccessManager[U, G, C, A]) traverseFromUser(user U, v visitor[G]) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}

	directGroups, ok := am.userGroupEdges[user]
	if !ok || len(directGroups) == 0 {
		return nil
	}

	visited := make(map[G]struct{})
	for g0 := range directGroups {
		if _, seen := visited[g0]; seen {
			continue
		}
		visited[g0] = struct{}{}
		keepGoing, err := am.traverseGroupRecurse(g0, visited, v)
		if err != nil {
			return err
		}
		if !keepGoing {
			break
		}
	}
	return nil
}

// traverseGroupRecurse invokes v on group, then recurses into its outbound
// GroupGroupEdges neighbors not already in visited. It stops iterating
// further neighbors as soon as a recursive call returns keepGoing == false,
// and propagates that same keepGoing value (and any error) to its caller —
// this is how a false deep in the recursion halts both the current
// neighbor loop and, one boundary later, its parent's.
func (am *AccessManager[U, G, C, A]) traverseGroupRecurse(group G, visited map[G]struct{}, v visitor[G]) (bool, error) {
	keepGoing, err := v.visit(group)
	if err != nil {
		return false, err
	}
	if !keepGoing {
		return false, nil
	}

	neighbors, ok := am.groupGroupEdges[group]
	if !ok {
		return true, nil
	}
	for neighbor := range neighbors {
		if _, seen := visited[neighbor]; seen {
			continue
		}
		visited[neighbor] = struct{}{}
		keepGoing, err = am.traverseGroupRecurse(neighbor, visited, v)
		if err != nil {
			return false, err
		}
		if !keepGoing {
			break
		}
	}
	return keepGoing, nil
}

// traverseFromGroup is the group-rooted entry point used by the
// cycle-check before add_group_to_group_mapping mutates the graph: it
// walks outward from a candidate to_group looking for from_group.
func (am *AccessManager[U, G, C, A]) traverseFromGroup(start G, v visitor[G]) error {
	visited := make(map[G]struct{})
	visited[start] = struct{}{}
	_, err := am.traverseGroupRecurse(start, visited, v)
	return err
}
