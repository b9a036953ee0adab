package accessmanager

import "iter"

// Users returns every user currently in the access manager.
func (am *AccessManager[U, G, C, A]) Users() iter.Seq[U] {
	return seqFromSet(am.users)
}

// Groups returns every group currently in the access manager, the
// Groups-side analogue of Users.
func (am *AccessManager[U, G, C, A]) Groups() iter.Seq[G] {
	return seqFromSet(am.groups)
}

// EntityTypes returns every declared entity type name, sorted.
func (am *AccessManager[U, G, C, A]) EntityTypes() iter.Seq[string] {
	return sortedStringSeq(entityTypeNames(am.entityTypes))
}

func entityTypeNames(m map[string]map[string]struct{}) map[string]struct{} {
	names := make(map[string]struct{}, len(m))
	for name := range m {
		names[name] = struct{}{}
	}
	return names
}

// AddUser adds a user. Fails with AlreadyExists if the user is already
// present.
func (am *AccessManager[U, G, C, A]) AddUser(user U) error {
	if _, exists := am.users[user]; exists {
		return errUserAlreadyExists(user)
	}
	am.users[user] = struct{}{}
	return nil
}

// ContainsUser returns true if the specified user exists.
func (am *AccessManager[U, G, C, A]) ContainsUser(user U) bool {
	_, exists := am.users[user]
	return exists
}

// RemoveUser removes a user. Fails with NotFound if the user does not
// exist. On success, cascades: drops the user's component mappings, entity
// mappings, and outbound user-to-group edges, then removes the user itself.
func (am *AccessManager[U, G, C, A]) RemoveUser(user U) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}

	delete(am.userComponentMap, user)
	delete(am.userEntityMap, user)
	delete(am.userGroupEdges, user)
	delete(am.users, user)
	return nil
}

// AddGroup adds a group. Fails with AlreadyExists if the group is already
// present.
func (am *AccessManager[U, G, C, A]) AddGroup(group G) error {
	if _, exists := am.groups[group]; exists {
		return errGroupAlreadyExists(group)
	}
	am.groups[group] = struct{}{}
	return nil
}

// ContainsGroup returns true if the specified group exists.
func (am *AccessManager[U, G, C, A]) ContainsGroup(group G) bool {
	_, exists := am.groups[group]
	return exists
}

// RemoveGroup removes a group. Fails with NotFound if the group does not
// exist. On success, cascades: drops the group's component mappings,
// entity mappings, and outbound group-to-group edges; also purges any
// inbound user-to-group and group-to-group edges pointing at it, so no
// dangling reference to the removed group survives.
func (am *AccessManager[U, G, C, A]) RemoveGroup(group G) error {
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}

	delete(am.groupComponentMap, group)
	delete(am.groupEntityMap, group)
	delete(am.groupGroupEdges, group)
	for from, tos := range am.groupGroupEdges {
		delete(tos, group)
		if len(tos) == 0 {
			delete(am.groupGroupEdges, from)
		}
	}
	for user, groups := range am.userGroupEdges {
		delete(groups, group)
		if len(groups) == 0 {
			delete(am.userGroupEdges, user)
		}
	}
	delete(am.groups, group)
	return nil
}
