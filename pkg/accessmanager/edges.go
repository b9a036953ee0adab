package accessmanager

import "iter"

// AddUserToGroupMapping adds a mapping between the specified user and
// group. Fails with NotFound if either endpoint does not exist, or
// AlreadyExists if the mapping is already present.
func (am *AccessManager[U, G, C, A]) AddUserToGroupMapping(user U, group G) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	if groups, ok := am.userGroupEdges[user]; ok {
		if _, exists := groups[group]; exists {
			return errUserGroupMappingExists(user, group)
		}
	}

	if am.userGroupEdges[user] == nil {
		am.userGroupEdges[user] = make(map[G]struct{})
	}
	am.userGroupEdges[user][group] = struct{}{}
	return nil
}

// RemoveUserToGroupMapping removes the mapping between the specified user
// and group. Fails with NotFound if either endpoint, or the mapping
// itself, does not exist.
func (am *AccessManager[U, G, C, A]) RemoveUserToGroupMapping(user U, group G) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	groups, ok := am.userGroupEdges[user]
	if !ok {
		return errUserGroupMappingNotFound(user, group)
	}
	if _, exists := groups[group]; !exists {
		return errUserGroupMappingNotFound(user, group)
	}
	delete(groups, group)
	if len(groups) == 0 {
		delete(am.userGroupEdges, user)
	}
	return nil
}

// GetUserToGroupMappings returns the groups the specified user is directly
// a member of — direct edges only, no transitive closure. Fails with
// NotFound if the user does not exist.
func (am *AccessManager[U, G, C, A]) GetUserToGroupMappings(user U) (iter.Seq[G], error) {
	if !am.ContainsUser(user) {
		return nil, errUserNotFound(user, "user")
	}
	return seqFromSet(am.userGroupEdges[user]), nil
}

// AddGroupToGroupMapping adds a mapping between the specified groups.
// Validation order: fromGroup exists, toGroup exists, fromGroup != toGroup,
// the edge is not already present, and finally a cycle check — a DFS
// starting at toGroup over GroupGroupEdges must not reach fromGroup. Only
// once all checks pass is the edge inserted.
func (am *AccessManager[U, G, C, A]) AddGroupToGroupMapping(fromGroup, toGroup G) error {
	if !am.ContainsGroup(fromGroup) {
		return errGroupNotFound(fromGroup, "from_group")
	}
	if !am.ContainsGroup(toGroup) {
		return errGroupNotFound(toGroup, "to_group")
	}
	if fromGroup == toGroup {
		return errSameGroup()
	}
	if tos, ok := am.groupGroupEdges[fromGroup]; ok {
		if _, exists := tos[toGroup]; exists {
			return errGroupGroupMappingExists(fromGroup, toGroup)
		}
	}

	check := &cycleCheckTraverser[G]{targetGroup: fromGroup, fromGroup: fromGroup, toGroup: toGroup}
	if err := am.traverseFromGroup(toGroup, check); err != nil {
		return err
	}

	if am.groupGroupEdges[fromGroup] == nil {
		am.groupGroupEdges[fromGroup] = make(map[G]struct{})
	}
	am.groupGroupEdges[fromGroup][toGroup] = struct{}{}
	return nil
}

// RemoveGroupToGroupMapping removes the mapping between the specified
// groups. Fails with NotFound if either endpoint, or the mapping itself,
// does not exist.
func (am *AccessManager[U, G, C, A]) RemoveGroupToGroupMapping(fromGroup, toGroup G) error {
	if !am.ContainsGroup(fromGroup) {
		return errGroupNotFound(fromGroup, "from_group")
	}
	if !am.ContainsGroup(toGroup) {
		return errGroupNotFound(toGroup, "to_group")
	}
	tos, ok := am.groupGroupEdges[fromGroup]
	if !ok {
		return errGroupGroupMappingNotFound(fromGroup, toGroup)
	}
	if _, exists := tos[toGroup]; !exists {
		return errGroupGroupMappingNotFound(fromGroup, toGroup)
	}
	delete(tos, toGroup)
	if len(tos) == 0 {
		delete(am.groupGroupEdges, fromGroup)
	}
	return nil
}

// GetGroupToGroupMappings returns the groups the specified group is
// directly mapped to. Fails with NotFound if the group does not exist.
func (am *AccessManager[U, G, C, A]) GetGroupToGroupMappings(group G) (iter.Seq[G], error) {
	if !am.ContainsGroup(group) {
		return nil, errGroupNotFound(group, "group")
	}
	return seqFromSet(am.groupGroupEdges[group]), nil
}
