package accessmanager

import "iter"

// AddUserToApplicationComponentAndAccessLevelMapping adds a mapping
// between the specified user, application component, and access level.
// Fails with NotFound if the user does not exist, or AlreadyExists if the
// mapping is already present.
func (am *AccessManager[U, G, C, A]) AddUserToApplicationComponentAndAccessLevelMapping(user U, component C, access A) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	pair := ComponentAccess[C, A]{Component: component, Access: access}
	if pairs, ok := am.userComponentMap[user]; ok {
		if _, exists := pairs[pair]; exists {
			return errUserComponentMappingExists(user, component, access)
		}
	}
	if am.userComponentMap[user] == nil {
		am.userComponentMap[user] = make(map[ComponentAccess[C, A]]struct{})
	}
	am.userComponentMap[user][pair] = struct{}{}
	return nil
}

// RemoveUserToApplicationComponentAndAccessLevelMapping removes a mapping
// between the specified user, component, and access level. Fails with
// NotFound if the user, or the mapping itself, does not exist. Dropping
// the last mapping for a user removes the row entirely rather than
// leaving an empty set behind.
func (am *AccessManager[U, G, C, A]) RemoveUserToApplicationComponentAndAccessLevelMapping(user U, component C, access A) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	pair := ComponentAccess[C, A]{Component: component, Access: access}
	pairs, ok := am.userComponentMap[user]
	if !ok {
		return errUserComponentMappingNotFound(user, component, access)
	}
	if _, exists := pairs[pair]; !exists {
		return errUserComponentMappingNotFound(user, component, access)
	}
	delete(pairs, pair)
	if len(pairs) == 0 {
		delete(am.userComponentMap, user)
	}
	return nil
}

// GetUserToApplicationComponentAndAccessLevelMappings returns the
// (component, access) pairs the specified user is mapped to. Fails with
// NotFound if the user does not exist.
func (am *AccessManager[U, G, C, A]) GetUserToApplicationComponentAndAccessLevelMappings(user U) (iter.Seq[ComponentAccess[C, A]], error) {
	if !am.ContainsUser(user) {
		return nil, errUserNotFound(user, "user")
	}
	return seqFromSet(am.userComponentMap[user]), nil
}

// AddGroupToApplicationComponentAndAccessLevelMapping is the group-scoped
// analogue of AddUserToApplicationComponentAndAccessLevelMapping.
func (am *AccessManager[U, G, C, A]) AddGroupToApplicationComponentAndAccessLevelMapping(group G, component C, access A) error {
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	pair := ComponentAccess[C, A]{Component: component, Access: access}
	if pairs, ok := am.groupComponentMap[group]; ok {
		if _, exists := pairs[pair]; exists {
			return errGroupComponentMappingExists(group, component, access)
		}
	}
	if am.groupComponentMap[group] == nil {
		am.groupComponentMap[group] = make(map[ComponentAccess[C, A]]struct{})
	}
	am.groupComponentMap[group][pair] = struct{}{}
	return nil
}

// RemoveGroupToApplicationComponentAndAccessLevelMapping is the
// group-scoped analogue of
// RemoveUserToApplicationComponentAndAccessLevelMapping.
func (am *AccessManager[U, G, C, A]) RemoveGroupToApplicationComponentAndAccessLevelMapping(group G, component C, access A) error {
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	pair := ComponentAccess[C, A]{Component: component, Access: access}
	pairs, ok := am.groupComponentMap[group]
	if !ok {
		return errGroupComponentMappingNotFound(group, component, access)
	}
	if _, exists := pairs[pair]; !exists {
		return errGroupComponentMappingNotFound(group, component, access)
	}
	delete(pairs, pair)
	if len(pairs) == 0 {
		delete(am.groupComponentMap, group)
	}
	return nil
}

// GetGroupToApplicationComponentAndAccessLevelMappings is the group-scoped
// analogue of GetUserToApplicationComponentAndAccessLevelMappings.
func (am *AccessManager[U, G, C, A]) GetGroupToApplicationComponentAndAccessLevelMappings(group G) (iter.Seq[ComponentAccess[C, A]], error) {
	if !am.ContainsGroup(group) {
		return nil, errGroupNotFound(group, "group")
	}
	return seqFromSet(am.groupComponentMap[group]), nil
}
