package accessmanager

import "iter"

// EntityRef names one entity by its type and name, as returned by the
// "mappings for user/group" snapshot accessors.
type EntityRef struct {
	EntityType string
	Entity     string
}

// AddUserToEntityMapping adds a mapping between the specified user and
// entity. Validation order: user exists, entity type exists, entity
// exists under that type, mapping not already present.
func (am *AccessManager[U, G, C, A]) AddUserToEntityMapping(user U, entityType, entity string) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	if !am.ContainsEntityType(entityType) {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if !am.ContainsEntity(entityType, entity) {
		return errEntityNotFound(entity, "entity")
	}
	if byType, ok := am.userEntityMap[user]; ok {
		if names, ok := byType[entityType]; ok {
			if _, exists := names[entity]; exists {
				return errUserEntityMappingExists(user, entity, entityType)
			}
		}
	}

	if am.userEntityMap[user] == nil {
		am.userEntityMap[user] = make(map[string]map[string]struct{})
	}
	if am.userEntityMap[user][entityType] == nil {
		am.userEntityMap[user][entityType] = make(map[string]struct{})
	}
	am.userEntityMap[user][entityType][entity] = struct{}{}
	return nil
}

// RemoveUserToEntityMapping removes a mapping between the specified user
// and entity.
//
// Validation order: user exists, entity type exists, entity exists under
// that type, mapping exists. Entity existence is validated uniformly here
// and on the group variant (see DESIGN.md).
func (am *AccessManager[U, G, C, A]) RemoveUserToEntityMapping(user U, entityType, entity string) error {
	if !am.ContainsUser(user) {
		return errUserNotFound(user, "user")
	}
	if !am.ContainsEntityType(entityType) {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if !am.ContainsEntity(entityType, entity) {
		return errEntityNotFound(entity, "entity")
	}
	byType, ok := am.userEntityMap[user]
	if !ok {
		return errUserEntityMappingNotFound(user, entity, entityType)
	}
	names, ok := byType[entityType]
	if !ok {
		return errUserEntityMappingNotFound(user, entity, entityType)
	}
	if _, exists := names[entity]; !exists {
		return errUserEntityMappingNotFound(user, entity, entityType)
	}
	delete(names, entity)
	if len(names) == 0 {
		delete(byType, entityType)
	}
	if len(byType) == 0 {
		delete(am.userEntityMap, user)
	}
	return nil
}

// GetUserToEntityMappingsForUser returns every (entityType, entity) pair
// the specified user is mapped to. Fails with NotFound if the user does
// not exist.
func (am *AccessManager[U, G, C, A]) GetUserToEntityMappingsForUser(user U) (iter.Seq[EntityRef], error) {
	if !am.ContainsUser(user) {
		return nil, errUserNotFound(user, "user")
	}
	return entityRefSeq(am.userEntityMap[user]), nil
}

// GetUserToEntityMappingsForUserAndEntityType returns the entity names
// under entityType that the specified user is mapped to. Fails with
// NotFound if the user or the entity type does not exist.
func (am *AccessManager[U, G, C, A]) GetUserToEntityMappingsForUserAndEntityType(user U, entityType string) (iter.Seq[string], error) {
	if !am.ContainsUser(user) {
		return nil, errUserNotFound(user, "user")
	}
	if !am.ContainsEntityType(entityType) {
		return nil, errEntityTypeNotFound(entityType, "entityType")
	}
	byType := am.userEntityMap[user]
	return seqFromSet(byType[entityType]), nil
}

// AddGroupToEntityMapping is the group-scoped analogue of
// AddUserToEntityMapping.
func (am *AccessManager[U, G, C, A]) AddGroupToEntityMapping(group G, entityType, entity string) error {
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	if !am.ContainsEntityType(entityType) {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if !am.ContainsEntity(entityType, entity) {
		return errEntityNotFound(entity, "entity")
	}
	if byType, ok := am.groupEntityMap[group]; ok {
		if names, ok := byType[entityType]; ok {
			if _, exists := names[entity]; exists {
				return errGroupEntityMappingExists(group, entity, entityType)
			}
		}
	}

	if am.groupEntityMap[group] == nil {
		am.groupEntityMap[group] = make(map[string]map[string]struct{})
	}
	if am.groupEntityMap[group][entityType] == nil {
		am.groupEntityMap[group][entityType] = make(map[string]struct{})
	}
	am.groupEntityMap[group][entityType][entity] = struct{}{}
	return nil
}

// RemoveGroupToEntityMapping is the group-scoped analogue of
// RemoveUserToEntityMapping.
func (am *AccessManager[U, G, C, A]) RemoveGroupToEntityMapping(group G, entityType, entity string) error {
	if !am.ContainsGroup(group) {
		return errGroupNotFound(group, "group")
	}
	if !am.ContainsEntityType(entityType) {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if !am.ContainsEntity(entityType, entity) {
		return errEntityNotFound(entity, "entity")
	}
	byType, ok := am.groupEntityMap[group]
	if !ok {
		return errGroupEntityMappingNotFound(group, entity, entityType)
	}
	names, ok := byType[entityType]
	if !ok {
		return errGroupEntityMappingNotFound(group, entity, entityType)
	}
	if _, exists := names[entity]; !exists {
		return errGroupEntityMappingNotFound(group, entity, entityType)
	}
	delete(names, entity)
	if len(names) == 0 {
		delete(byType, entityType)
	}
	if len(byType) == 0 {
		delete(am.groupEntityMap, group)
	}
	return nil
}

// GetGroupToEntityMappingsForGroup is the group-scoped analogue of
// GetUserToEntityMappingsForUser.
func (am *AccessManager[U, G, C, A]) GetGroupToEntityMappingsForGroup(group G) (iter.Seq[EntityRef], error) {
	if !am.ContainsGroup(group) {
		return nil, errGroupNotFound(group, "group")
	}
	return entityRefSeq(am.groupEntityMap[group]), nil
}

// GetGroupToEntityMappingsForGroupAndEntityType is the group-scoped
// analogue of GetUserToEntityMappingsForUserAndEntityType.
func (am *AccessManager[U, G, C, A]) GetGroupToEntityMappingsForGroupAndEntityType(group G, entityType string) (iter.Seq[string], error) {
	if !am.ContainsGroup(group) {
		return nil, errGroupNotFound(group, "group")
	}
	if !am.ContainsEntityType(entityType) {
		return nil, errEntityTypeNotFound(entityType, "entityType")
	}
	byType := am.groupEntityMap[group]
	return seqFromSet(byType[entityType]), nil
}

func entityRefSeq(byType map[string]map[string]struct{}) iter.Seq[EntityRef] {
	snapshot := make([]EntityRef, 0)
	for entityType, names := range byType {
		for name := range names {
			snapshot = append(snapshot, EntityRef{EntityType: entityType, Entity: name})
		}
	}
	return func(yield func(EntityRef) bool) {
		for _, ref := range snapshot {
			if !yield(ref) {
				return
			}
		}
	}
}
