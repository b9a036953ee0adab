package accessmanager

import (
	"iter"
	"strings"

	"golang.org/x/sync/errgroup"
)

func validEntityName(name string) bool {
	return len(name) != 0 && len(strings.TrimSpace(name)) != 0
}

// AddEntityType adds an entity type. Fails with AlreadyExists if present,
// or InvalidName if the name is empty or all-whitespace.
func (am *AccessManager[U, G, C, A]) AddEntityType(entityType string) error {
	if _, exists := am.entityTypes[entityType]; exists {
		return errEntityTypeAlreadyExists(entityType)
	}
	if !validEntityName(entityType) {
		return errEntityTypeInvalidName(entityType)
	}
	am.entityTypes[entityType] = make(map[string]struct{})
	return nil
}

// ContainsEntityType returns true if the specified entity type exists.
func (am *AccessManager[U, G, C, A]) ContainsEntityType(entityType string) bool {
	_, exists := am.entityTypes[entityType]
	return exists
}

// RemoveEntityType removes an entity type. Fails with NotFound if it does
// not exist. On success, removes entityType from every UserEntityMap and
// GroupEntityMap row before dropping it from EntityTypes.
//
// The two cascade passes touch disjoint maps (UserEntityMap vs
// GroupEntityMap), so they run concurrently via errgroup; the caller still
// observes RemoveEntityType as a single atomic operation since both
// goroutines complete before the method returns.
func (am *AccessManager[U, G, C, A]) RemoveEntityType(entityType string) error {
	if !am.ContainsEntityType(entityType) {
		return errEntityTypeNotFound(entityType, "entityType")
	}

	var eg errgroup.Group
	eg.Go(func() error {
		purgeEntityTypeFromMap(am.userEntityMap, entityType)
		return nil
	})
	eg.Go(func() error {
		purgeEntityTypeFromMap(am.groupEntityMap, entityType)
		return nil
	})
	_ = eg.Wait()

	delete(am.entityTypes, entityType)
	return nil
}

func purgeEntityTypeFromMap[P comparable](m entityMap[P], entityType string) {
	for principal, byType := range m {
		delete(byType, entityType)
		if len(byType) == 0 {
			delete(m, principal)
		}
	}
}

// AddEntity adds an entity of the specified type. Fails with NotFound if
// the type does not exist, AlreadyExists if the entity is already present,
// or InvalidName if the entity name is empty or all-whitespace.
func (am *AccessManager[U, G, C, A]) AddEntity(entityType, entity string) error {
	entities, typeExists := am.entityTypes[entityType]
	if !typeExists {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if _, exists := entities[entity]; exists {
		return errEntityAlreadyExists(entity)
	}
	if !validEntityName(entity) {
		return errEntityInvalidName(entity)
	}
	entities[entity] = struct{}{}
	return nil
}

// ContainsEntity returns true if the specified entity exists under the
// specified type.
func (am *AccessManager[U, G, C, A]) ContainsEntity(entityType, entity string) bool {
	entities, typeExists := am.entityTypes[entityType]
	if !typeExists {
		return false
	}
	_, exists := entities[entity]
	return exists
}

// GetEntities returns all entities of the specified type, in sorted order.
// Fails with NotFound if the type does not exist.
func (am *AccessManager[U, G, C, A]) GetEntities(entityType string) (iter.Seq[string], error) {
	entities, typeExists := am.entityTypes[entityType]
	if !typeExists {
		return nil, errEntityTypeNotFound(entityType, "entityType")
	}
	return sortedStringSeq(entities), nil
}

// RemoveEntity removes an entity of the specified type. Fails with
// NotFound if the type or the entity does not exist. On success, removes
// the entity from every User/GroupEntityMap row under entityType before
// removing it from EntityTypes.
func (am *AccessManager[U, G, C, A]) RemoveEntity(entityType, entity string) error {
	entities, typeExists := am.entityTypes[entityType]
	if !typeExists {
		return errEntityTypeNotFound(entityType, "entityType")
	}
	if _, exists := entities[entity]; !exists {
		return errEntityNotFound(entity, "entity")
	}

	var eg errgroup.Group
	eg.Go(func() error {
		purgeEntityFromMap(am.userEntityMap, entityType, entity)
		return nil
	})
	eg.Go(func() error {
		purgeEntityFromMap(am.groupEntityMap, entityType, entity)
		return nil
	})
	_ = eg.Wait()

	delete(entities, entity)
	return nil
}

func purgeEntityFromMap[P comparable](m entityMap[P], entityType, entity string) {
	for principal, byType := range m {
		if names, ok := byType[entityType]; ok {
			delete(names, entity)
			if len(names) == 0 {
				delete(byType, entityType)
			}
		}
		if len(byType) == 0 {
			delete(m, principal)
		}
	}
}
