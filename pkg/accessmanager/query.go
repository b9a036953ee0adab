package accessmanager

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// HasAccessToApplicationComponent checks whether the specified user — or a
// group the user is a member of, transitively — has access to an
// application component at a given access level.
//
// Returns false (no error) if the user does not exist. Returns true
// immediately if the user has a direct mapping to (component, access);
// otherwise traverses the user's group graph, returning true iff any
// visited group has the mapping.
func (am *AccessManager[U, G, C, A]) HasAccessToApplicationComponent(user U, component C, access A) (bool, error) {
	if !am.ContainsUser(user) {
		return false, nil
	}
	pair := ComponentAccess[C, A]{Component: component, Access: access}
	if pairs, ok := am.userComponentMap[user]; ok {
		if _, exists := pairs[pair]; exists {
			return true, nil
		}
	}

	t := &accessTraverser[G, C, A]{want: pair, groupComponentOf: am.groupComponentMap}
	if err := am.traverseFromUser(user, t); err != nil {
		return false, err
	}
	return t.found, nil
}

// HasAccessToEntity checks whether the specified user — or a group the
// user is a member of, transitively — has access to the specified entity.
//
// Fails with NotFound if the entity type or entity does not exist. Returns
// false (no error) if the user does not exist.
func (am *AccessManager[U, G, C, A]) HasAccessToEntity(user U, entityType, entity string) (bool, error) {
	if !am.ContainsEntityType(entityType) {
		return false, errEntityTypeNotFound(entityType, "entityType")
	}
	if !am.ContainsEntity(entityType, entity) {
		return false, errEntityNotFound(entity, "entity")
	}
	if !am.ContainsUser(user) {
		return false, nil
	}
	if byType, ok := am.userEntityMap[user]; ok {
		if names, ok := byType[entityType]; ok {
			if _, exists := names[entity]; exists {
				return true, nil
			}
		}
	}

	t := &entityMappingTraverser[G]{entityType: entityType, entity: entity, groupEntity: am.groupEntityMap}
	if err := am.traverseFromUser(user, t); err != nil {
		return false, err
	}
	return t.found, nil
}

// GetAccessibleEntities returns the union of entities of entityType that
// the specified user has access to, directly or via any group reachable
// from the user. Fails with NotFound if the user or entity type does not
// exist.
func (am *AccessManager[U, G, C, A]) GetAccessibleEntities(user U, entityType string) (map[string]struct{}, error) {
	if !am.ContainsUser(user) {
		return nil, errUserNotFound(user, "user")
	}
	if !am.ContainsEntityType(entityType) {
		return nil, errEntityTypeNotFound(entityType, "entityType")
	}

	result := make(map[string]struct{})
	if byType, ok := am.userEntityMap[user]; ok {
		for name := range byType[entityType] {
			result[name] = struct{}{}
		}
	}

	t := newCollectEntitiesTraverser(entityType, am.groupEntityMap)
	if err := am.traverseFromUser(user, t); err != nil {
		return nil, err
	}
	for name := range t.collected {
		result[name] = struct{}{}
	}
	return result, nil
}

// BatchHasAccessToApplicationComponent evaluates HasAccessToApplicationComponent
// for many (component, access) pairs concurrently, for a single user. Each
// pair runs its own independent read-only traversal — safe to parallelize
// because no traversal mutates the graph (see Concurrent in concurrent.go
// for the story when other goroutines ARE mutating concurrently).
//
// This is a convenience beyond the minimal single-pair query, using an
// errgroup fan-out for the concurrent pairs.
func (am *AccessManager[U, G, C, A]) BatchHasAccessToApplicationComponent(ctx context.Context, user U, pairs []ComponentAccess[C, A]) (map[ComponentAccess[C, A]]bool, error) {
	result := make(map[ComponentAccess[C, A]]bool, len(pairs))
	if len(pairs) == 0 {
		return result, nil
	}

	type outcome struct {
		pair   ComponentAccess[C, A]
		access bool
	}
	outcomes := make(chan outcome, len(pairs))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, pair := range pairs {
		pair := pair
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ok, err := am.HasAccessToApplicationComponent(user, pair.Component, pair.Access)
			if err != nil {
				return err
			}
			outcomes <- outcome{pair: pair, access: ok}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(outcomes)
	for o := range outcomes {
		result[o.pair] = o.access
	}
	return result, nil
}
