package accessmanager

// accessTraverser halts traversal as soon as it finds a group whose
// GroupComponentMap contains the target (component, access) pair.
type accessTraverser[G comparable, C comparable, A comparable] struct {
	want             ComponentAccess[C, A]
	groupComponentOf map[G]map[ComponentAccess[C, A]]struct{}
	found            bool
}

func (t *accessTraverser[G, C, A]) visit(g G) (bool, error) {
	if pairs, ok := t.groupComponentOf[g]; ok {
		if _, ok := pairs[t.want]; ok {
			t.found = true
			return false, nil
		}
	}
	return true, nil
}

// entityMappingTraverser halts traversal as soon as it finds a group
// mapped to the target entity under the target entity type.
type entityMappingTraverser[G comparable] struct {
	entityType  string
	entity      string
	groupEntity entityMap[G]
	found       bool
}

func (t *entityMappingTraverser[G]) visit(g G) (bool, error) {
	if byType, ok := t.groupEntity[g]; ok {
		if names, ok := byType[t.entityType]; ok {
			if _, ok := names[t.entity]; ok {
				t.found = true
				return false, nil
			}
		}
	}
	return true, nil
}

// collectEntitiesTraverser visits every reachable group, accumulating the
// union of GroupEntityMap[g][entityType] over all of them. It never
// requests early termination.
type collectEntitiesTraverser[G comparable] struct {
	entityType  string
	groupEntity entityMap[G]
	collected   map[string]struct{}
}

func newCollectEntitiesTraverser[G comparable](entityType string, groupEntity entityMap[G]) *collectEntitiesTraverser[G] {
	return &collectEntitiesTraverser[G]{
		entityType:  entityType,
		groupEntity: groupEntity,
		collected:   make(map[string]struct{}),
	}
}

func (t *collectEntitiesTraverser[G]) visit(g G) (bool, error) {
	if byType, ok := t.groupEntity[g]; ok {
		for name := range byType[t.entityType] {
			t.collected[name] = struct{}{}
		}
	}
	return true, nil
}

// cycleCheckTraverser reports CircularReference as soon as it visits
// targetGroup. Used by AddGroupToGroupMapping: starting a traversal from
// the candidate to_group that reaches from_group implies the new
// from_group->to_group edge would close a cycle.
type cycleCheckTraverser[G comparable] struct {
	targetGroup G
	fromGroup   any
	toGroup     any
}

func (t *cycleCheckTraverser[G]) visit(g G) (bool, error) {
	if g == t.targetGroup {
		return false, errCircularReference(t.fromGroup, t.toGroup)
	}
	return true, nil
}
