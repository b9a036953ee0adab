package accessmanager

import (
	"iter"

	"golang.org/x/exp/slices"
)

// snapshotSet copies a set so callers holding the result across a
// subsequent mutation never observe torn or live state.
func snapshotSet[T comparable](m map[T]struct{}) map[T]struct{} {
	out := make(map[T]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// seqFromSet returns a snapshot sequence over a set's keys. The snapshot is
// taken eagerly so the returned sequence is stable even if the
// AccessManager is mutated before the sequence is consumed.
//
// Neighbor/element order is unspecified; this is not a sorted sequence
// for arbitrary comparable T. Only GetEntities and EntityTypes (see
// sortedStringSeq) impose a deterministic order, which is what makes those
// specific accessors pleasant to assert against in tests; the per-principal
// entity-mapping accessors return entity names in unspecified order.
func seqFromSet[T comparable](m map[T]struct{}) iter.Seq[T] {
	snapshot := make([]T, 0, len(m))
	for k := range m {
		snapshot = append(snapshot, k)
	}
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// sortedStringSeq is seqFromSet specialized to impose a deterministic,
// sorted order over string-keyed sets (entity names, entity types).
func sortedStringSeq(m map[string]struct{}) iter.Seq[string] {
	snapshot := make([]string, 0, len(m))
	for k := range m {
		snapshot = append(snapshot, k)
	}
	slices.Sort(snapshot)
	return func(yield func(string) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}
