package collections

import "golang.org/x/exp/constraints"

type treeBimap[K any, V any] struct {
	bimap[K, V]
	ordered OrderedMap[K, V]
}

// NewTreeBimap builds an ordered bimap from the given entries, applied in
// order: a later entry sharing a key or value with an earlier one overwrites
// it. Lookup, insert and erase are O(log n) in both directions.
func NewTreeBimap[K constraints.Ordered, V constraints.Ordered](entries ...Entry[K, V]) OrderedBimap[K, V] {
	return NewTreeBimapFunc[K, V](Compare[K], Compare[V], entries...)
}

// NewTreeBimapFunc is NewTreeBimap with caller-supplied total orders over keys
// and values.
func NewTreeBimapFunc[K any, V any](compareKeys func(K, K) int, compareValues func(V, V) int, entries ...Entry[K, V]) OrderedBimap[K, V] {
	forward := NewTreeMapFunc[K, V](compareKeys)
	inverse := NewTreeMapFunc[V, K](compareValues)
	b := &treeBimap[K, V]{
		bimap: bimap[K, V]{
			forward: forward,
			inverse: inverse,
		},
		ordered: forward,
	}
	for _, entry := range entries {
		b.Insert(entry.Key, entry.Value)
	}
	return b
}

// Iterator walks the entries in key order.
func (b *treeBimap[K, V]) Iterator() Iterator[K, V] {
	return b.ordered.Iterator()
}
