package collections

type hashBimap[K comparable, V comparable] struct {
	bimap[K, V]
}

// NewHashBimap builds an unordered bimap from the given entries, applied in
// order like NewTreeBimap. Lookups are O(1); Keys, Values and Entries come
// back in indeterminate order.
func NewHashBimap[K comparable, V comparable](entries ...Entry[K, V]) Bimap[K, V] {
	b := &hashBimap[K, V]{
		bimap: bimap[K, V]{
			forward: NewHashMap[K, V](),
			inverse: NewHashMap[V, K](),
		},
	}
	for _, entry := range entries {
		b.Insert(entry.Key, entry.Value)
	}
	return b
}
