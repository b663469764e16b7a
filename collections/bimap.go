package collections

import "math"

// Bimap is a bidirectional one-to-one map. Every key maps to exactly one value
// and every value maps back to exactly one key, so lookups are cheap in both
// directions at the cost of storing each entry twice.
type Bimap[K any, V any] interface {
	IsEmpty() bool
	Size() int
	MaxSize() int
	Clear()
	// Insert links k to v. Any existing entry sharing k and any existing
	// entry sharing v is removed first, so the map stays one-to-one. The
	// removed entries (0, 1 or 2) are returned.
	Insert(k K, v V) []Entry[K, V]
	// Erase removes the entry keyed by k, reporting whether one existed.
	// Erasing an absent key is a no-op, not an error.
	Erase(k K) bool
	// EraseValue removes the entry holding v, reporting whether one existed.
	EraseValue(v V) bool
	ContainsKey(k K) bool
	ContainsValue(v V) bool
	// GetValue returns the value linked to k, or ErrKeyNotExisted.
	GetValue(k K) (V, error)
	// GetKey returns the key linked to v, or ErrValueNotExisted.
	GetKey(v V) (K, error)
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
}

// OrderedBimap additionally iterates its entries in key order, ascending via
// First/Next and descending via Last/Prev.
type OrderedBimap[K any, V any] interface {
	Bimap[K, V]
	Iterator() Iterator[K, V]
}

// bimap keeps a forward (key-indexed) and an inverse (value-indexed)
// projection of the same entry set. Every mutation touches both projections
// before returning, which is what keeps the two directions consistent.
type bimap[K any, V any] struct {
	forward Map[K, V]
	inverse Map[V, K]
}

func (b *bimap[K, V]) IsEmpty() bool {
	return b.forward.Size() == 0
}

func (b *bimap[K, V]) Size() int {
	return b.forward.Size()
}

func (b *bimap[K, V]) MaxSize() int {
	return math.MaxInt
}

func (b *bimap[K, V]) Clear() {
	b.forward.Clear()
	b.inverse.Clear()
}

func (b *bimap[K, V]) Insert(k K, v V) []Entry[K, V] {
	var removed []Entry[K, V]
	if oldValue, err := b.forward.Get(k); err == nil {
		_ = b.forward.Delete(k)
		_ = b.inverse.Delete(oldValue)
		removed = append(removed, Entry[K, V]{Key: k, Value: oldValue})
	}
	if oldKey, err := b.inverse.Get(v); err == nil {
		_ = b.inverse.Delete(v)
		_ = b.forward.Delete(oldKey)
		removed = append(removed, Entry[K, V]{Key: oldKey, Value: v})
	}
	_ = b.forward.Put(k, v, true)
	_ = b.inverse.Put(v, k, true)
	return removed
}

func (b *bimap[K, V]) Erase(k K) bool {
	v, err := b.forward.Get(k)
	if err != nil {
		return false
	}
	_ = b.forward.Delete(k)
	_ = b.inverse.Delete(v)
	return true
}

func (b *bimap[K, V]) EraseValue(v V) bool {
	k, err := b.inverse.Get(v)
	if err != nil {
		return false
	}
	_ = b.inverse.Delete(v)
	_ = b.forward.Delete(k)
	return true
}

func (b *bimap[K, V]) ContainsKey(k K) bool {
	return b.forward.Contains(k)
}

func (b *bimap[K, V]) ContainsValue(v V) bool {
	return b.inverse.Contains(v)
}

func (b *bimap[K, V]) GetValue(k K) (v V, err error) {
	v, err = b.forward.Get(k)
	if err != nil {
		return v, ErrKeyNotExisted
	}
	return v, nil
}

func (b *bimap[K, V]) GetKey(v V) (k K, err error) {
	k, err = b.inverse.Get(v)
	if err != nil {
		return k, ErrValueNotExisted
	}
	return k, nil
}

func (b *bimap[K, V]) Keys() []K {
	return b.forward.Keys()
}

func (b *bimap[K, V]) Values() []V {
	return b.forward.Values()
}

func (b *bimap[K, V]) Entries() []Entry[K, V] {
	keys := b.forward.Keys()
	arr := make([]Entry[K, V], 0, len(keys))
	for _, k := range keys {
		v, err := b.forward.Get(k)
		if err != nil {
			continue
		}
		arr = append(arr, Entry[K, V]{Key: k, Value: v})
	}
	return arr
}
