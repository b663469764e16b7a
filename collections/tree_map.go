package collections

import (
	"github.com/anacrolix/btree"

	"golang.org/x/exp/constraints"
)

type treeMap[K any, V any] struct {
	entries btree.Map[K, V]
	compare func(K, K) int
	size    int
}

func NewTreeMap[K constraints.Ordered, V any]() OrderedMap[K, V] {
	return NewTreeMapFunc[K, V](Compare[K])
}

func NewTreeMapFunc[K any, V any](compare func(K, K) int) OrderedMap[K, V] {
	return &treeMap[K, V]{
		entries: btree.MakeMap[K, V](compare),
		compare: compare,
	}
}

func (m *treeMap[K, V]) Contains(k K) bool {
	_, ok := m.entries.Get(k)
	return ok
}

func (m *treeMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrValueExisted
		}
		m.entries.Upsert(k, v)
		return nil
	}
	m.entries.Upsert(k, v)
	m.size++
	return nil
}

func (m *treeMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries.Get(k)
	if !ok {
		var zero V
		return zero, ErrValueNotExisted
	}
	return v, nil
}

func (m *treeMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	m.entries.Delete(k)
	m.size--
	return nil
}

func (m *treeMap[K, V]) Size() int {
	return m.size
}

func (m *treeMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.size)
	it := m.Iterator()
	for it.First(); it.Valid(); it.Next() {
		arr = append(arr, it.Key())
	}
	return arr
}

func (m *treeMap[K, V]) Values() []V {
	arr := make([]V, 0, m.size)
	it := m.Iterator()
	for it.First(); it.Valid(); it.Next() {
		arr = append(arr, it.Value())
	}
	return arr
}

func (m *treeMap[K, V]) Clear() {
	m.entries = btree.MakeMap[K, V](m.compare)
	m.size = 0
}

func (m *treeMap[K, V]) Iterator() Iterator[K, V] {
	it := m.entries.Iterator()
	return newTreeMapIterator[K, V](&it)
}

type btreeIterator[K any, V any] interface {
	First()
	Last()
	Next()
	Prev()
	Valid() bool
	Cur() K
	Value() V
}

type treeMapIterator[K any, V any, I btreeIterator[K, V]] struct {
	it I
}

func newTreeMapIterator[K any, V any, I btreeIterator[K, V]](it I) Iterator[K, V] {
	return &treeMapIterator[K, V, I]{it: it}
}

func (i *treeMapIterator[K, V, I]) First() { i.it.First() }

func (i *treeMapIterator[K, V, I]) Last() { i.it.Last() }

func (i *treeMapIterator[K, V, I]) Next() { i.it.Next() }

func (i *treeMapIterator[K, V, I]) Prev() { i.it.Prev() }

func (i *treeMapIterator[K, V, I]) Valid() bool { return i.it.Valid() }

func (i *treeMapIterator[K, V, I]) Key() K { return i.it.Cur() }

func (i *treeMapIterator[K, V, I]) Value() V { return i.it.Value() }
