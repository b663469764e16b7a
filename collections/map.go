package collections

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
	Clear()
}

// OrderedMap is a Map whose Keys, Values and Iterator follow the key order.
type OrderedMap[K any, V any] interface {
	Map[K, V]
	Iterator() Iterator[K, V]
}

// Iterator is a restartable cursor over a container. A fresh iterator is not
// positioned; call First or Last before reading. Key and Value must only be
// called while Valid returns true.
type Iterator[K any, V any] interface {
	First()
	Last()
	Next()
	Prev()
	Valid() bool
	Key() K
	Value() V
}
