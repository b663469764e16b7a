package collections

import "golang.org/x/exp/constraints"

// Entry is a single (key, value) association.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}
