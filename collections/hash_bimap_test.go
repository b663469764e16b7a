package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashBimap(t *testing.T) {
	b := NewHashBimap(
		Entry[string, int]{Key: "ONE", Value: 1},
		Entry[string, int]{Key: "TWO", Value: 2},
	)
	require.Equal(t, 2, b.Size())
	v, err := b.GetValue("ONE")
	require.Nil(t, err)
	require.Equal(t, 1, v)
	k, err := b.GetKey(2)
	require.Nil(t, err)
	require.Equal(t, "TWO", k)
	_, err = b.GetValue("THREE")
	require.ErrorIs(t, err, ErrKeyNotExisted)
	_, err = b.GetKey(3)
	require.ErrorIs(t, err, ErrValueNotExisted)
	require.Equal(t, 2, len(b.Keys()))
	require.Equal(t, 2, len(b.Values()))
	require.Equal(t, 2, len(b.Entries()))
}

func TestHashBimapInsertEvictsBothSides(t *testing.T) {
	b := NewHashBimap[string, int]()
	require.Equal(t, 0, len(b.Insert("ONE", 1)))
	require.Equal(t, 0, len(b.Insert("TWO", 2)))
	// collides with "ONE" on the key and 2 on the value
	removed := b.Insert("ONE", 2)
	require.Equal(t, 2, len(removed))
	require.Equal(t, 1, b.Size())
	k, err := b.GetKey(2)
	require.Nil(t, err)
	require.Equal(t, "ONE", k)
	require.Equal(t, false, b.ContainsKey("TWO"))
	require.Equal(t, false, b.ContainsValue(1))
}

func TestHashBimapEraseAndClear(t *testing.T) {
	b := NewHashBimap(
		Entry[string, int]{Key: "ONE", Value: 1},
		Entry[string, int]{Key: "TWO", Value: 2},
	)
	require.Equal(t, true, b.Erase("ONE"))
	require.Equal(t, false, b.Erase("ONE"))
	require.Equal(t, true, b.EraseValue(2))
	require.Equal(t, false, b.EraseValue(2))
	require.Equal(t, true, b.IsEmpty())
	b.Insert("THREE", 3)
	b.Clear()
	require.Equal(t, 0, b.Size())
	_, err := b.GetValue("THREE")
	require.ErrorIs(t, err, ErrKeyNotExisted)
}
