package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	m := NewHashMap[string, *Mock]()
	require.Nil(t, m.Put("aa", &Mock{
		A: "aa",
		B: 22,
	}, false))
	require.Nil(t, m.Put("bb", &Mock{
		A: "bb",
		B: 55,
	}, false))
	require.NotNil(t, m.Put("aa", &Mock{
		A: "aa",
		B: 23,
	}, false))
	require.Equal(t, 2, m.Size())
	require.Equal(t, true, m.Contains("aa"))
	require.Equal(t, true, m.Contains("bb"))
	require.Equal(t, false, m.Contains("cc"))
	require.Equal(t, 2, len(m.Keys()))
	require.Equal(t, 2, len(m.Values()))
	v, err := m.Get("aa")
	require.Nil(t, err)
	require.Equal(t, 22, v.B)
	_, err = m.Get("cc")
	require.ErrorIs(t, err, ErrValueNotExisted)
	require.Nil(t, m.Delete("bb"))
	require.Equal(t, false, m.Contains("bb"))
	require.Equal(t, 1, m.Size())
	m.Clear()
	require.Equal(t, 0, m.Size())
	require.Equal(t, false, m.Contains("aa"))
}
