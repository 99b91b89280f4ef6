package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube2222/octovalue/value"
)

func TestSortedSet(t *testing.T) {
	set := NewSortedSet()

	values := []value.Value{
		value.NewInt(17),
		value.NewFloat(2.5),
		value.NewNull(),
		value.NewInt(-3),
		value.NewFloat(17),
		value.NewInt(4),
	}
	for _, v := range values {
		require.NoError(t, set.Insert(v))
	}

	// 17 and 17.0 compare equal, so they share an entry.
	assert.Equal(t, 5, set.Len())

	count, err := set.GetCount(value.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got := set.ReadAll()
	require.Len(t, got, 6)
	assert.True(t, got[0].IsNull())
	assert.Equal(t, "-3", got[1].String())
	assert.Equal(t, "2.5", got[2].String())
	assert.Equal(t, "4", got[3].String())
	assert.Equal(t, "17", got[4].String())
	assert.Equal(t, "17", got[5].String())

	lowest, ok := set.Min()
	require.True(t, ok)
	assert.True(t, lowest.IsNull())

	highest, ok := set.Max()
	require.True(t, ok)
	assert.Equal(t, int32(17), highest.AsInt())

	require.NoError(t, set.Erase(value.NewInt(17)))
	count, err = set.GetCount(value.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, set.Erase(value.NewFloat(17)))
	count, err = set.GetCount(value.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 4, set.Len())

	require.NoError(t, set.Erase(value.NewInt(1000)))
	assert.Equal(t, 4, set.Len())
}

func TestSortedSetStrings(t *testing.T) {
	set := NewSortedSet()
	for _, s := range []string{"abc", "ab", "b", "", "ab"} {
		require.NoError(t, set.Insert(value.NewString(s, 0)))
	}

	var got []string
	set.Ascend(func(v value.Value, count int) bool {
		got = append(got, v.String())
		return true
	})
	assert.Equal(t, []string{"", "ab", "abc", "b"}, got)

	var first []string
	set.Ascend(func(v value.Value, count int) bool {
		first = append(first, v.String())
		return len(first) < 2
	})
	assert.Equal(t, []string{"", "ab"}, first)
}

func TestSortedSetDates(t *testing.T) {
	set := NewSortedSet()
	for _, s := range []string{"2024-02-29", "1999-12-31", "2024-01-01"} {
		v := value.NewString(s, 0)
		require.NoError(t, v.ConvertTo(value.AttrDates))
		require.NoError(t, set.Insert(v))
	}

	var got []string
	for _, v := range set.ReadAll() {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"1999-12-31", "2024-1-1", "2024-2-29"}, got)
}

func TestSortedSetRejectsMixedKinds(t *testing.T) {
	set := NewSortedSet()
	require.NoError(t, set.Insert(value.NewNull()))
	require.NoError(t, set.Insert(value.NewString("a", 0)))

	err := set.Insert(value.NewInt(1))
	assert.ErrorIs(t, err, ErrIncomparable)

	_, err = set.GetCount(value.NewBoolean(true))
	assert.ErrorIs(t, err, ErrIncomparable)

	assert.ErrorIs(t, set.Insert(value.Value{}), ErrIncomparable)

	set.Clear()
	assert.Equal(t, 0, set.Len())
	require.NoError(t, set.Insert(value.NewInt(1)))
	require.NoError(t, set.Insert(value.NewFloat(0.5)))

	_, ok := NewSortedSet().Min()
	assert.False(t, ok)
}

func TestSortedSetCopiesValues(t *testing.T) {
	set := NewSortedSet()
	v := value.NewString("abc", 0)
	require.NoError(t, set.Insert(v))
	v.RawBytes()[0] = 'x'

	got := set.ReadAll()
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].String())
}
