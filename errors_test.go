package disjoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_OutOfBounds(t *testing.T) {
	s := NewSet(3)

	for _, bad := range []int{-1, 3, 100} {
		_, err := s.Find(bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Find(%d)", bad)

		_, err = s.Root(bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Root(%d)", bad)

		_, err = s.SizeOf(bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "SizeOf(%d)", bad)

		_, err = s.Joined(bad, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Joined(%d, 0)", bad)
		_, err = s.Joined(0, bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Joined(0, %d)", bad)

		_, err = s.Join(bad, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Join(%d, 0)", bad)
		_, err = s.Join(0, bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Join(0, %d)", bad)
	}
}

func TestSet_OutOfBoundsLeavesStateUnchanged(t *testing.T) {
	s := NewSet(4)
	mustJoin(t, s, 0, 1)
	before := s.Sets()

	// Bounds are checked before any mutation, including the valid index.
	_, err := s.Join(2, 4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Join(4, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, before, s.Sets())
}

func TestSet_OutOfBoundsOnEmpty(t *testing.T) {
	var s Set

	_, err := s.Find(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetVec_OutOfBounds(t *testing.T) {
	v := SetVecOf("a", "b")

	for _, bad := range []int{-1, 2} {
		_, err := v.Value(bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Value(%d)", bad)

		err = v.SetValue(bad, "x")
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "SetValue(%d)", bad)

		_, err = v.Find(bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Find(%d)", bad)

		_, err = v.Joined(0, bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Joined(0, %d)", bad)

		_, err = v.Join(0, bad)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Join(0, %d)", bad)
	}

	// Nothing changed.
	assert.Equal(t, []string{"a", "b"}, v.Values())
	assert.Equal(t, [][]int{{0}, {1}}, v.Indices().Sets())
}

func TestErrIndexOutOfRange_Message(t *testing.T) {
	s := NewSet(3)

	_, err := s.Find(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "disjoint: index out of range")
	assert.Contains(t, err.Error(), "index 7")
	assert.Contains(t, err.Error(), "length 3")
}
