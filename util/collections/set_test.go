package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemoveContains(t *testing.T) {
	set := NewSet[int]()
	assert.False(t, set.Contains(1))

	set.Add(1)
	set.Add(1)
	assert.True(t, set.Contains(1))
	assert.Len(t, set, 1)

	set.Remove(1)
	set.Remove(2)
	assert.False(t, set.Contains(1))
	assert.Empty(t, set)
}

func TestDifference(t *testing.T) {
	left := NewSet(1, 2, 3)
	right := NewSet(2, 4)

	assert.Equal(t, NewSet(1, 3), left.Difference(right))
	assert.Equal(t, NewSet(4), right.Difference(left))
	assert.Empty(t, left.Difference(left))
}

func TestIntersectionEx(t *testing.T) {
	tests := []struct {
		name         string
		left, right  Set[string]
		intersection Set[string]
		isSubset     bool
	}{
		{
			name:         "subset",
			left:         NewSet("a", "b"),
			right:        NewSet("a", "b", "c"),
			intersection: NewSet("a", "b"),
			isSubset:     true,
		},
		{
			name:         "equal",
			left:         NewSet("a"),
			right:        NewSet("a"),
			intersection: NewSet("a"),
			isSubset:     true,
		},
		{
			name:         "overlap",
			left:         NewSet("a", "d"),
			right:        NewSet("a", "b"),
			intersection: NewSet("a"),
			isSubset:     false,
		},
		{
			name:         "empty is a subset",
			left:         NewSet[string](),
			right:        NewSet("a"),
			intersection: NewSet[string](),
			isSubset:     true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			intersection, isSubset := test.left.IntersectionEx(test.right)
			assert.Equal(t, test.intersection, intersection)
			assert.Equal(t, test.isSubset, isSubset)
			assert.Equal(t, test.intersection, test.left.Intersection(test.right))
		})
	}
}
