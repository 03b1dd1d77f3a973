package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEdge(t *testing.T) {
	e, ok := NewEdge(9, 3)
	assert.True(t, ok)
	assert.Equal(t, Edge{A: 3, B: 9}, e)

	e2, ok := NewEdge(3, 9)
	assert.True(t, ok)
	assert.Equal(t, e, e2)

	_, ok = NewEdge(4, 4)
	assert.False(t, ok)
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want []Edge
	}{
		{"Empty", nil, nil},
		{"Single", []int64{1}, nil},
		{"Duplicates only", []int64{5, 5, 5}, nil},
		{"Two", []int64{2, 1}, []Edge{{1, 2}}},
		{"Three with duplicate", []int64{3, 1, 2, 3}, []Edge{{1, 2}, {1, 3}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pairs(tt.ids))
		})
	}
}

func TestPairs_Properties(t *testing.T) {
	ids := []int64{10, 4, 7, 1, 4, 22}
	edges := Pairs(ids)

	// 5 distinct ids give C(5,2) pairs.
	assert.Len(t, edges, 10)

	seen := map[Edge]bool{}
	for _, e := range edges {
		assert.Less(t, e.A, e.B)
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
}
