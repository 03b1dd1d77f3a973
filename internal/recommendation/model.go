package recommendation

import "sort"

// Edge is an undirected co-purchase relation stored with A < B.
type Edge struct {
	A int64
	B int64
}

// NewEdge orders x and y canonically. It reports false for a self pair.
func NewEdge(x, y int64) (Edge, bool) {
	switch {
	case x == y:
		return Edge{}, false
	case x < y:
		return Edge{A: x, B: y}, true
	default:
		return Edge{A: y, B: x}, true
	}
}

// Pairs returns every unordered pair over the distinct ids, in canonical
// order. Fewer than two distinct ids yield nil.
func Pairs(ids []int64) []Edge {
	distinct := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	if len(distinct) < 2 {
		return nil
	}

	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	edges := make([]Edge, 0, len(distinct)*(len(distinct)-1)/2)
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			edges = append(edges, Edge{A: distinct[i], B: distinct[j]})
		}
	}
	return edges
}
