package stats

import (
	"maps"
	"slices"

	"github.com/rhartert/yagh"
)

// RankedLink is a link and its statistics.
type RankedLink struct {
	ID string
	LinkStats
}

// TopLinks returns the n links with the highest total profit, in decreasing
// order of profit. All the links are returned if n is negative or greater
// than the number of links.
func TopLinks(lt LinkTable, n int) []RankedLink {
	ids := slices.Sorted(maps.Keys(lt))
	if n < 0 || n > len(ids) {
		n = len(ids)
	}

	// Links are ordered by decreasing profit.
	h := yagh.New[float64](len(ids))
	for i, id := range ids {
		h.Put(i, -lt[id].TotalProfit)
	}

	top := make([]RankedLink, 0, n)
	for len(top) < n {
		entry := h.Pop()
		id := ids[entry.Elem]
		top = append(top, RankedLink{ID: id, LinkStats: lt[id]})
	}
	return top
}
