package stats

import (
	"slices"

	"github.com/rhartert/railplan/network"
	"github.com/rhartert/sparsesets"
)

// LinkLoads accumulates the ridership and profit carried by each link of a
// network. Links are identified by a dense index in increasing ID order.
type LinkLoads struct {
	ids   []string
	links []network.Link
	index map[string]int

	ridership []float64
	profit    []float64

	// Set of links that received at least one contribution. Only those links
	// are reported by Table.
	touched *sparsesets.Set
}

// NewLinkLoads initializes and returns a new LinkLoads for the given links.
func NewLinkLoads(links map[string]network.Link) *LinkLoads {
	ids := make([]string, 0, len(links))
	for id := range links {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ll := &LinkLoads{
		ids:       ids,
		links:     make([]network.Link, len(ids)),
		index:     make(map[string]int, len(ids)),
		ridership: make([]float64, len(ids)),
		profit:    make([]float64, len(ids)),
		touched:   sparsesets.New(len(ids)),
	}
	for i, id := range ids {
		ll.links[i] = links[id]
		ll.index[id] = i
	}
	return ll
}

// Resolve returns the index of the link joining cities a and b. The link with
// ID "a - b" is preferred over the reverse link "b - a". The second returned
// value is false if neither exists.
func (ll *LinkLoads) Resolve(a string, b string) (int, bool) {
	if i, ok := ll.index[network.LinkID(a, b)]; ok {
		return i, true
	}
	i, ok := ll.index[network.LinkID(b, a)]
	return i, ok
}

// Link returns the record of the link at index i.
func (ll *LinkLoads) Link(i int) network.Link {
	return ll.links[i]
}

// Add adds ridership and profit to the link at index i.
func (ll *LinkLoads) Add(i int, ridership float64, profit float64) {
	if !ll.touched.Contains(i) {
		ll.touched.Insert(i)
	}
	ll.ridership[i] += ridership
	ll.profit[i] += profit
}

// Touched returns the indices of the links that received a contribution, in
// the order they were first touched.
//
// Important: the slice is a view on one of the structure's internals and
// should only be used in read-only operations.
func (ll *LinkLoads) Touched() []int {
	return ll.touched.Content()
}

// Table returns the statistics of every touched link keyed by link ID. The
// cost of a link is copied from its record.
func (ll *LinkLoads) Table() LinkTable {
	lt := make(LinkTable, len(ll.touched.Content()))
	for _, i := range ll.touched.Content() {
		lt[ll.ids[i]] = LinkStats{
			Ridership:   ll.ridership[i],
			TotalProfit: ll.profit[i],
			Cost:        ll.links[i].Cost,
		}
	}
	return lt
}
