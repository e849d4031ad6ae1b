package stats

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rhartert/railplan/network"
)

// ErrMissingLink is returned when a route traverses two consecutive cities
// that are not joined by any link record, which means that the routes and
// the links were not computed from the same network.
var ErrMissingLink = errors.New("no link between consecutive cities")

// LinkStats holds the statistics of a link.
type LinkStats struct {
	Ridership   float64
	TotalProfit float64
	Cost        float64
}

// LinkTable maps a link ID to the link's statistics.
type LinkTable map[string]LinkStats

// RollupLinks distributes the ridership and profit of every route onto the
// links traversed by the route's path. Only links on at least one path are
// present in the returned table.
//
// Each leg of a route receives half of the route's ridership and half of the
// route's profit weighted by the leg's share of the route distance: a route
// and its reverse both traverse the same links and must not count the same
// travelers twice.
func RollupLinks(rt RouteTable, links map[string]network.Link) (LinkTable, error) {
	ll := NewLinkLoads(links)

	// Routes are visited in a fixed order so that floating point sums are
	// reproducible.
	for _, from := range slices.Sorted(maps.Keys(rt)) {
		out := rt[from]
		for _, to := range slices.Sorted(maps.Keys(out)) {
			r := out[to]
			for _, leg := range r.Path.Legs() {
				i, ok := ll.Resolve(leg.From, leg.To)
				if !ok {
					return nil, fmt.Errorf("route %s: leg %s - %s: %w", r.Path, leg.From, leg.To, ErrMissingLink)
				}
				profit := 0.0
				if r.Distance > 0 {
					profit = r.TotalProfit * (ll.Link(i).Distance / r.Distance) / 2
				}
				ll.Add(i, r.Ridership/2, profit)
			}
		}
	}

	return ll.Table(), nil
}
