// Package stats derives route and link statistics from the shortest paths of
// a rail network.
package stats

import (
	"github.com/rhartert/railplan/econ"
	"github.com/rhartert/railplan/network"
	"github.com/rhartert/railplan/network/paths"
)

// RouteStats holds the statistics of the route between two cities.
type RouteStats struct {
	OriginPop      float64
	DestinationPop float64
	Path           paths.Path
	Distance       float64
	econ.Estimate
}

// RouteTable maps an origin city to the statistics of the route to each
// destination city.
type RouteTable map[string]map[string]RouteStats

// IsReady returns true if every city present in the path table has a record
// in cities.
func IsReady(pt network.PathTable, cities map[string]network.City) bool {
	for from, out := range pt {
		if _, ok := cities[from]; !ok {
			return false
		}
		for to := range out {
			if _, ok := cities[to]; !ok {
				return false
			}
		}
	}
	return true
}

// BuildRoutes applies the model to every route of the path table.
//
// If a city of the path table has no record in cities (e.g. the data are
// still being loaded), the returned table is empty. An empty table therefore
// means "not ready" and never "no profitable route".
func BuildRoutes(pt network.PathTable, cities map[string]network.City, cfg econ.Config) RouteTable {
	rt := RouteTable{}
	if !IsReady(pt, cities) {
		return rt
	}

	for from, out := range pt {
		routes := make(map[string]RouteStats, len(out))
		for to, pe := range out {
			if cfg.ExcludeSelfPairs && from == to {
				continue
			}
			op := cities[from].Population
			dp := cities[to].Population
			routes[to] = RouteStats{
				OriginPop:      op,
				DestinationPop: dp,
				Path:           pe.Path,
				Distance:       pe.Distance,
				Estimate:       cfg.Route(op, dp, pe.Distance),
			}
		}
		rt[from] = routes
	}
	return rt
}
