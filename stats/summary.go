package stats

import "github.com/rhartert/railplan/network"

// Summary aggregates the statistics of a whole network.
type Summary struct {
	ActiveLinks int
	BuildCost   float64 // total cost of the active links
	Routes      int     // routes between distinct cities, counted once per pair
	Ridership   float64
	Profit      float64
}

// Summarize returns the summary of the snapshot given its route statistics.
// A route and its reverse carry the same travelers so each ordered pair
// contributes half of its ridership and profit. Self pairs are ignored.
func Summarize(s *network.Snapshot, rt RouteTable) Summary {
	sum := Summary{}
	for _, l := range s.Links {
		if l.Active {
			sum.ActiveLinks++
			sum.BuildCost += l.Cost
		}
	}
	ordered := 0
	for from, out := range rt {
		for to, r := range out {
			if from == to {
				continue
			}
			ordered++
			sum.Ridership += r.Ridership / 2
			sum.Profit += r.TotalProfit / 2
		}
	}
	sum.Routes = ordered / 2
	return sum
}
