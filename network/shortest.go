package network

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/rhartert/railplan/network/paths"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
	"golang.org/x/sync/errgroup"
)

// PathEntry is the cheapest path between two cities and its total distance.
type PathEntry struct {
	Path     paths.Path
	Distance float64
}

// PathTable maps an origin city to the cheapest path to every city reachable
// from it (itself included).
type PathTable map[string]map[string]PathEntry

// ShortestPaths computes the cheapest path between every pair of connected
// cities of the snapshot, using active links only.
//
// Each node of the graph is the source of an independent search. Searches run
// concurrently on at most workers goroutines (GOMAXPROCS if workers <= 0). The
// only error returned is the context's error if ctx is done before all the
// searches complete.
func ShortestPaths(ctx context.Context, s *Snapshot, workers int) (PathTable, error) {
	g := NewGraph(s)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pt := make(PathTable, g.NumNodes())
	mu := sync.Mutex{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for src := range g.NumNodes() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := g.ShortestFrom(src)
			if err != nil {
				return err
			}
			mu.Lock()
			pt[g.IDs[src]] = out
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return pt, nil
}

// ShortestFrom computes the cheapest path from node src to every node
// reachable from it. Unreachable nodes are absent from the returned map.
//
// The search pops nodes by increasing distance from src. The first time a
// node is popped, its distance is final because all distances are
// non-negative. When two paths to a node have the same distance, the first
// one discovered is kept.
func (g *Graph) ShortestFrom(src int) (map[string]PathEntry, error) {
	if g == nil {
		return nil, fmt.Errorf("graph is nil")
	}

	nNodes := g.NumNodes()
	if src < 0 || nNodes <= src {
		return nil, fmt.Errorf("node %d is not in the graph", src)
	}

	prevs := make([]int, nNodes)
	costs := make([]float64, nNodes)
	for i := range costs {
		costs[i] = math.Inf(1)
		prevs[i] = -1
	}

	done := sparsesets.New(nNodes)
	h := yagh.New[float64](nNodes)
	h.Put(src, 0)
	costs[src] = 0

	for h.Size() > 0 {
		entry := h.Pop()
		u, c := entry.Elem, entry.Cost
		done.Insert(u)

		for _, e := range g.Nexts[u] {
			v := g.Edges[e].To
			if done.Contains(v) {
				continue
			}

			// Path src -> u -> v is not better than the best path to v so
			// far. Equal paths are ignored to keep the first one found.
			newCost := c + g.Edges[e].Distance
			if costs[v] <= newCost {
				continue
			}

			costs[v] = newCost
			prevs[v] = u
			h.Put(v, newCost)
		}
	}

	out := make(map[string]PathEntry, len(done.Content()))
	for _, v := range done.Content() {
		out[g.IDs[v]] = PathEntry{
			Path:     g.pathTo(prevs, v),
			Distance: costs[v],
		}
	}
	return out, nil
}

// pathTo follows the predecessors from v back to the search's source.
func (g *Graph) pathTo(prevs []int, v int) paths.Path {
	p := paths.Path{}
	for u := v; u != -1; u = prevs[u] {
		p = append(p, g.IDs[u])
	}
	return p.Reverse()
}
