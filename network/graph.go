package network

import (
	"slices"
)

// Edge represents one direction of an active link.
type Edge struct {
	From     int
	To       int
	Distance float64
}

// Graph is the undirected graph formed by the active links of a snapshot.
// Cities are identified by a dense index in [0, len(IDs)).
type Graph struct {
	IDs   []string
	Nexts [][]int
	Edges []Edge

	index map[string]int
}

// NewGraph builds the graph of the snapshot's active links. Every city that
// is an endpoint of a link (active or not) is a node of the graph; endpoints
// of inactive links only are isolated nodes. Nodes are indexed in increasing
// ID order.
func NewGraph(s *Snapshot) *Graph {
	index := map[string]int{}
	for _, l := range s.Links {
		index[l.Origin] = 0
		index[l.Destination] = 0
	}
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for i, id := range ids {
		index[id] = i
	}

	g := &Graph{
		IDs:   ids,
		Nexts: make([][]int, len(ids)),
		index: index,
	}

	// Link IDs are sorted so that the adjacency lists (and thus the paths
	// reported between equally short alternatives) do not depend on map
	// iteration order.
	linkIDs := make([]string, 0, len(s.Links))
	for id := range s.Links {
		linkIDs = append(linkIDs, id)
	}
	slices.Sort(linkIDs)

	for _, id := range linkIDs {
		l := s.Links[id]
		if !l.Active {
			continue
		}
		u, v := index[l.Origin], index[l.Destination]
		g.addEdge(Edge{From: u, To: v, Distance: l.Distance})
		g.addEdge(Edge{From: v, To: u, Distance: l.Distance})
	}
	return g
}

func (g *Graph) addEdge(e Edge) {
	g.Nexts[e.From] = append(g.Nexts[e.From], len(g.Edges))
	g.Edges = append(g.Edges, e)
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.IDs)
}

// Index returns the index of the city and whether it is a node of the graph.
func (g *Graph) Index(city string) (int, bool) {
	i, ok := g.index[city]
	return i, ok
}
