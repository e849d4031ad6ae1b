// Package paths provides a small value type to represent and walk the routes
// computed over a rail network.
package paths

import "strings"

// Path is an ordered sequence of city IDs from an origin to a destination,
// both included.
//
// A Path respects the following invariants when produced by the shortest-path
// search:
//
//   - Minimum length: 1 (a city paired with itself)
//   - Origin: first element in the slice
//   - Destination: last element in the slice
//   - Unique cities: no city appears twice
type Path []string

// Leg is a pair of consecutive cities in a path.
type Leg struct {
	From string
	To   string
}

// New returns a path made of the given cities.
func New(cities ...string) Path {
	p := make(Path, len(cities))
	copy(p, cities)
	return p
}

// Len returns the number of cities in the path.
func (p Path) Len() int {
	return len(p)
}

// Origin returns the first city of the path or "" if the path is empty.
func (p Path) Origin() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Destination returns the last city of the path or "" if the path is empty.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Legs returns the consecutive city pairs traversed by the path. A path with
// less than two cities has no legs.
func (p Path) Legs() []Leg {
	if len(p) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		legs = append(legs, Leg{From: p[i-1], To: p[i]})
	}
	return legs
}

// Extend returns a new path made of p followed by city. The receiver is left
// untouched so that paths sharing a prefix never alias each other.
func (p Path) Extend(city string) Path {
	np := make(Path, len(p), len(p)+1)
	copy(np, p)
	return append(np, city)
}

// Reverse returns a new path with the cities in reverse order.
func (p Path) Reverse() Path {
	np := make(Path, len(p))
	for i, c := range p {
		np[len(p)-1-i] = c
	}
	return np
}

// String returns a string representation of the path as a sequence of cities
// separated by " -> ". For example: "Toronto -> Buffalo -> Cleveland".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}
