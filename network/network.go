// Package network holds the cities and links of a rail network and computes
// the cheapest-distance routes between its cities.
package network

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrUnknownCity = errors.New("unknown city")
	ErrUnknownLink = errors.New("unknown link")
	ErrDuplicate   = errors.New("duplicate record")
)

// City is a node of the network. The state and position are not used by the
// computations and are only carried through for rendering.
type City struct {
	ID         string
	State      string
	Population float64
	Lng        float64
	Lat        float64
}

// Link is a point-to-point segment between two cities. Although its ID is
// directional, a link is traversable in both directions.
type Link struct {
	Origin      string
	Destination string
	Distance    float64
	Cost        float64
	Active      bool
}

// ID returns the identifier of the link, e.g. "Toronto - Buffalo".
func (l Link) ID() string {
	return LinkID(l.Origin, l.Destination)
}

// LinkID returns the identifier of the link going from origin to destination.
func LinkID(origin string, destination string) string {
	return origin + " - " + destination
}

// Snapshot is the state of the network at a given version. A snapshot must
// not be modified while a computation reads it; the Set* methods return
// modified copies instead.
type Snapshot struct {
	Version uint64
	Cities  map[string]City
	Links   map[string]Link
}

// NewSnapshot returns a snapshot at version 1 made of the given cities and
// links. Links are keyed by ID so that a link and its reverse are two distinct
// records.
func NewSnapshot(cities []City, links []Link) (*Snapshot, error) {
	s := &Snapshot{
		Version: 1,
		Cities:  make(map[string]City, len(cities)),
		Links:   make(map[string]Link, len(links)),
	}
	for _, c := range cities {
		if _, ok := s.Cities[c.ID]; ok {
			return nil, fmt.Errorf("city %q: %w", c.ID, ErrDuplicate)
		}
		s.Cities[c.ID] = c
	}
	for _, l := range links {
		id := l.ID()
		if _, ok := s.Links[id]; ok {
			return nil, fmt.Errorf("link %q: %w", id, ErrDuplicate)
		}
		s.Links[id] = l
	}
	return s, nil
}

// Clone returns a copy of the snapshot with the next version number.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Version: s.Version + 1,
		Cities:  maps.Clone(s.Cities),
		Links:   maps.Clone(s.Links),
	}
}

// SetActive returns a copy of the snapshot where link id is switched on or
// off.
func (s *Snapshot) SetActive(id string, active bool) (*Snapshot, error) {
	l, ok := s.Links[id]
	if !ok {
		return nil, fmt.Errorf("link %q: %w", id, ErrUnknownLink)
	}
	ns := s.Clone()
	l.Active = active
	ns.Links[id] = l
	return ns, nil
}

// SetPopulation returns a copy of the snapshot where the population of city
// is replaced by population.
func (s *Snapshot) SetPopulation(city string, population float64) (*Snapshot, error) {
	c, ok := s.Cities[city]
	if !ok {
		return nil, fmt.Errorf("city %q: %w", city, ErrUnknownCity)
	}
	ns := s.Clone()
	c.Population = population
	ns.Cities[city] = c
	return ns, nil
}

// ActiveLinks returns the number of links that are switched on.
func (s *Snapshot) ActiveLinks() int {
	n := 0
	for _, l := range s.Links {
		if l.Active {
			n++
		}
	}
	return n
}
