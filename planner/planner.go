// Package planner runs the full computation pipeline over snapshots of a rail
// network: shortest paths, route statistics and link statistics.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rhartert/railplan/econ"
	"github.com/rhartert/railplan/network"
	"github.com/rhartert/railplan/stats"
)

// ErrSuperseded is returned by Planner.Submit when the computation was
// abandoned because a snapshot with a greater version was submitted.
var ErrSuperseded = errors.New("superseded by a newer snapshot")

type Options struct {
	// Workers is the maximum number of shortest-path searches run
	// concurrently. Zero or negative values use GOMAXPROCS.
	Workers int

	// Logger receives debug information about each computation. The default
	// logger is used if nil.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Result holds everything derived from one snapshot.
type Result struct {
	Version uint64

	// Ready is false if some cities of the network have no record yet, in
	// which case Routes and Links are empty.
	Ready bool

	Paths   network.PathTable
	Routes  stats.RouteTable
	Links   stats.LinkTable
	Summary stats.Summary
}

// Plan computes the result of snapshot s. It returns an error if ctx is done
// before the computation completes or if the routes traverse a pair of
// cities that no link joins (see stats.ErrMissingLink).
func Plan(ctx context.Context, s *network.Snapshot, cfg econ.Config, opts Options) (*Result, error) {
	log := opts.logger().With("version", s.Version)
	start := time.Now()

	pt, err := network.ShortestPaths(ctx, s, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("computing shortest paths: %w", err)
	}

	res := &Result{
		Version: s.Version,
		Ready:   stats.IsReady(pt, s.Cities),
		Paths:   pt,
		Routes:  stats.RouteTable{},
		Links:   stats.LinkTable{},
	}
	if !res.Ready {
		log.Debug("network data not ready", "sources", len(pt), "cities", len(s.Cities))
		res.Summary = stats.Summarize(s, res.Routes)
		return res, nil
	}

	res.Routes = stats.BuildRoutes(pt, s.Cities, cfg)
	res.Links, err = stats.RollupLinks(res.Routes, s.Links)
	if err != nil {
		return nil, fmt.Errorf("rolling up links: %w", err)
	}
	res.Summary = stats.Summarize(s, res.Routes)

	log.Debug("plan computed",
		"sources", len(pt),
		"links", len(res.Links),
		"elapsed", time.Since(start))
	return res, nil
}

// Planner computes the results of successive snapshots and keeps the result
// of the most recent one. Results are ordered by snapshot version, not by
// completion time: the result of an older snapshot never replaces the result
// of a newer one, and submitting a snapshot cancels the in-flight computation
// of any older snapshot.
type Planner struct {
	cfg  econ.Config
	opts Options

	mu             sync.Mutex
	latest         *Result
	submitted      uint64 // greatest version submitted so far
	cancelInflight context.CancelFunc
}

// New returns a new Planner that computes results with the given
// configuration.
func New(cfg econ.Config, opts Options) *Planner {
	return &Planner{cfg: cfg, opts: opts}
}

// Latest returns the result of the most recent snapshot computed so far or nil
// if no result is available yet.
func (p *Planner) Latest() *Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Submit computes the result of snapshot s and publishes it unless a result
// for a newer snapshot was published in the meantime. The second returned
// value indicates whether the result was published.
//
// Submitting a snapshot whose version is not greater than the version of a
// snapshot submitted before returns ErrSuperseded without computing anything.
func (p *Planner) Submit(ctx context.Context, s *network.Snapshot) (*Result, bool, error) {
	log := p.opts.logger().With("version", s.Version)

	p.mu.Lock()
	if s.Version <= p.submitted {
		p.mu.Unlock()
		log.Debug("stale snapshot ignored")
		return nil, false, ErrSuperseded
	}
	if p.cancelInflight != nil {
		p.cancelInflight()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.submitted = s.Version
	p.cancelInflight = cancel
	p.mu.Unlock()

	res, err := Plan(ctx, s, p.cfg, p.opts)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.submitted == s.Version {
		p.cancelInflight = nil
	}
	if err != nil {
		if p.submitted != s.Version && errors.Is(err, context.Canceled) {
			log.Debug("computation abandoned", "newer", p.submitted)
			return nil, false, ErrSuperseded
		}
		return nil, false, err
	}
	if p.latest != nil && p.latest.Version >= res.Version {
		log.Debug("stale result dropped", "latest", p.latest.Version)
		return res, false, nil
	}
	p.latest = res
	return res, true, nil
}
