package campus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Query outcomes reported to an Observer.
const (
	OutcomeFound        = "found"
	OutcomeUnreachable  = "unreachable"
	OutcomeInvalidNode  = "invalid_node"
	OutcomeInvalidQuery = "invalid_query"
	OutcomeError        = "error"
)

// Observer receives one call per routed query.
type Observer interface {
	ObserveQuery(outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, time.Duration) {}

// Route is a name-level answer to a query.
type Route struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Stops     []string `json:"stops,omitempty"`
	Indices   []int    `json:"indices,omitempty"`
	Cost      int64    `json:"cost"`
	Reachable bool     `json:"reachable"`
}

// Table is the all-pairs distance table. Cost[i][j] is the shortest cost
// from Names[i] to Names[j], 0 on the diagonal, -1 when unreachable.
type Table struct {
	Names []string  `json:"names"`
	Cost  [][]int64 `json:"cost"`
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) RouterOption {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver registers a query observer (metrics).
func WithObserver(o Observer) RouterOption {
	return func(r *Router) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithStrategy selects the engine strategy.
func WithStrategy(s dijkstra.Strategy) RouterOption {
	return func(r *Router) { r.strategy = s }
}

// WithParallel bounds the number of concurrent queries Table runs.
// Values < 1 fall back to GOMAXPROCS.
func WithParallel(n int) RouterOption {
	return func(r *Router) { r.parallel = n }
}

// Router answers location-name queries against one immutable campus map.
// It is safe for concurrent use.
type Router struct {
	m        *Map
	names    []string
	engine   *dijkstra.Engine
	logger   *slog.Logger
	observer Observer
	strategy dijkstra.Strategy
	parallel int
}

// NewRouter validates m, builds its engine and logs a warning when the map
// is split into several components.
func NewRouter(m *Map, opts ...RouterOption) (*Router, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil map", ErrInvalidMap)
	}

	r := &Router{
		m:        m,
		names:    m.Names(),
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallel < 1 {
		r.parallel = runtime.GOMAXPROCS(0)
	}

	w, err := m.Weights()
	if err != nil {
		return nil, err
	}
	r.engine, err = dijkstra.NewFromWeights(w, dijkstra.WithStrategy(r.strategy))
	if err != nil {
		return nil, err
	}

	comps, err := bfs.Components(w)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		r.logger.Warn("campus map is disconnected", "map", m.Name, "components", len(comps))
	}
	r.logger.Debug("router ready",
		"map", m.Name,
		"locations", len(m.Locations),
		"roads", w.EdgeCount(),
		"strategy", r.strategy.String(),
	)

	return r, nil
}

// Map returns the map this router serves. Callers must not modify it.
func (r *Router) Map() *Map {
	return r.m
}

// Engine returns the underlying shortest-path engine.
func (r *Router) Engine() *dijkstra.Engine {
	return r.engine
}

// Route resolves from and to and returns the shortest route between them.
//
// Errors match ErrUnknownLocation (and dijkstra.ErrInvalidNode) for names
// that do not resolve, dijkstra.ErrInvalidQuery when both resolve to the
// same location, or ctx.Err(). An unreachable destination is returned as
// Route{Reachable: false} with a nil error.
func (r *Router) Route(ctx context.Context, from, to string) (Route, error) {
	start := time.Now()
	route, err := r.route(ctx, from, to)
	outcome := classify(route, err)
	elapsed := time.Since(start)
	r.observer.ObserveQuery(outcome, elapsed)

	if err != nil {
		r.logger.Debug("route rejected", "from", from, "to", to, "outcome", outcome, "error", err)
		return Route{}, err
	}
	r.logger.Debug("route computed",
		"from", route.From,
		"to", route.To,
		"outcome", outcome,
		"cost", route.Cost,
		"stops", len(route.Indices),
		"elapsed", elapsed,
	)

	return route, nil
}

func (r *Router) route(ctx context.Context, from, to string) (Route, error) {
	s, err := r.m.Resolve(from)
	if err != nil {
		return Route{}, err
	}
	d, err := r.m.Resolve(to)
	if err != nil {
		return Route{}, err
	}

	res, err := r.engine.FindPathContext(ctx, s, d)
	if err != nil {
		return Route{}, fmt.Errorf("route %s → %s: %w", r.names[s], r.names[d], err)
	}

	out := Route{From: r.names[s], To: r.names[d], Reachable: res.Reachable()}
	if !out.Reachable {
		return out, nil
	}
	out.Cost = res.Cost
	out.Indices = res.Path
	out.Stops = make([]string, len(res.Path))
	for i, v := range res.Path {
		out.Stops[i] = r.names[v]
	}

	return out, nil
}

func classify(route Route, err error) string {
	switch {
	case err == nil && route.Reachable:
		return OutcomeFound
	case err == nil:
		return OutcomeUnreachable
	case errors.Is(err, dijkstra.ErrInvalidNode):
		return OutcomeInvalidNode
	case errors.Is(err, dijkstra.ErrInvalidQuery):
		return OutcomeInvalidQuery
	default:
		return OutcomeError
	}
}

// Table computes every pairwise shortest cost. One shortest-path tree is
// built per source, concurrently, bounded by WithParallel.
func (r *Router) Table(ctx context.Context) (*Table, error) {
	n := len(r.names)
	t := &Table{Names: append([]string(nil), r.names...), Cost: make([][]int64, n)}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			tree, err := r.engine.Tree(gctx, i)
			if err != nil {
				return fmt.Errorf("table row %s: %w", r.names[i], err)
			}
			row := make([]int64, n)
			for j, d := range tree.Dist {
				if d == dijkstra.Infinity {
					row[j] = -1
				} else {
					row[j] = d
				}
			}
			t.Cost[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.logger.Debug("distance table computed", "locations", n, "elapsed", time.Since(start))

	return t, nil
}
