package campus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/matrix"
)

// Sentinel errors for map handling.
var (
	// ErrInvalidMap indicates a structurally broken map description.
	ErrInvalidMap = errors.New("campus: invalid map")

	// ErrUnknownLocation indicates that a name or index does not resolve.
	// Errors carrying it also match dijkstra.ErrInvalidNode.
	ErrUnknownLocation = errors.New("campus: unknown location")
)

// Location is a named point on the map. X and Y are display coordinates
// for front-ends; the router never reads them.
type Location struct {
	Name string `yaml:"name" json:"name"`
	X    int    `yaml:"x" json:"x"`
	Y    int    `yaml:"y" json:"y"`
}

// Road is an undirected connection between two locations.
type Road struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

// Map is the full description of a campus: its locations, in index order,
// and the roads between them.
type Map struct {
	Name      string     `yaml:"name" json:"name"`
	Locations []Location `yaml:"locations" json:"locations"`
	Roads     []Road     `yaml:"roads" json:"roads"`
}

// Names returns location names in index order.
func (m *Map) Names() []string {
	out := make([]string, len(m.Locations))
	for i, l := range m.Locations {
		out[i] = l.Name
	}

	return out
}

// index returns the position of the location called name
// (case-insensitive, surrounding space ignored) or -1.
func (m *Map) index(name string) int {
	name = strings.TrimSpace(name)
	for i, l := range m.Locations {
		if strings.EqualFold(l.Name, name) {
			return i
		}
	}

	return -1
}

// Resolve maps an identifier to a location index. A location name wins;
// otherwise a decimal index in range is accepted.
func (m *Map) Resolve(id string) (int, error) {
	if i := m.index(id); i >= 0 {
		return i, nil
	}
	if i, err := strconv.Atoi(strings.TrimSpace(id)); err == nil && i >= 0 && i < len(m.Locations) {
		return i, nil
	}

	return 0, fmt.Errorf("%w: %w: %q", ErrUnknownLocation, dijkstra.ErrInvalidNode, id)
}

// Validate checks names and roads. Weight bounds are left to matrix.Validate.
func (m *Map) Validate() error {
	if len(m.Locations) == 0 {
		return fmt.Errorf("%w: no locations", ErrInvalidMap)
	}

	seen := make(map[string]int, len(m.Locations))
	for i, l := range m.Locations {
		key := strings.ToLower(strings.TrimSpace(l.Name))
		if key == "" {
			return fmt.Errorf("%w: location %d has an empty name", ErrInvalidMap, i)
		}
		if j, dup := seen[key]; dup {
			return fmt.Errorf("%w: locations %d and %d are both named %q", ErrInvalidMap, j, i, l.Name)
		}
		seen[key] = i
	}

	type pair struct{ a, b int }
	roads := make(map[pair]struct{}, len(m.Roads))
	for k, r := range m.Roads {
		a, b := m.index(r.From), m.index(r.To)
		switch {
		case a < 0:
			return fmt.Errorf("%w: road %d: unknown location %q", ErrInvalidMap, k, r.From)
		case b < 0:
			return fmt.Errorf("%w: road %d: unknown location %q", ErrInvalidMap, k, r.To)
		case a == b:
			return fmt.Errorf("%w: road %d loops on %q", ErrInvalidMap, k, r.From)
		case r.Weight <= 0:
			return fmt.Errorf("%w: road %d (%s–%s) has weight %d, want > 0", ErrInvalidMap, k, r.From, r.To, r.Weight)
		}
		if a > b {
			a, b = b, a
		}
		if _, dup := roads[pair{a, b}]; dup {
			return fmt.Errorf("%w: road %d duplicates %s–%s", ErrInvalidMap, k, r.From, r.To)
		}
		roads[pair{a, b}] = struct{}{}
	}

	return nil
}

// Weights validates the map and builds its symmetric weight matrix.
func (m *Map) Weights() (*matrix.Weights, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := len(m.Locations)
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}
	for _, r := range m.Roads {
		a, b := m.index(r.From), m.index(r.To)
		rows[a][b], rows[b][a] = r.Weight, r.Weight
	}

	w, err := matrix.NewWeights(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}

	return w, nil
}

// Components groups location names by connected component.
func (m *Map) Components() ([][]string, error) {
	w, err := m.Weights()
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(w)
	if err != nil {
		return nil, err
	}

	out := make([][]string, len(comps))
	for i, c := range comps {
		out[i] = make([]string, len(c))
		for j, v := range c {
			out[i][j] = m.Locations[v].Name
		}
	}

	return out, nil
}

// Diameter returns the largest finite shortest distance between two
// locations; pairs in different components are ignored.
func (m *Map) Diameter() (int64, error) {
	w, err := m.Weights()
	if err != nil {
		return 0, err
	}
	dist, err := matrix.FloydWarshall(w)
	if err != nil {
		return 0, err
	}

	var best int64
	for _, row := range dist {
		for _, d := range row {
			if d != matrix.NoPath && d > best {
				best = d
			}
		}
	}

	return best, nil
}

// Reference returns the built-in six-location campus.
func Reference() *Map {
	return &Map{
		Name: "Campus",
		Locations: []Location{
			{Name: "NHSRCL", X: 100, Y: 100},
			{Name: "Pahune", X: 300, Y: 100},
			{Name: "Manthan", X: 200, Y: 300},
			{Name: "AcadBlock", X: 400, Y: 300},
			{Name: "Prastuti", X: 500, Y: 100},
			{Name: "SportsComplex", X: 600, Y: 300},
		},
		Roads: []Road{
			{From: "NHSRCL", To: "Pahune", Weight: 10},
			{From: "Pahune", To: "AcadBlock", Weight: 12},
			{From: "Manthan", To: "AcadBlock", Weight: 10},
			{From: "AcadBlock", To: "Prastuti", Weight: 2},
			{From: "Prastuti", To: "SportsComplex", Weight: 8},
		},
	}
}
