package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Status texts shown to users.
const (
	InvalidSelection = "Invalid source or destination"
	distancePrefix   = "Shortest distance: "
)

// Renderer formats routing answers for a terminal. Colours are chosen for
// the writer it was built for and dropped entirely when that writer is not
// a terminal.
type Renderer struct {
	header lipgloss.Style
	subtle lipgloss.Style
	path   lipgloss.Style
	status lipgloss.Style
	errorS lipgloss.Style
	cell   lipgloss.Style
}

// New builds a Renderer for output written to w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("241")),
		path:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		status: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		errorS: r.NewStyle().Foreground(lipgloss.Color("196")),
		cell:   r.NewStyle().Align(lipgloss.Right),
	}
}

// Distance is the status line for a found route.
func Distance(cost int64) string {
	return distancePrefix + strconv.FormatInt(cost, 10)
}

// Unreachable is the status line when no route exists.
func Unreachable(from, to string) string {
	return fmt.Sprintf("No route from %s to %s", from, to)
}

// Message translates a routing error into user-facing text.
func Message(err error) string {
	switch {
	case errors.Is(err, campus.ErrUnknownLocation),
		errors.Is(err, dijkstra.ErrInvalidNode),
		errors.Is(err, dijkstra.ErrInvalidQuery):
		return InvalidSelection
	default:
		return err.Error()
	}
}

// Status returns the one-line answer for a route.
func Status(rt campus.Route) string {
	if !rt.Reachable {
		return Unreachable(rt.From, rt.To)
	}
	return Distance(rt.Cost)
}

// Error renders err as a styled status line.
func (r *Renderer) Error(err error) string {
	return r.errorS.Render(Message(err)) + "\n"
}

// Route renders the stops of rt, every road of m with the ones on the
// route highlighted, and the status line.
func (r *Renderer) Route(m *campus.Map, rt campus.Route) string {
	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("%s → %s", rt.From, rt.To)))
	b.WriteString("\n")

	if !rt.Reachable {
		b.WriteString(r.errorS.Render(Status(rt)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(r.path.Render(strings.Join(rt.Stops, " → ")))
	b.WriteString("\n")

	// keyed by location index; road names may differ in case from locations
	onPath := make(map[[2]int]bool, len(rt.Indices))
	for i := 1; i < len(rt.Indices); i++ {
		onPath[[2]int{rt.Indices[i-1], rt.Indices[i]}] = true
		onPath[[2]int{rt.Indices[i], rt.Indices[i-1]}] = true
	}
	if m != nil && len(m.Roads) > 0 {
		b.WriteString(r.subtle.Render("Roads"))
		b.WriteString("\n")
		for _, road := range m.Roads {
			line := fmt.Sprintf("%s - %s  %d", road.From, road.To, road.Weight)
			if roadOnPath(m, road, onPath) {
				b.WriteString("  * ")
				b.WriteString(r.path.Render(line))
			} else {
				b.WriteString("    ")
				b.WriteString(r.subtle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(r.status.Render(Status(rt)))
	b.WriteString("\n")

	return b.String()
}

func roadOnPath(m *campus.Map, road campus.Road, onPath map[[2]int]bool) bool {
	a, err := m.Resolve(road.From)
	if err != nil {
		return false
	}
	b, err := m.Resolve(road.To)
	if err != nil {
		return false
	}
	return onPath[[2]int{a, b}]
}

// Locations lists every location with its index and display position.
func (r *Renderer) Locations(m *campus.Map) string {
	var b strings.Builder
	b.WriteString(r.header.Render(m.Name))
	b.WriteString("\n")
	for i, loc := range m.Locations {
		fmt.Fprintf(&b, "%3d  %-16s %s\n", i, loc.Name, r.subtle.Render(fmt.Sprintf("(%d, %d)", loc.X, loc.Y)))
	}
	return b.String()
}

// Table renders the all-pairs distance table; "-" marks unreachable pairs.
func (r *Renderer) Table(t *campus.Table) string {
	width := 1
	for _, n := range t.Names {
		width = max(width, len(n))
	}
	for _, row := range t.Cost {
		for _, c := range row {
			width = max(width, len(strconv.FormatInt(c, 10)))
		}
	}
	cell := r.cell.Width(width + 2)

	var b strings.Builder
	b.WriteString(cell.Render(""))
	for _, n := range t.Names {
		b.WriteString(r.header.Inherit(cell).Render(n))
	}
	b.WriteString("\n")
	for i, row := range t.Cost {
		b.WriteString(r.header.Inherit(cell).Render(t.Names[i]))
		for _, c := range row {
			text := "-"
			if c >= 0 {
				text = strconv.FormatInt(c, 10)
			}
			b.WriteString(cell.Render(text))
		}
		b.WriteString("\n")
	}

	return b.String()
}
