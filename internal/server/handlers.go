package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/internal/render"
)

// APIHandlers exposes HTTP handlers for the routing API.
type APIHandlers struct {
	logger *slog.Logger
	router *campus.Router
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, router *campus.Router) *APIHandlers {
	return &APIHandlers{
		logger: logger,
		router: router,
	}
}

type locationItem struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type locationsResponse struct {
	Map       string         `json:"map"`
	Locations []locationItem `json:"locations"`
	Roads     []campus.Road  `json:"roads"`
}

type routeResponse struct {
	campus.Route
	Message string `json:"message"`
}

func (h *APIHandlers) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	m := h.router.Map()
	resp := locationsResponse{
		Map:       m.Name,
		Locations: make([]locationItem, len(m.Locations)),
		Roads:     m.Roads,
	}
	for i, l := range m.Locations {
		resp.Locations[i] = locationItem{Index: i, Name: l.Name, X: l.X, Y: l.Y}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	rt, err := h.router.Route(r.Context(), from, to)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, routeResponse{Route: rt, Message: render.Status(rt)})
	case errors.Is(err, campus.ErrUnknownLocation):
		writeError(w, http.StatusNotFound, render.Message(err))
	case errors.Is(err, dijkstra.ErrInvalidNode), errors.Is(err, dijkstra.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, render.Message(err))
	default:
		h.logger.Error("route query failed", "error", err, "from", from, "to", to)
		writeError(w, http.StatusInternalServerError, "failed to compute route")
	}
}

func (h *APIHandlers) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	tbl, err := h.router.Table(r.Context())
	if err != nil {
		h.logger.Error("distance table failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute distance table")
		return
	}

	respondJSON(w, http.StatusOK, tbl)
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
