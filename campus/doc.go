// Package campus turns the index-based shortest-path engine into a
// location-name service.
//
// A Map lists named locations (with display coordinates for front-ends) and
// the undirected roads between them. Maps come from Reference(), the built-in
// six-location campus, or from YAML/JSON files via Load and LoadFile.
//
// A Router owns one dijkstra.Engine built from a Map. Route resolves two
// identifiers (location name, case-insensitive, or decimal index) and returns
// the stops and total cost; Table fills the all-pairs cost table with
// concurrent engine queries.
//
// Error kinds:
//
//   - ErrInvalidMap:      empty/duplicate names, unknown or duplicate roads,
//     non-positive weights, or a matrix the engine rejects.
//   - ErrUnknownLocation: an identifier that does not resolve; also matches
//     dijkstra.ErrInvalidNode.
//   - dijkstra.ErrInvalidQuery: both identifiers name the same location.
//
// An unreachable destination is Route{Reachable: false}, never an error.
package campus
