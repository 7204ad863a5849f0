// Package bfs answers hop-count and connectivity questions about a campus map.
//
// BFS ignores edge weights: it reports how many roads separate two locations
// and which locations can reach each other at all. campusnav uses it to
// diagnose disconnected maps before any shortest-path query is made, since a
// location outside the start's component is always Unreachable for Dijkstra.
//
// Functions:
//
//	BFS(w, start, opts...)  visit order, hop depth and parent per vertex
//	Components(w)           connected components, deterministic order
//	Connected(w)            whether the map is a single component
//
// Options: WithContext, WithMaxDepth, WithOnVisit.
//
// Complexity: O(N²) on the dense matrix (each row is scanned once).
package bfs
