// Package campusnav computes shortest walking routes across a campus map.
//
// 🚀 What is campusnav?
//
//	A small, dependency-light routing engine plus the tooling around it:
//		• Weight matrix: validated, immutable N×N int64 roads (matrix)
//		• Shortest paths: Dijkstra, linear scan or binary heap (dijkstra)
//		• Reachability: BFS and connected components (bfs)
//		• Campus maps: named locations, YAML/JSON files, routing by name (campus)
//		• Front-ends: cobra CLI and an HTTP API with Prometheus metrics (cmd/campusnav)
//
// ✨ Guarantees
//
//   - Deterministic – ties resolve to the lowest location index
//   - Safe for concurrency – maps and engines are immutable after construction
//   - Explicit errors – every failure matches a sentinel via errors.Is
//
// Layout:
//
//	matrix/             weight matrix, validators, Floyd–Warshall oracle
//	dijkstra/           single-source shortest paths and path reconstruction
//	bfs/                breadth-first traversal and components
//	campus/             map model, loaders, Router and distance Table
//	internal/           config, logging, metrics, render, server
//	cmd/campusnav/      command-line entry point
//
// Reference campus:
//
//	NHSRCL ─10─ Pahune ─12─ AcadBlock ─2─ Prastuti ─8─ SportsComplex
//	                           │
//	                           10
//	                           │
//	                        Manthan
//
//	campusnav route NHSRCL SportsComplex   # Shortest distance: 32
package campusnav
