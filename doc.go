// Package eutsp is a solver library for the symmetric Euclidean Traveling
// Salesman Problem — eight solvers behind one dispatcher.
//
// 🚀 What's inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Geometry: cities, squared/Euclidean distance, dense distance matrices
//		• A static k-d tree for nearest-unvisited-neighbor queries
//		• Construction: nearest-neighbor via the k-d tree
//		• Local search: 2-opt, stochastic hill-climbing, simulated annealing, tabu search
//		• Exact search: branch-and-bound, Held–Karp dynamic programming
//		• Population search: a genetic algorithm with OX1 crossover
//		• TSPLIB and flat-format coordinate parsing
//
// ✨ Design
//
//   - Deterministic — every stochastic solver draws from a *rand.Rand
//     seeded from Options.Seed; nothing reads the system clock inside a solve.
//   - Strict sentinels — package tsp returns typed errors, never panics,
//     on malformed input.
//   - Single-threaded — one solve runs to completion on the calling
//     goroutine; no hidden concurrency.
//
// Subpackages:
//
//	internal/geom   — City, distance matrix, coordinate-set construction
//	internal/kdtree — static 2-D k-d tree with visited-flag pruning
//	internal/tsplib — TSPLIB and flat coordinate file parsing
//	tsp             — the eight solvers and the dispatcher
//	cmd/eutsp       — command-line driver
package eutsp
