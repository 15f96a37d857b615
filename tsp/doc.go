// Package tsp provides solvers for the symmetric Euclidean Traveling
// Salesman Problem.
//
// Two exact:
//   - SolveBranchAndBound — DFS with a degree-1 relaxation lower bound.
//   - SolveHeldKarp       — bitmask dynamic program, O(n²·2ⁿ), n ≤ 20.
//
// Six approximate:
//   - SolveNearestNeighbor — greedy construction via a k-d tree.
//   - SolveTwoOpt          — first-improvement local search.
//   - SolveStochasticHill  — random-swap hill-climbing with restarts.
//   - SolveSimulatedAnneal — Metropolis acceptance with geometric cooling.
//   - SolveTabuSearch      — best-non-tabu 2-opt neighbor with aspiration.
//   - SolveGenetic         — population search with OX1 crossover.
//
// Solve is the unified dispatcher: given a solver Name (or any of its
// aliases via Resolve) and a coordinate set, it builds the distance matrix
// once and routes to the chosen algorithm.
//
// Every solver accepts an injected seed through Options.Seed; none of them
// read the system clock. Cost is always rounded to 1e-9 to keep results
// stable across platforms.
package tsp
