// Package tsp — nearest-neighbor greedy construction (4.4).
//
// SolveNearestNeighbor builds a tour by repeatedly stepping to the closest
// unvisited city, using a k-d tree to avoid the O(n) linear scan per step.
// It is deterministic: starting city and tie-breaking are both fixed, so
// the same coordinate set always produces the same tour.
package tsp

import (
	"github.com/mgrzywacz/eutsp/internal/geom"
	"github.com/mgrzywacz/eutsp/internal/kdtree"
)

// SolveNearestNeighbor constructs a tour by greedy nearest-unvisited-city
// selection, starting at opts.StartVertex.
//
// Complexity: O(n log n) expected for the k-d tree queries plus O(n) per
// MarkVisited call, so O(n²) overall; O(n) space.
func SolveNearestNeighbor(cities []geom.City, dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if len(cities) != n {
		return Result{}, ErrDimensionMismatch
	}
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return Result{}, err
	}

	tree, err := kdtree.Build(cities)
	if err != nil {
		return Result{}, err
	}

	tour := make([]int, n+1)
	tour[0] = opts.StartVertex
	tree.MarkVisited(opts.StartVertex)

	current := opts.StartVertex
	for step := 1; step < n; step++ {
		next, ok := tree.NearestUnvisited(cities[current])
		if !ok {
			return Result{}, ErrDimensionMismatch
		}
		tour[step] = next
		tree.MarkVisited(next)
		current = next
		opts.logf("nearest_neighbor: step", "index", step, "city", next)
	}
	tour[n] = opts.StartVertex

	cost, err := TourCost(dist, tour)
	if err != nil {
		return Result{}, err
	}
	return Result{Tour: tour, Cost: cost}, nil
}
