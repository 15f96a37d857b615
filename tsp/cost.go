// Package tsp — cost utilities shared by every solver.
//
// This file provides small, allocation-conscious helpers to compute the
// total cost of a Hamiltonian cycle represented by a vertex index tour.
// They are intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (Inf/NaN/negative) even though geom.BuildDistanceMatrix
//     already guarantees finite, non-negative weights.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"math"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the cost along the cycle edges tour[i]→tour[i+1].
//
// Contract: tour must represent a closed cycle (len(tour) >= 2, indices in
// [0..n-1]); dist must be square (n×n).
//
// Complexity: O(n).
func TourCost(dist geom.Matrix, tour []int) (float64, error) {
	if dist == nil || tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	last := len(tour) - 1
	for i := 0; i < last; i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w := dist.At(u, v)
		if math.IsNaN(w) {
			return 0, ErrNonFiniteWeight
		}
		if math.IsInf(w, 0) {
			return 0, ErrNonFiniteWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}
	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single edge u-v with strict validation.
// Useful for local-search deltas (2-opt et al.) to keep sentinel semantics
// centralized.
//
// Complexity: O(1).
func edgeCost(m geom.Matrix, u, v int) (float64, error) {
	n := m.Rows()
	if n != m.Cols() || n <= 0 {
		return 0, ErrDimensionMismatch
	}
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}
	w := m.At(u, v)
	if math.IsNaN(w) {
		return 0, ErrNonFiniteWeight
	}
	if math.IsInf(w, 0) {
		return 0, ErrNonFiniteWeight
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}
	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. This keeps costs
// stable across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
