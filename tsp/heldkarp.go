// Package tsp — Held–Karp exact dynamic program (4.10).
//
// SolveHeldKarp computes the provably optimal tour via the classic bitmask
// DP over subsets of {1..n-1}:
//
//	g({j}, j) = D[0][j]
//	g(S, j)   = min_{k ∈ S\{j}} g(S\{j}, k) + D[k][j]
//	answer    = min_j g({1..n-1}, j) + D[j][0]
//
// Subsets are indexed by bitmask (bit i-1 set ⇔ city i ∈ S, cities indexed
// from 1 since 0 is always the fixed start/end). Time O(n²·2ⁿ), memory
// O(n·2ⁿ); SolveHeldKarp rejects instances above heldKarpMaxCities (4.9 /
// 8 S6) rather than letting memory blow up silently.
package tsp

import (
	"math"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

// SolveHeldKarp runs the exact bitmask DP. StartVertex must be 0 — the
// recurrence is defined with city 0 as the fixed start; any other value is
// rejected as a configuration error rather than silently ignored.
func SolveHeldKarp(dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if opts.StartVertex != 0 {
		return Result{}, ErrInvalidOption
	}
	if n > heldKarpMaxCities {
		return Result{}, ErrCapacityExceeded
	}

	m := n - 1 // number of non-start cities, indexed 1..n-1 in the problem, 0..m-1 in bitmasks
	if m == 0 {
		return Result{Tour: []int{0, 0}, Cost: 0, Optimal: true}, nil
	}

	w := prefetchWeights(dist, n)
	at := func(u, v int) float64 { return w[u*n+v] }

	full := 1 << m
	// g[mask][j] = min cost of a path start(0) -> ... -> city(j+1), visiting
	// exactly the cities {i+1 : bit i set in mask}, j indexes into [0, m).
	g := make([][]float64, full)
	parent := make([][]int, full)
	for mask := 0; mask < full; mask++ {
		g[mask] = make([]float64, m)
		parent[mask] = make([]int, m)
		for j := 0; j < m; j++ {
			g[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}

	for j := 0; j < m; j++ {
		g[1<<j][j] = at(0, j+1)
	}

	for mask := 1; mask < full; mask++ {
		for j := 0; j < m; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			if math.IsInf(g[mask][j], 0) {
				continue
			}
			for k := 0; k < m; k++ {
				if mask&(1<<k) != 0 {
					continue
				}
				nextMask := mask | (1 << k)
				cand := g[mask][j] + at(j+1, k+1)
				if cand < g[nextMask][k] {
					g[nextMask][k] = cand
					parent[nextMask][k] = j
				}
			}
		}
	}

	allMask := full - 1
	bestCost := math.Inf(1)
	bestLast := -1
	for j := 0; j < m; j++ {
		total := g[allMask][j] + at(j+1, 0)
		if total < bestCost {
			bestCost = total
			bestLast = j
		}
	}
	if bestLast < 0 || math.IsInf(bestCost, 0) {
		return Result{}, ErrDimensionMismatch
	}

	// Reconstruct the path by walking parent pointers back to the base case.
	tour := make([]int, n+1)
	tour[n] = 0
	mask := allMask
	j := bestLast
	for pos := n - 1; pos >= 1; pos-- {
		tour[pos] = j + 1
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = 0

	if err := ValidateTour(tour, n, 0); err != nil {
		return Result{}, err
	}
	return Result{Tour: tour, Cost: round1e9(bestCost), Optimal: true}, nil
}
