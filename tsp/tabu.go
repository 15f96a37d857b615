// Package tsp — tabu search (4.8).
//
// SolveTabuSearch evaluates every 2-opt neighbor of the current tour each
// iteration, applies the best move that is not recorded in the tabu memory
// — unless a tabu move would beat the incumbent best (aspiration) — and
// records the applied move in a bounded FIFO tabu list.
package tsp

import (
	"github.com/mgrzywacz/eutsp/internal/geom"
)

const defaultTabuEpochs = 2000

// tabuMove identifies a 2-opt move by its cut indices, the unit the tabu
// memory tracks moves at (see Data Model, "Tabu memory M").
type tabuMove struct {
	i, k int
}

// SolveTabuSearch runs tabu search starting from the nearest-neighbor
// tour, which also serves as the initial incumbent.
//
// Complexity: O(epochs * n² * capacity) time (every candidate move is
// checked against the tabu list), O(capacity) memory for the tabu list.
func SolveTabuSearch(cities []geom.City, dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err := validateCommonOptions(n, opts); err != nil {
		return Result{}, err
	}

	capacity, err := resolveTabuCapacity(opts, n)
	if err != nil {
		return Result{}, err
	}
	epochs := opts.Epochs
	if epochs <= 0 {
		epochs = defaultTabuEpochs
	}

	seed, err := SolveNearestNeighbor(cities, dist, opts)
	if err != nil {
		return Result{}, err
	}

	w := prefetchWeights(dist, n)
	at := func(u, v int) float64 { return w[u*n+v] }

	cur := CopyTour(seed.Tour)
	curCost := seed.Cost
	best := CopyTour(cur)
	bestCost := curCost

	tabu := make([]tabuMove, 0, capacity)
	inTabu := func(i, k int) bool {
		for _, m := range tabu {
			if m.i == i && m.k == k {
				return true
			}
		}
		return false
	}
	remember := func(i, k int) {
		tabu = append(tabu, tabuMove{i: i, k: k})
		if len(tabu) > capacity {
			tabu = tabu[1:]
		}
	}

	for e := 0; e < epochs; e++ {
		bestI, bestK, bestDelta := -1, -1, 0.0
		found := false

		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				delta := twoOptDelta(at, cur, i, k)
				tabooed := inTabu(i, k)

				// Aspiration: a tabu move is still allowed if it would beat
				// the best tour ever seen.
				if tabooed && curCost+delta >= bestCost-twoOptEps {
					continue
				}
				if !found || delta < bestDelta {
					bestI, bestK, bestDelta, found = i, k, delta, true
				}
			}
		}

		if !found {
			break // no candidate move at all (degenerate n)
		}

		_ = reverseArcInPlace(cur, bestI, bestK)
		curCost += bestDelta
		remember(bestI, bestK)

		if curCost < bestCost-twoOptEps {
			bestCost = curCost
			best = CopyTour(cur)
		}
		opts.logf("tabu_search: iteration", "epoch", e, "cost", curCost, "best", bestCost)
	}

	_ = CanonicalizeOrientationInPlace(best)
	if err := ValidateTour(best, n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}
