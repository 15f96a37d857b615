// Package tsp — stochastic hill-climbing with plateau restarts (4.6).
//
// SolveStochasticHill swaps two random interior positions per step,
// accepts non-worsening candidates, and restarts from a fresh random tour
// once the plateau counter reaches opts.PlateauEpochs. It tracks the best
// tour seen across every restart and returns it unconditionally at the
// epoch budget.
package tsp

import (
	"math/rand"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

const defaultPlateauSize = 200

// SolveStochasticHill runs stochastic hill-climbing with plateau-based
// restarts, starting from a fresh random tour.
//
// Complexity: O(epochs) steps, O(1) amortized work per step plus O(n) per
// restart.
func SolveStochasticHill(dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err := validateCommonOptions(n, opts); err != nil {
		return Result{}, err
	}

	// opts.Epochs == 0 means run without an iteration bound, per 4.6:
	// termination then relies on an external signal (the driver's wallclock
	// or cancellation), not a silent default. validateCommonOptions already
	// rejects a negative Epochs, so epochs is 0 or positive here.
	epochs := opts.Epochs
	plateauLimit, err := resolvePlateauEpochs(opts, defaultPlateauSize)
	if err != nil {
		return Result{}, err
	}

	rng := RNGFromSeed(opts.Seed)
	w := prefetchWeights(dist, n)
	at := func(u, v int) float64 { return w[u*n+v] }

	cur, err := NewRandomTour(n, opts.StartVertex, rng)
	if err != nil {
		return Result{}, err
	}
	curCost, err := TourCost(dist, cur)
	if err != nil {
		return Result{}, err
	}

	best := CopyTour(cur)
	bestCost := curCost
	plateau := 0

	for e := 0; epochs == 0 || e < epochs; e++ {
		i, k := randomInteriorPair(n, rng)
		if i == k {
			// n == 2: the tour's single interior position admits no
			// candidate swap; the current (only) tour is already optimal.
			plateau++
		} else {
			delta := swapDelta(at, cur, i, k)
			if delta <= 0 {
				_ = SwapInPlace(cur, i, k)
				curCost += delta
				if delta < -twoOptEps {
					plateau = 0
				} else {
					plateau++
				}
				if curCost < bestCost-twoOptEps {
					bestCost = curCost
					best = CopyTour(cur)
				}
			} else {
				plateau++
			}
		}

		if plateau >= plateauLimit {
			cur, err = NewRandomTour(n, opts.StartVertex, rng)
			if err != nil {
				return Result{}, err
			}
			curCost, err = TourCost(dist, cur)
			if err != nil {
				return Result{}, err
			}
			plateau = 0
			opts.logf("stochastic_hill: restart", "epoch", e, "best_cost", bestCost)
		}
	}

	_ = CanonicalizeOrientationInPlace(best)
	if err := ValidateTour(best, n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}

// randomInteriorPair draws two distinct positions in [1, n-1], the mutable
// interior of a closed tour (position 0 and n both pin the start vertex).
// n == 2 has exactly one interior position, so no distinct pair exists;
// callers must check for i == k and treat it as "no candidate move" rather
// than swap a position with itself.
func randomInteriorPair(n int, rng *rand.Rand) (int, int) {
	if n <= 2 {
		return 1, 1
	}
	i := 1 + rng.Intn(n-1)
	k := 1 + rng.Intn(n-1)
	for k == i {
		k = 1 + rng.Intn(n-1)
	}
	if i > k {
		i, k = k, i
	}
	return i, k
}

// swapDelta returns the cost delta of exchanging positions i and k of cur
// without mutating it. Handles both adjacent and non-adjacent positions.
func swapDelta(at func(u, v int) float64, cur []int, i, k int) float64 {
	n := len(cur) - 1
	if i > k {
		i, k = k, i
	}
	if k == i+1 {
		// Adjacent swap: only the two edges touching the shared boundary change.
		prev, a, b, next := cur[i-1], cur[i], cur[k], cur[(k+1)%n]
		before := at(prev, a) + at(b, next)
		after := at(prev, b) + at(a, next)
		return after - before
	}
	prevI, a, nextI := cur[i-1], cur[i], cur[i+1]
	prevK, b, nextK := cur[k-1], cur[k], cur[(k+1)%n]
	before := at(prevI, a) + at(a, nextI) + at(prevK, b) + at(b, nextK)
	after := at(prevI, b) + at(b, nextI) + at(prevK, a) + at(a, nextK)
	return after - before
}
