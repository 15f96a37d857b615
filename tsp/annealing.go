// Package tsp — simulated annealing (4.7).
//
// SolveSimulatedAnneal explores random 2-opt neighbors, accepting worsening
// moves with Metropolis probability exp(-Δ/τ), and cools geometrically:
// τ ← τ·(1 − coolingRate) per step. It halts when τ drops below
// opts.MinTemperature or the epoch budget is exhausted, whichever first.
package tsp

import (
	"math"
	"math/rand"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

const (
	defaultAnnealEpochs  = 100000
	defaultMaxTemp       = 1000.0
	defaultMinTemp       = 0.001
	defaultCoolingRate   = 0.0005
)

// SolveSimulatedAnneal runs simulated annealing starting from a fresh
// random tour.
//
// Complexity: O(epochs) steps, O(1) amortized work per step.
func SolveSimulatedAnneal(dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err := validateCommonOptions(n, opts); err != nil {
		return Result{}, err
	}

	if opts.MaxTemperature < 0 || opts.MinTemperature < 0 {
		return Result{}, ErrInvalidOption
	}
	maxTemp := resolveMaxTemperature(opts, defaultMaxTemp)
	minTemp := resolveMinTemperature(opts, defaultMinTemp)
	if maxTemp <= minTemp {
		return Result{}, ErrInvalidOption
	}
	coolingRate, err := resolveCoolingRate(opts, defaultCoolingRate)
	if err != nil {
		return Result{}, err
	}
	epochs := opts.Epochs
	if epochs <= 0 {
		epochs = defaultAnnealEpochs
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

	temp := maxTemp
	for e := 0; e < epochs && temp >= minTemp; e++ {
		// n == 2 yields i == k: no distinct cut pair exists, so there is no
		// candidate move this step and the loop falls through to cooling.
		i, k := randomTwoOptPair(n, rng)
		if i != k {
			delta := twoOptDelta(at, cur, i, k)

			if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
				_ = reverseArcInPlace(cur, i, k)
				curCost += delta
				if curCost < bestCost-twoOptEps {
					bestCost = curCost
					best = CopyTour(cur)
				}
			}
		}

		temp *= 1 - coolingRate
		if opts.Verbose && e%1000 == 0 {
			opts.logf("simulated_annealing: cooling", "epoch", e, "temp", temp, "best_cost", bestCost)
		}
	}

	_ = CanonicalizeOrientationInPlace(best)
	if err := ValidateTour(best, n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	return Result{Tour: best, Cost: round1e9(bestCost)}, nil
}

// randomTwoOptPair draws a random valid 2-opt cut pair (i, k) with
// 1 ≤ i < k ≤ n-1. n == 2 has only one candidate cut position, so no
// distinct pair exists; callers must check for i == k and skip the move
// rather than retry forever.
func randomTwoOptPair(n int, rng *rand.Rand) (int, int) {
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
