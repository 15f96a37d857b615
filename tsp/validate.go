// Package tsp - validation utilities shared by every solver.
//
// This file validates Options combinations and distance matrices before a
// solve begins. Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import (
	"math"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

// symTol is a structural tolerance for symmetry/diagonal checks.
const symTol = 1e-9

// validateMatrix confirms dist is square, n≥2, has a zero diagonal, is
// symmetric, and carries only finite non-negative weights. Returns n.
//
// Complexity: O(n²).
func validateMatrix(dist geom.Matrix) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return 0, ErrDimensionMismatch
	}
	if n < 2 {
		return 0, ErrTooFewCities
	}

	for i := 0; i < n; i++ {
		diag := dist.At(i, i)
		if diag != 0 {
			return 0, ErrDimensionMismatch
		}
		for j := i + 1; j < n; j++ {
			aij := dist.At(i, j)
			aji := dist.At(j, i)
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return 0, ErrNonFiniteWeight
			}
			if math.IsInf(aij, 0) || math.IsInf(aji, 0) {
				return 0, ErrNonFiniteWeight
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			diff := aij - aji
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return 0, ErrDimensionMismatch
			}
		}
	}
	return n, nil
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	return nil
}

// validateCommonOptions checks the subset of Options every solver agrees
// on: the start vertex is in range and Epochs is not negative. Each
// solver additionally validates its own parameters before running.
//
// Complexity: O(1).
func validateCommonOptions(n int, opts Options) error {
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return err
	}
	if opts.Epochs < 0 {
		return ErrInvalidOption
	}
	return nil
}

// resolvePlateauEpochs applies opts.PlateauEpochs (in [0, +inf)) or
// fallback when unset, and rejects a negative explicit value.
func resolvePlateauEpochs(opts Options, fallback int) (int, error) {
	if opts.PlateauEpochs == nil {
		return fallback, nil
	}
	v := *opts.PlateauEpochs
	if v < 0 {
		return 0, ErrInvalidOption
	}
	return v, nil
}

// resolveCoolingRate applies opts.CoolingRate (in [0, 1)) or fallback when
// unset, and rejects an explicit value outside that domain.
func resolveCoolingRate(opts Options, fallback float64) (float64, error) {
	if opts.CoolingRate == nil {
		return fallback, nil
	}
	v := *opts.CoolingRate
	if v < 0 || v >= 1 {
		return 0, ErrInvalidOption
	}
	return v, nil
}

// resolveMaxTemperature applies opts.MaxTemperature (real > 0), treating
// <=0 as unset (the domain excludes zero, so no ambiguity exists).
func resolveMaxTemperature(opts Options, fallback float64) float64 {
	if opts.MaxTemperature > 0 {
		return opts.MaxTemperature
	}
	return fallback
}

// resolveMinTemperature applies opts.MinTemperature (real > 0), treating
// <=0 as unset (the domain excludes zero, so no ambiguity exists).
func resolveMinTemperature(opts Options, fallback float64) float64 {
	if opts.MinTemperature > 0 {
		return opts.MinTemperature
	}
	return fallback
}

// resolveMutationProbability applies opts.MutationProbability (in [0, 1])
// or fallback when unset, and rejects an explicit value outside that domain.
func resolveMutationProbability(opts Options, fallback float64) (float64, error) {
	if opts.MutationProbability == nil {
		return fallback, nil
	}
	v := *opts.MutationProbability
	if v < 0 || v > 1 {
		return 0, ErrInvalidOption
	}
	return v, nil
}

// resolveNElite applies opts.NElite (in [0, popSize]) or fallback when
// unset, and rejects an explicit value outside that domain.
func resolveNElite(opts Options, popSize, fallback int) (int, error) {
	if opts.NElite == nil {
		if fallback > popSize {
			return popSize, nil
		}
		return fallback, nil
	}
	v := *opts.NElite
	if v < 0 || v > popSize {
		return 0, ErrInvalidOption
	}
	return v, nil
}

// resolvePopSize applies opts.PopSize (integer >= 2), treating <=1 as
// unset only when it is exactly the type's zero value; an explicit 1 is a
// genuine out-of-range request and rejected, since the domain excludes it.
func resolvePopSize(opts Options, fallback int) (int, error) {
	if opts.PopSize == 0 {
		return fallback, nil
	}
	if opts.PopSize < 2 {
		return 0, ErrInvalidOption
	}
	return opts.PopSize, nil
}

// resolveTournamentK applies opts.TournamentK (in [1, popSize]), with 0 as
// a documented carve-out for "use the default"; negative is rejected.
func resolveTournamentK(opts Options, popSize, fallback int) (int, error) {
	k := fallback
	if opts.TournamentK != 0 {
		if opts.TournamentK < 0 {
			return 0, ErrInvalidOption
		}
		k = opts.TournamentK
	}
	if k > popSize {
		k = popSize
	}
	return k, nil
}

// resolveTabuCapacity applies opts.TabuCapacity, with 0 as a documented
// carve-out for "default to n"; negative is rejected.
func resolveTabuCapacity(opts Options, n int) (int, error) {
	if opts.TabuCapacity == 0 {
		return n, nil
	}
	if opts.TabuCapacity < 0 {
		return 0, ErrInvalidOption
	}
	return opts.TabuCapacity, nil
}
