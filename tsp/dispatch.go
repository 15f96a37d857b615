// Package tsp — solver dispatcher (4.12).
//
// Resolve maps a user token (including the aliases in types.go) to a
// canonical Name. Solve is the single entry point external callers use: it
// builds the distance matrix once and runs the solver with that canonical
// Name.
package tsp

import (
	"github.com/mgrzywacz/eutsp/internal/geom"
)

// Resolve maps a user-supplied token (including aliases) to its canonical
// Name, or ErrUnknownSolver if it is not recognized.
func Resolve(token string) (Name, error) {
	if name, ok := aliases[token]; ok {
		return name, nil
	}
	return "", ErrUnknownSolver
}

// Solve builds the distance matrix for cities and runs the named solver
// with opts. It is the dispatcher's sole public entry point (4.12).
//
// Errors:
//   - ErrTooFewCities if len(cities) < 2.
//   - ErrUnknownSolver for an unrecognized name.
//   - ErrCapacityExceeded if HeldKarp is requested above its city cap.
//   - Any sentinel the chosen solver itself returns.
func Solve(name Name, cities []geom.City, opts Options) (Result, error) {
	if len(cities) < 2 {
		return Result{}, ErrTooFewCities
	}
	dist, err := geom.BuildDistanceMatrix(cities)
	if err != nil {
		return Result{}, translateGeomErr(err)
	}

	switch name {
	case NearestNeighbor:
		return SolveNearestNeighbor(cities, dist, opts)
	case TwoOpt:
		seed, err := SolveNearestNeighbor(cities, dist, opts)
		if err != nil {
			return Result{}, err
		}
		return SolveTwoOpt(dist, seed.Tour, opts)
	case StochasticHill:
		return SolveStochasticHill(dist, opts)
	case SimulatedAnneal:
		return SolveSimulatedAnneal(dist, opts)
	case TabuSearch:
		return SolveTabuSearch(cities, dist, opts)
	case BranchAndBound:
		return SolveBranchAndBound(cities, dist, opts)
	case HeldKarp:
		return SolveHeldKarp(dist, opts)
	case GeneticSearch:
		return SolveGenetic(dist, opts)
	default:
		return Result{}, ErrUnknownSolver
	}
}

// translateGeomErr maps internal/geom's sentinels onto this package's own,
// so callers only ever need to errors.Is against tsp's exported set.
func translateGeomErr(err error) error {
	switch err {
	case geom.ErrTooFewCities:
		return ErrTooFewCities
	case geom.ErrNonFiniteCoordinate:
		return ErrNonFiniteWeight
	default:
		return err
	}
}
