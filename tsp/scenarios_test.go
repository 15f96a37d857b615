package tsp

import (
	"math"
	"testing"

	"github.com/mgrzywacz/eutsp/internal/geom"
	"github.com/stretchr/testify/require"
)

// S1 — 3 cities, degenerate right triangle. Every solver returns 2+√2.
func TestScenarioS1_RightTriangle(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	want := 2 + math.Sqrt2

	for _, name := range []Name{NearestNeighbor, TwoOpt, BranchAndBound, HeldKarp} {
		res, err := Solve(name, cities, Options{Seed: 1})
		require.NoError(t, err, "solver %s", name)
		require.InDelta(t, want, res.Cost, 1e-6, "solver %s", name)
	}
}

// S2 — 4 cities, unit square. Optimal cost is exactly 4.0.
func TestScenarioS2_UnitSquare(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	for _, name := range []Name{BranchAndBound, HeldKarp} {
		res, err := Solve(name, cities, Options{})
		require.NoError(t, err, "solver %s", name)
		require.InDelta(t, 4.0, res.Cost, 1e-6, "solver %s", name)
		require.True(t, res.Optimal)
	}
}

// S3 — 5 collinear cities. Optimal cost is exactly 8.0 (there and back).
func TestScenarioS3_Collinear(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}

	res, err := Solve(HeldKarp, cities, Options{})
	require.NoError(t, err)
	require.InDelta(t, 8.0, res.Cost, 1e-6)

	res2, err := Solve(BranchAndBound, cities, Options{})
	require.NoError(t, err)
	require.InDelta(t, 8.0, res2.Cost, 1e-6)
}

// S4 — nearest-neighbor suboptimality trap: greedy from city 0 still finds
// the optimal 40.0 tour here, and Held-Karp confirms it is optimal.
func TestScenarioS4_NearestNeighborTrap(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 11, Y: 0}, {X: 20, Y: 0}}

	nnRes, err := Solve(NearestNeighbor, cities, Options{})
	require.NoError(t, err)
	require.InDelta(t, 40.0, nnRes.Cost, 1e-6)

	hkRes, err := Solve(HeldKarp, cities, Options{})
	require.NoError(t, err)
	require.InDelta(t, 40.0, hkRes.Cost, 1e-6)
}

// S5 — determinism: two runs with the same seed produce identical results.
func TestScenarioS5_DeterminismWithSeed(t *testing.T) {
	cities := randomCities(30, 99)

	r1, err := Solve(SimulatedAnneal, cities, Options{Seed: 42, Epochs: 2000})
	require.NoError(t, err)
	r2, err := Solve(SimulatedAnneal, cities, Options{Seed: 42, Epochs: 2000})
	require.NoError(t, err)

	require.Equal(t, r1.Tour, r2.Tour)
	require.Equal(t, r1.Cost, r2.Cost)
}

// S6 — Held-Karp rejects instances above its structural cap.
func TestScenarioS6_HeldKarpCapacityCap(t *testing.T) {
	cities := randomCities(25, 7)
	_, err := Solve(HeldKarp, cities, Options{})
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

// Invariant: every returned tour is a permutation of {0..n-1} closing back
// to the start, for every solver.
func TestInvariant_EveryTourIsAValidPermutation(t *testing.T) {
	cities := randomCities(12, 3)
	for _, name := range []Name{
		NearestNeighbor, TwoOpt, StochasticHill, SimulatedAnneal,
		TabuSearch, BranchAndBound, HeldKarp, GeneticSearch,
	} {
		opts := Options{Seed: 5, Epochs: 200}
		res, err := Solve(name, cities, opts)
		require.NoError(t, err, "solver %s", name)
		require.NoError(t, ValidateTour(res.Tour, len(cities), 0), "solver %s", name)
	}
}

// Invariant: cost(T) matches a direct recomputation from coordinates.
func TestInvariant_CostMatchesDirectRecomputation(t *testing.T) {
	cities := randomCities(15, 11)
	dist, err := geom.BuildDistanceMatrix(cities)
	require.NoError(t, err)

	res, err := Solve(TwoOpt, cities, Options{Seed: 2})
	require.NoError(t, err)

	direct, err := TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, direct, res.Cost, 1e-9)
}

// Invariant: Held-Karp's optimum never exceeds any approximate solver's
// result on the same instance.
func TestInvariant_HeldKarpIsNeverWorseThanApprox(t *testing.T) {
	cities := randomCities(10, 21)

	hk, err := Solve(HeldKarp, cities, Options{})
	require.NoError(t, err)

	for _, name := range []Name{NearestNeighbor, TwoOpt, StochasticHill, SimulatedAnneal, TabuSearch, GeneticSearch} {
		res, err := Solve(name, cities, Options{Seed: 13, Epochs: 500})
		require.NoError(t, err, "solver %s", name)
		require.LessOrEqual(t, hk.Cost, res.Cost+1e-6, "solver %s", name)
	}
}

// Invariant: 2-opt's output is a local optimum — no improving swap remains.
func TestInvariant_TwoOptOutputIsLocalOptimum(t *testing.T) {
	cities := randomCities(20, 4)
	res, err := Solve(TwoOpt, cities, Options{})
	require.NoError(t, err)

	dist, err := geom.BuildDistanceMatrix(cities)
	require.NoError(t, err)
	n := len(cities)
	w := prefetchWeights(dist, n)
	at := func(u, v int) float64 { return w[u*n+v] }

	for i := 1; i <= n-2; i++ {
		for k := i + 1; k <= n-1; k++ {
			require.GreaterOrEqual(t, twoOptDelta(at, res.Tour, i, k), -twoOptEps)
		}
	}
}

// Invariant: twoOptDelta's O(1) estimate matches a full cost recomputation
// of the reversed tour, for every valid cut pair.
func TestInvariant_TwoOptDeltaMatchesFullReevaluation(t *testing.T) {
	cities := randomCities(20, 8)
	dist, err := geom.BuildDistanceMatrix(cities)
	require.NoError(t, err)
	n := len(cities)
	w := prefetchWeights(dist, n)
	at := func(u, v int) float64 { return w[u*n+v] }

	tour, err := NewIdentityTour(n)
	require.NoError(t, err)
	baseCost, err := TourCost(dist, tour)
	require.NoError(t, err)

	for i := 1; i <= n-2; i++ {
		for k := i + 1; k <= n-1; k++ {
			candidate := CopyTour(tour)
			require.NoError(t, reverseArcInPlace(candidate, i, k))
			fullCost, err := TourCost(dist, candidate)
			require.NoError(t, err)

			delta := twoOptDelta(at, tour, i, k)
			require.InDelta(t, fullCost-baseCost, delta, 1e-9, "i=%d k=%d", i, k)
		}
	}
}

// Invariant: with cooling_rate = 0 and a large starting temperature,
// simulated annealing behaves as an uncooled random walk — it barely
// improves on its own random starting tour — while a nonzero cooling rate
// on the same instance drives the cost well below it.
func TestInvariant_SimulatedAnnealZeroCoolingIsRandomWalk(t *testing.T) {
	cities := randomCities(15, 55)
	dist, err := geom.BuildDistanceMatrix(cities)
	require.NoError(t, err)

	const seed = int64(77)
	rng := RNGFromSeed(seed)
	initTour, err := NewRandomTour(len(cities), 0, rng)
	require.NoError(t, err)
	initCost, err := TourCost(dist, initTour)
	require.NoError(t, err)

	walk, err := Solve(SimulatedAnneal, cities, Options{
		Seed:           seed,
		Epochs:         5000,
		MaxTemperature: 1e6,
		MinTemperature: 1,
		CoolingRate:    Ptr(0.0),
	})
	require.NoError(t, err)

	cooled, err := Solve(SimulatedAnneal, cities, Options{
		Seed:           seed,
		Epochs:         5000,
		MaxTemperature: 1e6,
		MinTemperature: 1e-6,
		CoolingRate:    Ptr(0.01),
	})
	require.NoError(t, err)

	require.InDelta(t, initCost, walk.Cost, initCost, "uncooled walk should stay near its random start")
	require.Less(t, cooled.Cost, initCost*0.9, "geometric cooling should improve substantially on the random start")
	require.Less(t, cooled.Cost, walk.Cost, "cooling should outperform an uncooled random walk")
}

// Regression: n == 2 is the minimal valid instance (validateMatrix only
// rejects n < 2). Every stochastic solver that draws a random interior
// position or 2-opt cut pair must terminate on it instead of looping
// forever looking for a second distinct position that doesn't exist.
func TestRegression_TwoCitiesTerminates(t *testing.T) {
	cities := []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}}
	for _, name := range []Name{StochasticHill, SimulatedAnneal, GeneticSearch} {
		res, err := Solve(name, cities, Options{Epochs: 200})
		require.NoError(t, err, "solver %s", name)
		require.NoError(t, ValidateTour(res.Tour, 2, 0), "solver %s", name)
		require.InDelta(t, 2.0, res.Cost, 1e-9, "solver %s", name)
	}
}

func TestDispatch_UnknownSolver(t *testing.T) {
	_, err := Resolve("not_a_solver")
	require.ErrorIs(t, err, ErrUnknownSolver)
}

func TestDispatch_TooFewCities(t *testing.T) {
	_, err := Solve(NearestNeighbor, []geom.City{{X: 0, Y: 0}}, Options{})
	require.ErrorIs(t, err, ErrTooFewCities)
}

func randomCities(n int, seed int64) []geom.City {
	rng := RNGFromSeed(seed)
	cities := make([]geom.City, n)
	for i := range cities {
		cities[i] = geom.City{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return cities
}
