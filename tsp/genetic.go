// Package tsp — genetic search (4.11).
//
// SolveGenetic evolves a population of tours via tournament selection,
// ordered crossover (OX1), swap mutation, and elitism. The incumbent best
// individual is tracked independently of population churn and returned
// even if a later generation's population regresses.
package tsp

import (
	"math/rand"
	"sort"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

const (
	defaultPopSize             = 50
	defaultGeneticEpochs       = 10000
	defaultMutationProbability = 0.001
	defaultNElite              = 3
	defaultTournamentK         = 3
)

type individual struct {
	tour []int
	cost float64
}

// SolveGenetic runs the genetic search.
//
// Complexity: O(epochs * popSize * n) time, O(popSize * n) space.
func SolveGenetic(dist geom.Matrix, opts Options) (Result, error) {
	n, err := validateMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	if err := validateCommonOptions(n, opts); err != nil {
		return Result{}, err
	}

	popSize, err := resolvePopSize(opts, defaultPopSize)
	if err != nil {
		return Result{}, err
	}
	epochs := opts.Epochs
	if epochs <= 0 {
		epochs = defaultGeneticEpochs
	}
	mutationP, err := resolveMutationProbability(opts, defaultMutationProbability)
	if err != nil {
		return Result{}, err
	}
	nElite, err := resolveNElite(opts, popSize, defaultNElite)
	if err != nil {
		return Result{}, err
	}
	tournamentK, err := resolveTournamentK(opts, popSize, defaultTournamentK)
	if err != nil {
		return Result{}, err
	}

	rng := RNGFromSeed(opts.Seed)

	pop := make([]individual, popSize)
	for i := range pop {
		t, err := NewRandomTour(n, opts.StartVertex, rng)
		if err != nil {
			return Result{}, err
		}
		c, err := TourCost(dist, t)
		if err != nil {
			return Result{}, err
		}
		pop[i] = individual{tour: t, cost: c}
	}

	sortPopulation(pop)
	best := individual{tour: CopyTour(pop[0].tour), cost: pop[0].cost}

	for gen := 0; gen < epochs; gen++ {
		next := make([]individual, 0, popSize)
		for i := 0; i < nElite; i++ {
			next = append(next, individual{tour: CopyTour(pop[i].tour), cost: pop[i].cost})
		}

		for len(next) < popSize {
			p1 := tournamentSelect(pop, tournamentK, rng)
			p2 := tournamentSelect(pop, tournamentK, rng)
			childTour, err := orderedCrossover(p1.tour, p2.tour, n, opts.StartVertex, rng)
			if err != nil {
				return Result{}, err
			}
			if rng.Float64() < mutationP {
				// n == 2 yields i == k: no distinct interior position
				// exists to mutate, so the draw is skipped.
				i, k := randomInteriorPair(n, rng)
				if i != k {
					_ = SwapInPlace(childTour, i, k)
				}
			}
			cost, err := TourCost(dist, childTour)
			if err != nil {
				return Result{}, err
			}
			next = append(next, individual{tour: childTour, cost: cost})
		}

		pop = next
		sortPopulation(pop)
		if pop[0].cost < best.cost-twoOptEps {
			best = individual{tour: CopyTour(pop[0].tour), cost: pop[0].cost}
		}
		if opts.Verbose && gen%100 == 0 {
			opts.logf("genetic_algorithm: generation", "gen", gen, "best_cost", best.cost)
		}
	}

	_ = CanonicalizeOrientationInPlace(best.tour)
	if err := ValidateTour(best.tour, n, opts.StartVertex); err != nil {
		return Result{}, err
	}
	return Result{Tour: best.tour, Cost: round1e9(best.cost)}, nil
}

func sortPopulation(pop []individual) {
	sort.Slice(pop, func(i, j int) bool { return pop[i].cost < pop[j].cost })
}

// tournamentSelect samples k individuals uniformly (with replacement) and
// returns the fittest.
func tournamentSelect(pop []individual, k int, rng *rand.Rand) individual {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < k; i++ {
		cand := pop[rng.Intn(len(pop))]
		if cand.cost < best.cost {
			best = cand
		}
	}
	return best
}

// orderedCrossover implements OX1: copy parent1's [a..b] slice verbatim,
// then fill the remaining positions in the order they appear in parent2,
// starting after b and wrapping, skipping cities already placed.
func orderedCrossover(parent1, parent2 []int, n, start int, rng *rand.Rand) ([]int, error) {
	// Work over the open path (positions 0..n-1); the closing vertex at n
	// is reattached afterward via MakeTourFromPermutation.
	p1 := parent1[:n]
	p2 := parent2[:n]

	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}

	child := make([]int, n)
	taken := make([]bool, n)
	for i := a; i <= b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	pos := (b + 1) % n
	for step := 0; step < n; step++ {
		city := p2[(b+1+step)%n]
		if taken[city] {
			continue
		}
		child[pos] = city
		taken[city] = true
		pos = (pos + 1) % n
	}

	return MakeTourFromPermutation(child, n, start)
}
