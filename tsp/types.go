// Package tsp implements eight solvers for the symmetric Euclidean
// Traveling Salesman Problem — two exact (branch-and-bound, Held–Karp) and
// six approximate (nearest-neighbor, 2-opt, stochastic hill-climbing,
// simulated annealing, tabu search, genetic search) — behind one dispatcher.
//
// Every solver takes the distance matrix (plus the coordinates or a seed
// tour where it needs them) and an Options value, and returns a Result.
// Randomness comes from a generator seeded with Options.Seed; no solver
// reads the system clock. Errors
// are sentinel values from this file; solvers never panic on malformed
// input and never return a partial result on failure.
package tsp

import "errors"

// Sentinel errors. Each belongs to one of the four kinds this package
// distinguishes: input shape, configuration, capacity, and numeric.
var (
	// Input errors: malformed coordinates or distance matrix.
	ErrTooFewCities      = errors.New("tsp: need at least 2 cities")
	ErrDimensionMismatch = errors.New("tsp: tour/matrix dimension mismatch")
	ErrStartOutOfRange   = errors.New("tsp: start vertex out of range")

	// Configuration errors: unknown solver or out-of-range parameter.
	ErrUnknownSolver = errors.New("tsp: unknown solver name")
	ErrUnknownOption = errors.New("tsp: unknown parameter")
	ErrInvalidOption = errors.New("tsp: parameter out of range")

	// Capacity errors: a solver's hard structural limit was exceeded.
	ErrCapacityExceeded = errors.New("tsp: instance exceeds solver capacity")

	// Numeric errors: a non-finite value appeared where one is disallowed.
	ErrNonFiniteWeight = errors.New("tsp: non-finite distance encountered")
	ErrNegativeWeight  = errors.New("tsp: negative distance encountered")
)

// Result holds the outcome of a solve: the closed tour and its cost.
type Result struct {
	// Tour has length n+1; Tour[0] == Tour[n] == the start vertex.
	Tour []int
	// Cost is the total cycle length, stabilized to 1e-9.
	Cost float64
	// Optimal is true only for solvers that prove optimality (branch-and-
	// bound, Held–Karp).
	Optimal bool
}

// Name identifies a solver for the dispatcher (4.12).
type Name string

// Recognized canonical solver names.
const (
	NearestNeighbor Name = "nn"
	TwoOpt          Name = "two_opt"
	StochasticHill  Name = "stochastic_hill"
	SimulatedAnneal Name = "simulated_annealing"
	TabuSearch      Name = "tabu_search"
	BranchAndBound  Name = "branch_bound"
	HeldKarp        Name = "bellman_karp"
	GeneticSearch   Name = "genetic_algorithm"
)

// aliases maps alternate spellings onto their canonical Name (4.12).
var aliases = map[string]Name{
	"nn":                  NearestNeighbor,
	"two_opt":             TwoOpt,
	"2opt":                TwoOpt,
	"stochastic_hill":     StochasticHill,
	"simulated_annealing": SimulatedAnneal,
	"sa":                  SimulatedAnneal,
	"tabu_search":         TabuSearch,
	"branch_bound":        BranchAndBound,
	"bellman_karp":        HeldKarp,
	"bhk":                 HeldKarp,
	"genetic_algorithm":   GeneticSearch,
	"ga":                  GeneticSearch,
}

// heldKarpMaxCities is the hard structural cap for the bitmask DP: beyond
// this, (2^(n-1))*(n-1) table cells outgrow any reasonable process memory.
const heldKarpMaxCities = 20

// Logger is the minimal sink a solver writes verbose progress to. It is
// satisfied by an *slog.Logger adapter in the command-line driver; the
// solver packages themselves do not import slog.
type Logger interface {
	Debug(msg string, args ...any)
}

// Options is the parameter bag shared by every solver (see 4.12 and the
// External Interfaces enumeration in 6). Not every field applies to every
// solver; unused fields are ignored rather than rejected, except where a
// solver declares a hard precondition (e.g. HeldKarp's city-count cap).
type Options struct {
	// StartVertex is the fixed starting/closing city. Construction and
	// local-search solvers honor it; Held-Karp's recurrence assumes 0.
	StartVertex int

	// Seed drives the injected PRNG for every stochastic solver. Seed==0
	// uses a fixed default stream (deterministic, not clock-based).
	Seed int64

	// Epochs bounds the iteration count for StochasticHill, SimulatedAnneal,
	// TabuSearch, and the generation count for GeneticSearch. 0 means
	// "use the solver's documented default", except for StochasticHill,
	// where 0 means no iteration bound at all.
	Epochs int

	// PlateauEpochs is the stall threshold before StochasticHill restarts,
	// in [0, +inf). nil means "use the solver's documented default"; a
	// non-nil zero is legal and restarts from a fresh random tour after
	// every step.
	PlateauEpochs *int

	// CoolingRate is SimulatedAnneal's per-step geometric decay, in [0, 1).
	// nil means "use the documented default"; a non-nil zero is the legal,
	// meaningful choice of disabling cooling entirely (random-walk search,
	// per the testable properties this package's tests exercise).
	CoolingRate *float64
	// MaxTemperature / MinTemperature bound SimulatedAnneal's schedule.
	// Both are real numbers strictly greater than zero; 0 is treated as
	// "unset" and replaced with the documented default, and a negative
	// value is rejected with ErrInvalidOption.
	MaxTemperature float64
	MinTemperature float64

	// TabuCapacity bounds the FIFO tabu memory. 0 is a documented carve-out
	// meaning "default to N"; negative values are rejected.
	TabuCapacity int

	// MutationProbability is GeneticSearch's per-child mutation rate, in
	// the closed interval [0, 1]. nil means "use the documented default";
	// a non-nil zero is the legal, meaningful choice of disabling mutation.
	MutationProbability *float64
	// NElite is the number of top individuals carried forward unchanged,
	// in [0, PopSize]. nil means "use the documented default"; a non-nil
	// zero is the legal, meaningful choice of no elitism at all.
	NElite *int
	// PopSize is the genetic population size, an integer >= 2. 0 is
	// treated as "unset" and replaced with the documented default; any
	// other value below 2 is rejected with ErrInvalidOption.
	PopSize int
	// TournamentK is the tournament-selection sample size. 0 is a
	// documented carve-out meaning "use the default"; negative is rejected.
	TournamentK int

	// Verbose requests per-iteration diagnostics via Logger; the solvers
	// degrade silently to no-ops when Logger is nil.
	Verbose bool
	Logger  Logger
}

// logf emits a verbose debug line when both Verbose and Logger are set.
func (o Options) logf(msg string, args ...any) {
	if o.Verbose && o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}

// Ptr returns a pointer to v. It exists so callers can populate the
// Options fields that distinguish "left unset" (nil) from "explicitly set
// to the zero value" (a non-nil pointer to 0) without spelling out a
// local variable at every call site, e.g. Options{NElite: tsp.Ptr(0)}.
func Ptr[T any](v T) *T {
	return &v
}
