// Command eutsp solves a symmetric Euclidean TSP instance read from a
// TSPLIB or flat coordinate file and prints the resulting tour.
//
// Usage:
//
//	eutsp -input cities.tsp -solver two_opt -start 0
//
// Output is two lines: "<cost> <optimal>" (optimal is 1 for a proven
// optimum from branch_bound or bellman_karp, else 0) then the
// space-separated tour indices (closed, first == last).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"golang.org/x/exp/slog"

	"github.com/mgrzywacz/eutsp/internal/tsplib"
	"github.com/mgrzywacz/eutsp/tsp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("eutsp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	inputPath := fs.String("input", "", "path to a TSPLIB or flat coordinate file (required)")
	format := fs.String("format", "auto", "input format: auto | tsplib | flat")
	configPath := fs.String("config", "", "optional YAML file supplying default parameters")
	solverName := fs.String("solver", string(tsp.NearestNeighbor), "solver name or alias (see tsp.Resolve)")
	start := fs.Int("start", 0, "start/closing vertex index")
	seed := fs.Int64("seed", 0, "PRNG seed (when neither this flag nor the config file sets a nonzero seed, the system clock is used; an explicit -seed 0 selects the fixed default stream)")
	epochs := fs.Int("epochs", 0, "iteration/generation bound (0 = solver default; stochastic_hill then runs without a bound)")
	plateau := fs.Int("plateau-epochs", 0, "stall threshold before StochasticHill restarts (explicit 0 is legal: restart after every step)")
	coolingRate := fs.Float64("cooling-rate", 0, "SimulatedAnneal geometric decay in [0,1) (explicit 0 is legal: disables cooling)")
	maxTemp := fs.Float64("max-temperature", 0, "SimulatedAnneal starting temperature")
	minTemp := fs.Float64("min-temperature", 0, "SimulatedAnneal stopping temperature")
	tabuCap := fs.Int("tabu-capacity", 0, "TabuSearch FIFO memory size (0 = default to N)")
	mutationProb := fs.Float64("mutation-probability", 0, "GeneticSearch per-child mutation rate in [0,1] (explicit 0 is legal: disables mutation)")
	nElite := fs.Int("n-elite", 0, "GeneticSearch elite carry-over count (explicit 0 is legal: no elitism)")
	popSize := fs.Int("pop-size", 0, "GeneticSearch population size")
	tournamentK := fs.Int("tournament-k", 0, "GeneticSearch tournament sample size (0 = default)")
	verbose := fs.Bool("verbose", false, "emit per-iteration diagnostics and a startup banner")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *inputPath == "" {
		fmt.Fprintln(stderr, "eutsp: -input is required")
		return 2
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "eutsp:", err)
		return 2
	}
	applyConfigDefaults(cfg, seen, solverName, start, seed, epochs,
		maxTemp, minTemp, tabuCap, popSize, tournamentK, verbose)
	if !seen["seed"] && *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logger := slog.New(newTextLineHandler(stderr, &slog.HandlerOptions{
		Level: levelFor(*verbose),
	}))

	if *verbose {
		printStartupBanner(logger)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintln(stderr, "eutsp:", err)
		return 1
	}
	defer f.Close()

	doc, err := parseInput(f, *inputPath, *format)
	if err != nil {
		fmt.Fprintln(stderr, "eutsp:", err)
		return 1
	}

	opts := tsp.Options{
		StartVertex:         *start,
		Seed:                *seed,
		Epochs:              *epochs,
		PlateauEpochs:       explicitInt(seen, "plateau-epochs", *plateau, cfg.PlateauEpochs),
		CoolingRate:         explicitFloat(seen, "cooling-rate", *coolingRate, cfg.CoolingRate),
		MaxTemperature:      *maxTemp,
		MinTemperature:      *minTemp,
		TabuCapacity:        *tabuCap,
		MutationProbability: explicitFloat(seen, "mutation-probability", *mutationProb, cfg.MutationProbability),
		NElite:              explicitInt(seen, "n-elite", *nElite, cfg.NElite),
		PopSize:             *popSize,
		TournamentK:         *tournamentK,
		Verbose:             *verbose,
		Logger:              solverLogAdapter{log: logger},
	}

	name, err := tsp.Resolve(*solverName)
	if err != nil {
		fmt.Fprintln(stderr, "eutsp:", err)
		return 1
	}

	started := time.Now()
	res, err := tsp.Solve(name, doc.Cities, opts)
	if err != nil {
		fmt.Fprintln(stderr, "eutsp:", err)
		return 1
	}
	if *verbose {
		logger.Debug("solve complete", "solver", string(name), "elapsed", time.Since(started).String())
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	optimalFlag := 0
	if res.Optimal {
		optimalFlag = 1
	}
	fmt.Fprintf(w, "%.9f %d\n", res.Cost, optimalFlag)
	for i, v := range res.Tour {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v)
	}
	fmt.Fprintln(w)
	return 0
}

// applyConfigDefaults fills any flag the user did not pass on the command
// line from the loaded config file, leaving explicit flags untouched. The
// four ambiguous-zero fields (plateau-epochs, cooling-rate,
// mutation-probability, n-elite) are handled separately by explicitInt and
// explicitFloat at the Options call site, since applying them here would
// collapse "set in the config file" back into a plain int/float64 and lose
// the nil-vs-explicit-zero distinction those fields exist to preserve.
func applyConfigDefaults(cfg fileConfig, seen map[string]bool, solverName *string, start *int, seed *int64,
	epochs *int, maxTemp, minTemp *float64, tabuCap, popSize, tournamentK *int, verbose *bool) {

	set := func(name string, apply func()) {
		if !seen[name] {
			apply()
		}
	}
	if cfg.Solver != "" {
		set("solver", func() { *solverName = cfg.Solver })
	}
	set("start", func() { *start = cfg.Start })
	set("seed", func() { *seed = cfg.Seed })
	set("epochs", func() { *epochs = cfg.Epochs })
	set("max-temperature", func() { *maxTemp = cfg.MaxTemperature })
	set("min-temperature", func() { *minTemp = cfg.MinTemperature })
	set("tabu-capacity", func() { *tabuCap = cfg.TabuCapacity })
	set("pop-size", func() { *popSize = cfg.PopSize })
	set("tournament-k", func() { *tournamentK = cfg.TournamentK })
	set("verbose", func() { *verbose = cfg.Verbose })
}

// explicitInt resolves one of the pointer-typed Options int fields: an
// explicit command-line flag wins, then a present config-file key, then nil
// ("use the solver's documented default").
func explicitInt(seen map[string]bool, flagName string, flagVal int, cfgVal *int) *int {
	if seen[flagName] {
		return tsp.Ptr(flagVal)
	}
	return cfgVal
}

// explicitFloat mirrors explicitInt for the pointer-typed Options float64
// fields.
func explicitFloat(seen map[string]bool, flagName string, flagVal float64, cfgVal *float64) *float64 {
	if seen[flagName] {
		return tsp.Ptr(flagVal)
	}
	return cfgVal
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func parseInput(f *os.File, path, format string) (tsplib.Document, error) {
	switch format {
	case "tsplib":
		return tsplib.ParseTSPLIB(f)
	case "flat":
		return tsplib.ParseFlat(f)
	case "auto":
		if strings.HasSuffix(path, ".tsp") {
			return tsplib.ParseTSPLIB(f)
		}
		return tsplib.ParseFlat(f)
	default:
		return tsplib.Document{}, fmt.Errorf("unknown -format %q", format)
	}
}

// printStartupBanner logs a snapshot of the host this process runs on. It
// is diagnostic only: solver behavior never depends on it.
func printStartupBanner(logger *slog.Logger) {
	if info, err := host.Info(); err == nil {
		logger.Debug("host", "os", info.OS, "platform", info.Platform, "hostname", info.Hostname)
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		logger.Debug("cpu", "model", infos[0].ModelName, "cores", len(infos))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Debug("memory", "total_mb", vm.Total/1024/1024, "available_mb", vm.Available/1024/1024)
	}
}
