// Command mmas-misp runs the MMAS Maximum Independent Set solver against a
// single DIMACS graph file or a directory of them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gopheraco/mmas-misp/colony"
	"github.com/gopheraco/mmas-misp/loader"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mmas-misp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		path      string
		timeLimit float64
		ants      int
		alpha     float64
		beta      float64
		gamma     float64
		delta     float64
		rho       float64
		tauMin    float64
		tauMax    float64
		lsBudget  int
		verbose   bool
	)
	fs.StringVar(&path, "i", "", "path to graph instance file or directory (required)")
	fs.Float64Var(&timeLimit, "t", 10.0, "time limit in seconds")
	fs.IntVar(&ants, "m", 10, "number of ants per iteration")
	fs.Float64Var(&alpha, "a", 1.0, "pheromone influence exponent")
	fs.Float64Var(&beta, "b", 2.0, "heuristic influence exponent")
	fs.Float64Var(&gamma, "g", 0.0, "degeneracy heuristic exponent (0 disables)")
	fs.Float64Var(&delta, "d", 0.0, "conflict heuristic exponent (0 disables)")
	fs.Float64Var(&rho, "r", 0.02, "evaporation rate")
	fs.Float64Var(&tauMin, "min", 1.0, "minimum pheromone level")
	fs.Float64Var(&tauMax, "max", 100.0, "maximum pheromone level")
	fs.IntVar(&lsBudget, "budget", 0, "local search budget (0 disables)")
	fs.BoolVar(&verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: mmas-misp -i <path> [-t <time>] [-m <ants>] [-a <alpha>] [-b <beta>] [-g <gamma>] [-d <delta>] [-r <rho>] [-min <tau_min>] [-max <tau_max>] [-budget <n>] [-v]")
		fs.PrintDefaults()
		return 1
	}

	opts := []colony.Option{
		colony.WithTimeLimit(time.Duration(timeLimit * float64(time.Second))),
		colony.WithAnts(ants),
		colony.WithAlpha(alpha),
		colony.WithBeta(beta),
		colony.WithGamma(gamma),
		colony.WithDelta(delta),
		colony.WithRho(rho),
		colony.WithTauBounds(tauMin, tauMax),
		colony.WithLocalSearchBudget(lsBudget),
		colony.WithRand(colony.NewSeededRand(colony.DefaultSeed)),
	}
	if verbose {
		opts = append(opts, colony.WithLogger(colony.NewTextLogger(slog.LevelInfo)))
	}
	cfg := colony.NewConfig(opts...)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error accessing path: %v\n", err)
		return 1
	}

	if info.IsDir() {
		return runDirectory(path, cfg)
	}
	return runSingleFile(path, cfg, verbose)
}

func runSingleFile(path string, cfg colony.Config, verbose bool) int {
	g, err := loader.LoadDIMACS(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load graph from file: %v\n", err)
		return 1
	}

	result, err := colony.Run(g, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if verbose {
		fmt.Printf("Best size found: %d in %d iterations\n", result.BestSize, result.Iterations)
	} else {
		// Negated so that external auto-tuners, which minimize, maximize size.
		fmt.Println(-result.BestSize)
	}
	return 0
}

func runDirectory(root string, cfg colony.Config) int {
	files, err := loader.Discover(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println("Density,Tests,Avg_MISP_Size,Avg_Time(s),Avg_Iterations")

	var (
		lastDensity   byte
		haveLastDigit bool
		tests         int
		avgSize       float64
		avgTime       float64
		avgIterations float64
	)

	emitRow := func() {
		if tests == 0 {
			return
		}
		fmt.Printf("0.%c,%d,%.2f,%.4f,%.0f\n", lastDensity, tests, avgSize, avgTime, avgIterations)
	}

	for i, file := range files {
		digit, ok := loader.ParseDensity(file)

		if ok && haveLastDigit && digit != lastDensity {
			emitRow()
			tests, avgSize, avgTime, avgIterations = 0, 0, 0, 0
		}
		if ok {
			lastDensity = digit
			haveLastDigit = true
		}

		fullPath := filepath.Join(root, file)
		g, err := loader.LoadDIMACS(fullPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not load graph from file: %v\n", err)
			return 1
		}

		start := time.Now()
		result, err := colony.Run(g, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		elapsed := time.Since(start).Seconds()

		avgSize = (avgSize*float64(tests) + float64(result.BestSize)) / float64(tests+1)
		avgTime = (avgTime*float64(tests) + elapsed) / float64(tests+1)
		avgIterations = (avgIterations*float64(tests) + float64(result.Iterations)) / float64(tests+1)
		tests++

		if i == len(files)-1 {
			emitRow()
		}
	}
	return 0
}
