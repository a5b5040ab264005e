package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/abmccull/talentscout/internal/matchday"
)

// Default configuration constants.
const (
	defaultNumObservations = 10000
	defaultNumScouts       = 50
	defaultNumPlayers      = 500
	defaultTopN            = 50
	defaultWorkers         = 2 // multiplier for runtime.NumCPU()
	defaultTimeout         = 30 * time.Second
	defaultRunTimeout      = 10 * time.Minute
	defaultSeed            = 1
)

func main() {
	var (
		baseURL         = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numObservations = flag.Int("observations", defaultNumObservations, "Number of observations to generate and submit")
		numScouts       = flag.Int("scouts", defaultNumScouts, "Number of simulated scouts")
		numPlayers      = flag.Int("players", defaultNumPlayers, "Number of simulated players")
		topN            = flag.Int("top", defaultTopN, "Number of top entries to fetch from standings")
		workers         = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout         = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed            = flag.Int64("seed", defaultSeed, "Generator seed; the same seed replays the same run")
		outputFile      = flag.String("output", "", "Output file for generated observations (default: generated_observations_TIMESTAMP.json)")
		logFile         = flag.String("log", "", "Log file for run output (default: matchday_log_TIMESTAMP.log)")
		verbose         = flag.Bool("verbose", false, "Enable verbose logging")
		help            = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		matchday.ShowHelp()
		return
	}

	// Setup logging
	if err := matchday.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create simulation configuration
	config := &matchday.Config{
		BaseURL:         *baseURL,
		NumObservations: *numObservations,
		NumScouts:       *numScouts,
		NumPlayers:      *numPlayers,
		TopN:            *topN,
		Workers:         *workers,
		Timeout:         *timeout,
		OutputFile:      *outputFile,
		LogFile:         *logFile,
		Verbose:         *verbose,
		Seed:            *seed,
	}

	// Run the simulation
	if err := matchday.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		return
	}
}
