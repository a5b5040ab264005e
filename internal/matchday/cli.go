package matchday

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/abmccull/talentscout/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "matchday_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the matchday tool.
func ShowHelp() {
	os.Stdout.WriteString(`Matchday Simulation Tool
========================

A concurrent tool for exercising the scouting observation pipeline.

Usage:
  go run cmd/matchday/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -observations int
        Number of observations to generate and submit (default 10000)
  -scouts int
        Number of simulated scouts (default 50)
  -players int
        Number of simulated players (default 500)
  -top int
        Number of top entries to fetch from standings (default 50)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seed int
        Generator seed; the same seed replays the same run (default 1)
  -output string
        Output file for generated observations (default: generated_observations_TIMESTAMP.json)
  -log string
        Log file for run output (default: matchday_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Run with default settings
  go run cmd/matchday/main.go

  # Run with custom parameters
  go run cmd/matchday/main.go -observations 50000 -workers 16 -url http://localhost:8080

  # Replay a previous run exactly
  go run cmd/matchday/main.go -observations 10000 -seed 42

  # Run with verbose output and a custom log file
  go run cmd/matchday/main.go -verbose -observations 10000 -log my_run.log
`)
}
