package matchday

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abmccull/talentscout/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete matchday simulation.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting matchday simulation",
		logger.String("baseURL", config.BaseURL),
		logger.Int("observations", config.NumObservations),
		logger.Int("scouts", config.NumScouts),
		logger.Int("players", config.NumPlayers),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("topN", config.TopN),
		logger.Any("seed", config.Seed),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate observations
	observations, err := generateObservations(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("observation generation failed: %w", err)
	}

	// Step 3: Submit observations concurrently
	if err := submitObservations(ctx, config, observations, stats); err != nil {
		return fmt.Errorf("observation submission failed: %w", err)
	}

	// Step 4: Wait for the assessment queue to drain
	if err := waitForProcessing(ctx, config); err != nil {
		return fmt.Errorf("processing wait failed: %w", err)
	}

	// Step 5: Verify deduplication by re-submitting a sample
	if err := verifyDedupe(ctx, config, observations, stats); err != nil {
		return fmt.Errorf("dedupe verification failed: %w", err)
	}

	// Step 6: Retrieve per-scout ranks concurrently
	ranks, err := retrieveScoutRanks(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("rank retrieval failed: %w", err)
	}

	// Step 7: Get standings
	standings, err := getStandings(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("standings retrieval failed: %w", err)
	}

	// Step 8: Verify results
	if err := verifyStandings(ctx, config, ranks, standings); err != nil {
		return fmt.Errorf("standings verification failed: %w", err)
	}

	// Step 9: Save observations to file
	if err := saveObservationsToFile(ctx, config, observations); err != nil {
		logger.Get().Warn(ctx, "failed to save observations to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "simulation completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// waitForProcessing polls /stats until the assessment queue drains or the
// wait deadline passes.
func waitForProcessing(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "waiting for observations to be processed")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/stats"
	deadline := time.Now().Add(ProcessingWaitMax)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(ProcessingPollInterval):
		}

		resp, err := client.Get(url)
		if err != nil {
			continue
		}
		body, err := readResponseBody(resp)
		if err != nil || resp.StatusCode != StatusOK {
			continue
		}

		var svcStats map[string]interface{}
		if err := unmarshalJSON(body, &svcStats); err != nil {
			continue
		}
		if queueLen, ok := svcStats["queueLength"].(float64); ok && queueLen == 0 {
			logger.Get().Info(ctx, "assessment queue drained")
			return nil
		}
	}

	logger.Get().Warn(ctx, "queue did not drain before deadline", logger.String("waited", ProcessingWaitMax.String()))
	return nil
}

// saveObservationsToFile saves the generated observations to a JSON file.
func saveObservationsToFile(ctx context.Context, config *Config, observations []Observation) error {
	if len(observations) == 0 {
		return fmt.Errorf("no observations to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_observations_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write observations to file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	// Write JSON array
	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}

	for i, obs := range observations {
		jsonData, err := marshalJSON(obs)
		if err != nil {
			return fmt.Errorf("failed to marshal observation %d: %w", i, err)
		}

		if _, err := file.Write(jsonData); err != nil {
			return fmt.Errorf("failed to write observation %d: %w", i, err)
		}

		// Add comma except for last observation
		if i < len(observations)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write comma: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}

	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "observations saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final simulation statistics.
func displayFinalStats(stats *Stats) {
	var successRate, observationsPerSecond float64

	if stats.ObservationsSubmitted > 0 {
		successRate = float64(stats.ObservationsSuccessful) / float64(stats.ObservationsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		observationsPerSecond = float64(stats.ObservationsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("observationsGenerated", stats.ObservationsGenerated),
		logger.Int("observationsSubmitted", stats.ObservationsSubmitted),
		logger.Int("observationsSuccessful", stats.ObservationsSuccessful),
		logger.Int("observationsDuplicate", stats.ObservationsDuplicate),
		logger.Int("observationsFailed", stats.ObservationsFailed),
		logger.Int("duplicatesVerified", stats.DuplicatesVerified),
		logger.Int("ranksRetrieved", stats.RanksRetrieved),
		logger.Int("standingsEntries", stats.StandingsEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("observationsPerSecond", observationsPerSecond))
}
