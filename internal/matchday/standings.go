package matchday

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// retrieveScoutRanks retrieves standings rows for all simulated scouts
// concurrently. Scouts without resolved predictions are absent from the
// standings, so a 404 counts as "unranked", not a failure.
func retrieveScoutRanks(ctx context.Context, config *Config, stats *Stats) ([]Entry, error) {
	log.Printf("Retrieving ranks for %d scouts with %d workers...", config.NumScouts, config.Workers)

	client := newHTTPClient(config.Timeout)

	scoutIDs := make([]string, config.NumScouts)
	for i := range scoutIDs {
		scoutIDs[i] = "scout_" + strconv.Itoa(i)
	}

	// Results storage
	ranks := make([]Entry, len(scoutIDs))
	var (
		retrieved int64
		unranked  int64
		failed    int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	scoutChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range scoutChan {
				select {
				case <-ctx.Done():
					return
				default:
					scoutID := scoutIDs[index]
					entry, status, err := retrieveSingleRank(ctx, client, config.BaseURL, scoutID)

					switch {
					case err != nil:
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("Failed to get rank for %s: %v", scoutID, err)
						}
					case status == http.StatusNotFound:
						atomic.AddInt64(&unranked, 1)
					default:
						ranks[index] = entry
						atomic.AddInt64(&retrieved, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&retrieved) + atomic.LoadInt64(&unranked) + atomic.LoadInt64(&failed)
						log.Printf("Rank progress: %d/%d checked (ranked: %d, unranked: %d, failed: %d)",
							total, len(scoutIDs), atomic.LoadInt64(&retrieved), atomic.LoadInt64(&unranked), atomic.LoadInt64(&failed))
					}
				}
			}
		}(i)
	}

	// Send scout indices to workers
	go func() {
		defer close(scoutChan)
		for i := range scoutIDs {
			select {
			case <-ctx.Done():
				return
			case scoutChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Filter out empty entries (unranked or failed)
	validRanks := make([]Entry, 0, len(ranks))
	for _, entry := range ranks {
		if entry.ScoutID != "" {
			validRanks = append(validRanks, entry)
		}
	}

	stats.RanksRetrieved = len(validRanks)

	log.Printf(`Rank retrieval completed:
   Ranked: %d
   Unranked: %d
   Failed: %d
`, len(validRanks), int(atomic.LoadInt64(&unranked)), int(atomic.LoadInt64(&failed)))

	return validRanks, nil
}

// retrieveSingleRank retrieves the standings row for a single scout.
func retrieveSingleRank(ctx context.Context, client *HTTPClient, baseURL, scoutID string) (Entry, int, error) {
	url := fmt.Sprintf("%s/standings/%s", baseURL, scoutID)

	resp, err := client.Get(url)
	if err != nil {
		return Entry{}, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return Entry{}, http.StatusNotFound, nil
	}

	if resp.StatusCode != StatusOK {
		body, _ := readResponseBody(resp)
		return Entry{}, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Entry{}, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	var entry Entry
	if err := unmarshalJSON(body, &entry); err != nil {
		return Entry{}, resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
	}

	return entry, resp.StatusCode, nil
}

// getStandings retrieves the top N standings entries.
func getStandings(ctx context.Context, config *Config, stats *Stats) ([]Entry, error) {
	log.Printf("Getting top %d standings entries...", config.TopN)

	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/standings?limit=%d", config.BaseURL, config.TopN)

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != StatusOK {
		body, _ := readResponseBody(resp)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var standings []Entry
	if err := unmarshalJSON(body, &standings); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	stats.StandingsEntries = len(standings)
	log.Printf("Retrieved %d standings entries", len(standings))

	return standings, nil
}
