package matchday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(url string, body interface{}) (*http.Response, error) {
	jsonData, err := marshalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// marshalJSON marshals a struct to JSON
func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// unmarshalJSON unmarshals JSON to a struct
func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitObservations submits observations concurrently using worker pools
func submitObservations(ctx context.Context, config *Config, observations []Observation, stats *Stats) error {
	log.Printf("Submitting %d observations with %d workers...", len(observations), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/observations"

	// Counters for statistics
	var (
		successful int64
		duplicate  int64
		failed     int64
		submitted  int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	obsChan := make(chan Observation, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for obs := range obsChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleObservation(ctx, client, url, obs)

					// Update counters
					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						dup := atomic.LoadInt64(&duplicate)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("Progress: %d/%d submitted (success: %d, duplicate: %d, failed: %d)",
								total, len(observations), succ, dup, fail)
						} else {
							fmt.Printf("\rSubmitted: %d/%d (success: %d, duplicate: %d, failed: %d)",
								total, len(observations), succ, dup, fail)
						}
					}
				}
			}
		}(i)
	}

	// Send observations to workers
	go func() {
		defer close(obsChan)
		for _, obs := range observations {
			select {
			case <-ctx.Done():
				return
			case obsChan <- obs:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.ObservationsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ObservationsSuccessful = int(atomic.LoadInt64(&successful))
	stats.ObservationsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.ObservationsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`Observation submission completed:
   Successful: %d
   Duplicate: %d
   Failed: %d
`, stats.ObservationsSuccessful, stats.ObservationsDuplicate, stats.ObservationsFailed)

	return nil
}

// submitSingleObservation submits a single observation and returns the result
func submitSingleObservation(ctx context.Context, client *HTTPClient, url string, obs Observation) string {
	resp, err := client.Post(url, obs)
	if err != nil {
		return "failed"
	}
	defer resp.Body.Close()

	// Read response body
	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	// Parse response based on status code
	switch resp.StatusCode {
	case StatusAccepted:
		// Accepted - new observation
		var ack AckResponse
		if err := unmarshalJSON(body, &ack); err == nil && ack.Status == "accepted" {
			return "success"
		}
		return "success" // Assume success for 202 even if parsing fails
	case StatusOK:
		// OK - duplicate observation
		var ack AckResponse
		if err := unmarshalJSON(body, &ack); err == nil && ack.Duplicate {
			return "duplicate"
		}
		return "duplicate" // Assume duplicate for 200 even if parsing fails
	default:
		// Error
		return "failed"
	}
}
