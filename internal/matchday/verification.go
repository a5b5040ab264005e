package matchday

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// verifyDedupe re-submits a sample of already-accepted observations and
// checks every one comes back flagged as a duplicate.
func verifyDedupe(ctx context.Context, config *Config, observations []Observation, stats *Stats) error {
	sample := minInt(DuplicateSampleSize, len(observations))
	if sample == 0 {
		return fmt.Errorf("no observations to verify")
	}

	log.Printf("Verifying deduplication with a sample of %d observations...", sample)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/observations"

	duplicates := 0
	for i := 0; i < sample; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result := submitSingleObservation(ctx, client, url, observations[i])
		if result == "duplicate" {
			duplicates++
		} else if config.Verbose {
			log.Printf("Expected duplicate for %s, got %s", observations[i].ObservationID, result)
		}
	}

	stats.DuplicatesVerified = duplicates

	if duplicates != sample {
		log.Printf("Dedupe warning: %d/%d re-submissions flagged as duplicates", duplicates, sample)
	} else {
		log.Printf("Deduplication verified: %d/%d re-submissions flagged", duplicates, sample)
	}

	return nil
}

// verifyStandings checks the consistency of per-scout ranks against the
// standings table.
func verifyStandings(ctx context.Context, config *Config, ranks, standings []Entry) error {
	log.Println("Verifying standings...")

	if len(standings) == 0 {
		// Standings fill only after predictions resolve, so a fresh world
		// legitimately has none.
		log.Println("Standings are empty; nothing to cross-check")
		return nil
	}

	if err := verifyStandingsOrder(standings); err != nil {
		log.Printf("Standings consistency warning: %v", err)
	} else {
		log.Println("Standings ordering verified")
	}

	// Cross-check each retrieved rank against the standings table.
	byScout := make(map[string]Entry, len(standings))
	for _, entry := range standings {
		byScout[entry.ScoutID] = entry
	}
	mismatches := 0
	for _, rank := range ranks {
		entry, ok := byScout[rank.ScoutID]
		if !ok {
			continue // Below the top-N cutoff
		}
		if entry.Rank != rank.Rank || entry.Accuracy != rank.Accuracy {
			mismatches++
			if config.Verbose {
				log.Printf("Rank mismatch for %s: standings say %d/%.3f, rank endpoint says %d/%.3f",
					rank.ScoutID, entry.Rank, entry.Accuracy, rank.Rank, rank.Accuracy)
			}
		}
	}
	if mismatches > 0 {
		log.Printf("Standings cross-check warning: %d mismatched scouts", mismatches)
	} else {
		log.Println("Per-scout ranks match the standings table")
	}

	displayTopScouts(ranks, standings, config.Verbose)

	log.Println("Standings verification completed")
	return nil
}

// verifyStandingsOrder checks the standings are sorted by accuracy descending
// with contiguous ranks allowing ties.
func verifyStandingsOrder(standings []Entry) error {
	for i := 1; i < len(standings); i++ {
		if standings[i].Accuracy > standings[i-1].Accuracy {
			return fmt.Errorf("standings not properly sorted: entry %d has higher accuracy than entry %d", i, i-1)
		}
		if standings[i].Rank < standings[i-1].Rank {
			return fmt.Errorf("standings ranks not monotonic: entry %d ranked above entry %d", i, i-1)
		}
	}
	return nil
}

// displayTopScouts shows the top scouts from ranks and the standings table.
func displayTopScouts(ranks, standings []Entry, verbose bool) {
	sortedRanks := make([]Entry, len(ranks))
	copy(sortedRanks, ranks)
	sort.Slice(sortedRanks, func(i, j int) bool {
		return sortedRanks[i].Accuracy > sortedRanks[j].Accuracy
	})

	topN := 10
	if len(sortedRanks) < topN {
		topN = len(sortedRanks)
	}

	log.Printf("Top %d scouts by rank endpoint:", topN)
	for i := 0; i < topN; i++ {
		entry := sortedRanks[i]
		log.Printf("   %d. %s - Accuracy: %.3f (%d/%d, oracle: %v)",
			i+1, entry.ScoutID, entry.Accuracy, entry.Correct, entry.Resolved, entry.Oracle)
	}

	if len(standings) > 0 {
		standingsTopN := topN
		if len(standings) < standingsTopN {
			standingsTopN = len(standings)
		}

		log.Printf("Top %d scouts from standings:", standingsTopN)
		for i := 0; i < standingsTopN; i++ {
			entry := standings[i]
			log.Printf("   %d. %s - Accuracy: %.3f (%d/%d)",
				entry.Rank, entry.ScoutID, entry.Accuracy, entry.Correct, entry.Resolved)
		}
	}

	if verbose && len(sortedRanks) > 0 {
		avg := calculateAverageAccuracy(sortedRanks)
		log.Printf(`Accuracy statistics:
   Average: %.3f
   Maximum: %.3f
   Minimum: %.3f
`, avg, sortedRanks[0].Accuracy, sortedRanks[len(sortedRanks)-1].Accuracy)
	}
}

// calculateAverageAccuracy calculates the average accuracy across entries.
func calculateAverageAccuracy(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entry.Accuracy
	}

	return sum / float64(len(entries))
}
