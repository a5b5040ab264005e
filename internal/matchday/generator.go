package matchday

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/abmccull/talentscout/pkg/logger"
)

// Constants for scout archetype cases.
const (
	caseCautiousScout   = 0
	caseConfidentScout  = 1
	caseDataDrivenScout = 2
	caseGutFeelScout    = 3
	scoutArchetypes     = 4
)

// Constants for reading generation ranges.
const (
	cautiousConfidenceMin    = 0.3
	cautiousConfidenceRange  = 0.2
	confidentConfidenceMin   = 0.6
	confidentConfidenceRange = 0.3
	dataConfidenceMin        = 0.5
	dataConfidenceRange      = 0.2
	gutConfidenceMin         = 0.2
	gutConfidenceRange       = 0.6

	attributeBaseMin   = 6.0
	attributeBaseRange = 9.0
	attributeNoise     = 3.0
	attributeFloor     = 1.0
	attributeCeiling   = 20.0

	starsMin        = 1.0
	starsRange      = 4.0
	starsStep       = 0.5
	abilityCallRate = 0.6

	weeksPerSeason = 38
)

// positionAttributes lists the attribute keys a scout reads per position
// group. Keys match the service's wire schema.
var positionAttributes = [][]string{
	{"technicalShooting", "technicalFirstTouch", "physicalPace", "mentalComposure", "tacticalPositioning"},
	{"technicalPassing", "technicalDribbling", "mentalVision", "physicalStamina", "tacticalDecisions"},
	{"technicalTackling", "physicalStrength", "physicalJumping", "mentalConcentration", "tacticalMarking"},
	{"technicalCrossing", "physicalAgility", "mentalDetermination", "tacticalWorkRate", "tacticalTeamwork"},
}

// generateObservations creates the configured number of observations across
// the simulated scouts and players. Generation is seeded so the same run can
// be replayed byte for byte.
func generateObservations(ctx context.Context, config *Config, stats *Stats) ([]Observation, error) {
	logger.Get().Info(ctx, "generating observations",
		logger.Int("numObservations", config.NumObservations),
		logger.Int("scouts", config.NumScouts),
		logger.Int("players", config.NumPlayers),
		logger.Any("seed", config.Seed))

	observations := make([]Observation, config.NumObservations)

	type observationResult struct {
		index       int
		observation Observation
		err         error
	}

	resultChan := make(chan observationResult, config.NumObservations)

	// Use worker pool for observation generation. Each worker owns a seeded
	// source keyed by its start index so output stays deterministic.
	workerCount := minInt(config.Workers, config.NumObservations)
	perWorker := config.NumObservations / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * perWorker
		end := start + perWorker
		if worker == workerCount-1 {
			end = config.NumObservations // Last worker gets the remainder
		}

		go func(start, end int) {
			rng := rand.New(rand.NewSource(config.Seed + int64(start)))
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- observationResult{index: i, err: ctx.Err()}
					return
				default:
					obs := generateSingleObservation(rng, config, i)
					resultChan <- observationResult{index: i, observation: obs}
				}
			}
		}(start, end)
	}

	// Collect results
	for i := 0; i < config.NumObservations; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during observation generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate observation %d: %w", result.index, result.err)
			}
			observations[result.index] = result.observation
		}
	}

	stats.ObservationsGenerated = len(observations)
	logger.Get().Info(ctx, "generated observations successfully", logger.Int("count", len(observations)))

	return observations, nil
}

// generateSingleObservation creates one observation for the given index.
func generateSingleObservation(rng *rand.Rand, config *Config, index int) Observation {
	scoutID := "scout_" + strconv.Itoa(index%config.NumScouts)
	playerID := "player_" + strconv.Itoa(rng.Intn(config.NumPlayers))

	week := index%weeksPerSeason + 1
	season := index/(weeksPerSeason*maxInt(config.NumScouts, 1)) + 1

	archetype := index % scoutArchetypes
	readings := generateReadings(rng, archetype, index)

	obs := Observation{
		ObservationID: "obs_" + strconv.Itoa(index) + "_" + scoutID,
		PlayerID:      playerID,
		ScoutID:       scoutID,
		Week:          week,
		Season:        season,
		Readings:      readings,
	}

	// Some sessions end with a full star-rating impression, most do not.
	if rng.Float64() < abilityCallRate {
		obs.HasAbility = true
		obs.AbilityStars = roundToStep(starsMin+rng.Float64()*starsRange, starsStep)
		obs.PotentialStars = roundToStep(obs.AbilityStars+rng.Float64()*(attributeCeiling/10), starsStep)
		if obs.PotentialStars > 5 {
			obs.PotentialStars = 5
		}
	}

	return obs
}

// generateReadings produces a position-shaped set of attribute readings with
// confidence levels drawn from the scout's archetype.
func generateReadings(rng *rand.Rand, archetype, index int) map[string]Reading {
	attrs := positionAttributes[index%len(positionAttributes)]
	readings := make(map[string]Reading, len(attrs))

	for _, name := range attrs {
		value := attributeBaseMin + rng.Float64()*attributeBaseRange + (rng.Float64()-0.5)*attributeNoise
		if value < attributeFloor {
			value = attributeFloor
		}
		if value > attributeCeiling {
			value = attributeCeiling
		}

		var confidence float64
		switch archetype {
		case caseCautiousScout:
			confidence = cautiousConfidenceMin + rng.Float64()*cautiousConfidenceRange
		case caseConfidentScout:
			confidence = confidentConfidenceMin + rng.Float64()*confidentConfidenceRange
		case caseDataDrivenScout:
			confidence = dataConfidenceMin + rng.Float64()*dataConfidenceRange
		case caseGutFeelScout:
			confidence = gutConfidenceMin + rng.Float64()*gutConfidenceRange
		default:
			confidence = dataConfidenceMin + rng.Float64()*dataConfidenceRange
		}

		readings[name] = Reading{
			Value:      value,
			Confidence: confidence,
			Count:      1 + rng.Intn(3),
		}
	}

	return readings
}

// roundToStep rounds v down to the nearest multiple of step.
func roundToStep(v, step float64) float64 {
	return float64(int(v/step)) * step
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// maxInt returns the maximum of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
