package statistics

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Anomaly detection bounds.
const (
	anomalyZThreshold = 2.0
	anomalyMinFlags   = 2
	anomalyMaxFlags   = 4

	topPerformersMax = 5
)

// Direction labels which tail of the distribution a flagged value sits in.
type Direction string

// Anomaly directions.
const (
	DirectionHigh Direction = "high"
	DirectionLow  Direction = "low"
)

// AnomalyFlag marks one player's stat as a positional outlier. Investigated
// is owned by whoever follows the flag up; detection always leaves it false.
type AnomalyFlag struct {
	ID       string
	PlayerID string
	Stat     Stat

	Direction Direction

	// Severity is the absolute perceived z-score.
	Severity float64

	Investigated bool
}

// TopPerformer is one standout player by blended raw output.
type TopPerformer struct {
	PlayerID string
	Name     string
	Position model.Position
	Score    float64
}

// Briefing is the analyst's weekly statistical digest.
type Briefing struct {
	Week   int
	Season int

	Anomalies     []AnomalyFlag
	TopPerformers []TopPerformer
}

// GenerateStatsBriefing scans the pool for statistical outliers and
// standouts. Anomalies come from per-position z-scores on raw goal output,
// with observer noise applied to the perceived z-score, so a low-skill
// observer under-detects the subtle ones. Two to four flags survive when the
// pool has scoreable positions, highest severity first, alongside up to five
// top performers.
func GenerateStatsBriefing(src *rng.Source, skill int, pool []model.Player, week, season int) Briefing {
	players := make([]model.Player, len(pool))
	copy(players, pool)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	sigma := noiseFactor(skill)

	b := Briefing{Week: week, Season: season}
	b.Anomalies = detectAnomalies(src, sigma, players)
	b.TopPerformers = pickTopPerformers(players)
	return b
}

// detectAnomalies flags players whose raw goal output sits more than two
// perceived standard deviations from their positional mean. The briefing
// always surfaces at least two leads when the pool offers candidates, so a
// quiet week backfills with the sharpest below-threshold readings.
func detectAnomalies(src *rng.Source, sigma float64, players []model.Player) []AnomalyFlag {
	byPosition := make(map[model.Position][]float64)
	for _, p := range players {
		byPosition[p.Position] = append(byPosition[p.Position], rawValue(p, StatGoals))
	}

	moments := make(map[model.Position][2]float64, len(byPosition))
	for pos, values := range byPosition {
		if len(values) < 2 {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		stddev, err := stats.StandardDeviation(values)
		if err != nil || stddev == 0 {
			continue
		}
		moments[pos] = [2]float64{mean, stddev}
	}

	var flags, subtle []AnomalyFlag
	for _, p := range players {
		m, ok := moments[p.Position]
		if !ok {
			continue
		}
		z := (rawValue(p, StatGoals) - m[0]) / m[1]
		perceivedZ := z * (1 + src.Normal(0, sigma))

		direction := DirectionHigh
		if perceivedZ < 0 {
			direction = DirectionLow
		}
		flag := AnomalyFlag{
			ID:        uuid.NewString(),
			PlayerID:  p.ID,
			Stat:      StatGoals,
			Direction: direction,
			Severity:  math.Abs(perceivedZ),
		}
		if flag.Severity >= anomalyZThreshold {
			flags = append(flags, flag)
		} else {
			subtle = append(subtle, flag)
		}
	}

	sort.SliceStable(flags, func(i, j int) bool { return flags[i].Severity > flags[j].Severity })
	if len(flags) < anomalyMinFlags && len(subtle) > 0 {
		sort.SliceStable(subtle, func(i, j int) bool { return subtle[i].Severity > subtle[j].Severity })
		need := anomalyMinFlags - len(flags)
		if need > len(subtle) {
			need = len(subtle)
		}
		flags = append(flags, subtle[:need]...)
	}
	if len(flags) > anomalyMaxFlags {
		flags = flags[:anomalyMaxFlags]
	}
	return flags
}

// pickTopPerformers ranks players by their blended raw output across every
// tracked stat, normalized so positions with big-scale stats do not drown
// the rest.
func pickTopPerformers(players []model.Player) []TopPerformer {
	performers := make([]TopPerformer, 0, len(players))
	for _, p := range players {
		var score float64
		for _, stat := range Stats {
			score += rawValue(p, stat) / statBlends[stat].scale
		}
		performers = append(performers, TopPerformer{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
			Score:    score / float64(len(Stats)),
		})
	}

	sort.SliceStable(performers, func(i, j int) bool { return performers[i].Score > performers[j].Score })
	if len(performers) > topPerformersMax {
		performers = performers[:topPerformersMax]
	}
	return performers
}
