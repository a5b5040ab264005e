package statistics

import (
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Deep video analysis parameters: a focused session reads cleaner than a
// database pull, and repeated passes converge on the truth.
const (
	deepVideoNoiseScale = 0.6
	deepVideoNewWeight  = 0.6
)

// ExecuteDatabaseQuery produces a first-pass statistical profile for a player
// from the club's data feed. Noise width follows the observer's data-literacy
// skill; peers are every same-position player in the supplied pool.
func ExecuteDatabaseQuery(src *rng.Source, skill int, player model.Player, pool []model.Player, season int) Profile {
	return analyze(src, noiseFactor(skill), player, pool, season, nil)
}

// ExecuteDeepVideoAnalysis produces a profile from focused video work. Noise
// is reduced against a database pull, and when a prior profile exists the new
// reading is blended 60/40 toward the fresher, lower-noise values, so
// repeated observation tightens belief instead of churning it.
func ExecuteDeepVideoAnalysis(src *rng.Source, skill int, player model.Player, pool []model.Player, season int, prior *Profile) Profile {
	return analyze(src, noiseFactor(skill)*deepVideoNoiseScale, player, pool, season, prior)
}

// analyze runs one perception pass. Noise draws follow the fixed Stats order.
func analyze(src *rng.Source, sigma float64, player model.Player, pool []model.Player, season int, prior *Profile) Profile {
	p := Profile{
		PlayerID:    player.ID,
		Season:      season,
		Position:    player.Position,
		PerNinety:   make(map[Stat]float64, len(Stats)),
		Percentiles: make(map[Stat]float64, len(Stats)),
		Trends:      make(map[Stat]Trend, len(Stats)),
		Passes:      1,
	}

	for _, stat := range Stats {
		perceived := perceive(src, rawValue(player, stat), sigma)

		if prior != nil {
			if old, ok := prior.PerNinety[stat]; ok {
				perceived = perceived*deepVideoNewWeight + old*(1-deepVideoNewWeight)
			}
		}

		p.PerNinety[stat] = perceived
		p.Percentiles[stat] = percentile(perceived, peerRawValues(pool, player.Position, stat))

		if prior != nil {
			p.Trends[stat] = trendFor(perceived, prior.PerNinety[stat])
		} else {
			p.Trends[stat] = TrendStable
		}
	}

	if prior != nil {
		p.Passes = prior.Passes + 1
	}
	return p
}
