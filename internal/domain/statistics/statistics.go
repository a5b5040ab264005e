// Package statistics derives noisy per-90 statistical estimates from hidden
// player attributes, calibrated by the observer's skill.
//
// The raw vector is a deterministic linear blend of true attributes; every
// consumer-facing number then passes through multiplicative Gaussian noise
// whose width depends on who is looking. Percentiles rank the perceived value
// against positional peers' raw values.
package statistics

import (
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Stat identifies one per-90 statistic.
type Stat string

// The tracked per-90 statistics.
const (
	StatGoals         Stat = "goals"
	StatAssists       Stat = "assists"
	StatKeyPasses     Stat = "keyPasses"
	StatTackles       Stat = "tackles"
	StatInterceptions Stat = "interceptions"
	StatDribbles      Stat = "dribbles"
)

// Stats lists every statistic in a fixed order. Noise is drawn in this order,
// which is part of the replay contract.
var Stats = [...]Stat{
	StatGoals, StatAssists, StatKeyPasses,
	StatTackles, StatInterceptions, StatDribbles,
}

// Trend labels a stat's movement between successive profiles.
type Trend string

// Trend labels.
const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// Observer noise tiers by data-literacy skill.
const (
	noiseLowSkillCeiling = 7
	noiseMidSkillCeiling = 14

	noiseLowSkill  = 0.15
	noiseMidSkill  = 0.08
	noiseHighSkill = 0.03
)

// Trend detection band: movement within 5% either way reads as stable.
const trendBand = 0.05

// blend is one attribute's share of a stat's raw value.
type blend struct {
	attr   model.Attribute
	weight float64
}

// statBlends fixes how true attributes combine into each raw per-90 value.
// Weights sum to 1 per stat; the trailing scale sets the realistic magnitude.
var statBlends = map[Stat]struct {
	parts []blend
	scale float64
}{
	StatGoals: {
		parts: []blend{
			{model.AttrTechnicalShooting, 0.5},
			{model.AttrMentalComposure, 0.25},
			{model.AttrTacticalPositioning, 0.25},
		},
		scale: 0.8,
	},
	StatAssists: {
		parts: []blend{
			{model.AttrTechnicalPassing, 0.4},
			{model.AttrMentalVision, 0.4},
			{model.AttrTechnicalCrossing, 0.2},
		},
		scale: 0.6,
	},
	StatKeyPasses: {
		parts: []blend{
			{model.AttrMentalVision, 0.5},
			{model.AttrTechnicalPassing, 0.3},
			{model.AttrTechnicalCrossing, 0.2},
		},
		scale: 2.5,
	},
	StatTackles: {
		parts: []blend{
			{model.AttrTechnicalTackling, 0.6},
			{model.AttrTacticalPositioning, 0.2},
			{model.AttrTacticalWorkRate, 0.2},
		},
		scale: 3.5,
	},
	StatInterceptions: {
		parts: []blend{
			{model.AttrTacticalPositioning, 0.5},
			{model.AttrMentalConcentration, 0.3},
			{model.AttrTacticalDecisions, 0.2},
		},
		scale: 2.0,
	},
	StatDribbles: {
		parts: []blend{
			{model.AttrTechnicalDribbling, 0.6},
			{model.AttrPhysicalAgility, 0.25},
			{model.AttrPhysicalPace, 0.15},
		},
		scale: 3.0,
	},
}

// Profile is one player's statistical snapshot for a season.
type Profile struct {
	PlayerID string
	Season   int
	Position model.Position

	// PerNinety holds the perceived per-90 values after observer noise.
	PerNinety map[Stat]float64

	// Percentiles rank the perceived values against positional peers, 0-100.
	Percentiles map[Stat]float64

	// Trends compare this profile to the prior one; all stable when none
	// existed.
	Trends map[Stat]Trend

	// Passes counts how many analysis passes fed this profile.
	Passes int
}

// rawValue computes the deterministic raw per-90 value for one stat.
func rawValue(player model.Player, stat Stat) float64 {
	b := statBlends[stat]
	var sum float64
	for _, part := range b.parts {
		sum += player.Attr(part.attr) * part.weight
	}
	return sum / model.AttributeMax * b.scale
}

// noiseFactor maps observer skill to a multiplicative noise sigma.
func noiseFactor(skill int) float64 {
	switch {
	case skill <= noiseLowSkillCeiling:
		return noiseLowSkill
	case skill <= noiseMidSkillCeiling:
		return noiseMidSkill
	default:
		return noiseHighSkill
	}
}

// perceive applies multiplicative Gaussian noise to a raw value, floored at
// zero. A per-90 count cannot go negative however badly it is misread.
func perceive(src *rng.Source, raw, sigma float64) float64 {
	v := raw * (1 + src.Normal(0, sigma))
	if v < 0 {
		return 0
	}
	return v
}

// percentile is the strict-less rank of a value among peers, 0-100.
// The single lowest value among any peer group ranks 0.
func percentile(value float64, peers []float64) float64 {
	if len(peers) == 0 {
		return 0
	}
	var below int
	for _, p := range peers {
		if p < value {
			below++
		}
	}
	return float64(below) / float64(len(peers)) * 100
}

// peerRawValues collects the raw stat values of every same-position peer.
func peerRawValues(players []model.Player, position model.Position, stat Stat) []float64 {
	var out []float64
	for _, p := range players {
		if p.Position == position {
			out = append(out, rawValue(p, stat))
		}
	}
	return out
}

// trendFor compares a new perceived value to the prior one.
func trendFor(newValue, oldValue float64) Trend {
	switch {
	case newValue > oldValue*(1+trendBand):
		return TrendRising
	case newValue < oldValue*(1-trendBand):
		return TrendFalling
	default:
		return TrendStable
	}
}
