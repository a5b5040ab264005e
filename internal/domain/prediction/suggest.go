package prediction

import (
	"math"
	"sort"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Suggestion gating thresholds.
const (
	maxSuggestions = 3

	suggestTransferHorizon = 1
	suggestTopScorerBar    = 75.0

	injuryThresholdBase      = 16.0
	injuryThresholdSkillStep = 4.0
)

// Base confidence per suggested claim before the scout's noise is applied.
const (
	breakoutBaseConfidence  = 0.60
	declineBaseConfidence   = 0.55
	transferBaseConfidence  = 0.50
	injuryBaseConfidence    = 0.45
	topScorerBaseConfidence = 0.65
)

// Confidence noise shrinks linearly with skill: a well-calibrated scout is
// less noisy, not just more accurate.
const (
	noiseSigmaMax   = 0.15
	noiseSigmaRange = 0.12
)

// Suggestion pairs a candidate claim with the scout's noisy confidence in it.
type Suggestion struct {
	PlayerID   string
	PlayerName string
	Type       Type
	Confidence float64
}

// Suggest proposes up to three claims the scout might stake, drawn from
// visible player state. Candidates are gathered in player-id order, shuffled,
// truncated, and given Gaussian-perturbed confidences, so identical inputs
// and seed produce identical suggestions.
//
// goalPercentiles holds each player's goals-per-90 percentile from the
// statistics layer; absent players are simply never top-scorer candidates.
func Suggest(src *rng.Source, scout model.Scout, players map[string]model.Player, season int, goalPercentiles map[string]float64) []Suggestion {
	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	injuryBar := injuryThresholdBase - math.Floor(float64(scout.Judgment)/injuryThresholdSkillStep)

	var candidates []Suggestion
	for _, id := range ids {
		player := players[id]

		if player.Age <= breakoutAgeCeiling && player.Form >= 1 {
			candidates = append(candidates, Suggestion{id, player.Name, TypeBreakout, breakoutBaseConfidence})
		}
		if player.Age >= declineAgeFloor && player.Form < 0 {
			candidates = append(candidates, Suggestion{id, player.Name, TypeDecline, declineBaseConfidence})
		}
		if player.ContractExpirySeason <= season+suggestTransferHorizon {
			candidates = append(candidates, Suggestion{id, player.Name, TypeTransfer, transferBaseConfidence})
		}
		if player.Attr(model.AttrHiddenInjuryProneness) >= injuryBar {
			candidates = append(candidates, Suggestion{id, player.Name, TypeInjury, injuryBaseConfidence})
		}
		if goalPercentiles[id] >= suggestTopScorerBar {
			candidates = append(candidates, Suggestion{id, player.Name, TypeTopScorer, topScorerBaseConfidence})
		}
	}

	src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	sigma := noiseSigmaMax - scout.SkillAverage()/model.AttributeMax*noiseSigmaRange
	for i := range candidates {
		candidates[i].Confidence = clampConfidence(candidates[i].Confidence + src.Normal(0, sigma))
	}
	return candidates
}
