// Package prediction tracks falsifiable scout claims about a player's future
// and resolves them once their deadline season passes.
//
// Resolution uses heuristic proxies against the hidden player state, not real
// league outcomes. The engine has no league table at this layer, so types like
// relegation resolve on a morale-gated roll. That approximation is deliberate
// and must survive refactors: re-rolling a resolved prediction would break
// replay determinism.
package prediction

import (
	"github.com/google/uuid"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Type classifies what a prediction claims will happen.
type Type string

// Supported prediction types.
const (
	TypeBreakout   Type = "breakout"
	TypeDecline    Type = "decline"
	TypeTransfer   Type = "transfer"
	TypeInjury     Type = "injury"
	TypeTopScorer  Type = "topScorer"
	TypeRelegation Type = "relegation"
)

// Types lists every prediction type in a fixed order.
var Types = [...]Type{
	TypeBreakout, TypeDecline, TypeTransfer,
	TypeInjury, TypeTopScorer, TypeRelegation,
}

// Resolution proxy thresholds.
const (
	breakoutAgeCeiling  = 23
	breakoutAbilityBar  = 100.0
	declineAgeFloor     = 30
	transferMoraleBar   = 4.0
	relegationMoraleBar = 4.0

	injuredResolveChance   = 0.70
	pronenessChanceScale   = 0.5
	relegationLowMorale    = 0.5
	relegationNormalMorale = 0.25

	topScorerTolerance = 0.05
)

// Composite shooting blend weights, shared with the statistics package's
// goals-per-90 derivation.
const (
	shootingWeight    = 0.5
	composureWeight   = 0.25
	positioningWeight = 0.25
)

// Prediction is one falsifiable claim. Once Resolved is set the outcome
// fields are permanent.
type Prediction struct {
	ID       string
	ScoutID  string
	PlayerID string
	Type     Type

	// Confidence is the scout's stated confidence, 0-1.
	Confidence float64

	CreatedWeek   int
	CreatedSeason int

	// ResolveBySeason is the season after which the claim is judged.
	ResolveBySeason int

	Resolved     bool
	WasCorrect   bool
	ResolvedWeek int
}

// New builds an unresolved prediction. The deadline is the following season
// unless the claim is about the current one.
func New(scoutID, playerID string, t Type, confidence float64, week, season int, sameSeason bool) Prediction {
	deadline := season + 1
	if sameSeason {
		deadline = season
	}
	return Prediction{
		ID:              uuid.NewString(),
		ScoutID:         scoutID,
		PlayerID:        playerID,
		Type:            t,
		Confidence:      clampConfidence(confidence),
		CreatedWeek:     week,
		CreatedSeason:   season,
		ResolveBySeason: deadline,
	}
}

// Due reports whether the prediction's deadline has passed.
func (p Prediction) Due(currentSeason int) bool {
	return currentSeason > p.ResolveBySeason
}

// ResolveAll judges every due, unresolved prediction against the player pool
// and returns a new slice; resolved entries pass through untouched. A player
// missing from the pool resolves as incorrect, standing in for retirement.
// freeAgents holds ids of players currently without a club.
func ResolveAll(src *rng.Source, predictions []Prediction, players map[string]model.Player, currentSeason, currentWeek int, freeAgents map[string]bool) []Prediction {
	out := make([]Prediction, len(predictions))
	copy(out, predictions)

	maxShooting := maxCompositeShooting(players)

	for i, p := range out {
		if p.Resolved || !p.Due(currentSeason) {
			continue
		}
		p.Resolved = true
		p.ResolvedWeek = currentWeek

		player, ok := players[p.PlayerID]
		if !ok {
			p.WasCorrect = false
			out[i] = p
			continue
		}

		p.WasCorrect = judge(src, p.Type, player, currentSeason, freeAgents[p.PlayerID], maxShooting)
		out[i] = p
	}
	return out
}

// judge applies the per-type ground-truth proxy.
func judge(src *rng.Source, t Type, player model.Player, currentSeason int, freeAgent bool, maxShooting float64) bool {
	switch t {
	case TypeBreakout:
		return player.Age <= breakoutAgeCeiling &&
			player.Form >= 1 &&
			player.CurrentAbility >= breakoutAbilityBar
	case TypeDecline:
		return player.Age >= declineAgeFloor && player.Form < 0
	case TypeTransfer:
		return freeAgent ||
			player.Morale <= transferMoraleBar ||
			player.ContractExpirySeason < currentSeason
	case TypeInjury:
		if player.Injured {
			return src.Chance(injuredResolveChance)
		}
		proneness := player.Attr(model.AttrHiddenInjuryProneness)
		return src.Chance(proneness / model.AttributeMax * pronenessChanceScale)
	case TypeTopScorer:
		if maxShooting <= 0 {
			return false
		}
		return compositeShooting(player) >= maxShooting*(1-topScorerTolerance)
	case TypeRelegation:
		if player.Morale <= relegationMoraleBar {
			return src.Chance(relegationLowMorale)
		}
		return src.Chance(relegationNormalMorale)
	default:
		return false
	}
}

// compositeShooting is the goal-threat blend used for top-scorer judgments.
func compositeShooting(player model.Player) float64 {
	return player.Attr(model.AttrTechnicalShooting)*shootingWeight +
		player.Attr(model.AttrMentalComposure)*composureWeight +
		player.Attr(model.AttrTacticalPositioning)*positioningWeight
}

// maxCompositeShooting scans the pool for the league-best goal threat.
func maxCompositeShooting(players map[string]model.Player) float64 {
	var best float64
	for _, p := range players {
		if v := compositeShooting(p); v > best {
			best = v
		}
	}
	return best
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
