// Package hypothesis turns accumulated observation moments into investigative
// questions about a player, then tracks the evidence for and against until
// the question is settled.
//
// All functions are pure: they return new Hypothesis values and never mutate
// their inputs. Confirmed and debunked are terminal states.
package hypothesis

import (
	"github.com/google/uuid"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Generation gates. Both must pass or no hypothesis forms.
const (
	minMomentsToGenerate = 2
	generationChance     = 0.30
)

// Quality bands for moment interpretation. The mid band is deliberately
// inconclusive and never becomes evidence.
const (
	qualityForThreshold     = 7.0
	qualityAgainstThreshold = 5.0
	strongDistance          = 3.0
	moderateDistance        = 2.0
	neutralQuality          = 5.0
)

// Insight bonuses. Debunked still pays out: being wrong but updated beats
// staying uncommitted.
const (
	confirmedBonus = 5
	debunkedBonus  = 2
)

// State is the hypothesis lifecycle position.
type State string

// Lifecycle states. Open, supported, and contradicted move as evidence
// accrues; confirmed and debunked never move again.
const (
	StateOpen         State = "open"
	StateSupported    State = "supported"
	StateContradicted State = "contradicted"
	StateConfirmed    State = "confirmed"
	StateDebunked     State = "debunked"
)

// Terminal reports whether the state can no longer change.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateDebunked
}

// Direction marks which side a piece of evidence lands on.
type Direction string

// Evidence directions.
const (
	DirectionFor     Direction = "for"
	DirectionAgainst Direction = "against"
)

// Strength tiers an evidence entry's weight.
type Strength string

// Strength tiers.
const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

// Weight returns the tier's contribution to the weighted evidence sum.
func (s Strength) Weight() float64 {
	switch s {
	case StrengthStrong:
		return 2.0
	case StrengthModerate:
		return 1.0
	default:
		return 0.5
	}
}

// Evidence is one entry in a hypothesis's ordered evidence list.
type Evidence struct {
	Direction   Direction
	Strength    Strength
	Week        int
	Description string
}

// Hypothesis is an investigative claim about one player in one domain.
type Hypothesis struct {
	ID          string
	PlayerID    string
	PlayerName  string
	Domain      model.Domain
	Question    string
	State       State
	Evidence    []Evidence
	CreatedWeek int
}

// Generate proposes a hypothesis from a session's moments. It needs at least
// two moments for the player and then an independent 30% gate; when either
// fails it returns false with no partial hypothesis. One Float64 draw for the
// gate, then one IntN draw for template choice when the gate passes.
func Generate(src *rng.Source, playerID, playerName string, moments []model.PlayerMoment, week int) (Hypothesis, bool) {
	own := make([]model.PlayerMoment, 0, len(moments))
	for _, m := range moments {
		if m.PlayerID == playerID {
			own = append(own, m)
		}
	}
	if len(own) < minMomentsToGenerate {
		return Hypothesis{}, false
	}
	if !src.Chance(generationChance) {
		return Hypothesis{}, false
	}

	dominant := dominantType(own)

	var qualitySum float64
	for _, m := range own {
		qualitySum += m.Quality
	}
	band := bandForQuality(qualitySum / float64(len(own)))

	return Hypothesis{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		PlayerName:  playerName,
		Domain:      dominant.DomainOf(),
		Question:    questionFor(src, dominant, band, playerName),
		State:       StateOpen,
		CreatedWeek: week,
	}, true
}

// Evaluate folds a batch of new moments into the hypothesis and recomputes
// its state from the full weighted evidence ledger. Terminal hypotheses come
// back untouched; mid-quality moments are discarded as inconclusive.
func Evaluate(h Hypothesis, moments []model.PlayerMoment, week int) Hypothesis {
	if h.State.Terminal() {
		return h
	}

	evidence := make([]Evidence, len(h.Evidence), len(h.Evidence)+len(moments))
	copy(evidence, h.Evidence)

	for _, m := range moments {
		if m.PlayerID != h.PlayerID || m.Type.DomainOf() != h.Domain {
			continue
		}
		switch {
		case m.Quality >= qualityForThreshold:
			evidence = append(evidence, Evidence{
				Direction:   DirectionFor,
				Strength:    strengthForQuality(m.Quality),
				Week:        week,
				Description: m.Description,
			})
		case m.Quality < qualityAgainstThreshold:
			evidence = append(evidence, Evidence{
				Direction:   DirectionAgainst,
				Strength:    strengthForQuality(m.Quality),
				Week:        week,
				Description: m.Description,
			})
		}
	}

	h.Evidence = evidence
	forWeight, againstWeight := weigh(evidence)
	switch {
	case forWeight > againstWeight:
		h.State = StateSupported
	case againstWeight > forWeight:
		h.State = StateContradicted
	}
	// Exact tie leaves the state where it was.
	return h
}

// Resolve force-terminalizes a non-terminal hypothesis on whichever side the
// weighted evidence favours. An exact tie resolves nothing.
func Resolve(h Hypothesis) Hypothesis {
	if h.State.Terminal() {
		return h
	}
	forWeight, againstWeight := weigh(h.Evidence)
	switch {
	case forWeight > againstWeight:
		h.State = StateConfirmed
	case againstWeight > forWeight:
		h.State = StateDebunked
	}
	return h
}

// InsightBonus pays out for settled hypotheses: confirmed 5, debunked 2.
func InsightBonus(h Hypothesis) int {
	switch h.State {
	case StateConfirmed:
		return confirmedBonus
	case StateDebunked:
		return debunkedBonus
	default:
		return 0
	}
}

// dominantType picks the most frequent moment type. Ties resolve by the
// fixed declaration order of model.MomentTypes.
func dominantType(moments []model.PlayerMoment) model.MomentType {
	counts := make(map[model.MomentType]int, len(model.MomentTypes))
	for _, m := range moments {
		counts[m.Type]++
	}
	dominant := model.MomentTypes[0]
	best := counts[dominant]
	for _, t := range model.MomentTypes[1:] {
		if counts[t] > best {
			dominant = t
			best = counts[t]
		}
	}
	return dominant
}

// strengthForQuality tiers evidence by its distance from neutral quality:
// three or more points out is strong, two is moderate, anything closer weak.
func strengthForQuality(quality float64) Strength {
	distance := quality - neutralQuality
	if distance < 0 {
		distance = -distance
	}
	switch {
	case distance >= strongDistance:
		return StrengthStrong
	case distance >= moderateDistance:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

func weigh(evidence []Evidence) (forWeight, againstWeight float64) {
	for _, e := range evidence {
		if e.Direction == DirectionFor {
			forWeight += e.Strength.Weight()
		} else {
			againstWeight += e.Strength.Weight()
		}
	}
	return forWeight, againstWeight
}
