package report

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/abmccull/talentscout/internal/domain/model"
)

// Preview sub-score caps. The preview is built only from information the
// scout already has; it must never consult true player values.
const (
	previewDepthCap      = 25.0
	previewConfidenceCap = 20.0
	previewConvictionCap = 15.0
	previewDetailCap     = 20.0
	previewSkillCap      = 20.0
	previewHintThreshold = 70.0

	previewDepthPerObservation = 5.0
	previewDetailPerItem       = 3.0
	previewDetailCoverageBonus = 8.0
	previewConvictionPenalty   = 5.0
)

// Authoritative scoring weights and coefficients.
const (
	accuracyWeight   = 0.45
	coverageWeight   = 0.25
	convictionWeight = 0.20
	tightnessWeight  = 0.10

	accuracyErrorCoefficient     = 14.0
	postTransferErrorCoefficient = 12.0
	postTransferRampSeasons      = 3.0

	convictionMismatchPenalty = 30.0
	convictionScoreFloor      = 10.0

	traitBonus = 5.0
)

// Range tightness scoring: contained narrow ranges score best; a narrow
// range that misses the truth is punished harder than a wide one.
const (
	tightnessContainedBase   = 100.0
	tightnessContainedSlope  = 15.0
	tightnessContainedFloor  = 40.0
	tightnessMissedPerWidth  = 8.0
	tightnessMissedCeiling   = 30.0
)

// Conviction expectations on the 1-200 ability scale.
const (
	tablePoundAbility      = 160.0
	strongRecommendAbility = 140.0
	recommendAbility       = 110.0
)

// QualityPreview is the scout-visible, pre-submission quality estimate.
type QualityPreview struct {
	Score float64
	Hints []string
}

// EstimateQuality previews a draft's likely quality from scout-side signals
// only: session depth, reading confidence, conviction fit against the
// perceived ability, detail, and the scout's own skill. Below the hint
// threshold it suggests what to improve.
func EstimateQuality(observations []model.Observation, content Content, conviction model.Conviction, scout model.Scout, position model.Position) QualityPreview {
	depth := math.Min(previewDepthCap, float64(len(observations))*previewDepthPerObservation)

	confidence := averageConfidence(observations) * previewConfidenceCap

	perceivedCA := perceivedAbility(content.AbilityStars, content.AbilityStars > 0, content.Assessments)
	convictionGap := float64(tierGap(conviction, expectedConviction(perceivedCA)))
	convictionFit := math.Max(0, previewConvictionCap-previewConvictionPenalty*convictionGap)

	coverage := coverageRatio(content.Assessments, position)
	detail := math.Min(previewDetailCap,
		float64(len(content.Strengths)+len(content.Weaknesses))*previewDetailPerItem+coverage*previewDetailCoverageBonus)

	skill := scout.SkillAverage() / model.AttributeMax * previewSkillCap

	score := depth + confidence + convictionFit + detail + skill

	var hints []string
	if score < previewHintThreshold {
		if depth < previewDepthCap*0.6 {
			hints = append(hints, "Log more scouting sessions before submitting")
		}
		if confidence < previewConfidenceCap*0.6 {
			hints = append(hints, "Readings are low confidence; watch him in sterner tests")
		}
		if detail < previewDetailCap*0.5 {
			hints = append(hints, "Cover more of the attributes that matter for the position")
		}
		if convictionGap >= 2 {
			hints = append(hints, "Conviction looks out of step with the perceived ability")
		}
	}

	return QualityPreview{Score: clampScore(score), Hints: hints}
}

// CalculateQuality is the authoritative post-hoc score. It is the only
// estimation-path function allowed to read true attribute values, consults
// no RNG, and is therefore fully deterministic for a given report and
// player.
//
// revealedTraits adds a flat bonus per personality trait the scouting work
// uncovered; bonus carries any insight credit earned from settled
// hypotheses.
func CalculateQuality(r Report, player model.Player, revealedTraits int, bonus float64) float64 {
	accuracy := accuracyScore(r.Content.Assessments, player, accuracyErrorCoefficient)
	coverage := coverageRatio(r.Content.Assessments, player.Position) * 100
	conviction := convictionScore(r.Conviction, player.CurrentAbility)
	tightness := tightnessScore(r.Content.Assessments, player)

	score := accuracy*accuracyWeight +
		coverage*coverageWeight +
		conviction*convictionWeight +
		tightness*tightnessWeight +
		traitBonus*float64(revealedTraits) +
		bonus

	return clampScore(score)
}

// TrackPostTransfer scores a report retrospectively after its subject moved
// on. The error formula matches accuracy scoring with a gentler coefficient,
// scaled down hard for early judgments: one season in, the verdict is worth
// a third of its final weight.
func TrackPostTransfer(r Report, player model.Player, seasonsSinceSigning int) float64 {
	base := accuracyScore(r.Content.Assessments, player, postTransferErrorCoefficient)
	ramp := math.Min(1, float64(seasonsSinceSigning)/postTransferRampSeasons)
	return clampScore(base * ramp)
}

// accuracyScore converts mean absolute estimation error into a 0-100 score.
// No scoreable assessments yield zero.
func accuracyScore(assessments []AttributeAssessment, player model.Player, coefficient float64) float64 {
	var errSum float64
	var n int
	for _, a := range assessments {
		trueValue, ok := player.Attributes[a.Attribute]
		if !ok {
			continue
		}
		errSum += math.Abs(a.Estimated - trueValue)
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Max(0, 100-(errSum/float64(n))*coefficient)
}

// coverageRatio is the share of position-relevant attributes with an
// assessment.
func coverageRatio(assessments []AttributeAssessment, position model.Position) float64 {
	relevant := model.PositionAttributes(position)
	if len(relevant) == 0 {
		return 0
	}
	assessed := make(map[model.Attribute]bool, len(assessments))
	for _, a := range assessments {
		assessed[a.Attribute] = true
	}
	var covered int
	for _, attr := range relevant {
		if assessed[attr] {
			covered++
		}
	}
	return float64(covered) / float64(len(relevant))
}

// convictionScore penalizes each conviction tier of mismatch from what the
// true ability implied, floored so a wild call still scores something.
func convictionScore(stated model.Conviction, trueAbility float64) float64 {
	gap := float64(tierGap(stated, expectedConviction(trueAbility)))
	return math.Max(convictionScoreFloor, 100-convictionMismatchPenalty*gap)
}

// tightnessScore rewards narrow ranges that still contain the truth.
// A contained range scores higher the narrower it is; a missed range scores
// more the wider it is, so narrow-but-wrong hurts most.
func tightnessScore(assessments []AttributeAssessment, player model.Player) float64 {
	var sum float64
	var n int
	for _, a := range assessments {
		trueValue, ok := player.Attributes[a.Attribute]
		if !ok {
			continue
		}
		if a.Contains(trueValue) {
			sum += math.Max(tightnessContainedFloor,
				tightnessContainedBase-(a.HalfWidth-halfWidthFloor)*tightnessContainedSlope)
		} else {
			sum += math.Min(tightnessMissedCeiling, a.HalfWidth*tightnessMissedPerWidth)
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// expectedConviction maps an ability value to the conviction tier it should
// warrant.
func expectedConviction(ability float64) model.Conviction {
	switch {
	case ability >= tablePoundAbility:
		return model.ConvictionTablePound
	case ability >= strongRecommendAbility:
		return model.ConvictionStrongRecommend
	case ability >= recommendAbility:
		return model.ConvictionRecommend
	default:
		return model.ConvictionNote
	}
}

func tierGap(a, b model.Conviction) int {
	gap := int(a) - int(b)
	if gap < 0 {
		return -gap
	}
	return gap
}

func averageConfidence(observations []model.Observation) float64 {
	var confidences []float64
	for _, obs := range observations {
		for _, reading := range obs.Readings {
			confidences = append(confidences, reading.Confidence)
		}
	}
	mean, err := stats.Mean(confidences)
	if err != nil {
		return 0
	}
	return mean
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
