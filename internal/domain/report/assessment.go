package report

import (
	"math"
	"sort"

	"github.com/abmccull/talentscout/internal/domain/model"
)

// Half-width model: a single sighting reads +/-3, and accumulated sightings
// tighten toward the floor of +/-1.
const (
	halfWidthBase  = 4.0
	halfWidthFloor = 1.0
)

// readingHalfWidth maps a reading's accumulated sighting count to a
// confidence half-width: max(1, round(4 - sqrt(count))).
func readingHalfWidth(count int) float64 {
	if count < 1 {
		count = 1
	}
	w := math.Round(halfWidthBase - math.Sqrt(float64(count)))
	if w < halfWidthFloor {
		return halfWidthFloor
	}
	return w
}

// MergeAssessments folds every reading across the supplied observations into
// one assessment per attribute. The estimate is the confidence-weighted mean
// (unweighted when total weight is zero) clamped to the 1-20 scale; the
// range half-width is the mean of each contributing reading's half-width, so
// more accumulated sightings tighten the range and never widen it.
//
// An empty observation list yields an empty slice, not an error.
func MergeAssessments(observations []model.Observation) []AttributeAssessment {
	type accumulator struct {
		weightedSum float64
		weight      float64
		plainSum    float64
		readings    int
		count       int
		widthSum    float64
	}

	accs := make(map[model.Attribute]*accumulator)
	for _, obs := range observations {
		for attr, reading := range obs.Readings {
			acc, ok := accs[attr]
			if !ok {
				acc = &accumulator{}
				accs[attr] = acc
			}
			acc.weightedSum += reading.Value * reading.Confidence
			acc.weight += reading.Confidence
			acc.plainSum += reading.Value
			acc.readings++
			acc.count += reading.Count
			acc.widthSum += readingHalfWidth(reading.Count)
		}
	}

	out := make([]AttributeAssessment, 0, len(accs))
	for attr, acc := range accs {
		var estimate float64
		if acc.weight > 0 {
			estimate = acc.weightedSum / acc.weight
		} else {
			estimate = acc.plainSum / float64(acc.readings)
		}
		estimate = clampAttribute(estimate)

		out = append(out, AttributeAssessment{
			Attribute:    attr,
			Estimated:    estimate,
			HalfWidth:    acc.widthSum / float64(acc.readings),
			Observations: acc.count,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Attribute < out[j].Attribute })
	return out
}

func clampAttribute(v float64) float64 {
	if v < model.AttributeMin {
		return model.AttributeMin
	}
	if v > model.AttributeMax {
		return model.AttributeMax
	}
	return v
}
