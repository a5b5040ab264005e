package report

import (
	"math"
	"sort"
	"strings"

	"github.com/abmccull/talentscout/internal/domain/model"
)

// Strength/weakness emission threshold versus the positional baseline.
const baselineMargin = 3.0

// Age boundaries for narrative and valuation.
const (
	youthAgeCeiling  = 20
	valueDiscountAge = 28
)

// Market value curve constants: value = (perceivedCA/100)^3.5 * 2,000,000.
const (
	valueExponent  = 3.5
	valueScale     = 2_000_000.0
	valueAgeDecay  = 0.10
	valueAgeFloor  = 0.30
	valueSkillBase = 0.85
	valueSkillStep = 0.015
)

// Ability aggregation uses only the most recent sessions with an ability
// impression.
const abilityWindow = 3

// GenerateContent drafts a report body from what the scout actually saw.
// Only public player data (name, age, position) is read here; true attribute
// values stay hidden until scoring.
func GenerateContent(player model.Player, observations []model.Observation, scout model.Scout) Content {
	assessments := MergeAssessments(observations)

	strengths, weaknesses := pickStrengthsWeaknesses(player.Position, assessments)

	caStars, paStars, hasAbility := aggregateAbility(observations)

	perceivedCA := perceivedAbility(caStars, hasAbility, assessments)

	c := Content{
		Assessments:    assessments,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Narrative:      comparisonNarrative(player.Name, player.Age, assessments),
		EstimatedValue: estimateValue(perceivedCA, player.Age, scout),
	}
	if hasAbility {
		c.AbilityStars = caStars
		c.PotentialLow = clampStars(paStars - 0.5)
		c.PotentialHigh = clampStars(paStars + 0.5)
	}
	return c
}

// pickStrengthsWeaknesses emits descriptor text for attributes whose
// estimate clears the positional baseline by the margin, either way.
func pickStrengthsWeaknesses(pos model.Position, assessments []AttributeAssessment) (strengths, weaknesses []string) {
	for _, a := range assessments {
		diff := a.Estimated - baselineFor(pos, a.Attribute)
		switch {
		case diff >= baselineMargin:
			strengths = append(strengths, strengthText(a.Attribute))
		case diff <= -baselineMargin:
			weaknesses = append(weaknesses, weaknessText(a.Attribute))
		}
	}
	return strengths, weaknesses
}

// comparisonNarrative buckets the player by perceived technical/physical
// balance. Age 20 or under always routes to the youth bucket.
func comparisonNarrative(name string, age int, assessments []AttributeAssessment) string {
	avgTech := domainAverage(assessments, model.DomainTechnical)
	avgPhys := domainAverage(assessments, model.DomainPhysical)

	var template string
	switch {
	case age <= youthAgeCeiling:
		template = "{player} profiles as a developing talent; judge the trajectory, not the snapshot."
	case avgTech >= avgPhys+2:
		template = "{player} is a technician first: the game flows through his feet, not his frame."
	case avgPhys >= avgTech+2:
		template = "{player} wins games with his physique; the technical side is functional, not decorative."
	default:
		template = "{player} offers a balanced profile with no single outlier quality."
	}
	return strings.ReplaceAll(template, "{player}", name)
}

func domainAverage(assessments []AttributeAssessment, domain model.Domain) float64 {
	var sum float64
	var n int
	for _, a := range assessments {
		if a.Attribute.InDomain(domain) {
			sum += a.Estimated
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// aggregateAbility averages the 3 most recent observations that carried an
// ability impression, rounded to the nearest half star. Potential is capped
// at 5.0 stars.
func aggregateAbility(observations []model.Observation) (caStars, paStars float64, ok bool) {
	withAbility := make([]model.Observation, 0, len(observations))
	for _, obs := range observations {
		if obs.HasAbility {
			withAbility = append(withAbility, obs)
		}
	}
	if len(withAbility) == 0 {
		return 0, 0, false
	}

	sort.SliceStable(withAbility, func(i, j int) bool {
		if withAbility[i].Season != withAbility[j].Season {
			return withAbility[i].Season > withAbility[j].Season
		}
		return withAbility[i].Week > withAbility[j].Week
	})
	if len(withAbility) > abilityWindow {
		withAbility = withAbility[:abilityWindow]
	}

	var caSum, paSum float64
	for _, obs := range withAbility {
		caSum += obs.AbilityStars
		paSum += obs.PotentialStars
	}
	n := float64(len(withAbility))
	return clampStars(roundHalf(caSum / n)), clampStars(roundHalf(paSum / n)), true
}

// perceivedAbility converts the star impression to the 1-200 scale, falling
// back to a read off the merged attribute estimates when no session yielded
// an ability impression.
func perceivedAbility(caStars float64, hasAbility bool, assessments []AttributeAssessment) float64 {
	if hasAbility {
		return model.AbilityFromStars(caStars)
	}
	if len(assessments) == 0 {
		return 0
	}
	var sum float64
	for _, a := range assessments {
		sum += a.Estimated
	}
	return sum / float64(len(assessments)) * 10
}

// estimateValue follows an exponential curve on perceived current ability,
// discounted past the valuation age and adjusted by the scout's data
// literacy.
func estimateValue(perceivedCA float64, age int, scout model.Scout) int64 {
	if perceivedCA <= 0 {
		return 0
	}
	value := math.Pow(perceivedCA/100, valueExponent) * valueScale

	if age > valueDiscountAge {
		factor := 1 - valueAgeDecay*float64(age-valueDiscountAge)
		if factor < valueAgeFloor {
			factor = valueAgeFloor
		}
		value *= factor
	}

	value *= valueSkillBase + valueSkillStep*float64(scout.DataLiteracy)

	return int64(math.Round(value))
}

func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

func clampStars(v float64) float64 {
	if v < model.MinStars {
		return model.MinStars
	}
	if v > model.MaxStars {
		return model.MaxStars
	}
	return v
}
