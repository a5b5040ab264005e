// Package model contains domain value objects passed between layers.
//
// Player carries the hidden ground truth owned by world generation. The
// assessment engine reads true attribute values only when scoring finished
// work, never while building estimates.
package model

import "strings"

// Attribute scale bounds. Every rated ability lives on a 1-20 scale.
const (
	AttributeMin = 1.0
	AttributeMax = 20.0
)

// Ability scale bounds. Current and potential ability live on a 1-200
// internal scale, surfaced to users as 0.5-5.0 stars.
const (
	AbilityMax   = 200.0
	StarsPerUnit = AbilityMax / MaxStars
	MaxStars     = 5.0
	MinStars     = 0.5
)

// Domain groups attributes for comparisons and hypotheses.
type Domain string

// The five attribute domains.
const (
	DomainTechnical Domain = "technical"
	DomainPhysical  Domain = "physical"
	DomainMental    Domain = "mental"
	DomainTactical  Domain = "tactical"
	DomainHidden    Domain = "hidden"
)

// Domains lists every attribute domain in a fixed, deterministic order.
var Domains = [...]Domain{
	DomainTechnical,
	DomainPhysical,
	DomainMental,
	DomainTactical,
	DomainHidden,
}

// Attribute identifies a single rated ability. The name is prefixed with its
// domain, e.g. "technicalPassing", so domain scoping is a prefix match.
type Attribute string

// Technical attributes.
const (
	AttrTechnicalPassing    Attribute = "technicalPassing"
	AttrTechnicalShooting   Attribute = "technicalShooting"
	AttrTechnicalDribbling  Attribute = "technicalDribbling"
	AttrTechnicalFirstTouch Attribute = "technicalFirstTouch"
	AttrTechnicalCrossing   Attribute = "technicalCrossing"
	AttrTechnicalTackling   Attribute = "technicalTackling"
)

// Physical attributes.
const (
	AttrPhysicalPace     Attribute = "physicalPace"
	AttrPhysicalStrength Attribute = "physicalStrength"
	AttrPhysicalStamina  Attribute = "physicalStamina"
	AttrPhysicalAgility  Attribute = "physicalAgility"
	AttrPhysicalJumping  Attribute = "physicalJumping"
)

// Mental attributes.
const (
	AttrMentalComposure     Attribute = "mentalComposure"
	AttrMentalVision        Attribute = "mentalVision"
	AttrMentalDetermination Attribute = "mentalDetermination"
	AttrMentalLeadership    Attribute = "mentalLeadership"
	AttrMentalConcentration Attribute = "mentalConcentration"
)

// Tactical attributes.
const (
	AttrTacticalPositioning Attribute = "tacticalPositioning"
	AttrTacticalMarking     Attribute = "tacticalMarking"
	AttrTacticalWorkRate    Attribute = "tacticalWorkRate"
	AttrTacticalDecisions   Attribute = "tacticalDecisions"
	AttrTacticalTeamwork    Attribute = "tacticalTeamwork"
)

// Hidden attributes. These surface only through moments and scoring.
const (
	AttrHiddenConsistency     Attribute = "hiddenConsistency"
	AttrHiddenBigMatches      Attribute = "hiddenBigMatches"
	AttrHiddenInjuryProneness Attribute = "hiddenInjuryProneness"
	AttrHiddenProfessionalism Attribute = "hiddenProfessionalism"
)

// AllAttributes lists the full attribute catalogue in a fixed order.
var AllAttributes = []Attribute{
	AttrTechnicalPassing, AttrTechnicalShooting, AttrTechnicalDribbling,
	AttrTechnicalFirstTouch, AttrTechnicalCrossing, AttrTechnicalTackling,
	AttrPhysicalPace, AttrPhysicalStrength, AttrPhysicalStamina,
	AttrPhysicalAgility, AttrPhysicalJumping,
	AttrMentalComposure, AttrMentalVision, AttrMentalDetermination,
	AttrMentalLeadership, AttrMentalConcentration,
	AttrTacticalPositioning, AttrTacticalMarking, AttrTacticalWorkRate,
	AttrTacticalDecisions, AttrTacticalTeamwork,
	AttrHiddenConsistency, AttrHiddenBigMatches, AttrHiddenInjuryProneness,
	AttrHiddenProfessionalism,
}

// InDomain reports whether the attribute belongs to the given domain.
func (a Attribute) InDomain(d Domain) bool {
	return strings.HasPrefix(string(a), string(d))
}

// DomainOf returns the domain the attribute is prefixed with.
// Unrecognized names fall back to the hidden domain.
func (a Attribute) DomainOf() Domain {
	for _, d := range Domains {
		if a.InDomain(d) {
			return d
		}
	}
	return DomainHidden
}

// Position is a coarse on-pitch role used to pick peers and baselines.
type Position string

// Supported positions.
const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionWinger     Position = "WG"
	PositionStriker    Position = "ST"
)

// Positions lists the supported positions in a fixed order.
var Positions = [...]Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionWinger,
	PositionStriker,
}

// positionAttributes maps each position to the attributes a complete report
// on that position is expected to cover.
var positionAttributes = map[Position][]Attribute{
	PositionGoalkeeper: {
		AttrTechnicalFirstTouch, AttrTechnicalPassing,
		AttrPhysicalAgility, AttrPhysicalJumping, AttrPhysicalStrength,
		AttrMentalComposure, AttrMentalConcentration,
		AttrTacticalPositioning, AttrTacticalDecisions,
	},
	PositionDefender: {
		AttrTechnicalTackling, AttrTechnicalPassing,
		AttrPhysicalStrength, AttrPhysicalJumping, AttrPhysicalPace,
		AttrMentalComposure, AttrMentalConcentration, AttrMentalLeadership,
		AttrTacticalMarking, AttrTacticalPositioning, AttrTacticalDecisions,
	},
	PositionMidfielder: {
		AttrTechnicalPassing, AttrTechnicalFirstTouch, AttrTechnicalDribbling,
		AttrPhysicalStamina, AttrPhysicalStrength,
		AttrMentalVision, AttrMentalComposure, AttrMentalDetermination,
		AttrTacticalPositioning, AttrTacticalWorkRate, AttrTacticalTeamwork,
	},
	PositionWinger: {
		AttrTechnicalDribbling, AttrTechnicalCrossing, AttrTechnicalFirstTouch,
		AttrPhysicalPace, AttrPhysicalAgility, AttrPhysicalStamina,
		AttrMentalVision, AttrMentalDetermination,
		AttrTacticalWorkRate, AttrTacticalDecisions,
	},
	PositionStriker: {
		AttrTechnicalShooting, AttrTechnicalFirstTouch, AttrTechnicalDribbling,
		AttrPhysicalPace, AttrPhysicalStrength, AttrPhysicalJumping,
		AttrMentalComposure, AttrMentalDetermination,
		AttrTacticalPositioning, AttrTacticalDecisions,
	},
}

// PositionAttributes returns the attributes relevant to a position.
// Unknown positions get the midfielder set rather than an empty one so
// coverage scoring always has a denominator.
func PositionAttributes(p Position) []Attribute {
	if attrs, ok := positionAttributes[p]; ok {
		return attrs
	}
	return positionAttributes[PositionMidfielder]
}

// Player is the hidden ground truth for one footballer.
type Player struct {
	ID       string
	Name     string
	Age      int
	Position Position

	// Attributes holds true 1-20 values keyed by attribute name.
	Attributes map[Attribute]float64

	// CurrentAbility and PotentialAbility are on the 1-200 internal scale.
	CurrentAbility   float64
	PotentialAbility float64

	// Form is a recent-performance indicator, negative when struggling.
	Form int

	// Morale is on a 0-10 scale.
	Morale float64

	Injured              bool
	ContractExpirySeason int

	// Traits are personality traits a scout may reveal over time.
	Traits []string
}

// Attr returns the true value for an attribute, or 0 when unknown.
func (p Player) Attr(a Attribute) float64 {
	return p.Attributes[a]
}

// StarsFromAbility converts a 1-200 ability value to a 0.5-5.0 star rating.
func StarsFromAbility(ability float64) float64 {
	stars := ability / StarsPerUnit
	if stars < MinStars {
		return MinStars
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}

// AbilityFromStars converts a star rating back to the 1-200 internal scale.
func AbilityFromStars(stars float64) float64 {
	return stars * StarsPerUnit
}
