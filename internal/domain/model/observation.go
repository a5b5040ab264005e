package model

// AttributeReading is one scouting session's read on a single attribute.
type AttributeReading struct {
	// Value is the perceived 1-20 value.
	Value float64

	// Confidence weights the reading when merging, 0-1.
	Confidence float64

	// Count is how many distinct sightings back this reading.
	Count int
}

// Observation is one session's yield for one player. Produced by the match
// simulator; the engine consumes it and never mutates it.
type Observation struct {
	ID       string
	PlayerID string
	ScoutID  string
	Week     int
	Season   int

	// Readings holds perceived attribute values keyed by attribute name.
	Readings map[Attribute]AttributeReading

	// HasAbility marks sessions that yielded an overall ability impression.
	HasAbility     bool
	AbilityStars   float64
	PotentialStars float64
}

// MomentType classifies a qualitative observation event.
type MomentType string

// Moment types. Character moments speak to the hidden domain.
const (
	MomentTechnical MomentType = "technical"
	MomentPhysical  MomentType = "physical"
	MomentMental    MomentType = "mental"
	MomentTactical  MomentType = "tactical"
	MomentCharacter MomentType = "character"
)

// MomentTypes lists moment types in a fixed order. Frequency ties during
// hypothesis generation resolve in this order.
var MomentTypes = [...]MomentType{
	MomentTechnical,
	MomentPhysical,
	MomentMental,
	MomentTactical,
	MomentCharacter,
}

// DomainOf maps a moment type to the attribute domain it evidences.
func (t MomentType) DomainOf() Domain {
	switch t {
	case MomentTechnical:
		return DomainTechnical
	case MomentPhysical:
		return DomainPhysical
	case MomentMental:
		return DomainMental
	case MomentTactical:
		return DomainTactical
	default:
		return DomainHidden
	}
}

// PlayerMoment is a single qualitative event from a session, quality 0-10.
type PlayerMoment struct {
	PlayerID    string
	Type        MomentType
	Quality     float64
	Week        int
	Description string
}
