package model

// Conviction is a scout's stated confidence in a report's recommendation.
// Levels are ordered: note < recommend < strongRecommend < tablePound.
type Conviction int

// Conviction levels.
const (
	ConvictionNote Conviction = iota
	ConvictionRecommend
	ConvictionStrongRecommend
	ConvictionTablePound
)

// String returns the wire name for the conviction level.
func (c Conviction) String() string {
	switch c {
	case ConvictionNote:
		return "note"
	case ConvictionRecommend:
		return "recommend"
	case ConvictionStrongRecommend:
		return "strongRecommend"
	case ConvictionTablePound:
		return "tablePound"
	default:
		return "note"
	}
}

// ParseConviction maps a wire name back to a conviction level.
// Unknown names parse as note, the weakest level.
func ParseConviction(s string) Conviction {
	switch s {
	case "recommend":
		return ConvictionRecommend
	case "strongRecommend":
		return ConvictionStrongRecommend
	case "tablePound":
		return ConvictionTablePound
	default:
		return ConvictionNote
	}
}

// Scout models the observer. Skills are on the 1-20 scale and calibrate how
// noisy the scout's perception is.
type Scout struct {
	ID   string
	Name string

	// Judgment is raw player-assessment ability.
	Judgment int

	// TacticalSense calibrates positional and tactical reads.
	TacticalSense int

	// DataLiteracy calibrates statistical work and value estimates.
	DataLiteracy int

	// Specialization is the domain the scout reads best.
	Specialization Domain
}

// SkillAverage returns the mean of the scout's three skills.
func (s Scout) SkillAverage() float64 {
	return float64(s.Judgment+s.TacticalSense+s.DataLiteracy) / 3.0
}
