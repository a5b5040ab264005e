package report

import "github.com/abmccull/talentscout/internal/domain/model"

// defaultBaseline is the league-average expectation for any attribute not
// singled out for a position.
const defaultBaseline = 10.0

// positionBaselines is the single canonical table of positional expectations.
// An attribute absent from a position's row falls back to defaultBaseline.
var positionBaselines = map[model.Position]map[model.Attribute]float64{
	model.PositionGoalkeeper: {
		model.AttrPhysicalAgility:       13,
		model.AttrPhysicalJumping:       12,
		model.AttrMentalConcentration:   13,
		model.AttrMentalComposure:       12,
		model.AttrTacticalPositioning:   12,
		model.AttrTechnicalFirstTouch:   8,
		model.AttrTechnicalPassing:      9,
	},
	model.PositionDefender: {
		model.AttrTechnicalTackling:     13,
		model.AttrTacticalMarking:       13,
		model.AttrTacticalPositioning:   12,
		model.AttrPhysicalStrength:      12,
		model.AttrPhysicalJumping:       12,
		model.AttrMentalConcentration:   12,
		model.AttrTechnicalDribbling:    8,
		model.AttrTechnicalShooting:     7,
	},
	model.PositionMidfielder: {
		model.AttrTechnicalPassing:      13,
		model.AttrTechnicalFirstTouch:   12,
		model.AttrMentalVision:          12,
		model.AttrTacticalTeamwork:      12,
		model.AttrTacticalWorkRate:      12,
		model.AttrPhysicalStamina:       12,
		model.AttrTechnicalCrossing:     9,
	},
	model.PositionWinger: {
		model.AttrTechnicalDribbling:    13,
		model.AttrTechnicalCrossing:     12,
		model.AttrPhysicalPace:          13,
		model.AttrPhysicalAgility:       12,
		model.AttrTacticalWorkRate:      11,
		model.AttrTechnicalTackling:     7,
		model.AttrTacticalMarking:       8,
	},
	model.PositionStriker: {
		model.AttrTechnicalShooting:     13,
		model.AttrTechnicalFirstTouch:   12,
		model.AttrMentalComposure:       12,
		model.AttrTacticalPositioning:   13,
		model.AttrPhysicalPace:          12,
		model.AttrTechnicalTackling:     6,
		model.AttrTacticalMarking:       7,
	},
}

// baselineFor returns the positional expectation for an attribute.
func baselineFor(pos model.Position, attr model.Attribute) float64 {
	if row, ok := positionBaselines[pos]; ok {
		if v, ok := row[attr]; ok {
			return v
		}
	}
	return defaultBaseline
}
