package report

import "github.com/abmccull/talentscout/internal/domain/model"

// descriptor holds the fixed strength/weakness phrasing for one attribute.
type descriptor struct {
	strong string
	weak   string
}

// attributeDescriptors is a closed table: every attribute in the catalogue
// has exactly one strong and one weak phrasing.
var attributeDescriptors = map[model.Attribute]descriptor{
	model.AttrTechnicalPassing:      {"Excellent passing range", "Passing lets him down"},
	model.AttrTechnicalShooting:     {"Clinical finisher", "Wasteful in front of goal"},
	model.AttrTechnicalDribbling:    {"Carries the ball past opponents at will", "Loses the ball when he tries to beat a man"},
	model.AttrTechnicalFirstTouch:   {"Immaculate first touch", "Heavy first touch under pressure"},
	model.AttrTechnicalCrossing:     {"Dangerous delivery from wide areas", "Crossing rarely finds a teammate"},
	model.AttrTechnicalTackling:     {"Times tackles superbly", "Dives into challenges"},
	model.AttrPhysicalPace:          {"Genuine pace over any distance", "Lacks the speed for this level"},
	model.AttrPhysicalStrength:      {"Physically dominant in duels", "Gets shrugged off the ball too easily"},
	model.AttrPhysicalStamina:       {"Runs all day", "Fades badly after the hour"},
	model.AttrPhysicalAgility:       {"Exceptional change of direction", "Turns like a cruise ship"},
	model.AttrPhysicalJumping:       {"Commands the air", "Struggles in aerial contests"},
	model.AttrMentalComposure:       {"Ice-cold under pressure", "Panics when closed down"},
	model.AttrMentalVision:          {"Sees passes nobody else does", "Rarely looks beyond the obvious ball"},
	model.AttrMentalDetermination:   {"Relentless competitive streak", "Goes missing when the game turns"},
	model.AttrMentalLeadership:      {"Natural organizer on the pitch", "Offers little vocal presence"},
	model.AttrMentalConcentration:   {"Switched on for the full ninety", "Costly lapses in concentration"},
	model.AttrTacticalPositioning:   {"Always in the right place", "Positioning needs serious work"},
	model.AttrTacticalMarking:       {"Sticks tight to his man", "Loses his marker at set pieces"},
	model.AttrTacticalWorkRate:      {"Outstanding engine off the ball", "Work rate out of possession is poor"},
	model.AttrTacticalDecisions:     {"Consistently picks the right option", "Decision-making is erratic"},
	model.AttrTacticalTeamwork:      {"Selfless team player", "Plays for himself first"},
	model.AttrHiddenConsistency:     {"Delivers week in, week out", "Form fluctuates wildly"},
	model.AttrHiddenBigMatches:      {"Rises to the big occasion", "Shrinks on the big stage"},
	model.AttrHiddenInjuryProneness: {"Robust, rarely misses training", "Body may not hold up to a full season"},
	model.AttrHiddenProfessionalism: {"Model professional", "Questionable application in training"},
}

// strengthText returns the strong-side phrasing for an attribute.
func strengthText(attr model.Attribute) string {
	if d, ok := attributeDescriptors[attr]; ok {
		return d.strong
	}
	return "Stands out for " + string(attr)
}

// weaknessText returns the weak-side phrasing for an attribute.
func weaknessText(attr model.Attribute) string {
	if d, ok := attributeDescriptors[attr]; ok {
		return d.weak
	}
	return "Falls short on " + string(attr)
}
