package statistics

import (
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
)

// Youth cutoff for the youth analyst focus.
const analystYouthAgeCeiling = 21

// AnalystReport is a commissioned digest from one data analyst. The focus
// mode narrows which part of the pool the analyst actually looked at.
type AnalystReport struct {
	AnalystID string
	Week      int
	Season    int
	Focus     model.AnalystFocus

	Briefing Briefing
}

// BuildAnalystReport runs a briefing through the lens of one analyst. The
// analyst's effective skill sets the noise tier, so a demoralized analyst
// reads the numbers like a novice.
func BuildAnalystReport(src *rng.Source, analyst model.DataAnalyst, pool []model.Player, week, season int) AnalystReport {
	focused := filterByFocus(pool, analyst.Focus)
	return AnalystReport{
		AnalystID: analyst.ID,
		Week:      week,
		Season:    season,
		Focus:     analyst.Focus,
		Briefing:  GenerateStatsBriefing(src, analyst.EffectiveSkill(), focused, week, season),
	}
}

// filterByFocus narrows the pool to the analyst's beat. Balanced and unknown
// focuses see everything.
func filterByFocus(pool []model.Player, focus model.AnalystFocus) []model.Player {
	keep := func(p model.Player) bool { return true }
	switch focus {
	case model.FocusYouth:
		keep = func(p model.Player) bool { return p.Age <= analystYouthAgeCeiling }
	case model.FocusAttacking:
		keep = func(p model.Player) bool {
			return p.Position == model.PositionStriker || p.Position == model.PositionWinger
		}
	case model.FocusDefensive:
		keep = func(p model.Player) bool {
			return p.Position == model.PositionDefender || p.Position == model.PositionGoalkeeper
		}
	}

	out := make([]model.Player, 0, len(pool))
	for _, p := range pool {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
