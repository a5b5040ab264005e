package model

// Analyst morale bounds and weekly decay.
const (
	AnalystMoraleMax   = 100.0
	AnalystMoraleDecay = 1.0
)

// AnalystFocus selects what a data analyst spends the week digging into.
type AnalystFocus string

// Analyst focus modes.
const (
	FocusBalanced  AnalystFocus = "balanced"
	FocusAttacking AnalystFocus = "attacking"
	FocusDefensive AnalystFocus = "defensive"
	FocusYouth     AnalystFocus = "youth"
)

// DataAnalyst is an NPC worker who produces statistical briefings on demand.
// Morale decays one point per week and is moved by scout actions.
type DataAnalyst struct {
	ID   string
	Name string

	// Skill is data literacy on the 1-20 scale.
	Skill int

	// Morale is on a 0-100 scale.
	Morale float64

	Focus       AnalystFocus
	TenureWeeks int
}

// TickWeek returns the analyst one week on: morale decays, tenure grows.
func (a DataAnalyst) TickWeek() DataAnalyst {
	a.Morale -= AnalystMoraleDecay
	if a.Morale < 0 {
		a.Morale = 0
	}
	a.TenureWeeks++
	return a
}

// AdjustMorale returns the analyst with morale moved by delta, clamped.
func (a DataAnalyst) AdjustMorale(delta float64) DataAnalyst {
	a.Morale += delta
	if a.Morale < 0 {
		a.Morale = 0
	}
	if a.Morale > AnalystMoraleMax {
		a.Morale = AnalystMoraleMax
	}
	return a
}

// EffectiveSkill discounts skill when morale has cratered. A demoralized
// analyst reads the numbers like someone two skill points worse.
func (a DataAnalyst) EffectiveSkill() int {
	if a.Morale < 30 {
		if a.Skill <= 2 {
			return 1
		}
		return a.Skill - 2
	}
	return a.Skill
}
