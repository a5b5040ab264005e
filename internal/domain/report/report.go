// Package report assembles scouting observations into bounded attribute
// estimates and finished scout reports, and scores finished reports against
// the hidden ground truth.
//
// The split matters: everything in content.go and assessment.go sees only
// what the scout saw; only CalculateQuality and TrackPostTransfer read true
// player values, and they run engine-side after the fact. A report's quality
// is never knowable to its author at write time.
package report

import (
	"github.com/google/uuid"

	"github.com/abmccull/talentscout/internal/domain/model"
)

// AttributeAssessment is one attribute's merged estimate: a point value and
// a two-sided confidence range whose half-width never drops below one point.
type AttributeAssessment struct {
	Attribute model.Attribute

	// Estimated is the confidence-weighted mean, clamped to the 1-20 scale.
	Estimated float64

	// HalfWidth is the confidence range half-width, always >= 1. More
	// accumulated observations narrow it, never widen it.
	HalfWidth float64

	// Observations is the total sighting count behind the estimate.
	Observations int
}

// Low returns the bottom of the confidence range, clamped to the scale.
func (a AttributeAssessment) Low() float64 {
	v := a.Estimated - a.HalfWidth
	if v < model.AttributeMin {
		return model.AttributeMin
	}
	return v
}

// High returns the top of the confidence range, clamped to the scale.
func (a AttributeAssessment) High() float64 {
	v := a.Estimated + a.HalfWidth
	if v > model.AttributeMax {
		return model.AttributeMax
	}
	return v
}

// Contains reports whether a true value falls inside the confidence range.
func (a AttributeAssessment) Contains(trueValue float64) bool {
	return trueValue >= a.Estimated-a.HalfWidth && trueValue <= a.Estimated+a.HalfWidth
}

// Content is the scout-authored body of a report before finalization.
type Content struct {
	Assessments []AttributeAssessment
	Strengths   []string
	Weaknesses  []string
	Narrative   string

	// EstimatedValue is the perceived market value in currency units.
	EstimatedValue int64

	// AbilityStars is the perceived current ability as stars; 0 when no
	// session yielded an ability impression.
	AbilityStars float64

	// PotentialLow and PotentialHigh bound the perceived potential in
	// stars, capped at 5.0.
	PotentialLow  float64
	PotentialHigh float64
}

// Report is the finalized artifact handed to the game loop.
type Report struct {
	ID         string
	PlayerID   string
	PlayerName string
	ScoutID    string
	Week       int
	Season     int

	Content    Content
	Conviction model.Conviction

	// QualityScore starts at zero and is filled in later by the engine.
	// The authoring scout never sees a nonzero value at write time.
	QualityScore float64
}

// Finalize builds the immutable report artifact. QualityScore is always
// initialized to zero regardless of draft richness.
func Finalize(content Content, playerID, playerName, scoutID string, conviction model.Conviction, week, season int) Report {
	return Report{
		ID:           uuid.NewString(),
		PlayerID:     playerID,
		PlayerName:   playerName,
		ScoutID:      scoutID,
		Week:         week,
		Season:       season,
		Content:      content,
		Conviction:   conviction,
		QualityScore: 0,
	}
}
