package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownScout      = errors.New("unknown scout")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrUnknownAnalyst    = errors.New("unknown analyst")
	ErrUnknownReport     = errors.New("unknown report")
	ErrUnknownHypothesis = errors.New("unknown hypothesis")
	ErrNoObservations    = errors.New("no observations for player")
	ErrNoAssessments     = errors.New("no assessments for player")
)
