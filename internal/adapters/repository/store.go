// Package repository defines the scout standings store interface and errors.
package repository

import (
	"context"

	"github.com/abmccull/talentscout/internal/domain/prediction"
)

// Entry represents one scout standings row.
type Entry struct {
	Rank     int     `json:"rank"`
	ScoutID  string  `json:"scout_id"`
	Accuracy float64 `json:"accuracy"`
	Resolved int     `json:"resolved"`
	Correct  int     `json:"correct"`
	Streak   int     `json:"streak"`
	Oracle   bool    `json:"oracle"`
}

// Store provides read/write access to the prediction-accuracy standings.
type Store interface {
	// Upsert replaces the scout's standings record. Accuracy moves both
	// ways as predictions resolve, so this is a replacement, never a
	// keep-best.
	Upsert(ctx context.Context, scoutID string, stats prediction.Stats) error

	// Rank returns the current rank and record for a scout.
	// Returns ErrNotFound if the scout is unknown.
	Rank(ctx context.Context, scoutID string) (Entry, error)

	// TopN returns the top-N entries ordered by accuracy desc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of scouts tracked in the standings.
	Count(ctx context.Context) int
}
