package repository

import (
	"context"
	"sync"

	"github.com/abmccull/talentscout/internal/domain/hypothesis"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/prediction"
	"github.com/abmccull/talentscout/internal/domain/report"
	"github.com/abmccull/talentscout/internal/domain/statistics"
)

// ShelfStore holds the engine's value artifacts in memory: observation
// histories and merged assessments per player, finalized reports, prediction
// ledgers per scout, hypotheses per player, and statistical profiles.
// Every read hands back a copy; callers never share slices with the store.
type ShelfStore struct {
	mu sync.RWMutex

	observations map[string][]model.Observation
	assessments  map[string][]report.AttributeAssessment
	reports      map[string][]report.Report
	predictions  map[string][]prediction.Prediction
	hypotheses   map[string][]hypothesis.Hypothesis
	profiles     map[string]statistics.Profile
}

// NewShelfStore builds an empty shelf store.
func NewShelfStore() *ShelfStore {
	return &ShelfStore{
		observations: make(map[string][]model.Observation),
		assessments:  make(map[string][]report.AttributeAssessment),
		reports:      make(map[string][]report.Report),
		predictions:  make(map[string][]prediction.Prediction),
		hypotheses:   make(map[string][]hypothesis.Hypothesis),
		profiles:     make(map[string]statistics.Profile),
	}
}

// AppendObservation records the observation and returns the player's full
// history including it.
func (s *ShelfStore) AppendObservation(ctx context.Context, obs model.Observation) ([]model.Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observations[obs.PlayerID] = append(s.observations[obs.PlayerID], obs)

	history := make([]model.Observation, len(s.observations[obs.PlayerID]))
	copy(history, s.observations[obs.PlayerID])
	return history, nil
}

// SetAssessments replaces the player's merged assessment state.
func (s *ShelfStore) SetAssessments(ctx context.Context, playerID string, assessments []report.AttributeAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]report.AttributeAssessment, len(assessments))
	copy(stored, assessments)
	s.assessments[playerID] = stored
	return nil
}

// Observations returns a copy of the player's observation history.
func (s *ShelfStore) Observations(ctx context.Context, playerID string) []model.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Observation, len(s.observations[playerID]))
	copy(out, s.observations[playerID])
	return out
}

// Assessments returns a copy of the player's merged assessments.
func (s *ShelfStore) Assessments(ctx context.Context, playerID string) []report.AttributeAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]report.AttributeAssessment, len(s.assessments[playerID]))
	copy(out, s.assessments[playerID])
	return out
}

// AddReport shelves a finalized report.
func (s *ShelfStore) AddReport(ctx context.Context, r report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.PlayerID] = append(s.reports[r.PlayerID], r)
}

// ReplaceReport swaps a shelved report in place, matched by id. Used when
// the engine fills in a quality score after the fact.
func (s *ShelfStore) ReplaceReport(ctx context.Context, r report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shelf := s.reports[r.PlayerID]
	for i := range shelf {
		if shelf[i].ID == r.ID {
			shelf[i] = r
			return
		}
	}
}

// ReportsByPlayer returns copies of the player's shelved reports.
func (s *ShelfStore) ReportsByPlayer(ctx context.Context, playerID string) []report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]report.Report, len(s.reports[playerID]))
	copy(out, s.reports[playerID])
	return out
}

// AllReports returns copies of every shelved report.
func (s *ShelfStore) AllReports(ctx context.Context) []report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []report.Report
	for _, shelf := range s.reports {
		out = append(out, shelf...)
	}
	return out
}

// AddPrediction appends a prediction to the scout's ledger.
func (s *ShelfStore) AddPrediction(ctx context.Context, p prediction.Prediction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictions[p.ScoutID] = append(s.predictions[p.ScoutID], p)
}

// SetPredictions replaces a scout's prediction ledger, typically after a
// resolution pass.
func (s *ShelfStore) SetPredictions(ctx context.Context, scoutID string, preds []prediction.Prediction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]prediction.Prediction, len(preds))
	copy(stored, preds)
	s.predictions[scoutID] = stored
}

// PredictionsByScout returns a copy of the scout's prediction ledger.
func (s *ShelfStore) PredictionsByScout(ctx context.Context, scoutID string) []prediction.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]prediction.Prediction, len(s.predictions[scoutID]))
	copy(out, s.predictions[scoutID])
	return out
}

// ScoutIDs returns every scout with a prediction ledger.
func (s *ShelfStore) ScoutIDs(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.predictions))
	for id := range s.predictions {
		out = append(out, id)
	}
	return out
}

// AddHypothesis shelves an open hypothesis.
func (s *ShelfStore) AddHypothesis(ctx context.Context, h hypothesis.Hypothesis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hypotheses[h.PlayerID] = append(s.hypotheses[h.PlayerID], h)
}

// SetHypotheses replaces a player's hypothesis list after evaluation.
func (s *ShelfStore) SetHypotheses(ctx context.Context, playerID string, hs []hypothesis.Hypothesis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]hypothesis.Hypothesis, len(hs))
	copy(stored, hs)
	s.hypotheses[playerID] = stored
}

// HypothesesByPlayer returns copies of the player's hypotheses.
func (s *ShelfStore) HypothesesByPlayer(ctx context.Context, playerID string) []hypothesis.Hypothesis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hypothesis.Hypothesis, len(s.hypotheses[playerID]))
	copy(out, s.hypotheses[playerID])
	return out
}

// SetProfile shelves the player's latest statistical profile.
func (s *ShelfStore) SetProfile(ctx context.Context, p statistics.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.PlayerID] = p
}

// Profile returns the player's latest statistical profile, if any.
func (s *ShelfStore) Profile(ctx context.Context, playerID string) (statistics.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[playerID]
	return p, ok
}
