// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sort"
	"sync"

	obsqueue "github.com/abmccull/talentscout/internal/adapters/mq/queue"
	workerpool "github.com/abmccull/talentscout/internal/adapters/mq/worker"
	"github.com/abmccull/talentscout/internal/adapters/repository"
	"github.com/abmccull/talentscout/internal/domain/bench"
	"github.com/abmccull/talentscout/internal/domain/dedupe"
	"github.com/abmccull/talentscout/internal/domain/hypothesis"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/prediction"
	"github.com/abmccull/talentscout/internal/domain/report"
	"github.com/abmccull/talentscout/internal/domain/rng"
	"github.com/abmccull/talentscout/internal/domain/statistics"
	"github.com/abmccull/talentscout/pkg/logger"
	"github.com/abmccull/talentscout/pkg/metrics"
)

// weeksPerSeason is the season rollover point for the engine clock.
const weeksPerSeason = 38

// mergeAssessor implements the worker assessment step by folding a player's
// observation history into per-attribute estimates.
type mergeAssessor struct{}

func (mergeAssessor) Assess(ctx context.Context, observations []model.Observation) ([]report.AttributeAssessment, error) {
	return report.MergeAssessments(observations), nil
}

// Service implements the API dependencies for the assessment engine. It owns
// the ingest pipeline, the world rosters, and the single RNG stream every
// engine call draws from.
type Service struct {
	mu sync.RWMutex

	// Core components
	standings repository.Store
	shelf     *repository.ShelfStore
	deduper   dedupe.Deduper
	queue     obsqueue.Queue
	pool      *workerpool.Pool

	// The RNG stream is shared by every engine operation; rngMu serializes
	// draws so a fixed seed replays bit for bit under a fixed call order.
	rngMu sync.Mutex
	rng   *rng.Source
	seed  uint64

	// World state
	players    map[string]model.Player
	scouts     map[string]model.Scout
	analysts   map[string]model.DataAnalyst
	benches    map[string]bench.Bench
	moments    map[string][]model.PlayerMoment
	freeAgents map[string]bool
	week       int
	season     int

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the observation queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithSeed sets the RNG seed. The same seed with the same call order
// reproduces every engine outcome.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   100000,
		dedupeSize:  50000,
		seed:        1,
		players:     make(map[string]model.Player),
		scouts:      make(map[string]model.Scout),
		analysts:    make(map[string]model.DataAnalyst),
		benches:     make(map[string]bench.Bench),
		moments:     make(map[string][]model.PlayerMoment),
		freeAgents:  make(map[string]bool),
		week:        1,
		season:      1,
		stopCh:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting assessment engine...")

	s.rng = rng.New(s.seed)
	s.standings = repository.NewTreapStore(ctx)
	s.shelf = repository.NewShelfStore()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = obsqueue.NewInMemoryQueue(
		obsqueue.WithCapacity(s.queueSize),
		obsqueue.WithBufferSize(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, mergeAssessor{}, s.shelf)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "assessment engine started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping assessment engine...")

	if s.pool != nil {
		s.pool.Stop()
	}

	if s.standings != nil {
		if closer, ok := s.standings.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}

	if q, ok := s.queue.(*obsqueue.InMemoryQueue); ok {
		_ = q.Close()
	}

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "assessment engine stopped")
}

// SeenAndRecord atomically checks if an observation id was seen and records
// it if not. Returns true if the observation was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordObservationDuplicate()
	}
	return seen
}

// Unrecord removes an observation id from the seen list, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// Enqueue submits an observation for asynchronous processing.
func (s *Service) Enqueue(ctx context.Context, obs model.Observation) bool {
	s.logger.Debug(ctx, "enqueueing observation",
		logger.String("observationID", obs.ID),
		logger.String("playerID", obs.PlayerID),
		logger.String("scoutID", obs.ScoutID),
	)

	ok := s.queue.Enqueue(ctx, obs)
	if ok {
		metrics.UpdateQueueSize(s.queue.Len(ctx))
	}
	return ok
}

// TopN returns the top N standings entries.
func (s *Service) TopN(ctx context.Context, n int) ([]repository.Entry, error) {
	return s.standings.TopN(ctx, n)
}

// Rank returns the rank and record for a given scout id.
func (s *Service) Rank(ctx context.Context, scoutID string) (repository.Entry, error) {
	return s.standings.Rank(ctx, scoutID)
}

// ReportsByPlayer returns the shelved reports for a player.
func (s *Service) ReportsByPlayer(ctx context.Context, playerID string) []report.Report {
	return s.shelf.ReportsByPlayer(ctx, playerID)
}

// Observations returns the ingested observation history for a player.
func (s *Service) Observations(ctx context.Context, playerID string) []model.Observation {
	return s.shelf.Observations(ctx, playerID)
}

// AddPlayer registers or replaces a player in the world roster.
func (s *Service) AddPlayer(p model.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
	delete(s.freeAgents, p.ID)
}

// AddScout registers or replaces a scout.
func (s *Service) AddScout(sc model.Scout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scouts[sc.ID] = sc
	if _, ok := s.benches[sc.ID]; !ok {
		s.benches[sc.ID] = bench.New()
	}
}

// AddAnalyst registers or replaces a data analyst.
func (s *Service) AddAnalyst(a model.DataAnalyst) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysts[a.ID] = a
}

// MarkFreeAgent flags a player as having left the tracked leagues. Transfer
// predictions on free agents resolve correct.
func (s *Service) MarkFreeAgent(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.freeAgents[playerID] = true
}

// Clock returns the engine's current week and season.
func (s *Service) Clock() (week, season int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week, s.season
}

// AdvanceWeek moves the engine clock one week forward, rolling the season
// over after the final week. Analysts tick with the clock.
func (s *Service) AdvanceWeek(ctx context.Context) (week, season int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.week++
	if s.week > weeksPerSeason {
		s.week = 1
		s.season++
		s.logger.Info(ctx, "season rolled over", logger.Int("season", s.season))
	}
	for id, a := range s.analysts {
		s.analysts[id] = a.TickWeek()
	}
	return s.week, s.season
}

// AddBenchPlayer adds a reference player to a scout's comparison bench.
// Full benches and duplicate ids leave the bench unchanged.
func (s *Service) AddBenchPlayer(scoutID string, p bench.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scouts[scoutID]; !ok {
		return ErrUnknownScout
	}
	s.benches[scoutID] = s.benches[scoutID].Add(p)
	return nil
}

// RemoveBenchPlayer removes a reference player from a scout's bench.
func (s *Service) RemoveBenchPlayer(scoutID, benchPlayerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scouts[scoutID]; !ok {
		return ErrUnknownScout
	}
	s.benches[scoutID] = s.benches[scoutID].Remove(benchPlayerID)
	return nil
}

// CompareToBench judges a target player's current perceived attributes
// against every player on the scout's bench in one domain.
func (s *Service) CompareToBench(ctx context.Context, scoutID, playerID string, domain model.Domain) ([]bench.Comparison, error) {
	s.mu.RLock()
	b, ok := s.benches[scoutID]
	player, playerOK := s.players[playerID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownScout
	}
	if !playerOK {
		return nil, ErrUnknownPlayer
	}

	target := make(map[model.Attribute]float64)
	for _, a := range s.shelf.Assessments(ctx, playerID) {
		target[a.Attribute] = a.Estimated
	}
	if len(target) == 0 {
		return nil, ErrNoAssessments
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return bench.CompareAgainstBench(s.rng, player.Name, target, b, domain), nil
}

// IngestMoments feeds qualitative session moments into the hypothesis
// system: open hypotheses take on new evidence, and players without an open
// hypothesis may spawn one.
func (s *Service) IngestMoments(ctx context.Context, moments []model.PlayerMoment) {
	s.mu.Lock()
	week := s.week
	byPlayer := make(map[string][]model.PlayerMoment)
	for _, m := range moments {
		s.moments[m.PlayerID] = append(s.moments[m.PlayerID], m)
		byPlayer[m.PlayerID] = append(byPlayer[m.PlayerID], m)
	}
	playerNames := make(map[string]string, len(byPlayer))
	for id := range byPlayer {
		playerNames[id] = s.players[id].Name
	}
	s.mu.Unlock()

	// Deterministic player order keeps the RNG draw sequence stable.
	ids := make([]string, 0, len(byPlayer))
	for id := range byPlayer {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, playerID := range ids {
		fresh := byPlayer[playerID]
		existing := s.shelf.HypothesesByPlayer(ctx, playerID)

		hasOpen := false
		for i, h := range existing {
			if h.State.Terminal() {
				continue
			}
			hasOpen = true
			existing[i] = hypothesis.Evaluate(h, fresh, week)
		}
		s.shelf.SetHypotheses(ctx, playerID, existing)

		if hasOpen {
			continue
		}

		s.rngMu.Lock()
		h, generated := hypothesis.Generate(s.rng, playerID, playerNames[playerID], fresh, week)
		s.rngMu.Unlock()
		if generated {
			s.shelf.AddHypothesis(ctx, h)
			metrics.RecordHypothesisOpened()
			s.logger.Debug(ctx, "hypothesis opened",
				logger.String("playerID", playerID),
				logger.String("question", h.Question),
			)
		}
	}
}

// HypothesesByPlayer returns the player's hypotheses, open and settled.
func (s *Service) HypothesesByPlayer(ctx context.Context, playerID string) []hypothesis.Hypothesis {
	return s.shelf.HypothesesByPlayer(ctx, playerID)
}

// ResolveHypothesis settles a hypothesis on whichever side the accumulated
// evidence favours. A tied ledger leaves it open.
func (s *Service) ResolveHypothesis(ctx context.Context, playerID, hypothesisID string) (hypothesis.Hypothesis, error) {
	existing := s.shelf.HypothesesByPlayer(ctx, playerID)
	for i, h := range existing {
		if h.ID != hypothesisID {
			continue
		}
		wasTerminal := h.State.Terminal()
		resolved := hypothesis.Resolve(h)
		existing[i] = resolved
		s.shelf.SetHypotheses(ctx, playerID, existing)
		if resolved.State.Terminal() && !wasTerminal {
			metrics.RecordHypothesisTerminal(string(resolved.State))
		}
		return resolved, nil
	}
	return hypothesis.Hypothesis{}, ErrUnknownHypothesis
}

// PreviewReport estimates the quality band of a report draft before it is
// finalized. The preview sees only what the scout can see.
func (s *Service) PreviewReport(ctx context.Context, scoutID, playerID string, conviction model.Conviction) (report.QualityPreview, error) {
	s.mu.RLock()
	scout, scoutOK := s.scouts[scoutID]
	player, playerOK := s.players[playerID]
	s.mu.RUnlock()

	if !scoutOK {
		return report.QualityPreview{}, ErrUnknownScout
	}
	if !playerOK {
		return report.QualityPreview{}, ErrUnknownPlayer
	}

	observations := s.shelf.Observations(ctx, playerID)
	if len(observations) == 0 {
		return report.QualityPreview{}, ErrNoObservations
	}

	content := report.GenerateContent(player, observations, scout)
	return report.EstimateQuality(observations, content, conviction, scout, player.Position), nil
}

// ComposeReport builds and shelves a finalized report from everything the
// scout has accumulated on the player. The quality score stays zero until a
// later scoring pass.
func (s *Service) ComposeReport(ctx context.Context, scoutID, playerID string, conviction model.Conviction) (report.Report, error) {
	s.mu.RLock()
	scout, scoutOK := s.scouts[scoutID]
	player, playerOK := s.players[playerID]
	week, season := s.week, s.season
	s.mu.RUnlock()

	if !scoutOK {
		return report.Report{}, ErrUnknownScout
	}
	if !playerOK {
		return report.Report{}, ErrUnknownPlayer
	}

	observations := s.shelf.Observations(ctx, playerID)
	if len(observations) == 0 {
		return report.Report{}, ErrNoObservations
	}

	content := report.GenerateContent(player, observations, scout)
	r := report.Finalize(content, playerID, player.Name, scoutID, conviction, week, season)
	s.shelf.AddReport(ctx, r)
	metrics.RecordReportFinalized()

	s.logger.Info(ctx, "report finalized",
		logger.String("reportID", r.ID),
		logger.String("playerID", playerID),
		logger.String("scoutID", scoutID),
		logger.String("conviction", conviction.String()),
	)
	return r, nil
}

// ScoreReports scores every unscored shelved report on a player against the
// hidden ground truth. Settled hypotheses on the player pay their insight
// bonus into the score.
func (s *Service) ScoreReports(ctx context.Context, playerID string, revealedTraits int) ([]report.Report, error) {
	s.mu.RLock()
	player, ok := s.players[playerID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownPlayer
	}

	bonus := 0.0
	for _, h := range s.shelf.HypothesesByPlayer(ctx, playerID) {
		bonus += float64(hypothesis.InsightBonus(h))
	}

	shelf := s.shelf.ReportsByPlayer(ctx, playerID)
	scored := make([]report.Report, 0, len(shelf))
	for _, r := range shelf {
		if r.QualityScore != 0 {
			continue
		}
		r.QualityScore = report.CalculateQuality(r, player, revealedTraits, bonus)
		s.shelf.ReplaceReport(ctx, r)
		metrics.RecordReportScored()
		scored = append(scored, r)
	}
	return scored, nil
}

// TrackReport re-scores a report's accuracy some seasons after the player
// was signed, with the full-information error term phased in over three
// seasons.
func (s *Service) TrackReport(ctx context.Context, playerID, reportID string, seasonsSinceSigning int) (float64, error) {
	s.mu.RLock()
	player, ok := s.players[playerID]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrUnknownPlayer
	}

	for _, r := range s.shelf.ReportsByPlayer(ctx, playerID) {
		if r.ID == reportID {
			return report.TrackPostTransfer(r, player, seasonsSinceSigning), nil
		}
	}
	return 0, ErrUnknownReport
}

// SubmitPrediction records a falsifiable claim by a scout about a player.
func (s *Service) SubmitPrediction(ctx context.Context, scoutID, playerID string, t prediction.Type, confidence float64, sameSeason bool) (prediction.Prediction, error) {
	s.mu.RLock()
	_, scoutOK := s.scouts[scoutID]
	_, playerOK := s.players[playerID]
	week, season := s.week, s.season
	s.mu.RUnlock()

	if !scoutOK {
		return prediction.Prediction{}, ErrUnknownScout
	}
	if !playerOK {
		return prediction.Prediction{}, ErrUnknownPlayer
	}

	p := prediction.New(scoutID, playerID, t, confidence, week, season, sameSeason)
	s.shelf.AddPrediction(ctx, p)
	return p, nil
}

// SuggestPredictions proposes up to three claims a scout might make, based
// on what the world currently shows.
func (s *Service) SuggestPredictions(ctx context.Context, scoutID string) ([]prediction.Suggestion, error) {
	s.mu.RLock()
	scout, ok := s.scouts[scoutID]
	players := s.playersSnapshot()
	season := s.season
	s.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownScout
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return prediction.Suggest(s.rng, scout, players, season, goalPercentiles(players)), nil
}

// ResolvePredictions judges every due prediction across all scouts and
// refreshes the standings from the resulting accuracy records.
func (s *Service) ResolvePredictions(ctx context.Context) error {
	s.mu.RLock()
	players := s.playersSnapshot()
	freeAgents := make(map[string]bool, len(s.freeAgents))
	for id := range s.freeAgents {
		freeAgents[id] = true
	}
	week, season := s.week, s.season
	s.mu.RUnlock()

	scoutIDs := s.shelf.ScoutIDs(ctx)
	sort.Strings(scoutIDs)

	for _, scoutID := range scoutIDs {
		ledger := s.shelf.PredictionsByScout(ctx, scoutID)

		s.rngMu.Lock()
		resolved := prediction.ResolveAll(s.rng, ledger, players, season, week, freeAgents)
		s.rngMu.Unlock()

		newlyResolved := 0
		for i := range resolved {
			if resolved[i].Resolved && !ledger[i].Resolved {
				newlyResolved++
			}
		}
		if newlyResolved > 0 {
			metrics.RecordPredictionResolved(newlyResolved)
		}

		s.shelf.SetPredictions(ctx, scoutID, resolved)

		stats := prediction.Accuracy(resolved)
		if stats.Resolved > 0 {
			if err := s.standings.Upsert(ctx, scoutID, stats); err != nil {
				return err
			}
		}
	}
	return nil
}

// PredictionsByScout returns a scout's full prediction ledger.
func (s *Service) PredictionsByScout(ctx context.Context, scoutID string) []prediction.Prediction {
	return s.shelf.PredictionsByScout(ctx, scoutID)
}

// RunDatabaseQuery produces a quick statistical profile of a player using
// the scout's data literacy.
func (s *Service) RunDatabaseQuery(ctx context.Context, scoutID, playerID string) (statistics.Profile, error) {
	s.mu.RLock()
	scout, scoutOK := s.scouts[scoutID]
	player, playerOK := s.players[playerID]
	pool := s.playerPool()
	season := s.season
	s.mu.RUnlock()

	if !scoutOK {
		return statistics.Profile{}, ErrUnknownScout
	}
	if !playerOK {
		return statistics.Profile{}, ErrUnknownPlayer
	}

	s.rngMu.Lock()
	profile := statistics.ExecuteDatabaseQuery(s.rng, scout.DataLiteracy, player, pool, season)
	s.rngMu.Unlock()

	s.shelf.SetProfile(ctx, profile)
	return profile, nil
}

// RunDeepVideoAnalysis produces a sharper statistical profile, blending
// toward the new read when a prior profile exists.
func (s *Service) RunDeepVideoAnalysis(ctx context.Context, scoutID, playerID string) (statistics.Profile, error) {
	s.mu.RLock()
	scout, scoutOK := s.scouts[scoutID]
	player, playerOK := s.players[playerID]
	pool := s.playerPool()
	season := s.season
	s.mu.RUnlock()

	if !scoutOK {
		return statistics.Profile{}, ErrUnknownScout
	}
	if !playerOK {
		return statistics.Profile{}, ErrUnknownPlayer
	}

	var prior *statistics.Profile
	if existing, ok := s.shelf.Profile(ctx, playerID); ok {
		prior = &existing
	}

	s.rngMu.Lock()
	profile := statistics.ExecuteDeepVideoAnalysis(s.rng, scout.DataLiteracy, player, pool, season, prior)
	s.rngMu.Unlock()

	s.shelf.SetProfile(ctx, profile)
	return profile, nil
}

// StatsBriefing builds a league-wide statistical briefing at the scout's
// data literacy level.
func (s *Service) StatsBriefing(ctx context.Context, scoutID string) (statistics.Briefing, error) {
	s.mu.RLock()
	scout, ok := s.scouts[scoutID]
	pool := s.playerPool()
	week, season := s.week, s.season
	s.mu.RUnlock()

	if !ok {
		return statistics.Briefing{}, ErrUnknownScout
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return statistics.GenerateStatsBriefing(s.rng, scout.DataLiteracy, pool, week, season), nil
}

// AnalystReport has a data analyst work up a report over the players in
// their focus area. Low morale degrades the read.
func (s *Service) AnalystReport(ctx context.Context, analystID string) (statistics.AnalystReport, error) {
	s.mu.RLock()
	analyst, ok := s.analysts[analystID]
	pool := s.playerPool()
	week, season := s.week, s.season
	s.mu.RUnlock()

	if !ok {
		return statistics.AnalystReport{}, ErrUnknownAnalyst
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return statistics.BuildAnalystReport(s.rng, analyst, pool, week, season), nil
}

// AdjustAnalystMorale moves an analyst's morale by delta, clamped to range.
func (s *Service) AdjustAnalystMorale(analystID string, delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.analysts[analystID]
	if !ok {
		return ErrUnknownAnalyst
	}
	s.analysts[analystID] = a.AdjustMorale(delta)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
		"week":        s.week,
		"season":      s.season,
		"players":     len(s.players),
		"scouts":      len(s.scouts),
		"analysts":    len(s.analysts),
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		totalScouts := s.standings.Count(ctx)

		stats["queueLength"] = queueLen
		stats["totalScouts"] = totalScouts

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateTotalScouts(totalScouts)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// playersSnapshot copies the roster map. Callers under s.mu only.
func (s *Service) playersSnapshot() map[string]model.Player {
	out := make(map[string]model.Player, len(s.players))
	for id, p := range s.players {
		out[id] = p
	}
	return out
}

// playerPool lists the roster as a slice. Callers under s.mu only.
func (s *Service) playerPool() []model.Player {
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// goalPercentiles ranks every player's goal-threat composite against the
// whole roster, strict-less percentile on a 0-100 scale.
func goalPercentiles(players map[string]model.Player) map[string]float64 {
	composite := func(p model.Player) float64 {
		return 0.5*p.Attr(model.AttrTechnicalShooting) +
			0.25*p.Attr(model.AttrMentalComposure) +
			0.25*p.Attr(model.AttrTacticalPositioning)
	}

	values := make([]float64, 0, len(players))
	for _, p := range players {
		values = append(values, composite(p))
	}

	out := make(map[string]float64, len(players))
	for id, p := range players {
		own := composite(p)
		below := 0
		for _, v := range values {
			if v < own {
				below++
			}
		}
		if len(values) > 1 {
			out[id] = float64(below) / float64(len(values)) * 100
		}
	}
	return out
}
