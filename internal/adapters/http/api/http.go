// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abmccull/talentscout/internal/adapters/repository"
	"github.com/abmccull/talentscout/internal/domain/dedupe"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/report"
	"github.com/abmccull/talentscout/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes an observation for async processing. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, obs model.Observation) bool

	// Read operations expose the standings and shelved reports.
	TopN(ctx context.Context, n int) ([]Entry, error)
	Rank(ctx context.Context, scoutID string) (Entry, error)
	ReportsByPlayer(ctx context.Context, playerID string) []report.Report
}

// Entry mirrors the read shape returned by standings queries.
type Entry = repository.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	observationsHandler *ObservationsHandler
	standingsHandler    *StandingsHandler
	reportsHandler      *ReportsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxStandingsLimit int) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		observationsHandler: NewObservationsHandler(deps),
		standingsHandler:    NewStandingsHandler(deps, maxStandingsLimit),
		reportsHandler:      NewReportsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/observations", MetricsMiddleware(s.observationsHandler.HandlePostObservation, "observations"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/standings/", MetricsMiddleware(s.standingsHandler.HandleGetScoutRank, "scout_rank"))
	mux.HandleFunc("/reports/", MetricsMiddleware(s.reportsHandler.HandleGetReports, "reports"))
}

// readingRequest mirrors one attribute reading in the request body.
type readingRequest struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Count      int     `json:"count"`
}

// observationRequest mirrors the wire schema for POST /observations.
type observationRequest struct {
	ObservationID string                    `json:"observation_id"`
	PlayerID      string                    `json:"player_id"`
	ScoutID       string                    `json:"scout_id"`
	Week          int                       `json:"week"`
	Season        int                       `json:"season"`
	Readings      map[string]readingRequest `json:"readings"`

	HasAbility     bool    `json:"has_ability"`
	AbilityStars   float64 `json:"ability_stars,omitempty"`
	PotentialStars float64 `json:"potential_stars,omitempty"`
}

func (o observationRequest) validate() error {
	switch {
	case strings.TrimSpace(o.ObservationID) == "":
		return errors.New("missing observation_id")
	case strings.TrimSpace(o.PlayerID) == "":
		return errors.New("missing player_id")
	case strings.TrimSpace(o.ScoutID) == "":
		return errors.New("missing scout_id")
	case o.Week < 1:
		return errors.New("invalid week")
	case o.Season < 1:
		return errors.New("invalid season")
	}
	for name, r := range o.Readings {
		if r.Value < model.AttributeMin || r.Value > model.AttributeMax {
			return errors.New("reading out of range: " + name)
		}
	}
	return nil
}

// toModel converts the wire shape to the domain observation.
func (o observationRequest) toModel() model.Observation {
	readings := make(map[model.Attribute]model.AttributeReading, len(o.Readings))
	for name, r := range o.Readings {
		count := r.Count
		if count < 1 {
			count = 1
		}
		readings[model.Attribute(name)] = model.AttributeReading{
			Value:      r.Value,
			Confidence: r.Confidence,
			Count:      count,
		}
	}
	return model.Observation{
		ID:             o.ObservationID,
		PlayerID:       o.PlayerID,
		ScoutID:        o.ScoutID,
		Week:           o.Week,
		Season:         o.Season,
		Readings:       readings,
		HasAbility:     o.HasAbility,
		AbilityStars:   o.AbilityStars,
		PotentialStars: o.PotentialStars,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
