// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/abmccull/talentscout/internal/domain/report"
)

// ReportDependencies defines the interface for report reads.
type ReportDependencies interface {
	ReportsByPlayer(ctx context.Context, playerID string) []report.Report
}

// ReportsHandler handles shelved report requests.
type ReportsHandler struct {
	deps ReportDependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps ReportDependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// HandleGetReports handles GET /reports/{player_id} requests.
func (h *ReportsHandler) HandleGetReports(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_reports"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	playerID := strings.TrimPrefix(r.URL.Path, "/reports/")
	if playerID == "" || strings.Contains(playerID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	reports := h.deps.ReportsByPlayer(r.Context(), playerID)
	writeJSON(w, http.StatusOK, reports)
}
