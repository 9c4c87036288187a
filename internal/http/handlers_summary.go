package http

import (
	"net/http"

	"fintrack/internal/core"
)

type summaryResponse struct {
	core.Totals
	Trend   string `json:"trend"`
	Version uint64 `json:"version"`
}

// handleSummary serves the income, expense and balance cards.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	totals := s.engine.Totals(snap)
	NewJSONResponse().Body(summaryResponse{
		Totals:  totals,
		Trend:   totals.Trend(),
		Version: snap.Version,
	}).Write(w)
}

// handleCategoryBreakdown serves the expense chart. top caps the legend.
func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	top, err := ParsePositiveInt(r.URL.Query(), "top", s.topCategories, len(core.Categories()))
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}
	NewJSONResponse().Body(s.engine.Breakdown(s.store.Snapshot(), top)).Write(w)
}
