package http

import (
	"net/http"
	"time"

	"fintrack/internal/core"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

type readyResponse struct {
	Status       string `json:"status"`
	Transactions int    `json:"transactions"`
	Version      uint64 `json:"version"`
}

type categoryResponse struct {
	Key   core.Category `json:"key"`
	Name  string        `json:"name"`
	Color string        `json:"color"`
}

// handleHealth is the liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
	}).Write(w)
}

// handleReady reports ready once the store answers with an initialized
// snapshot.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	if snap.Version == 0 {
		ErrorResponse(http.StatusServiceUnavailable, "store not initialized").Write(w)
		return
	}
	NewJSONResponse().Body(readyResponse{
		Status:       "ready",
		Transactions: len(snap.Transactions),
		Version:      snap.Version,
	}).Write(w)
}

// handleCategories lists the registry in enumeration order, narrowed to the
// keys the entry form offers when a type is given.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	typ, err := ParseTypeParam(r.URL.Query())
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	keys := core.Categories()
	if typ != "" {
		keys = core.CategoriesFor(typ)
	}

	out := make([]categoryResponse, len(keys))
	for i, c := range keys {
		info := c.Info()
		out[i] = categoryResponse{Key: c, Name: info.Name, Color: info.Color}
	}
	NewJSONResponse().Body(out).Write(w)
}
