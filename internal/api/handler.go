// Package api exposes the Blindsight scan pipeline over HTTP for the
// browser-side client: page evaluation, terms scanning, warning state
// interactions, and scan history.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/scan"
)

// serviceName identifies this service in health responses
const serviceName = "blindsight"

// defaultMaxBodySize bounds request bodies; page snapshots carry full HTML
const defaultMaxBodySize = 8 << 20 // 8 MiB

// HistoryStore reads and clears persisted scans. *history.Store satisfies
// this.
type HistoryStore interface {
	List(ctx context.Context) ([]history.Entry, error)
	Clear(ctx context.Context) error
}

// Handler manages API endpoints
type Handler struct {
	controller  *scan.Controller
	store       HistoryStore
	maxBodySize int64
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// limitBody caps the request body read
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
}
