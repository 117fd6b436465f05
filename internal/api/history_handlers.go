package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/history"
)

// HistoryResponse holds the recorded scans, newest first.
type HistoryResponse struct {
	// Entries are the stored scans.
	Entries []history.Entry `json:"entries"`
	// Count is len(Entries).
	Count int `json:"count"`
}

// handleHistoryList returns recorded scans, newest first.
func (h *Handler) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, errCodeUnavailable, ErrHistoryNotConfigured.Error())
		return
	}

	entries, err := h.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list scan history")
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())

		return
	}

	if entries == nil {
		entries = []history.Entry{}
	}

	respondData(w, http.StatusOK, HistoryResponse{Entries: entries, Count: len(entries)})
}

// handleHistoryClear deletes all recorded scans.
func (h *Handler) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, errCodeUnavailable, ErrHistoryNotConfigured.Error())
		return
	}

	if err := h.store.Clear(r.Context()); err != nil {
		log.Error().Err(err).Msg("failed to clear scan history")
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())

		return
	}

	respondData(w, http.StatusOK, map[string]bool{"cleared": true})
}
