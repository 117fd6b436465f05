package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/page"
	"github.com/ssudhiravinesh/blindsight/internal/scan"
)

// EvaluateRequest is a captured page snapshot submitted for signup
// detection.
type EvaluateRequest struct {
	// TabID identifies the browser tab the snapshot came from.
	TabID string `json:"tabId"`
	// URL is the page address.
	URL string `json:"url"`
	// HTML is the rendered document markup.
	HTML string `json:"html"`
}

// handleEvaluate registers a page snapshot and runs signup detection.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req EvaluateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.TabID == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrTabIDRequired.Error())
		return
	}

	if req.URL == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrURLRequired.Error())
		return
	}

	if req.HTML == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrHTMLRequired.Error())
		return
	}

	eval, err := h.controller.Evaluate(r.Context(), req.TabID, page.Snapshot{URL: req.URL, HTML: req.HTML})
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, err.Error())
		return
	}

	respondData(w, http.StatusOK, eval)
}

// ScanRequest asks for a full terms scan of a previously evaluated tab.
type ScanRequest struct {
	// TabID identifies the tab to scan.
	TabID string `json:"tabId"`
}

// handleScan runs the scan pipeline for a tab's current page.
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req ScanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.TabID == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrTabIDRequired.Error())
		return
	}

	outcome, err := h.controller.Scan(r.Context(), req.TabID)
	if err != nil {
		respondScanError(w, req.TabID, err)
		return
	}

	respondData(w, http.StatusOK, outcome)
}

// respondScanError maps pipeline failures onto HTTP statuses.
func respondScanError(w http.ResponseWriter, tabID string, err error) {
	switch {
	case errors.Is(err, scan.ErrNoSession):
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
	case errors.Is(err, scan.ErrScanInProgress):
		respondError(w, http.StatusConflict, errCodeConflict, err.Error())
	default:
		log.Error().Err(err).Str("tab_id", tabID).Msg("scan failed")
		respondError(w, http.StatusBadGateway, errCodeInternal, err.Error())
	}
}

// handleStatus reports the current page state for a tab.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.controller.Status(chi.URLParam(r, "tabID"))
	if err != nil {
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
		return
	}

	respondData(w, http.StatusOK, status)
}

// WarnRequest replays a warning for a tab from an existing analysis
// result, typically one loaded from history.
type WarnRequest struct {
	// TabID identifies the tab to warn on.
	TabID string `json:"tabId"`
	// Result is the analysis result to render.
	Result *analyze.ScanResult `json:"result"`
}

// handleWarn drives the warning surface without rescanning.
func (h *Handler) handleWarn(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	var req WarnRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.TabID == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrTabIDRequired.Error())
		return
	}

	if req.Result == nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, ErrResultRequired.Error())
		return
	}

	outcome, err := h.controller.Warn(req.TabID, req.Result)
	if err != nil {
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
		return
	}

	respondData(w, http.StatusOK, outcome)
}

// handleDropTab discards a tab's session when the tab closes.
func (h *Handler) handleDropTab(w http.ResponseWriter, r *http.Request) {
	h.controller.DropTab(chi.URLParam(r, "tabID"))
	respondData(w, http.StatusOK, map[string]bool{"dropped": true})
}
