package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ssudhiravinesh/blindsight/internal/warn"
)

// PhraseRequest carries the typed confirmation phrase for a critical
// warning.
type PhraseRequest struct {
	// Phrase is the user's typed confirmation.
	Phrase string `json:"phrase"`
}

// machineFor resolves the warning machine for the path's tab, writing the
// error response itself when the session is gone.
func (h *Handler) machineFor(w http.ResponseWriter, r *http.Request) (*warn.Machine, bool) {
	m, err := h.controller.Machine(chi.URLParam(r, "tabID"))
	if err != nil {
		respondError(w, http.StatusNotFound, errCodeNotFound, err.Error())
		return nil, false
	}

	return m, true
}

// handlePhrase checks the typed confirmation phrase against the unlock
// phrase. A mismatch keeps the modal locked.
func (h *Handler) handlePhrase(w http.ResponseWriter, r *http.Request) {
	h.limitBody(w, r)

	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	var req PhraseRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidRequest, ErrInvalidRequestBody.Error())
		return
	}

	if err := m.SubmitPhrase(req.Phrase); err != nil {
		respondWarnError(w, err)
		return
	}

	respondData(w, http.StatusOK, m.Snapshot())
}

// handleProceed unblocks the page after the warning's unlock condition
// has been met.
func (h *Handler) handleProceed(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	if err := m.Proceed(); err != nil {
		respondWarnError(w, err)
		return
	}

	respondData(w, http.StatusOK, m.Snapshot())
}

// handleAbort closes the warning modal, leaving intercepted buttons
// blocked.
func (h *Handler) handleAbort(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	m.Abort()
	respondData(w, http.StatusOK, m.Snapshot())
}

// handleDismiss closes a transient notice or failure banner.
func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	m.Dismiss()
	respondData(w, http.StatusOK, m.Snapshot())
}

// handleTick advances countdown and notice timers by one second. The
// client drives ticks so the rendered timer and the unlock state can
// never disagree.
func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	m.Tick()
	respondData(w, http.StatusOK, m.Snapshot())
}

// handleWarningState reports the warning machine's observable state.
func (h *Handler) handleWarningState(w http.ResponseWriter, r *http.Request) {
	m, ok := h.machineFor(w, r)
	if !ok {
		return
	}

	respondData(w, http.StatusOK, m.Snapshot())
}

// respondWarnError maps warning machine failures onto HTTP statuses.
func respondWarnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, warn.ErrPhraseMismatch):
		respondError(w, http.StatusUnprocessableEntity, errCodeValidation, err.Error())
	case errors.Is(err, warn.ErrProceedLocked):
		respondError(w, http.StatusConflict, errCodeLocked, err.Error())
	case errors.Is(err, warn.ErrNotBlocking):
		respondError(w, http.StatusConflict, errCodeConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, errCodeInternal, err.Error())
	}
}
