package drawing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

// Sample inputs the form starts out with.
const (
	defaultMaterial = "Aluminum 6061-T6"
	defaultFinish   = "Anodize Black, MIL-A-8625 Type II"
)

type Handler struct {
	ctrl *Controller
	repo Repo // nil when history is disabled
}

func NewHandler(ctrl *Controller, repo Repo) *Handler {
	return &Handler{ctrl: ctrl, repo: repo}
}

// HandleGenerateNotes — POST /api/notes
func (h *Handler) HandleGenerateNotes(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Material string `json:"material"`
		Finish   string `json:"finish"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	notes, err := h.ctrl.GenerateNotes(r.Context(), payload.Material, payload.Finish)
	switch {
	case errors.Is(err, ErrMissingInput):
		writeError(w, http.StatusBadRequest, "material is required")
		return
	case errors.Is(err, ErrBusy):
		writeError(w, http.StatusConflict, "generation already in progress")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, msgNotesFailed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notes": notes,
		"lines": notes.Lines(),
	})
}

// HandleAsk — POST /api/ask
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Material string `json:"material"`
		Question string `json:"question"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	answer, err := h.ctrl.Ask(r.Context(), payload.Material, payload.Question)
	switch {
	case errors.Is(err, ErrMissingInput):
		writeError(w, http.StatusBadRequest, "material and question are required")
		return
	case errors.Is(err, ErrBusy):
		writeError(w, http.StatusConflict, "a question is already in progress")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, msgAskFailed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"answer": answer})
}

// HandleClipboard — GET /api/notes/clipboard
func (h *Handler) HandleClipboard(w http.ResponseWriter, r *http.Request) {
	text, err := h.ctrl.Copy()
	if err != nil {
		writeError(w, http.StatusConflict, "no notes to copy")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"text":   text,
		"copied": true,
	})
}

// HandleDefaults — GET /api/defaults
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"material": defaultMaterial,
		"finish":   defaultFinish,
	})
}

// HandleState — GET /api/state
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// HandleReset — POST /api/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// HandleHistory — GET /api/history?limit=N
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	items, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	type historyItem struct {
		ID        int64  `json:"id"`
		Material  string `json:"material"`
		Finish    string `json:"finish"`
		Notes     Notes  `json:"notes"`
		CreatedAt int64  `json:"createdAt"`
	}

	out := make([]historyItem, 0, len(items))
	for _, g := range items {
		out = append(out, historyItem{
			ID:        g.ID,
			Material:  g.Material,
			Finish:    g.Finish,
			Notes:     g.Notes,
			CreatedAt: g.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
