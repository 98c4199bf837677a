package drawing

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/notes", h.HandleGenerateNotes)
	r.Post("/api/ask", h.HandleAsk)
	r.Get("/api/notes/clipboard", h.HandleClipboard)
	r.Get("/api/defaults", h.HandleDefaults)
	r.Get("/api/state", h.HandleState)
	r.Post("/api/reset", h.HandleReset)
	r.Get("/api/history", h.HandleHistory)
}
