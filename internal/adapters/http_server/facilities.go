package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (h *Handlers) listFacilities(w http.ResponseWriter, r *http.Request) {
	fs, err := h.Facilities.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(fs))
	for _, f := range fs {
		out = append(out, map[string]any{"id": f.ID, "title": f.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createFacility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "title is required")
		return
	}
	f, err := h.Facilities.Create(r.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": f.ID, "title": f.Title})
}
