package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"recipeclip/internal/cache"
	"recipeclip/internal/extract"
)

type extractRequest struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

// handleExtract runs the extraction chain over submitted markup. The
// page is never fetched; callers send the markup they already have.
// A page with no recognizable recipe is a 404, not an error.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.HTML) == "" {
		jsonError(w, "html is required", http.StatusBadRequest)
		return
	}

	key := cache.Key(req.URL, req.HTML)
	if cached, err := s.cache.Get(r.Context(), key); err != nil {
		s.log.Warn("cache read failed", "error", err)
	} else if cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	rec := extract.FromHTML(req.HTML, req.URL)
	if rec == nil {
		jsonError(w, "no recipe found", http.StatusNotFound)
		return
	}

	if err := s.cache.Set(r.Context(), key, rec); err != nil {
		s.log.Warn("cache write failed", "error", err)
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
