package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"virtual-ta/internal/engine"
)

// maxBodyBytes bounds the request body; base64 image payloads dominate.
const maxBodyBytes = 10 << 20

// questionRequest is the POST / body.
type questionRequest struct {
	Question string `json:"question"`
	Image    string `json:"image,omitempty"`
}

// handleHealth reports the engine's initialization state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Status())
}

// handleQuestion answers a student question. Malformed request shapes
// are boundary faults (400); a not-ready engine maps to 503 so clients
// know to retry.
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}

	result, err := s.engine.Answer(r.Context(), req.Question, req.Image)
	if err != nil {
		if errors.Is(err, engine.ErrNotReady) {
			jsonError(w, "The service is still initializing. Please try again in a few minutes.",
				http.StatusServiceUnavailable)
			return
		}
		// The engine contract degrades all other faults into a Result;
		// anything else here is a server bug.
		s.log.Error("answering question", "error", err)
		jsonError(w, "An error occurred while processing your question: "+err.Error(),
			http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
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
