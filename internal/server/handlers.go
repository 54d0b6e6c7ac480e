package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLinkKey stores an upstream API key and returns the bearer token that
// resolves to it. The key itself is never echoed back.
func (s *Server) handleLinkKey(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(payload.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "apiKey is required"})
		return
	}

	token := uuid.NewString()
	if err := s.creds.Put(r.Context(), token, payload.APIKey); err != nil {
		s.log.Error("link key", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storing credential failed"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// handleUnlinkKey deletes the credential behind the presented bearer token.
func (s *Server) handleUnlinkKey(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		return
	}

	if err := s.creds.Delete(r.Context(), token); err != nil {
		s.log.Error("unlink key", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "deleting credential failed"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
