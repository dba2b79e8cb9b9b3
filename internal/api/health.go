package api

import "net/http"

type healthResponse struct {
	Status          string `json:"status"`
	EmailConfigured bool   `json:"emailConfigured"`
}

// handleHealth reports process liveness and whether real mail credentials are
// configured (as opposed to the sandbox transport).
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		EmailConfigured: s.emailConfigured,
	})
}
