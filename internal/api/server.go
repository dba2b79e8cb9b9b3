// Package api implements the REST endpoints consumed by the admin frontend.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mouthful-foods/vendor-mailer/internal/eventbus"
	"github.com/mouthful-foods/vendor-mailer/internal/identity"
	"github.com/mouthful-foods/vendor-mailer/internal/notification"
)

const errInvalidJSONBody = "Invalid JSON body"

// Server holds all dependencies for the REST API handlers.
type Server struct {
	sender          notification.Sender
	deleter         identity.Deleter
	bus             eventbus.EventBus
	emailConfigured bool
	logger          *slog.Logger
}

// New creates a new API Server backed by the provided collaborators.
func New(sender notification.Sender, deleter identity.Deleter, bus eventbus.EventBus, emailConfigured bool, logger *slog.Logger) *Server {
	return &Server{
		sender:          sender,
		deleter:         deleter,
		bus:             bus,
		emailConfigured: emailConfigured,
		logger:          logger,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/send-approval-email", s.handleSendApprovalEmail)
	r.Post("/send-suspension-email", s.handleSendSuspensionEmail)
	r.Post("/reject-and-delete-vendor", s.handleRejectAndDeleteVendor)
	r.Get("/health", s.handleHealth)
}

// ─── Response envelopes ───────────────────────────────────────────────────────

type successResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    *notification.SendResult `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
