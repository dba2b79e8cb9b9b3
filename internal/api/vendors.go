package api

import (
	"encoding/json"
	"net/http"

	"github.com/mouthful-foods/vendor-mailer/internal/eventbus"
	"github.com/mouthful-foods/vendor-mailer/internal/metrics"
	"github.com/mouthful-foods/vendor-mailer/internal/notification"
)

const (
	errMissingVendorInfo = "Missing required vendor information"
	errReasonRequired    = "Reason is required"
)

type approvalRequest struct {
	Vendor notification.Vendor `json:"vendor"`
}

type suspensionRequest struct {
	Vendor notification.Vendor `json:"vendor"`
	Reason string              `json:"reason"`
	// IsActive is a pointer so an omitted field defaults to true (suspension
	// phrasing) rather than the zero value's rejection phrasing.
	IsActive *bool `json:"isActive"`
}

// active returns the isActive flag, defaulting to true when omitted.
func (r suspensionRequest) active() bool {
	return r.IsActive == nil || *r.IsActive
}

type rejectionRequest struct {
	Vendor notification.Vendor `json:"vendor"`
	Reason string              `json:"reason"`
	UserID string              `json:"userId"`
}

func vendorValid(v notification.Vendor) bool {
	return v.Name != "" && v.Email != ""
}

// handleSendApprovalEmail notifies a vendor that their account is now active.
func (s *Server) handleSendApprovalEmail(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	if !vendorValid(req.Vendor) {
		writeError(w, http.StatusBadRequest, errMissingVendorInfo)
		return
	}

	email, err := notification.RenderApproval(req.Vendor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, ok := s.deliver(w, r, "approval", req.Vendor.Email, email)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Approval email sent successfully",
		Data:    &result,
	})
}

// handleSendSuspensionEmail notifies a vendor of a suspension (isActive=true)
// or a rejection of a pending application (isActive=false).
func (s *Server) handleSendSuspensionEmail(w http.ResponseWriter, r *http.Request) {
	var req suspensionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	if !vendorValid(req.Vendor) {
		writeError(w, http.StatusBadRequest, errMissingVendorInfo)
		return
	}
	if req.Reason == "" {
		writeError(w, http.StatusBadRequest, errReasonRequired)
		return
	}

	email, err := notification.RenderSuspension(req.Vendor, req.Reason, req.active())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	kind := "suspension"
	if !req.active() {
		kind = "rejection"
	}

	result, ok := s.deliver(w, r, kind, req.Vendor.Email, email)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Email sent successfully",
		Data:    &result,
	})
}

// handleRejectAndDeleteVendor sends the rejection notice and then, best
// effort, deletes the vendor's auth record. Deletion failure never changes
// the response: the email is already committed and is not rolled back.
func (s *Server) handleRejectAndDeleteVendor(w http.ResponseWriter, r *http.Request) {
	var req rejectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}
	if !vendorValid(req.Vendor) {
		writeError(w, http.StatusBadRequest, errMissingVendorInfo)
		return
	}
	if req.Reason == "" {
		writeError(w, http.StatusBadRequest, errReasonRequired)
		return
	}

	email, err := notification.RenderSuspension(req.Vendor, req.Reason, false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, ok := s.deliver(w, r, "rejection", req.Vendor.Email, email); !ok {
		return
	}

	if req.UserID != "" && s.deleter.Available() {
		if err := s.deleter.DeleteUser(r.Context(), req.UserID); err != nil {
			s.logger.Error("deleting auth user", "user_id", req.UserID, "error", err)
			metrics.AuthDeletions.WithLabelValues("failed").Inc()
			s.bus.Publish(eventbus.EventAuthDeleteFailed, map[string]string{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
		} else {
			s.logger.Info("deleted auth user", "user_id", req.UserID)
			metrics.AuthDeletions.WithLabelValues("deleted").Inc()
			s.bus.Publish(eventbus.EventAuthDeleted, map[string]string{"user_id": req.UserID})
		}
	}

	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Vendor rejected, email sent, and user deleted from authentication",
	})
}

// deliver performs the single outbound send for a rendered email and records
// the outcome. On failure it writes the 500 response and returns ok=false.
func (s *Server) deliver(w http.ResponseWriter, r *http.Request, kind, to string, email notification.Email) (notification.SendResult, bool) {
	result, err := s.sender.Send(r.Context(), notification.Message{
		To:      to,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		s.logger.Error("sending vendor email", "kind", kind, "to", to, "error", err)
		metrics.EmailsFailed.WithLabelValues(kind).Inc()
		s.bus.Publish(eventbus.EventEmailFailed, map[string]string{
			"kind":  kind,
			"to":    to,
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, err.Error())
		return notification.SendResult{}, false
	}

	s.logger.Info("vendor email sent", "kind", kind, "to", to, "message_id", result.MessageID)
	metrics.EmailsSent.WithLabelValues(kind).Inc()
	s.bus.Publish(eventbus.EventEmailSent, map[string]string{
		"kind":       kind,
		"to":         to,
		"message_id": result.MessageID,
	})
	return result, true
}
