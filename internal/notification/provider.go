// Package notification provides the outbound email transport for vendor
// lifecycle notices: transport-mode selection, one-time provisioning, template
// rendering, and SMTP delivery via go-mail.
package notification

import (
	"context"
	"errors"
)

// ErrNotProvisioned is returned by Send when transport provisioning failed at
// startup and no SMTP client is available.
var ErrNotProvisioned = errors.New("mail transport not provisioned")

// Message is a single email to be delivered.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// SendResult reports the outcome of a delivery attempt. MessageID is the
// Message-ID stamped on the outgoing mail.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// Sender is the interface for outbound email delivery.
type Sender interface {
	// Send delivers msg using the provisioned transport.
	Send(ctx context.Context, msg Message) (SendResult, error)
}
