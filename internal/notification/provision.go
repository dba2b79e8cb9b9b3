package notification

import (
	"context"
	"log/slog"
	"time"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587

	etherealHost = "smtp.ethereal.email"
	etherealPort = 587

	verifyTimeout = 15 * time.Second
)

// Provision builds the process-wide mail Sender for the given credentials.
// Exactly one Sender exists for the process lifetime; it is shared read-only
// by all request handlers.
//
// Provisioning failures never abort startup: the returned Sender then fails
// every Send with ErrNotProvisioned so handlers surface the error at call
// time.
func Provision(ctx context.Context, user, pass string, logger *slog.Logger) Sender {
	if ChooseMode(user, pass) == ModeConfigured {
		return provisionConfigured(user, pass, logger)
	}
	return provisionSandbox(ctx, logger)
}

func provisionConfigured(user, pass string, logger *slog.Logger) Sender {
	sender, err := NewSMTPSender(SMTPConfig{
		Host:       gmailHost,
		Port:       gmailPort,
		Username:   user,
		Password:   pass,
		FromName:   senderDisplayName,
		FromAddr:   user,
		Encryption: "starttls",
	})
	if err != nil {
		logger.Error("building mail transport", "error", err)
		return unprovisionedSender{}
	}

	// Verify in the background so a slow or misconfigured SMTP server cannot
	// block startup. A verify failure is logged only; each Send performs its
	// own dial anyway.
	go func() {
		vctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()
		if err := sender.Verify(vctx); err != nil {
			logger.Error("email configuration error", "error", err)
		}
	}()

	logger.Info("mail transport ready", "mode", ModeConfigured.String(), "user", user)
	return sender
}

func provisionSandbox(ctx context.Context, logger *slog.Logger) Sender {
	account, err := CreateTestAccount(ctx, "")
	if err != nil {
		logger.Error("creating sandbox test account", "error", err)
		return unprovisionedSender{}
	}

	sender, err := NewSMTPSender(SMTPConfig{
		Host:       etherealHost,
		Port:       etherealPort,
		Username:   account.User,
		Password:   account.Pass,
		FromName:   senderDisplayName,
		FromAddr:   account.User,
		Encryption: "starttls",
	})
	if err != nil {
		logger.Error("building sandbox mail transport", "error", err)
		return unprovisionedSender{}
	}

	logger.Info("mail transport ready", "mode", ModeSandbox.String(), "user", account.User)
	return sender
}

// unprovisionedSender is the degraded transport used when provisioning failed.
type unprovisionedSender struct{}

func (unprovisionedSender) Send(context.Context, Message) (SendResult, error) {
	return SendResult{}, ErrNotProvisioned
}
