package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages via SMTP using the go-mail library.
// The underlying client is created once at provisioning time and is safe for
// concurrent use.
type SMTPSender struct {
	config SMTPConfig
	client *mail.Client
}

// NewSMTPSender creates an SMTPSender with the given configuration.
func NewSMTPSender(config SMTPConfig) (*SMTPSender, error) {
	c, err := mail.NewClient(config.Host,
		mail.WithPort(config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.Username),
		mail.WithPassword(config.Password),
		mail.WithTLSPolicy(tlsPolicyFromEncryption(config.Encryption)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return &SMTPSender{config: config, client: c}, nil
}

// Send delivers msg using the configured SMTP server. The outgoing mail is
// stamped with a generated Message-ID which is echoed in the SendResult.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (SendResult, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(s.config.FromName, s.config.FromAddr); err != nil {
		return SendResult{}, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return SendResult{}, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	id := fmt.Sprintf("%s@%s", uuid.NewString(), s.config.Host)
	m.SetMessageIDWithValue(id)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return SendResult{}, fmt.Errorf("sending mail to %s: %w", msg.To, err)
	}
	return SendResult{Success: true, MessageID: "<" + id + ">"}, nil
}

// Verify dials the SMTP server to check connectivity and credentials, then
// closes the connection again.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if err := s.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("verifying mail transport: %w", err)
	}
	return s.client.Close()
}

// tlsPolicyFromEncryption converts the encryption string to a go-mail TLSPolicy.
func tlsPolicyFromEncryption(enc string) mail.TLSPolicy {
	switch enc {
	case "ssl_tls":
		return mail.TLSMandatory
	case "starttls":
		return mail.TLSOpportunistic
	default:
		return mail.NoTLS
	}
}
