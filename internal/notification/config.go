package notification

// SMTPConfig holds connection parameters for the SMTP sender.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromName   string
	FromAddr   string
	Encryption string // "none", "starttls", "ssl_tls"
}
