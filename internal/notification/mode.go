package notification

// PlaceholderUser is the sample value shipped in deployment templates.
// Credentials still carrying it are treated as unconfigured.
const PlaceholderUser = "your-email@gmail.com"

// Mode selects which transport the provisioner builds.
type Mode int

const (
	// ModeSandbox provisions a disposable Ethereal test mailbox.
	ModeSandbox Mode = iota
	// ModeConfigured uses the real Gmail credentials from the environment.
	ModeConfigured
)

// String returns the mode name for logging.
func (m Mode) String() string {
	if m == ModeConfigured {
		return "configured"
	}
	return "sandbox"
}

// ChooseMode decides the transport mode from the configured credentials.
// It is a pure function so the decision is testable without any network call.
func ChooseMode(user, pass string) Mode {
	if user != "" && pass != "" && user != PlaceholderUser {
		return ModeConfigured
	}
	return ModeSandbox
}
