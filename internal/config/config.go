// Package config loads application-level configuration from environment
// variables. A local .env file, when present, is loaded by the serve command
// before this package reads the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all application-level configuration loaded from environment variables.
type AppConfig struct {
	// EmailUser and EmailPass are the Gmail credentials for the outbound
	// transport. When absent (or EmailUser still holds the sample
	// placeholder), the service falls back to a disposable Ethereal sandbox
	// account.
	EmailUser string `envconfig:"EMAIL_USER"`
	EmailPass string `envconfig:"EMAIL_PASS"`

	// Firebase service-account fields. All optional — without them the
	// reject-and-delete endpoint skips the auth deletion step.
	FirebaseProjectID   string `envconfig:"FIREBASE_PROJECT_ID" default:"mouthful-foods-ca124"`
	FirebaseClientEmail string `envconfig:"FIREBASE_CLIENT_EMAIL"`

	// FirebasePrivateKey is the service-account PEM key with newlines
	// escaped as the two characters `\n`, as exported by the Firebase
	// console. Use PrivateKeyPEM to get the usable form.
	FirebasePrivateKey string `envconfig:"FIREBASE_PRIVATE_KEY"`

	// FrontendProdURL is the production admin-frontend origin added to the
	// CORS allow-list. The localhost development origins are always allowed.
	FrontendProdURL string `envconfig:"FRONTEND_PROD_URL"`

	// Port is the HTTP server port. Defaults to 5000.
	Port int `envconfig:"PORT" default:"5000"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads AppConfig from environment variables using envconfig.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}

// AllowedOrigins returns the static CORS allow-list: the local development
// origins plus the production frontend origin when configured.
func (c *AppConfig) AllowedOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}
	if c.FrontendProdURL != "" {
		origins = append(origins, c.FrontendProdURL)
	}
	return origins
}

// PrivateKeyPEM returns the Firebase private key with the escaped `\n`
// sequences restored to real newlines.
func (c *AppConfig) PrivateKeyPEM() string {
	return strings.ReplaceAll(c.FirebasePrivateKey, `\n`, "\n")
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
