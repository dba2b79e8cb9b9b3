// Package identity deletes vendor authentication records from Firebase Auth.
// The deleter degrades to a no-op when no service-account credentials are
// configured, so the rest of the service keeps working without it.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Deleter removes a user record from the identity provider.
type Deleter interface {
	// Available reports whether the identity provider is configured.
	Available() bool
	// DeleteUser removes the auth record with the given uid.
	DeleteUser(ctx context.Context, uid string) error
}

// Credentials are the service-account fields consumed from the environment.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	// PrivateKey is the PEM key with real newlines (already unescaped).
	PrivateKey string
}

// Configured reports whether all required service-account fields are present.
func (c Credentials) Configured() bool {
	return c.ProjectID != "" && c.ClientEmail != "" && c.PrivateKey != ""
}

// serviceAccountJSON assembles the in-memory service-account key file that
// the Firebase Admin SDK expects.
func (c Credentials) serviceAccountJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   c.ProjectID,
		"client_email": c.ClientEmail,
		"private_key":  c.PrivateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

// New initializes the Firebase Auth deleter. Missing or invalid credentials
// degrade to a no-op deleter instead of failing startup; the degradation is
// logged once here.
func New(ctx context.Context, creds Credentials, logger *slog.Logger) Deleter {
	if !creds.Configured() {
		logger.Info("identity provider not configured, auth deletion disabled")
		return noopDeleter{}
	}

	key, err := creds.serviceAccountJSON()
	if err != nil {
		logger.Error("assembling service account credentials", "error", err)
		return noopDeleter{}
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: creds.ProjectID},
		option.WithCredentialsJSON(key),
	)
	if err != nil {
		logger.Error("initializing firebase app, auth deletion disabled", "error", err)
		return noopDeleter{}
	}

	client, err := app.Auth(ctx)
	if err != nil {
		logger.Error("initializing firebase auth client, auth deletion disabled", "error", err)
		return noopDeleter{}
	}

	logger.Info("identity provider ready", "project_id", creds.ProjectID)
	return &firebaseDeleter{client: client}
}

// firebaseDeleter deletes users through the Firebase Admin SDK.
type firebaseDeleter struct {
	client *auth.Client
}

func (d *firebaseDeleter) Available() bool { return true }

func (d *firebaseDeleter) DeleteUser(ctx context.Context, uid string) error {
	if err := d.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("deleting auth user %s: %w", uid, err)
	}
	return nil
}

// noopDeleter is used when no service-account credentials are configured.
type noopDeleter struct{}

func (noopDeleter) Available() bool { return false }

func (noopDeleter) DeleteUser(context.Context, string) error { return nil }
