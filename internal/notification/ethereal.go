package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// etherealAPIURL is nodemailer's test-account provisioning endpoint. Accounts
// created here receive mail into a disposable web inbox and never deliver to
// real recipients.
const etherealAPIURL = "https://api.nodemailer.com/user"

// TestAccount is a disposable Ethereal mailbox.
type TestAccount struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// CreateTestAccount requests a disposable mailbox from the Ethereal API at
// apiURL. Pass an empty apiURL to use the public endpoint.
func CreateTestAccount(ctx context.Context, apiURL string) (*TestAccount, error) {
	if apiURL == "" {
		apiURL = etherealAPIURL
	}

	body := strings.NewReader(`{"requestor":"vendor-mailer","version":"1.0.0"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("building test account request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting test account: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("test account API returned status %d", resp.StatusCode)
	}

	var account TestAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("decoding test account response: %w", err)
	}
	if account.User == "" || account.Pass == "" {
		return nil, errors.New("test account response missing credentials")
	}
	return &account, nil
}
