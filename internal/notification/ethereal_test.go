package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouthful-foods/vendor-mailer/internal/notification"
)

func TestCreateTestAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":"abc@ethereal.email","pass":"secret"}`))
	}))
	defer srv.Close()

	account, err := notification.CreateTestAccount(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "abc@ethereal.email", account.User)
	assert.Equal(t, "secret", account.Pass)
}

func TestCreateTestAccount_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := notification.CreateTestAccount(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCreateTestAccount_MissingCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user":"","pass":""}`))
	}))
	defer srv.Close()

	_, err := notification.CreateTestAccount(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestCreateTestAccount_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := notification.CreateTestAccount(context.Background(), srv.URL)
	require.Error(t, err)
}
