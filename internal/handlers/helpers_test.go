package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/giftflow-app/backend/internal/auth"
	"github.com/giftflow-app/backend/internal/config"
	"github.com/giftflow-app/backend/internal/store"
)

// newTestServer builds an isolated seeded server in mock mode, the
// configuration the contract tests are written against.
func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	cfg := config.Config{
		Port:        "8000",
		CORSOrigins: []string{"*"},
		MockMode:    true,
	}
	s := New(store.NewSeeded(), cfg, zerolog.Nop(), auth.PlainChecker{}, auth.MockMinter{})
	return s, s.Routes()
}

// doRequest performs a request against the router. A non-empty token is sent
// as "Bearer <token>"; a non-nil body is JSON encoded.
func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	return m
}

// signup registers a user and returns its token and userId.
func signup(t *testing.T, h http.Handler, name, email, password string) (token, userID string) {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	m := decodeMap(t, w)
	return m["token"].(string), m["userId"].(string)
}
