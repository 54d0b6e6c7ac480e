package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// memStore is an in-memory credstore.Store for handler tests.
type memStore struct {
	creds map[string]string
	err   error
}

func newMemStore() *memStore {
	return &memStore{creds: make(map[string]string)}
}

func (m *memStore) Put(_ context.Context, token, apiKey string) error {
	if m.err != nil {
		return m.err
	}
	m.creds[token] = apiKey
	return nil
}

func (m *memStore) Get(_ context.Context, token string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	key, ok := m.creds[token]
	return key, ok, nil
}

func (m *memStore) Delete(_ context.Context, token string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.creds, token)
	return nil
}

func (m *memStore) Close() error { return nil }

func newTestServer(store *memStore) *Server {
	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return New(store, mcpStub, slog.New(slog.DiscardHandler))
}

// TestHealthz verifies the health endpoint responds ok.
func TestHealthz(t *testing.T) {
	srv := newTestServer(newMemStore())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

// TestLinkKey verifies a key link returns a token that resolves to the key,
// without echoing the key back.
func TestLinkKey(t *testing.T) {
	store := newMemStore()
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/keys",
		strings.NewReader(`{"apiKey":"secret-upstream-key"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token in response")
	}
	if strings.Contains(rec.Body.String(), "secret-upstream-key") {
		t.Error("response echoes the API key")
	}
	if store.creds[resp.Token] != "secret-upstream-key" {
		t.Errorf("stored key = %q, want secret-upstream-key", store.creds[resp.Token])
	}
}

// TestLinkKeyValidation verifies bad link requests are rejected.
func TestLinkKeyValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty key", `{"apiKey":""}`},
		{"whitespace key", `{"apiKey":"   "}`},
		{"invalid json", `{"apiKey":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(newMemStore())
			req := httptest.NewRequest(http.MethodPost, "/api/v1/keys", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

// TestUnlinkKey verifies delete removes the credential behind the token.
func TestUnlinkKey(t *testing.T) {
	store := newMemStore()
	store.creds["tok-1"] = "key-1"
	srv := newTestServer(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/keys", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body)
	}
	if _, ok := store.creds["tok-1"]; ok {
		t.Error("credential still stored after unlink")
	}
}

// TestUnlinkKeyWithoutToken verifies delete requires a bearer token.
func TestUnlinkKeyWithoutToken(t *testing.T) {
	srv := newTestServer(newMemStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/keys", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestMCPMounted verifies requests under /mcp reach the mounted transport.
func TestMCPMounted(t *testing.T) {
	var hit bool
	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	})
	srv := New(newMemStore(), mcpStub, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if !hit {
		t.Error("mounted MCP handler was not reached")
	}
}
