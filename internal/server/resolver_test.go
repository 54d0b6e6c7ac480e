package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/liftgate/internal/mcp"
)

// TestCredentialResolver verifies token-to-key resolution for MCP requests:
// a linked token yields its key, no token falls back to the configured key,
// and an unknown token yields no key at all.
func TestCredentialResolver(t *testing.T) {
	store := newMemStore()
	store.creds["tok-1"] = "alice-key"
	resolve := CredentialResolver(store, "fallback-key", slog.New(slog.DiscardHandler))

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"linked token", "Bearer tok-1", "alice-key"},
		{"no token", "", "fallback-key"},
		{"unknown token", "Bearer tok-unknown", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			ctx := resolve(context.Background(), req)
			if got := mcp.APIKeyFromContext(ctx); got != tc.want {
				t.Errorf("resolved key = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestCredentialResolverStoreError verifies a store failure resolves to no
// key rather than the fallback, so a broken store never silently degrades a
// multi-user deployment to the shared key.
func TestCredentialResolverStoreError(t *testing.T) {
	store := newMemStore()
	store.err = context.DeadlineExceeded
	resolve := CredentialResolver(store, "fallback-key", slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	ctx := resolve(context.Background(), req)
	if got := mcp.APIKeyFromContext(ctx); got != "" {
		t.Errorf("resolved key = %q, want empty", got)
	}
}
