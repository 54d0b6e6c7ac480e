package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/liftgate/internal/credstore"
	"github.com/claude/liftgate/internal/mcp"
)

// CredentialResolver returns the per-request context function for the MCP
// HTTP transport. It resolves the bearer token to the caller's upstream API
// key; a request with no token gets fallbackKey (which may be empty, in
// which case tool calls fail with an authorization error rather than here —
// MCP transports have no clean way to reject a session at handshake time).
func CredentialResolver(creds credstore.Store, fallbackKey string, log *slog.Logger) func(ctx context.Context, r *http.Request) context.Context {
	return func(ctx context.Context, r *http.Request) context.Context {
		token := bearerToken(r)
		if token == "" {
			return mcp.WithAPIKey(ctx, fallbackKey)
		}

		apiKey, ok, err := creds.Get(ctx, token)
		if err != nil {
			log.Error("credential lookup", "error", err)
			return mcp.WithAPIKey(ctx, "")
		}
		if !ok {
			return mcp.WithAPIKey(ctx, "")
		}
		return mcp.WithAPIKey(ctx, apiKey)
	}
}
