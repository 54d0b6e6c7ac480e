// Package server is the HTTP surface of the gateway: key management
// endpoints, a health check, and the mounted MCP transport. Callers link an
// upstream API key once, get back an opaque bearer token, and present that
// token on MCP requests.
package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftgate/internal/credstore"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	creds  credstore.Store
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured. mcpHandler is the
// streamable-HTTP MCP transport, mounted under /mcp.
func New(creds credstore.Store, mcpHandler http.Handler, log *slog.Logger) *Server {
	s := &Server{
		creds:  creds,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes(mcpHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(mcpHandler http.Handler) {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	// Key management: link an upstream API key, get a bearer token back.
	s.router.Post("/api/v1/keys", s.handleLinkKey)
	s.router.Delete("/api/v1/keys", s.handleUnlinkKey)

	// MCP transport. Per-session credentials are resolved by the context
	// function installed on the streamable server, not here.
	s.router.Mount("/mcp", mcpHandler)
}
