package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/liftgate/internal/api"
	"github.com/claude/liftgate/internal/config"
	"github.com/claude/liftgate/internal/credstore"
	"github.com/claude/liftgate/internal/mcp"
	"github.com/claude/liftgate/internal/server"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	stdio := flag.Bool("stdio", false, "serve MCP over stdio using the configured API key")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	factory := func(apiKey string) mcp.Upstream {
		return api.NewClient(cfg.Upstream.BaseURL, apiKey)
	}
	mcpSrv := mcp.New(factory, Version, log)

	// Stdio mode: single user, the configured key, no HTTP surface.
	if *stdio {
		if err := cfg.ValidateStdio(); err != nil {
			log.Error("invalid config", "error", err)
			os.Exit(1)
		}
		err := mcpserver.ServeStdio(mcpSrv, mcpserver.WithStdioContextFunc(
			func(ctx context.Context) context.Context {
				return mcp.WithAPIKey(ctx, cfg.Upstream.APIKey)
			},
		))
		if err != nil {
			log.Error("stdio server error", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.ValidateServe(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	log.Info("liftgate starting", "version", Version)

	// Open credential store
	ctx := context.Background()
	var creds credstore.Store
	switch cfg.Credentials.Backend {
	case "postgres":
		creds, err = credstore.OpenPostgres(ctx, cfg.Credentials.Postgres.DSN(), cfg.Credentials.EncryptionKey)
	default:
		creds, err = credstore.OpenSQLite(cfg.Credentials.SQLitePath, cfg.Credentials.EncryptionKey)
	}
	if err != nil {
		log.Error("failed to open credential store", "error", err)
		os.Exit(1)
	}
	defer creds.Close()
	log.Info("credential store ready", "backend", cfg.Credentials.Backend)

	// MCP over streamable HTTP, credentials resolved per request
	mcpHTTP := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithHTTPContextFunc(server.CredentialResolver(creds, cfg.Upstream.APIKey, log)),
	)

	srv := server.New(creds, mcpHTTP, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
