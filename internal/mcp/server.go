// Package mcp exposes the gateway's operations as MCP tools and read-only
// resources. Each tool handler
// runs the same pipeline: bind arguments, validate domain invariants,
// transform to the upstream wire shape, call the upstream API, and normalize
// any failure into the uniform error result. No raw error ever crosses the
// tool boundary.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/liftgate/internal/api"
	"github.com/claude/liftgate/internal/errmsg"
	"github.com/claude/liftgate/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const apiKeyKey contextKey = iota

// WithAPIKey returns a context carrying the caller's upstream API key,
// injected by the transport layer (bearer-token lookup in HTTP mode, the
// configured key in stdio mode).
func WithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyKey, key)
}

// APIKeyFromContext extracts the upstream API key, or "" when none is linked.
func APIKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(apiKeyKey).(string); ok {
		return key
	}
	return ""
}

// UpstreamFactory builds an Upstream client bound to one caller's API key.
// Clients are per-invocation: concurrent calls share no state.
type UpstreamFactory func(apiKey string) Upstream

// New creates an MCP server with all gateway tools and resources registered.
// The registration table is built once here and owned by the returned server —
// there is no ambient global tool state.
func New(up UpstreamFactory, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftgate", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftgate fitness tracking gateway. Create and query workouts, routines, exercise templates and routine folders in the connected training log. All operations act on the account whose API key is linked to the session."),
	)

	h := &handlers{up: up, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: guard(h.getWorkouts)},
		server.ServerTool{Tool: toolGetWorkout, Handler: guard(h.getWorkout)},
		server.ServerTool{Tool: toolCreateWorkout, Handler: guard(h.createWorkout)},
		server.ServerTool{Tool: toolUpdateWorkout, Handler: guard(h.updateWorkout)},
		server.ServerTool{Tool: toolGetWorkoutCount, Handler: guard(h.getWorkoutCount)},
		server.ServerTool{Tool: toolGetWorkoutEvents, Handler: guard(h.getWorkoutEvents)},
		server.ServerTool{Tool: toolGetRoutines, Handler: guard(h.getRoutines)},
		server.ServerTool{Tool: toolGetRoutine, Handler: guard(h.getRoutine)},
		server.ServerTool{Tool: toolCreateRoutine, Handler: guard(h.createRoutine)},
		server.ServerTool{Tool: toolUpdateRoutine, Handler: guard(h.updateRoutine)},
		server.ServerTool{Tool: toolGetExerciseTemplates, Handler: guard(h.getExerciseTemplates)},
		server.ServerTool{Tool: toolGetExerciseTemplate, Handler: guard(h.getExerciseTemplate)},
		server.ServerTool{Tool: toolCreateExerciseTemplate, Handler: guard(h.createExerciseTemplate)},
		server.ServerTool{Tool: toolGetExerciseHistory, Handler: guard(h.getExerciseHistory)},
		server.ServerTool{Tool: toolGetRoutineFolders, Handler: guard(h.getRoutineFolders)},
		server.ServerTool{Tool: toolGetRoutineFolder, Handler: guard(h.getRoutineFolder)},
		server.ServerTool{Tool: toolCreateRoutineFolder, Handler: guard(h.createRoutineFolder)},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resRoutines, Handler: h.routineList},
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool and resource handlers.
type handlers struct {
	up  UpstreamFactory
	log *slog.Logger
}

// Pagination limits per listing operation. These are upstream contract
// limits, surfaced locally so bad requests never reach the network.
const (
	workoutsDefaultPageSize  = 10
	workoutsMaxPageSize      = 10
	eventsDefaultPageSize    = 5
	eventsMaxPageSize        = 10
	routinesDefaultPageSize  = 5
	routinesMaxPageSize      = 10
	foldersDefaultPageSize   = 10
	foldersMaxPageSize       = 10
	templatesDefaultPageSize = 20
	templatesMaxPageSize     = 100
)

// guard wraps a handler with panic recovery so even a programming error
// surfaces as the uniform error result rather than a broken session.
func guard(fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				res = mcp.NewToolResultError(errmsg.FormatPanic(r))
				err = nil
			}
		}()
		return fn(ctx, req)
	}
}

// client resolves the per-session upstream client. A session with no linked
// key fails exactly like an upstream credential rejection, so the caller
// sees the same remediation either way.
func (h *handlers) client(ctx context.Context) (Upstream, error) {
	key := APIKeyFromContext(ctx)
	if key == "" {
		return nil, &api.Error{StatusCode: 401, Body: `{"error":"no API key is linked to this session"}`}
	}
	return h.up(key), nil
}

// fail logs the failure and renders it as the uniform error result.
func (h *handlers) fail(op string, err error) *mcp.CallToolResult {
	h.log.Error("mcp "+op, "error", err)
	return mcp.NewToolResultError(errmsg.Format(err))
}

// result passes an upstream response body through as the tool result.
func result(raw json.RawMessage) (*mcp.CallToolResult, error) {
	res, err := mcp.NewToolResultJSON(raw)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return res, nil
}

// bind decodes raw tool arguments into an ergonomic request struct. Decode
// failures surface as schema errors keyed by the offending field path.
func bind(req mcp.CallToolRequest, v any) error {
	err := req.BindArguments(v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &validate.SchemaError{Issues: []validate.FieldIssue{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("expected %s", typeErr.Type),
		}}}
	}
	return &validate.SchemaError{Issues: []validate.FieldIssue{{Message: err.Error()}}}
}

// requireString reads a required string argument, reporting absence or a
// blank value as a schema error at that field path. The blank check matters
// for identifiers: a whitespace-only id would otherwise travel upstream as an
// escaped path segment.
func requireString(req mcp.CallToolRequest, name string) (string, error) {
	v, err := req.RequireString(name)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", &validate.SchemaError{Issues: []validate.FieldIssue{{
			Path:    name,
			Message: name + " is required",
		}}}
	}
	return v, nil
}
