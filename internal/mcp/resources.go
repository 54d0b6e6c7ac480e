package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"liftgate://workouts/recent",
	"Recent Workouts",
	mcp.WithResourceDescription("The most recent workouts on the account, newest first"),
	mcp.WithMIMEType("application/json"),
)

var resRoutines = mcp.NewResource(
	"liftgate://routines",
	"Saved Routines",
	mcp.WithResourceDescription("Saved routines with their planned exercises and sets"),
	mcp.WithMIMEType("application/json"),
)

var resTemplateCatalog = mcp.NewResource(
	"liftgate://exercise_templates",
	"Exercise Template Catalog",
	mcp.WithResourceDescription("Exercise templates (built-in and custom) referenced by id from workouts and routines"),
	mcp.WithMIMEType("application/json"),
)

// --- Handlers ---

// Resource reads go through the same per-session upstream client as tools.
// Unlike tool calls there is no error-flagged result shape for resources, so
// failures propagate as plain errors to the transport.

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	up, err := h.client(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := up.ListWorkouts(ctx, 1, workoutsDefaultPageSize)
	if err != nil {
		h.log.Error("mcp resource workouts/recent", "error", err)
		return nil, err
	}
	return jsonContents(req, raw), nil
}

func (h *handlers) routineList(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	up, err := h.client(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := up.ListRoutines(ctx, 1, routinesMaxPageSize)
	if err != nil {
		h.log.Error("mcp resource routines", "error", err)
		return nil, err
	}
	return jsonContents(req, raw), nil
}

func (h *handlers) templateCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	up, err := h.client(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := up.ListExerciseTemplates(ctx, 1, templatesMaxPageSize)
	if err != nil {
		h.log.Error("mcp resource exercise_templates", "error", err)
		return nil, err
	}
	return jsonContents(req, raw), nil
}

func jsonContents(req mcp.ReadResourceRequest, raw []byte) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(raw),
		},
	}
}
