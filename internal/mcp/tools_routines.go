package mcp

import (
	"context"

	"github.com/claude/liftgate/internal/models"
	"github.com/claude/liftgate/internal/transform"
	"github.com/claude/liftgate/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetRoutines = mcp.NewTool("get_routines",
	mcp.WithDescription("List saved routines with their planned exercises and sets."),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("pageSize", mcp.Description("Routines per page (1-10). Defaults to 5.")),
)

var toolGetRoutine = mcp.NewTool("get_routine",
	mcp.WithDescription("Get a single routine by its id."),
	mcp.WithString("routineId", mcp.Required(), mcp.Description("Routine id, as returned by get_routines.")),
)

var toolCreateRoutine = mcp.NewTool("create_routine",
	mcp.WithDescription("Create a routine. Routine sets may carry a repRange {start, end} target instead of logged reps. folderId optionally places the routine in an existing folder."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Routine title.")),
	mcp.WithString("notes", mcp.Description("Optional routine notes.")),
	mcp.WithNumber("folderId", mcp.Description("Optional id of an existing routine folder.")),
	mcp.WithArray("exercises", mcp.Required(), mcp.Description("Exercises in order. Each: {templateId, supersetId?, restSeconds?, notes?, sets: [{type: warmup|normal|failure|dropset, weightKg?, reps?, distanceMeters?, durationSeconds?, customMetric?, repRange?: {start?, end?}}]}.")),
)

var toolUpdateRoutine = mcp.NewTool("update_routine",
	mcp.WithDescription("Replace an existing routine. Takes the same fields as create_routine except folder placement, which cannot be changed through an update."),
	mcp.WithString("routineId", mcp.Required(), mcp.Description("Id of the routine to update.")),
	mcp.WithString("title", mcp.Required(), mcp.Description("Routine title.")),
	mcp.WithString("notes", mcp.Description("Optional routine notes.")),
	mcp.WithArray("exercises", mcp.Required(), mcp.Description("Exercises in order, same shape as create_routine.")),
)

// --- Handlers ---

func (h *handlers) getRoutines(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("pageSize", routinesDefaultPageSize)
	if err := validate.Pagination(page, pageSize, routinesMaxPageSize); err != nil {
		return h.fail("get_routines", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_routines", err), nil
	}
	raw, err := up.ListRoutines(ctx, page, pageSize)
	if err != nil {
		return h.fail("get_routines", err), nil
	}
	return result(raw)
}

func (h *handlers) getRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "routineId")
	if err != nil {
		return h.fail("get_routine", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_routine", err), nil
	}
	raw, err := up.GetRoutine(ctx, id)
	if err != nil {
		return h.fail("get_routine", err), nil
	}
	return result(raw)
}

func validateRoutine(r models.Routine) error {
	if err := validate.Title(r.Title); err != nil {
		return err
	}
	return validate.RoutineExercises(r.Exercises)
}

func (h *handlers) createRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var r models.Routine
	if err := bind(req, &r); err != nil {
		return h.fail("create_routine", err), nil
	}
	if err := validateRoutine(r); err != nil {
		return h.fail("create_routine", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("create_routine", err), nil
	}
	raw, err := up.CreateRoutine(ctx, transform.Routine(r, true))
	if err != nil {
		return h.fail("create_routine", err), nil
	}
	return result(raw)
}

func (h *handlers) updateRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "routineId")
	if err != nil {
		return h.fail("update_routine", err), nil
	}
	var r models.Routine
	if err := bind(req, &r); err != nil {
		return h.fail("update_routine", err), nil
	}
	if err := validateRoutine(r); err != nil {
		return h.fail("update_routine", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("update_routine", err), nil
	}
	// Folder placement is create-only; an echoed folderId is dropped here.
	raw, err := up.UpdateRoutine(ctx, id, transform.Routine(r, false))
	if err != nil {
		return h.fail("update_routine", err), nil
	}
	return result(raw)
}
