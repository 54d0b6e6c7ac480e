package mcp

import (
	"context"

	"github.com/claude/liftgate/internal/models"
	"github.com/claude/liftgate/internal/transform"
	"github.com/claude/liftgate/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetRoutineFolders = mcp.NewTool("get_routine_folders",
	mcp.WithDescription("List routine folders."),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("pageSize", mcp.Description("Folders per page (1-10). Defaults to 10.")),
)

var toolGetRoutineFolder = mcp.NewTool("get_routine_folder",
	mcp.WithDescription("Get a single routine folder by its id."),
	mcp.WithString("folderId", mcp.Required(), mcp.Description("Routine folder id.")),
)

var toolCreateRoutineFolder = mcp.NewTool("create_routine_folder",
	mcp.WithDescription("Create a routine folder. Routines are placed into folders at creation via create_routine's folderId."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Folder title.")),
)

// --- Handlers ---

func (h *handlers) getRoutineFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("pageSize", foldersDefaultPageSize)
	if err := validate.Pagination(page, pageSize, foldersMaxPageSize); err != nil {
		return h.fail("get_routine_folders", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_routine_folders", err), nil
	}
	raw, err := up.ListRoutineFolders(ctx, page, pageSize)
	if err != nil {
		return h.fail("get_routine_folders", err), nil
	}
	return result(raw)
}

func (h *handlers) getRoutineFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "folderId")
	if err != nil {
		return h.fail("get_routine_folder", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_routine_folder", err), nil
	}
	raw, err := up.GetRoutineFolder(ctx, id)
	if err != nil {
		return h.fail("get_routine_folder", err), nil
	}
	return result(raw)
}

func (h *handlers) createRoutineFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var f models.RoutineFolder
	if err := bind(req, &f); err != nil {
		return h.fail("create_routine_folder", err), nil
	}
	if err := validate.Title(f.Title); err != nil {
		return h.fail("create_routine_folder", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("create_routine_folder", err), nil
	}
	raw, err := up.CreateRoutineFolder(ctx, transform.RoutineFolder(f))
	if err != nil {
		return h.fail("create_routine_folder", err), nil
	}
	return result(raw)
}
