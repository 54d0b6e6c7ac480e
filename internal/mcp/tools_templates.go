package mcp

import (
	"context"

	"github.com/claude/liftgate/internal/models"
	"github.com/claude/liftgate/internal/transform"
	"github.com/claude/liftgate/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetExerciseTemplates = mcp.NewTool("get_exercise_templates",
	mcp.WithDescription("List exercise templates (built-in and custom). Templates are referenced by id from workout and routine exercises."),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("pageSize", mcp.Description("Templates per page (1-100). Defaults to 20.")),
)

var toolGetExerciseTemplate = mcp.NewTool("get_exercise_template",
	mcp.WithDescription("Get a single exercise template by its id."),
	mcp.WithString("templateId", mcp.Required(), mcp.Description("Exercise template id.")),
)

var toolCreateExerciseTemplate = mcp.NewTool("create_exercise_template",
	mcp.WithDescription("Create a custom exercise template. Accounts have a limited number of custom exercises; a 403 from the upstream API means the cap was reached."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Exercise name.")),
	mcp.WithString("type", mcp.Required(), mcp.Description("How the exercise is logged."),
		mcp.Enum("weight_reps", "reps_only", "bodyweight_reps", "duration", "distance")),
	mcp.WithString("equipment", mcp.Required(), mcp.Description("Equipment category."),
		mcp.Enum("none", "barbell", "dumbbell", "kettlebell", "machine", "plate", "resistance_band", "suspension", "other")),
	mcp.WithString("primaryMuscleGroup", mcp.Required(), mcp.Description("Primary muscle group."),
		mcp.Enum("abdominals", "abductors", "adductors", "biceps", "calves", "cardio", "chest", "forearms", "full_body", "glutes", "hamstrings", "lats", "lower_back", "neck", "quadriceps", "shoulders", "traps", "triceps", "upper_back", "other")),
	mcp.WithArray("secondaryMuscleGroups", mcp.Description("Optional secondary muscle groups, same values as primaryMuscleGroup.")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Get every logged set for one exercise template across all workouts, useful for progression analysis."),
	mcp.WithString("templateId", mcp.Required(), mcp.Description("Exercise template id.")),
)

// --- Handlers ---

func (h *handlers) getExerciseTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("pageSize", templatesDefaultPageSize)
	if err := validate.Pagination(page, pageSize, templatesMaxPageSize); err != nil {
		return h.fail("get_exercise_templates", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_exercise_templates", err), nil
	}
	raw, err := up.ListExerciseTemplates(ctx, page, pageSize)
	if err != nil {
		return h.fail("get_exercise_templates", err), nil
	}
	return result(raw)
}

func (h *handlers) getExerciseTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "templateId")
	if err != nil {
		return h.fail("get_exercise_template", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_exercise_template", err), nil
	}
	raw, err := up.GetExerciseTemplate(ctx, id)
	if err != nil {
		return h.fail("get_exercise_template", err), nil
	}
	return result(raw)
}

func (h *handlers) createExerciseTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var t models.ExerciseTemplate
	if err := bind(req, &t); err != nil {
		return h.fail("create_exercise_template", err), nil
	}
	if err := validate.ExerciseTemplate(t); err != nil {
		return h.fail("create_exercise_template", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("create_exercise_template", err), nil
	}
	raw, err := up.CreateExerciseTemplate(ctx, transform.ExerciseTemplate(t))
	if err != nil {
		return h.fail("create_exercise_template", err), nil
	}
	return result(raw)
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "templateId")
	if err != nil {
		return h.fail("get_exercise_history", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_exercise_history", err), nil
	}
	raw, err := up.ExerciseHistory(ctx, id)
	if err != nil {
		return h.fail("get_exercise_history", err), nil
	}
	return result(raw)
}
