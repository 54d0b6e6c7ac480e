package mcp

import (
	"context"

	"github.com/claude/liftgate/internal/models"
	"github.com/claude/liftgate/internal/transform"
	"github.com/claude/liftgate/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("List workouts, most recent first. Returns workout summaries with exercises and sets."),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("pageSize", mcp.Description("Workouts per page (1-10). Defaults to 10.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get a single workout by its id, including all exercises and sets."),
	mcp.WithString("workoutId", mcp.Required(), mcp.Description("Workout id, as returned by get_workouts.")),
)

var toolCreateWorkout = mcp.NewTool("create_workout",
	mcp.WithDescription("Log a completed workout. Exercises and sets are ordered by array position. Set metrics (weightKg, reps, distanceMeters, durationSeconds, customMetric, rpe) are all optional; rpe must be one of 6, 7, 7.5, 8, 8.5, 9, 9.5, 10."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Workout title.")),
	mcp.WithString("description", mcp.Description("Optional workout notes.")),
	mcp.WithString("start", mcp.Required(), mcp.Description("Start time, ISO 8601 (e.g. 2024-01-15T10:00:00Z).")),
	mcp.WithString("end", mcp.Required(), mcp.Description("End time, ISO 8601. Must be after start.")),
	mcp.WithString("routineId", mcp.Description("Optional id of the routine this workout followed.")),
	mcp.WithBoolean("isPrivate", mcp.Description("Hide the workout from the account's public feed. Defaults to false.")),
	mcp.WithArray("exercises", mcp.Required(), mcp.Description("Exercises in order. Each: {title, templateId, supersetId?, notes?, sets: [{type: warmup|normal|failure|dropset, weightKg?, reps?, distanceMeters?, durationSeconds?, customMetric?, rpe?}]}.")),
)

var toolUpdateWorkout = mcp.NewTool("update_workout",
	mcp.WithDescription("Replace an existing workout. Takes the same fields as create_workout; the full workout is resent, and any server-generated fields echoed from a previous read are ignored."),
	mcp.WithString("workoutId", mcp.Required(), mcp.Description("Id of the workout to update.")),
	mcp.WithString("title", mcp.Required(), mcp.Description("Workout title.")),
	mcp.WithString("description", mcp.Description("Optional workout notes.")),
	mcp.WithString("start", mcp.Required(), mcp.Description("Start time, ISO 8601.")),
	mcp.WithString("end", mcp.Required(), mcp.Description("End time, ISO 8601. Must be after start.")),
	mcp.WithString("routineId", mcp.Description("Optional id of the routine this workout followed.")),
	mcp.WithBoolean("isPrivate", mcp.Description("Hide the workout from the account's public feed.")),
	mcp.WithArray("exercises", mcp.Required(), mcp.Description("Exercises in order, same shape as create_workout.")),
)

var toolGetWorkoutCount = mcp.NewTool("get_workout_count",
	mcp.WithDescription("Get the total number of workouts on the account."),
)

var toolGetWorkoutEvents = mcp.NewTool("get_workout_events",
	mcp.WithDescription("List workout change events (updates and deletes) since a given instant. Useful for incremental sync."),
	mcp.WithString("since", mcp.Description("Only events after this ISO 8601 instant. Defaults to 1970-01-01T00:00:00Z.")),
	mcp.WithNumber("page", mcp.Description("Page number, starting at 1. Defaults to 1.")),
	mcp.WithNumber("pageSize", mcp.Description("Events per page (1-10). Defaults to 5.")),
)

// --- Handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("pageSize", workoutsDefaultPageSize)
	if err := validate.Pagination(page, pageSize, workoutsMaxPageSize); err != nil {
		return h.fail("get_workouts", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_workouts", err), nil
	}
	raw, err := up.ListWorkouts(ctx, page, pageSize)
	if err != nil {
		return h.fail("get_workouts", err), nil
	}
	return result(raw)
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "workoutId")
	if err != nil {
		return h.fail("get_workout", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_workout", err), nil
	}
	raw, err := up.GetWorkout(ctx, id)
	if err != nil {
		return h.fail("get_workout", err), nil
	}
	return result(raw)
}

// validateWorkout runs the domain checks for a workout write, in stable
// order: title, temporal ordering, then the exercise tree.
func validateWorkout(w models.Workout) error {
	if err := validate.Title(w.Title); err != nil {
		return err
	}
	if _, _, err := validate.TimeRange(w.Start, w.End); err != nil {
		return err
	}
	return validate.WorkoutExercises(w.Exercises)
}

func (h *handlers) createWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var w models.Workout
	if err := bind(req, &w); err != nil {
		return h.fail("create_workout", err), nil
	}
	if err := validateWorkout(w); err != nil {
		return h.fail("create_workout", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("create_workout", err), nil
	}
	raw, err := up.CreateWorkout(ctx, transform.Workout(w))
	if err != nil {
		return h.fail("create_workout", err), nil
	}
	return result(raw)
}

func (h *handlers) updateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(req, "workoutId")
	if err != nil {
		return h.fail("update_workout", err), nil
	}
	var w models.Workout
	if err := bind(req, &w); err != nil {
		return h.fail("update_workout", err), nil
	}
	if err := validateWorkout(w); err != nil {
		return h.fail("update_workout", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("update_workout", err), nil
	}
	raw, err := up.UpdateWorkout(ctx, id, transform.Workout(w))
	if err != nil {
		return h.fail("update_workout", err), nil
	}
	return result(raw)
}

func (h *handlers) getWorkoutCount(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_workout_count", err), nil
	}
	raw, err := up.WorkoutCount(ctx)
	if err != nil {
		return h.fail("get_workout_count", err), nil
	}
	return result(raw)
}

func (h *handlers) getWorkoutEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	pageSize := req.GetInt("pageSize", eventsDefaultPageSize)
	if err := validate.Pagination(page, pageSize, eventsMaxPageSize); err != nil {
		return h.fail("get_workout_events", err), nil
	}

	since := req.GetString("since", "1970-01-01T00:00:00Z")
	if _, err := validate.Instant("since", since); err != nil {
		return h.fail("get_workout_events", err), nil
	}

	up, err := h.client(ctx)
	if err != nil {
		return h.fail("get_workout_events", err), nil
	}
	raw, err := up.WorkoutEvents(ctx, page, pageSize, since)
	if err != nil {
		return h.fail("get_workout_events", err), nil
	}
	return result(raw)
}
