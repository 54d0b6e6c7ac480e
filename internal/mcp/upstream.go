package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftgate/internal/api"
)

// Upstream abstracts the upstream API for tool handlers. *api.Client is the
// real implementation; tests substitute a fake to exercise handlers without
// a network.
type Upstream interface {
	ListWorkouts(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetWorkout(ctx context.Context, workoutID string) (json.RawMessage, error)
	CreateWorkout(ctx context.Context, body api.WorkoutEnvelope) (json.RawMessage, error)
	UpdateWorkout(ctx context.Context, workoutID string, body api.WorkoutEnvelope) (json.RawMessage, error)
	WorkoutCount(ctx context.Context) (json.RawMessage, error)
	WorkoutEvents(ctx context.Context, page, pageSize int, since string) (json.RawMessage, error)
	ListRoutines(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetRoutine(ctx context.Context, routineID string) (json.RawMessage, error)
	CreateRoutine(ctx context.Context, body api.RoutineEnvelope) (json.RawMessage, error)
	UpdateRoutine(ctx context.Context, routineID string, body api.RoutineEnvelope) (json.RawMessage, error)
	ListExerciseTemplates(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetExerciseTemplate(ctx context.Context, templateID string) (json.RawMessage, error)
	CreateExerciseTemplate(ctx context.Context, body api.ExerciseTemplateEnvelope) (json.RawMessage, error)
	ExerciseHistory(ctx context.Context, templateID string) (json.RawMessage, error)
	ListRoutineFolders(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetRoutineFolder(ctx context.Context, folderID string) (json.RawMessage, error)
	CreateRoutineFolder(ctx context.Context, body api.RoutineFolderEnvelope) (json.RawMessage, error)
}

// Compile-time check: *api.Client satisfies Upstream.
var _ Upstream = (*api.Client)(nil)
