// Package transform converts validated ergonomic requests into the exact
// shapes the upstream API accepts. Three rules apply uniformly: the payload
// is wrapped one level under the endpoint's envelope key, display-only fields
// (the exercise title) are stripped, and optional fields that are nil or
// whitespace-only are omitted from the wire entirely. Transformation is a
// fixed point: feeding a transformed-and-read-back entity through again
// yields the same payload.
package transform

import (
	"strings"

	"github.com/claude/liftgate/internal/api"
	"github.com/claude/liftgate/internal/models"
)

// optString normalizes an optional string: empty and whitespace-only values
// become absent.
func optString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Workout builds the wire envelope for a workout create or update.
func Workout(w models.Workout) api.WorkoutEnvelope {
	exercises := make([]api.ExercisePayload, len(w.Exercises))
	for i, ex := range w.Exercises {
		sets := make([]api.SetPayload, len(ex.Sets))
		for j, set := range ex.Sets {
			sets[j] = api.SetPayload{
				Type:            set.Type,
				WeightKg:        set.WeightKg,
				Reps:            set.Reps,
				DistanceMeters:  set.DistanceMeters,
				DurationSeconds: set.DurationSeconds,
				CustomMetric:    set.CustomMetric,
				RPE:             set.RPE,
			}
		}
		// The display title is not carried: upstream identifies the exercise
		// by template id and position alone.
		exercises[i] = api.ExercisePayload{
			ExerciseTemplateID: ex.TemplateID,
			SupersetID:         ex.SupersetID,
			Notes:              optString(ex.Notes),
			Sets:               sets,
		}
	}

	return api.WorkoutEnvelope{Workout: api.WorkoutPayload{
		Title:       w.Title,
		Description: optString(w.Description),
		StartTime:   w.Start,
		EndTime:     w.End,
		RoutineID:   optString(w.RoutineID),
		IsPrivate:   w.IsPrivate,
		Exercises:   exercises,
	}}
}

// Routine builds the wire envelope for a routine. includeFolder is true only
// for creation: updates must not resend folder placement, so the folder id is
// dropped there even when the caller echoed it back.
func Routine(r models.Routine, includeFolder bool) api.RoutineEnvelope {
	exercises := make([]api.RoutineExercisePayload, len(r.Exercises))
	for i, ex := range r.Exercises {
		sets := make([]api.RoutineSetPayload, len(ex.Sets))
		for j, set := range ex.Sets {
			var repRange *api.RepRangePayload
			if set.RepRange != nil {
				repRange = &api.RepRangePayload{Start: set.RepRange.Start, End: set.RepRange.End}
			}
			sets[j] = api.RoutineSetPayload{
				Type:            set.Type,
				WeightKg:        set.WeightKg,
				Reps:            set.Reps,
				DistanceMeters:  set.DistanceMeters,
				DurationSeconds: set.DurationSeconds,
				CustomMetric:    set.CustomMetric,
				RepRange:        repRange,
			}
		}
		exercises[i] = api.RoutineExercisePayload{
			ExerciseTemplateID: ex.TemplateID,
			SupersetID:         ex.SupersetID,
			RestSeconds:        ex.RestSeconds,
			Notes:              optString(ex.Notes),
			Sets:               sets,
		}
	}

	payload := api.RoutinePayload{
		Title:     r.Title,
		Notes:     optString(r.Notes),
		Exercises: exercises,
	}
	if includeFolder {
		payload.FolderID = r.FolderID
	}
	return api.RoutineEnvelope{Routine: payload}
}

// ExerciseTemplate builds the wire envelope for a custom exercise.
func ExerciseTemplate(t models.ExerciseTemplate) api.ExerciseTemplateEnvelope {
	return api.ExerciseTemplateEnvelope{Exercise: api.ExerciseTemplatePayload{
		Title:                 t.Title,
		ExerciseType:          t.Type,
		Equipment:             t.Equipment,
		PrimaryMuscleGroup:    t.PrimaryMuscleGroup,
		SecondaryMuscleGroups: t.SecondaryMuscleGroups,
	}}
}

// RoutineFolder builds the wire envelope for a routine folder.
func RoutineFolder(f models.RoutineFolder) api.RoutineFolderEnvelope {
	return api.RoutineFolderEnvelope{RoutineFolder: api.RoutineFolderPayload{Title: f.Title}}
}
