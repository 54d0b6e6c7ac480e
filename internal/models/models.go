// Package models defines the ergonomic request shapes accepted by the MCP
// tools. These are richer than the upstream wire shapes (a workout exercise
// carries a display title that is never sent upstream) and use camelCase JSON
// keys. Decoding into these structs drops any extra fields echoed back from a
// previous read (server-assigned ids, positional indexes), so a
// read-modify-write round trip is always safe.
package models

// Set types accepted by the upstream API.
const (
	SetTypeWarmup  = "warmup"
	SetTypeNormal  = "normal"
	SetTypeFailure = "failure"
	SetTypeDropset = "dropset"
)

// SetTypes lists the closed set of valid set type tags, in display order.
var SetTypes = []string{SetTypeWarmup, SetTypeNormal, SetTypeFailure, SetTypeDropset}

// Workout is a workout create/update request.
type Workout struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	RoutineID   string            `json:"routineId,omitempty"`
	IsPrivate   bool              `json:"isPrivate,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is one exercise within a workout. Title is display-only.
// Ordering is positional: the element's index in the slice is its position
// in the workout, never an explicit field.
type WorkoutExercise struct {
	Title      string       `json:"title"`
	TemplateID string       `json:"templateId"`
	SupersetID *int         `json:"supersetId,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	Sets       []WorkoutSet `json:"sets"`
}

// WorkoutSet is one set within a workout exercise. All metrics are optional;
// RPE is a subjective intensity score on a fixed half-step scale from 6 to 10.
type WorkoutSet struct {
	Type            string   `json:"type"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DistanceMeters  *float64 `json:"distanceMeters,omitempty"`
	DurationSeconds *int     `json:"durationSeconds,omitempty"`
	CustomMetric    *float64 `json:"customMetric,omitempty"`
	RPE             *float64 `json:"rpe,omitempty"`
}

// Routine is a routine create/update request. FolderID is only meaningful on
// creation; updates never resend folder placement.
type Routine struct {
	Title     string            `json:"title"`
	Notes     string            `json:"notes,omitempty"`
	FolderID  *int              `json:"folderId,omitempty"`
	Exercises []RoutineExercise `json:"exercises"`
}

// RoutineExercise is one exercise within a routine. Unlike workout exercises
// there is no display title.
type RoutineExercise struct {
	TemplateID  string       `json:"templateId"`
	SupersetID  *int         `json:"supersetId,omitempty"`
	RestSeconds *int         `json:"restSeconds,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Sets        []RoutineSet `json:"sets"`
}

// RoutineSet is one planned set within a routine exercise. It carries an
// optional rep range target instead of an RPE.
type RoutineSet struct {
	Type            string    `json:"type"`
	WeightKg        *float64  `json:"weightKg,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	DistanceMeters  *float64  `json:"distanceMeters,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	CustomMetric    *float64  `json:"customMetric,omitempty"`
	RepRange        *RepRange `json:"repRange,omitempty"`
}

// RepRange is an optional repetition-count target for a routine set.
type RepRange struct {
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`
}

// ExerciseTemplate is a custom exercise template create request.
type ExerciseTemplate struct {
	Title                 string   `json:"title"`
	Type                  string   `json:"type"`
	Equipment             string   `json:"equipment"`
	PrimaryMuscleGroup    string   `json:"primaryMuscleGroup"`
	SecondaryMuscleGroups []string `json:"secondaryMuscleGroups,omitempty"`
}

// RoutineFolder is a routine folder create request.
type RoutineFolder struct {
	Title string `json:"title"`
}
