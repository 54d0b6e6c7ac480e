package api

// Wire payload types for write operations. Each request body is nested one
// level under the envelope key its endpoint expects. Optional fields are
// pointers with omitempty: an absent field is omitted entirely, never sent as
// null — the upstream API rejects empty strings for some fields (notes) but
// tolerates omission. Exercise and set ordering is positional; there is no
// explicit index field on the wire.

// WorkoutEnvelope wraps a workout payload as {"workout": {...}}.
type WorkoutEnvelope struct {
	Workout WorkoutPayload `json:"workout"`
}

type WorkoutPayload struct {
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	RoutineID   *string           `json:"routine_id,omitempty"`
	IsPrivate   bool              `json:"is_private"`
	Exercises   []ExercisePayload `json:"exercises"`
}

type ExercisePayload struct {
	ExerciseTemplateID string       `json:"exercise_template_id"`
	SupersetID         *int         `json:"superset_id,omitempty"`
	Notes              *string      `json:"notes,omitempty"`
	Sets               []SetPayload `json:"sets"`
}

type SetPayload struct {
	Type            string   `json:"type"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
	CustomMetric    *float64 `json:"custom_metric,omitempty"`
	RPE             *float64 `json:"rpe,omitempty"`
}

// RoutineEnvelope wraps a routine payload as {"routine": {...}}.
type RoutineEnvelope struct {
	Routine RoutinePayload `json:"routine"`
}

type RoutinePayload struct {
	Title     string                   `json:"title"`
	Notes     *string                  `json:"notes,omitempty"`
	FolderID  *int                     `json:"folder_id,omitempty"`
	Exercises []RoutineExercisePayload `json:"exercises"`
}

type RoutineExercisePayload struct {
	ExerciseTemplateID string              `json:"exercise_template_id"`
	SupersetID         *int                `json:"superset_id,omitempty"`
	RestSeconds        *int                `json:"rest_seconds,omitempty"`
	Notes              *string             `json:"notes,omitempty"`
	Sets               []RoutineSetPayload `json:"sets"`
}

type RoutineSetPayload struct {
	Type            string           `json:"type"`
	WeightKg        *float64         `json:"weight_kg,omitempty"`
	Reps            *int             `json:"reps,omitempty"`
	DistanceMeters  *float64         `json:"distance_meters,omitempty"`
	DurationSeconds *int             `json:"duration_seconds,omitempty"`
	CustomMetric    *float64         `json:"custom_metric,omitempty"`
	RepRange        *RepRangePayload `json:"rep_range,omitempty"`
}

type RepRangePayload struct {
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`
}

// ExerciseTemplateEnvelope wraps a custom exercise payload as
// {"exercise": {...}}.
type ExerciseTemplateEnvelope struct {
	Exercise ExerciseTemplatePayload `json:"exercise"`
}

type ExerciseTemplatePayload struct {
	Title                 string   `json:"title"`
	ExerciseType          string   `json:"exercise_type"`
	Equipment             string   `json:"equipment"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups,omitempty"`
}

// RoutineFolderEnvelope wraps a folder payload as {"routine_folder": {...}}.
type RoutineFolderEnvelope struct {
	RoutineFolder RoutineFolderPayload `json:"routine_folder"`
}

type RoutineFolderPayload struct {
	Title string `json:"title"`
}
