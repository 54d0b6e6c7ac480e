package transform

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/claude/liftgate/internal/models"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func marshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// TestWorkoutWireShape verifies the full ergonomic-to-wire conversion:
// envelope wrapping, snake_case keys, display-title stripping.
func TestWorkoutWireShape(t *testing.T) {
	w := models.Workout{
		Title: "Leg Day",
		Start: "2024-01-15T10:00:00Z",
		End:   "2024-01-15T11:00:00Z",
		Exercises: []models.WorkoutExercise{{
			Title:      "Squat",
			TemplateID: "abc",
			Sets:       []models.WorkoutSet{{Type: "normal", WeightKg: fp(100), Reps: ip(10)}},
		}},
	}

	got := marshal(t, Workout(w))
	want := `{"workout":{"title":"Leg Day","start_time":"2024-01-15T10:00:00Z","end_time":"2024-01-15T11:00:00Z","is_private":false,"exercises":[{"exercise_template_id":"abc","sets":[{"type":"normal","weight_kg":100,"reps":10}]}]}}`
	if got != want {
		t.Errorf("wire payload =\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(got, "Squat") {
		t.Error("display title leaked into wire payload")
	}
}

// TestEmptyOptionalsOmitted verifies that empty and whitespace-only optional
// strings are omitted from the wire, not sent as "" or null.
func TestEmptyOptionalsOmitted(t *testing.T) {
	w := models.Workout{
		Title:       "Morning",
		Description: "   ",
		Start:       "2024-01-15T10:00:00Z",
		End:         "2024-01-15T11:00:00Z",
		RoutineID:   "",
		Exercises: []models.WorkoutExercise{{
			Title:      "Bench",
			TemplateID: "tmpl",
			Notes:      "",
			Sets:       []models.WorkoutSet{{Type: "normal"}},
		}},
	}

	got := marshal(t, Workout(w))
	for _, key := range []string{"description", "routine_id", "notes", "null"} {
		if strings.Contains(got, key) {
			t.Errorf("wire payload contains %q, want it omitted: %s", key, got)
		}
	}
}

// TestTransformIdempotent verifies the round-trip fixed point: decoding a
// payload that echoes server-added fields (id, index) into the ergonomic
// shape and transforming it twice yields identical wire output with none of
// the echoed fields.
func TestTransformIdempotent(t *testing.T) {
	// A workout read back from upstream, with server-added fields the
	// ergonomic shape does not know about.
	echoed := `{
		"id": "server-id-1",
		"title": "Leg Day",
		"start": "2024-01-15T10:00:00Z",
		"end": "2024-01-15T11:00:00Z",
		"exercises": [{
			"index": 0,
			"title": "Squat",
			"templateId": "abc",
			"sets": [{"index": 0, "type": "normal", "weightKg": 100}]
		}]
	}`

	var w models.Workout
	if err := json.Unmarshal([]byte(echoed), &w); err != nil {
		t.Fatal(err)
	}

	first := marshal(t, Workout(w))
	for _, leaked := range []string{"server-id-1", "index"} {
		if strings.Contains(first, leaked) {
			t.Errorf("wire payload contains echoed field %q: %s", leaked, first)
		}
	}

	// Re-decode the wire workout body back through the ergonomic shape and
	// transform again: output must be byte-identical.
	var again models.Workout
	if err := json.Unmarshal([]byte(echoed), &again); err != nil {
		t.Fatal(err)
	}
	second := marshal(t, Workout(again))
	if first != second {
		t.Errorf("transform not stable:\nfirst  %s\nsecond %s", first, second)
	}
}

// TestRoutineFolderInclusion verifies folder_id is sent on create only.
func TestRoutineFolderInclusion(t *testing.T) {
	r := models.Routine{
		Title:    "Push Day",
		FolderID: ip(42),
		Exercises: []models.RoutineExercise{{
			TemplateID: "abc",
			Sets:       []models.RoutineSet{{Type: "normal"}},
		}},
	}

	created := marshal(t, Routine(r, true))
	if !strings.Contains(created, `"folder_id":42`) {
		t.Errorf("create payload missing folder_id: %s", created)
	}

	updated := marshal(t, Routine(r, false))
	if strings.Contains(updated, "folder_id") {
		t.Errorf("update payload must not resend folder_id: %s", updated)
	}
}

// TestRoutineRepRange verifies rep ranges survive transformation and rest
// seconds are carried.
func TestRoutineRepRange(t *testing.T) {
	r := models.Routine{
		Title: "Hypertrophy A",
		Exercises: []models.RoutineExercise{{
			TemplateID:  "abc",
			RestSeconds: ip(90),
			Sets: []models.RoutineSet{{
				Type:     "normal",
				WeightKg: fp(60),
				RepRange: &models.RepRange{Start: ip(8), End: ip(12)},
			}},
		}},
	}

	got := marshal(t, Routine(r, false))
	if !strings.Contains(got, `"rep_range":{"start":8,"end":12}`) {
		t.Errorf("payload missing rep_range: %s", got)
	}
	if !strings.Contains(got, `"rest_seconds":90`) {
		t.Errorf("payload missing rest_seconds: %s", got)
	}
}

// TestExerciseTemplateEnvelope verifies the exercise envelope key and tag
// renaming (type becomes exercise_type on the wire).
func TestExerciseTemplateEnvelope(t *testing.T) {
	got := marshal(t, ExerciseTemplate(models.ExerciseTemplate{
		Title:                 "Cable Fly",
		Type:                  "weight_reps",
		Equipment:             "machine",
		PrimaryMuscleGroup:    "chest",
		SecondaryMuscleGroups: []string{"shoulders"},
	}))
	want := `{"exercise":{"title":"Cable Fly","exercise_type":"weight_reps","equipment":"machine","primary_muscle_group":"chest","secondary_muscle_groups":["shoulders"]}}`
	if got != want {
		t.Errorf("wire payload =\n%s\nwant\n%s", got, want)
	}
}

// TestRoutineFolderEnvelope verifies the routine_folder envelope key.
func TestRoutineFolderEnvelope(t *testing.T) {
	got := marshal(t, RoutineFolder(models.RoutineFolder{Title: "Strength Block"}))
	if got != `{"routine_folder":{"title":"Strength Block"}}` {
		t.Errorf("wire payload = %s", got)
	}
}
