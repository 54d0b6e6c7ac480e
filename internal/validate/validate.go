// Package validate enforces the domain invariants of tool requests before any
// upstream call is made. Every check fails fast: the first violated rule wins
// and is reported alone. Checks run in a stable order per entity — top-level
// fields and structural checks first, then per-element checks in array order,
// then per-set checks in field order — so the reported violation is
// deterministic for a given input.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/claude/liftgate/internal/models"
)

// Error is a domain validation failure: the request shape was fine but a
// business rule was violated. The message describes exactly one violation.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Errorf builds a domain validation error.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Pagination checks listing bounds. Limits differ per operation, so the
// caller supplies the max page size.
func Pagination(page, pageSize, maxPageSize int) error {
	if page < 1 {
		return Errorf("page must be at least 1 (got %d)", page)
	}
	if pageSize < 1 {
		return Errorf("pageSize must be at least 1 (got %d)", pageSize)
	}
	if pageSize > maxPageSize {
		return Errorf("pageSize cannot exceed %d for this operation (got %d)", maxPageSize, pageSize)
	}
	return nil
}

// TimeRange parses start and end as ISO 8601 instants and requires end to be
// strictly after start. The parsed instants are returned for reuse.
func TimeRange(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, Errorf("start %q is not a valid ISO 8601 timestamp", start)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, Errorf("end %q is not a valid ISO 8601 timestamp", end)
	}
	if !e.After(s) {
		return time.Time{}, time.Time{}, Errorf("end time must be after start time")
	}
	return s, e, nil
}

// Instant parses a single ISO 8601 instant.
func Instant(name, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, Errorf("%s %q is not a valid ISO 8601 timestamp", name, value)
	}
	return t, nil
}

// rpeScale is the closed set of valid RPE values. Membership is exact — 6.5
// is invalid even though it sits inside the numeric range.
var rpeScale = []float64{6, 7, 7.5, 8, 8.5, 9, 9.5, 10}

// RPE checks exact membership in the half-step RPE scale.
func RPE(v float64) error {
	for _, allowed := range rpeScale {
		if v == allowed {
			return nil
		}
	}
	return Errorf("rpe must be one of 6, 7, 7.5, 8, 8.5, 9, 9.5, 10 (got %v)", v)
}

func setType(t string) error {
	for _, allowed := range models.SetTypes {
		if t == allowed {
			return nil
		}
	}
	return Errorf("set type %q is not one of %s", t, strings.Join(models.SetTypes, ", "))
}

// WorkoutExercises checks the exercise list of a workout request.
func WorkoutExercises(exercises []models.WorkoutExercise) error {
	if len(exercises) == 0 {
		return Errorf("At least one exercise is required")
	}
	for i, ex := range exercises {
		if strings.TrimSpace(ex.Title) == "" {
			return Errorf("exercise %d: title is required", i+1)
		}
		if strings.TrimSpace(ex.TemplateID) == "" {
			return Errorf("exercise %d: templateId is required", i+1)
		}
		if len(ex.Sets) == 0 {
			return Errorf("exercise %d: at least one set is required", i+1)
		}
		for j, set := range ex.Sets {
			if err := setType(set.Type); err != nil {
				return Errorf("exercise %d set %d: %s", i+1, j+1, err.Error())
			}
			if set.RPE != nil {
				if err := RPE(*set.RPE); err != nil {
					return Errorf("exercise %d set %d: %s", i+1, j+1, err.Error())
				}
			}
			if set.WeightKg != nil && *set.WeightKg < 0 {
				return Errorf("exercise %d set %d: weightKg cannot be negative", i+1, j+1)
			}
			if set.Reps != nil && *set.Reps < 0 {
				return Errorf("exercise %d set %d: reps cannot be negative", i+1, j+1)
			}
			if set.DistanceMeters != nil && *set.DistanceMeters < 0 {
				return Errorf("exercise %d set %d: distanceMeters cannot be negative", i+1, j+1)
			}
			if set.DurationSeconds != nil && *set.DurationSeconds < 0 {
				return Errorf("exercise %d set %d: durationSeconds cannot be negative", i+1, j+1)
			}
			if set.CustomMetric != nil && *set.CustomMetric < 0 {
				return Errorf("exercise %d set %d: customMetric cannot be negative", i+1, j+1)
			}
		}
	}
	return nil
}

// RoutineExercises checks the exercise list of a routine request. Routine
// exercises carry no display title; their sets use rep ranges instead of RPE.
func RoutineExercises(exercises []models.RoutineExercise) error {
	if len(exercises) == 0 {
		return Errorf("At least one exercise is required")
	}
	for i, ex := range exercises {
		if strings.TrimSpace(ex.TemplateID) == "" {
			return Errorf("exercise %d: templateId is required", i+1)
		}
		if ex.RestSeconds != nil && *ex.RestSeconds < 0 {
			return Errorf("exercise %d: restSeconds cannot be negative", i+1)
		}
		if len(ex.Sets) == 0 {
			return Errorf("exercise %d: at least one set is required", i+1)
		}
		for j, set := range ex.Sets {
			if err := setType(set.Type); err != nil {
				return Errorf("exercise %d set %d: %s", i+1, j+1, err.Error())
			}
			if set.WeightKg != nil && *set.WeightKg < 0 {
				return Errorf("exercise %d set %d: weightKg cannot be negative", i+1, j+1)
			}
			if set.Reps != nil && *set.Reps < 0 {
				return Errorf("exercise %d set %d: reps cannot be negative", i+1, j+1)
			}
			if set.DistanceMeters != nil && *set.DistanceMeters < 0 {
				return Errorf("exercise %d set %d: distanceMeters cannot be negative", i+1, j+1)
			}
			if set.DurationSeconds != nil && *set.DurationSeconds < 0 {
				return Errorf("exercise %d set %d: durationSeconds cannot be negative", i+1, j+1)
			}
			if set.CustomMetric != nil && *set.CustomMetric < 0 {
				return Errorf("exercise %d set %d: customMetric cannot be negative", i+1, j+1)
			}
			if rr := set.RepRange; rr != nil {
				if rr.Start != nil && *rr.Start < 0 {
					return Errorf("exercise %d set %d: repRange start cannot be negative", i+1, j+1)
				}
				if rr.End != nil && *rr.End < 0 {
					return Errorf("exercise %d set %d: repRange end cannot be negative", i+1, j+1)
				}
				if rr.Start != nil && rr.End != nil && *rr.Start > *rr.End {
					return Errorf("exercise %d set %d: repRange start cannot be greater than end", i+1, j+1)
				}
			}
		}
	}
	return nil
}

// ExerciseTemplate checks a custom exercise template request. Enum membership
// of the tags is enforced by the tool schema; here they only need to be
// present.
func ExerciseTemplate(t models.ExerciseTemplate) error {
	if strings.TrimSpace(t.Title) == "" {
		return Errorf("title is required")
	}
	if t.Type == "" {
		return Errorf("type is required")
	}
	if t.Equipment == "" {
		return Errorf("equipment is required")
	}
	if t.PrimaryMuscleGroup == "" {
		return Errorf("primaryMuscleGroup is required")
	}
	return nil
}

// Title checks that a title is non-empty after trimming whitespace.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return Errorf("title is required")
	}
	return nil
}
