package errmsg

import (
	"errors"
	"strings"
	"testing"

	"github.com/claude/liftgate/internal/api"
	"github.com/claude/liftgate/internal/validate"
)

// TestUniformShape verifies that three failures of different origin — an
// upstream 404, a domain validation error, and a plain error — all render
// through the same three-section shape.
func TestUniformShape(t *testing.T) {
	messages := []string{
		Format(&api.Error{StatusCode: 404, Body: `{"error":"workout not found"}`}),
		Format(validate.Errorf("At least one exercise is required")),
		Format(errors.New("connection reset by peer")),
	}
	for _, msg := range messages {
		if !strings.HasPrefix(msg, "Error: ") {
			t.Errorf("message does not start with the uniform headline prefix: %q", msg)
		}
	}
	// The first two carry remediation; the unclassified error carries none.
	for _, msg := range messages[:2] {
		if !strings.Contains(msg, "How to fix:") {
			t.Errorf("classified failure missing remediation section: %q", msg)
		}
	}
	if strings.Contains(messages[2], "How to fix:") {
		t.Errorf("unclassified error should have no checklist: %q", messages[2])
	}
}

// TestUpstream401 verifies the 401 headline names the credential and the
// checklist references key configuration.
func TestUpstream401(t *testing.T) {
	msg := Format(&api.Error{StatusCode: 401, Body: ""})
	if !strings.Contains(msg, "Unauthorized") {
		t.Errorf("401 headline missing Unauthorized: %q", msg)
	}
	if !strings.Contains(msg, "API key is configured") {
		t.Errorf("401 remediation missing key configuration hint: %q", msg)
	}
}

// TestUpstreamStatusHeadlines spot-checks the status-to-headline mapping.
func TestUpstreamStatusHeadlines(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{400, "Invalid request"},
		{403, "Forbidden"},
		{404, "Not found"},
		{429, "Rate limited"},
		{500, "temporarily unavailable"},
		{502, "temporarily unavailable"},
		{503, "temporarily unavailable"},
		{418, "Unexpected upstream error (HTTP 418)"},
	}
	for _, tc := range cases {
		msg := Format(&api.Error{StatusCode: tc.status})
		if !strings.Contains(msg, tc.want) {
			t.Errorf("status %d: message %q missing %q", tc.status, msg, tc.want)
		}
	}
}

// TestUpstreamBodyDetails verifies detail extraction from the four body
// shapes the upstream is known to produce.
func TestUpstreamBodyDetails(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{"flat string", `"quota exhausted"`, []string{"quota exhausted"}},
		{"error field", `{"error":"routine not found"}`, []string{"routine not found"}},
		{"message field", `{"message":"try again later"}`, []string{"try again later"}},
		{"errors array", `{"errors":[{"field":"title","message":"too long"},{"field":"start_time","message":"invalid"}]}`,
			[]string{"- title: too long", "- start_time: invalid"}},
		{"unparseable", `<html>bad gateway</html>`, []string{"<html>bad gateway</html>"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := Format(&api.Error{StatusCode: 400, Body: tc.body})
			for _, want := range tc.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing detail %q", msg, want)
				}
			}
		})
	}
}

// TestDomainRemediation verifies keyword-matched checklists for the known
// validation categories.
func TestDomainRemediation(t *testing.T) {
	cases := []struct {
		name    string
		message string
		wantFix string
	}{
		{"page", "page must be at least 1 (got 0)", "page number of 1 or greater"},
		{"pageSize", "pageSize cannot exceed 10 for this operation (got 50)", "no more than the operation's maximum"},
		{"date format", `start "yesterday" is not a valid ISO 8601 timestamp`, "2024-01-15T10:00:00Z"},
		{"date order", "end time must be after start time", "later than the start"},
		{"rpe", "rpe must be one of 6, 7, 7.5, 8, 8.5, 9, 9.5, 10 (got 6.5)", "allowed RPE values"},
		{"empty exercises", "At least one exercise is required", "at least one exercise"},
		{"empty sets", "exercise 2: at least one set is required", "at least one set to every exercise"},
		{"negative", "exercise 1 set 1: weightKg cannot be negative", "zero or a positive value"},
		{"rep range", "exercise 1 set 2: repRange start cannot be greater than end", "start is not greater than end"},
		{"title", "title is required", "non-empty title"},
		{"field missing", "exercise 3: templateId is required", "missing field"},
		{"unmatched", "something odd happened", "Review the request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := Format(validate.Errorf("%s", tc.message))
			if !strings.Contains(msg, "Validation error") {
				t.Errorf("headline missing: %q", msg)
			}
			if !strings.Contains(msg, tc.message) {
				t.Errorf("raw message not carried in details: %q", msg)
			}
			if !strings.Contains(msg, tc.wantFix) {
				t.Errorf("message %q missing remediation %q", msg, tc.wantFix)
			}
		})
	}
}

// TestSchemaGrouping verifies schema issues are grouped by field path with
// root issues listed directly and nested paths carrying sub-bullets.
func TestSchemaGrouping(t *testing.T) {
	err := &validate.SchemaError{Issues: []validate.FieldIssue{
		{Path: "", Message: "title is required"},
		{Path: "exercises[0].sets[1]", Message: "expected object"},
		{Path: "exercises[0].sets[1]", Message: "type must be a string"},
	}}
	msg := Format(err)
	if !strings.Contains(msg, "Schema validation error") {
		t.Errorf("headline missing: %q", msg)
	}
	if !strings.Contains(msg, "- title is required") {
		t.Errorf("root issue missing: %q", msg)
	}
	if !strings.Contains(msg, "- exercises[0].sets[1]:") {
		t.Errorf("path bullet missing: %q", msg)
	}
	if !strings.Contains(msg, "  - expected object") || !strings.Contains(msg, "  - type must be a string") {
		t.Errorf("indented sub-bullets missing: %q", msg)
	}
}

// TestFormatPanic verifies recovered panic values: errors format normally,
// anything else gets the generic unknown-error message.
func TestFormatPanic(t *testing.T) {
	if msg := FormatPanic(errors.New("boom")); !strings.Contains(msg, "boom") {
		t.Errorf("panic with error value lost its message: %q", msg)
	}
	if msg := FormatPanic("raw string panic"); !strings.Contains(msg, "unknown error occurred") {
		t.Errorf("non-error panic should be the generic message: %q", msg)
	}
	if msg := FormatPanic(nil); !strings.Contains(msg, "unknown error occurred") {
		t.Errorf("nil panic value should be the generic message: %q", msg)
	}
}

// TestWrappedClassification verifies errors.As unwrapping: a wrapped
// *api.Error still classifies as an upstream failure.
func TestWrappedClassification(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &api.Error{StatusCode: 429})
	msg := Format(wrapped)
	if !strings.Contains(msg, "Rate limited") {
		t.Errorf("wrapped upstream error not classified: %q", msg)
	}
}
