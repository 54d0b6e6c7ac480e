// Package errmsg converts every failure the gateway can produce — upstream
// rejection, schema mismatch, domain validation, or anything unexpected —
// into one uniform user-facing message with three sections: what went wrong,
// contextual details, and how to fix it. The tool layer wraps the text in a
// single error-flagged result shape, so callers never branch on failure
// origin.
package errmsg

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/liftgate/internal/api"
	"github.com/claude/liftgate/internal/validate"
)

// maxRawDetail bounds how much of an unparseable upstream body is echoed.
const maxRawDetail = 500

// Format renders any error as the uniform three-section message.
// Classification order: upstream rejection, schema failure, domain
// validation failure, then everything else verbatim.
func Format(err error) string {
	var apiErr *api.Error
	var schemaErr *validate.SchemaError
	var valErr *validate.Error
	switch {
	case errors.As(err, &apiErr):
		return upstream(apiErr)
	case errors.As(err, &schemaErr):
		return schema(schemaErr)
	case errors.As(err, &valErr):
		return render("Validation error", []string{valErr.Error()}, domainFixes(valErr.Error()))
	case err != nil:
		return render(err.Error(), nil, nil)
	default:
		return render("An unknown error occurred", nil, nil)
	}
}

// FormatPanic renders a recovered panic value. Non-error values get the
// generic unknown-error message.
func FormatPanic(v any) string {
	if err, ok := v.(error); ok {
		return Format(err)
	}
	return render("An unknown error occurred", nil, nil)
}

func render(headline string, details, fixes []string) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(headline)
	if len(details) > 0 {
		b.WriteString("\n\nDetails:\n")
		for _, d := range details {
			b.WriteString(d)
			b.WriteString("\n")
		}
	}
	if len(fixes) > 0 {
		b.WriteString("\n\nHow to fix:\n")
		for _, f := range fixes {
			b.WriteString("- ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// --- Upstream failures ---

func upstream(e *api.Error) string {
	return render(statusHeadline(e.StatusCode), bodyDetails(e.Body), statusFixes(e.StatusCode))
}

func statusHeadline(status int) string {
	switch status {
	case 400:
		return "Invalid request: the upstream API rejected the request parameters."
	case 401:
		return "Unauthorized: the upstream API rejected your API key."
	case 403:
		return "Forbidden: the request was not allowed (account limit reached or access denied)."
	case 404:
		return "Not found: the requested resource does not exist."
	case 429:
		return "Rate limited: too many requests to the upstream API."
	case 500, 502, 503:
		return "The upstream service is temporarily unavailable."
	default:
		return fmt.Sprintf("Unexpected upstream error (HTTP %d).", status)
	}
}

// bodyDetails extracts structured detail from an upstream response body: a
// flat JSON string, an error field, a message field, or an errors array of
// {field, message} pairs rendered as bullets. Unparseable bodies are echoed
// raw, truncated.
func bodyDetails(body string) []string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil
	}

	var flat string
	if err := json.Unmarshal([]byte(trimmed), &flat); err == nil {
		return []string{flat}
	}

	var obj struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		var details []string
		if obj.Error != "" {
			details = append(details, obj.Error)
		}
		if obj.Message != "" {
			details = append(details, obj.Message)
		}
		for _, fe := range obj.Errors {
			if fe.Field != "" {
				details = append(details, fmt.Sprintf("- %s: %s", fe.Field, fe.Message))
			} else {
				details = append(details, "- "+fe.Message)
			}
		}
		if len(details) > 0 {
			return details
		}
		return nil
	}

	if len(trimmed) > maxRawDetail {
		trimmed = trimmed[:maxRawDetail] + "..."
	}
	return []string{trimmed}
}

func statusFixes(status int) []string {
	switch status {
	case 400:
		return []string{
			"Check that all required fields are present.",
			"Verify date fields are ISO 8601 timestamps.",
			"Verify enum values (set types, muscle groups, equipment) are spelled exactly as documented.",
		}
	case 401:
		return []string{
			"Verify an API key is configured for this account.",
			"If the key was rotated, run key setup again to store the new one.",
		}
	case 403:
		return []string{
			"Check account limits (for example the custom exercise cap).",
			"Verify the configured key owns the resource you are modifying.",
		}
	case 404:
		return []string{
			"Double-check the identifier in the request.",
			"Use the matching list tool to discover valid identifiers.",
		}
	case 429:
		return []string{
			"Wait before retrying.",
			"Reduce the frequency of requests.",
		}
	case 500, 502, 503:
		return []string{
			"Retry in a few minutes.",
			"If the problem persists, check the upstream service status.",
		}
	default:
		return []string{
			"Retry the request.",
			"If the problem persists, report the status code above.",
		}
	}
}

// --- Schema failures ---

// schema renders shape-level issues grouped by field path: root-level issues
// as direct bullets, nested paths as a bullet with indented sub-bullets per
// violated rule.
func schema(e *validate.SchemaError) string {
	byPath := make(map[string][]string)
	var order []string
	for _, issue := range e.Issues {
		if _, seen := byPath[issue.Path]; !seen {
			order = append(order, issue.Path)
		}
		byPath[issue.Path] = append(byPath[issue.Path], issue.Message)
	}

	var details []string
	for _, path := range order {
		if path == "" {
			for _, msg := range byPath[path] {
				details = append(details, "- "+msg)
			}
			continue
		}
		details = append(details, "- "+path+":")
		for _, msg := range byPath[path] {
			details = append(details, "  - "+msg)
		}
	}

	fixes := []string{
		"Check that all required fields are present.",
		"Check field types (numbers vs strings, arrays vs objects).",
		"Check enum fields against their documented values.",
	}
	return render("Schema validation error", details, fixes)
}

// --- Domain validation failures ---

// domainFixes selects a remediation checklist by matching the violation
// message against known categories. More specific patterns are checked
// first; unmatched messages get a generic checklist.
func domainFixes(msg string) []string {
	switch {
	case strings.Contains(msg, "page must"):
		return []string{"Use a page number of 1 or greater."}
	case strings.Contains(msg, "pageSize"):
		return []string{"Use a pageSize of at least 1 and no more than the operation's maximum (see the tool description)."}
	case strings.Contains(msg, "ISO 8601"):
		return []string{"Format timestamps as ISO 8601 instants, for example 2024-01-15T10:00:00Z."}
	case strings.Contains(msg, "must be after"):
		return []string{"Make sure the end timestamp is later than the start timestamp."}
	case strings.Contains(msg, "rpe"):
		return []string{"Use one of the allowed RPE values: 6, 7, 7.5, 8, 8.5, 9, 9.5, 10."}
	case strings.Contains(msg, "At least one exercise"):
		return []string{"Add at least one exercise to the request."}
	case strings.Contains(msg, "at least one set"):
		return []string{"Add at least one set to every exercise."}
	case strings.Contains(msg, "cannot be negative"):
		return []string{"Use zero or a positive value for weights, reps, distances, durations and custom metrics."}
	case strings.Contains(msg, "repRange"):
		return []string{"Make sure repRange start and end are non-negative and start is not greater than end."}
	case strings.Contains(msg, "title is required"):
		return []string{"Provide a non-empty title."}
	case strings.Contains(msg, "is required"):
		return []string{"Fill in the missing field named in the message."}
	default:
		return []string{"Review the request against the tool description and try again."}
	}
}
