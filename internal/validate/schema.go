package validate

import (
	"fmt"
	"strings"
)

// FieldIssue is one schema-level problem at a field path. Path is empty for
// root-level issues; nested paths use dotted/bracketed form
// ("exercises[0].sets[1].weightKg").
type FieldIssue struct {
	Path    string
	Message string
}

// SchemaError is a shape-level failure: the raw arguments could not be
// decoded into the expected request type. Unlike Error it may carry several
// issues, grouped by field path when rendered.
type SchemaError struct {
	Issues []FieldIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}
