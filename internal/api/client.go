// Package api is the HTTP client for the upstream fitness-tracking REST API.
// Every request carries the caller's API key in the api-key header; non-2xx
// responses surface as *Error with the status code and raw body preserved so
// the error formatter can extract structured detail. Successful response
// bodies are passed through as raw JSON — the gateway never reshapes reads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Error is an upstream rejection: the network round trip completed but the
// API answered with a non-2xx status.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream API returned %d: %s", e.StatusCode, e.Body)
}

// Client issues requests against the upstream API on behalf of one caller.
// Clients are cheap to construct; the gateway builds one per tool invocation
// with that caller's key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL and per-caller API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s body: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func pageQuery(page, pageSize int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("pageSize", strconv.Itoa(pageSize))
	return v
}

// --- Workouts ---

func (c *Client) ListWorkouts(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.get(ctx, "/v1/workouts", pageQuery(page, pageSize))
}

func (c *Client) GetWorkout(ctx context.Context, workoutID string) (json.RawMessage, error) {
	return c.get(ctx, "/v1/workouts/"+url.PathEscape(workoutID), nil)
}

func (c *Client) CreateWorkout(ctx context.Context, body WorkoutEnvelope) (json.RawMessage, error) {
	return c.post(ctx, "/v1/workouts", body)
}

func (c *Client) UpdateWorkout(ctx context.Context, workoutID string, body WorkoutEnvelope) (json.RawMessage, error) {
	return c.put(ctx, "/v1/workouts/"+url.PathEscape(workoutID), body)
}

func (c *Client) WorkoutCount(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/v1/workouts/count", nil)
}

// WorkoutEvents lists workout change events (updates and deletes) since the
// given instant, RFC 3339 formatted.
func (c *Client) WorkoutEvents(ctx context.Context, page, pageSize int, since string) (json.RawMessage, error) {
	q := pageQuery(page, pageSize)
	q.Set("since", since)
	return c.get(ctx, "/v1/workouts/events", q)
}

// --- Routines ---

func (c *Client) ListRoutines(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.get(ctx, "/v1/routines", pageQuery(page, pageSize))
}

// GetRoutine reads a single routine. Unlike the other single-entity reads the
// upstream wraps this response as {"routine": {...}}; it is passed through
// unchanged.
func (c *Client) GetRoutine(ctx context.Context, routineID string) (json.RawMessage, error) {
	return c.get(ctx, "/v1/routines/"+url.PathEscape(routineID), nil)
}

func (c *Client) CreateRoutine(ctx context.Context, body RoutineEnvelope) (json.RawMessage, error) {
	return c.post(ctx, "/v1/routines", body)
}

func (c *Client) UpdateRoutine(ctx context.Context, routineID string, body RoutineEnvelope) (json.RawMessage, error) {
	return c.put(ctx, "/v1/routines/"+url.PathEscape(routineID), body)
}

// --- Exercise templates ---

func (c *Client) ListExerciseTemplates(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.get(ctx, "/v1/exercise_templates", pageQuery(page, pageSize))
}

func (c *Client) GetExerciseTemplate(ctx context.Context, templateID string) (json.RawMessage, error) {
	return c.get(ctx, "/v1/exercise_templates/"+url.PathEscape(templateID), nil)
}

func (c *Client) CreateExerciseTemplate(ctx context.Context, body ExerciseTemplateEnvelope) (json.RawMessage, error) {
	return c.post(ctx, "/v1/exercise_templates", body)
}

// ExerciseHistory lists logged sets for one exercise template across
// workouts.
func (c *Client) ExerciseHistory(ctx context.Context, templateID string) (json.RawMessage, error) {
	return c.get(ctx, "/v1/exercise_history/"+url.PathEscape(templateID), nil)
}

// --- Routine folders ---

func (c *Client) ListRoutineFolders(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	return c.get(ctx, "/v1/routine_folders", pageQuery(page, pageSize))
}

func (c *Client) GetRoutineFolder(ctx context.Context, folderID string) (json.RawMessage, error) {
	return c.get(ctx, "/v1/routine_folders/"+url.PathEscape(folderID), nil)
}

func (c *Client) CreateRoutineFolder(ctx context.Context, body RoutineFolderEnvelope) (json.RawMessage, error) {
	return c.post(ctx, "/v1/routine_folders", body)
}
