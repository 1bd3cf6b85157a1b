// Package solver talks to the remote schedule generation/validation service.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vaktplan/models"
)

// Client is the outbound gateway to the solver service.
type Client interface {
	Generate(ctx context.Context, config models.ScheduleConfig) (*GenerateResponse, error)
	Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error)
}

// GenerateResponse is the solver's answer to a generate request. The
// violations/discrepancies are optional; not every solver build returns them.
type GenerateResponse struct {
	UpdatedSchedule  *models.ScheduleDocument  `json:"updated_schedule"`
	NewViolations    *models.ViolationsPayload `json:"new_violations,omitempty"`
	NewDiscrepancies []models.Discrepancy      `json:"new_discrepancies,omitempty"`
}

// ValidateRequest carries an edited document plus the target-hours map.
type ValidateRequest struct {
	UpdatedSchedule models.ScheduleDocument `json:"updated_schedule"`
	TargetHours     models.TargetHours      `json:"target_hours"`
}

// ValidateResponse is the solver's re-evaluation of an edited document.
type ValidateResponse struct {
	Violations    *models.ViolationsPayload `json:"violations"`
	Discrepancies []models.Discrepancy      `json:"discrepancies"`
}

// errorEnvelope is the non-2xx response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// HTTPClient implements Client over plain HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a solver client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Generate(ctx context.Context, config models.ScheduleConfig) (*GenerateResponse, error) {
	var out GenerateResponse
	if err := c.post(ctx, "/", config, &out, "Failed to generate schedule."); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	var out ValidateResponse
	if err := c.post(ctx, "/validate/", req, &out, "Failed to update schedule and re-evaluate violations."); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends the body and decodes a 2xx response into out. A non-2xx
// response is turned into the {error} envelope message, falling back to the
// provided default when the body is not parseable.
func (c *HTTPClient) post(ctx context.Context, path string, body, out any, fallbackMsg string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil || envelope.Error == "" {
			return errors.New(fallbackMsg)
		}
		return errors.New(envelope.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
