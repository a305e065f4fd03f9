// Package client calls the plan generation endpoint on behalf of the
// interactive wizard.
package client

import (
	"alcyxob/workout-planner/internal/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultTimeout bounds one generation call; model latency dominates it.
const DefaultTimeout = 2 * time.Minute

// maxResponseSize caps the body read from the endpoint.
const maxResponseSize = 4 << 20

// PlanClient sends PlanRequests to a generation endpoint. It performs one
// HTTP call per GeneratePlan and keeps no queue, cache or retry state;
// callers must not submit a second request while one is pending.
type PlanClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewPlanClient creates a client for endpoint (the full URL of
// POST /api/generate). A non-positive timeout selects DefaultTimeout.
func NewPlanClient(endpoint string, timeout time.Duration) *PlanClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PlanClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorResponse is the failure body of the endpoint.
type errorResponse struct {
	Error string `json:"error"`
}

// GeneratePlan validates req locally, then requests a plan. Every failure
// after validation is a GenerationFailure carrying a user-facing message.
func (c *PlanClient) GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WorkoutPlan, error) {
	if err := req.Validate(); err != nil {
		return domain.WorkoutPlan{}, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return domain.WorkoutPlan{}, domain.NewError(domain.KindInvalidInput, domain.MsgInvalidRequest, fmt.Errorf("encode plan request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.WorkoutPlan{}, generationFailure(domain.MsgCommunication, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("ERROR: plan request to %s failed: %v", c.endpoint, err)
		return domain.WorkoutPlan{}, generationFailure(domain.MsgCommunication, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return domain.WorkoutPlan{}, generationFailure(domain.MsgCommunication, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := domain.MsgCommunication
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return domain.WorkoutPlan{}, generationFailure(message, fmt.Errorf("endpoint returned status %d", resp.StatusCode))
	}

	plan, err := domain.DecodePlan(string(body))
	if err != nil {
		log.Printf("ERROR: plan response rejected: %v", err)
		return domain.WorkoutPlan{}, generationFailure(domain.MsgGenerationRejected, err)
	}
	return plan, nil
}

func generationFailure(message string, cause error) error {
	return domain.NewError(domain.KindGenerationFailure, message, cause)
}
