package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"finadvisor/internal/config"
	"finadvisor/internal/model"
)

var (
	// ErrRemoteDisabled means no remote advisory endpoint is configured
	ErrRemoteDisabled = errors.New("remote advisory endpoint not configured")
	// ErrMalformedResponse means the remote payload is missing required fields
	ErrMalformedResponse = errors.New("malformed advisory response")
)

// AdvisoryClient wraps the remote advisory AI endpoints. Calls are bounded
// by per-operation timeouts and are never retried: the caller falls back to
// local tables instead, so a duplicate request could only do harm.
type AdvisoryClient struct {
	cfg           *config.AdvisoryConfig
	httpClient    *http.Client
	stepTimeout   time.Duration
	reportTimeout time.Duration
}

// NewAdvisoryClient creates a new advisory API client
func NewAdvisoryClient(cfg *config.AdvisoryConfig) *AdvisoryClient {
	if !cfg.IsEnabled() {
		log.Println("[Advisory Client] Warning: ADVISORY_BASE_URL not set, resolving from local tables only")
	}
	return &AdvisoryClient{
		cfg:           cfg,
		httpClient:    &http.Client{},
		stepTimeout:   time.Duration(cfg.StepTimeoutMS) * time.Millisecond,
		reportTimeout: time.Duration(cfg.ReportTimeoutMS) * time.Millisecond,
	}
}

// StepRequest is the wire request for remote step resolution
type StepRequest struct {
	AdvisorID    string             `json:"advisorId"`
	UserID       string             `json:"userId"`
	CurrentStep  int                `json:"currentStep"`
	DecisionPath model.DecisionPath `json:"decisionPath"`
	Context      model.StepContext  `json:"context"`
}

// StepResponse is the wire response for remote step resolution
type StepResponse struct {
	Options []model.DecisionOption `json:"options"`
}

// ReportRequest is the wire request for remote report synthesis. The
// profile is already sanitized: direct identifiers never leave the service.
type ReportRequest struct {
	AdvisorID    string                 `json:"advisorId"`
	UserID       string                 `json:"userId"`
	DecisionPath model.DecisionPath     `json:"decisionPath"`
	UserProfile  model.SanitizedProfile `json:"userProfile"`
}

// ReportResponse is the wire response for remote report synthesis. Summary
// and Steps are required; the rest is merged when present.
type ReportResponse struct {
	Summary         string   `json:"summary"`
	Steps           []string `json:"steps"`
	Timeline        string   `json:"timeline,omitempty"`
	ExpectedOutcome string   `json:"expectedOutcome,omitempty"`
	NextActions     []string `json:"nextActions,omitempty"`
}

// ResolveStep fetches the next step's options from the remote endpoint. A
// nil or absent options array counts as malformed.
func (c *AdvisoryClient) ResolveStep(ctx context.Context, req *StepRequest) ([]model.DecisionOption, error) {
	if !c.cfg.IsEnabled() {
		return nil, ErrRemoteDisabled
	}

	callCtx, cancel := context.WithTimeout(ctx, c.stepTimeout)
	defer cancel()

	body, err := c.doPost(callCtx, "/decision-tree/options", req)
	if err != nil {
		return nil, err
	}

	var resp StepResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Options == nil {
		return nil, ErrMalformedResponse
	}
	for _, o := range resp.Options {
		if o.ID == "" || o.Label == "" {
			return nil, ErrMalformedResponse
		}
	}
	return resp.Options, nil
}

// GenerateReport requests remote synthesis of the full recommendation
// report. Report generation is more expensive than step resolution and gets
// the longer timeout.
func (c *AdvisoryClient) GenerateReport(ctx context.Context, req *ReportRequest) (*ReportResponse, error) {
	if !c.cfg.IsEnabled() {
		return nil, ErrRemoteDisabled
	}

	callCtx, cancel := context.WithTimeout(ctx, c.reportTimeout)
	defer cancel()

	body, err := c.doPost(callCtx, "/decision-tree/report", req)
	if err != nil {
		return nil, err
	}

	var resp ReportResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Summary == "" || len(resp.Steps) == 0 {
		return nil, ErrMalformedResponse
	}
	return &resp, nil
}

// doPost performs a single POST request; no retries by design
func (c *AdvisoryClient) doPost(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("advisory API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
