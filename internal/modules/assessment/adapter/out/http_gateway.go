package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"airc/internal/modules/assessment/domain"
	assessmentout "airc/internal/modules/assessment/port/out"
)

// GatewayConfig holds configuration for the HTTP coach gateway.
type GatewayConfig struct {
	// BaseURL is the coaching service root, e.g. "https://coach.example.com/webhook".
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
}

// HTTPCoachGateway talks JSON over HTTP to the coaching service. It never
// retries: a failed call surfaces as a typed error and the caller decides
// whether to offer a manual retry.
type HTTPCoachGateway struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPCoachGateway(config GatewayConfig) (*HTTPCoachGateway, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("coach gateway: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("coach gateway: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPCoachGateway{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

type startSessionRequest struct {
	Email       string            `json:"email"`
	PersonaHint string            `json:"persona_hint,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}

type startSessionResponse struct {
	SessionID   string `json:"session_id"`
	FirstPrompt string `json:"first_prompt"`
}

type submitAnswerRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

type submitAnswerResponse struct {
	ReplyText         string   `json:"reply_text"`
	RecommendedAction string   `json:"recommended_action"`
	Tags              []string `json:"tags"`
	Explainability    string   `json:"explainability"`
}

type completeSessionRequest struct {
	SessionID  string `json:"session_id"`
	OptInEmail bool   `json:"opt_in_email"`
}

type completeSessionResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	ReadinessScore int    `json:"readiness_score"`
	ROIEstimate    struct {
		AnnualHoursSaved   int    `json:"annual_hours_saved"`
		EstimatedDollars   int    `json:"estimated_dollars"`
		TeamEfficiencyGain string `json:"team_efficiency_gain"`
	} `json:"roi_estimate"`
	SummaryHTML string `json:"summary_html"`
}

func (g *HTTPCoachGateway) StartSession(ctx context.Context, email, personaHint string) (domain.SessionGrant, error) {
	payload := startSessionRequest{
		Email:       email,
		PersonaHint: personaHint,
		Metadata:    map[string]string{"source": "cli"},
	}
	body, status, err := g.post(ctx, "/session/start", nil, payload)
	if err != nil {
		return domain.SessionGrant{}, fmt.Errorf("start session: %w", err)
	}
	if status < 200 || status >= 300 {
		return domain.SessionGrant{}, &domain.SubmissionError{Status: status, Body: errorBody(body)}
	}
	var response startSessionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.SessionGrant{}, fmt.Errorf("parse start response: %w", err)
	}
	return domain.SessionGrant{SessionID: response.SessionID, FirstPrompt: response.FirstPrompt}, nil
}

func (g *HTTPCoachGateway) SubmitAnswer(ctx context.Context, submission domain.Submission) (domain.Reply, error) {
	payload := submitAnswerRequest{
		SessionID:  submission.SessionID,
		QuestionID: submission.QuestionID,
		AnswerText: submission.AnswerText,
	}
	headers := map[string]string{}
	if submission.SubmissionKey != "" {
		headers["X-Submission-Key"] = submission.SubmissionKey
	}
	path := "/session/" + url.PathEscape(submission.SessionID) + "/answer"
	body, status, err := g.post(ctx, path, headers, payload)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("submit answer: %w", err)
	}
	if status < 200 || status >= 300 {
		return domain.Reply{}, &domain.SubmissionError{Status: status, Body: errorBody(body)}
	}
	// The raw response is surfaced as received; absent fields stay empty.
	var response submitAnswerResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.Reply{}, fmt.Errorf("parse answer response: %w", err)
	}
	return domain.Reply{
		Text:              response.ReplyText,
		RecommendedAction: response.RecommendedAction,
		Tags:              response.Tags,
		Explainability:    response.Explainability,
	}, nil
}

func (g *HTTPCoachGateway) CompleteSession(ctx context.Context, sessionID string, optInEmail bool) (domain.Completion, error) {
	payload := completeSessionRequest{SessionID: sessionID, OptInEmail: optInEmail}
	body, status, err := g.post(ctx, "/session/complete", nil, payload)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("complete session: %w", err)
	}
	if status < 200 || status >= 300 {
		return domain.Completion{}, &domain.CompletionError{Status: status, Body: errorBody(body)}
	}
	var response completeSessionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return domain.Completion{}, fmt.Errorf("parse completion response: %w", err)
	}
	return domain.Completion{
		Status:         response.Status,
		Message:        response.Message,
		ReadinessScore: response.ReadinessScore,
		ROI: domain.ROIEstimate{
			AnnualHoursSaved:   response.ROIEstimate.AnnualHoursSaved,
			EstimatedDollars:   response.ROIEstimate.EstimatedDollars,
			TeamEfficiencyGain: response.ROIEstimate.TeamEfficiencyGain,
		},
		SummaryMarkup: response.SummaryHTML,
	}, nil
}

// post sends one JSON request and returns the raw response body and
// status. Transport-level failures return an error; non-2xx statuses are
// returned to the caller to convert into the operation's typed error.
func (g *HTTPCoachGateway) post(ctx context.Context, path string, headers map[string]string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}
	response, err := g.httpClient.Do(request)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, response.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, response.StatusCode, nil
}

func errorBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "Unknown error"
	}
	return text
}

var _ assessmentout.CoachGateway = (*HTTPCoachGateway)(nil)
