package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	out "airc/internal/modules/assessment/adapter/out"
	"airc/internal/modules/assessment/domain"
)

func newGateway(t *testing.T, handler http.Handler) *out.HTTPCoachGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	gateway, err := out.NewHTTPCoachGateway(out.GatewayConfig{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	return gateway
}

func TestStartSession(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session/start" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["email"] != "a@b.c" {
			t.Errorf("email = %v", body["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"session_id":   "s1",
			"first_prompt": "Welcome!",
		})
	}))

	grant, err := gateway.StartSession(context.Background(), "a@b.c", "team lead")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if grant.SessionID != "s1" || grant.FirstPrompt != "Welcome!" {
		t.Fatalf("grant = %+v", grant)
	}
}

func TestSubmitAnswerSuccess(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session/s1/answer" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("X-Submission-Key") != "key-1" {
			t.Errorf("submission key header = %q", r.Header.Get("X-Submission-Key"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"reply_text":         "Good insight.",
			"recommended_action": "Pilot one workflow.",
			"tags":               []string{"automation", "quick-win"},
			"explainability":     "Based on your answer about manual work.",
		})
	}))

	reply, err := gateway.SubmitAnswer(context.Background(), domain.Submission{
		SessionID:     "s1",
		QuestionID:    "q3",
		AnswerText:    "We copy data between tools.",
		SubmissionKey: "key-1",
	})
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if reply.Text != "Good insight." || len(reply.Tags) != 2 {
		t.Fatalf("reply = %+v", reply)
	}
}

func TestSubmitAnswerNonSuccessStatus(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "session expired", http.StatusBadGateway)
	}))

	_, err := gateway.SubmitAnswer(context.Background(), domain.Submission{SessionID: "s1", QuestionID: "q1", AnswerText: "x"})
	var submissionErr *domain.SubmissionError
	if !errors.As(err, &submissionErr) {
		t.Fatalf("want SubmissionError, got %v", err)
	}
	if submissionErr.Status != http.StatusBadGateway {
		t.Fatalf("status = %d", submissionErr.Status)
	}
	if submissionErr.Body != "session expired" {
		t.Fatalf("body = %q", submissionErr.Body)
	}
}

func TestSubmitAnswerEmptyErrorBody(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := gateway.SubmitAnswer(context.Background(), domain.Submission{SessionID: "s1", QuestionID: "q1", AnswerText: "x"})
	var submissionErr *domain.SubmissionError
	if !errors.As(err, &submissionErr) {
		t.Fatalf("want SubmissionError, got %v", err)
	}
	if submissionErr.Body != "Unknown error" {
		t.Fatalf("body = %q, want best-effort placeholder", submissionErr.Body)
	}
}

func TestCompleteSession(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session/complete" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["opt_in_email"] != true {
			t.Errorf("opt_in_email = %v", body["opt_in_email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":          "ok",
			"message":         "Assessment complete.",
			"readiness_score": 85,
			"roi_estimate": map[string]any{
				"annual_hours_saved":   320,
				"estimated_dollars":    24000,
				"team_efficiency_gain": "18%",
			},
			"summary_html": "<h2>Summary</h2>",
		})
	}))

	completion, err := gateway.CompleteSession(context.Background(), "s1", true)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if completion.ReadinessScore != 85 || completion.ROI.EstimatedDollars != 24000 {
		t.Fatalf("completion = %+v", completion)
	}
	if completion.SummaryMarkup != "<h2>Summary</h2>" {
		t.Fatalf("summary kept verbatim, got %q", completion.SummaryMarkup)
	}
}

func TestCompleteSessionFailureIsTyped(t *testing.T) {
	t.Parallel()
	gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "scoring unavailable", http.StatusServiceUnavailable)
	}))

	_, err := gateway.CompleteSession(context.Background(), "s1", false)
	var completionErr *domain.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("want CompletionError, got %v", err)
	}
	if completionErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", completionErr.Status)
	}
}
