package domain

import (
	"fmt"
	"time"
)

// SessionGrant is the coaching service's reply to a start request.
type SessionGrant struct {
	SessionID   string
	FirstPrompt string
}

// Submission is one answer on its way to the coaching service. The
// submission key is a fresh opaque token per attempt so the service can
// deduplicate an accidental double-send.
type Submission struct {
	SessionID     string
	QuestionID    string
	AnswerText    string
	SubmissionKey string
}

// Reply is the coach's per-answer response. It is ephemeral: never
// persisted, shown once. Absent fields are empty strings.
type Reply struct {
	Text              string
	RecommendedAction string
	Tags              []string
	Explainability    string
}

// ROIEstimate is the projected return reported with a completion.
type ROIEstimate struct {
	AnnualHoursSaved   int
	EstimatedDollars   int
	TeamEfficiencyGain string
}

// Completion is the coaching service's final report for a session.
// SummaryMarkup is trusted rich text from the service, kept verbatim.
type Completion struct {
	Status         string
	Message        string
	ReadinessScore int
	ROI            ROIEstimate
	SummaryMarkup  string
}

// Report is a completion result bound to its session for export.
type Report struct {
	SessionID   string
	CompletedAt time.Time
	Completion  Completion
}

// SubmissionError is a failed answer submission: the transport status and
// a best-effort error body. Submissions are single-attempt; retry is
// always manual.
type SubmissionError struct {
	Status int
	Body   string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit answer failed: %d - %s", e.Status, e.Body)
}

// CompletionError is a failed completion request, same contract as
// SubmissionError.
type CompletionError struct {
	Status int
	Body   string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("complete assessment failed: %d - %s", e.Status, e.Body)
}
