package out

import (
	"context"

	"airc/internal/modules/assessment/domain"
)

// CoachGateway performs the network operations against the remote
// coaching service. Every call is single-attempt and carries no
// session-side effects of its own.
type CoachGateway interface {
	StartSession(ctx context.Context, email, personaHint string) (domain.SessionGrant, error)
	SubmitAnswer(ctx context.Context, submission domain.Submission) (domain.Reply, error)
	CompleteSession(ctx context.Context, sessionID string, optInEmail bool) (domain.Completion, error)
}

// ReportStore persists a completion result for the user to keep.
type ReportStore interface {
	Save(ctx context.Context, report domain.Report) (path string, err error)
}
