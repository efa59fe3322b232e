package in

import (
	"context"

	"airc/internal/modules/assessment/dto"
)

type Usecase interface {
	// Start opens a new session with the coaching service and records the
	// issued identity.
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)

	// Resume validates the supplied session id against stored state and
	// derives the active question from the persisted answered log.
	Resume(ctx context.Context, sessionID string) (dto.ResumeOutput, error)

	// SubmitAnswer validates and forwards one answer. On success the
	// answered log and question pointer advance; on failure nothing
	// changes, so the same or edited text may be retried.
	SubmitAnswer(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)

	// Complete requests the final report. It never mutates session state.
	Complete(ctx context.Context, input dto.CompleteInput) (dto.CompletionOutput, error)

	// ExportReport writes a completion result to a local report note.
	ExportReport(ctx context.Context, completion dto.CompletionOutput) (dto.ExportOutput, error)
}
