package in

import (
	"context"

	"airc/internal/modules/session/dto"
)

type Usecase interface {
	// Snapshot hydrates on first use and returns the current session
	// fields. A process restart lands here to resume.
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)

	// Begin records a freshly issued session identity. Any previous
	// session state is replaced.
	Begin(ctx context.Context, input dto.BeginInput) error

	// MarkAnswered appends an accepted answer to the answered log and
	// advances the current-question pointer.
	MarkAnswered(ctx context.Context, input dto.MarkAnsweredInput) error

	// Reset clears all session state from memory and the durable store.
	Reset(ctx context.Context) error
}
