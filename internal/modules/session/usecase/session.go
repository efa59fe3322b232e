package usecase

import (
	"context"

	"airc/internal/modules/session/dto"
	sessionin "airc/internal/modules/session/port/in"
	"airc/internal/modules/session/service"
)

type Interactor struct {
	controller *service.Controller
}

func NewInteractor(controller *service.Controller) *Interactor {
	return &Interactor{controller: controller}
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	i.controller.Hydrate(ctx)
	session, err := i.controller.Session()
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return dto.SnapshotOutput{
		SessionID:         session.ID,
		FirstPrompt:       session.FirstPrompt,
		CurrentQuestionID: session.CurrentQuestionID,
		Answered:          session.Answered,
	}, nil
}

func (i *Interactor) Begin(ctx context.Context, input dto.BeginInput) error {
	i.controller.Hydrate(ctx)
	// A new identity starts a new attempt: stale progress from a previous
	// session must not leak into resumption.
	if err := i.controller.Clear(ctx); err != nil {
		return err
	}
	if err := i.controller.SetSessionID(ctx, input.SessionID); err != nil {
		return err
	}
	return i.controller.SetFirstPrompt(ctx, input.FirstPrompt)
}

func (i *Interactor) MarkAnswered(ctx context.Context, input dto.MarkAnsweredInput) error {
	i.controller.Hydrate(ctx)
	if err := i.controller.AddAnsweredQuestion(ctx, input.QuestionID); err != nil {
		return err
	}
	return i.controller.SetCurrentQuestionID(ctx, input.NextQuestionID)
}

func (i *Interactor) Reset(ctx context.Context) error {
	i.controller.Hydrate(ctx)
	return i.controller.Clear(ctx)
}

var _ sessionin.Usecase = (*Interactor)(nil)
