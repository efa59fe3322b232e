package in

import (
	"context"

	assessmentdto "airc/internal/modules/assessment/dto"
	assessmentin "airc/internal/modules/assessment/port/in"
)

type CLIHandler struct {
	usecase assessmentin.Usecase
}

func NewCLIHandler(usecase assessmentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, email, personaHint string) (assessmentdto.StartOutput, error) {
	return h.usecase.Start(ctx, assessmentdto.StartInput{Email: email, PersonaHint: personaHint})
}

func (h CLIHandler) Resume(ctx context.Context, sessionID string) (assessmentdto.ResumeOutput, error) {
	return h.usecase.Resume(ctx, sessionID)
}

func (h CLIHandler) Answer(ctx context.Context, sessionID, text string) (assessmentdto.SubmitOutput, error) {
	return h.usecase.SubmitAnswer(ctx, assessmentdto.SubmitInput{SessionID: sessionID, AnswerText: text})
}

func (h CLIHandler) Complete(ctx context.Context, sessionID string, optInEmail bool) (assessmentdto.CompletionOutput, error) {
	return h.usecase.Complete(ctx, assessmentdto.CompleteInput{SessionID: sessionID, OptInEmail: optInEmail})
}

func (h CLIHandler) Export(ctx context.Context, completion assessmentdto.CompletionOutput) (assessmentdto.ExportOutput, error) {
	return h.usecase.ExportReport(ctx, completion)
}
