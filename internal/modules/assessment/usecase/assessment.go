package usecase

import (
	"context"
	"fmt"
	"strings"

	"airc/internal/modules/assessment/domain"
	"airc/internal/modules/assessment/dto"
	assessmentin "airc/internal/modules/assessment/port/in"
	assessmentout "airc/internal/modules/assessment/port/out"
	"airc/internal/modules/assessment/service"
	sessiondto "airc/internal/modules/session/dto"
	sessionin "airc/internal/modules/session/port/in"
	"airc/internal/platform/clock"
	apperrors "airc/internal/platform/errors"
)

type Interactor struct {
	svc     *service.FlowService
	gateway assessmentout.CoachGateway
	reports assessmentout.ReportStore
	session sessionin.Usecase
	clock   clock.Clock
}

func NewInteractor(
	svc *service.FlowService,
	gateway assessmentout.CoachGateway,
	reports assessmentout.ReportStore,
	session sessionin.Usecase,
	clk clock.Clock,
) assessmentin.Usecase {
	return &Interactor{svc: svc, gateway: gateway, reports: reports, session: session, clock: clk}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	if strings.TrimSpace(input.Email) == "" {
		return dto.StartOutput{}, fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	grant, err := i.gateway.StartSession(ctx, input.Email, input.PersonaHint)
	if err != nil {
		return dto.StartOutput{}, err
	}
	if grant.SessionID == "" {
		return dto.StartOutput{}, fmt.Errorf("coach service returned no session id")
	}
	if err := i.session.Begin(ctx, sessiondto.BeginInput{SessionID: grant.SessionID, FirstPrompt: grant.FirstPrompt}); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{SessionID: grant.SessionID, FirstPrompt: grant.FirstPrompt}, nil
}

func (i *Interactor) Resume(ctx context.Context, sessionID string) (dto.ResumeOutput, error) {
	snapshot, err := i.session.Snapshot(ctx)
	if err != nil {
		return dto.ResumeOutput{}, err
	}
	if err := i.svc.ValidateIdentity(snapshot.SessionID, sessionID); err != nil {
		return dto.ResumeOutput{}, err
	}
	question, index := i.svc.ActiveQuestion(snapshot.Answered)
	catalog := i.svc.Catalog()
	return dto.ResumeOutput{
		SessionID:     snapshot.SessionID,
		FirstPrompt:   snapshot.FirstPrompt,
		QuestionID:    question.ID,
		QuestionText:  question.Text,
		QuestionIndex: index,
		TotalCount:    len(catalog),
		AnsweredCount: len(snapshot.Answered),
		IsLast:        catalog.IsLast(index),
		Progress:      catalog.Progress(len(snapshot.Answered)),
	}, nil
}

func (i *Interactor) SubmitAnswer(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	snapshot, err := i.session.Snapshot(ctx)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	if err := i.svc.ValidateIdentity(snapshot.SessionID, input.SessionID); err != nil {
		return dto.SubmitOutput{}, err
	}
	answer, err := i.svc.ValidateAnswer(input.AnswerText)
	if err != nil {
		return dto.SubmitOutput{}, err
	}

	question, index := i.svc.ActiveQuestion(snapshot.Answered)
	reply, err := i.gateway.SubmitAnswer(ctx, i.svc.NewSubmission(snapshot.SessionID, question.ID, answer))
	if err != nil {
		// Failure leaves the session untouched: the same or edited text
		// may be retried against the same question.
		return dto.SubmitOutput{}, err
	}

	if err := i.session.MarkAnswered(ctx, sessiondto.MarkAnsweredInput{
		QuestionID:     question.ID,
		NextQuestionID: i.svc.NextQuestionID(index),
	}); err != nil {
		return dto.SubmitOutput{}, err
	}

	catalog := i.svc.Catalog()
	answeredCount := len(snapshot.Answered)
	if !contains(snapshot.Answered, question.ID) {
		answeredCount++
	}
	return dto.SubmitOutput{
		QuestionID:        question.ID,
		ReplyText:         reply.Text,
		RecommendedAction: reply.RecommendedAction,
		Tags:              reply.Tags,
		Explainability:    reply.Explainability,
		WasLast:           catalog.IsLast(index),
		AnsweredCount:     answeredCount,
		TotalCount:        len(catalog),
		Progress:          catalog.Progress(answeredCount),
	}, nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.CompletionOutput, error) {
	snapshot, err := i.session.Snapshot(ctx)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	if err := i.svc.ValidateIdentity(snapshot.SessionID, input.SessionID); err != nil {
		return dto.CompletionOutput{}, err
	}
	completion, err := i.gateway.CompleteSession(ctx, snapshot.SessionID, input.OptInEmail)
	if err != nil {
		return dto.CompletionOutput{}, err
	}
	band := domain.BandFor(completion.ReadinessScore)
	return dto.CompletionOutput{
		SessionID:          snapshot.SessionID,
		Status:             completion.Status,
		Message:            completion.Message,
		ReadinessScore:     completion.ReadinessScore,
		Band:               string(band),
		BandLabel:          band.Label(),
		AnnualHoursSaved:   completion.ROI.AnnualHoursSaved,
		EstimatedDollars:   completion.ROI.EstimatedDollars,
		TeamEfficiencyGain: completion.ROI.TeamEfficiencyGain,
		SummaryMarkup:      completion.SummaryMarkup,
	}, nil
}

func (i *Interactor) ExportReport(ctx context.Context, completion dto.CompletionOutput) (dto.ExportOutput, error) {
	report := domain.Report{
		SessionID:   completion.SessionID,
		CompletedAt: i.clock.Now(),
		Completion: domain.Completion{
			Status:         completion.Status,
			Message:        completion.Message,
			ReadinessScore: completion.ReadinessScore,
			ROI: domain.ROIEstimate{
				AnnualHoursSaved:   completion.AnnualHoursSaved,
				EstimatedDollars:   completion.EstimatedDollars,
				TeamEfficiencyGain: completion.TeamEfficiencyGain,
			},
			SummaryMarkup: completion.SummaryMarkup,
		},
	}
	path, err := i.reports.Save(ctx, report)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path}, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
