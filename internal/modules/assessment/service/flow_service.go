package service

import (
	"strings"

	"airc/internal/modules/assessment/domain"
	apperrors "airc/internal/platform/errors"
	"airc/internal/platform/id"
)

// FlowService holds the pure orchestration rules of the assessment flow:
// identity validation, answer validation, and resumption arithmetic over
// the static catalog. It performs no I/O.
type FlowService struct {
	catalog domain.Catalog
	idGen   id.Generator
}

func NewFlowService(catalog domain.Catalog, idGen id.Generator) *FlowService {
	if len(catalog) == 0 {
		panic("assessment: catalog must be non-empty")
	}
	return &FlowService{catalog: catalog, idGen: idGen}
}

func (s *FlowService) Catalog() domain.Catalog {
	return s.catalog
}

// ValidateIdentity checks the stored session id against the one supplied
// by the invocation context. It never mutates anything: a stale id blocks
// rendering, it does not erase a valid stored session.
func (s *FlowService) ValidateIdentity(storedID, routeID string) error {
	if storedID == "" {
		return apperrors.ErrNoSession
	}
	if storedID != routeID {
		return apperrors.ErrSessionMismatch
	}
	return nil
}

// ValidateAnswer trims the answer text and rejects an empty result. This
// runs before the gateway: an empty answer never reaches the network.
func (s *FlowService) ValidateAnswer(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.ErrEmptyAnswer
	}
	return trimmed, nil
}

// ActiveQuestion resolves the question to show for the given answered
// log, with its catalog index.
func (s *FlowService) ActiveQuestion(answered []string) (domain.Question, int) {
	index := s.catalog.ActiveIndex(answered)
	return s.catalog[index], index
}

// NextQuestionID returns the pointer to persist after an accepted answer
// at index: the following catalog entry, or the final entry when the
// answered question was the last one.
func (s *FlowService) NextQuestionID(index int) string {
	next := index + 1
	if next > len(s.catalog)-1 {
		next = len(s.catalog) - 1
	}
	return s.catalog[next].ID
}

// NewSubmission binds an answer to its session and question with a fresh
// submission key, so an accidental double-send is deduplicatable on the
// service side.
func (s *FlowService) NewSubmission(sessionID, questionID, answerText string) domain.Submission {
	return domain.Submission{
		SessionID:     sessionID,
		QuestionID:    questionID,
		AnswerText:    answerText,
		SubmissionKey: s.idGen.New(),
	}
}
