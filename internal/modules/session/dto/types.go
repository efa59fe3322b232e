package dto

type SnapshotOutput struct {
	SessionID         string
	FirstPrompt       string
	CurrentQuestionID string
	Answered          []string
}

type BeginInput struct {
	SessionID   string
	FirstPrompt string
}

type MarkAnsweredInput struct {
	QuestionID     string
	NextQuestionID string
}
