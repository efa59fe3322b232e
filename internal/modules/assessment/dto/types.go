package dto

type StartInput struct {
	Email       string
	PersonaHint string
}

type StartOutput struct {
	SessionID   string
	FirstPrompt string
}

type ResumeOutput struct {
	SessionID     string
	FirstPrompt   string
	QuestionID    string
	QuestionText  string
	QuestionIndex int
	TotalCount    int
	AnsweredCount int
	IsLast        bool
	Progress      float64
}

type SubmitInput struct {
	SessionID  string
	AnswerText string
}

type SubmitOutput struct {
	QuestionID        string
	ReplyText         string
	RecommendedAction string
	Tags              []string
	Explainability    string
	// WasLast reports that the answered question closed the catalog and
	// the flow should transition to completion.
	WasLast       bool
	AnsweredCount int
	TotalCount    int
	Progress      float64
}

type CompleteInput struct {
	SessionID  string
	OptInEmail bool
}

type CompletionOutput struct {
	SessionID          string
	Status             string
	Message            string
	ReadinessScore     int
	Band               string
	BandLabel          string
	AnnualHoursSaved   int
	EstimatedDollars   int
	TeamEfficiencyGain string
	SummaryMarkup      string
}

type ExportOutput struct {
	Path string
}
