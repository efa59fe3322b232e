package usecase_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	out "airc/internal/modules/session/adapter/out"
	"airc/internal/modules/session/dto"
	"airc/internal/modules/session/service"
	"airc/internal/modules/session/usecase"
)

func newInteractor(t *testing.T, dbPath string) *usecase.Interactor {
	t.Helper()
	store, err := out.NewSQLiteStateStore(dbPath)
	if err != nil {
		t.Fatalf("open state store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return usecase.NewInteractor(service.NewController(store))
}

func TestBeginReplacesStaleProgress(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first := newInteractor(t, dbPath)
	if err := first.Begin(ctx, dto.BeginInput{SessionID: "old", FirstPrompt: "hi"}); err != nil {
		t.Fatalf("begin old session: %v", err)
	}
	if err := first.MarkAnswered(ctx, dto.MarkAnsweredInput{QuestionID: "q1", NextQuestionID: "q2"}); err != nil {
		t.Fatalf("mark answered: %v", err)
	}

	// Starting a new session must not inherit the old answered log.
	if err := first.Begin(ctx, dto.BeginInput{SessionID: "new", FirstPrompt: "welcome"}); err != nil {
		t.Fatalf("begin new session: %v", err)
	}
	snapshot, err := newInteractor(t, dbPath).Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.SessionID != "new" || snapshot.FirstPrompt != "welcome" {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	if len(snapshot.Answered) != 0 || snapshot.CurrentQuestionID != "" {
		t.Fatalf("stale progress leaked into new session: %+v", snapshot)
	}
}

func TestMarkAnsweredAdvancesPointer(t *testing.T) {
	t.Parallel()
	interactor := newInteractor(t, filepath.Join(t.TempDir(), "state.db"))
	ctx := context.Background()

	if err := interactor.Begin(ctx, dto.BeginInput{SessionID: "s1"}); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := interactor.MarkAnswered(ctx, dto.MarkAnsweredInput{QuestionID: "q1", NextQuestionID: "q2"}); err != nil {
		t.Fatalf("mark q1: %v", err)
	}
	if err := interactor.MarkAnswered(ctx, dto.MarkAnsweredInput{QuestionID: "q2", NextQuestionID: "q3"}); err != nil {
		t.Fatalf("mark q2: %v", err)
	}

	snapshot, err := interactor.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !reflect.DeepEqual(snapshot.Answered, []string{"q1", "q2"}) {
		t.Fatalf("answered = %v, want [q1 q2]", snapshot.Answered)
	}
	if snapshot.CurrentQuestionID != "q3" {
		t.Fatalf("pointer = %q, want q3", snapshot.CurrentQuestionID)
	}
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	interactor := newInteractor(t, dbPath)
	ctx := context.Background()

	if err := interactor.Begin(ctx, dto.BeginInput{SessionID: "s1", FirstPrompt: "hi"}); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := interactor.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	snapshot, err := newInteractor(t, dbPath).Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.SessionID != "" || snapshot.FirstPrompt != "" {
		t.Fatalf("reset left state behind: %+v", snapshot)
	}
}
