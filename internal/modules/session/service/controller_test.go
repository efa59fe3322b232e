package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	out "airc/internal/modules/session/adapter/out"
	"airc/internal/modules/session/domain"
	"airc/internal/modules/session/service"
	apperrors "airc/internal/platform/errors"
)

func newSQLiteStore(t *testing.T, dbPath string) *out.SQLiteStateStore {
	t.Helper()
	store, err := out.NewSQLiteStateStore(dbPath)
	if err != nil {
		t.Fatalf("open state store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHydratedFlagLifecycle(t *testing.T) {
	t.Parallel()
	store := newSQLiteStore(t, filepath.Join(t.TempDir(), "state.db"))
	controller := service.NewController(store)
	ctx := context.Background()

	if controller.Hydrated() {
		t.Fatalf("flag must be false before hydration")
	}
	if _, err := controller.Session(); !errors.Is(err, apperrors.ErrNotHydrated) {
		t.Fatalf("reading before hydration must fail with ErrNotHydrated, got %v", err)
	}
	if err := controller.SetSessionID(ctx, "s1"); !errors.Is(err, apperrors.ErrNotHydrated) {
		t.Fatalf("mutating before hydration must fail with ErrNotHydrated, got %v", err)
	}

	controller.Hydrate(ctx)
	if !controller.Hydrated() {
		t.Fatalf("flag must be true after hydration")
	}

	// Hydrating again is a no-op and the flag stays true permanently.
	controller.Hydrate(ctx)
	if !controller.Hydrated() {
		t.Fatalf("flag must remain true")
	}
}

func TestWriteThroughRoundTrip(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	store := newSQLiteStore(t, dbPath)
	ctx := context.Background()

	first := service.NewController(store)
	first.Hydrate(ctx)
	if err := first.SetSessionID(ctx, "s1"); err != nil {
		t.Fatalf("set session id: %v", err)
	}
	if err := first.SetFirstPrompt(ctx, "Welcome to the assessment."); err != nil {
		t.Fatalf("set first prompt: %v", err)
	}
	if err := first.AddAnsweredQuestion(ctx, "q1"); err != nil {
		t.Fatalf("add q1: %v", err)
	}
	if err := first.AddAnsweredQuestion(ctx, "q2"); err != nil {
		t.Fatalf("add q2: %v", err)
	}
	if err := first.SetCurrentQuestionID(ctx, "q3"); err != nil {
		t.Fatalf("set current question: %v", err)
	}

	// A fresh controller over the same store reproduces identical fields.
	second := service.NewController(store)
	second.Hydrate(ctx)
	session, err := second.Session()
	if err != nil {
		t.Fatalf("session after rehydration: %v", err)
	}
	if session.ID != "s1" || session.FirstPrompt != "Welcome to the assessment." || session.CurrentQuestionID != "q3" {
		t.Fatalf("rehydrated scalars = %+v", session)
	}
	if !reflect.DeepEqual(session.Answered, []string{"q1", "q2"}) {
		t.Fatalf("rehydrated answered = %v, want [q1 q2]", session.Answered)
	}
}

func TestAddAnsweredQuestionIsIdempotent(t *testing.T) {
	t.Parallel()
	store := newSQLiteStore(t, filepath.Join(t.TempDir(), "state.db"))
	controller := service.NewController(store)
	ctx := context.Background()
	controller.Hydrate(ctx)

	for _, id := range []string{"q1", "q2", "q1"} {
		if err := controller.AddAnsweredQuestion(ctx, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	session, _ := controller.Session()
	if !reflect.DeepEqual(session.Answered, []string{"q1", "q2"}) {
		t.Fatalf("answered = %v, want [q1 q2]", session.Answered)
	}
}

func TestMalformedAnsweredLogDegradesToEmpty(t *testing.T) {
	t.Parallel()
	store := newSQLiteStore(t, filepath.Join(t.TempDir(), "state.db"))
	ctx := context.Background()
	if err := store.Set(ctx, domain.KeySessionID, "s1"); err != nil {
		t.Fatalf("seed session id: %v", err)
	}
	if err := store.Set(ctx, domain.KeyAnswered, "{not json"); err != nil {
		t.Fatalf("seed malformed log: %v", err)
	}

	controller := service.NewController(store)
	controller.Hydrate(ctx)
	session, err := controller.Session()
	if err != nil {
		t.Fatalf("hydration must not propagate the parse failure: %v", err)
	}
	if session.ID != "s1" {
		t.Fatalf("other fields must still hydrate, got id %q", session.ID)
	}
	if len(session.Answered) != 0 {
		t.Fatalf("malformed log must degrade to empty, got %v", session.Answered)
	}
}

func TestClearRemovesEveryKey(t *testing.T) {
	t.Parallel()
	store := newSQLiteStore(t, filepath.Join(t.TempDir(), "state.db"))
	controller := service.NewController(store)
	ctx := context.Background()
	controller.Hydrate(ctx)

	_ = controller.SetSessionID(ctx, "s1")
	_ = controller.SetFirstPrompt(ctx, "hello")
	_ = controller.SetCurrentQuestionID(ctx, "q2")
	_ = controller.AddAnsweredQuestion(ctx, "q1")

	if err := controller.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	session, _ := controller.Session()
	if session.ID != "" || session.FirstPrompt != "" || session.CurrentQuestionID != "" || len(session.Answered) != 0 {
		t.Fatalf("in-memory session not reset: %+v", session)
	}
	for _, key := range domain.Keys {
		if _, ok, _ := store.Get(ctx, key); ok {
			t.Fatalf("key %s still present after clear", key)
		}
	}
}

func TestEmptyValueRemovesKeyInsteadOfStoringMarker(t *testing.T) {
	t.Parallel()
	store := newSQLiteStore(t, filepath.Join(t.TempDir(), "state.db"))
	controller := service.NewController(store)
	ctx := context.Background()
	controller.Hydrate(ctx)

	if err := controller.SetFirstPrompt(ctx, "hello"); err != nil {
		t.Fatalf("set prompt: %v", err)
	}
	if err := controller.SetFirstPrompt(ctx, ""); err != nil {
		t.Fatalf("unset prompt: %v", err)
	}
	if _, ok, _ := store.Get(ctx, domain.KeyFirstPrompt); ok {
		t.Fatalf("unset field must remove the key")
	}
}

func TestNullStoreKeepsControllerInert(t *testing.T) {
	t.Parallel()
	controller := service.NewController(out.NewNullStateStore())
	ctx := context.Background()
	controller.Hydrate(ctx)

	if err := controller.SetSessionID(ctx, "s1"); err != nil {
		t.Fatalf("set against null store: %v", err)
	}
	session, err := controller.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	// In-memory state still works for the process lifetime.
	if session.ID != "s1" {
		t.Fatalf("in-memory id = %q, want s1", session.ID)
	}
}
