package service

import (
	"context"
	"encoding/json"
	"fmt"

	"airc/internal/modules/session/domain"
	sessionout "airc/internal/modules/session/port/out"
	apperrors "airc/internal/platform/errors"
)

// Controller is the single in-memory source of truth for the Session
// entity during a process's lifetime. Every mutation is mirrored to the
// durable store; the store is read only once, during Hydrate, to
// reconstruct state from a previous run. All durable-store access is
// routed through the controller so there is exactly one read/write path.
type Controller struct {
	store    sessionout.StateStore
	hydrated bool
	session  domain.Session
}

func NewController(store sessionout.StateStore) *Controller {
	return &Controller{store: store}
}

// Hydrate loads all four persisted fields in one batch. It is a no-op
// after the first call, and the hydrated flag stays true for the rest of
// the controller's lifetime. A field that fails to read or parse is
// defaulted to empty rather than failing hydration: losing one field must
// not block the rest.
func (c *Controller) Hydrate(ctx context.Context) {
	if c.hydrated {
		return
	}
	c.session.ID = c.readScalar(ctx, domain.KeySessionID)
	c.session.FirstPrompt = c.readScalar(ctx, domain.KeyFirstPrompt)
	c.session.CurrentQuestionID = c.readScalar(ctx, domain.KeyCurrentQuestionID)
	c.session.Answered = c.readAnswered(ctx)
	c.hydrated = true
}

func (c *Controller) readScalar(ctx context.Context, key string) string {
	value, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return ""
	}
	return value
}

func (c *Controller) readAnswered(ctx context.Context) []string {
	raw, ok, err := c.store.Get(ctx, domain.KeyAnswered)
	if err != nil || !ok || raw == "" {
		return nil
	}
	var answered []string
	if err := json.Unmarshal([]byte(raw), &answered); err != nil {
		// Malformed persisted list: degrade to empty and continue.
		return nil
	}
	return answered
}

// Hydrated reports whether the one-time load has completed. Consumers
// must not trust session fields before this is true: "not yet loaded" is
// not "empty".
func (c *Controller) Hydrated() bool {
	return c.hydrated
}

// Session returns a copy of the in-memory session.
func (c *Controller) Session() (domain.Session, error) {
	if !c.hydrated {
		return domain.Session{}, apperrors.ErrNotHydrated
	}
	out := c.session
	out.Answered = append([]string(nil), c.session.Answered...)
	return out, nil
}

func (c *Controller) SetSessionID(ctx context.Context, id string) error {
	if !c.hydrated {
		return apperrors.ErrNotHydrated
	}
	c.session.ID = id
	return c.writeScalar(ctx, domain.KeySessionID, id)
}

func (c *Controller) SetFirstPrompt(ctx context.Context, prompt string) error {
	if !c.hydrated {
		return apperrors.ErrNotHydrated
	}
	c.session.FirstPrompt = prompt
	return c.writeScalar(ctx, domain.KeyFirstPrompt, prompt)
}

func (c *Controller) SetCurrentQuestionID(ctx context.Context, questionID string) error {
	if !c.hydrated {
		return apperrors.ErrNotHydrated
	}
	c.session.CurrentQuestionID = questionID
	return c.writeScalar(ctx, domain.KeyCurrentQuestionID, questionID)
}

// AddAnsweredQuestion appends questionID to the answered log and mirrors
// the log to the store. Adding an already-present id is a no-op: the log
// never holds duplicates and existing order is never disturbed. This is
// the sole mutator of the answered log.
func (c *Controller) AddAnsweredQuestion(ctx context.Context, questionID string) error {
	if !c.hydrated {
		return apperrors.ErrNotHydrated
	}
	if !c.session.AddAnswered(questionID) {
		return nil
	}
	return c.writeAnswered(ctx)
}

// Clear resets all four fields in memory and removes them from the store
// as one logical operation.
func (c *Controller) Clear(ctx context.Context) error {
	if !c.hydrated {
		return apperrors.ErrNotHydrated
	}
	c.session = domain.Session{}
	if err := c.store.RemoveAll(ctx, domain.Keys...); err != nil {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}

// writeScalar mirrors a field to the store; an empty value removes the
// key rather than storing an empty marker.
func (c *Controller) writeScalar(ctx context.Context, key, value string) error {
	if value == "" {
		if err := c.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		return nil
	}
	if err := c.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func (c *Controller) writeAnswered(ctx context.Context) error {
	if len(c.session.Answered) == 0 {
		if err := c.store.Remove(ctx, domain.KeyAnswered); err != nil {
			return fmt.Errorf("remove answered log: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(c.session.Answered)
	if err != nil {
		return fmt.Errorf("marshal answered log: %w", err)
	}
	if err := c.store.Set(ctx, domain.KeyAnswered, string(raw)); err != nil {
		return fmt.Errorf("persist answered log: %w", err)
	}
	return nil
}
