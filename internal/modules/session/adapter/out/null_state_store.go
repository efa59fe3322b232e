package out

import (
	"context"

	sessionout "airc/internal/modules/session/port/out"
)

// NullStateStore is the inert store used when no durable medium is
// available. Reads report every key absent and writes are dropped, so the
// rest of the system runs without branching on environment.
type NullStateStore struct{}

func NewNullStateStore() sessionout.StateStore {
	return NullStateStore{}
}

func (NullStateStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (NullStateStore) Set(context.Context, string, string) error         { return nil }
func (NullStateStore) Remove(context.Context, string) error              { return nil }
func (NullStateStore) RemoveAll(context.Context, ...string) error        { return nil }
