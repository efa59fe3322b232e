package out

import "context"

// StateStore is the durable key-value medium behind the session
// controller. Values are scalar strings; list-shaped fields are stored
// serialized. Implementations must write each key atomically as a whole
// value and must distinguish an absent key from an empty value.
type StateStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	// RemoveAll removes every given key as a single logical operation.
	RemoveAll(ctx context.Context, keys ...string) error
}
