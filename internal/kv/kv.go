package kv

import "context"

// Store is device-durable key-value persistence, the local analog of
// browser localStorage. Values are opaque JSON documents; the overlay
// layer owns their structure. Absent keys are a normal outcome, not an
// error: only storage unavailability produces a non-nil error.
type Store interface {
	// Get returns the stored value for key, or ok=false if absent
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set overwrites the value for key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
}
