// Package storage holds the client's persistent key-value store. It keeps the
// credential pair (accessToken, refreshToken) and small client state such as
// the search history.
package storage

import (
	"context"
)

// Store is a string key-value store safe for concurrent use. Each operation is
// atomic with respect to the others. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BatchRemover is implemented by stores that can drop several keys in one
// atomic step. ClearPair prefers it so readers never see a half-cleared pair.
type BatchRemover interface {
	RemoveAll(ctx context.Context, keys ...string) error
}

// GuardedSetter is implemented by stores that can write key only while
// guardKey still holds guardValue, in one atomic step. ok is false when the
// guard did not match; nothing is written then.
type GuardedSetter interface {
	SetIf(ctx context.Context, guardKey, guardValue, key, value string) (ok bool, err error)
}
