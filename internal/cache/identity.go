package cache

import (
	"context"
)

// IdentityCache remembers, for one pipeline run, which identities were already
// written and which authority numbers resolved to an identity. A new cache is
// created for every run.
type IdentityCache interface {
	// Seen reports whether the identity was already written during the run.
	Seen(ctx context.Context, id int64) (bool, error)
	// MarkSeen records the identity as written.
	MarkSeen(ctx context.Context, id int64) error
	// Resolved returns the identity an authority number resolved to.
	Resolved(ctx context.Context, number int64) (int64, bool, error)
	// SetResolved memoizes a successful lookup. Misses are not memoized, a
	// later phase may write the identity.
	SetResolved(ctx context.Context, number int64, identityID int64) error
	// Clear forgets everything.
	Clear(ctx context.Context) error
}
