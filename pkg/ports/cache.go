package ports

import "context"

// SummaryCache memoizes summaries keyed by a digest of the note text.
type SummaryCache interface {
	// Get returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the summary under key.
	Set(ctx context.Context, key, summary string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
