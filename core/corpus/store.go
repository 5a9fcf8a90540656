// Package corpus stores scripture text and serves verse lookups for the
// reference service. Two implementations are provided: a SQLite-backed store
// for real corpora and an in-memory store for tests and small fixtures.
package corpus

import (
	"context"

	"github.com/oremus-tools/sigla/core/canon"
)

// Verse is a single stored verse.
type Verse struct {
	ID   canon.VerseID
	Text string
}

// Store serves verse text and chapter shapes for one or more translations.
// Implementations must be safe for concurrent readers.
type Store interface {
	// VerseCount returns the number of verses stored for a chapter.
	// Unknown books or chapters yield 0, not an error.
	VerseCount(ctx context.Context, version string, book canon.Book, chapter int) (int, error)

	// Verses returns the stored verses among ids, in ascending id order.
	// Missing ids are silently omitted.
	Verses(ctx context.Context, version string, ids []canon.VerseID) ([]Verse, error)

	// Close releases any underlying resources.
	Close() error
}
