// Package refs implements the scripture reference service: parsing canonical
// reference strings, expanding references to verse identifiers, rendering
// passage text from a corpus store, and formatting human-readable labels.
package refs

import (
	"context"
	"fmt"
	"strings"

	"github.com/oremus-tools/sigla/core/canon"
	"github.com/oremus-tools/sigla/core/corpus"
)

// DefaultVersion is the process-wide default translation version.
const DefaultVersion = "KJV"

// Reference is a structured scripture reference. Verse fields are zero when
// the reference addresses a whole chapter. Equality over the five fields is
// the deduplication key used by the pipeline.
type Reference struct {
	Book         canon.Book
	StartChapter int
	StartVerse   int
	EndChapter   int
	EndVerse     int
}

// HasVerses reports whether the reference carries an explicit verse range.
func (r Reference) HasVerses() bool {
	return r.StartVerse != 0
}

// String renders the reference in "Matthew 5:1-3" form.
func (r Reference) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d", r.Book.Title(), r.StartChapter)
	switch {
	case r.HasVerses():
		fmt.Fprintf(&b, ":%d", r.StartVerse)
		if r.EndChapter != r.StartChapter {
			fmt.Fprintf(&b, "-%d:%d", r.EndChapter, r.EndVerse)
		} else if r.EndVerse != r.StartVerse {
			fmt.Fprintf(&b, "-%d", r.EndVerse)
		}
	case r.EndChapter != r.StartChapter:
		fmt.Fprintf(&b, "-%d", r.EndChapter)
	}
	return b.String()
}

// Service answers reference queries against a verse store for a fixed
// translation version. It is safe for concurrent use.
type Service struct {
	store   corpus.Store
	version string
}

// NewService creates a reference service over the given store.
// An empty version selects DefaultVersion.
func NewService(store corpus.Store, version string) *Service {
	if version == "" {
		version = DefaultVersion
	}
	return &Service{store: store, version: version}
}

// Version returns the configured translation version.
func (s *Service) Version() string {
	return s.version
}

// ParseReferences parses a canonical reference query string.
// See the package-level ParseReferences; exposed on the service so the
// pipeline depends on a single collaborator.
func (s *Service) ParseReferences(query string) ([]Reference, error) {
	return ParseReferences(query)
}

// ShortTitle returns the canonical short title used to build query strings.
func (s *Service) ShortTitle(book canon.Book) string {
	return book.Title()
}

// VerseIDs expands references into verse identifiers. Chapter-only
// references expand to every verse the store holds for that chapter; an
// unknown chapter therefore contributes no identifiers, which callers treat
// as a recoverable skip. Explicit ranges are expanded arithmetically and
// verses absent from the store are dropped later, at rendering time.
func (s *Service) VerseIDs(ctx context.Context, references []Reference) ([]canon.VerseID, error) {
	var ids []canon.VerseID
	for _, ref := range references {
		if !ref.Book.Valid() || ref.StartChapter < 1 {
			continue
		}

		if !ref.HasVerses() {
			count, err := s.store.VerseCount(ctx, s.version, ref.Book, ref.StartChapter)
			if err != nil {
				return nil, err
			}
			for v := 1; v <= count; v++ {
				ids = append(ids, canon.NewVerseID(ref.Book, ref.StartChapter, v))
			}
			continue
		}

		endChapter := ref.EndChapter
		if max := ref.Book.Chapters(); endChapter > max {
			endChapter = max
		}
		for ch := ref.StartChapter; ch <= endChapter; ch++ {
			first := 1
			if ch == ref.StartChapter {
				first = ref.StartVerse
			}
			var last int
			if ch == ref.EndChapter {
				last = ref.EndVerse
			} else {
				count, err := s.store.VerseCount(ctx, s.version, ref.Book, ch)
				if err != nil {
					return nil, err
				}
				last = count
			}
			for v := first; v <= last; v++ {
				ids = append(ids, canon.NewVerseID(ref.Book, ch, v))
			}
		}
	}
	return ids, nil
}

// PassageText renders the verses behind ids as plain text with verse
// numbers, trimmed of surrounding whitespace. Identifiers missing from the
// store are omitted; if none resolve the result is empty.
func (s *Service) PassageText(ctx context.Context, ids []canon.VerseID) (string, error) {
	verses, err := s.store.Verses(ctx, s.version, ids)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, v := range verses {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d. %s", v.ID.Verse(), v.Text)
	}
	return strings.TrimSpace(b.String()), nil
}

// FormatLabel renders the human-readable citation label for a reference.
func (s *Service) FormatLabel(ref Reference) string {
	return ref.String()
}
