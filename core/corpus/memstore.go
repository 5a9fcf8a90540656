package corpus

import (
	"context"
	"sort"
	"sync"

	"github.com/oremus-tools/sigla/core/canon"
)

// MemStore is a map-backed Store. It is intended for tests and embedded
// sample corpora; writes and reads may be interleaved safely.
type MemStore struct {
	mu     sync.RWMutex
	verses map[string]map[canon.VerseID]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{verses: make(map[string]map[canon.VerseID]string)}
}

// AddVerse stores one verse under the given translation version.
func (s *MemStore) AddVerse(version string, book canon.Book, chapter, verse int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.verses[version]
	if !ok {
		byID = make(map[canon.VerseID]string)
		s.verses[version] = byID
	}
	byID[canon.NewVerseID(book, chapter, verse)] = text
}

// AddChapter stores a whole chapter, verse texts in order starting at verse 1.
func (s *MemStore) AddChapter(version string, book canon.Book, chapter int, texts []string) {
	for i, text := range texts {
		s.AddVerse(version, book, chapter, i+1, text)
	}
}

// VerseCount implements Store.
func (s *MemStore) VerseCount(_ context.Context, version string, book canon.Book, chapter int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for id := range s.verses[version] {
		if id.Book() == book && id.Chapter() == chapter {
			count++
		}
	}
	return count, nil
}

// Verses implements Store.
func (s *MemStore) Verses(_ context.Context, version string, ids []canon.VerseID) ([]Verse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := s.verses[version]
	var out []Verse
	for _, id := range ids {
		if text, ok := byID[id]; ok {
			out = append(out, Verse{ID: id, Text: text})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close implements Store.
func (s *MemStore) Close() error {
	return nil
}
