package sigla

import (
	"testing"

	"github.com/oremus-tools/sigla/core/canon"
	"github.com/oremus-tools/sigla/core/refs"
)

func TestDedupe(t *testing.T) {
	a := refs.Reference{Book: canon.Matthew, StartChapter: 5, StartVerse: 1, EndChapter: 5, EndVerse: 3}
	b := refs.Reference{Book: canon.Luke, StartChapter: 2, StartVerse: 8, EndChapter: 2, EndVerse: 14}

	got := Dedupe([]refs.Reference{a, b, a, b, a})
	if len(got) != 2 {
		t.Fatalf("got %d references, want 2", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestDedupeDistinguishesFields(t *testing.T) {
	base := refs.Reference{Book: canon.Matthew, StartChapter: 5, StartVerse: 1, EndChapter: 5, EndVerse: 3}
	variants := []refs.Reference{
		base,
		{Book: canon.Mark, StartChapter: 5, StartVerse: 1, EndChapter: 5, EndVerse: 3},
		{Book: canon.Matthew, StartChapter: 6, StartVerse: 1, EndChapter: 6, EndVerse: 3},
		{Book: canon.Matthew, StartChapter: 5, StartVerse: 2, EndChapter: 5, EndVerse: 3},
		{Book: canon.Matthew, StartChapter: 5, StartVerse: 1, EndChapter: 5, EndVerse: 4},
	}
	got := Dedupe(variants)
	if len(got) != len(variants) {
		t.Errorf("distinct references collapsed: got %d, want %d", len(got), len(variants))
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %+v", got)
	}
}
