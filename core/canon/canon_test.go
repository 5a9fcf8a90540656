package canon

import "testing"

func TestBookMetadata(t *testing.T) {
	for _, b := range All() {
		if !b.Valid() {
			t.Errorf("All() returned invalid book %d", b)
		}
		if b.Title() == "" {
			t.Errorf("book %d has empty title", b)
		}
		if b.Chapters() <= 0 {
			t.Errorf("book %s has chapter count %d", b, b.Chapters())
		}
	}
}

func TestBookValues(t *testing.T) {
	tests := []struct {
		book     Book
		value    int
		title    string
		chapters int
	}{
		{Genesis, 1, "Genesis", 50},
		{Psalms, 19, "Psalms", 150},
		{Malachi, 39, "Malachi", 4},
		{Matthew, 40, "Matthew", 28},
		{Luke, 42, "Luke", 24},
		{Corinthians1, 46, "1 Corinthians", 16},
		{Revelation, 66, "Revelation", 22},
		{Tobit, 67, "Tobit", 14},
		{Maccabees2, 73, "2 Maccabees", 15},
	}
	for _, tt := range tests {
		if int(tt.book) != tt.value {
			t.Errorf("%s = %d, want %d", tt.title, int(tt.book), tt.value)
		}
		if got := tt.book.Title(); got != tt.title {
			t.Errorf("Title() = %q, want %q", got, tt.title)
		}
		if got := tt.book.Chapters(); got != tt.chapters {
			t.Errorf("%s.Chapters() = %d, want %d", tt.title, got, tt.chapters)
		}
	}
}

func TestInvalidBook(t *testing.T) {
	for _, b := range []Book{0, -1, Maccabees2 + 1} {
		if b.Valid() {
			t.Errorf("Valid(%d) = true, want false", b)
		}
		if b.Title() != "" || b.Chapters() != 0 {
			t.Errorf("invalid book %d has metadata", b)
		}
	}
}

func TestVerseIDRoundTrip(t *testing.T) {
	tests := []struct {
		book    Book
		chapter int
		verse   int
		want    VerseID
	}{
		{Genesis, 1, 1, 1001001},
		{Matthew, 5, 3, 40005003},
		{Psalms, 119, 176, 19119176},
		{Maccabees2, 15, 39, 73015039},
	}
	for _, tt := range tests {
		id := NewVerseID(tt.book, tt.chapter, tt.verse)
		if id != tt.want {
			t.Errorf("NewVerseID(%s, %d, %d) = %d, want %d", tt.book, tt.chapter, tt.verse, id, tt.want)
		}
		if id.Book() != tt.book || id.Chapter() != tt.chapter || id.Verse() != tt.verse {
			t.Errorf("round trip of %d gave (%d, %d, %d)", id, id.Book(), id.Chapter(), id.Verse())
		}
	}
}

func TestVerseIDOrdering(t *testing.T) {
	a := NewVerseID(Matthew, 5, 48)
	b := NewVerseID(Matthew, 6, 1)
	c := NewVerseID(Mark, 1, 1)
	if !(a < b && b < c) {
		t.Errorf("verse ids not ordered: %d %d %d", a, b, c)
	}
}
