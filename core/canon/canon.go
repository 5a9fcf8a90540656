// Package canon defines the closed set of scripture books recognized by the
// system, along with their titles, chapter counts, and verse identifiers.
//
// The book set covers the 66 protocanonical books plus the deuterocanonical
// books that appear in Polish devotional material (Tobit, Judith, Wisdom,
// Sirach, Baruch, 1-2 Maccabees). The tables are fixed at compile time and
// never mutated; concurrent readers need no locking.
package canon

// Book identifies one canonical scripture book.
type Book int

// Canonical books in traditional order. The numeric value of each book is
// its position in that order and is embedded in verse identifiers.
const (
	Genesis Book = iota + 1
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	Samuel1
	Samuel2
	Kings1
	Kings2
	Chronicles1
	Chronicles2
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSolomon
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	Corinthians1
	Corinthians2
	Galatians
	Ephesians
	Philippians
	Colossians
	Thessalonians1
	Thessalonians2
	Timothy1
	Timothy2
	Titus
	Philemon
	Hebrews
	James
	Peter1
	Peter2
	John1
	John2
	John3
	Jude
	Revelation
	Tobit
	Judith
	Wisdom
	Sirach
	Baruch
	Maccabees1
	Maccabees2
)

// bookCount is the number of canonical books.
const bookCount = int(Maccabees2)

// bookInfo holds static metadata for one book.
type bookInfo struct {
	title    string // short English title used in queries and labels
	chapters int    // chapter count
}

// books is indexed by Book-1. Chapter counts follow the KJV/LXX chapter
// division for the protocanonical and deuterocanonical books respectively.
var books = [bookCount]bookInfo{
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
	{"Tobit", 14},
	{"Judith", 16},
	{"Wisdom", 19},
	{"Sirach", 51},
	{"Baruch", 6},
	{"1 Maccabees", 16},
	{"2 Maccabees", 15},
}

// Valid reports whether b is a member of the canonical set.
func (b Book) Valid() bool {
	return b >= Genesis && int(b) <= bookCount
}

// Title returns the short English title of the book, or "" for an invalid book.
func (b Book) Title() string {
	if !b.Valid() {
		return ""
	}
	return books[b-1].title
}

// Chapters returns the chapter count of the book, or 0 for an invalid book.
func (b Book) Chapters() int {
	if !b.Valid() {
		return 0
	}
	return books[b-1].chapters
}

func (b Book) String() string {
	return b.Title()
}

// All returns every canonical book in order.
func All() []Book {
	out := make([]Book, bookCount)
	for i := range out {
		out[i] = Book(i + 1)
	}
	return out
}

// VerseID addresses a single verse as BBBCCCVVV: three digit groups for
// book, chapter, and verse. IDs of verses within one translation sort in
// text order.
type VerseID int

// NewVerseID builds a verse identifier from its parts.
func NewVerseID(b Book, chapter, verse int) VerseID {
	return VerseID(int(b)*1_000_000 + chapter*1_000 + verse)
}

// Book returns the book component of the identifier.
func (id VerseID) Book() Book {
	return Book(int(id) / 1_000_000)
}

// Chapter returns the chapter component of the identifier.
func (id VerseID) Chapter() int {
	return (int(id) / 1_000) % 1_000
}

// Verse returns the verse component of the identifier.
func (id VerseID) Verse() int {
	return int(id) % 1_000
}
