package refs

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/oremus-tools/sigla/core/canon"
	cerrors "github.com/oremus-tools/sigla/core/errors"
)

// refGrammar is the participle grammar for canonical reference strings.
// Examples: "Matthew 5", "Matthew 5:1-3", "1 Corinthians 13:1,4-7",
// "Genesis 1:28-2:3", "Song of Solomon 2:4".
type refGrammar struct {
	BookNumber string       `parser:"@Number?"`
	BookWords  []string     `parser:"@Word+"`
	Chapter    int          `parser:"@Number"`
	Groups     []verseGroup `parser:"( \":\" @@ ( \",\" @@ )* )?"`
}

// verseGroup is one comma-separated element of the verse list. The number
// after a dash is captured as RangeEnd and reinterpreted after parsing: with
// a trailing ":Number" it is an end chapter, otherwise an end verse.
type verseGroup struct {
	Start    int  `parser:"@Number"`
	RangeEnd *int `parser:"( \"-\" @Number"`
	CrossEnd *int `parser:"( \":\" @Number )? )?"`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[refGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReferences parses a canonical reference query string into structured
// references, one per verse group ("Matthew 5:1,3-5" yields two). A string
// with no verse list yields a single chapter-only reference with zero verse
// fields. Malformed input or an unknown book returns an error unwrapping to
// errors.ErrInvalidReference; callers treat that as a recoverable skip.
func ParseReferences(s string) ([]Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &cerrors.ParseError{Input: s, Message: "empty reference"}
	}

	parsed, err := referenceParser.ParseString("", s)
	if err != nil {
		return nil, &cerrors.ParseError{Input: s, Message: err.Error()}
	}

	name := strings.Join(parsed.BookWords, " ")
	if parsed.BookNumber != "" {
		name = parsed.BookNumber + " " + name
	}
	book, ok := lookupTitle(name)
	if !ok {
		return nil, &cerrors.ParseError{Input: s, Message: "unknown book " + name}
	}
	if parsed.Chapter < 1 {
		return nil, &cerrors.ParseError{Input: s, Message: "chapter must be positive"}
	}

	if len(parsed.Groups) == 0 {
		return []Reference{{
			Book:         book,
			StartChapter: parsed.Chapter,
			EndChapter:   parsed.Chapter,
		}}, nil
	}

	out := make([]Reference, 0, len(parsed.Groups))
	for _, g := range parsed.Groups {
		ref := Reference{
			Book:         book,
			StartChapter: parsed.Chapter,
			StartVerse:   g.Start,
			EndChapter:   parsed.Chapter,
			EndVerse:     g.Start,
		}
		switch {
		case g.CrossEnd != nil:
			ref.EndChapter = *g.RangeEnd
			ref.EndVerse = *g.CrossEnd
		case g.RangeEnd != nil:
			ref.EndVerse = *g.RangeEnd
		}
		if ref.StartVerse < 1 || (ref.EndVerse < ref.StartVerse && ref.EndChapter == ref.StartChapter) {
			return nil, &cerrors.ParseError{Input: s, Message: "invalid verse range"}
		}
		out = append(out, ref)
	}
	return out, nil
}

// titleIndex maps normalized book titles and common English abbreviations to
// canonical books. Built once at init; read-only afterwards.
var titleIndex = buildTitleIndex()

// englishAbbrevs lists common English abbreviations accepted by the parser in
// addition to the full canonical titles.
var englishAbbrevs = map[string]canon.Book{
	"GEN": canon.Genesis, "EXOD": canon.Exodus, "EX": canon.Exodus,
	"LEV": canon.Leviticus, "NUM": canon.Numbers, "DEUT": canon.Deuteronomy,
	"JOSH": canon.Joshua, "JUDG": canon.Judges, "1SAM": canon.Samuel1,
	"2SAM": canon.Samuel2, "1KGS": canon.Kings1, "2KGS": canon.Kings2,
	"1CHR": canon.Chronicles1, "2CHR": canon.Chronicles2, "NEH": canon.Nehemiah,
	"ESTH": canon.Esther, "PS": canon.Psalms, "PROV": canon.Proverbs,
	"ECCL": canon.Ecclesiastes, "SONG": canon.SongOfSolomon, "ISA": canon.Isaiah,
	"JER": canon.Jeremiah, "LAM": canon.Lamentations, "EZEK": canon.Ezekiel,
	"DAN": canon.Daniel, "HOS": canon.Hosea, "OBAD": canon.Obadiah,
	"MIC": canon.Micah, "NAH": canon.Nahum, "HAB": canon.Habakkuk,
	"ZEPH": canon.Zephaniah, "HAG": canon.Haggai, "ZECH": canon.Zechariah,
	"MAL": canon.Malachi, "MATT": canon.Matthew, "MT": canon.Matthew,
	"MK": canon.Mark, "LK": canon.Luke, "JN": canon.John,
	"ROM": canon.Romans, "1COR": canon.Corinthians1, "2COR": canon.Corinthians2,
	"GAL": canon.Galatians, "EPH": canon.Ephesians, "PHIL": canon.Philippians,
	"COL": canon.Colossians, "1THESS": canon.Thessalonians1, "2THESS": canon.Thessalonians2,
	"1TIM": canon.Timothy1, "2TIM": canon.Timothy2, "PHLM": canon.Philemon,
	"HEB": canon.Hebrews, "JAS": canon.James, "1PET": canon.Peter1,
	"2PET": canon.Peter2, "1JOHN": canon.John1, "2JOHN": canon.John2,
	"3JOHN": canon.John3, "REV": canon.Revelation, "TOB": canon.Tobit,
	"JDT": canon.Judith, "WIS": canon.Wisdom, "SIR": canon.Sirach,
	"BAR": canon.Baruch, "1MACC": canon.Maccabees1, "2MACC": canon.Maccabees2,
}

func buildTitleIndex() map[string]canon.Book {
	index := make(map[string]canon.Book)
	for _, b := range canon.All() {
		index[normalizeTitle(b.Title())] = b
	}
	for key, b := range englishAbbrevs {
		index[key] = b
	}
	return index
}

func lookupTitle(name string) (canon.Book, bool) {
	b, ok := titleIndex[normalizeTitle(name)]
	return b, ok
}

func normalizeTitle(name string) string {
	name = strings.ToUpper(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '.':
			return -1
		}
		return r
	}, name)
}
