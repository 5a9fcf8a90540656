package sigla

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/oremus-tools/sigla/core/canon"
)

// Candidate is one potential citation extracted by the scanner. It lives
// only for the duration of a single extraction pass.
type Candidate struct {
	RawBook   string     // book token as matched, before normalization
	Book      canon.Book // resolved canonical book
	Chapter   int
	VerseSpec string // raw verse spec, "" when absent
}

// citationPattern matches one citation: an optional leading numeral (1-3),
// a book token of Latin or Polish letters and periods, the chapter number,
// and an optional verse spec introduced by "," or ":". The separator between
// book token and chapter is \s* so that OCR output which merged the
// abbreviation onto the digits ("Łk10,25-28") still matches. The verse-spec
// class stops at ";", which always terminates a citation.
var citationPattern = regexp.MustCompile(
	`((?:[1-3]\s*)?[A-Za-zĄĆĘŁŃÓŚŹŻąćęłńóśźż.]+)\s*(\d{1,3})(?:[,:]([\d\-–—,.\s]+))?`,
)

// newlineCollapser folds OCR line wrapping so citations split across lines
// still match.
var newlineCollapser = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Scan extracts citation candidates from raw text in text order. Matching is
// leftmost-first and non-overlapping; tokens that do not resolve to a known
// book are discarded without producing a candidate.
func Scan(text string) []Candidate {
	normalized := newlineCollapser.Replace(text)

	var candidates []Candidate
	for _, m := range citationPattern.FindAllStringSubmatch(normalized, -1) {
		book, ok := LookupBook(m[1])
		if !ok {
			continue
		}
		chapter, err := strconv.Atoi(m[2])
		if err != nil || chapter < 1 {
			continue
		}
		candidates = append(candidates, Candidate{
			RawBook:   m[1],
			Book:      book,
			Chapter:   chapter,
			VerseSpec: m[3],
		})
	}
	return candidates
}
