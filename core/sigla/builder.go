package sigla

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/oremus-tools/sigla/core/refs"
)

// sanitizeVerseSpec normalizes the punctuation soup OCR makes of a verse
// spec into the canonical query form. Steps, in order: truncate at the first
// semicolon (it always belongs to the next citation), drop whitespace, fold
// en/em dashes to hyphens, turn double then single periods into commas,
// strip one defensive leading colon, trim stray commas.
func sanitizeVerseSpec(spec string) string {
	if spec == "" {
		return ""
	}
	if i := strings.IndexByte(spec, ';'); i >= 0 {
		spec = spec[:i]
	}
	spec = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, spec)
	spec = strings.NewReplacer("–", "-", "—", "-").Replace(spec)
	spec = strings.ReplaceAll(spec, "..", ",")
	spec = strings.ReplaceAll(spec, ".", ",")
	spec = strings.TrimPrefix(spec, ":")
	return strings.Trim(spec, ",")
}

// buildQuery assembles the canonical reference query string for a candidate.
func (p *Pipeline) buildQuery(c Candidate) string {
	query := p.svc.ShortTitle(c.Book) + " " + strconv.Itoa(c.Chapter)
	spec := sanitizeVerseSpec(c.VerseSpec)
	if spec == "" {
		return query
	}
	if !strings.HasPrefix(spec, ":") && !strings.HasPrefix(spec, ",") {
		query += ":"
	}
	return query + spec
}

// build converts an accepted candidate into structured references. A query
// the reference service rejects yields no references; that is a recoverable
// per-candidate outcome, not a pipeline failure.
func (p *Pipeline) build(c Candidate) []refs.Reference {
	references, err := p.svc.ParseReferences(p.buildQuery(c))
	if err != nil {
		return nil
	}
	return references
}
