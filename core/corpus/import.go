package corpus

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/ulikunitz/xz"

	"github.com/oremus-tools/sigla/core/canon"
	cerrors "github.com/oremus-tools/sigla/core/errors"
)

// xzMagic is the file signature of the xz container format.
var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// ImportZefania reads a Zefania-XML Bible corpus from r and inserts it into
// the store under the given translation version. Input compressed with xz is
// unwrapped transparently. It returns the number of verses imported.
//
// Zefania book numbers 1-66 follow canonical order; deuterocanonical books
// carry publisher-specific numbers and are skipped unless they fall inside
// the canon range. Empty verses and verses with malformed number attributes
// are skipped silently, matching the tolerant posture of the rest of the
// pipeline.
func ImportZefania(ctx context.Context, store *SQLStore, r io.Reader, version string) (int, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err == nil && bytes.Equal(head, xzMagic) {
		xzr, err := xz.NewReader(br)
		if err != nil {
			return 0, cerrors.Wrap(err, "opening xz stream")
		}
		return importZefaniaXML(ctx, store, xzr, version)
	}
	return importZefaniaXML(ctx, store, br, version)
}

func importZefaniaXML(ctx context.Context, store *SQLStore, r io.Reader, version string) (int, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return 0, cerrors.Wrap(err, "parsing Zefania XML")
	}

	var verses []Verse
	for _, bookNode := range xmlquery.Find(doc, "//BIBLEBOOK") {
		book := canon.Book(attrInt(bookNode, "bnumber"))
		if !book.Valid() {
			continue
		}
		for _, chapterNode := range xmlquery.Find(bookNode, "CHAPTER") {
			chapter := attrInt(chapterNode, "cnumber")
			if chapter < 1 {
				continue
			}
			for _, verseNode := range xmlquery.Find(chapterNode, "VERS") {
				verse := attrInt(verseNode, "vnumber")
				text := strings.TrimSpace(verseNode.InnerText())
				if verse < 1 || text == "" {
					continue
				}
				verses = append(verses, Verse{
					ID:   canon.NewVerseID(book, chapter, verse),
					Text: text,
				})
			}
		}
	}

	if len(verses) == 0 {
		return 0, &cerrors.ValidationError{Field: "corpus", Message: "no verses found in input"}
	}
	if err := store.InsertVerses(ctx, version, verses); err != nil {
		return 0, err
	}
	return len(verses), nil
}

func attrInt(node *xmlquery.Node, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(node.SelectAttr(name)))
	if err != nil {
		return 0
	}
	return n
}
