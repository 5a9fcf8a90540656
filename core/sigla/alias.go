// Package sigla locates abbreviated scripture citations in free-form OCR
// text and resolves them to canonical passages. The pipeline is a pure
// transform: scan, build query, parse, deduplicate, resolve. Every
// per-candidate failure is a silent skip; only the OCR boundary can fail a
// whole request.
package sigla

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/oremus-tools/sigla/core/canon"
)

// NormalizeKey converts a raw book token into the alias lookup key: stroked
// L folded to plain L, accented letters decomposed and stripped of combining
// marks, whitespace and periods removed, uppercased.
//
// Unicode decomposition does not fold Ł/ł into L/l (the stroke is not a
// combining mark), so those are replaced before decomposition.
func NormalizeKey(raw string) string {
	folded := strings.NewReplacer("Ł", "L", "ł", "l").Replace(raw)
	decomposed := norm.NFKD.String(folded)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) || unicode.IsSpace(r) || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// rawAliases is the fixed alias source list: Polish abbreviations as printed
// in devotional material, plus common Latin/English variants. Keys are
// normalized at build time; every normalized key must map to exactly one
// book (a duplicate key across two books is a build-time integrity bug, not
// a runtime condition).
var rawAliases = []struct {
	book    canon.Book
	aliases []string
}{
	{canon.Genesis, []string{"Rdz", "Rodz", "Gen"}},
	{canon.Exodus, []string{"Wj", "Wyj", "Ex", "Exodus"}},
	{canon.Leviticus, []string{"Kpł", "Lev"}},
	{canon.Numbers, []string{"Lb", "Liczb", "Num"}},
	{canon.Deuteronomy, []string{"Pwt", "Deut"}},
	{canon.Joshua, []string{"Joz", "Jos"}},
	{canon.Judges, []string{"Sdz", "Sędz", "Jdg"}},
	{canon.Ruth, []string{"Rt", "Rut"}},
	{canon.Samuel1, []string{"1Sm", "1Sam", "ISm"}},
	{canon.Samuel2, []string{"2Sm", "2Sam", "IISm"}},
	{canon.Kings1, []string{"1Krl", "1Kro", "1Kgs"}},
	{canon.Kings2, []string{"2Krl", "2Kro", "2Kgs"}},
	{canon.Chronicles1, []string{"1Krn", "1Kron"}},
	{canon.Chronicles2, []string{"2Krn", "2Kron"}},
	{canon.Ezra, []string{"Ezd", "Ezra"}},
	{canon.Nehemiah, []string{"Ne", "Neh"}},
	{canon.Esther, []string{"Est"}},
	{canon.Job, []string{"Hi", "Job"}},
	{canon.Psalms, []string{"Ps", "Pslm"}},
	{canon.Proverbs, []string{"Prz", "Przyp", "Pr"}},
	{canon.Ecclesiastes, []string{"Koh", "Kohelet"}},
	{canon.SongOfSolomon, []string{"Pnp", "Pieśń", "Pns"}},
	{canon.Isaiah, []string{"Iz", "Isa"}},
	{canon.Jeremiah, []string{"Jr", "Jer"}},
	{canon.Lamentations, []string{"Lm", "Lam"}},
	{canon.Ezekiel, []string{"Ez", "Eze"}},
	{canon.Daniel, []string{"Dn", "Dan"}},
	{canon.Hosea, []string{"Oz", "Hos"}},
	{canon.Joel, []string{"Jl", "Joel"}},
	{canon.Amos, []string{"Am"}},
	{canon.Obadiah, []string{"Abd", "Ob"}},
	{canon.Jonah, []string{"Jon"}},
	{canon.Micah, []string{"Mi", "Mic"}},
	{canon.Nahum, []string{"Na"}},
	{canon.Habakkuk, []string{"Ha", "Hab"}},
	{canon.Zephaniah, []string{"So", "Sop"}},
	{canon.Haggai, []string{"Ag", "Hag"}},
	{canon.Zechariah, []string{"Za", "Zach"}},
	{canon.Malachi, []string{"Ml", "Mal"}},
	{canon.Matthew, []string{"Mt", "Mat"}},
	{canon.Mark, []string{"Mk", "Mrk"}},
	{canon.Luke, []string{"Łk", "Luk"}},
	{canon.John, []string{"J", "Jan", "Jn"}},
	{canon.Acts, []string{"Dz", "DAp", "DzAp"}},
	{canon.Romans, []string{"Rz", "Rom"}},
	{canon.Corinthians1, []string{"1Kor", "IKor"}},
	{canon.Corinthians2, []string{"2Kor", "IIKor"}},
	{canon.Galatians, []string{"Ga", "Gal"}},
	{canon.Ephesians, []string{"Ef", "Eph"}},
	{canon.Philippians, []string{"Flp", "Php"}},
	{canon.Colossians, []string{"Kol", "Col"}},
	{canon.Thessalonians1, []string{"1Tes", "1Tesal"}},
	{canon.Thessalonians2, []string{"2Tes", "2Tesal"}},
	{canon.Timothy1, []string{"1Tm", "1Tim"}},
	{canon.Timothy2, []string{"2Tm", "2Tim"}},
	{canon.Titus, []string{"Tt", "Tit"}},
	{canon.Philemon, []string{"Flm", "Phm"}},
	{canon.Hebrews, []string{"Hbr", "Heb"}},
	{canon.James, []string{"Jk", "Jak"}},
	{canon.Peter1, []string{"1P", "1Pi", "1Ptr"}},
	{canon.Peter2, []string{"2P", "2Pi", "2Ptr"}},
	{canon.John1, []string{"1J", "1Jan", "1Jn"}},
	{canon.John2, []string{"2J", "2Jan", "2Jn"}},
	{canon.John3, []string{"3J", "3Jan", "3Jn"}},
	{canon.Jude, []string{"Jud"}},
	{canon.Revelation, []string{"Ap", "Apk", "Obj", "Objaw"}},
	{canon.Tobit, []string{"Tb", "Tob"}},
	{canon.Wisdom, []string{"Mdr", "Wis"}},
	{canon.Sirach, []string{"Syr", "Sir"}},
	{canon.Maccabees1, []string{"1Mch", "1Mac"}},
	{canon.Maccabees2, []string{"2Mch", "2Mac"}},
}

// aliasTable maps normalized keys to books. Built once at init and read-only
// afterwards; concurrent pipeline invocations share it without locking.
var aliasTable = buildAliasTable()

func buildAliasTable() map[string]canon.Book {
	table := make(map[string]canon.Book)
	for _, entry := range rawAliases {
		for _, alias := range entry.aliases {
			table[NormalizeKey(alias)] = entry.book
		}
	}
	return table
}

// LookupBook resolves a raw book token to a canonical book via the alias
// table. Unknown tokens return ok=false.
func LookupBook(token string) (canon.Book, bool) {
	book, ok := aliasTable[NormalizeKey(token)]
	return book, ok
}

// Aliases returns the registered alias strings for a book, in source order.
// Intended for diagnostics and tests.
func Aliases(book canon.Book) []string {
	for _, entry := range rawAliases {
		if entry.book == book {
			return entry.aliases
		}
	}
	return nil
}
