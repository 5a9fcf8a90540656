package corpus

import (
	"context"
	"database/sql"
	"strings"

	"github.com/oremus-tools/sigla/core/canon"
	cerrors "github.com/oremus-tools/sigla/core/errors"
	"github.com/oremus-tools/sigla/core/sqlite"
)

// verseDDL creates the verse table. Verse ids use the packed BBBCCCVVV form,
// so the primary key serves both lookup shapes the store answers; the book
// and chapter columns are kept denormalized for the count query.
const verseDDL = `
CREATE TABLE IF NOT EXISTS verses (
	version TEXT NOT NULL,
	id      INTEGER NOT NULL,
	book    INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	text    TEXT NOT NULL,
	PRIMARY KEY (version, id)
);
CREATE INDEX IF NOT EXISTS verses_chapter ON verses (version, book, chapter)`

// SQLStore is a SQLite-backed Store.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens (creating if necessary) a SQLite verse store at path.
func OpenSQL(path string) (*SQLStore, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, cerrors.Wrap(err, "opening verse store")
	}
	for _, stmt := range strings.Split(verseDDL, ";") {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, cerrors.Wrap(err, "initializing verse store schema")
		}
	}
	return &SQLStore{db: db}, nil
}

// VerseCount implements Store.
func (s *SQLStore) VerseCount(ctx context.Context, version string, book canon.Book, chapter int) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM verses WHERE version = ? AND book = ? AND chapter = ?`,
		version, int(book), chapter).Scan(&count)
	if err != nil {
		return 0, cerrors.Wrap(err, "counting verses")
	}
	return count, nil
}

// Verses implements Store.
func (s *SQLStore) Verses(ctx context.Context, version string, ids []canon.VerseID) ([]Verse, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, version)
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, int(id))
	}

	query := `SELECT id, text FROM verses WHERE version = ? AND id IN (` +
		strings.Join(placeholders, ",") + `) ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, cerrors.Wrap(err, "querying verses")
	}
	defer rows.Close()

	var out []Verse
	for rows.Next() {
		var id int
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, cerrors.Wrap(err, "scanning verse row")
		}
		out = append(out, Verse{ID: canon.VerseID(id), Text: text})
	}
	return out, rows.Err()
}

// InsertVerses stores a batch of verses for a translation inside one
// transaction. Existing rows with the same key are replaced.
func (s *SQLStore) InsertVerses(ctx context.Context, version string, verses []Verse) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return cerrors.Wrap(err, "beginning insert transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO verses (version, id, book, chapter, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return cerrors.Wrap(err, "preparing verse insert")
	}
	defer stmt.Close()

	for _, v := range verses {
		id := v.ID
		if _, err := stmt.ExecContext(ctx, version, int(id), int(id.Book()), id.Chapter(), v.Text); err != nil {
			return cerrors.Wrapf(err, "inserting verse %d", id)
		}
	}
	return tx.Commit()
}

// Close implements Store.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
