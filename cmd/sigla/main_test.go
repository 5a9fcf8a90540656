package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oremus-tools/sigla/core/canon"
	"github.com/oremus-tools/sigla/core/corpus"
)

const zefaniaFixture = `<?xml version="1.0" encoding="utf-8"?>
<XMLBIBLE biblename="Test">
  <BIBLEBOOK bnumber="42" bname="Luke">
    <CHAPTER cnumber="2">
      <VERS vnumber="8">And there were in the same country shepherds.</VERS>
      <VERS vnumber="9">And, lo, the angel of the Lord came upon them.</VERS>
      <VERS vnumber="10">And the angel said unto them, Fear not.</VERS>
    </CHAPTER>
  </BIBLEBOOK>
</XMLBIBLE>
`

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// setTestDB points the global CLI flags at a fresh database.
func setTestDB(t *testing.T, dir string) {
	t.Helper()
	oldDB, oldVersion := CLI.DB, CLI.VersionID
	CLI.DB = filepath.Join(dir, "corpus.db")
	CLI.VersionID = "KJV"
	t.Cleanup(func() {
		CLI.DB, CLI.VersionID = oldDB, oldVersion
	})
}

func TestImportCmd_Run(t *testing.T) {
	dir := t.TempDir()
	setTestDB(t, dir)
	xmlPath := createTestFile(t, dir, "test.xml", zefaniaFixture)

	cmd := &ImportCmd{XML: xmlPath}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ImportCmd.Run() error: %v", err)
	}

	store, err := corpus.OpenSQL(CLI.DB)
	if err != nil {
		t.Fatalf("opening imported database: %v", err)
	}
	defer store.Close()

	count, err := store.VerseCount(context.Background(), "KJV", canon.Luke, 2)
	if err != nil {
		t.Fatalf("VerseCount: %v", err)
	}
	if count != 3 {
		t.Errorf("VerseCount = %d, want 3", count)
	}
}

func TestImportCmd_RejectsEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	setTestDB(t, dir)
	xmlPath := createTestFile(t, dir, "empty.xml", `<?xml version="1.0"?><XMLBIBLE></XMLBIBLE>`)

	cmd := &ImportCmd{XML: xmlPath}
	if err := cmd.Run(); err == nil {
		t.Error("expected error for corpus with no verses")
	}
}

func TestTextCmd_Run(t *testing.T) {
	dir := t.TempDir()
	setTestDB(t, dir)
	xmlPath := createTestFile(t, dir, "test.xml", zefaniaFixture)
	if err := (&ImportCmd{XML: xmlPath}).Run(); err != nil {
		t.Fatalf("import: %v", err)
	}

	textPath := createTestFile(t, dir, "note.txt", "Czytanie: Łk 2,8-10\n")
	cmd := &TextCmd{File: textPath, JSON: true}
	if err := cmd.Run(); err != nil {
		t.Errorf("TextCmd.Run() error: %v", err)
	}
}

func TestVersionCmd_Run(t *testing.T) {
	if err := (&VersionCmd{}).Run(); err != nil {
		t.Errorf("VersionCmd.Run() error: %v", err)
	}
}
