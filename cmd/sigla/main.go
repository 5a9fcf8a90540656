// Command sigla recognizes scripture citations in text and scanned images
// and resolves them to passage text from a local verse corpus.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/oremus-tools/sigla/core/corpus"
	"github.com/oremus-tools/sigla/core/ocr"
	"github.com/oremus-tools/sigla/core/refs"
	"github.com/oremus-tools/sigla/core/sigla"
	"github.com/oremus-tools/sigla/internal/logging"
	"github.com/oremus-tools/sigla/internal/web"
)

const version = "0.1.0"

// CLI defines the command-line interface for sigla.
var CLI struct {
	// Global flags
	DB        string `name:"db" help:"Path to the verse corpus database" default:"sigla.db" env:"SIGLA_DB" type:"path"`
	VersionID string `name:"version-id" help:"Corpus version to resolve against" default:"KJV" env:"SIGLA_VERSION"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" env:"SIGLA_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" env:"SIGLA_LOG_FORMAT"`

	Scan    ScanCmd    `cmd:"" help:"OCR an image and resolve the citations it contains"`
	Text    TextCmd    `cmd:"" help:"Resolve citations in plain text (file or stdin)"`
	Import  ImportCmd  `cmd:"" help:"Import a Zefania XML corpus into the database"`
	Serve   ServeCmd   `cmd:"" help:"Start the upload web server"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// openPipeline opens the corpus database and builds the citation pipeline.
// The caller must close the returned store.
func openPipeline() (*corpus.SQLStore, *sigla.Pipeline, error) {
	store, err := corpus.OpenSQL(CLI.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open corpus database: %w", err)
	}
	svc := refs.NewService(store, CLI.VersionID)
	return store, sigla.NewPipeline(svc), nil
}

// printScan writes the pipeline output as text or JSON.
func printScan(results []sigla.Result, references []refs.Reference, asJSON bool) error {
	if asJSON {
		labels := make([]string, 0, len(references))
		for _, ref := range references {
			labels = append(labels, ref.String())
		}
		out := struct {
			References []string       `json:"references"`
			Results    []sigla.Result `json:"results"`
		}{References: labels, Results: results}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(references) == 0 {
		fmt.Println("No citations found.")
		return nil
	}
	fmt.Printf("Recognized %d citation(s):\n", len(references))
	for _, ref := range references {
		fmt.Printf("  - %s\n", ref.String())
	}
	if len(results) > 0 {
		fmt.Println()
		for _, res := range results {
			fmt.Printf("%s\n  %s\n\n", res.Label, res.Text)
		}
	}
	return nil
}

// ScanCmd extracts text from an image and resolves the citations found.
type ScanCmd struct {
	Image     string `arg:"" help:"Path to image file" type:"existingfile"`
	Languages string `help:"Tesseract language codes" default:"pol+eng"`
	JSON      bool   `help:"Output as JSON"`
}

func (c *ScanCmd) Run() error {
	ctx := context.Background()

	file, err := os.Open(c.Image)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	engine := ocr.NewTesseract()
	engine.Languages = c.Languages
	text, err := engine.ExtractText(ctx, file)
	if err != nil {
		return fmt.Errorf("text extraction failed: %w", err)
	}

	store, pipeline, err := openPipeline()
	if err != nil {
		return err
	}
	defer store.Close()

	results, references, err := pipeline.Run(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to resolve citations: %w", err)
	}
	return printScan(results, references, c.JSON)
}

// TextCmd resolves citations in plain text read from a file or stdin.
type TextCmd struct {
	File string `arg:"" optional:"" help:"Path to text file (stdin when omitted)" type:"existingfile"`
	JSON bool   `help:"Output as JSON"`
}

func (c *TextCmd) Run() error {
	ctx := context.Background()

	var in io.Reader = os.Stdin
	if c.File != "" {
		file, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()
		in = file
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	store, pipeline, err := openPipeline()
	if err != nil {
		return err
	}
	defer store.Close()

	results, references, err := pipeline.Run(ctx, string(data))
	if err != nil {
		return fmt.Errorf("failed to resolve citations: %w", err)
	}
	return printScan(results, references, c.JSON)
}

// ImportCmd loads a Zefania XML corpus (plain or xz-compressed) into the
// verse database.
type ImportCmd struct {
	XML string `arg:"" help:"Path to Zefania XML file (.xml or .xml.xz)" type:"existingfile"`
}

func (c *ImportCmd) Run() error {
	ctx := context.Background()

	file, err := os.Open(c.XML)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	store, err := corpus.OpenSQL(CLI.DB)
	if err != nil {
		return fmt.Errorf("failed to open corpus database: %w", err)
	}
	defer store.Close()

	count, err := corpus.ImportZefania(ctx, store, file, CLI.VersionID)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported: %s\n", c.XML)
	fmt.Printf("  Version: %s\n", CLI.VersionID)
	fmt.Printf("  Verses: %d\n", count)
	fmt.Printf("  Database: %s\n", CLI.DB)
	return nil
}

// ServeCmd starts the upload web server.
type ServeCmd struct {
	Port      int    `help:"HTTP server port" default:"8080" env:"SIGLA_PORT"`
	CacheSize int    `name:"cache-size" help:"OCR result cache entries" default:"128"`
	Languages string `help:"Tesseract language codes" default:"pol+eng"`
}

func (c *ServeCmd) Run() error {
	store, pipeline, err := openPipeline()
	if err != nil {
		return err
	}
	defer store.Close()

	engine := ocr.NewTesseract()
	engine.Languages = c.Languages

	srv, err := web.NewServer(web.Config{Port: c.Port, CacheSize: c.CacheSize}, engine, pipeline)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	return srv.ListenAndServe()
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("sigla version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sigla"),
		kong.Description("Scripture citation scanner and resolver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
