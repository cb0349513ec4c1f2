package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jwielgosz/schemify"
	"github.com/jwielgosz/schemify/goquery"
	schemifyhttp "github.com/jwielgosz/schemify/http"
	"github.com/jwielgosz/schemify/jsonld"
	"github.com/jwielgosz/schemify/rod"
	"github.com/jwielgosz/schemify/scrape"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Browser session shared across FAQ scrapes; launched lazily.
	Session *rod.Session

	// Scraper used by commands. Exposed for end-to-end testing.
	Scraper schemify.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Session: rod.NewSession()}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	return m.Session.Close()
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.Scraper == nil {
		m.Scraper = scrape.NewScraper(
			schemifyhttp.NewFetcher(),
			rod.NewFetcher(m.Session),
			goquery.NewExtractor(),
		)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: m.Scraper,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("schemify"),
		kong.Description("Scrape a web page into schema.org structured data."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'schemify --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	typ, err := schemify.ParseSchemaType(c.Type)
	if err != nil {
		return err
	}

	data, err := deps.Scraper.Scrape(deps.Ctx, c.URL, typ)
	if err != nil {
		return err
	}

	if c.DataOnly {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fragment, err := jsonld.Render(data, typ)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, fragment)
	return err
}
