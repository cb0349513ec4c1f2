package main

import (
	"context"
	"io"

	"github.com/jwielgosz/schemify"
)

// Dependencies holds the services and writers commands run against.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper schemify.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape a URL and print its structured data"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL      string `arg:"" help:"Page URL to scrape"`
	Type     string `short:"t" default:"article" enum:"article,breadcrumbs,faq" help:"Schema type (article, breadcrumbs, faq)"`
	DataOnly bool   `help:"Print the extracted record as JSON instead of the JSON-LD fragment"`
}
