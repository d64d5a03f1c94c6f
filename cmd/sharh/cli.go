package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Collections sharh.CollectionService
	Records     sharh.RecordService
	Fetcher     sharh.Fetcher
	Parser      sharh.PageParser
	Harvester   *crawl.Harvester
	Scraper     *crawl.CatalogScraper

	// NewStore opens the document store for an output path. Nil means
	// an atomic JSON file store.
	NewStore func(path string) sharh.DocumentStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"SHARH_DB" help:"Database path"`
	Verbose bool   `short:"v" help:"Log per-section diagnostics"`

	Harvest  HarvestCmd  `cmd:"" help:"Harvest sermon explanations into a collection"`
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape a catalog listing into a collection"`
	List     ListCmd     `cmd:"" help:"List all collections"`
	Show     ShowCmd     `cmd:"" help:"Show the records of a collection"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a collection and its records"`
	Export   ExportCmd   `cmd:"" help:"Export a collection to a JSON file"`
	Clean    CleanCmd    `cmd:"" help:"Strip footnote references from a JSON file"`
	Renumber RenumberCmd `cmd:"" help:"Shift or delete numbered labels in a JSON file"`
	Blank    BlankCmd    `cmd:"" help:"Replace entries of a JSON file with empty objects"`
	Viewer   ViewerCmd   `cmd:"" help:"Render a JSON file as a searchable HTML page"`
	Probe    ProbeCmd    `cmd:"" help:"Show the blocks and sections of one page"`
}

// FetchFlags configures page fetching.
type FetchFlags struct {
	Timeout     time.Duration `default:"30s" help:"Per-request timeout"`
	Charset     string        `default:"windows-1256" help:"Charset for pages that declare none"`
	Rate        float64       `default:"1" help:"Requests per second per host"`
	Concurrency int           `short:"c" default:"2" help:"Concurrent fetch limit"`
}

// FormatFlags override the fields of the default document format.
type FormatFlags struct {
	Marker   string   `help:"Heading token that opens a section" placeholder:"TOKEN"`
	Anchor   []string `help:"Phrase announcing the commentary (repeatable)" placeholder:"PHRASE"`
	Emphasis string   `help:"Class marking anchor paragraphs" placeholder:"CLASS"`
	Footnote string   `help:"Class marking footnote paragraphs" placeholder:"CLASS"`
	Prefix   string   `help:"Prefix of section labels" placeholder:"PREFIX"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Name    string `arg:"" help:"Collection name"`
	BaseURL string `name:"base-url" help:"Base URL of the books"`
	Books   []int  `help:"Book numbers to harvest (default 1-5)"`
	Pages   int    `default:"28" help:"Pages per book"`
	Out     string `short:"o" type:"path" help:"Also write the sections to a JSON file"`
	Force   bool   `short:"f" help:"Replace the records of an existing collection"`

	Fetch  FetchFlags  `embed:""`
	Format FormatFlags `embed:""`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Name  string `arg:"" help:"Collection name"`
	URL   string `arg:"" help:"Listing page URL"`
	Out   string `short:"o" type:"path" help:"Also write the entries to a JSON file"`
	Force bool   `short:"f" help:"Replace the records of an existing collection"`

	Fetch FetchFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Label string `arg:"" optional:"" help:"Record label"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Collection name"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Collection name"`
	File string `arg:"" type:"path" help:"Output JSON file"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	In     string `arg:"" type:"existingfile" help:"Input JSON file"`
	Out    string `arg:"" optional:"" type:"path" help:"Output JSON file (default: rewrite input)"`
	Prefix string `default:"الخطبة" help:"Prefix of section labels, used for ordering"`
}

// RenumberCmd is the "renumber" subcommand.
type RenumberCmd struct {
	File      string `arg:"" type:"existingfile" help:"JSON file to renumber in place"`
	Prefix    string `default:"الخطبة" help:"Prefix of section labels"`
	ShiftFrom int    `name:"shift-from" help:"First section number to shift"`
	By        int    `help:"Amount to shift by"`
	Delete    int    `help:"Section number to delete"`
}

// BlankCmd is the "blank" subcommand.
type BlankCmd struct {
	File string   `arg:"" type:"existingfile" help:"JSON file to edit in place"`
	Keys []string `arg:"" help:"Keys whose entries are blanked"`
}

// ViewerCmd is the "viewer" subcommand.
type ViewerCmd struct {
	In     string `arg:"" type:"existingfile" help:"Input JSON file"`
	Out    string `arg:"" type:"path" help:"Output HTML file"`
	Title  string `help:"Page title"`
	Prefix string `default:"الخطبة" help:"Prefix of section labels, used for ordering"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL  string `arg:"" help:"Page URL"`
	Full bool   `help:"Print full block text"`

	Fetch  FetchFlags  `embed:""`
	Format FormatFlags `embed:""`
}

// format returns the default document format with the flags applied.
func (f FormatFlags) format() sharh.Format {
	format := sharh.NafahatFormat()
	if f.Marker != "" {
		format.MarkerToken = f.Marker
	}
	if len(f.Anchor) > 0 {
		format.AnchorPhrases = f.Anchor
	}
	if f.Emphasis != "" {
		format.EmphasisTag = f.Emphasis
	}
	if f.Footnote != "" {
		format.FootnoteTag = f.Footnote
	}
	if f.Prefix != "" {
		format.LabelPrefix = f.Prefix
	}
	return format
}

// source returns the book source with the flags applied.
func (c *HarvestCmd) source() crawl.BookSource {
	src := crawl.DefaultBookSource()
	if c.BaseURL != "" {
		src.BaseURL = c.BaseURL
	}
	if len(c.Books) > 0 {
		src.Books = c.Books
	}
	if c.Pages > 0 {
		src.Pages = c.Pages
	}
	return src
}
