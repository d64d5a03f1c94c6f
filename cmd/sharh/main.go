package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
	"github.com/fwojciec/sharh/goquery"
	sharhhttp "github.com/fwojciec/sharh/http"
	sharhslog "github.com/fwojciec/sharh/slog"
	"github.com/fwojciec/sharh/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag and SHARH_DB
	// take precedence.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService sharh.CollectionService
	RecordService     sharh.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sharh"),
		kong.Description("Harvest sermon commentary from the Nafahat al-Wilaya pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sharh --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if needsDB(cmd) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SHARH_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CollectionService = sqlite.NewCollectionService(m.DB)
		m.RecordService = sharhslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), deps.Logger)
		deps.Collections = m.CollectionService
		deps.Records = m.RecordService
	}

	switch cmd {
	case "harvest":
		fetcher := cli.Harvest.Fetch.fetcher(deps.Logger)
		defer fetcher.Close()

		format := cli.Harvest.Format.format()
		deps.Harvester = &crawl.Harvester{
			Pages: &crawl.BookFetcher{
				Fetcher:     fetcher,
				Parser:      goquery.NewBlockParser(),
				RateLimiter: crawl.NewDomainLimiter(cli.Harvest.Fetch.Rate),
				Concurrency: cli.Harvest.Fetch.Concurrency,
				OnRetry:     retryReporter(stderr),
			},
			Extractor: sharhslog.NewLoggingSectionExtractor(sharh.NewExtractor(format), deps.Logger),
		}
	case "scrape":
		fetcher := cli.Scrape.Fetch.fetcher(deps.Logger)
		defer fetcher.Close()

		deps.Scraper = &crawl.CatalogScraper{
			Fetcher:     fetcher,
			Parser:      goquery.NewCatalogParser(goquery.DefaultCatalogSelectors()),
			RateLimiter: crawl.NewDomainLimiter(cli.Scrape.Fetch.Rate),
			Concurrency: cli.Scrape.Fetch.Concurrency,
			OnRetry:     retryReporter(stderr),
		}
	case "probe":
		fetcher := cli.Probe.Fetch.fetcher(deps.Logger)
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Parser = goquery.NewBlockParser()
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether cmd reads or writes the collection database.
func needsDB(cmd string) bool {
	switch cmd {
	case "harvest", "scrape", "list", "show", "delete", "export":
		return true
	}
	return false
}

func retryReporter(w io.Writer) crawl.RetryFunc {
	return func(url string, attempt int, err error) {
		fmt.Fprintf(w, "  retry %s (attempt %d): %v\n", crawl.TruncateURL(url, 60), attempt, err)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SHARH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sharh.db"
	}
	dir := filepath.Join(home, ".sharh")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sharh.db")
}

// fetcher builds the logging HTTP fetcher configured by the flags.
func (f FetchFlags) fetcher(logger *slog.Logger) sharh.Fetcher {
	return sharhslog.NewLoggingFetcher(sharhhttp.NewFetcher(
		sharhhttp.WithTimeout(f.Timeout),
		sharhhttp.WithDefaultCharset(f.Charset),
	), logger)
}
