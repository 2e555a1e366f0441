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
	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
	"github.com/fwojciec/catalog/etree"
	"github.com/fwojciec/catalog/goquery"
	cataloghttp "github.com/fwojciec/catalog/http"
	"github.com/fwojciec/catalog/rod"
	catslog "github.com/fwojciec/catalog/slog"
	"github.com/fwojciec/catalog/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CourseService catalog.CourseService
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
		kong.Name("catalog"),
		kong.Description("Extract and browse a university course catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'catalog --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Extractor = NewExtractor()

	// Extraction works on local files and needs no database.
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CATALOG_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CourseService = sqlite.NewCourseService(m.DB)
	deps.DB = m.DB
	deps.Courses = m.CourseService

	if cmd == "sync" {
		fetcher, err := newFetcher(cli.Sync)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		logger := deps.Logger
		deps.Syncer = &crawl.Syncer{
			Fetcher:     catslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   catslog.NewLoggingExtractor(deps.Extractor, logger),
			Courses:     catslog.NewLoggingCourseService(m.CourseService, logger),
			RateLimiter: crawl.NewHostLimiter(cli.Sync.RPS),
			BaseURL:     cli.Sync.BaseURL,
			Edition:     cli.Sync.Edition,
			ScheduleURL: cli.Sync.ScheduleURL,
			Concurrency: cli.Sync.Concurrency,
			MaxPages:    cli.Sync.MaxPages,
			OnRetry: func(url string, attempt int, err error) {
				logger.Warn("retry fetch", "url", url, "attempt", attempt, "err", err)
			},
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the fetcher selected by the sync flags.
func newFetcher(c SyncCmd) (catalog.Fetcher, error) {
	if c.Browser {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}
	return cataloghttp.NewFetcher(cataloghttp.WithTimeout(c.Timeout)), nil
}

// newLogger returns a text logger on w. Decorator logs are only shown in
// verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Extractor combines the HTML and XML extractors into a catalog.Extractor.
type Extractor struct {
	*goquery.Extractor
	*etree.ScheduleExtractor
}

// Ensure Extractor implements catalog.Extractor at compile time.
var _ catalog.Extractor = (*Extractor)(nil)

// NewExtractor returns the extractor used for live catalog documents.
func NewExtractor() *Extractor {
	return &Extractor{
		Extractor:         goquery.NewExtractor(),
		ScheduleExtractor: etree.NewScheduleExtractor(),
	}
}

func defaultDBPath() string {
	if path := os.Getenv("CATALOG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "catalog.db"
	}
	dir := filepath.Join(home, ".catalog")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "catalog.db")
}
