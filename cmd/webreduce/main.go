// Command webreduce converts web pages into compact structural JSON
// trees, from the command line or through a small web form.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webreduce"
	"github.com/fwojciec/webreduce/crawl"
	"github.com/fwojciec/webreduce/goquery"
	wrhttp "github.com/fwojciec/webreduce/http"
	"github.com/fwojciec/webreduce/sqlite"
	wrslog "github.com/fwojciec/webreduce/slog"
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
	// SQLite database backing the page cache when --cache is set.
	DB *sqlite.DB

	// Logger used by all wired services.
	Logger *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
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
		kong.Name("webreduce"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webreduce --help' to see available commands")
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

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	var fetcher webreduce.Fetcher = wrhttp.NewFetcher()
	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		fetcher = sqlite.NewCachingFetcher(fetcher, sqlite.NewPageCache(m.DB))
	}
	fetcher = wrslog.NewLoggingFetcher(fetcher, m.Logger)
	defer fetcher.Close()

	reducer := goquery.NewReducer(cfg)

	converter := &crawl.Converter{
		Fetcher:     fetcher,
		Reducer:     reducer,
		Config:      cfg,
		RetryDelays: crawl.DefaultRetryDelays(),
	}

	switch cmd {
	case "convert":
		cfg.ExpandSubpages = cfg.ExpandSubpages || cli.Convert.Expand
		limiter := crawl.NewDomainLimiter(cli.Convert.RPS)
		converter.RateLimiter = limiter
		converter.Concurrency = cli.Convert.Concurrency
		converter.Expander = &crawl.Expander{
			Fetcher:     fetcher,
			Reducer:     reducer,
			Config:      cfg,
			Limiter:     limiter,
			Concurrency: cli.Convert.Concurrency,
			RetryDelays: crawl.DefaultRetryDelays(),
		}
		deps.Sitemaps = wrslog.NewLoggingSitemapService(wrhttp.NewSitemapService(nil), m.Logger)
	case "serve":
		converter.Expander = &crawl.Expander{
			Fetcher: fetcher,
			Reducer: reducer,
			Config:  cfg,
		}
	}

	deps.Converter = wrslog.NewLoggingConverter(converter, m.Logger)

	return kongCtx.Run(deps)
}
