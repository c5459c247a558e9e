package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readclip"
	"github.com/fwojciec/readclip/clip"
	"github.com/fwojciec/readclip/extract"
	rchttp "github.com/fwojciec/readclip/http"
	"github.com/fwojciec/readclip/redis"
	rcslog "github.com/fwojciec/readclip/slog"
	"github.com/fwojciec/readclip/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// When set, the pending queue lives in Redis instead of SQLite.
	RedisAddr string

	// SQLite database, open only when the SQLite store is in use.
	DB *sqlite.DB

	// Queue store for end-to-end testing.
	Queue readclip.QueueStore

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults from the environment.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		RedisAddr: os.Getenv("READCLIP_REDIS"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readclip --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	queue, err := m.openQueue()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set READCLIP_DB or READCLIP_REDIS to use a different queue store")
		return err
	}
	defer m.Close()

	if os.Getenv("READCLIP_DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		queue = rcslog.NewLoggingQueue(queue, logger)
	}

	m.Queue = queue
	deps.Queue = queue

	fetcher := rchttp.NewFetcher()
	defer fetcher.Close()

	// Kong only populates Add's flags when the add command runs; for
	// the other commands the limiter stays unset and unused.
	var limiter readclip.DomainLimiter
	if cli.Add.RPS > 0 {
		limiter = clip.NewDomainLimiter(cli.Add.RPS)
	}

	deps.Clipper = &clip.Clipper{
		Fetcher:     fetcher,
		Extractor:   extract.NewExtractor(),
		Queue:       queue,
		Limiter:     limiter,
		Concurrency: cli.Add.Concurrency,
	}

	return kongCtx.Run(deps)
}

// openQueue opens the configured queue store: Redis when READCLIP_REDIS
// is set, the shared SQLite file otherwise.
func (m *Main) openQueue() (readclip.QueueStore, error) {
	if m.RedisAddr != "" {
		queue, err := redis.Open(m.RedisAddr)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, queue)
		return queue, nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		return nil, fmt.Errorf("failed to open queue database at %q: %w", m.DBPath, err)
	}
	m.closers = append(m.closers, m.DB)
	return sqlite.NewQueueService(m.DB), nil
}

func defaultDBPath() string {
	if path := os.Getenv("READCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readclip.db"
	}
	dir := filepath.Join(home, ".readclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "queue.db")
}
