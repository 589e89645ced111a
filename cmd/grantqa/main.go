package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/grantqa"
	"github.com/fwojciec/grantqa/gemini"
	"github.com/fwojciec/grantqa/htmltomarkdown"
	"github.com/fwojciec/grantqa/openai"
	"github.com/fwojciec/grantqa/postgres"
	grantslog "github.com/fwojciec/grantqa/slog"
	"github.com/fwojciec/grantqa/sqlite"
	"github.com/gin-gonic/gin"
	goopenai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default SQLite database path. Set before calling Run().
	DBPath string

	// TOML config files read for flag defaults. Missing files are ignored.
	ConfigPaths []string

	// Databases opened by Run.
	DB *sqlite.DB
	PG *postgres.DB

	// Overrides for end-to-end testing. When nil, Run builds them from flags.
	GrantService grantqa.GrantService
	Completer    grantqa.Completer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{defaultConfigPath()},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.PG != nil {
		if err := m.PG.Close(); err != nil {
			return err
		}
	}
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
		kong.Name("grantqa"),
		kong.Description("Answer questions about Web3 and DeFi grant programs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"default_db": m.DBPath},
		kong.Configuration(TOMLConfig, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'grantqa --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)

	grants, err := m.openGrantService(cli, stderr)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Grants = grantslog.NewLoggingGrantService(grants, deps.Logger)

	switch kongCtx.Selected().Name {
	case "ask", "serve":
		completer, err := m.newCompleter(ctx, cli, stderr)
		if err != nil {
			return err
		}
		resolver := grantqa.NewResolver(deps.Grants, grantslog.NewLoggingCompleter(completer, deps.Logger))
		deps.Asker = grantslog.NewLoggingAsker(resolver, deps.Logger)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// openGrantService opens PostgreSQL when a connection string is configured
// and the local SQLite database otherwise.
func (m *Main) openGrantService(cli *CLI, stderr io.Writer) (grantqa.GrantService, error) {
	if m.GrantService != nil {
		return m.GrantService, nil
	}

	if cli.DatabaseURL != "" {
		m.PG = postgres.NewDB(cli.DatabaseURL)
		if err := m.PG.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Check DATABASE_URL points at a reachable PostgreSQL server")
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
		}
		return postgres.NewGrantService(m.PG), nil
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set GRANTQA_DB to use a different database path")
		return nil, fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	return sqlite.NewGrantService(m.DB), nil
}

// newCompleter builds the completion backend selected by --provider.
func (m *Main) newCompleter(ctx context.Context, cli *CLI, stderr io.Writer) (grantqa.Completer, error) {
	if m.Completer != nil {
		return m.Completer, nil
	}

	switch cli.Provider {
	case "gemini":
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cli.Model), nil
	default:
		if cli.OpenAIAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://platform.openai.com/api-keys")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewCompleter(goopenai.NewClient(cli.OpenAIAPIKey), cli.Model), nil
	}
}

// newLogger returns a logger writing to w. Unknown levels fall back to info.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "grantqa.db"
	}
	dir := filepath.Join(home, ".grantqa")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "grantqa.db")
}

func defaultConfigPath() string {
	return filepath.Join("~", ".grantqa", "config.toml")
}
