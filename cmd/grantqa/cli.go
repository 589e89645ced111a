package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/grantqa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Grants    grantqa.GrantService
	Asker     grantqa.Asker
	Converter grantqa.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Read flag defaults from a TOML file."`

	DB          string `name:"db" env:"GRANTQA_DB" default:"${default_db}" help:"SQLite database path"`
	DatabaseURL string `name:"database-url" env:"DATABASE_URL" help:"PostgreSQL connection string (overrides --db)"`

	Provider     string `enum:"openai,gemini" default:"openai" env:"GRANTQA_PROVIDER" help:"Completion provider (${enum})"`
	Model        string `env:"GRANTQA_MODEL" help:"Completion model (defaults to the provider's model)"`
	OpenAIAPIKey string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`

	LogLevel  string `enum:"debug,info,warn,error" default:"info" env:"GRANTQA_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat string `enum:"text,json" default:"text" env:"GRANTQA_LOG_FORMAT" help:"Log format (${enum})"`

	Ask    AskCmd    `cmd:"" help:"Ask a question about grant programs"`
	Serve  ServeCmd  `cmd:"" help:"Serve questions over HTTP"`
	Import ImportCmd `cmd:"" help:"Import grants from a JSON or YAML file"`
	List   ListCmd   `cmd:"" help:"List stored grants"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask"`
	Markdown bool     `short:"m" help:"Render links as Markdown"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `default:":3005" env:"GRANTQA_ADDR" help:"Listen address"`
	Rate  float64 `default:"2" env:"GRANTQA_RATE" help:"Questions per second across all clients (0 disables the limit)"`
	Burst int     `default:"5" env:"GRANTQA_BURST" help:"Burst size for the rate limit"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON or YAML file with a list of grants"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list grants in this category"`
	Limit    int    `short:"n" help:"Maximum number of grants to list (0 lists all)"`
}
