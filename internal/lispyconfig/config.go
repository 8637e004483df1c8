// Package lispyconfig holds the REPL driver's bootstrap configuration:
// prompt text, history file location, and diagnostic trace toggles,
// generalizing the teacher's own mainEngine trace-flag struct
// (cmd/main.go) into a single populated-once Config value.
package lispyconfig

import (
	"flag"
	"os"
)

// Config holds everything the REPL driver needs before it starts its
// read loop.
type Config struct {
	Prompt    string
	HistFile  string
	LogReader bool
	LogEval   bool
	NoColor   bool
}

const (
	// DefaultPrompt matches spec §6.2's interactive surface.
	DefaultPrompt = "mylisp> "
	// DefaultHistFile is the history file used when neither the
	// LISPY_HISTFILE environment variable nor -histfile is given.
	DefaultHistFile = ".lispy_history"
)

// Parse populates a Config from CLI flags (parsed against args, which
// callers pass as os.Args[1:]) layered over environment variable
// overrides, the way the teacher's sxreader.Option functions layer CLI
// behavior over reader defaults.
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		Prompt:   envOr("LISPY_PROMPT", DefaultPrompt),
		HistFile: envOr("LISPY_HISTFILE", DefaultHistFile),
	}

	fs := flag.NewFlagSet("lispy", flag.ContinueOnError)
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "REPL prompt text")
	fs.StringVar(&cfg.HistFile, "histfile", cfg.HistFile, "line-history file path")
	fs.BoolVar(&cfg.LogReader, "log-reader", false, "log the value the reader produces for each input line")
	fs.BoolVar(&cfg.LogEval, "log-eval", false, "log the value returned by each top-level evaluation")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colorized error output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}
