// Package main is the entry point for vimotion.
//
// With -keys, vimotion replays a key string against a text and prints the
// final cursor. Otherwise it opens the text in a terminal editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/host/terminal"
	"github.com/dshills/vimotion/internal/input"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	keys        string
	keysSet     bool
	logLevel    string
	showVersion bool
	file        string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "vimotion %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.keysSet {
		err = replay(cfg, opts, stdin, stdout)
	} else {
		err = interactive(cfg, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vimotion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.keys, "keys", "", "Replay keys in Vim notation and print the cursor")
	fs.StringVar(&opts.keys, "k", "", "Replay keys (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "vimotion - modal cursor motions\n\n")
		fmt.Fprintf(stderr, "Usage: vimotion [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vimotion notes.txt                 Edit a file\n")
		fmt.Fprintf(stderr, "  vimotion -k '3w}' notes.txt        Print the cursor after 3w}\n")
		fmt.Fprintf(stderr, "  printf 'a b' | vimotion -k w       Replay against stdin\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "keys" || f.Name == "k" {
			opts.keysSet = true
		}
	})

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}

// defaultConfigPath returns the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vimotion", "config.toml")
}

func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// replay runs the keys over the text with the Machine and prints
// "offset line:col MODE" for the final cursor. The text is never edited.
func replay(cfg *config.Config, opts options, stdin io.Reader, stdout io.Writer) error {
	events, err := key.ParseKeys(opts.keys)
	if err != nil {
		return fmt.Errorf("parsing keys: %w", err)
	}

	var data []byte
	if opts.file != "" {
		data, err = os.ReadFile(opts.file)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("reading text: %w", err)
	}

	log, closeLog, err := cfg.OpenLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	icfg := cfg.InputConfig()
	icfg.Logger = log
	m := input.New(icfg)

	text := string(data)
	cursor := 0
	m.HandleTick(events, text, &cursor)

	pt := buffer.NewSnapshot(text).OffsetToPoint(cursor)
	_, err = fmt.Fprintf(stdout, "%d %d:%d %s\n", cursor, pt.Line+1, pt.Column+1, m.Mode().DisplayName())
	return err
}

// interactive opens the terminal editor.
func interactive(cfg *config.Config, opts options) error {
	// Log lines on stderr would corrupt the screen.
	log := logging.Nop()
	if cfg.Logging.File != "" {
		l, closeLog, err := cfg.OpenLogger()
		if err != nil {
			return err
		}
		defer closeLog()
		log = l
	}

	doc := terminal.NewScratch()
	if opts.file != "" {
		d, err := terminal.OpenDocument(opts.file)
		if err != nil {
			return err
		}
		doc = d
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	editor := terminal.New(screen, doc, terminal.Options{Config: cfg, Logger: log})
	if cfg.Terminal.Watch {
		if err := editor.StartWatching(); err != nil {
			log.Warn("file watching disabled: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := editor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
