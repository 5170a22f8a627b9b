// Package main is the entry point for the linewise editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/linewise/internal/app"
	"github.com/dshills/linewise/internal/config"
	"github.com/dshills/linewise/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if done {
		return code
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNotTerminal)
		return 1
	}

	lua.Version = version
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		for range signals {
			_ = application.RequestQuit()
		}
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses args. done is true when the program should exit
// with code without starting the editor.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("linewise", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion, showHelp bool
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "linewise - a small modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: linewise [options] [files...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  linewise                     Open an untitled buffer\n")
		fmt.Fprintf(stderr, "  linewise a.txt b.txt         Open two files in tabs\n")
		fmt.Fprintf(stderr, "  linewise -c ./config.yaml    Use another config file\n")
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %sLOG_LEVEL, %sLOG_FILE, %sINIT_SCRIPT\n",
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showHelp {
		fs.Usage()
		return opts, 0, true
	}
	if showVersion {
		fmt.Fprintf(stdout, "linewise %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, 0, true
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error", "off":
	default:
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, error or off)\n", opts.LogLevel)
		return opts, 1, true
	}

	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}
	opts.Files = fs.Args()
	opts.Watch = true
	return opts, 0, false
}
