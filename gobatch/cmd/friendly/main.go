package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/starius/hipattern/gobatch"
	"github.com/starius/hipattern/gopattern"
)

var (
	inPath    = flag.String("in", "", "path to input file (one string per line); may also be given as the only argument")
	alphabet  = flag.String("alphabet", gopattern.ASCII.Name, "accepted symbols: upper, ascii or extended")
	workers   = flag.Int("workers", 0, "number of worker goroutines (0 = number of CPUs)")
	lenient   = flag.Bool("lenient", false, "skip invalid lines instead of failing")
	cacheSize = flag.Int("cache", 0, "per-worker cache of recently seen lines (0 = disabled)")
	top       = flag.Int("top", 0, "list N most frequent recurring patterns")
	jsonOut   = flag.Bool("json", false, "print the report as JSON")
	markdown  = flag.Bool("markdown", false, "print the report as rendered markdown")
	verbose   = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] INPUT_STRINGS\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Counts friendly strings: lines whose pattern of first occurrences\n")
		fmt.Fprintf(os.Stderr, "is shared with at least one other line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := *inPath
	switch {
	case path == "" && flag.NArg() == 1:
		path = flag.Arg(0)
	case path != "" && flag.NArg() == 0:
	default:
		flag.Usage()
		os.Exit(2)
	}
	if *jsonOut && *markdown {
		fmt.Fprintln(os.Stderr, "-json and -markdown are mutually exclusive")
		os.Exit(2)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	a, err := gopattern.ParseAlphabet(*alphabet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := gobatch.Config{
		Generator: gopattern.New(gopattern.WithAlphabet(a)),
		Workers:   *workers,
		Lenient:   *lenient,
		CacheSize: *cacheSize,
	}
	slog.Debug("Counting friendly strings", "input", path, "alphabet", a, "workers", cfg.Workers, "lenient", cfg.Lenient, "cache", cfg.CacheSize)

	rep, err := gobatch.RunFile(ctx, path, cfg, *top)
	if err != nil {
		var le *gobatch.LineError
		if errors.As(err, &le) {
			slog.Error("Invalid input line", "line", le.Line, "error", le.Err)
		} else {
			slog.Error("Failed to count friendly strings", "input", path, "error", err)
		}
		os.Exit(1)
	}

	for _, le := range rep.Skipped {
		slog.Warn("Skipped invalid line", "line", le.Line, "error", le.Err)
	}
	slog.Debug("Done",
		"lines", rep.Lines,
		"distinct", rep.Distinct,
		"cache_hits", rep.CacheHits,
		"cache_misses", rep.CacheMisses,
		"duration", rep.Duration,
	)

	switch {
	case *jsonOut:
		err = printJSON(os.Stdout, rep)
	case *markdown:
		err = printMarkdown(os.Stdout, rep)
	default:
		printSummary(os.Stdout, rep)
	}
	if err != nil {
		slog.Error("Failed to print report", "error", err)
		os.Exit(1)
	}
}
