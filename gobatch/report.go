package gobatch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/starius/hipattern/gofrequency"
)

// Report summarizes a batch run.
type Report struct {
	Lines             int    // lines read
	Patterns          int    // lines turned into patterns
	Distinct          int    // distinct patterns
	RecurringPatterns int    // distinct patterns occurring at least twice
	Friendly          uint64 // lines whose pattern occurs at least twice
	Skipped           []*LineError
	Top               []gofrequency.Entry
	CacheHits         int
	CacheMisses       int
	Duration          time.Duration
}

// Run reads lines from r, generates their patterns and counts friendly
// strings. top > 0 fills Report.Top with that many most frequent recurring
// patterns.
func Run(ctx context.Context, r io.Reader, cfg Config, top int) (*Report, error) {
	start := time.Now()
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return count(ctx, lines, cfg, top, start)
}

// RunFile is Run over the file at path.
func RunFile(ctx context.Context, path string, cfg Config, top int) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Run(ctx, f, cfg, top)
}

// Count generates patterns of lines and counts friendly strings.
func Count(ctx context.Context, lines []string, cfg Config, top int) (*Report, error) {
	return count(ctx, lines, cfg, top, time.Now())
}

func count(ctx context.Context, lines []string, cfg Config, top int, start time.Time) (*Report, error) {
	cfg = cfg.withDefaults()
	res, err := Generate(ctx, lines, cfg)
	if err != nil {
		return nil, err
	}

	table := gofrequency.Build(res.Patterns, cfg.Workers)
	rep := &Report{
		Lines:             len(lines),
		Patterns:          len(res.Patterns),
		Distinct:          table.Len(),
		RecurringPatterns: table.RecurringPatterns(),
		Friendly:          table.Recurring(),
		Skipped:           res.Skipped,
		CacheHits:         res.CacheHits,
		CacheMisses:       res.CacheMisses,
	}
	if top > 0 {
		rep.Top = table.Top(top)
	}
	rep.Duration = time.Since(start)
	return rep, nil
}
