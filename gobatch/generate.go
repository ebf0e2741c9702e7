// Package gobatch runs the pattern generator over a batch of lines and
// counts friendly strings: lines whose pattern is shared with at least one
// other line.
package gobatch

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/starius/hipattern/gopattern"
)

// How many lines a worker processes between context checks.
const ctxCheckEvery = 256

// Config controls a batch run. The zero value uses the default generator,
// runtime.NumCPU() workers, fails on the first invalid line and disables
// the memo cache.
type Config struct {
	Generator *gopattern.Generator

	// Workers is the number of goroutines. <= 0 means runtime.NumCPU().
	Workers int

	// Lenient skips invalid lines and reports them in Result.Skipped
	// instead of failing the whole batch.
	Lenient bool

	// CacheSize is the number of lines each worker remembers. Repeated
	// lines are then not rescanned. 0 disables the cache.
	CacheSize int
}

func (c Config) withDefaults() Config {
	if c.Generator == nil {
		c.Generator = gopattern.Default()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// Result holds the patterns of a batch.
type Result struct {
	// Patterns of accepted lines in input order.
	Patterns []gopattern.Pattern

	// Skipped lines in lenient mode, ordered by line number.
	Skipped []*LineError

	CacheHits   int
	CacheMisses int
}

type chunkResult struct {
	errs   []*LineError
	hits   int
	misses int
}

// Generate computes the pattern of every line in parallel.
//
// By default the first invalid line (lowest line number) is returned as a
// *LineError and no result is produced. With cfg.Lenient invalid lines are
// skipped. If ctx is canceled, ctx.Err() is returned.
func Generate(ctx context.Context, lines []string, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	workers := cfg.Workers
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 1 {
		workers = 1
	}

	patterns := make([]gopattern.Pattern, len(lines))
	chunkSize := (len(lines) + workers - 1) / workers
	numChunks := 0
	if chunkSize > 0 {
		numChunks = (len(lines) + chunkSize - 1) / chunkSize
	}
	results := make([]chunkResult, numChunks)

	// firstBad is the lowest failing index seen so far. Workers stop once
	// they pass it, so every line before it is checked.
	var firstBad atomic.Int64
	firstBad.Store(math.MaxInt64)

	var wg sync.WaitGroup
	var setupErr error
	for c := 0; c < numChunks; c++ {
		start := c * chunkSize
		end := min(start+chunkSize, len(lines))

		var m *memo
		if cfg.CacheSize > 0 {
			var err error
			m, err = newMemo(cfg.CacheSize)
			if err != nil {
				setupErr = err
				break
			}
		}

		wg.Add(1)
		go func(res *chunkResult, start, end int, m *memo) {
			defer wg.Done()
			runChunk(ctx, cfg, lines, patterns, start, end, m, &firstBad, res)
		}(&results[c], start, end, m)
	}
	wg.Wait()

	if setupErr != nil {
		return nil, setupErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, cr := range results {
		res.Skipped = append(res.Skipped, cr.errs...)
		res.CacheHits += cr.hits
		res.CacheMisses += cr.misses
	}
	if !cfg.Lenient && len(res.Skipped) != 0 {
		// Chunks are in line order, so the first recorded error is the
		// lowest failing line.
		return nil, res.Skipped[0]
	}

	if len(res.Skipped) == 0 {
		res.Patterns = patterns
		return res, nil
	}
	res.Patterns = make([]gopattern.Pattern, 0, len(lines)-len(res.Skipped))
	next := 0
	for i, p := range patterns {
		if next < len(res.Skipped) && res.Skipped[next].Line == i+1 {
			next++
			continue
		}
		res.Patterns = append(res.Patterns, p)
	}
	return res, nil
}

// runChunk fills patterns[start:end]. It returns early on cancellation and,
// unless cfg.Lenient, once it passes the lowest failing line.
func runChunk(ctx context.Context, cfg Config, lines []string, patterns []gopattern.Pattern, start, end int, m *memo, firstBad *atomic.Int64, res *chunkResult) {
	if m != nil {
		defer func() {
			res.hits, res.misses = m.hits, m.misses
		}()
	}
	for i := start; i < end; i++ {
		if (i-start)%ctxCheckEvery == 0 && ctx.Err() != nil {
			return
		}
		if !cfg.Lenient && int64(i) > firstBad.Load() {
			return
		}
		line := lines[i]
		if m != nil {
			if p, ok := m.get(line); ok {
				patterns[i] = p
				continue
			}
		}
		p, err := cfg.Generator.Generate(line)
		if err != nil {
			res.errs = append(res.errs, &LineError{Line: i + 1, Text: line, Err: err})
			if !cfg.Lenient {
				lowerFirstBad(firstBad, int64(i))
				return
			}
			continue
		}
		patterns[i] = p
		if m != nil {
			m.put(line, p)
		}
	}
}

func lowerFirstBad(v *atomic.Int64, i int64) {
	for {
		cur := v.Load()
		if i >= cur || v.CompareAndSwap(cur, i) {
			return
		}
	}
}
