package gobatch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/starius/hipattern/gofrequency"
	"github.com/starius/hipattern/gopattern"
	"github.com/stretchr/testify/require"
)

var friendlySample = []string{
	"LALALA", "XOXOXO", "GCGCGC", "HHHCCC", "BBBMMM", "EGONUH", "HHRGOE",
}

func TestGenerate_OrderPreserved(t *testing.T) {
	for workers := 0; workers <= 9; workers++ {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			res, err := Generate(context.Background(), friendlySample, Config{Workers: workers})
			require.NoError(t, err)
			require.Len(t, res.Patterns, len(friendlySample))
			for i, line := range friendlySample {
				want, err := gopattern.Generate(line)
				require.NoError(t, err)
				require.Equal(t, want, res.Patterns[i], line)
			}
			require.Empty(t, res.Skipped)
			require.Equal(t, uint64(5), gofrequency.Count(res.Patterns))
		})
	}
}

func TestGenerate_Empty(t *testing.T) {
	res, err := Generate(context.Background(), nil, Config{})
	require.NoError(t, err)
	require.Empty(t, res.Patterns)
	require.Equal(t, uint64(0), gofrequency.Count(res.Patterns))
}

func TestGenerate_FailFastReportsFirstBadLine(t *testing.T) {
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "ABAB"
	}
	lines[417] = "AB\xffAB"
	lines[418] = "\x80"
	lines[900] = "ABC\xfe"

	for _, workers := range []int{1, 2, 3, 8, 64} {
		res, err := Generate(context.Background(), lines, Config{Workers: workers})
		require.Nil(t, res)
		require.ErrorIs(t, err, gopattern.ErrAlphabetRange)

		var le *LineError
		require.True(t, errors.As(err, &le))
		require.Equal(t, 418, le.Line, "workers=%d", workers)

		var se *gopattern.SymbolError
		require.ErrorAs(t, err, &se)
		require.Equal(t, 2, se.Offset)
		require.Equal(t, byte(0xff), se.Symbol)
		require.EqualError(t, err, `line 418 "AB\xffAB": symbol outside alphabet: symbol 0xff at offset 2`)
	}
}

func TestGenerate_Lenient(t *testing.T) {
	lines := []string{"ABAB", "xyxy", "AB\x80", "CDCD", "\xff", "EFEF"}
	res, err := Generate(context.Background(), lines, Config{
		Generator: gopattern.New(gopattern.WithAlphabet(gopattern.Extended)),
		Workers:   4,
		Lenient:   true,
	})
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Patterns, len(lines))

	res, err = Generate(context.Background(), lines, Config{
		Generator: gopattern.New(gopattern.WithAlphabet(gopattern.Uppercase)),
		Workers:   4,
		Lenient:   true,
	})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 3)
	require.Equal(t, 2, res.Skipped[0].Line)
	require.Equal(t, 3, res.Skipped[1].Line)
	require.Equal(t, 5, res.Skipped[2].Line)
	for _, le := range res.Skipped {
		require.ErrorIs(t, le, gopattern.ErrAlphabetRange)
	}
	require.Equal(t, []gopattern.Pattern{{0, 1, 0, 1}, {0, 1, 0, 1}, {0, 1, 0, 1}}, res.Patterns)
	require.Equal(t, uint64(3), gofrequency.Count(res.Patterns))
}

func TestGenerate_Overflow(t *testing.T) {
	lines := []string{"ABC", "ABCD", "AAAA"}
	_, err := Generate(context.Background(), lines, Config{
		Generator: gopattern.New(gopattern.WithMaxRanks(3)),
	})
	require.ErrorIs(t, err, gopattern.ErrOverflow)
	require.ErrorContains(t, err, `line 2 "ABCD"`)
}

func TestGenerate_ZeroValueGenerator(t *testing.T) {
	res, err := Generate(context.Background(), friendlySample, Config{
		Generator: &gopattern.Generator{},
		Workers:   3,
	})
	require.NoError(t, err)
	require.Len(t, res.Patterns, len(friendlySample))
	require.Equal(t, uint64(5), gofrequency.Count(res.Patterns))
}

func TestRunChunk_CacheCountersOnEarlyReturn(t *testing.T) {
	lines := []string{"ABAB", "ABAB", "AB\x80", "ABAB"}
	cfg := Config{}.withDefaults()
	m, err := newMemo(4)
	require.NoError(t, err)

	var firstBad atomic.Int64
	firstBad.Store(math.MaxInt64)
	var res chunkResult
	patterns := make([]gopattern.Pattern, len(lines))
	runChunk(context.Background(), cfg, lines, patterns, 0, len(lines), m, &firstBad, &res)

	require.Len(t, res.errs, 1)
	require.Equal(t, 3, res.errs[0].Line)
	require.Equal(t, int64(2), firstBad.Load())
	require.Nil(t, patterns[3])
	require.Equal(t, 1, res.hits)
	require.Equal(t, 2, res.misses)

	// A canceled context stops the chunk before any line; counters gathered
	// by the memo so far are still reported.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = chunkResult{}
	runChunk(ctx, cfg, lines, patterns, 0, len(lines), m, &firstBad, &res)
	require.Empty(t, res.errs)
	require.Equal(t, 1, res.hits)
	require.Equal(t, 2, res.misses)
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, friendlySample, Config{Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_LongLineInError(t *testing.T) {
	line := strings.Repeat("A", 100) + "\x80"
	_, err := Generate(context.Background(), []string{line}, Config{})
	require.ErrorContains(t, err, `line 1 "`+strings.Repeat("A", 40)+`..."`)
	require.ErrorContains(t, err, "at offset 100")
}

func TestGenerateControl(t *testing.T) {
	// Compare parallel generation with a plain loop over random batches.
	r := rand.New(rand.NewSource(111))
	for i := 0; i < 100; i++ {
		lines := make([]string, r.Intn(300))
		for j := range lines {
			b := make([]byte, r.Intn(8))
			for k := range b {
				b[k] = byte('A' + r.Intn(3))
			}
			lines[j] = string(b)
		}

		want := make([]gopattern.Pattern, len(lines))
		for j, line := range lines {
			p, err := gopattern.Generate(line)
			require.NoError(t, err)
			want[j] = p
		}

		cfg := Config{Workers: r.Intn(10), CacheSize: r.Intn(3) * 16}
		res, err := Generate(context.Background(), lines, cfg)
		require.NoError(t, err)
		require.Equal(t, want, res.Patterns)
		if cfg.CacheSize == 0 {
			require.Zero(t, res.CacheHits+res.CacheMisses)
		} else {
			require.Equal(t, len(lines), res.CacheHits+res.CacheMisses)
		}
	}
}
