package gofrequency

import (
	"runtime"
	"sync"

	"github.com/starius/hipattern/gopattern"
)

// Sharded is a frequency table split by pattern hash. Shards hold disjoint
// keys, so they can be reduced independently.
type Sharded struct {
	shards []*Table
}

func shardOf(p []byte, n int) int {
	if n == 1 {
		return 0
	}
	return int(gopattern.Pattern(p).Hash() % uint64(n))
}

// Shards returns the underlying tables.
func (s *Sharded) Shards() []*Table {
	return s.shards
}

// Occurrences returns how many times p was counted.
func (s *Sharded) Occurrences(p []byte) uint64 {
	return s.shards[shardOf(p, len(s.shards))].Occurrences(p)
}

// Len returns the number of distinct patterns.
func (s *Sharded) Len() int {
	n := 0
	for _, t := range s.shards {
		n += t.Len()
	}
	return n
}

// Total returns the number of counted patterns.
func (s *Sharded) Total() uint64 {
	var sum uint64
	for _, t := range s.shards {
		sum += t.Total()
	}
	return sum
}

// Recurring returns the sum of counts of patterns occurring at least twice.
// Shards are summed in parallel.
func (s *Sharded) Recurring() uint64 {
	if len(s.shards) == 1 {
		return s.shards[0].Recurring()
	}
	sums := make([]uint64, len(s.shards))
	var wg sync.WaitGroup
	for i, t := range s.shards {
		wg.Add(1)
		go func(i int, t *Table) {
			defer wg.Done()
			sums[i] = t.Recurring()
		}(i, t)
	}
	wg.Wait()

	var sum uint64
	for _, v := range sums {
		sum += v
	}
	return sum
}

// RecurringPatterns returns the number of distinct patterns occurring at
// least twice.
func (s *Sharded) RecurringPatterns() int {
	n := 0
	for _, t := range s.shards {
		n += t.RecurringPatterns()
	}
	return n
}

// Top returns up to n recurring entries, most frequent first, like Table.Top.
func (s *Sharded) Top(n int) []Entry {
	var all []Entry
	for _, t := range s.shards {
		all = append(all, t.recurringEntries()...)
	}
	return topEntries(all, n)
}

// Build counts patterns using workers goroutines. workers <= 0 means
// runtime.NumCPU().
//
// Each worker counts a contiguous chunk of patterns into private per-shard
// tables. Then each shard is merged by its own goroutine.
func Build[P ~[]byte](patterns []P, workers int) *Sharded {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(patterns) {
		workers = len(patterns)
	}
	if workers <= 1 {
		t := NewTable(len(patterns))
		for _, p := range patterns {
			t.Add(p)
		}
		return &Sharded{shards: []*Table{t}}
	}
	numShards := workers

	// Map: partial[w][s] is owned by worker w.
	chunkSize := (len(patterns) + workers - 1) / workers
	partial := make([][]*Table, 0, workers)
	var wg sync.WaitGroup
	for start := 0; start < len(patterns); start += chunkSize {
		end := start + chunkSize
		if end > len(patterns) {
			end = len(patterns)
		}
		local := make([]*Table, numShards)
		for s := range local {
			local[s] = NewTable((end - start) / numShards)
		}
		partial = append(partial, local)

		wg.Add(1)
		go func(chunk []P, local []*Table) {
			defer wg.Done()
			for _, p := range chunk {
				local[shardOf(p, numShards)].Add(p)
			}
		}(patterns[start:end], local)
	}
	wg.Wait()

	// Reduce: shard s collects partial[*][s].
	shards := make([]*Table, numShards)
	for s := 0; s < numShards; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			merged := partial[0][s]
			for _, local := range partial[1:] {
				merged.Merge(local[s])
			}
			shards[s] = merged
		}(s)
	}
	wg.Wait()

	return &Sharded{shards: shards}
}

// CountParallel is Count computed with Build. The result does not depend
// on the number of workers.
func CountParallel[P ~[]byte](patterns []P, workers int) uint64 {
	return Build(patterns, workers).Recurring()
}
