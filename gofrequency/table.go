// Package gofrequency counts how many patterns of a batch recur.
//
// A pattern recurs if it occurs at least twice. The result of Count is the
// sum of occurrence counts over recurring patterns: a pattern seen three
// times contributes 3, a pattern seen once contributes nothing.
package gofrequency

import (
	"bytes"
	"sort"
)

// Entry is a pattern with its number of occurrences.
type Entry struct {
	Pattern []byte
	Count   uint64
}

// Table maps each distinct pattern to its number of occurrences.
// Keys compare element-wise. A Table is not safe for concurrent writes.
type Table struct {
	counts map[string]uint64
}

// NewTable returns an empty table sized for about sizeHint distinct patterns.
func NewTable(sizeHint int) *Table {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Table{counts: make(map[string]uint64, sizeHint)}
}

// Add records one occurrence of p.
func (t *Table) Add(p []byte) {
	t.counts[string(p)]++
}

// AddCount records n occurrences of p.
func (t *Table) AddCount(p []byte, n uint64) {
	if n == 0 {
		return
	}
	t.counts[string(p)] += n
}

// Merge adds all counts of other to t.
func (t *Table) Merge(other *Table) {
	for k, v := range other.counts {
		t.counts[k] += v
	}
}

// Occurrences returns how many times p was added.
func (t *Table) Occurrences(p []byte) uint64 {
	return t.counts[string(p)]
}

// Len returns the number of distinct patterns.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the number of added patterns.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, v := range t.counts {
		sum += v
	}
	return sum
}

// Recurring returns the sum of counts of patterns occurring at least twice.
func (t *Table) Recurring() uint64 {
	var sum uint64
	for _, v := range t.counts {
		if v > 1 {
			sum += v
		}
	}
	return sum
}

// RecurringPatterns returns the number of distinct patterns occurring at
// least twice.
func (t *Table) RecurringPatterns() int {
	n := 0
	for _, v := range t.counts {
		if v > 1 {
			n++
		}
	}
	return n
}

// Top returns up to n recurring entries, most frequent first. Ties are
// ordered by pattern bytes. n <= 0 returns all recurring entries.
func (t *Table) Top(n int) []Entry {
	return topEntries(t.recurringEntries(), n)
}

func (t *Table) recurringEntries() []Entry {
	var out []Entry
	for k, v := range t.counts {
		if v > 1 {
			out = append(out, Entry{Pattern: []byte(k), Count: v})
		}
	}
	return out
}

func topEntries(entries []Entry, n int) []Entry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return bytes.Compare(entries[i].Pattern, entries[j].Pattern) < 0
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Count returns the sum of occurrence counts of every pattern that occurs
// at least twice in patterns. Order of patterns does not matter.
func Count[P ~[]byte](patterns []P) uint64 {
	t := NewTable(len(patterns))
	for _, p := range patterns {
		t.Add(p)
	}
	return t.Recurring()
}
