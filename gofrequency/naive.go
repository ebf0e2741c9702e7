package gofrequency

import "sort"

// NaiveCount is a sort-based implementation of Count for testing.
func NaiveCount[P ~[]byte](patterns []P) uint64 {
	keys := make([]string, len(patterns))
	for i, p := range patterns {
		keys[i] = string(p)
	}
	sort.Strings(keys)

	var sum uint64
	for i := 0; i < len(keys); {
		j := i + 1
		for j < len(keys) && keys[j] == keys[i] {
			j++
		}
		if run := j - i; run > 1 {
			sum += uint64(run)
		}
		i = j
	}
	return sum
}
