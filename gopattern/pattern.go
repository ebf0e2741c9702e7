package gopattern

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Pattern holds the first-appearance rank of every byte of a line.
// Two lines have equal patterns iff one can be turned into the other
// by a consistent renaming of symbols.
type Pattern []byte

// Equal compares patterns element-wise.
func (p Pattern) Equal(other Pattern) bool {
	return bytes.Equal(p, other)
}

// Key returns the pattern as a string usable as a map key.
func (p Pattern) Key() string {
	return string(p)
}

// Hash returns the xxh3 hash of the ranks.
func (p Pattern) Hash() uint64 {
	return xxh3.Hash(p)
}

// HashSeed returns the xxh3 hash of the ranks with a seed.
func (p Pattern) HashSeed(seed uint64) uint64 {
	return xxh3.HashSeed(p, seed)
}

// Distinct returns the number of distinct symbols of the source line.
func (p Pattern) Distinct() int {
	top := -1
	for _, r := range p {
		if int(r) > top {
			top = int(r)
		}
	}
	return top + 1
}

// String renders ranks separated by dots, e.g. "0.1.0.1".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p) * 2)
	for i, r := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(r)))
	}
	return b.String()
}
