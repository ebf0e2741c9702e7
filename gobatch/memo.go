package gobatch

import (
	"fmt"

	"github.com/starius/hipattern/gopattern"
	"github.com/zeebo/xxh3"
	"gitlab.com/starius/lru-gen/examples/int2string"
)

var _ lruStore = (*int2string.LRU)(nil)

type lruStore interface {
	Get(key int) (string, bool)
	Set(key int, value string, bytes uint64) bool
}

// memo remembers patterns of recently seen lines. It is owned by a single
// worker. Values hold the line followed by its pattern, so a hash collision
// is detected and treated as a miss.
type memo struct {
	lru    lruStore
	hits   int
	misses int
}

func newMemo(capacity int) (*memo, error) {
	lru, err := int2string.NewLRU(uint64(capacity), uint64(capacity))
	if err != nil {
		return nil, fmt.Errorf("create memo cache: %w", err)
	}
	return &memo{lru: lru}, nil
}

func memoKey(line string) int {
	return int(xxh3.HashString(line))
}

func (m *memo) get(line string) (gopattern.Pattern, bool) {
	v, ok := m.lru.Get(memoKey(line))
	if !ok || len(v) != 2*len(line) || v[:len(line)] != line {
		m.misses++
		return nil, false
	}
	m.hits++
	p := make(gopattern.Pattern, len(line))
	copy(p, v[len(line):])
	return p, true
}

func (m *memo) put(line string, p gopattern.Pattern) {
	m.lru.Set(memoKey(line), line+string(p), 1)
}
