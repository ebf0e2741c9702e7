package gobatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLineLen is the longest line ReadLines accepts.
const MaxLineLen = 64 << 20

// ReadLines reads newline-delimited lines from r. A trailing '\r' is
// stripped (CRLF input). Empty lines are kept.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxLineLen)
	var out []string
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", len(out)+1, err)
	}
	return out, nil
}
