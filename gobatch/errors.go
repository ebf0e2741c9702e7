package gobatch

import "fmt"

const maxQuotedLine = 40

// LineError reports an input line rejected by the pattern generator.
// Err is the *gopattern.SymbolError naming the symbol and its offset.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	text := e.Text
	if len(text) > maxQuotedLine {
		text = text[:maxQuotedLine] + "..."
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
