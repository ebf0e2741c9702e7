package gopattern

import (
	"errors"
	"fmt"
)

// Public, comparable error values for Generate failures.
var (
	ErrAlphabetRange = errors.New("symbol outside alphabet")
	ErrOverflow      = errors.New("too many distinct symbols")
)

// SymbolError reports the symbol that stopped pattern generation.
// Err is ErrAlphabetRange or ErrOverflow.
type SymbolError struct {
	Offset int
	Symbol byte
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: symbol %s at offset %d", e.Err, quoteSymbol(e.Symbol), e.Offset)
}

func (e *SymbolError) Unwrap() error {
	return e.Err
}

func quoteSymbol(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
