package gopattern

import "fmt"

// MaxRanks is the number of distinct ranks a Pattern element can hold.
const MaxRanks = 256

// Generator turns lines into patterns. It holds no mutable state and is
// safe for concurrent use. The zero value behaves like New().
type Generator struct {
	alphabet Alphabet
	maxRanks int
}

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabet restricts accepted bytes to the alphabet.
func WithAlphabet(a Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// WithMaxRanks limits the number of distinct symbols per line.
// n must be in [1, MaxRanks].
func WithMaxRanks(n int) Option {
	return func(g *Generator) {
		g.maxRanks = n
	}
}

// New returns a Generator. Without options it accepts ASCII and allows
// MaxRanks distinct symbols per line.
func New(opts ...Option) *Generator {
	g := &Generator{
		alphabet: ASCII,
		maxRanks: MaxRanks,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxRanks < 1 || g.maxRanks > MaxRanks {
		panic(fmt.Sprintf("gopattern: max ranks %d out of range [1, %d]", g.maxRanks, MaxRanks))
	}
	return g
}

var defaultGenerator = New()

// Default returns the generator used by the package-level Generate.
func Default() *Generator {
	return defaultGenerator
}

// Generate computes the pattern of line with the default generator.
func Generate(line string) (Pattern, error) {
	return defaultGenerator.Generate(line)
}

// Alphabet returns the accepted alphabet.
func (g *Generator) Alphabet() Alphabet {
	if g.alphabet == (Alphabet{}) {
		return ASCII
	}
	return g.alphabet
}

// MaxRanks returns the distinct symbol limit.
func (g *Generator) MaxRanks() int {
	if g.maxRanks == 0 {
		return MaxRanks
	}
	return g.maxRanks
}

// Generate computes the pattern of line. On failure the returned error is
// a *SymbolError and no pattern is returned.
func (g *Generator) Generate(line string) (Pattern, error) {
	p, err := appendPattern(g, make(Pattern, 0, len(line)), line)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GenerateBytes is like Generate for a byte slice.
func (g *Generator) GenerateBytes(line []byte) (Pattern, error) {
	p, err := appendPattern(g, make(Pattern, 0, len(line)), line)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Append appends the pattern of line to dst. On failure dst is returned
// with its original length.
func (g *Generator) Append(dst Pattern, line []byte) (Pattern, error) {
	return appendPattern(g, dst, line)
}

func appendPattern[S string | []byte](g *Generator, dst Pattern, line S) (Pattern, error) {
	// seen[b] is 0 until b appears, then rank+1.
	var seen [256]uint16
	var next uint16
	alphabet, maxRanks := g.Alphabet(), g.MaxRanks()
	start := len(dst)
	for i := 0; i < len(line); i++ {
		b := line[i]
		if !alphabet.Contains(b) {
			return dst[:start], &SymbolError{Offset: i, Symbol: b, Err: ErrAlphabetRange}
		}
		rank := seen[b]
		if rank == 0 {
			if int(next) == maxRanks {
				return dst[:start], &SymbolError{Offset: i, Symbol: b, Err: ErrOverflow}
			}
			next++
			seen[b] = next
			rank = next
		}
		dst = append(dst, byte(rank-1))
	}
	return dst, nil
}
