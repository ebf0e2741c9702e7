package gopattern

// NaiveGenerate is a simple map-based implementation for testing.
// It accepts the ASCII alphabet and MaxRanks distinct symbols, like the
// default generator.
func NaiveGenerate(line string) (Pattern, error) {
	ranks := make(map[byte]int)
	out := make(Pattern, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c > 0x7f {
			return nil, &SymbolError{Offset: i, Symbol: c, Err: ErrAlphabetRange}
		}
		r, ok := ranks[c]
		if !ok {
			r = len(ranks)
			ranks[c] = r
		}
		out = append(out, byte(r))
	}
	return out, nil
}
