package main

import (
	"fmt"
	"os"

	"github.com/starius/hipattern/gopattern"
)

// gen_patterns prints patterns and hashes used as gold values in tests.
func main() {
	seed := uint64(0x1122334455667788)
	inputs := []string{
		"", "A", "AB", "ABAB", "CDCD", "LALALA", "XOXOXO", "GCGCGC",
		"HHHCCC", "BBBMMM", "EGONUH", "HHRGOE", "LALALAXOXOXO",
	}
	for _, s := range inputs {
		p, err := gopattern.Generate(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q: %v\n", s, err)
			os.Exit(1)
		}
		fmt.Printf("%q: %s 0x%016x 0x%016x\n", s, p, p.Hash(), p.HashSeed(seed))
	}
}
