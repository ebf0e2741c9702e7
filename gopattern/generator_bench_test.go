package gopattern

import "testing"

func BenchmarkGenerate(b *testing.B) {
	const line = "LALALAXOXOXO"
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		if _, err := Generate(line); err != nil {
			b.Fatalf("Generate(%q): %v", line, err)
		}
	}
}

func BenchmarkAppend(b *testing.B) {
	line := []byte("LALALAXOXOXO")
	g := Default()
	buf := make(Pattern, 0, len(line))
	b.SetBytes(int64(len(line)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		buf, err = g.Append(buf[:0], line)
		if err != nil {
			b.Fatalf("Append: %v", err)
		}
	}
}

func BenchmarkNaiveGenerate(b *testing.B) {
	const line = "LALALAXOXOXO"
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		if _, err := NaiveGenerate(line); err != nil {
			b.Fatalf("NaiveGenerate(%q): %v", line, err)
		}
	}
}
