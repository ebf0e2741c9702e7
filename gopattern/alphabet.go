package gopattern

import "fmt"

// Alphabet is an inclusive range of byte values accepted by a Generator.
type Alphabet struct {
	Name string
	Min  byte
	Max  byte
}

var (
	// Uppercase accepts only 'A'..'Z'.
	Uppercase = Alphabet{Name: "upper", Min: 'A', Max: 'Z'}

	// ASCII accepts 7-bit bytes. It is the default alphabet.
	ASCII = Alphabet{Name: "ascii", Min: 0, Max: 0x7f}

	// Extended accepts any byte value.
	Extended = Alphabet{Name: "extended", Min: 0, Max: 0xff}
)

// Contains reports whether b belongs to the alphabet.
func (a Alphabet) Contains(b byte) bool {
	return b >= a.Min && b <= a.Max
}

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int {
	return int(a.Max) - int(a.Min) + 1
}

func (a Alphabet) String() string {
	return a.Name
}

// ParseAlphabet returns the predefined alphabet with the given name.
func ParseAlphabet(name string) (Alphabet, error) {
	switch name {
	case Uppercase.Name:
		return Uppercase, nil
	case ASCII.Name:
		return ASCII, nil
	case Extended.Name:
		return Extended, nil
	}
	return Alphabet{}, fmt.Errorf("unknown alphabet %q (use upper, ascii or extended)", name)
}
