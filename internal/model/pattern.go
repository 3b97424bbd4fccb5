package model

import (
	"fmt"
	"strings"
)

// Mark is the feedback for a single guess position.
type Mark uint8

const (
	// None means the letter is not in the target (or all its occurrences are used up).
	None Mark = iota
	// Misplaced means the letter is in the target at another position.
	Misplaced
	// Exact means the letter is in the target at this position.
	Exact
)

// Symbols used by the text form of a pattern.
const (
	NoneSymbol      = '-'
	MisplacedSymbol = 'w'
	ExactSymbol     = 'm'
)

// Symbol returns the character used to render the mark.
func (mk Mark) Symbol() byte {
	switch mk {
	case Exact:
		return ExactSymbol
	case Misplaced:
		return MisplacedSymbol
	default:
		return NoneSymbol
	}
}

func (mk Mark) String() string {
	switch mk {
	case Exact:
		return "exact"
	case Misplaced:
		return "misplaced"
	default:
		return "none"
	}
}

// Pattern is the feedback for a whole guess. It is comparable and can be used
// as a map key.
type Pattern struct {
	marks  [MaxWordLength]Mark
	length uint8
}

// NewPattern returns an all-None pattern of the given length.
func NewPattern(length int) Pattern {
	if length < 0 || length > MaxWordLength {
		panic(fmt.Sprintf("pattern length %d out of range 0..%d", length, MaxWordLength))
	}

	return Pattern{length: uint8(length)}
}

// AllExact returns the solved pattern of the given length.
func AllExact(length int) Pattern {
	p := NewPattern(length)
	for i := range length {
		p.marks[i] = Exact
	}

	return p
}

// PatternOf builds a pattern from explicit marks.
func PatternOf(marks ...Mark) Pattern {
	p := NewPattern(len(marks))
	copy(p.marks[:], marks)

	return p
}

// ParsePattern reads the text form produced by String ("w-m--").
func ParsePattern(text string) (Pattern, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) == 0 || len(text) > MaxWordLength {
		return Pattern{}, fmt.Errorf("invalid pattern %q: length must be 1..%d", text, MaxWordLength)
	}

	p := NewPattern(len(text))

	for i := range len(text) {
		switch text[i] {
		case ExactSymbol:
			p.marks[i] = Exact
		case MisplacedSymbol:
			p.marks[i] = Misplaced
		case NoneSymbol:
			p.marks[i] = None
		default:
			return Pattern{}, fmt.Errorf("invalid pattern %q: unexpected %q at %d", text, text[i], i)
		}
	}

	return p, nil
}

// Len returns the number of positions.
func (p Pattern) Len() int {
	return int(p.length)
}

// At returns the mark at position i.
func (p Pattern) At(i int) Mark {
	return p.marks[i]
}

// Set returns a copy of p with position i set to mark.
func (p Pattern) Set(i int, mark Mark) Pattern {
	p.marks[i] = mark
	return p
}

// Count returns how many positions carry mark.
func (p Pattern) Count(mark Mark) int {
	n := 0

	for i := range int(p.length) {
		if p.marks[i] == mark {
			n++
		}
	}

	return n
}

// Solved reports whether every position is an exact match.
func (p Pattern) Solved() bool {
	return p.length > 0 && p.Count(Exact) == int(p.length)
}

func (p Pattern) String() string {
	b := make([]byte, p.length)
	for i := range b {
		b[i] = p.marks[i].Symbol()
	}

	return string(b)
}
