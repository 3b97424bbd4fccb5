package domain

import (
	"slices"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

// Locations maps each distinct letter of a word to its ascending positions.
type Locations map[rune][]int

// Locate builds the letter locations of word. Positions count runes, not bytes.
func Locate(word m.Word) Locations {
	locations := make(Locations, len(word))

	i := 0
	for _, letter := range string(word) {
		locations[letter] = append(locations[letter], i)
		i++
	}

	return locations
}

// Count returns how many times letter occurs.
func (l Locations) Count(letter rune) int {
	return len(l[letter])
}

// Has reports whether letter occurs at position.
func (l Locations) Has(letter rune, position int) bool {
	return slices.Contains(l[letter], position)
}
