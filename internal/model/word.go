// Package model defines the data structures shared by the solver.
package model

import "unicode/utf8"

// MaxWordLength is the longest word a Pattern can describe.
const MaxWordLength = 16

// DefaultWordLength is the classic Wordle word length.
const DefaultWordLength = 5

// Word is a fixed-length guess or solution.
type Word string

// Len returns the number of letters (runes) in the word.
func (w Word) Len() int {
	return utf8.RuneCountInString(string(w))
}

// Path represents a file system path.
type Path string

// ProgressFunc receives whole percentages while a long scan runs.
type ProgressFunc func(percent int)

// Words converts plain strings into words, preserving order.
func Words(values ...string) []Word {
	words := make([]Word, 0, len(values))
	for _, v := range values {
		words = append(words, Word(v))
	}

	return words
}

// Contains reports whether word is in words.
func Contains(words []Word, word Word) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}

	return false
}
