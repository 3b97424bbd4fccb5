package domain

import (
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// Encode computes the feedback for a guess against a target.
//
// For every letter shared by both words, exact matches are resolved first and
// use up occurrences of that letter in the target; the guess positions left
// over are then marked misplaced, in order, while occurrences remain. So a
// letter is never reported more times than the target holds it.
func Encode(guess, target Locations, length int) m.Pattern {
	pattern := m.NewPattern(length)

	for letter, positions := range guess {
		targetPositions, ok := target[letter]
		if !ok {
			continue
		}

		remaining := len(targetPositions)

		for _, i := range positions {
			if target.Has(letter, i) {
				pattern = pattern.Set(i, m.Exact)
				remaining--
			}
		}

		for _, i := range positions {
			if remaining <= 0 {
				break
			}

			if pattern.At(i) == m.Exact {
				continue
			}

			pattern = pattern.Set(i, m.Misplaced)
			remaining--
		}
	}

	return pattern
}

// Feedback is Encode for plain words; length is taken from the guess.
func Feedback(guess, target m.Word) m.Pattern {
	return Encode(Locate(guess), Locate(target), guess.Len())
}
