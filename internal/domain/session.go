package domain

import (
	"errors"
	"fmt"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

var (
	// ErrInvalidGuess is returned for a guess outside the master word list.
	ErrInvalidGuess = errors.New("guess is not in the word list")
	// ErrInvalidFeedback is returned for a pattern no remaining word produces.
	ErrInvalidFeedback = errors.New("feedback does not match any remaining word")
)

// Session is the state of one interactive game: the allowed guesses, the
// solutions still possible and the number of the next turn.
type Session struct {
	master     []m.Word
	allowed    map[m.Word]struct{}
	candidates []m.Word
	turn       int
}

// NewSession starts a game with every solution still possible.
func NewSession(master, candidates []m.Word) *Session {
	allowed := make(map[m.Word]struct{}, len(master))
	for _, w := range master {
		allowed[w] = struct{}{}
	}

	return &Session{
		master:     master,
		allowed:    allowed,
		candidates: candidates,
		turn:       1,
	}
}

// Turn is the 1-based number of the next guess.
func (s *Session) Turn() int {
	return s.turn
}

// Master returns the allowed guesses.
func (s *Session) Master() []m.Word {
	return s.master
}

// Candidates returns the solutions consistent with the feedback so far.
func (s *Session) Candidates() []m.Word {
	return s.candidates
}

// IsAllowed reports whether word may be guessed.
func (s *Session) IsAllowed(word m.Word) bool {
	_, ok := s.allowed[word]
	return ok
}

// Judge scores guess against secret and consumes a turn. An invalid guess
// does not count as a turn.
func (s *Session) Judge(secret, guess m.Word) (m.Pattern, error) {
	if !s.IsAllowed(guess) {
		return m.Pattern{}, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	s.turn++

	return Feedback(guess, secret), nil
}

// Partition splits the remaining candidates by the feedback guess would get.
func (s *Session) Partition(guess m.Word) (m.Partition, error) {
	if !s.IsAllowed(guess) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	return PartitionWords(guess, s.candidates), nil
}

// Narrow keeps only the candidates in the group for pattern and consumes a
// turn. The pattern must be one of the partition's keys.
func (s *Session) Narrow(partition m.Partition, pattern m.Pattern) ([]m.Word, error) {
	words, ok := partition.Lookup(pattern)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFeedback, pattern)
	}

	s.candidates = words
	s.turn++

	return words, nil
}
