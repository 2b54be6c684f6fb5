// Package solver narrows a Wordle dictionary to the words consistent with a
// guess history and ranks what is left. Every function here is pure: inputs
// are never mutated and nothing is retained between calls.
package solver

import (
	"errors"
	"math/bits"
	"strings"
)

// Game dimensions
const (
	WordLength = 5 // Letters per word
	MaxGuesses = 6 // Rows on a board
)

var (
	ErrWordLength = errors.New("word must be 5 letters")
	ErrWordChar   = errors.New("word must contain only letters a-z")
	ErrFeedback   = errors.New("invalid feedback")
)

// NormalizeWord trims and lowercases a word for comparison.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateWord reports whether s is exactly five lowercase ASCII letters.
func ValidateWord(s string) error {
	if len(s) != WordLength {
		return ErrWordLength
	}
	for i := range len(s) {
		if s[i] < 'a' || s[i] > 'z' {
			return ErrWordChar
		}
	}
	return nil
}

// IsWord is ValidateWord as a predicate.
func IsWord(s string) bool {
	return ValidateWord(s) == nil
}

// LetterSet is a set of the letters a-z, one bit per letter.
type LetterSet uint32

// LettersOf returns the distinct letters of w. Non a-z bytes are ignored.
func LettersOf(w string) LetterSet {
	var s LetterSet
	for i := range len(w) {
		s = s.Add(w[i])
	}
	return s
}

// Add returns s with c included.
func (s LetterSet) Add(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return s
	}
	return s | 1<<(c-'a')
}

// Has reports whether c is in s.
func (s LetterSet) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return s&(1<<(c-'a')) != 0
}

// Len returns the number of letters in s.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Union returns the letters in either set.
func (s LetterSet) Union(o LetterSet) LetterSet {
	return s | o
}

// String returns the letters of s in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}
