package main

import (
	"errors"
	"time"

	"github.com/samber/lo"

	"wordlesolver/internal/solver"
)

// newBoard returns an empty board: no letters, every tile gray.
func newBoard() *Board {
	return &Board{LastAccessTime: time.Now()}
}

// setWord stores the letters typed into row. Partial words are kept but are
// not used for solving until they reach five letters.
func (b *Board) setWord(row int, word string) error {
	if row < 0 || row >= MaxGuesses {
		return errors.New(ErrorInvalidRow)
	}
	word = solver.NormalizeWord(word)
	if len(word) > WordLength {
		return errors.New(ErrorTooLong)
	}
	for i := range len(word) {
		if word[i] < 'a' || word[i] > 'z' {
			return errors.New(ErrorInvalidLetter)
		}
	}
	b.Words[row] = word
	return nil
}

// toggle cycles the colour of one tile and returns its new value.
func (b *Board) toggle(row, col int) (solver.LetterFeedback, error) {
	if row < 0 || row >= MaxGuesses {
		return solver.Absent, errors.New(ErrorInvalidRow)
	}
	if col < 0 || col >= WordLength {
		return solver.Absent, errors.New(ErrorInvalidCol)
	}
	b.Colors[row][col] = b.Colors[row][col].Next()
	return b.Colors[row][col], nil
}

// reset clears every row.
func (b *Board) reset() {
	b.Words = [MaxGuesses]string{}
	b.Colors = [MaxGuesses]solver.Feedback{}
}

// history admits the complete rows, top to bottom, as guesses.
func (b *Board) history() solver.History {
	rows := lo.Filter(lo.Range(MaxGuesses), func(row int, _ int) bool {
		return solver.IsWord(b.Words[row])
	})
	return lo.Map(rows, func(row int, _ int) solver.Guess {
		return solver.Guess{Word: b.Words[row], Feedback: b.Colors[row]}
	})
}

// clone copies the board so it can be read outside the session lock.
func (b *Board) clone() *Board {
	c := *b
	return &c
}
