package solver

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LetterFeedback is the colour shown on a single tile.
type LetterFeedback uint8

// The zero value is Absent, so a fresh row reads all gray.
const (
	Absent  LetterFeedback = iota // gray
	Present                       // yellow
	Correct                       // green
)

// Status strings used in JSON bodies.
const (
	StatusAbsent  = "absent"
	StatusPresent = "present"
	StatusCorrect = "correct"
)

func (f LetterFeedback) String() string {
	switch f {
	case Present:
		return StatusPresent
	case Correct:
		return StatusCorrect
	default:
		return StatusAbsent
	}
}

// Code returns the single-letter form: b, y or g.
func (f LetterFeedback) Code() byte {
	switch f {
	case Present:
		return 'y'
	case Correct:
		return 'g'
	default:
		return 'b'
	}
}

// Next cycles gray -> yellow -> green -> gray.
func (f LetterFeedback) Next() LetterFeedback {
	return (f + 1) % 3
}

// ParseLetterFeedback accepts status names, colour names or one-letter codes.
func ParseLetterFeedback(s string) (LetterFeedback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusAbsent, "gray", "grey", "b", "x", ".", "0":
		return Absent, nil
	case StatusPresent, "yellow", "y", "1":
		return Present, nil
	case StatusCorrect, "green", "g", "2":
		return Correct, nil
	}
	return Absent, fmt.Errorf("%w: %q", ErrFeedback, s)
}

func (f LetterFeedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *LetterFeedback) UnmarshalText(b []byte) error {
	v, err := ParseLetterFeedback(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Feedback holds one tile colour per position of a guess.
type Feedback [WordLength]LetterFeedback

// ParseFeedback parses a compact pattern such as "gybbg".
func ParseFeedback(pattern string) (Feedback, error) {
	var fb Feedback
	pattern = strings.TrimSpace(pattern)
	if len(pattern) != WordLength {
		return fb, fmt.Errorf("%w: pattern %q must have %d codes", ErrFeedback, pattern, WordLength)
	}
	for i := range WordLength {
		v, err := ParseLetterFeedback(pattern[i : i+1])
		if err != nil {
			return fb, err
		}
		fb[i] = v
	}
	return fb, nil
}

// String renders the compact pattern form.
func (fb Feedback) String() string {
	b := make([]byte, WordLength)
	for i, f := range fb {
		b[i] = f.Code()
	}
	return string(b)
}

// UnmarshalJSON accepts either a compact pattern string or an array of
// per-tile values.
func (fb *Feedback) UnmarshalJSON(b []byte) error {
	var pattern string
	if err := json.Unmarshal(b, &pattern); err == nil {
		v, err := ParseFeedback(pattern)
		if err != nil {
			return err
		}
		*fb = v
		return nil
	}

	var tiles []LetterFeedback
	if err := json.Unmarshal(b, &tiles); err != nil {
		return fmt.Errorf("%w: %v", ErrFeedback, err)
	}
	if len(tiles) != WordLength {
		return fmt.Errorf("%w: got %d tiles, want %d", ErrFeedback, len(tiles), WordLength)
	}
	copy(fb[:], tiles)
	return nil
}

// Solved reports whether every tile is green.
func (fb Feedback) Solved() bool {
	for _, f := range fb {
		if f != Correct {
			return false
		}
	}
	return true
}

// Guess is a submitted word together with the feedback it received.
type Guess struct {
	Word     string   `json:"word"`
	Feedback Feedback `json:"feedback"`
}

// NewGuess admits a guess from raw input. The word is normalized first.
func NewGuess(word, pattern string) (Guess, error) {
	word = NormalizeWord(word)
	if err := ValidateWord(word); err != nil {
		return Guess{}, fmt.Errorf("guess %q: %w", word, err)
	}
	fb, err := ParseFeedback(pattern)
	if err != nil {
		return Guess{}, fmt.Errorf("guess %q: %w", word, err)
	}
	return Guess{Word: word, Feedback: fb}, nil
}

func (g Guess) String() string {
	return g.Word + ":" + g.Feedback.String()
}

// History is an ordered list of guesses. Order only matters for display.
type History []Guess

// Letters returns every letter that appears in any guessed word.
func (h History) Letters() LetterSet {
	var s LetterSet
	for _, g := range h {
		s = s.Union(LettersOf(g.Word))
	}
	return s
}

// Evaluate returns the feedback Wordle shows when guess is played against
// secret. Greens are assigned first; yellows then consume the secret's
// remaining letters left to right.
func Evaluate(guess, secret string) Feedback {
	var fb Feedback
	var remaining [26]int

	for i := range WordLength {
		if guess[i] == secret[i] {
			fb[i] = Correct
		} else if c := secret[i]; c >= 'a' && c <= 'z' {
			remaining[c-'a']++
		}
	}

	for i := range WordLength {
		if fb[i] == Correct {
			continue
		}
		c := guess[i]
		if c >= 'a' && c <= 'z' && remaining[c-'a'] > 0 {
			fb[i] = Present
			remaining[c-'a']--
		}
	}
	return fb
}
