package cli

import (
	"fmt"
	"strings"

	"wordlesolver/internal/solver"
)

// parseGuesses reads "word:pattern" arguments into a history, in order.
func parseGuesses(raw []string) (solver.History, error) {
	h := make(solver.History, 0, len(raw))
	for _, arg := range raw {
		word, pattern, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("guess %q: want word:pattern, e.g. crane:bbygb", arg)
		}
		g, err := solver.NewGuess(word, pattern)
		if err != nil {
			return nil, fmt.Errorf("guess %q: %w", arg, err)
		}
		h = append(h, g)
	}
	return h, nil
}
