package solver

// letterCounts tallies occurrences of each letter a-z in w.
func letterCounts(w string) [26]int {
	var counts [26]int
	for i := range len(w) {
		if c := w[i]; c >= 'a' && c <= 'z' {
			counts[c-'a']++
		}
	}
	return counts
}

// MatchesGuess reports whether candidate, were it the secret, would have
// produced exactly g's feedback for g's word.
//
// Tile colours encode letter counts, not just presence. For a letter that
// appears k times in the guess with n non-gray tiles:
//   - n == 0: the secret has none of it
//   - n < k: the secret has exactly n
//   - n == k: the secret has at least n
func MatchesGuess(candidate string, g Guess) bool {
	if len(candidate) != WordLength || len(g.Word) != WordLength {
		return false
	}

	for i := range WordLength {
		switch g.Feedback[i] {
		case Correct:
			if candidate[i] != g.Word[i] {
				return false
			}
		case Present:
			if candidate[i] == g.Word[i] {
				return false
			}
		}
	}

	var total, nonGray [26]int
	for i := range WordLength {
		c := g.Word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		total[c-'a']++
		if g.Feedback[i] != Absent {
			nonGray[c-'a']++
		}
	}

	have := letterCounts(candidate)
	for l := range 26 {
		switch {
		case total[l] == 0:
			continue
		case nonGray[l] == 0:
			if have[l] != 0 {
				return false
			}
		case total[l] > nonGray[l]:
			if have[l] != nonGray[l] {
				return false
			}
		default:
			if have[l] < nonGray[l] {
				return false
			}
		}
	}

	for i := range WordLength {
		if g.Feedback[i] == Present && have[g.Word[i]-'a'] == 0 {
			return false
		}
	}
	return true
}

// MatchesHistory reports whether candidate is consistent with every guess.
func MatchesHistory(candidate string, h History) bool {
	for _, g := range h {
		if !MatchesGuess(candidate, g) {
			return false
		}
	}
	return true
}
