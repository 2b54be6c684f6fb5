package solver

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Result sizes reported for each ranking.
const (
	BestSuggestionLimit = 50
	InfoGainLimit       = 20
)

// Scored pairs a word with a ranking score. Scores from different rankings
// are not comparable.
type Scored struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// sortScored orders by score descending, then by word descending.
func sortScored(s []Scored) {
	slices.SortFunc(s, func(a, b Scored) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(b.Word, a.Word)
	})
}

// RankBestSuggestions scores each candidate by summing, over its distinct
// letters, the number of candidates containing that letter.
func RankBestSuggestions(candidates []string) []Scored {
	var freq [26]int
	sets := lo.Map(candidates, func(w string, _ int) LetterSet {
		return LettersOf(w)
	})
	for _, s := range sets {
		for l := range 26 {
			if s&(1<<l) != 0 {
				freq[l]++
			}
		}
	}

	scored := make([]Scored, len(candidates))
	for i, w := range candidates {
		score := 0
		for l := range 26 {
			if sets[i]&(1<<l) != 0 {
				score += freq[l]
			}
		}
		scored[i] = Scored{Word: w, Score: score}
	}
	sortScored(scored)
	return scored
}

// RankInfoGain scores every dictionary word by how many unguessed letters
// it would test: 2 per distinct letter not in guessed, plus 1 per distinct
// letter overall.
func RankInfoGain(dictionary []string, guessed LetterSet) []Scored {
	scored := lo.Map(dictionary, func(w string, _ int) Scored {
		letters := LettersOf(w)
		diversity := letters.Len()
		novelty := (letters &^ guessed).Len()
		return Scored{Word: w, Score: novelty*2 + diversity}
	})
	sortScored(scored)
	return scored
}

// Top returns at most n leading entries of ranked.
func Top(ranked []Scored, n int) []Scored {
	if n < 0 || len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}

// Suggestion is the outcome of filtering and ranking for one history.
type Suggestion struct {
	Candidates []string `json:"candidates" yaml:"candidates"`
	Ranked     []Scored `json:"ranked" yaml:"ranked"`
	Best       *Scored  `json:"best,omitempty" yaml:"best,omitempty"`
	Count      int      `json:"count" yaml:"count"`
}

// Empty reports whether no dictionary word survived filtering.
func (s Suggestion) Empty() bool {
	return s.Count == 0
}

// Suggest filters dictionary by h and ranks the survivors, keeping the top
// BestSuggestionLimit.
func Suggest(dictionary []string, h History) Suggestion {
	candidates := FilterCandidates(dictionary, h)
	ranked := RankBestSuggestions(candidates)
	s := Suggestion{
		Candidates: candidates,
		Ranked:     Top(ranked, BestSuggestionLimit),
		Count:      len(candidates),
	}
	if len(ranked) > 0 {
		best := ranked[0]
		s.Best = &best
	}
	return s
}

// InfoGain ranks dictionary for the letters already used in h, keeping the
// top InfoGainLimit.
func InfoGain(dictionary []string, h History) []Scored {
	return Top(RankInfoGain(dictionary, h.Letters()), InfoGainLimit)
}
