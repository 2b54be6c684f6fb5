package solver

import "github.com/samber/lo"

// FilterCandidates returns the words of dictionary consistent with every
// guess in h, in dictionary order. An empty history returns dictionary
// unchanged; an empty result means the constraints admit no word.
func FilterCandidates(dictionary []string, h History) []string {
	if len(h) == 0 {
		return dictionary
	}
	return lo.Filter(dictionary, func(w string, _ int) bool {
		return MatchesHistory(w, h)
	})
}
