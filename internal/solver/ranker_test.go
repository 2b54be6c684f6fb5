package solver

import (
	"slices"
	"testing"
)

func TestRankBestSuggestions_Single(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"crane", 5},
		{"speed", 4},
		{"llama", 3},
	}
	for _, tt := range tests {
		got := RankBestSuggestions([]string{tt.word})
		if len(got) != 1 || got[0].Word != tt.word || got[0].Score != tt.want {
			t.Errorf("RankBestSuggestions([%s]) = %v, want [{%s %d}]", tt.word, got, tt.word, tt.want)
		}
	}
}

func TestRankBestSuggestions_Frequency(t *testing.T) {
	got := RankBestSuggestions([]string{"apple", "ample"})
	want := []Scored{{"ample", 9}, {"apple", 8}}
	if !slices.Equal(got, want) {
		t.Errorf("RankBestSuggestions = %v, want %v", got, want)
	}
}

func TestRankBestSuggestions_TieBreakDescending(t *testing.T) {
	got := RankBestSuggestions([]string{"crane", "react"})
	want := []Scored{{"react", 9}, {"crane", 9}}
	if !slices.Equal(got, want) {
		t.Errorf("RankBestSuggestions = %v, want %v", got, want)
	}
}

func TestRankBestSuggestions_Empty(t *testing.T) {
	if got := RankBestSuggestions(nil); len(got) != 0 {
		t.Errorf("RankBestSuggestions(nil) = %v, want empty", got)
	}
}

func TestRankInfoGain_NoGuesses(t *testing.T) {
	got := RankInfoGain([]string{"error", "crane"}, 0)
	want := []Scored{{"crane", 15}, {"error", 9}}
	if !slices.Equal(got, want) {
		t.Errorf("RankInfoGain = %v, want %v", got, want)
	}
}

func TestRankInfoGain_GuessedLetters(t *testing.T) {
	got := RankInfoGain([]string{"crane", "stoic", "error"}, LettersOf("crane"))
	want := []Scored{{"stoic", 13}, {"error", 5}, {"crane", 5}}
	if !slices.Equal(got, want) {
		t.Errorf("RankInfoGain = %v, want %v", got, want)
	}
}

func TestRankInfoGain_DoesNotMutateInput(t *testing.T) {
	dict := []string{"error", "crane", "stoic"}
	orig := slices.Clone(dict)
	RankInfoGain(dict, 0)
	if !slices.Equal(dict, orig) {
		t.Errorf("dictionary mutated: %v", dict)
	}
}

func TestTop(t *testing.T) {
	ranked := []Scored{{"a", 3}, {"b", 2}, {"c", 1}}
	if got := Top(ranked, 2); len(got) != 2 || got[1].Word != "b" {
		t.Errorf("Top(2) = %v", got)
	}
	if got := Top(ranked, 10); len(got) != 3 {
		t.Errorf("Top(10) = %v", got)
	}
	if got := Top(ranked, 0); len(got) != 0 {
		t.Errorf("Top(0) = %v", got)
	}
}

func TestSuggest(t *testing.T) {
	dict := []string{"apple", "ample", "angle", "ankle"}
	s := Suggest(dict, History{{Word: "angle", Feedback: Evaluate("angle", "ample")}})
	if s.Empty() || s.Count != 2 {
		t.Fatalf("Suggest count = %d, want 2", s.Count)
	}
	if s.Best == nil || s.Best.Word != "ample" || s.Best.Score != 9 {
		t.Errorf("Suggest best = %v, want ample (9)", s.Best)
	}
}

func TestSuggest_EmptyResult(t *testing.T) {
	dict := []string{"apple", "grape", "crane", "stone"}
	s := Suggest(dict, History{mustGuess(t, "crane", "bbbbb")})
	if !s.Empty() || s.Best != nil || len(s.Ranked) != 0 {
		t.Errorf("Suggest = %+v, want empty result", s)
	}
}

func TestInfoGain_Limit(t *testing.T) {
	got := InfoGain(fixtureWords, History{mustGuess(t, "crane", "bbbbb")})
	if len(got) != InfoGainLimit {
		t.Errorf("InfoGain returned %d words, want %d", len(got), InfoGainLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("InfoGain not sorted at %d: %v", i, got)
		}
	}
}
