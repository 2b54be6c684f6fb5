package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wordlesolver/internal/solver"
)

const noCandidatesMessage = "No possible words found with current constraints"

var (
	suggestGuesses []string
	suggestLimit   int
	infoGuesses    []string
	infoLimit      int
)

type suggestOutput struct {
	Guesses     []string        `json:"guesses" yaml:"guesses"`
	Count       int             `json:"count" yaml:"count"`
	Best        *solver.Scored  `json:"best,omitempty" yaml:"best,omitempty"`
	Suggestions []solver.Scored `json:"suggestions" yaml:"suggestions"`
	Empty       bool            `json:"empty" yaml:"empty"`
}

type infoOutput struct {
	Guesses        []string        `json:"guesses" yaml:"guesses"`
	GuessedLetters string          `json:"guessedLetters" yaml:"guessedLetters"`
	Best           *solver.Scored  `json:"best,omitempty" yaml:"best,omitempty"`
	Words          []solver.Scored `json:"words" yaml:"words"`
}

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank the words still consistent with the guesses",
	Long: `Suggest filters the dictionary by every guess and ranks the surviving
candidates by the sum, over their distinct letters, of how many candidates
contain that letter.

Example:
  wordlesolver suggest --guess crane:bbybg
  wordlesolver suggest --guess angle:gbbgg --limit 5 --output json`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Rank dictionary words by how many untested letters they try",
	Long: `Info scores every dictionary word, candidate or not, by two points per
distinct letter not yet used in any guess plus one point per distinct letter.

Example:
  wordlesolver info --guess crane:bbbbb`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(suggestCmd, infoCmd)

	suggestCmd.Flags().StringArrayVarP(&suggestGuesses, "guess", "g", nil, "guess as word:pattern (repeatable, in order)")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", solver.BestSuggestionLimit, "number of ranked words to show")

	infoCmd.Flags().StringArrayVarP(&infoGuesses, "guess", "g", nil, "guess as word:pattern (repeatable, in order)")
	infoCmd.Flags().IntVarP(&infoLimit, "limit", "n", solver.InfoGainLimit, "number of ranked words to show")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	h, err := parseGuesses(suggestGuesses)
	if err != nil {
		return err
	}
	words, err := loadWords()
	if err != nil {
		return err
	}

	s := solver.Suggest(words, h)
	out := suggestOutput{
		Guesses:     historyStrings(h),
		Count:       s.Count,
		Best:        s.Best,
		Suggestions: solver.Top(solver.RankBestSuggestions(s.Candidates), suggestLimit),
		Empty:       s.Empty(),
	}
	cliLogger.Debugf("%d guesses left %d of %d words", len(h), s.Count, len(words))

	return render(cmd.OutOrStdout(), out, func(w io.Writer) {
		if out.Empty {
			fmt.Fprintln(w, noCandidatesMessage)
			return
		}
		fmt.Fprintf(w, "Matches: %d\n", out.Count)
		fmt.Fprintf(w, "Best suggestion: %s (score %d)\n", out.Best.Word, out.Best.Score)
		writeRanking(w, out.Suggestions)
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	h, err := parseGuesses(infoGuesses)
	if err != nil {
		return err
	}
	words, err := loadWords()
	if err != nil {
		return err
	}

	letters := h.Letters()
	out := infoOutput{
		Guesses:        historyStrings(h),
		GuessedLetters: letters.String(),
		Words:          solver.Top(solver.RankInfoGain(words, letters), infoLimit),
	}
	if len(out.Words) > 0 {
		best := out.Words[0]
		out.Best = &best
	}

	return render(cmd.OutOrStdout(), out, func(w io.Writer) {
		if out.Best == nil {
			fmt.Fprintln(w, "Dictionary is empty")
			return
		}
		if out.GuessedLetters != "" {
			fmt.Fprintf(w, "Guessed letters: %s\n", out.GuessedLetters)
		}
		fmt.Fprintf(w, "Most informative: %s (score %d)\n", out.Best.Word, out.Best.Score)
		writeRanking(w, out.Words)
	})
}

func historyStrings(h solver.History) []string {
	out := make([]string, len(h))
	for i, g := range h {
		out[i] = g.String()
	}
	return out
}

func writeRanking(w io.Writer, ranked []solver.Scored) {
	for i, s := range ranked {
		fmt.Fprintf(w, "%3d. %s  %d\n", i+1, s.Word, s.Score)
	}
}
