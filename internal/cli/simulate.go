package cli

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"wordlesolver/internal/dictionary"
	"wordlesolver/internal/simulate"
	"wordlesolver/internal/solver"
)

var (
	simWorkers int
	simOpener  string
	simSecrets string
	simGames   bool
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play the best-suggestion strategy against every secret",
	Long: `Simulate plays one game per secret, always guessing the top ranked
candidate, and reports how many games were solved within six guesses.

Secrets default to the dictionary itself.

Example:
  wordlesolver simulate --workers 8
  wordlesolver simulate --opener crane --secrets answers.txt --output json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simWorkers, "workers", "w", 0, "parallel games (default: number of CPUs)")
	simulateCmd.Flags().StringVar(&simOpener, "opener", "", "fixed first guess")
	simulateCmd.Flags().StringVar(&simSecrets, "secrets", "", "file of secrets to play (default: the dictionary)")
	simulateCmd.Flags().BoolVar(&simGames, "games", false, "include every game in text output")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	words, err := loadWords()
	if err != nil {
		return err
	}

	secrets := words
	if simSecrets != "" {
		if secrets, err = dictionary.Load(simSecrets); err != nil {
			return err
		}
	}
	opener := solver.NormalizeWord(simOpener)
	if opener != "" {
		if err := solver.ValidateWord(opener); err != nil {
			return fmt.Errorf("opener %q: %w", simOpener, err)
		}
	}

	start := time.Now()
	report, err := simulate.Run(cmd.Context(), words, secrets, simulate.Options{
		Workers: simWorkers,
		Opener:  opener,
	})
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	cliLogger.Infof("Played %d games in %s", len(report.Games), time.Since(start).Round(time.Millisecond))

	return render(cmd.OutOrStdout(), report, func(w io.Writer) {
		writeReport(w, report, simGames)
	})
}

func writeReport(w io.Writer, r simulate.Report, games bool) {
	fmt.Fprintf(w, "Solved: %d/%d\n", r.Solved, len(r.Games))
	if r.Solved > 0 {
		fmt.Fprintf(w, "Average guesses: %.3f\n", r.AverageTries)
	}

	tries := lo.Keys(r.Distribution)
	slices.Sort(tries)
	for _, n := range tries {
		fmt.Fprintf(w, "  %d: %d\n", n, r.Distribution[n])
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "Failed: %v\n", r.Failed)
	}

	if games {
		for _, g := range r.Games {
			fmt.Fprintf(w, "%s: %v\n", g.Secret, historyStrings(g.Guesses))
		}
	}
}
