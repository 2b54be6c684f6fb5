// Package simulate plays the best-suggestion strategy against every secret
// in a word list. Games are independent and run in parallel.
package simulate

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"wordlesolver/internal/solver"
)

// Options control a simulation run.
type Options struct {
	Workers int    // Parallel games; defaults to NumCPU
	Opener  string // Fixed first guess; empty uses the top suggestion
}

// Game is the record of one played secret.
type Game struct {
	Secret  string         `json:"secret" yaml:"secret"`
	Guesses solver.History `json:"guesses" yaml:"guesses"`
	Solved  bool           `json:"solved" yaml:"solved"`
}

// Tries returns the number of guesses played.
func (g Game) Tries() int {
	return len(g.Guesses)
}

// Report summarizes a run.
type Report struct {
	Games        []Game      `json:"games" yaml:"games"`
	Solved       int         `json:"solved" yaml:"solved"`
	Failed       []string    `json:"failed" yaml:"failed"`
	Distribution map[int]int `json:"distribution" yaml:"distribution"` // Tries -> count
	AverageTries float64     `json:"averageTries" yaml:"averageTries"`
}

// Play solves secret using dictionary, guessing the best-ranked candidate
// each turn. opener, when set, replaces the first guess.
func Play(dictionary []string, secret, opener string) Game {
	game := Game{Secret: secret}
	candidates := dictionary

	for turn := 0; turn < solver.MaxGuesses; turn++ {
		var guess string
		if turn == 0 && opener != "" {
			guess = opener
		} else {
			ranked := solver.RankBestSuggestions(candidates)
			if len(ranked) == 0 {
				log.Warnf("No candidates left for secret %s after %d guesses", secret, turn)
				return game
			}
			guess = ranked[0].Word
		}

		g := solver.Guess{Word: guess, Feedback: solver.Evaluate(guess, secret)}
		game.Guesses = append(game.Guesses, g)
		if g.Feedback.Solved() {
			game.Solved = true
			return game
		}
		candidates = solver.FilterCandidates(candidates, solver.History{g})
	}
	return game
}

// Run plays every secret and aggregates the results. Games are returned in
// the order of secrets. A cancelled context stops scheduling new games.
func Run(ctx context.Context, dictionary, secrets []string, opts Options) (Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	games := make([]Game, len(secrets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, secret := range secrets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			games[i] = Play(dictionary, secret, opts.Opener)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	return summarize(games), nil
}

func summarize(games []Game) Report {
	r := Report{
		Games:        games,
		Failed:       []string{},
		Distribution: make(map[int]int),
	}
	total := 0
	for _, g := range games {
		if !g.Solved {
			r.Failed = append(r.Failed, g.Secret)
			continue
		}
		r.Solved++
		r.Distribution[g.Tries()]++
		total += g.Tries()
	}
	if r.Solved > 0 {
		r.AverageTries = float64(total) / float64(r.Solved)
	}
	return r
}
