package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"wordlesolver/internal/logger"
	"wordlesolver/internal/simulate"
	"wordlesolver/internal/solver"
)

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := Execute(context.Background()); err != nil {
		t.Fatalf("wordlesolver %v: %v", args, err)
	}
	return out.String()
}

func TestParseGuesses(t *testing.T) {
	h, err := parseGuesses([]string{"CRANE:bbybg", "stole:gybbb"})
	if err != nil {
		t.Fatalf("parseGuesses: %v", err)
	}
	if len(h) != 2 || h[0].String() != "crane:bbybg" || h[1].String() != "stole:gybbb" {
		t.Errorf("parseGuesses = %v", h)
	}

	tests := []struct {
		arg  string
		want error
	}{
		{"crane", nil},
		{"cran:bbbbb", solver.ErrWordLength},
		{"cr4ne:bbbbb", solver.ErrWordChar},
		{"crane:bbqbb", solver.ErrFeedback},
	}
	for _, tt := range tests {
		_, err := parseGuesses([]string{tt.arg})
		if err == nil {
			t.Errorf("parseGuesses(%q) succeeded, want error", tt.arg)
			continue
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("parseGuesses(%q) err = %v, want %v", tt.arg, err, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	v := solver.Scored{Word: "crane", Score: 5}
	text := func(w io.Writer) { io.WriteString(w, "crane 5\n") }

	tests := []struct {
		format string
		want   string
	}{
		{"text", "crane 5\n"},
		{"json", "{\n  \"word\": \"crane\",\n  \"score\": 5\n}\n"},
		{"YAML", "word: crane\nscore: 5\n"},
	}
	for _, tt := range tests {
		viper.Set("output", tt.format)
		var buf bytes.Buffer
		if err := render(&buf, v, text); err != nil {
			t.Fatalf("render(%s): %v", tt.format, err)
		}
		if buf.String() != tt.want {
			t.Errorf("render(%s) = %q, want %q", tt.format, buf.String(), tt.want)
		}
	}

	viper.Set("output", "xml")
	if err := render(io.Discard, v, text); err == nil {
		t.Error("render(xml) succeeded, want error")
	}
	viper.Set("output", "text")
}

func TestSuggestCommand(t *testing.T) {
	path := writeWords(t, "apple", "ample", "angle", "ankle")
	viper.Set("output", "json")
	defer viper.Set("output", "text")

	raw := execute(t, "suggest", "--words", path, "--guess", "angle:gbbgg")
	var out suggestOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	if out.Count != 2 || out.Best == nil || out.Best.Word != "ample" || out.Best.Score != 9 {
		t.Errorf("suggest = %+v, want ample (9) of 2", out)
	}
	if len(out.Guesses) != 1 || out.Guesses[0] != "angle:gbbgg" {
		t.Errorf("guesses = %v", out.Guesses)
	}
}

func TestSimulateCommand(t *testing.T) {
	path := writeWords(t, "apple", "ample", "angle", "ankle", "crane", "stone")
	viper.Set("output", "json")
	defer viper.Set("output", "text")

	raw := execute(t, "simulate", "--words", path, "--workers", "2")
	var report simulate.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	if len(report.Games) != 6 || report.Solved != 6 || len(report.Failed) != 0 {
		t.Errorf("report: %d games, %d solved, failed %v", len(report.Games), report.Solved, report.Failed)
	}
}

func TestVerboseEnablesDebugLogging(t *testing.T) {
	prev := log.GetLevel()
	defer func() {
		verbose = false
		logger.SetLevel(prev, cliLogger)
	}()

	execute(t, "version", "--verbose")
	if log.GetLevel() != log.DebugLevel || cliLogger.GetLevel() != log.DebugLevel {
		t.Errorf("levels = %v/%v, want debug", log.GetLevel(), cliLogger.GetLevel())
	}
}

func TestWriteReport(t *testing.T) {
	r := simulate.Report{
		Games:        make([]simulate.Game, 3),
		Solved:       2,
		Failed:       []string{"eerie"},
		Distribution: map[int]int{4: 1, 2: 1},
		AverageTries: 3,
	}
	var buf bytes.Buffer
	writeReport(&buf, r, false)
	want := "Solved: 2/3\nAverage guesses: 3.000\n  2: 1\n  4: 1\nFailed: [eerie]\n"
	if buf.String() != want {
		t.Errorf("writeReport = %q, want %q", buf.String(), want)
	}
}
