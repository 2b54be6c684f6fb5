// Package dictionary loads the word list the solver narrows down.
package dictionary

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"wordlesolver/internal/solver"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("dictionary has no valid 5-letter words")

// entry matches the {"word": ..., "hint": ...} objects of a words.json file.
type entry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// Load reads the word list at path. Files ending in .json hold either a
// string array or {"words": [...]}; anything else is one word per line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer func() { _ = f.Close() }()

	var raw []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err = ReadJSON(f)
	} else {
		raw, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	words := Normalize(raw)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	log.Debugf("Loaded %d words from %s (%d raw entries)", len(words), path, len(raw))
	return words, nil
}

// ReadText reads one word per line, skipping blank lines and # comments.
func ReadText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return words, nil
}

// ReadJSON accepts ["crane", ...], {"words": ["crane", ...]} or
// {"words": [{"word": "crane", "hint": "..."}, ...]}.
func ReadJSON(r io.Reader) ([]string, error) {
	var doc json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}

	var list []string
	if err := json.Unmarshal(doc, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Words json.RawMessage `json:"words"`
	}
	if err := json.Unmarshal(doc, &wrapped); err != nil || wrapped.Words == nil {
		return nil, errors.New("expected a string array or an object with a words field")
	}
	if err := json.Unmarshal(wrapped.Words, &list); err == nil {
		return list, nil
	}
	var entries []entry
	if err := json.Unmarshal(wrapped.Words, &entries); err != nil {
		return nil, fmt.Errorf("decode words field: %w", err)
	}
	return lo.Map(entries, func(e entry, _ int) string { return e.Word }), nil
}

// Normalize lowercases and trims every word, drops anything that is not
// five letters a-z and removes duplicates, keeping first occurrences.
func Normalize(words []string) []string {
	valid := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = solver.NormalizeWord(w)
		if err := solver.ValidateWord(w); err != nil {
			log.Debugf("Skipping word %q: %v", w, err)
			return "", false
		}
		return w, true
	})
	return lo.Uniq(valid)
}
