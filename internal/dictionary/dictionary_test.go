package dictionary

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" CRANE", "crane", "cranes", "cr4ne", "", "Stone", "a b c"})
	want := []string{"crane", "stone"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestReadText(t *testing.T) {
	got, err := ReadText(strings.NewReader("# openers\ncrane\n\n  slate \nstone\n"))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	want := []string{"crane", "slate", "stone"}
	if !slices.Equal(got, want) {
		t.Errorf("ReadText = %v, want %v", got, want)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"array", `["crane", "stone"]`},
		{"words field", `{"words": ["crane", "stone"]}`},
		{"word entries", `{"words": [{"word": "crane", "hint": "a bird"}, {"word": "stone"}]}`},
	}
	for _, tt := range tests {
		got, err := ReadJSON(strings.NewReader(tt.body))
		if err != nil {
			t.Errorf("%s: ReadJSON: %v", tt.name, err)
			continue
		}
		if !slices.Equal(got, []string{"crane", "stone"}) {
			t.Errorf("%s: ReadJSON = %v", tt.name, got)
		}
	}

	for _, bad := range []string{`{"other": 1}`, `42`, `{`} {
		if _, err := ReadJSON(strings.NewReader(bad)); err == nil {
			t.Errorf("ReadJSON(%s) succeeded, want error", bad)
		}
	}
}

func TestLoad(t *testing.T) {
	txt := writeFile(t, "words.txt", "CRANE\nstone\nstone\ntoolong\n")
	got, err := Load(txt)
	if err != nil {
		t.Fatalf("Load txt: %v", err)
	}
	if !slices.Equal(got, []string{"crane", "stone"}) {
		t.Errorf("Load txt = %v", got)
	}

	js := writeFile(t, "words.json", `{"words": ["Apple", "ample"]}`)
	got, err = Load(js)
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if !slices.Equal(got, []string{"apple", "ample"}) {
		t.Errorf("Load json = %v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
	empty := writeFile(t, "empty.txt", "toolong\nabc\n")
	if _, err := Load(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty dictionary err = %v, want ErrEmpty", err)
	}
}

func TestBundledWordList(t *testing.T) {
	words, err := Load("../../data/words.txt")
	if err != nil {
		t.Fatalf("Load bundled list: %v", err)
	}
	raw, err := os.ReadFile("../../data/words.txt")
	if err != nil {
		t.Fatalf("read bundled list: %v", err)
	}
	lines, _ := ReadText(strings.NewReader(string(raw)))
	if len(lines) != len(words) {
		t.Errorf("bundled list has %d lines but %d valid unique words", len(lines), len(words))
	}
}

func TestNormalize_LogsSkippedWordsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prevLevel := log.GetLevel()
	log.SetOutput(&buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(prevLevel)
	}()

	Normalize([]string{"crane", "cr4ne"})
	if !strings.Contains(buf.String(), "Skipping word") || !strings.Contains(buf.String(), "cr4ne") {
		t.Errorf("skipped word not logged: %q", buf.String())
	}
}
