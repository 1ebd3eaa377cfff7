package param

import (
	"errors"
	"slices"
	"testing"

	"github.com/nao1215/parasort/internal/config"
)

// newWordlist parses a wordlist document for tests.
func newWordlist(t *testing.T, doc string) *config.Wordlist {
	t.Helper()
	w, err := config.ParseWordlist([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse wordlist: %v", err)
	}
	return w
}

func TestMatcherMatch(t *testing.T) {
	t.Parallel()

	defaults := config.DefaultWordlist()

	tests := []struct {
		name       string
		wordlist   *config.Wordlist
		categories []string
		custom     []string
		param      string
		want       []string
	}{
		{
			name:     "matching is pure equality",
			wordlist: newWordlist(t, `{"sqli": ["id"]}`),
			param:    "user_id",
			want:     nil,
		},
		{
			name:     "no substring match",
			wordlist: newWordlist(t, `{"sqli": ["id"]}`),
			param:    "valid",
			want:     nil,
		},
		{
			name:     "normalized equality",
			wordlist: newWordlist(t, `{"sqli": ["User_ID"]}`),
			param:    "user%5Fid",
			want:     []string{"sqli"},
		},
		{
			name:     "one parameter in several categories",
			wordlist: defaults,
			param:    "q",
			want:     []string{"sqli", "xss"},
		},
		{
			name:       "category selection limits matches",
			wordlist:   defaults,
			categories: []string{"xss"},
			param:      "q",
			want:       []string{"xss"},
		},
		{
			name:     "custom params come first and keep regular matches",
			wordlist: defaults,
			custom:   []string{"cmd"},
			param:    "cmd",
			want:     []string{CustomCategory, "command_injection"},
		},
		{
			name:     "custom params are normalized",
			wordlist: newWordlist(t, `{"sqli": ["id"]}`),
			custom:   []string{"X-Debug"},
			param:    "x-debug",
			want:     []string{CustomCategory},
		},
		{
			name:     "amp artifact matches",
			wordlist: newWordlist(t, `{"sqli": ["id"]}`),
			param:    "amp;id",
			want:     []string{"sqli"},
		},
		{
			name:     "blank parameter never matches",
			wordlist: newWordlist(t, `{"sqli": ["id"]}`),
			custom:   []string{" "},
			param:    " ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := NewMatcher(tt.wordlist, tt.categories, tt.custom)
			if err != nil {
				t.Fatalf("NewMatcher() error = %v", err)
			}
			if got := m.Match(tt.param); !slices.Equal(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

func TestNewMatcher(t *testing.T) {
	t.Parallel()

	wordlist := newWordlist(t, `{"sqli": ["id"], "xss": ["q"], "lfi": ["file"]}`)

	t.Run("empty selection uses every category", func(t *testing.T) {
		t.Parallel()
		m, err := NewMatcher(wordlist, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := m.Categories(); !slices.Equal(got, []string{"sqli", "xss", "lfi"}) {
			t.Errorf("Categories() = %v", got)
		}
		if m.HasCustom() {
			t.Error("expected no custom list")
		}
	})

	t.Run("selection keeps wordlist order", func(t *testing.T) {
		t.Parallel()
		m, err := NewMatcher(wordlist, []string{"lfi", "sqli", "lfi"}, []string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := m.Categories(); !slices.Equal(got, []string{"sqli", "lfi"}) {
			t.Errorf("Categories() = %v", got)
		}
		if !m.HasCustom() {
			t.Error("expected an empty but present custom list")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		_, err := NewMatcher(wordlist, []string{"sqli", "rce"}, nil)
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("error = %v, want ErrUnknownCategory", err)
		}
	})
}

func TestMatcherCategorize(t *testing.T) {
	t.Parallel()

	wordlist := newWordlist(t, `{"sqli": ["id", "q"], "xss": ["q"], "command_injection": ["cmd"]}`)
	m, err := NewMatcher(wordlist, nil, []string{"cmd", "token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("union of categories with triggering names", func(t *testing.T) {
		t.Parallel()
		got := m.Categorize("http://a.com/?q=1&id=2&cmd=ls&zzz=0", []string{"q", "id", "cmd", "zzz"})

		wantCategories := []string{CustomCategory, "sqli", "xss", "command_injection"}
		if !slices.Equal(got.Categories, wantCategories) {
			t.Errorf("Categories = %v, want %v", got.Categories, wantCategories)
		}
		if !slices.Equal(got.Parameters["sqli"], []string{"q", "id"}) {
			t.Errorf("Parameters[sqli] = %v", got.Parameters["sqli"])
		}
		if !slices.Equal(got.Parameters["xss"], []string{"q"}) {
			t.Errorf("Parameters[xss] = %v", got.Parameters["xss"])
		}
		if !slices.Equal(got.Parameters[CustomCategory], []string{"cmd"}) {
			t.Errorf("Parameters[custom-params] = %v", got.Parameters[CustomCategory])
		}
		if got.Uncategorized() {
			t.Error("expected a categorized result")
		}
	})

	t.Run("no match is uncategorized", func(t *testing.T) {
		t.Parallel()
		got := m.Categorize("http://a.com/?zzz_unlisted=1", []string{"zzz_unlisted"})
		if !got.Uncategorized() {
			t.Errorf("expected uncategorized, got %v", got.Categories)
		}
		if got.URL != "http://a.com/?zzz_unlisted=1" {
			t.Errorf("URL = %q", got.URL)
		}
	})

	t.Run("spellings of one name are both recorded", func(t *testing.T) {
		t.Parallel()
		got := m.Categorize("http://a.com/?ID=1&id=2", []string{"ID", "id"})
		if !slices.Equal(got.Categories, []string{"sqli"}) {
			t.Errorf("Categories = %v", got.Categories)
		}
		if !slices.Equal(got.Parameters["sqli"], []string{"ID", "id"}) {
			t.Errorf("Parameters[sqli] = %v", got.Parameters["sqli"])
		}
	})
}

func TestFindCollisions(t *testing.T) {
	t.Parallel()

	t.Run("default wordlist has no collisions", func(t *testing.T) {
		t.Parallel()
		if got := FindCollisions(config.DefaultWordlist()); len(got) != 0 {
			t.Errorf("expected no collisions, got %v", got)
		}
	})

	t.Run("distinct spellings of one name collide", func(t *testing.T) {
		t.Parallel()
		wordlist := newWordlist(t, `{"a": ["id", "token"], "b": ["ID", "token"], "c": ["user%5Fid", "user_id"]}`)

		got := FindCollisions(wordlist)
		if len(got) != 2 {
			t.Fatalf("expected 2 collisions, got %v", got)
		}
		if got[0].Normalized != "id" || got[1].Normalized != "user_id" {
			t.Errorf("unexpected collisions: %v", got)
		}
		want := []Entry{{Category: "a", Raw: "id"}, {Category: "b", Raw: "ID"}}
		if !slices.Equal(got[0].Entries, want) {
			t.Errorf("Entries = %v, want %v", got[0].Entries, want)
		}
	})
}
