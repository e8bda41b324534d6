package dmp

import (
	"errors"
	"strings"
	"testing"
)

func TestMatchExact(t *testing.T) {
	e := New(DefaultConfig())
	tests := []struct {
		name               string
		text, pattern      string
		loc                int
		want               int
	}{
		{"exact match at loc", "abcdefghijk", "fgh", 5, 5},
		{"identical strings", "abc", "abc", 0, 0},
		{"empty text", "", "abc", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Match(tt.text, tt.pattern, tt.loc)
			if err != nil {
				t.Fatalf("Match returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %q, %d) = %d, want %d", tt.text, tt.pattern, tt.loc, got, tt.want)
			}
		})
	}
}

func TestMatchFuzzy(t *testing.T) {
	e := New(DefaultConfig())
	got, err := e.Match("abcdefghijk", "efxhi", 0)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if got != 3 {
		t.Errorf("Match(fuzzy) = %d, want 3", got)
	}
}

func TestMatchThresholdBoundary(t *testing.T) {
	text, pattern := "abcdefghijk", "efxyz"
	strict := New(Config{MatchThreshold: 0, MatchDistance: DefaultMatchDistance, MatchMaxBits: DefaultMatchMaxBits, DiffTimeout: DefaultDiffTimeout})
	strict.Config.MatchThreshold = 0 // New fills a zero threshold with the default
	if got, err := strict.Match(text, pattern, 0); err != nil || got != -1 {
		t.Errorf("strict threshold Match = (%d, %v), want (-1, nil)", got, err)
	}

	lenient := New(Config{MatchThreshold: 1.0, MatchDistance: DefaultMatchDistance, MatchMaxBits: DefaultMatchMaxBits, DiffTimeout: DefaultDiffTimeout})
	if got, err := lenient.Match(text, pattern, 0); err != nil || got == -1 {
		t.Errorf("lenient threshold Match = (%d, %v), want a match", got, err)
	}
}

func TestMatchPatternTooLong(t *testing.T) {
	e := New(Config{MatchMaxBits: 4})
	_, err := e.Match(strings.Repeat("x", 20), "abcdefgh", 0)
	if !errors.Is(err, ErrPatternTooLong) {
		t.Errorf("Match with oversized pattern error = %v, want wrapping ErrPatternTooLong", err)
	}
}

func TestMatchAlphabet(t *testing.T) {
	got := matchAlphabet([]rune("abc"))
	want := map[rune]int{'a': 4, 'b': 2, 'c': 1}
	for r, mask := range want {
		if got[r] != mask {
			t.Errorf("matchAlphabet[%q] = %b, want %b", r, got[r], mask)
		}
	}
}
