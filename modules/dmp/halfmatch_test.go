package dmp

import (
	"context"
	"reflect"
	"testing"
)

func TestDiffHalfMatch(t *testing.T) {
	e := New(DefaultConfig())
	tests := []struct {
		name        string
		text1, text2 string
		want        *halfMatch
	}{
		{"no match #1", "1234567890", "abcdef", nil},
		{"no match #2", "12345", "23", nil},
		{"single match #1", "1234567890", "a345678z", &halfMatch{
			text1Prefix: []rune("12"), text1Suffix: []rune("90"),
			text2Prefix: []rune("a"), text2Suffix: []rune("z"), midCommon: []rune("345678"),
		}},
		{"single match #2", "a345678z", "1234567890", &halfMatch{
			text1Prefix: []rune("a"), text1Suffix: []rune("z"),
			text2Prefix: []rune("12"), text2Suffix: []rune("90"), midCommon: []rune("345678"),
		}},
		{"single match #3", "abc56789z", "1234567890", &halfMatch{
			text1Prefix: []rune("abc"), text1Suffix: []rune("z"),
			text2Prefix: []rune("1234"), text2Suffix: []rune("0"), midCommon: []rune("56789"),
		}},
		{"single match #4", "a23456xyz", "1234567890", &halfMatch{
			text1Prefix: []rune("a"), text1Suffix: []rune("xyz"),
			text2Prefix: []rune("1"), text2Suffix: []rune("7890"), midCommon: []rune("23456"),
		}},
		{"multiple matches #1", "121231234123451234123121", "a1234123451234z", &halfMatch{
			text1Prefix: []rune("12123"), text1Suffix: []rune("123121"),
			text2Prefix: []rune("a"), text2Suffix: []rune("z"), midCommon: []rune("1234123451234"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.diffHalfMatch(context.Background(), []rune(tt.text1), []rune(tt.text2))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("diffHalfMatch(%q, %q) = %+v, want %+v", tt.text1, tt.text2, got, tt.want)
			}
		})
	}
}

func TestDiffHalfMatchSuppressedWhenUnlimited(t *testing.T) {
	e := New(Config{DiffTimeout: NoTimeout})
	if got := e.diffHalfMatch(context.Background(), []rune("1234567890"), []rune("a345678z")); got != nil {
		t.Errorf("expected half-match suppressed under unlimited timeout, got %+v", got)
	}
}
