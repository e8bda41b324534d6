package dmp

import (
	"context"
	"testing"
)

func TestLinesToCharsRoundTrip(t *testing.T) {
	idx := newLineIndex()
	text1 := "alpha\nbeta\ngamma\n"
	text2 := "alpha\nDELTA\ngamma\n"

	chars1 := []rune(idx.linesToChars(text1, maxLineValue1))
	chars2 := []rune(idx.linesToChars(text2, maxLineValue2))

	if len(chars1) != 3 || len(chars2) != 3 {
		t.Fatalf("expected 3 code units per side, got %d and %d", len(chars1), len(chars2))
	}
	// "alpha\n" and "gamma\n" are shared lines, so they must encode to the
	// same rune on both sides.
	if chars1[0] != chars2[0] {
		t.Errorf("shared first line encoded differently: %v vs %v", chars1[0], chars2[0])
	}
	if chars1[2] != chars2[2] {
		t.Errorf("shared last line encoded differently: %v vs %v", chars1[2], chars2[2])
	}
	if chars1[1] == chars2[1] {
		t.Errorf("distinct middle lines encoded identically")
	}

	diffs := Diffs{{Op: Equal, Text: string(chars1[0])}, {Op: Delete, Text: string(chars1[1])}, {Op: Insert, Text: string(chars2[1])}, {Op: Equal, Text: string(chars1[2])}}
	rehydrated := charsToLines(diffs, idx.lineArray)
	if rehydrated.Text1() != text1 {
		t.Errorf("Text1() after rehydration = %q, want %q", rehydrated.Text1(), text1)
	}
	if rehydrated.Text2() != text2 {
		t.Errorf("Text2() after rehydration = %q, want %q", rehydrated.Text2(), text2)
	}
}

func TestLinesToCharsSaturation(t *testing.T) {
	idx := newLineIndex()
	text := "a\nb\nc\nd\n"
	chars := idx.linesToChars(text, 2)
	// Lines beyond the cap fold into one synthetic trailing line, so the
	// encoded stream still has one code unit per split, but only 2
	// distinct lines plus the fold get registered as new entries beyond
	// the reserved empty slot.
	if len(idx.lineArray)-1 > 3 {
		t.Errorf("expected at most 3 registered lines (2 capped + 1 fold), got %d", len(idx.lineArray)-1)
	}
	if len(chars) == 0 {
		t.Fatalf("expected non-empty encoded stream")
	}
}

func TestDiffLineMode(t *testing.T) {
	e := New(DefaultConfig())
	text1 := "The cat\nsat on\nthe mat.\n"
	text2 := "The big cat\nsat on\nthe mat.\n"

	diffs, err := e.diffLineMode(context.Background(), []rune(text1), []rune(text2))
	if err != nil {
		t.Fatalf("diffLineMode returned error: %v", err)
	}
	if diffs.Text1() != text1 {
		t.Errorf("Text1() = %q, want %q", diffs.Text1(), text1)
	}
	if diffs.Text2() != text2 {
		t.Errorf("Text2() = %q, want %q", diffs.Text2(), text2)
	}
	for i := 1; i < len(diffs); i++ {
		if diffs[i].Op == diffs[i-1].Op {
			t.Errorf("adjacent segments share Op %v at index %d: %v", diffs[i].Op, i, diffs)
		}
	}
}
