package dmp

import (
	"context"
	"strings"

	"github.com/glyphdiff/dmp/internal/linehash"
)

// lineIndex is the (encoded_string_of_code_units, line_array) pair of
// spec.md §3: encoded[i] is a rune whose numeric value indexes a distinct
// line of the original text; entry 0 is reserved empty.
type lineIndex struct {
	lineArray []string
	lineHash  map[linehash.Sum]rune
}

func newLineIndex() *lineIndex {
	return &lineIndex{
		lineArray: []string{""},
		lineHash:  make(map[linehash.Sum]rune, 64),
	}
}

// linesToChars splits text into lines and returns the encoded rune string,
// assigning each distinct line the next free code unit, starting at 1. Once
// the index holds maxLines lines, the remainder of text collapses into one
// final synthetic line (code unit at most maxLines+1) so encoding always
// terminates (spec.md §4.4).
func (idx *lineIndex) linesToChars(text string, maxLines int) string {
	var b strings.Builder
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = text[:i+1]
			text = text[i+1:]
		} else {
			line = text
			text = ""
		}
		if len(idx.lineArray)-1 >= maxLines {
			// Saturated: fold everything remaining into one line.
			line += text
			text = ""
		}
		sum := linehash.Of(line)
		id, ok := idx.lineHash[sum]
		if !ok {
			idx.lineArray = append(idx.lineArray, line)
			id = rune(len(idx.lineArray) - 1)
			idx.lineHash[sum] = id
		}
		b.WriteRune(id)
	}
	return b.String()
}

// charsToLines rehydrates every segment's text from a string of line-index
// runes back into real text.
func charsToLines(diffs Diffs, lines []string) Diffs {
	for i, seg := range diffs {
		var b strings.Builder
		for _, r := range seg.Text {
			b.WriteString(lines[r])
		}
		diffs[i].Text = b.String()
	}
	return diffs
}

// diffLineMode hashes whole lines to single runes, diffs the hashed
// streams, rehydrates the result, and re-diffs any DELETE+INSERT pair
// character-by-character (spec.md §4.4).
func (e *Engine) diffLineMode(ctx context.Context, text1, text2 []rune) (Diffs, error) {
	idx := newLineIndex()
	chars1 := idx.linesToChars(string(text1), maxLineValue1)
	chars2 := idx.linesToChars(string(text2), maxLineValue2)

	diffs, err := e.diffMainRunes(ctx, []rune(chars1), []rune(chars2), false)
	if err != nil {
		return nil, err
	}

	diffs = charsToLines(diffs, idx.lineArray)
	diffs = e.CleanupSemantic(diffs)

	// Re-diff every adjacent delete/insert pair at character granularity;
	// line-mode's own diff is only accurate at line boundaries.
	diffs = append(diffs, Diff{Op: Equal, Text: ""})
	pointer := 0
	countDelete, countInsert := 0, 0
	textDelete, textInsert := "", ""

	out := make(Diffs, 0, len(diffs))
	for pointer < len(diffs) {
		switch diffs[pointer].Op {
		case Insert:
			countInsert++
			textInsert += diffs[pointer].Text
		case Delete:
			countDelete++
			textDelete += diffs[pointer].Text
		case Equal:
			if countDelete >= 1 && countInsert >= 1 {
				sub, err := e.diffMainRunes(ctx, []rune(textDelete), []rune(textInsert), false)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			} else {
				if textDelete != "" {
					out = append(out, Diff{Op: Delete, Text: textDelete})
				}
				if textInsert != "" {
					out = append(out, Diff{Op: Insert, Text: textInsert})
				}
			}
			if diffs[pointer].Text != "" {
				out = append(out, diffs[pointer])
			}
			countDelete, countInsert = 0, 0
			textDelete, textInsert = "", ""
		}
		pointer++
	}
	return diffCleanupMerge(out), nil
}
