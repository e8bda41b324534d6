package dmp

import (
	"regexp"
	"unicode/utf8"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Fixed regexes for the boundary score (spec.md §6). Unicode-flag off,
// matching the reference implementations bit-for-bit.
var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blankLineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
	blankLineStartRegex  = regexp.MustCompile(`^\r?\n\r?\n`)
)

// CleanupSemantic reduces the number of edits by eliminating semantically
// trivial equalities, aligning single-edit boundaries to logical
// boundaries, and extracting overlap between adjacent delete/insert pairs
// (spec.md §4.7). It mutates and returns diffs.
func (e *Engine) CleanupSemantic(diffs Diffs) Diffs {
	changes := false
	// Stack of indices into diffs where an equality was found, popped as
	// candidates are ruled out or consumed (spec.md §9's "stacks of
	// indices" note).
	equalities := arraystack.New()
	var lastEquality string
	pointer := 0
	var lenIns1, lenDel1, lenIns2, lenDel2 int

	for pointer < len(diffs) {
		if diffs[pointer].Op == Equal {
			equalities.Push(pointer)
			lenIns1, lenDel1 = lenIns2, lenDel2
			lenIns2, lenDel2 = 0, 0
			lastEquality = diffs[pointer].Text
		} else {
			if diffs[pointer].Op == Insert {
				lenIns2 += runeCount(diffs[pointer].Text)
			} else {
				lenDel2 += runeCount(diffs[pointer].Text)
			}
			if lastEquality != "" &&
				runeCount(lastEquality) <= max(lenIns1, lenDel1) &&
				runeCount(lastEquality) <= max(lenIns2, lenDel2) {
				insPoint, _ := equalities.Peek()
				diffs = splice(diffs, insPoint.(int), 0, Diff{Op: Delete, Text: lastEquality})
				diffs[insPoint.(int)+1].Op = Insert

				equalities.Pop() // discard the equality just consumed
				if _, ok := equalities.Peek(); ok {
					equalities.Pop() // discard the one before it too
				}
				if top, ok := equalities.Peek(); ok {
					pointer = top.(int)
				} else {
					pointer = -1
				}

				lenIns1, lenDel1, lenIns2, lenDel2 = 0, 0, 0, 0
				lastEquality = ""
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = diffCleanupMerge(diffs)
	}
	diffs = cleanupSemanticLossless(diffs)

	// Extract overlap between an adjacent DELETE/INSERT pair, e.g.
	// <del>abcxxx</del><ins>xxxdef</ins> -> <del>abc</del>xxx<ins>def</ins>.
	pointer = 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Op == Delete && diffs[pointer].Op == Insert {
			deletion := diffs[pointer-1].Text
			insertion := diffs[pointer].Text
			overlap1 := commonOverlap(deletion, insertion)
			overlap2 := commonOverlap(insertion, deletion)
			if overlap1 >= overlap2 {
				if float64(overlap1) >= float64(runeCount(deletion))/2 ||
					float64(overlap1) >= float64(runeCount(insertion))/2 {
					insRunes := []rune(insertion)
					diffs = splice(diffs, pointer, 0, Diff{Op: Equal, Text: string(insRunes[:overlap1])})
					diffs[pointer-1].Text = string([]rune(deletion)[:runeCount(deletion)-overlap1])
					diffs[pointer+1].Text = string(insRunes[overlap1:])
					pointer++
				}
			} else if float64(overlap2) >= float64(runeCount(deletion))/2 ||
				float64(overlap2) >= float64(runeCount(insertion))/2 {
				delRunes := []rune(deletion)
				diffs = splice(diffs, pointer, 0, Diff{Op: Equal, Text: string(delRunes[:overlap2])})
				diffs[pointer-1].Op = Insert
				diffs[pointer-1].Text = string([]rune(insertion)[:runeCount(insertion)-overlap2])
				diffs[pointer+1].Op = Delete
				diffs[pointer+1].Text = string(delRunes[overlap2:])
				pointer++
			}
			pointer++
		}
		pointer++
	}
	return diffs
}

// semanticScore scores whether the boundary between one and two falls on a
// logical boundary, 0 (worst) to 6 (best) (spec.md §4.7).
func semanticScore(one, two string) int {
	if one == "" || two == "" {
		return 6
	}
	r1, _ := utf8.DecodeLastRuneInString(one)
	r2, _ := utf8.DecodeRuneInString(two)
	char1, char2 := string(r1), string(r2)

	nonAlphaNumeric1 := nonAlphaNumericRegex.MatchString(char1)
	nonAlphaNumeric2 := nonAlphaNumericRegex.MatchString(char2)
	whitespace1 := nonAlphaNumeric1 && whitespaceRegex.MatchString(char1)
	whitespace2 := nonAlphaNumeric2 && whitespaceRegex.MatchString(char2)
	lineBreak1 := whitespace1 && linebreakRegex.MatchString(char1)
	lineBreak2 := whitespace2 && linebreakRegex.MatchString(char2)
	blankLine1 := lineBreak1 && blankLineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blankLineStartRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlphaNumeric1 && !whitespace1 && whitespace2:
		return 3
	case whitespace1 || whitespace2:
		return 2
	case nonAlphaNumeric1 || nonAlphaNumeric2:
		return 1
	default:
		return 0
	}
}

// cleanupSemanticLossless slides single edits between two equalities to
// align the edit on a logical boundary (spec.md §4.7 phase 2).
func cleanupSemanticLossless(diffs Diffs) Diffs {
	pointer := 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Op == Equal && diffs[pointer+1].Op == Equal {
			equality1 := diffs[pointer-1].Text
			edit := diffs[pointer].Text
			equality2 := diffs[pointer+1].Text

			if commonOffset := CommonSuffix(equality1, edit); commonOffset > 0 {
				e1Runes, editRunes := []rune(equality1), []rune(edit)
				common := string(editRunes[len(editRunes)-commonOffset:])
				equality1 = string(e1Runes[:len(e1Runes)-commonOffset])
				edit = common + string(editRunes[:len(editRunes)-commonOffset])
				equality2 = common + equality2
			}

			bestEquality1, bestEdit, bestEquality2 := equality1, edit, equality2
			bestScore := semanticScore(equality1, edit) + semanticScore(edit, equality2)

			for edit != "" && equality2 != "" {
				r, sz := utf8.DecodeRuneInString(edit)
				r2, sz2 := utf8.DecodeRuneInString(equality2)
				if r != r2 {
					break
				}
				equality1 += edit[:sz]
				edit = edit[sz:] + equality2[:sz2]
				equality2 = equality2[sz2:]
				score := semanticScore(equality1, edit) + semanticScore(edit, equality2)
				// >= biases toward trailing rather than leading whitespace.
				if score >= bestScore {
					bestScore = score
					bestEquality1, bestEdit, bestEquality2 = equality1, edit, equality2
				}
			}

			if diffs[pointer-1].Text != bestEquality1 {
				if bestEquality1 != "" {
					diffs[pointer-1].Text = bestEquality1
				} else {
					diffs = splice(diffs, pointer-1, 1)
					pointer--
				}
				diffs[pointer].Text = bestEdit
				if bestEquality2 != "" {
					diffs[pointer+1].Text = bestEquality2
				} else {
					diffs = append(diffs[:pointer+1], diffs[pointer+2:]...)
					pointer--
				}
			}
		}
		pointer++
	}
	return diffs
}
