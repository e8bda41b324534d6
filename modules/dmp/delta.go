package dmp

import (
	"net/url"
	"strconv"
	"strings"
)

// ToDelta encodes diffs as the compact, TAB-separated delta format of
// spec.md §6: `=n` for an EQUAL of n runes, `-n` for a DELETE of n runes,
// `+<percent-encoded text>` for an INSERT.
func (d Diffs) ToDelta() string {
	var b strings.Builder
	for i, seg := range d {
		if i > 0 {
			b.WriteByte('\t')
		}
		switch seg.Op {
		case Insert:
			b.WriteByte('+')
			b.WriteString(strings.ReplaceAll(url.QueryEscape(seg.Text), "+", " "))
		case Delete:
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(runeCount(seg.Text)))
		case Equal:
			b.WriteByte('=')
			b.WriteString(strconv.Itoa(runeCount(seg.Text)))
		}
	}
	return b.String()
}

// FromDelta reconstructs the diff script that ToDelta would have produced
// from text1, given delta. Fails with ErrInvalidEscape, ErrInvalidLength,
// ErrInvalidOperation, or ErrDeltaLengthMismatch per spec.md §7.
func FromDelta(text1, delta string) (Diffs, error) {
	runes1 := []rune(text1)
	diffs := Diffs{}
	pointer := 0

	for _, token := range strings.Split(delta, "\t") {
		if token == "" {
			continue
		}
		op, param := token[0], token[1:]
		switch op {
		case '+':
			// QueryUnescape treats a literal "+" as a space, so re-escape
			// any raw "+" in the token to keep it a plus. ToDelta itself
			// writes a plus as %2B and a space as a space.
			text, err := url.QueryUnescape(strings.ReplaceAll(param, "+", "%2b"))
			if err != nil {
				return nil, invalidEscapef("insert token %q: %v", param, err)
			}
			diffs = append(diffs, Diff{Op: Insert, Text: text})
		case '=', '-':
			n, err := strconv.Atoi(param)
			if err != nil || n < 0 {
				return nil, invalidLengthf("token %q", token)
			}
			if pointer+n > len(runes1) {
				return nil, deltaLengthMismatchf("token %q overruns text1 (%d runes available at offset %d)", token, len(runes1), pointer)
			}
			text := string(runes1[pointer : pointer+n])
			pointer += n
			if op == '=' {
				diffs = append(diffs, Diff{Op: Equal, Text: text})
			} else {
				diffs = append(diffs, Diff{Op: Delete, Text: text})
			}
		default:
			return nil, invalidOperationf("token %q", token)
		}
	}

	if pointer != len(runes1) {
		return nil, deltaLengthMismatchf("delta consumed %d of %d runes in text1", pointer, len(runes1))
	}
	return diffs, nil
}
