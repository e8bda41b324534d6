package dmp

import "strings"

// runeCount returns the number of code units (runes, in this port; see
// DESIGN.md's Open Question decision on spec.md §9) in s.
func runeCount(s string) int {
	return len([]rune(s))
}

// commonPrefixLen returns the length, in runes, of the longest common
// prefix of a and b.
func commonPrefixLen(a, b []rune) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// commonSuffixLen returns the length, in runes, of the longest common
// suffix of a and b.
func commonSuffixLen(a, b []rune) int {
	la, lb := len(a), len(b)
	n := min(la, lb)
	i := 0
	for i < n && a[la-1-i] == b[lb-1-i] {
		i++
	}
	return i
}

// CommonPrefix returns the length, in runes, of the longest common prefix
// of a and b (spec.md §6, §8 invariant 8).
func CommonPrefix(a, b string) int {
	return commonPrefixLen([]rune(a), []rune(b))
}

// CommonSuffix returns the length, in runes, of the longest common suffix
// of a and b.
func CommonSuffix(a, b string) int {
	return commonSuffixLen([]rune(a), []rune(b))
}

// commonOverlap returns the length, in runes, of the longest suffix of a
// that is also a prefix of b (spec.md §4.6), used by semantic cleanup to
// split an adjacent delete/insert pair at their shared substring.
func commonOverlap(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	na, nb := len(ra), len(rb)
	if na == 0 || nb == 0 {
		return 0
	}
	if na > nb {
		ra = ra[na-nb:]
	} else if nb > na {
		rb = rb[:na]
	}
	textLength := min(len(ra), len(rb))
	// Quick check for the worst case: the truncated a and b are identical,
	// so the whole remaining length overlaps.
	if string(ra) == string(rb) {
		return textLength
	}
	// Grow the candidate overlap length using indexOf-based jumps: a
	// mismatch at length n means the next candidate can't be shorter
	// than the next occurrence of a's trailing n runes somewhere in b.
	best, length := 0, 1
	for {
		pattern := ra[textLength-length:]
		found := runeIndex(rb, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || equalRunes(ra[textLength-length:], rb[:length]) {
			best = length
			length++
			if length > textLength {
				return best
			}
		}
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runeIndex is strings.Index for rune slices.
func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Text1 reconstructs the source text (all Equal and Delete segments).
func (d Diffs) Text1() string {
	var b strings.Builder
	for _, seg := range d {
		if seg.Op != Insert {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Text2 reconstructs the destination text (all Equal and Insert segments).
func (d Diffs) Text2() string {
	var b strings.Builder
	for _, seg := range d {
		if seg.Op != Delete {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Levenshtein computes the edit distance implied by d: every insertion and
// deletion pair straddling no equality collapses into one substitution
// (spec.md §8 invariant 6).
func (d Diffs) Levenshtein() int {
	levenshtein := 0
	insertions, deletions := 0, 0
	for _, seg := range d {
		switch seg.Op {
		case Insert:
			insertions += runeCount(seg.Text)
		case Delete:
			deletions += runeCount(seg.Text)
		case Equal:
			levenshtein += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	}
	levenshtein += max(insertions, deletions)
	return levenshtein
}

// XIndex maps a location in text1 to the equivalent location in text2
// (spec.md §4.10), e.g. "The cat" vs "The big cat", 1->1, 5->9.
func (d Diffs) XIndex(loc1 int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	lastOp := Equal
	found := false
	for _, seg := range d {
		n := runeCount(seg.Text)
		if seg.Op != Insert {
			chars1 += n
		}
		if seg.Op != Delete {
			chars2 += n
		}
		if chars1 > loc1 {
			lastOp = seg.Op
			found = true
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}
	if found && lastOp == Delete {
		// The location was deleted; snap to just before the deletion.
		return lastChars2
	}
	return lastChars2 + (loc1 - lastChars1)
}

// PrettyHTML renders d as an HTML fragment with <ins>/<del>/<span> markup,
// mirroring the reference ports' debugging helper.
func (d Diffs) PrettyHTML() string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\n", "&para;<br>")
	var b strings.Builder
	for _, seg := range d {
		text := r.Replace(seg.Text)
		switch seg.Op {
		case Insert:
			b.WriteString(`<ins style="background:#e6ffe6;">`)
			b.WriteString(text)
			b.WriteString("</ins>")
		case Delete:
			b.WriteString(`<del style="background:#ffe6e6;">`)
			b.WriteString(text)
			b.WriteString("</del>")
		case Equal:
			b.WriteString("<span>")
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}
