package dmp

import "context"

// halfMatch is the (a_prefix, a_suffix, b_prefix, b_suffix, mid_common)
// tuple of spec.md §3, already re-oriented to (text1, text2) order.
type halfMatch struct {
	text1Prefix, text1Suffix []rune
	text2Prefix, text2Suffix []rune
	midCommon                []rune
}

// diffHalfMatch checks whether the longer of text1/text2 contains a
// substring at least half its length in common with the shorter one, and
// if so returns the split (spec.md §4.5). Suppressed when the engine's
// deadline is unbounded, to preserve optimality.
func (e *Engine) diffHalfMatch(ctx context.Context, text1, text2 []rune) *halfMatch {
	select {
	case <-ctx.Done():
		return nil
	default:
	}
	if e.Config.DiffTimeout <= 0 {
		return nil
	}

	var long, short []rune
	text1IsLong := len(text1) > len(text2)
	if text1IsLong {
		long, short = text1, text2
	} else {
		long, short = text2, text1
	}

	if len(long) < 4 || len(short)*2 < len(long) {
		return nil // Pointless.
	}

	hm1 := halfMatchAround(long, short, (len(long)+3)/4)
	hm2 := halfMatchAround(long, short, (len(long)+1)/2)

	var hm *rawHalfMatch
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1.mid) > len(hm2.mid):
		hm = hm1
	default:
		hm = hm2
	}

	if text1IsLong {
		return &halfMatch{
			text1Prefix: hm.longPrefix, text1Suffix: hm.longSuffix,
			text2Prefix: hm.shortPrefix, text2Suffix: hm.shortSuffix,
			midCommon: hm.mid,
		}
	}
	return &halfMatch{
		text1Prefix: hm.shortPrefix, text1Suffix: hm.shortSuffix,
		text2Prefix: hm.longPrefix, text2Suffix: hm.longSuffix,
		midCommon: hm.mid,
	}
}

type rawHalfMatch struct {
	longPrefix, longSuffix   []rune
	shortPrefix, shortSuffix []rune
	mid                      []rune
}

// halfMatchAround probes the quarter-length seed at long[i:i+len(long)/4]
// against every occurrence in short, keeping the widest common extension
// found. Returns nil unless the extension covers at least half of long.
func halfMatchAround(long, short []rune, i int) *rawHalfMatch {
	seed := long[i : i+len(long)/4]

	var best rawHalfMatch
	var bestLen int
	for j := runeIndex(short, seed); j != -1; j = indexFrom(short, seed, j+1) {
		prefixLen := commonPrefixLen(long[i:], short[j:])
		suffixLen := commonSuffixLen(long[:i], short[:j])
		if bestLen < suffixLen+prefixLen {
			bestLen = suffixLen + prefixLen
			best.mid = short[j-suffixLen : j+prefixLen]
			best.longPrefix = long[:i-suffixLen]
			best.longSuffix = long[i+prefixLen:]
			best.shortPrefix = short[:j-suffixLen]
			best.shortSuffix = short[j+prefixLen:]
		}
	}

	if bestLen*2 < len(long) {
		return nil
	}
	return &best
}

// indexFrom is runeIndex restricted to the search starting at offset from.
func indexFrom(haystack, needle []rune, from int) int {
	if from >= len(haystack) {
		if len(needle) == 0 && from == len(haystack) {
			return from
		}
		return -1
	}
	found := runeIndex(haystack[from:], needle)
	if found == -1 {
		return -1
	}
	return from + found
}
