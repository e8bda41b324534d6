package dmp

import "math"

// Match locates the best occurrence of pattern in text near loc, using the
// package default engine. Returns -1 if no match scores within the
// threshold (spec.md §4.11).
func Match(text, pattern string, loc int) (int, error) {
	return defaultEngine.Match(text, pattern, loc)
}

// Match locates the best occurrence of pattern in text near loc within
// e.Config.MatchThreshold, using an exact check first and falling back to
// Bitap fuzzy matching. Fails with ErrPatternTooLong when the Bitap
// fallback is reached with a pattern longer than e.Config.MatchMaxBits runes.
func (e *Engine) Match(text, pattern string, loc int) (int, error) {
	textRunes, patternRunes := []rune(text), []rune(pattern)
	loc = max(0, min(loc, len(textRunes)))

	if string(textRunes) == string(patternRunes) {
		return 0, nil
	}
	if len(textRunes) == 0 {
		return -1, nil
	}
	if loc+len(patternRunes) <= len(textRunes) && equalRunes(textRunes[loc:loc+len(patternRunes)], patternRunes) {
		return loc, nil
	}
	return e.matchBitap(textRunes, patternRunes, loc)
}

// matchAlphabet builds the shift-or bitmask for each distinct rune in
// pattern: bit p-1-i is set for each occurrence of that rune at position i
// (spec.md §3).
func matchAlphabet(pattern []rune) map[rune]int {
	alphabet := make(map[rune]int, len(pattern))
	for i, r := range pattern {
		alphabet[r] |= 1 << uint(len(pattern)-i-1)
	}
	return alphabet
}

// matchBitapScore is d/|pattern| + |loc-x|/match_distance (spec.md §4.11).
func (e *Engine) matchBitapScore(d, x, loc, patternLen int) float64 {
	accuracy := float64(d) / float64(patternLen)
	proximity := math.Abs(float64(loc - x))
	if e.Config.MatchDistance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + proximity/float64(e.Config.MatchDistance)
}

// matchBitap implements the shift-or approximate matcher of spec.md §4.11.
func (e *Engine) matchBitap(text, pattern []rune, loc int) (int, error) {
	if len(pattern) > e.Config.MatchMaxBits {
		return 0, patternTooLongf("pattern of %d runes exceeds match_max_bits=%d", len(pattern), e.Config.MatchMaxBits)
	}

	alphabet := matchAlphabet(pattern)
	scoreThreshold := e.Config.MatchThreshold

	if best := runeIndex(text[min(loc, len(text)):], pattern); best != -1 {
		best += min(loc, len(text))
		scoreThreshold = math.Min(e.matchBitapScore(0, best, loc, len(pattern)), scoreThreshold)
	}
	if end := loc + len(pattern); end <= len(text) {
		if best := lastRuneIndex(text[:end], pattern); best != -1 {
			scoreThreshold = math.Min(e.matchBitapScore(0, best, loc, len(pattern)), scoreThreshold)
		}
	}

	matchmask := 1 << uint(len(pattern)-1)
	bestLoc := -1
	binMax := len(pattern) + len(text)
	var lastRd []int

	for d := 0; d < len(pattern); d++ {
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if e.matchBitapScore(d, loc+binMid, loc, len(pattern)) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(text)) + len(pattern)

		rd := make([]int, finish+2)
		rd[finish+1] = (1 << uint(d)) - 1
		for j := finish; j >= start; j-- {
			var charMatch int
			if j-1 < len(text) {
				charMatch = alphabet[text[j-1]]
			}
			if d == 0 {
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				rd[j] = (((rd[j+1]<<1)|1)&charMatch | (((lastRd[j+1] | lastRd[j]) << 1) | 1) | lastRd[j+1])
			}
			if rd[j]&matchmask != 0 {
				score := e.matchBitapScore(d, j-1, loc, len(pattern))
				if score <= scoreThreshold {
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						start = max(1, 2*loc-bestLoc)
					} else {
						break
					}
				}
			}
		}
		if e.matchBitapScore(d+1, loc, loc, len(pattern)) > scoreThreshold {
			break
		}
		lastRd = rd
	}
	return bestLoc, nil
}

// lastRuneIndex is strings.LastIndex for rune slices.
func lastRuneIndex(haystack, needle []rune) int {
	if len(needle) == 0 {
		return len(haystack)
	}
	for i := len(haystack) - len(needle); i >= 0; i-- {
		if equalRunes(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
