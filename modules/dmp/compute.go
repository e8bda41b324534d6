package dmp

import "context"

// diffContained checks whether shorter is a substring of longer and, if so,
// returns the offset (spec §4.2 step 1). Returns -1 when not contained.
func diffContained(longer, shorter []rune) int {
	return runeIndex(longer, shorter)
}

// diffCompute classifies a prefix/suffix-peeled, non-empty pair and
// dispatches to the first speedup that applies, falling back to bisection
// (spec.md §4.2).
func (e *Engine) diffCompute(ctx context.Context, text1, text2 []rune, checklines bool) (Diffs, error) {
	if len(text1) == 0 {
		return Diffs{{Op: Insert, Text: string(text2)}}, nil
	}
	if len(text2) == 0 {
		return Diffs{{Op: Delete, Text: string(text1)}}, nil
	}

	var long, short []rune
	longIsText1 := len(text1) > len(text2)
	if longIsText1 {
		long, short = text1, text2
	} else {
		long, short = text2, text1
	}

	if i := diffContained(long, short); i != -1 {
		op := Insert
		if longIsText1 {
			op = Delete
		}
		diffs := Diffs{
			{Op: op, Text: string(long[:i])},
			{Op: Equal, Text: string(short)},
			{Op: op, Text: string(long[i+len(short):])},
		}
		return diffs.discardEmpty(), nil
	}

	if len(short) == 1 {
		// After the containment check, a single-rune shorter side can't
		// be an equality: it must be a wholesale delete-then-insert.
		return Diffs{{Op: Delete, Text: string(text1)}, {Op: Insert, Text: string(text2)}}, nil
	}

	if hm := e.diffHalfMatch(ctx, text1, text2); hm != nil {
		diffsA, err := e.diffMainRunes(ctx, hm.text1Prefix, hm.text2Prefix, false)
		if err != nil {
			return nil, err
		}
		diffsB, err := e.diffMainRunes(ctx, hm.text1Suffix, hm.text2Suffix, false)
		if err != nil {
			return nil, err
		}
		diffs := append(diffsA, Diff{Op: Equal, Text: string(hm.midCommon)})
		diffs = append(diffs, diffsB...)
		return diffs, nil
	}

	if checklines && len(text1) > 100 && len(text2) > 100 {
		return e.diffLineMode(ctx, text1, text2)
	}

	return e.diffBisect(ctx, text1, text2)
}

func (d Diffs) discardEmpty() Diffs {
	out := d[:0]
	for _, seg := range d {
		if seg.Text != "" {
			out = append(out, seg)
		}
	}
	return out
}
