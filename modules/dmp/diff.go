package dmp

import "context"

// DiffStrings computes an edit script transforming text1 into text2 using
// the package default engine and its default timeout (spec.md §4.1).
func DiffStrings(text1, text2 string) (Diffs, error) {
	return defaultEngine.Diff(context.Background(), text1, text2)
}

// Diff computes an edit script transforming text1 into text2, using
// line-mode reduction when both texts are large (spec.md §4.1, §4.4). The
// returned script satisfies the round-trip, no-adjacent-same-op, and
// no-empty-segment invariants of spec.md §3.
//
// If ctx carries no deadline and e.Config.DiffTimeout is positive, a
// deadline of that duration is applied for the duration of this call.
func (e *Engine) Diff(ctx context.Context, text1, text2 string) (Diffs, error) {
	if _, ok := ctx.Deadline(); !ok && e.Config.DiffTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Config.DiffTimeout)
		defer cancel()
	}
	diffs, err := e.diffMainRunes(ctx, []rune(text1), []rune(text2), true)
	if err != nil {
		return nil, err
	}
	return diffs, nil
}

// diffMainRunes is the peeler: it strips the longest common prefix and
// suffix, found by a linear rune-by-rune scan (not a binary search),
// recurses on the residual via the
// compute dispatcher, then re-attaches the peeled ends and normalizes with
// merge cleanup.
func (e *Engine) diffMainRunes(ctx context.Context, text1, text2 []rune, checklines bool) (Diffs, error) {
	if len(text1) == 0 && len(text2) == 0 {
		return Diffs{}, nil
	}
	if equalRunes(text1, text2) {
		if len(text1) == 0 {
			return Diffs{}, nil
		}
		return Diffs{{Op: Equal, Text: string(text1)}}, nil
	}

	prefixLen := commonPrefixLen(text1, text2)
	prefix := text1[:prefixLen]
	text1 = text1[prefixLen:]
	text2 = text2[prefixLen:]

	suffixLen := commonSuffixLen(text1, text2)
	suffix := text1[len(text1)-suffixLen:]
	text1 = text1[:len(text1)-suffixLen]
	text2 = text2[:len(text2)-suffixLen]

	diffs, err := e.diffCompute(ctx, text1, text2, checklines)
	if err != nil {
		return nil, err
	}

	if len(prefix) != 0 {
		diffs = append(Diffs{{Op: Equal, Text: string(prefix)}}, diffs...)
	}
	if len(suffix) != 0 {
		diffs = append(diffs, Diff{Op: Equal, Text: string(suffix)})
	}
	return diffCleanupMerge(diffs), nil
}

// CleanupAll runs semantic, then merge, cleanup on diffs in place — the
// pairing most callers want for human-facing rendering.
func CleanupAll(diffs Diffs) Diffs {
	diffs = defaultEngine.CleanupSemantic(diffs)
	return diffCleanupMerge(diffs)
}
