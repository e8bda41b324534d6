package dmp

import (
	"context"

	"github.com/glyphdiff/dmp/modules/trace"
)

// diffBisect finds the middle snake of a diff, splits the problem in two,
// and returns the recursively constructed diff (spec.md §4.3; Myers,
// "An O(ND) Difference Algorithm and Its Variations", 1986).
func (e *Engine) diffBisect(ctx context.Context, text1, text2 []rune) (Diffs, error) {
	text1Len, text2Len := len(text1), len(text2)

	maxD := (text1Len + text2Len + 1) / 2
	vOffset := maxD
	vLength := 2 * maxD

	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := text1Len - text2Len
	// If the total number of runes is odd, the front path collides with
	// the reverse path.
	front := delta%2 != 0
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < maxD; d++ {
		select {
		case <-ctx.Done():
			// Deadline expiry is not an error (spec.md §7): fall back to
			// the degenerate but valid delete-then-insert script.
			trace.Debugf("dmp: bisector deadline hit at d=%d of maxD=%d, returning degenerate diff", d, maxD)
			return Diffs{
				{Op: Delete, Text: string(text1)},
				{Op: Insert, Text: string(text2)},
			}, nil
		default:
		}

		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < text1Len && y1 < text2Len && text1[x1] == text2[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			switch {
			case x1 > text1Len:
				k1end += 2
			case y1 > text2Len:
				k1start += 2
			case front:
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					x2 := text1Len - v2[k2Offset]
					if x1 >= x2 {
						return e.diffBisectSplit(ctx, text1, text2, x1, y1)
					}
				}
			}
		}

		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < text1Len && y2 < text2Len && text1[text1Len-x2-1] == text2[text2Len-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			switch {
			case x2 > text1Len:
				k2end += 2
			case y2 > text2Len:
				k2start += 2
			case !front:
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					mirroredX2 := text1Len - x2
					if x1 >= mirroredX2 {
						return e.diffBisectSplit(ctx, text1, text2, x1, y1)
					}
				}
			}
		}
	}
	// No overlap was found: the two texts share no commonality at all.
	return Diffs{
		{Op: Delete, Text: string(text1)},
		{Op: Insert, Text: string(text2)},
	}, nil
}

// diffBisectSplit recurses on the two halves split at the middle snake
// (x, y) and concatenates the results. The recursive call disables
// line-mode: the halves are already character-granular.
func (e *Engine) diffBisectSplit(ctx context.Context, text1, text2 []rune, x, y int) (Diffs, error) {
	diffsA, err := e.diffMainRunes(ctx, text1[:x], text2[:y], false)
	if err != nil {
		return nil, err
	}
	diffsB, err := e.diffMainRunes(ctx, text1[x:], text2[y:], false)
	if err != nil {
		return nil, err
	}
	return append(diffsA, diffsB...), nil
}
