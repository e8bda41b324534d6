package dmp

import "github.com/emirpasic/gods/stacks/arraystack"

// CleanupEfficiency reduces the number of edits by purging equalities
// surrounded by edits that are shorter than e.Config.DiffEditCost, when
// doing so is worth the extra edit under that cost model (spec.md §4.8).
// It mutates and returns diffs.
func (e *Engine) CleanupEfficiency(diffs Diffs) Diffs {
	editCost := e.Config.DiffEditCost
	if editCost <= 0 {
		editCost = DefaultEditCost
	}
	changes := false
	equalities := arraystack.New()
	lastEquality := ""
	pointer := 0
	preIns, preDel, postIns, postDel := false, false, false, false

	for pointer < len(diffs) {
		if diffs[pointer].Op == Equal {
			if runeCount(diffs[pointer].Text) < editCost && (postIns || postDel) {
				equalities.Push(pointer)
				preIns, preDel = postIns, postDel
				lastEquality = diffs[pointer].Text
			} else {
				equalities.Clear()
				lastEquality = ""
			}
			postIns, postDel = false, false
		} else {
			if diffs[pointer].Op == Delete {
				postDel = true
			} else {
				postIns = true
			}
			// Five shapes are worth splitting:
			//   <ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
			//   <ins>A</ins>X<ins>C</ins><del>D</del>
			//   <ins>A</ins><del>B</del>X<ins>C</ins>
			//   <del>A</del>X<ins>C</ins><del>D</del>
			//   <ins>A</ins><del>B</del>X<del>C</del>
			sumPres := 0
			for _, p := range []bool{preIns, preDel, postIns, postDel} {
				if p {
					sumPres++
				}
			}
			if lastEquality != "" &&
				((preIns && preDel && postIns && postDel) ||
					(runeCount(lastEquality) < editCost/2 && sumPres == 3)) {
				top, _ := equalities.Peek()
				insPoint := top.(int)
				diffs = splice(diffs, insPoint, 0, Diff{Op: Delete, Text: lastEquality})
				diffs[insPoint+1].Op = Insert

				equalities.Pop()
				lastEquality = ""

				if preIns && preDel {
					// No change that could affect the previous entry: keep going.
					postIns, postDel = true, true
					equalities.Clear()
				} else {
					if _, ok := equalities.Peek(); ok {
						equalities.Pop()
					}
					if top, ok := equalities.Peek(); ok {
						pointer = top.(int)
					} else {
						pointer = -1
					}
					postIns, postDel = false, false
				}
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = diffCleanupMerge(diffs)
	}
	return diffs
}
