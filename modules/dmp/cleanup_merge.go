package dmp

import "strings"

// splice removes amount elements from diffs at index, replacing them with
// elements, shifting the tail as needed.
func splice(diffs Diffs, index, amount int, elements ...Diff) Diffs {
	if len(elements) == amount {
		copy(diffs[index:], elements)
		return diffs
	}
	if len(elements) < amount {
		copy(diffs[index:], elements)
		copy(diffs[index+len(elements):], diffs[index+amount:])
		end := len(diffs) - amount + len(elements)
		for i := range diffs[end:] {
			diffs[end+i] = Diff{}
		}
		return diffs[:end]
	}
	need := len(diffs) - amount + len(elements)
	for len(diffs) < need {
		diffs = append(diffs, Diff{})
	}
	copy(diffs[index+len(elements):], diffs[index+amount:])
	copy(diffs[index:], elements)
	return diffs
}

// diffCleanupMerge reorders and merges like edit sections (spec.md §4.9).
// Any edit section can move as long as it doesn't cross an equality.
func diffCleanupMerge(diffs Diffs) Diffs {
	diffs = append(diffs, Diff{Op: Equal, Text: ""})
	pointer := 0
	countDelete, countInsert := 0, 0
	var textDelete, textInsert strings.Builder

	for pointer < len(diffs) {
		switch diffs[pointer].Op {
		case Insert:
			countInsert++
			textInsert.WriteString(diffs[pointer].Text)
			pointer++
		case Delete:
			countDelete++
			textDelete.WriteString(diffs[pointer].Text)
			pointer++
		case Equal:
			if countDelete+countInsert > 1 {
				ins, del := textInsert.String(), textDelete.String()
				if countDelete != 0 && countInsert != 0 {
					if commonlength := CommonPrefix(ins, del); commonlength != 0 {
						insRunes, delRunes := []rune(ins), []rune(del)
						prefix := string(insRunes[:commonlength])
						x := pointer - countDelete - countInsert
						if x > 0 && diffs[x-1].Op == Equal {
							diffs[x-1].Text += prefix
						} else {
							diffs = append(Diffs{{Op: Equal, Text: prefix}}, diffs...)
							pointer++
						}
						ins = string(insRunes[commonlength:])
						del = string(delRunes[commonlength:])
					}
					if commonlength := CommonSuffix(ins, del); commonlength != 0 {
						insRunes, delRunes := []rune(ins), []rune(del)
						suffix := string(insRunes[len(insRunes)-commonlength:])
						diffs[pointer].Text = suffix + diffs[pointer].Text
						ins = string(insRunes[:len(insRunes)-commonlength])
						del = string(delRunes[:len(delRunes)-commonlength])
					}
				}
				var merged []Diff
				if del != "" {
					merged = append(merged, Diff{Op: Delete, Text: del})
				}
				if ins != "" {
					merged = append(merged, Diff{Op: Insert, Text: ins})
				}
				start := pointer - countDelete - countInsert
				diffs = splice(diffs, start, countDelete+countInsert, merged...)
				pointer = start + len(merged) + 1
			} else if pointer != 0 && diffs[pointer-1].Op == Equal {
				diffs[pointer-1].Text += diffs[pointer].Text
				diffs = append(diffs[:pointer], diffs[pointer+1:]...)
			} else {
				pointer++
			}
			countInsert, countDelete = 0, 0
			textDelete.Reset()
			textInsert.Reset()
		}
	}

	if len(diffs) > 0 && diffs[len(diffs)-1].Text == "" {
		diffs = diffs[:len(diffs)-1]
	}

	// Second pass: slide single edits sideways over adjacent equalities
	// when doing so eliminates one of them, e.g. A<ins>BA</ins>C ->
	// <ins>AB</ins>AC.
	changes := false
	pointer = 1
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Op == Equal && diffs[pointer+1].Op == Equal {
			if strings.HasSuffix(diffs[pointer].Text, diffs[pointer-1].Text) {
				diffs[pointer].Text = diffs[pointer-1].Text +
					diffs[pointer].Text[:len(diffs[pointer].Text)-len(diffs[pointer-1].Text)]
				diffs[pointer+1].Text = diffs[pointer-1].Text + diffs[pointer+1].Text
				diffs = splice(diffs, pointer-1, 1)
				changes = true
			} else if strings.HasPrefix(diffs[pointer].Text, diffs[pointer+1].Text) {
				diffs[pointer-1].Text += diffs[pointer+1].Text
				diffs[pointer].Text = diffs[pointer].Text[len(diffs[pointer+1].Text):] + diffs[pointer+1].Text
				diffs = splice(diffs, pointer+1, 1)
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
