// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

// Index maps each distinct element of a sequence B to the ordered list of
// positions where it occurs, with popular elements pruned so that the
// [FindLongestMatch] inner loop cannot blow up on runs of a common element
// (e.g. blank lines). It is built once per B by [BuildIndex] and is safe for
// concurrent read-only use afterward.
type Index[E comparable] struct {
	pos map[E][]int
}

// BuildIndex scans b left to right and records, for each distinct element,
// the ascending list of indices at which it occurs. If len(b) >= 200, any
// element occurring more than ntest = len(b)/100 + 1 times is dropped from
// the index entirely; downstream callers see no occurrences for it, exactly
// as if it never appeared in b. This popularity pruning can only shrink a
// reported match, never grow one, which is acceptable because the algorithm
// is already a greedy, non-optimal one.
func BuildIndex[E comparable](b []E) *Index[E] {
	idx := &Index[E]{pos: make(map[E][]int, len(b))}
	for i, e := range b {
		idx.pos[e] = append(idx.pos[e], i)
	}

	n := len(b)
	if n >= 200 {
		ntest := n/100 + 1
		for e, occ := range idx.pos {
			if len(occ) > ntest {
				delete(idx.pos, e)
			}
		}
	}
	return idx
}

// occurrences returns the ascending occurrence list recorded for e, or nil
// if e was never seen in B or was pruned as popular.
func (idx *Index[E]) occurrences(e E) []int {
	return idx.pos[e]
}
