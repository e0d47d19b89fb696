// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

// Match is a triple (A, B, Size) asserting that a[A:A+Size] equals
// b[B:B+Size] element-wise. The zero-sized sentinel Match{len(a), len(b), 0}
// terminates a [MatchingBlocks] result.
type Match struct {
	A, B, Size int
}

// FindLongestMatch returns the longest contiguous run such that
// a[besti:besti+bestsize] equals b[bestj:bestj+bestsize], with
// alo <= besti, bestj >= blo, besti+bestsize <= ahi, bestj+bestsize <= bhi.
//
// Of all maximal matching runs in the window, the one starting earliest in a
// is preferred, and of those, the one starting earliest in b; ties never
// update the running best, which makes the earliest match the deterministic
// winner. If a[alo:ahi] and b[blo:bhi] share no element, it returns
// (alo, blo, 0). An element pruned from idx as popular still matches in the
// extension phase, so a window whose only common elements are pruned can
// still yield a non-empty match.
//
// FindLongestMatch panics if the window is malformed; see [ErrInvalidWindow].
func FindLongestMatch[E comparable](a, b []E, idx *Index[E], alo, ahi, blo, bhi int) Match {
	checkWindow(alo, ahi, blo, bhi, len(a), len(b))

	besti, bestj, bestsize := alo, blo, 0

	// cur[j] / next[j] hold the length of the longest junk-free run ending at
	// b[j] for the previous / current row of a. Both are sparse maps keyed by
	// column rather than dense arrays of length bhi-blo: allocation would
	// dominate otherwise when rows are short or elements are rare.
	cur := make(map[int]int)
	next := make(map[int]int)
	for i := alo; i < ahi; i++ {
		for k := range next {
			delete(next, k)
		}
		for _, j := range idx.occurrences(a[i]) {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			prior := 0
			if j > 0 {
				prior = cur[j-1]
			}
			newk := prior + 1
			next[j] = newk
			if newk > bestsize {
				besti, bestj, bestsize = i+1-newk, j+1-newk, newk
			}
		}
		cur, next = next, cur
	}

	// Extend the best match on both sides, recovering any prefix/suffix made
	// of elements that popularity pruning removed from the index when they
	// border the chosen run.
	for besti > alo && bestj > blo && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}
