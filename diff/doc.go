// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements the sequence-matching engine behind a line-oriented
// unified diff: a position index over the second sequence, a longest-match
// finder biased toward the earliest match, a recursive matching-block
// collector, and an edit-script assembler and context grouper.
//
// The algorithm is a generalization (to any comparable element type) of the
// "gestalt pattern matching" approach used by Python's difflib.SequenceMatcher:
// it greedily finds the longest common contiguous run and recurses on the
// pieces to either side. It is not a minimal-edit (Myers-optimal) diff, and it
// has no notion of junk elements beyond the popularity heuristic in
// [BuildIndex]. See package unifieddiff for turning the opcodes this package
// produces into unified diff text.
package diff
