// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

// GroupedOpCodes reshapes the edit script for a and b into hunk groups, each
// framed by at most n lines of Equal context on either side, for consumption
// by a unified-diff emitter. A negative n is treated as the default of 3.
//
// If a and b are identical (the opcode list is a single Equal run) or both
// empty, the result is empty: there is nothing to show.
func GroupedOpCodes[E comparable](a, b []E, idx *Index[E], n int) [][]OpCode {
	return groupOpCodes(OpCodes(a, b, idx), n)
}

func groupOpCodes(codes []OpCode, n int) [][]OpCode {
	if n < 0 {
		n = 3
	}
	if len(codes) == 0 {
		return nil
	}
	if len(codes) == 1 && codes[0].Tag == Equal {
		return nil
	}

	// Work on a copy: the leading/trailing trim below adjusts endpoints, and
	// a pure function should not mutate the caller's opcode list.
	codes = append([]OpCode(nil), codes...)

	if first := codes[0]; first.Tag == Equal {
		codes[0] = OpCode{
			Tag: Equal,
			I1:  max(first.I1, first.I2-n), I2: first.I2,
			J1: max(first.J1, first.J2-n), J2: first.J2,
		}
	}
	if last := codes[len(codes)-1]; last.Tag == Equal {
		codes[len(codes)-1] = OpCode{
			Tag: Equal,
			I1:  last.I1, I2: min(last.I2, last.I1+n),
			J1: last.J1, J2: min(last.J2, last.J1+n),
		}
	}

	nn := 2 * n
	var groups [][]OpCode
	var group []OpCode
	for _, c := range codes {
		i1, i2, j1, j2 := c.I1, c.I2, c.J1, c.J2
		// A long run of unchanged lines ends the current group (flushing it
		// with n lines of trailing context) and starts a new one (with n
		// lines of leading context carved from the same run).
		if c.Tag == Equal && i2-i1 > nn {
			group = append(group, OpCode{Equal, i1, min(i2, i1+n), j1, min(j2, j1+n)})
			groups = append(groups, group)
			group = nil
			i1, j1 = max(i1, i2-n), max(j1, j2-n)
		}
		group = append(group, OpCode{c.Tag, i1, i2, j1, j2})
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Tag == Equal) {
		groups = append(groups, group)
	}
	return groups
}
