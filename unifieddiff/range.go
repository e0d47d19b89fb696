// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unifieddiff

import "fmt"

// formatRange renders the half-open interval [start, stop) as a unified-diff
// hunk range: "start+1" for a single line, "start+1,length" otherwise, with
// the zero-length case starting at the line just before the range. This is
// the one place a naive port is tempted to pass stop-start computed from the
// wrong ends of a hunk spanning several opcodes; the caller must pass the
// first opcode's start and the last opcode's stop, not the first opcode's
// own length.
func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	switch length {
	case 1:
		return fmt.Sprintf("%d", beginning)
	case 0:
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}
