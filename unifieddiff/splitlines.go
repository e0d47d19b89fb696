// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unifieddiff

import "strings"

// SplitLines splits s into lines that each retain their trailing "\n", the
// shape [Format] and [Write] expect for a and b. Unlike strings.Split, no
// information is lost: joining the result recovers s exactly, with one
// exception — if s is non-empty and does not already end in "\n", one is
// added to the final line, matching how a line-oriented diff treats a
// missing final newline as the file's last line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}
